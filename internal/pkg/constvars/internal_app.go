package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HLTHEASE_CLI_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	SessionStoreDriverRedis = "redis"
	SessionStoreDriverFile  = "file"

	GeolocatorDriverStatic = "static"
	GeolocatorDriverIP     = "ip"
	GeolocatorDriverNone   = "none"

	ActivityDriverRabbitMQ = "rabbitmq"
	ActivityDriverNone     = "none"
)

const (
	// SessionTokenSlotKey and SessionUserSlotKey are the two durable slots
	// holding the persisted session.
	SessionTokenSlotKey = "healthease:session_token"
	SessionUserSlotKey  = "healthease:user"
)

const (
	// AuthCallbackFragmentMarker prefixes the one-time exchange code in the
	// location fragment after an external identity exchange.
	AuthCallbackFragmentMarker = "session_id="
)

const (
	// FallbackLatitude and FallbackLongitude are used whenever the device
	// location cannot be determined (New York City).
	FallbackLatitude  = 40.7128
	FallbackLongitude = -74.0060
)

const (
	FacilityCategoryAll      = "all"
	FacilityCategoryHospital = "hospital"
	FacilityCategoryClinic   = "clinic"
	FacilityCategoryPharmacy = "pharmacy"

	AppointmentTypeOnline  = "online"
	AppointmentTypeOffline = "offline"

	AppointmentStatusScheduled = "scheduled"
)

const (
	UploadFormFieldFiles = "files"
)

const (
	ActivityEventSessionEstablished = "session.established"
	ActivityEventSessionRestored    = "session.restored"
	ActivityEventSessionExpired     = "session.expired"
	ActivityEventSessionLoggedOut   = "session.logged_out"
	ActivityEventReportsUploaded    = "reports.uploaded"
	ActivityEventAppointmentBooked  = "appointment.booked"
	ActivityEventProfileUpdated     = "profile.updated"
	ActivityEventSOSTriggered       = "sos.triggered"
)

const (
	MapMarkerKindCurrentLocation  = "current_location"
	MapMarkerCurrentLocationTitle = "You are here"
)
