package constvars

const (
	EndpointHealth           = "/api/health"
	EndpointAuthExchange     = "/api/auth/emergent"
	EndpointProfile          = "/api/profile"
	EndpointReports          = "/api/reports"
	EndpointReportsUpload    = "/api/reports/upload"
	EndpointDoctors          = "/api/doctors"
	EndpointAppointments     = "/api/appointments"
	EndpointNearbyFacilities = "/api/nearby-facilities"
	EndpointSOS              = "/api/sos"
	EndpointMedicines        = "/api/medicines"
	EndpointReportByIDFormat = "/api/reports/%s"
)

const (
	QueryParamLatitude  = "lat"
	QueryParamLongitude = "lon"
	QueryParamType      = "type"
	QueryParamQuery     = "query"
)

const (
	URLParamCollection = "collection"
	URLParamReportID   = "reportID"
)
