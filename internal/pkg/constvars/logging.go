package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingDataKey              = "data"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingURLKey               = "url"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingResponseLengthKey    = "response_length"
	LoggingErrorCodeKey         = "error_code"
	LoggingErrorMessageKey      = "error_message"
	LoggingUserIDKey            = "user_id"
	LoggingViewFromKey          = "view_from"
	LoggingViewToKey            = "view_to"
	LoggingCollectionKey        = "collection"
	LoggingCategoryKey          = "category"
	LoggingLatitudeKey          = "lat"
	LoggingLongitudeKey         = "lng"
	LoggingSequenceKey          = "sequence"
	LoggingLatestSequenceKey    = "latest_sequence"
	LoggingFileCountKey         = "file_count"
	LoggingFilenameKey          = "filename"
	LoggingBytesTotalKey        = "bytes_total"
	LoggingProgressKey          = "progress"
	LoggingRedisKey             = "redis_key"
	LoggingStoreDriverKey       = "store_driver"
	LoggingBucketKey            = "bucket"
	LoggingObjectKey            = "object"
	LoggingEventTypeKey         = "event_type"
	LoggingQueueKey             = "queue"
	LoggingGeolocatorKey        = "geolocator"
	LoggingReportIDKey          = "report_id"
	LoggingAppointmentIDKey     = "appointment_id"
	LoggingDoctorIDKey          = "doctor_id"
	LoggingSOSIDKey             = "sos_id"
	LoggingEmergencyTypeKey     = "emergency_type"
	LoggingMedicineQueryKey     = "medicine_query"
	LoggingBootstrapPathKey     = "bootstrap_path"
	LoggingPerFileErrorsKey     = "per_file_errors"
	LoggingMapMarkerCountKey    = "marker_count"
	LoggingLocalFileErrorsKey   = "local_file_errors"
	LoggingResponseMessageKey   = "response_message"
	LoggingFailedCountKey       = "failed_count"
	LoggingIsClientRequestIDKey = "is_client_request_id"
	LoggingHealthStatusKey      = "health_status"
	LoggingSharedFlightKey      = "shared_flight"
	LoggingServiceKey           = "service"
	LoggingVersionKey           = "version"
	LoggingPanicKey             = "panic"
)
