package constvars

// Custom validation error messages
var CustomValidationErrorMessages = map[string]string{
	"required":          "is required",
	"email":             "must be a valid email",
	"min":               "must be at least %s",
	"max":               "must be at most %s",
	"oneof":             "must be one of: %s",
	"latitude":          "must be a valid latitude",
	"longitude":         "must be a valid longitude",
	"datetime":          "must follow the %s format",
	"facility_category": "must be one of: all, hospital, clinic, pharmacy",
}

var TagsWithParams = map[string]bool{
	"min":      true,
	"max":      true,
	"oneof":    true,
	"datetime": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientServerUnreachable             = "cannot reach the server, please try again"
	ErrClientViewNotAllowed                = "please login to open this page"
	ErrClientUnknownView                   = "page not found"
	ErrClientNoFilesSelected               = "please select at least one file"
	ErrClientNoSession                     = "you are not logged in"
	ErrClientNoProfileDraft                = "there is no profile change to save"
	ErrClientAlreadyStarted                = "the application has already started"
	ErrClientMapUnavailable                = "the map is not available right now"
	ErrClientLocationUnavailable           = "your location is not available, showing a default area"
	ErrClientUploadResultMissing           = "the server did not return a result for this file"
	ErrClientUploadFailed                  = "the file could not be processed"
	ErrClientInvalidAPIKey                 = "invalid api key"
	ErrClientUnknownCollection             = "data not found"
	ErrClientInvalidCallback               = "the login link is invalid or has expired"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevInvalidInput               = "invalid input"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevCannotParseJSON            = "failed to parse JSON"
	ErrDevCreateHTTPRequest          = "failed to create HTTP request"
	ErrDevSendHTTPRequest            = "failed to send HTTP request"
	ErrDevReadHTTPResponse           = "failed to read HTTP response body"
	ErrDevDecodeResponseFormat       = "failed to decode %s response"
	ErrDevAPIResponseFormat          = "remote API responded %d on %s %s"
	ErrDevAuthExpiredFormat          = "remote API rejected the session on %s %s"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevRateLimiterWait            = "outbound rate limiter wait failed"
	ErrDevBuildMultipartBody         = "failed to build multipart body"
	ErrDevOpenUploadFileFormat       = "failed to open upload file %s"
	ErrDevNoFilesSelected            = "upload called with an empty batch"
	ErrDevRedisGetData               = "failed to get data from redis"
	ErrDevRedisSetData               = "failed to set data to redis"
	ErrDevRedisDeleteData            = "failed to delete data from redis"
	ErrDevFileStoreRead              = "failed to read the session file"
	ErrDevFileStoreWrite             = "failed to write the session file"
	ErrDevMinioStatObjectFormat      = "failed to stat object in bucket %s"
	ErrDevMinioGetObjectFormat       = "failed to get object from bucket %s"
	ErrDevRabbitMQPublishFormat      = "failed to publish message to queue %s"
	ErrDevViewNotAllowedFormat       = "navigation to %s refused while unauthenticated"
	ErrDevUnknownViewFormat          = "unknown view %q"
	ErrDevNoSession                  = "no session established"
	ErrDevNoProfileDraft             = "commit called without an open profile draft"
	ErrDevAlreadyBootstrapped        = "session bootstrapper already ran"
	ErrDevMapProviderNotConfigured   = "map provider credential is not configured"
	ErrDevMapProviderFailed          = "map provider failed to initialize"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevLocationUnavailable        = "device location unavailable"
	ErrDevGeolocatorUnsupported      = "no geolocator configured"
	ErrDevObjectStorageNotConfigured = "object storage is not configured"
	ErrDevUploadPathIsDirectory      = "path is a directory"
	ErrDevInvalidAPIKey              = "control API key missing or mismatched"
	ErrDevUnknownPanic               = "unknown error"
	ErrDevUnknownCollectionFormat    = "unknown collection %q"
	ErrDevSessionExchangeFailed      = "remote API returned no usable session for the exchange code"
)
