package exceptions

import (
	"errors"
	"fmt"
	"healthease-client/internal/pkg/constvars"
	"runtime"
)

// Kind classifies a failure so callers can decide presentation without
// inspecting status codes.
type Kind string

const (
	KindAuthExpired         Kind = "auth_expired"
	KindNetworkOrServer     Kind = "network_or_server"
	KindValidation          Kind = "validation"
	KindPerFileUpload       Kind = "per_file_upload"
	KindLocationUnavailable Kind = "location_unavailable"
	KindInternal            Kind = "internal"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	Kind          Kind       `json:"kind,omitempty"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError wraps err with the caller location. When err is itself
// a CustomError its locations are kept so the chain stays traceable.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	return buildCustomError(err, statusCode, KindInternal, clientMessage, devMessage)
}

func buildCustomError(err error, statusCode int, kind Kind, clientMessage, devMessage string) *CustomError {
	locations := []Location{getLocation(3)}
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
		var customErr *CustomError
		if errors.As(err, &customErr) {
			locations = append(locations, customErr.Locations...)
		}
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Kind:          kind,
		DevMessage:    devMessage,
		Locations:     locations,
		Err:           err,
	}
}

func WrapWithoutError(statusCode int, clientMessage, devMessage string) *CustomError {
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		Kind:          KindInternal,
		DevMessage:    devMessage,
		Locations:     []Location{getLocation(2)},
	}
}

// KindOf returns the kind of the outermost CustomError in err's chain.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return ""
}

func IsAuthExpired(err error) bool {
	return KindOf(err) == KindAuthExpired
}

func IsNetworkOrServer(err error) bool {
	return KindOf(err) == KindNetworkOrServer
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// StatusCodeOf returns the HTTP status carried by err, or 0 when err is not a
// CustomError.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return 0
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
