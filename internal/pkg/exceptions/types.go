package exceptions

import (
	"fmt"
	"healthease-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusGatewayTimeout, KindNetworkOrServer, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadGateway, KindNetworkOrServer, constvars.ErrClientServerUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrReadHTTPResponse = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusBadGateway, KindNetworkOrServer, constvars.ErrClientServerUnreachable, constvars.ErrDevReadHTTPResponse)
	}
	ErrRateLimiterWait = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusServiceUnavailable, KindNetworkOrServer, constvars.ErrClientServerUnreachable, constvars.ErrDevRateLimiterWait)
	}
	ErrDecodeResponse = func(err error, endpoint string) *CustomError {
		return buildCustomError(err, constvars.StatusBadGateway, KindNetworkOrServer, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevDecodeResponseFormat, endpoint))
	}

	// Remote API
	ErrAPIResponse = func(statusCode int, message, method, endpoint string) *CustomError {
		return buildCustomError(nil, statusCode, KindNetworkOrServer, message, fmt.Sprintf(constvars.ErrDevAPIResponseFormat, statusCode, method, endpoint))
	}
	ErrAuthExpired = func(message, method, endpoint string) *CustomError {
		if message == "" {
			message = constvars.ErrClientNotLoggedIn
		}
		return buildCustomError(nil, constvars.StatusUnauthorized, KindAuthExpired, message, fmt.Sprintf(constvars.ErrDevAuthExpiredFormat, method, endpoint))
	}

	// Upload
	ErrBuildMultipartBody = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevBuildMultipartBody)
	}
	ErrOpenUploadFile = func(err error, filename string) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, KindPerFileUpload, err.Error(), fmt.Sprintf(constvars.ErrDevOpenUploadFileFormat, filename))
	}
	ErrNoFilesSelected = func() *CustomError {
		return buildCustomError(nil, constvars.StatusBadRequest, KindValidation, constvars.ErrClientNoFilesSelected, constvars.ErrDevNoFilesSelected)
	}

	// Session storage
	ErrRedisGet = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrFileStoreRead = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFileStoreRead)
	}
	ErrFileStoreWrite = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevFileStoreWrite)
	}

	// Minio
	ErrMinioStatObject = func(err error, bucketName string) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, KindPerFileUpload, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMinioStatObjectFormat, bucketName))
	}
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return buildCustomError(err, constvars.StatusBadRequest, KindPerFileUpload, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevMinioGetObjectFormat, bucketName))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishFormat, queueName))
	}

	// Session and navigation
	ErrViewNotAllowed = func(view string) *CustomError {
		return buildCustomError(nil, constvars.StatusUnauthorized, KindValidation, constvars.ErrClientViewNotAllowed, fmt.Sprintf(constvars.ErrDevViewNotAllowedFormat, view))
	}
	ErrUnknownView = func(view string) *CustomError {
		return buildCustomError(nil, constvars.StatusNotFound, KindValidation, constvars.ErrClientUnknownView, fmt.Sprintf(constvars.ErrDevUnknownViewFormat, view))
	}
	ErrNoSession = func() *CustomError {
		return buildCustomError(nil, constvars.StatusUnauthorized, KindValidation, constvars.ErrClientNoSession, constvars.ErrDevNoSession)
	}
	ErrNoProfileDraft = func() *CustomError {
		return buildCustomError(nil, constvars.StatusConflict, KindValidation, constvars.ErrClientNoProfileDraft, constvars.ErrDevNoProfileDraft)
	}
	ErrInvalidAPIKey = func() *CustomError {
		return buildCustomError(nil, constvars.StatusUnauthorized, KindValidation, constvars.ErrClientInvalidAPIKey, constvars.ErrDevInvalidAPIKey)
	}
	ErrUnknownCollection = func(collection string) *CustomError {
		return buildCustomError(nil, constvars.StatusNotFound, KindValidation, constvars.ErrClientUnknownCollection, fmt.Sprintf(constvars.ErrDevUnknownCollectionFormat, collection))
	}
	ErrSessionExchange = func() *CustomError {
		return buildCustomError(nil, constvars.StatusBadGateway, KindNetworkOrServer, constvars.ErrClientInvalidCallback, constvars.ErrDevSessionExchangeFailed)
	}
	ErrAlreadyBootstrapped = func() *CustomError {
		return buildCustomError(nil, constvars.StatusConflict, KindInternal, constvars.ErrClientAlreadyStarted, constvars.ErrDevAlreadyBootstrapped)
	}

	// Location
	ErrLocationUnavailable = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusServiceUnavailable, KindLocationUnavailable, constvars.ErrClientLocationUnavailable, constvars.ErrDevLocationUnavailable)
	}

	// Map
	ErrMapProviderNotConfigured = func() *CustomError {
		return buildCustomError(nil, constvars.StatusServiceUnavailable, KindInternal, constvars.ErrClientMapUnavailable, constvars.ErrDevMapProviderNotConfigured)
	}
	ErrMapProviderFailed = func(err error) *CustomError {
		return buildCustomError(err, constvars.StatusServiceUnavailable, KindInternal, constvars.ErrClientMapUnavailable, constvars.ErrDevMapProviderFailed)
	}
)
