package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler recovers panics into a 500 response.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			err := panicError(rec)
			m.Log.Error("Middlewares.ErrorHandler recovered from panic",
				zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(r.Context())),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Any(constvars.LoggingPanicKey, rec),
			)
			utils.BuildErrorResponse(m.Log, w, err)
		}()
		next.ServeHTTP(w, r)
	})
}

func panicError(rec interface{}) error {
	switch x := rec.(type) {
	case error:
		return x
	case string:
		return errors.New(x)
	case fmt.Stringer:
		return errors.New(x.String())
	default:
		return errors.New(constvars.ErrDevUnknownPanic)
	}
}
