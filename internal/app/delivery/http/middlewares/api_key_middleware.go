package middlewares

import (
	"crypto/subtle"
	"net/http"

	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

// ControlAPIKey rejects requests without the configured key. With no key
// configured every request passes.
func (m *Middlewares) ControlAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		expected := m.InternalConfig.Control.APIKey
		if expected == "" {
			next.ServeHTTP(w, r)
			return
		}

		apiKey := r.Header.Get(constvars.HeaderXAPIKey)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(expected)) != 1 {
			m.Log.Warn("Control API key rejected",
				zap.Any(constvars.LoggingRequestIDKey, r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY)),
				zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.String(constvars.LoggingMethodKey, r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey())
			return
		}

		next.ServeHTTP(w, r)
	})
}
