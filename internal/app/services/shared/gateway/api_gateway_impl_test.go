package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"healthease-client/internal/app/config"
	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/shared/sessionstore"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGateway(t *testing.T, baseUrl string) (contracts.APIGateway, contracts.SessionStore) {
	t.Helper()
	sessions := sessionstore.NewSessionStore(
		sessionstore.NewFileStore(filepath.Join(t.TempDir(), "session.json")),
		zap.NewNop(),
	)
	cfg := &config.InternalConfig{
		API: config.API{
			BaseUrl:                 baseUrl,
			RequestTimeoutInSeconds: 5,
		},
	}
	return NewAPIGateway(cfg, sessions, zap.NewNop()), sessions
}

func saveSession(t *testing.T, sessions contracts.SessionStore) {
	t.Helper()
	require.NoError(t, sessions.Save(context.Background(), &models.Session{
		Token: "tok-1",
		User:  models.UserRecord{UserID: "u1", Email: "jane@example.com", Name: "Jane"},
	}))
}

func TestAPIGateway_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("Injects Session Token And Decodes Body", func(t *testing.T) {
		var gotSession, gotRequestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotSession = r.Header.Get(constvars.HeaderXSessionID)
			gotRequestID = r.Header.Get(constvars.HeaderXRequestID)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			io.WriteString(w, `[{"doctor_id":"d1","name":"Dr. Who","rating":4.5}]`)
		}))
		defer server.Close()

		gw, sessions := newTestGateway(t, server.URL)
		saveSession(t, sessions)

		var doctors []models.Doctor
		err := gw.Get(ctx, constvars.EndpointDoctors, nil, &doctors)

		require.NoError(t, err)
		assert.Equal(t, "tok-1", gotSession)
		assert.NotEmpty(t, gotRequestID)
		require.Len(t, doctors, 1)
		assert.Equal(t, "d1", doctors[0].DoctorID)
	})

	t.Run("Omits Session Header Without Session", func(t *testing.T) {
		var hasHeader bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, hasHeader = r.Header[http.CanonicalHeaderKey(constvars.HeaderXSessionID)]
			io.WriteString(w, `{"status":"healthy"}`)
		}))
		defer server.Close()

		gw, _ := newTestGateway(t, server.URL)

		err := gw.Get(ctx, constvars.EndpointHealth, nil, nil)

		require.NoError(t, err)
		assert.False(t, hasHeader)
	})

	t.Run("Encodes Query And JSON Body", func(t *testing.T) {
		var gotQuery url.Values
		var gotBody, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.Query()
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
			gotContentType = r.Header.Get(constvars.HeaderContentType)
			io.WriteString(w, `{}`)
		}))
		defer server.Close()

		gw, _ := newTestGateway(t, server.URL)

		err := gw.Call(ctx, &contracts.APIRequest{
			Method:   constvars.MethodPost,
			Endpoint: constvars.EndpointSOS,
			Query:    url.Values{"lat": []string{"1.5"}},
			Body:     map[string]string{"emergency_type": "medical"},
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "1.5", gotQuery.Get("lat"))
		assert.JSONEq(t, `{"emergency_type":"medical"}`, gotBody)
		assert.Equal(t, constvars.MIMEApplicationJSON, gotContentType)
	})

	t.Run("Unauthorized Clears Session And Runs Hooks", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"detail":"Invalid session"}`)
		}))
		defer server.Close()

		gw, sessions := newTestGateway(t, server.URL)
		saveSession(t, sessions)

		var hookCalls int32
		var sessionSeenByHook *models.Session
		gw.OnAuthExpired(func(ctx context.Context) {
			atomic.AddInt32(&hookCalls, 1)
			sessionSeenByHook = sessions.Current()
		})

		err := gw.Get(ctx, constvars.EndpointProfile, nil, nil)

		require.Error(t, err)
		assert.True(t, exceptions.IsAuthExpired(err))
		assert.Equal(t, "Invalid session", err.(*exceptions.CustomError).ClientMessage)
		assert.Equal(t, int32(1), atomic.LoadInt32(&hookCalls))
		assert.Nil(t, sessionSeenByHook)
		assert.Nil(t, sessions.Current())

		reloaded, loadErr := sessions.Load(ctx)
		assert.NoError(t, loadErr)
		assert.Nil(t, reloaded)
	})

	t.Run("Other Error Status Keeps Session", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail":"Report not found"}`)
		}))
		defer server.Close()

		gw, sessions := newTestGateway(t, server.URL)
		saveSession(t, sessions)

		err := gw.Get(ctx, "/api/reports/missing", nil, nil)

		require.Error(t, err)
		assert.False(t, exceptions.IsAuthExpired(err))
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
		assert.Equal(t, "Report not found", err.(*exceptions.CustomError).ClientMessage)
		assert.Equal(t, "tok-1", sessions.Token())
	})

	t.Run("Transport Failure Is Network Kind", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseUrl := server.URL
		server.Close()

		gw, _ := newTestGateway(t, baseUrl)

		err := gw.Get(ctx, constvars.EndpointDoctors, nil, nil)

		require.Error(t, err)
		assert.True(t, exceptions.IsNetworkOrServer(err))
	})

	t.Run("Malformed Success Body Is Decode Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `not json`)
		}))
		defer server.Close()

		gw, _ := newTestGateway(t, server.URL)

		var doctors []models.Doctor
		err := gw.Get(ctx, constvars.EndpointDoctors, nil, &doctors)

		assert.Error(t, err)
	})

	t.Run("Raw Body Keeps Content Type", func(t *testing.T) {
		var gotContentType, gotBody string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get(constvars.HeaderContentType)
			raw, _ := io.ReadAll(r.Body)
			gotBody = string(raw)
		}))
		defer server.Close()

		gw, _ := newTestGateway(t, server.URL)

		err := gw.Call(ctx, &contracts.APIRequest{
			Method:        constvars.MethodPost,
			Endpoint:      constvars.EndpointReportsUpload,
			RawBody:       strings.NewReader("raw-bytes"),
			ContentType:   "multipart/form-data; boundary=x",
			ContentLength: int64(len("raw-bytes")),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, "multipart/form-data; boundary=x", gotContentType)
		assert.Equal(t, "raw-bytes", gotBody)
	})
}

func TestExtractErrorMessage(t *testing.T) {
	t.Run("Detail String", func(t *testing.T) {
		assert.Equal(t, "Doctor not found", extractErrorMessage([]byte(`{"detail":"Doctor not found"}`), 404))
	})

	t.Run("Detail Validation List", func(t *testing.T) {
		body := []byte(`{"detail":[{"loc":["body","date"],"msg":"field required"}]}`)
		assert.Equal(t, "field required", extractErrorMessage(body, 422))
	})

	t.Run("Message Field", func(t *testing.T) {
		assert.Equal(t, "bad gateway", extractErrorMessage([]byte(`{"message":"bad gateway"}`), 502))
	})

	t.Run("Falls Back To Status Text", func(t *testing.T) {
		assert.Equal(t, http.StatusText(503), extractErrorMessage([]byte(`<html>`), 503))
	})
}
