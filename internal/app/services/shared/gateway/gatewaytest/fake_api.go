// Package gatewaytest provides an in-process stand-in for the remote health
// API and a gateway wired to it.
package gatewaytest

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"healthease-client/internal/app/config"
	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/shared/gateway"
	"healthease-client/internal/app/services/shared/sessionstore"
	"healthease-client/internal/pkg/constvars"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type Recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   []byte
}

type FakeAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Recorded
}

// NewFakeAPI starts a server that answers registered routes and 404 for
// everything else. It is closed when the test ends.
func NewFakeAPI(t testing.TB) *FakeAPI {
	t.Helper()
	api := &FakeAPI{routes: make(map[string]http.HandlerFunc)}
	api.Server = httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(api.Server.Close)
	return api
}

func (f *FakeAPI) URL() string {
	return f.Server.URL
}

func (f *FakeAPI) Handle(method, path string, handler http.HandlerFunc) {
	f.mu.Lock()
	f.routes[method+" "+path] = handler
	f.mu.Unlock()
}

// JSON answers method and path with body encoded as JSON. A string body is
// written as is.
func (f *FakeAPI) JSON(method, path string, status int, body interface{}) {
	f.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, status, body)
	})
}

func (f *FakeAPI) Requests(method, path string) []Recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []Recorded
	for _, request := range f.requests {
		if request.Method == method && request.Path == path {
			matched = append(matched, request)
		}
	}
	return matched
}

func (f *FakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	r.Body = io.NopCloser(bytes.NewReader(body))

	f.mu.Lock()
	f.requests = append(f.requests, Recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Header: r.Header.Clone(),
		Body:   body,
	})
	handler, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		WriteJSON(w, http.StatusNotFound, `{"detail":"Not Found"}`)
		return
	}
	handler(w, r)
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(status)
	switch value := body.(type) {
	case string:
		io.WriteString(w, value)
	case []byte:
		w.Write(value)
	default:
		json.NewEncoder(w).Encode(value)
	}
}

// NewGateway returns a gateway talking to api and the file backed session
// store it reads the token from.
func NewGateway(t testing.TB, api *FakeAPI) (contracts.APIGateway, contracts.SessionStore) {
	t.Helper()
	sessions := sessionstore.NewSessionStore(
		sessionstore.NewFileStore(filepath.Join(t.TempDir(), "session.json")),
		zap.NewNop(),
	)
	cfg := &config.InternalConfig{
		API: config.API{
			BaseUrl:                 api.URL(),
			RequestTimeoutInSeconds: 5,
		},
	}
	return gateway.NewAPIGateway(cfg, sessions, zap.NewNop()), sessions
}

func SaveSession(t testing.TB, sessions contracts.SessionStore, token, userID string) *models.Session {
	t.Helper()
	session := &models.Session{
		Token: token,
		User: models.UserRecord{
			UserID: userID,
			Email:  userID + "@example.com",
			Name:   "Test " + userID,
		},
	}
	if err := sessions.Save(context.Background(), session); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	return session
}
