package bootstrapper

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/core/views"
	"healthease-client/internal/app/services/shared/activity"
	"healthease-client/internal/app/services/shared/gateway/gatewaytest"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingLoader struct{ loads atomic.Int32 }

func (l *countingLoader) LoadAll(ctx context.Context) error {
	l.loads.Add(1)
	return nil
}

func (l *countingLoader) Refresh(ctx context.Context, collection contracts.Collection) error {
	return nil
}

func (l *countingLoader) Snapshot() models.Snapshot { return models.Snapshot{} }

func (l *countingLoader) Reset() {}

type fixture struct {
	api      *gatewaytest.FakeAPI
	sessions contracts.SessionStore
	views    contracts.ViewController
	loader   *countingLoader
	location *Location
	runner   contracts.SessionBootstrapper
}

func newFixture(t *testing.T, href string) *fixture {
	api := gatewaytest.NewFakeAPI(t)
	gw, sessions := gatewaytest.NewGateway(t, api)
	f := &fixture{
		api:      api,
		sessions: sessions,
		views:    views.NewViewController(zap.NewNop()),
		loader:   &countingLoader{},
		location: NewLocation(href),
	}
	f.runner = NewSessionBootstrapper(gw, sessions, f.views, f.loader, f.location, activity.NewLogPublisher(zap.NewNop()), zap.NewNop())
	return f
}

func TestSessionBootstrapper_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("Exchanges Callback Code Once And Strips Fragment", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000/#session_id=abc123")
		f.api.JSON(constvars.MethodPost, constvars.EndpointAuthExchange, http.StatusOK, `{"session_token":"tok-1","user":{"user_id":"u1","email":"ada@example.com","name":"Ada","profile":{}}}`)

		require.NoError(t, f.runner.Run(ctx))

		exchanges := f.api.Requests(constvars.MethodPost, constvars.EndpointAuthExchange)
		require.Len(t, exchanges, 1)
		assert.JSONEq(t, `{"session_id":"abc123"}`, string(exchanges[0].Body))
		assert.Equal(t, "http://localhost:3000/", f.location.Href())
		assert.NotContains(t, f.location.Href(), "session_id")
		assert.Equal(t, "tok-1", f.sessions.Token())
		assert.Equal(t, models.ViewDashboard, f.views.Current())
		assert.Equal(t, int32(1), f.loader.loads.Load())
	})

	t.Run("Failed Exchange Still Strips Fragment", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000/#session_id=used-code")
		f.api.JSON(constvars.MethodPost, constvars.EndpointAuthExchange, http.StatusBadRequest, `{"detail":"Invalid session"}`)

		err := f.runner.Run(ctx)

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
		assert.Equal(t, "http://localhost:3000/", f.location.Href())
		assert.Nil(t, f.sessions.Current())
		assert.Equal(t, models.ViewHome, f.views.Current())
		assert.Equal(t, int32(0), f.loader.loads.Load())
	})

	t.Run("Exchange Without Token Is Rejected", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000/#session_id=abc")
		f.api.JSON(constvars.MethodPost, constvars.EndpointAuthExchange, http.StatusOK, `{"user":{"user_id":"u1"}}`)

		err := f.runner.Run(ctx)

		assert.True(t, exceptions.IsNetworkOrServer(err))
		assert.Equal(t, models.ViewHome, f.views.Current())
	})

	t.Run("Restores Stored Session Without Calling API", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000/")
		gatewaytest.SaveSession(t, f.sessions, "stored-token", "u1")

		require.NoError(t, f.runner.Run(ctx))

		assert.Empty(t, f.api.Requests(constvars.MethodPost, constvars.EndpointAuthExchange))
		assert.Equal(t, models.ViewDashboard, f.views.Current())
		assert.True(t, f.views.IsAuthenticated())
		assert.Equal(t, int32(1), f.loader.loads.Load())
	})

	t.Run("Stays Home Without Session", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000/")

		require.NoError(t, f.runner.Run(ctx))

		assert.Equal(t, models.ViewHome, f.views.Current())
		assert.Equal(t, int32(0), f.loader.loads.Load())
	})

	t.Run("Runs Only Once", func(t *testing.T) {
		f := newFixture(t, "http://localhost:3000/#session_id=abc123")
		f.api.JSON(constvars.MethodPost, constvars.EndpointAuthExchange, http.StatusOK, `{"session_token":"tok-1","user":{"user_id":"u1"}}`)
		require.NoError(t, f.runner.Run(ctx))

		err := f.runner.Run(ctx)

		assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
		assert.Len(t, f.api.Requests(constvars.MethodPost, constvars.EndpointAuthExchange), 1)
	})
}

func TestExchangeCode(t *testing.T) {
	testCases := []struct {
		name     string
		href     string
		expected string
		found    bool
	}{
		{name: "Only Code", href: "http://localhost/#session_id=abc123", expected: "abc123", found: true},
		{name: "Code Followed By Params", href: "http://localhost/app#session_id=abc&state=x", expected: "abc", found: true},
		{name: "Code After Other Params", href: "/#foo=1&session_id=xyz", expected: "xyz", found: true},
		{name: "Marker In Query Ignored", href: "http://localhost/?session_id=abc", found: false},
		{name: "No Fragment", href: "http://localhost/", found: false},
		{name: "Empty Code", href: "http://localhost/#session_id=", found: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, found := ExchangeCode(tc.href)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, code)
		})
	}
}

func TestStripFragment(t *testing.T) {
	assert.Equal(t, "http://localhost/app", StripFragment("http://localhost/app#session_id=abc"))
	assert.Equal(t, "http://localhost/app", StripFragment("http://localhost/app"))
}
