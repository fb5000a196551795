package views

import (
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type authState int

const (
	unauthenticated authState = iota
	authenticated
)

type event int

const (
	eventNavigate event = iota
	eventAuthenticate
	eventLogout
)

// transitions lists, per auth state and event, whether the event is honored
// and the auth state it leads to.
var transitions = map[authState]map[event]authState{
	unauthenticated: {
		eventAuthenticate: authenticated,
		eventLogout:       unauthenticated,
	},
	authenticated: {
		eventNavigate:     authenticated,
		eventAuthenticate: authenticated,
		eventLogout:       unauthenticated,
	},
}

type viewController struct {
	Log *zap.Logger

	mu        sync.RWMutex
	view      models.ViewState
	auth      authState
	observers []contracts.ViewObserver
}

// NewViewController starts unauthenticated on the home view. Transitions
// never fetch data.
func NewViewController(logger *zap.Logger) contracts.ViewController {
	return &viewController{
		Log:  logger,
		view: models.ViewHome,
		auth: unauthenticated,
	}
}

func (c *viewController) Current() models.ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

func (c *viewController) IsAuthenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.auth == authenticated
}

// Navigate is honored while authenticated. Home is always reachable.
func (c *viewController) Navigate(to models.ViewState) error {
	if _, ok := models.ParseViewState(string(to)); !ok {
		return exceptions.ErrUnknownView(string(to))
	}

	c.mu.Lock()
	if to != models.ViewHome {
		if _, ok := transitions[c.auth][eventNavigate]; !ok {
			c.mu.Unlock()
			c.Log.Info("viewController.Navigate refused while unauthenticated",
				zap.String(constvars.LoggingViewToKey, string(to)),
			)
			return exceptions.ErrViewNotAllowed(string(to))
		}
	}
	from := c.view
	c.view = to
	observers := c.snapshotObservers()
	c.mu.Unlock()

	c.notify(observers, from, to)
	return nil
}

func (c *viewController) Authenticate() {
	c.apply(eventAuthenticate, models.ViewDashboard)
}

func (c *viewController) Logout() {
	c.apply(eventLogout, models.ViewHome)
}

func (c *viewController) Subscribe(observer contracts.ViewObserver) {
	if observer == nil {
		return
	}
	c.mu.Lock()
	c.observers = append(c.observers, observer)
	c.mu.Unlock()
}

func (c *viewController) apply(e event, to models.ViewState) {
	c.mu.Lock()
	next, ok := transitions[c.auth][e]
	if !ok {
		c.mu.Unlock()
		return
	}
	from := c.view
	c.auth = next
	c.view = to
	observers := c.snapshotObservers()
	c.mu.Unlock()

	c.notify(observers, from, to)
}

func (c *viewController) snapshotObservers() []contracts.ViewObserver {
	return append([]contracts.ViewObserver(nil), c.observers...)
}

// notify runs outside the lock so observers may read the controller.
func (c *viewController) notify(observers []contracts.ViewObserver, from, to models.ViewState) {
	c.Log.Debug("viewController transition",
		zap.String(constvars.LoggingViewFromKey, string(from)),
		zap.String(constvars.LoggingViewToKey, string(to)),
	)
	for _, observer := range observers {
		observer(from, to)
	}
}
