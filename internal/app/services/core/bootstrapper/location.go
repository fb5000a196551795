package bootstrapper

import (
	"strings"
	"sync"

	"healthease-client/internal/pkg/constvars"
)

type Location struct {
	mu   sync.RWMutex
	href string
}

// NewLocation holds the address the process was started with.
func NewLocation(href string) *Location {
	return &Location{href: href}
}

func (l *Location) Href() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.href
}

func (l *Location) Replace(href string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.href = href
}

// ExchangeCode returns the one-time code following session_id= in the
// fragment of href. The code ends at the next '&'.
func ExchangeCode(href string) (string, bool) {
	_, fragment, found := strings.Cut(href, "#")
	if !found {
		return "", false
	}
	_, code, found := strings.Cut(fragment, constvars.AuthCallbackFragmentMarker)
	if !found {
		return "", false
	}
	code, _, _ = strings.Cut(code, "&")
	if code == "" {
		return "", false
	}
	return code, true
}

// StripFragment drops everything from the first '#'.
func StripFragment(href string) string {
	base, _, _ := strings.Cut(href, "#")
	return base
}
