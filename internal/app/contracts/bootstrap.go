package contracts

import "context"

// ClientLocation is the address the shell currently shows. Replace rewrites
// it without adding a history entry.
type ClientLocation interface {
	Href() string
	Replace(href string)
}

type SessionBootstrapper interface {
	Run(ctx context.Context) error
}
