package mapview

import (
	"context"
	"sync"
)

// Gate is opened once when the map provider finished loading, successfully
// or not. Rendering waits on it.
type Gate struct {
	once sync.Once
	done chan struct{}
	err  error
}

func NewGate() *Gate {
	return &Gate{done: make(chan struct{})}
}

// Open releases every waiter. Only the first call has an effect.
func (g *Gate) Open(err error) {
	g.once.Do(func() {
		g.err = err
		close(g.done)
	})
}

func (g *Gate) Ready() bool {
	select {
	case <-g.done:
		return g.err == nil
	default:
		return false
	}
}

func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return g.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
