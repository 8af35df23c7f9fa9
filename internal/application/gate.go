package application

import (
	"context"
	"sync"
)

// requestGate hands out increasing generation tokens. Starting a request
// cancels the context of the previous one, and only the holder of the latest
// token may commit its result.
type requestGate struct {
	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func (g *requestGate) begin(parent context.Context) (context.Context, uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
	}
	g.generation++
	ctx, cancel := context.WithCancel(parent)
	g.cancel = cancel

	return ctx, g.generation
}

// finish reports whether token is still the latest and, if so, releases its
// context.
func (g *requestGate) finish(token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if token != g.generation {
		return false
	}
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	return true
}

func (g *requestGate) invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.generation++
}
