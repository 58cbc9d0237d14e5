package apiclient

import (
	"context"
	"sync"
)

// Pending is an in-flight call that can be canceled.
type Pending[T any] struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu       sync.Mutex
	canceled bool
	result   T
	err      error
}

// Start runs the call in its own goroutine. Cancel aborts the underlying
// HTTP request; Wait then returns an error matching context.Canceled.
func Start[T any](ctx context.Context, c *Client, call *Call[T]) *Pending[T] {
	ctx, cancel := context.WithCancel(ctx)
	p := &Pending[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(p.done)
		defer cancel()
		result, err := Do(ctx, c, call)
		p.mu.Lock()
		p.result, p.err = result, err
		p.mu.Unlock()
	}()
	return p
}

// Cancel aborts the call. Calling it after completion has no effect.
func (p *Pending[T]) Cancel() {
	select {
	case <-p.done:
		return
	default:
	}
	p.mu.Lock()
	p.canceled = true
	p.mu.Unlock()
	p.cancel()
}

// Canceled reports whether Cancel was called before the call completed.
func (p *Pending[T]) Canceled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.canceled
}

// Done is closed once the call has completed or been aborted.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the call finishes.
func (p *Pending[T]) Wait() (T, error) {
	<-p.done
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result, p.err
}
