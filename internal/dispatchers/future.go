package dispatchers

import "context"

// Deferred is a value available once a computation settles. Handlers may
// return one; in asynchronous mode the dispatcher awaits it before reporting.
type Deferred interface {
	Await() (any, error)
}

// Future is a Deferred settled exactly once.
type Future struct {
	done  chan struct{}
	value any
	err   error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) settle(value any, err error) {
	f.value, f.err = value, err
	close(f.done)
}

// Defer runs fn in its own goroutine and returns a Future for its result.
func Defer(ctx context.Context, fn func(ctx context.Context) (any, error)) *Future {
	f := newFuture()
	go func() {
		value, err := callGuarded(func() (any, error) { return fn(ctx) })
		f.settle(value, err)
	}()
	return f
}

// Resolved returns an already settled successful Future.
func Resolved(value any) *Future {
	f := newFuture()
	f.settle(value, nil)
	return f
}

// Rejected returns an already settled failed Future.
func Rejected(err error) *Future {
	f := newFuture()
	f.settle(nil, err)
	return f
}

// Await blocks until the Future settles.
func (f *Future) Await() (any, error) {
	<-f.done
	return f.value, f.err
}

// Done is closed once the Future settles.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

var _ Deferred = (*Future)(nil)
