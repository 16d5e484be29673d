package pool

import (
	"io"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ajitpratap0/objectpool/pkg/errors"
	"github.com/ajitpratap0/objectpool/pkg/logger"
)

// ReusePolicy describes what the pool does to an instance's state between
// one checkout and the next.
type ReusePolicy int

const (
	// ReuseAsIs hands instances out exactly as they were released. It is the
	// only policy: resetting state is left to T or to the caller.
	ReuseAsIs ReusePolicy = iota
)

// String returns the policy name.
func (r ReusePolicy) String() string {
	switch r {
	case ReuseAsIs:
		return "reuse_as_is"
	default:
		return "unknown"
	}
}

// Pool is a single-threaded store of idle instances of T.
//
// Idle instances are kept on a LIFO stack so that the most recently touched
// instance is handed out first. The pool grows on demand and never shrinks
// until Close.
//
// Pool is not safe for concurrent use.
type Pool[T any] struct {
	idle     []*T
	factory  func() (*T, error)
	teardown func(*T) error
	logger   *zap.Logger
	closed   bool
}

// New creates an empty pool. Without options, instances are created with
// new(T) and torn down with Close when *T implements io.Closer.
//
// Parameters:
//   - opts: Optional factory, teardown hook and logger
//
// Example:
//
//	p := pool.New[Scratch]()
//	defer p.Close()
func New[T any](opts ...Option[T]) *Pool[T] {
	p := &Pool[T]{
		factory:  newZero[T],
		teardown: closeIfCloser[T],
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = logger.With(zap.String("component", "pool"))
	}
	return p
}

// Acquire checks out an instance. The most recently released idle instance
// is reused if there is one; otherwise a new instance is constructed.
//
// The returned handle exclusively owns the instance until it is released.
// A factory error is returned unchanged and leaves the pool untouched.
//
// Example:
//
//	h, err := p.Acquire()
//	if err != nil {
//		return err
//	}
//	defer h.Release()
func (p *Pool[T]) Acquire() (*Handle[T], error) {
	if p.closed {
		return nil, errors.New(errors.ErrorTypeClosed, "acquire on closed pool")
	}

	if n := len(p.idle); n > 0 {
		obj := p.idle[n-1]
		p.idle[n-1] = nil
		p.idle = p.idle[:n-1]
		return newHandle(p, obj), nil
	}

	obj, err := p.factory()
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errors.New(errors.ErrorTypeConstruction, "factory returned nil instance")
	}

	if ce := p.logger.Check(zap.DebugLevel, "constructed instance"); ce != nil {
		ce.Write(zap.Stringer("policy", ReuseAsIs))
	}
	return newHandle(p, obj), nil
}

// release returns obj to the idle stack. Only Handle calls it.
func (p *Pool[T]) release(obj *T) {
	if p.closed {
		p.logger.Warn("instance released after pool close, tearing it down")
		if err := p.teardown(obj); err != nil {
			p.logger.Warn("teardown of late-released instance failed", zap.Error(err))
		}
		return
	}
	p.idle = append(p.idle, obj)
}

// Idle returns the number of idle instances held by the pool.
func (p *Pool[T]) Idle() int {
	return len(p.idle)
}

// Closed reports whether Close has been called.
func (p *Pool[T]) Closed() bool {
	return p.closed
}

// Close tears down every idle instance exactly once and marks the pool
// closed. Teardown continues past failures; all failures are returned
// together as an errors.ErrorTypeTeardown error. Checked-out instances are
// not touched. Calling Close again is a no-op.
func (p *Pool[T]) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	idle := p.idle
	p.idle = nil

	var errs error
	for i, obj := range idle {
		errs = multierr.Append(errs, p.teardown(obj))
		idle[i] = nil
	}

	p.logger.Debug("pool closed", zap.Int("torn_down", len(idle)))

	if errs != nil {
		return errors.Wrap(errs, errors.ErrorTypeTeardown, "failed to tear down idle instances").
			WithDetail("idle", len(idle)).
			WithDetail("failed", len(multierr.Errors(errs)))
	}
	return nil
}

func newZero[T any]() (*T, error) {
	return new(T), nil
}

func closeIfCloser[T any](obj *T) error {
	if c, ok := any(obj).(io.Closer); ok {
		return c.Close()
	}
	return nil
}
