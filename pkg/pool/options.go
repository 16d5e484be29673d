package pool

import (
	"go.uber.org/zap"
)

// Option configures a Pool at construction time.
type Option[T any] func(*Pool[T])

// WithFactory sets the function used to construct instances when the pool
// has no idle instance. An error from fn is returned by Acquire unchanged.
func WithFactory[T any](fn func() (*T, error)) Option[T] {
	return func(p *Pool[T]) {
		if fn != nil {
			p.factory = fn
		}
	}
}

// WithConstructor is WithFactory for constructors that cannot fail.
func WithConstructor[T any](fn func() *T) Option[T] {
	return func(p *Pool[T]) {
		if fn != nil {
			p.factory = func() (*T, error) { return fn(), nil }
		}
	}
}

// WithTeardown sets the hook Close runs on each idle instance. It replaces
// the default io.Closer detection.
func WithTeardown[T any](fn func(*T) error) Option[T] {
	return func(p *Pool[T]) {
		if fn != nil {
			p.teardown = fn
		}
	}
}

// WithLogger sets the logger used for construction, teardown and misuse
// messages.
func WithLogger[T any](l *zap.Logger) Option[T] {
	return func(p *Pool[T]) {
		p.logger = l
	}
}
