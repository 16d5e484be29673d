// Package pool implements a generic, single-threaded object pool that hands
// out reusable instances of a type and takes them back automatically when the
// caller is done with them. It trades a small idle stack for fewer
// allocations of frequently created and discarded objects.
//
// Architecture
//
// A Pool[T] owns a last-in-first-out stack of idle *T values. Acquire pops the
// most recently released instance, or constructs a new one through the
// factory when the stack is empty. The instance is wrapped in a Handle[T],
// an ownership token bound to the pool. Releasing the handle pushes the
// instance back onto the stack instead of discarding it.
//
// At any moment every instance the pool has constructed is in exactly one of
// two states:
//
//   - idle: referenced once from the pool's stack
//   - checked out: referenced only by a single live handle
//
// Core Types:
//
//   - Pool[T]: the idle stack, the factory and the teardown hook
//   - Handle[T]: move-only ownership token for one checked-out instance
//   - Option[T]: functional options accepted by New
//
// Usage Patterns
//
// Basic usage:
//
//	p := pool.New[Buffer]()
//	defer p.Close()
//
//	h, err := p.Acquire()
//	if err != nil {
//		return err
//	}
//	defer h.Release() // runs on return, early return and panic
//
//	h.Value().data = append(h.Value().data[:0], payload...)
//
// Scoped usage:
//
//	err := pool.Use(p, func(b *Buffer) error {
//		return b.Fill(payload)
//	})
//
// Custom construction and teardown:
//
//	p := pool.New(
//		pool.WithFactory(func() (*Conn, error) { return dial(addr) }),
//		pool.WithTeardown(func(c *Conn) error { return c.Close() }),
//	)
//
// Reuse Policy
//
// The pool never resets, clears or validates an instance. A reacquired
// instance carries whatever state it had when it was released (ReuseAsIs).
// Types that need a clean slate must reset themselves, or the caller must do
// it after Acquire.
//
// Handles
//
// A handle releases its instance exactly once. Release is idempotent, so an
// explicit Release followed by a deferred one is safe. Move transfers
// ownership to a new handle and leaves the old one empty. Handles must not be
// copied by value; go vet reports copies.
//
// Teardown
//
// Close tears down every idle instance exactly once, using the teardown hook
// or, by default, Close on instances that implement io.Closer. Instances that
// are checked out at that point are not tracked. When their handles are
// released later, the instance is torn down immediately instead of being
// stored, and a warning is logged. Acquire on a closed pool fails with an
// errors.ErrorTypeClosed error.
//
// Thread Safety
//
// Pool and Handle are not safe for concurrent use. Acquire and Release must
// be called from one goroutine, or serialized by the caller. Concurrent use
// without external locking is a data race.
package pool
