// Package objectpool provides a generic object-recycling pool for Go: a
// container that hands out reusable instances of a type and takes them back
// when the caller is done, instead of allocating and discarding them over
// and over.
//
// # Architecture
//
// The module is built around one component, pool.Pool[T]:
//
// 1. Idle stack: released instances wait on a LIFO stack, so the most
// recently used (and most likely cache-warm) instance is handed out next.
//
// 2. Handles: Acquire returns a *pool.Handle[T] that exclusively owns one
// instance. Releasing the handle returns the instance to the pool exactly
// once, however the owning scope is left.
//
// 3. Teardown: Close tears down every idle instance exactly once.
//
// The pool is single-threaded and never resets instance state between uses.
//
// # Quick Start
//
//	import "github.com/ajitpratap0/objectpool/pkg/pool"
//
//	p := pool.New[Scratch]()
//	defer p.Close()
//
//	h, err := p.Acquire()
//	if err != nil {
//	    return err
//	}
//	defer h.Release()
//
//	h.Value().Fill(input)
//
// # Key Packages
//
//	pkg/pool          - Pool[T], Handle[T] and the scoped Use helper
//	pkg/errors        - Structured error handling
//	pkg/logger        - Structured logging
//	pkg/config        - Workload configuration
//	pkg/testutil      - Test loggers, suites and an instrumented element type
//	internal/workload - Workload driver behind the objpool command
//	cmd/objpool       - Command that runs workloads and prints JSON reports
//
// # Command
//
//	objpool init-config workload.yaml
//	objpool run --config workload.yaml --burst 64 --release-order fifo
//	objpool version
package objectpool
