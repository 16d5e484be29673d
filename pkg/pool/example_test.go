// Package pool provides example usage of the object pool.
package pool_test

import (
	"fmt"

	"github.com/ajitpratap0/objectpool/pkg/pool"
)

// Example demonstrates acquiring, releasing and reusing an instance.
func Example() {
	type Buffer struct {
		data []byte
	}

	p := pool.New[Buffer]()
	defer p.Close()

	h, err := p.Acquire()
	if err != nil {
		panic(err)
	}
	h.Value().data = append(h.Value().data, "Hello, pool!"...)
	first := h.Value()
	h.Release()

	// The released instance is handed out again, state intact
	h, _ = p.Acquire()
	defer h.Release()

	fmt.Println(h.Value() == first)
	fmt.Println(string(h.Value().data))

	// Output:
	// true
	// Hello, pool!
}

// ExampleUse shows scoped acquisition with automatic release.
func ExampleUse() {
	type Counter struct {
		n int
	}

	p := pool.New[Counter]()
	defer p.Close()

	for i := 0; i < 3; i++ {
		_ = pool.Use(p, func(c *Counter) error {
			c.n++
			return nil
		})
	}

	// One instance served all three uses
	_ = pool.Use(p, func(c *Counter) error {
		fmt.Printf("uses: %d, idle while in use: %d\n", c.n, p.Idle())
		return nil
	})

	// Output:
	// uses: 3, idle while in use: 0
}

// ExampleWithFactory demonstrates a custom factory and teardown hook.
func ExampleWithFactory() {
	type Conn struct {
		id int
	}

	next := 0
	p := pool.New(
		pool.WithFactory(func() (*Conn, error) {
			next++
			return &Conn{id: next}, nil
		}),
		pool.WithTeardown(func(c *Conn) error {
			fmt.Printf("closing conn %d\n", c.id)
			return nil
		}),
	)

	a, _ := p.Acquire()
	b, _ := p.Acquire()
	a.Release()
	b.Release()

	_ = p.Close()

	// Output:
	// closing conn 1
	// closing conn 2
}

// ExampleHandle_Move shows handing ownership to another owner.
func ExampleHandle_Move() {
	p := pool.New[[]string]()
	defer p.Close()

	h, _ := p.Acquire()
	owner := h.Move()

	fmt.Println(h.Live(), owner.Live())
	owner.Release()
	fmt.Println(p.Idle())

	// Output:
	// false true
	// 1
}
