package pool

// Use acquires an instance from p, passes it to fn and releases it on every
// exit path, including a panic in fn. It returns fn's error, or the Acquire
// error if no instance could be obtained.
//
// fn must not keep the instance after it returns.
//
// Example:
//
//	err := pool.Use(p, func(b *Buffer) error {
//		b.data = append(b.data[:0], payload...)
//		return send(b.data)
//	})
func Use[T any](p *Pool[T], fn func(*T) error) error {
	h, err := p.Acquire()
	if err != nil {
		return err
	}
	defer h.Release()

	return fn(h.Value())
}
