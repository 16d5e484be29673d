package pool

// noCopy lets go vet's copylocks check flag handles copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Handle is the ownership token for one checked-out instance.
//
// A handle is either live (owns an instance) or empty. Releasing a live
// handle returns its instance to the pool and empties it; releasing an empty
// handle does nothing, so exactly one release happens per Acquire no matter
// how many times Release runs. Always pass handles as *Handle[T].
type Handle[T any] struct {
	_    noCopy
	pool *Pool[T]
	obj  *T
}

func newHandle[T any](p *Pool[T], obj *T) *Handle[T] {
	return &Handle[T]{pool: p, obj: obj}
}

// Value returns the owned instance, or nil once the handle is empty.
func (h *Handle[T]) Value() *T {
	if h == nil {
		return nil
	}
	return h.obj
}

// Live reports whether the handle still owns an instance.
func (h *Handle[T]) Live() bool {
	return h != nil && h.obj != nil
}

// Release gives the instance back to its pool. The instance is not reset.
// The handle is empty afterwards and further calls are no-ops.
//
// Example:
//
//	h, _ := p.Acquire()
//	defer h.Release()
func (h *Handle[T]) Release() {
	if h == nil || h.obj == nil {
		return
	}
	p, obj := h.pool, h.obj
	h.pool, h.obj = nil, nil
	p.release(obj)
}

// Move transfers ownership to a new handle and leaves h empty. Moving an
// empty or nil handle returns another empty handle.
func (h *Handle[T]) Move() *Handle[T] {
	if h == nil {
		return &Handle[T]{}
	}
	moved := &Handle[T]{pool: h.pool, obj: h.obj}
	h.pool, h.obj = nil, nil
	return moved
}
