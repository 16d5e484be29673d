package testutil

// Widget is an instrumented element type for pool tests. Serial is an
// identity marker assigned at construction; Payload and Note are scratch
// state a test can write before release and read after reacquire.
type Widget struct {
	Serial  int
	Payload []byte
	Note    string

	tracker *Tracker
}

// Close records a teardown on the owning tracker.
func (w *Widget) Close() error {
	if w.tracker == nil {
		return nil
	}
	if w.tracker.teardowns == nil {
		w.tracker.teardowns = make(map[int]int)
	}
	w.tracker.TornDown++
	w.tracker.teardowns[w.Serial]++
	return w.tracker.TeardownErr
}

// Tracker counts Widget constructions and teardowns. The zero value is
// ready to use.
type Tracker struct {
	Constructed int
	TornDown    int

	// FailNext makes the next construction fail with this error.
	FailNext error
	// TeardownErr is returned by every Widget.Close.
	TeardownErr error

	teardowns map[int]int
}

// NewTracker returns a tracker with zero counts.
func NewTracker() *Tracker {
	return &Tracker{teardowns: make(map[int]int)}
}

// New constructs a Widget, honoring FailNext. Serials start at 1.
func (t *Tracker) New() (*Widget, error) {
	if err := t.FailNext; err != nil {
		t.FailNext = nil
		return nil, err
	}
	t.Constructed++
	return &Widget{Serial: t.Constructed, tracker: t}, nil
}

// TeardownCount returns how many times the widget with serial was torn down.
func (t *Tracker) TeardownCount(serial int) int {
	return t.teardowns[serial]
}
