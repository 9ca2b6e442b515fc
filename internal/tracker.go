package internal

// Tracker maintains the active-effect stack. The top of the stack is what
// reads subscribe to; when an effect finishes, the previous top is
// restored exactly, which is what makes nested effects work.
type Tracker struct {
	tracking bool

	stack []*Effect
}

func NewTracker() *Tracker {
	return &Tracker{
		tracking: true,
	}
}

func (t *Tracker) Push(e *Effect) {
	t.stack = append(t.stack, e)
}

func (t *Tracker) Pop() {
	t.stack = t.stack[:len(t.stack)-1]
}

// Active returns the nearest enclosing executing effect, or nil.
func (t *Tracker) Active() *Effect {
	if len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}

func (t *Tracker) ShouldTrack() bool {
	return t.tracking && t.Active() != nil
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}
