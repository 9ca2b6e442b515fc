package internal

type EffectConfig struct {
	Lazy      bool
	Scheduler func(*Effect)
}

// Effect wraps a zero-argument body whose dependencies on observed state
// are recomputed each time it runs.
type Effect struct {
	fn        func() any
	scheduler func(*Effect)
	stopped   bool

	// deps is the inverse index: every subscriber set this effect
	// currently belongs to, cleared and rebuilt on each run.
	deps []*subscriberSet
}

func (r *Runtime) NewEffect(fn func() any, config EffectConfig) *Effect {
	e := &Effect{
		fn:        fn,
		scheduler: config.Scheduler,
	}

	if !config.Lazy {
		e.Run()
	}

	return e
}

// Run re-executes the effect's body and returns its result. Stale
// subscriptions from the previous run are purged first, so after the run
// the effect is subscribed to exactly the keys it just read.
func (e *Effect) Run() any {
	e.cleanup()

	if e.stopped {
		return e.fn()
	}

	r := GetRuntime()
	r.tracker.Push(e)
	defer r.tracker.Pop()

	return e.fn()
}

// Stop removes the effect from every subscriber set it belongs to and
// keeps it from re-subscribing. Running a stopped effect still executes
// its body, just without tracking.
func (e *Effect) Stop() {
	e.cleanup()
	e.stopped = true
}

// Deps returns the (target, key) pairs the effect currently subscribes to.
func (e *Effect) Deps() []Dep {
	deps := make([]Dep, 0, len(e.deps))
	for _, set := range e.deps {
		deps = append(deps, Dep{Target: set.target, Key: set.key})
	}

	return deps
}

func (e *Effect) cleanup() {
	for _, set := range e.deps {
		set.remove(e)
	}

	e.deps = e.deps[:0]
}
