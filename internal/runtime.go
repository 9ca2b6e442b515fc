package internal

type Runtime struct {
	store   *DepStore
	tracker *Tracker
	queue   *JobQueue
}

func NewRuntime() *Runtime {
	return &Runtime{
		store:   NewDepStore(),
		tracker: NewTracker(),
		queue:   NewJobQueue(),
	}
}

// Track records that the currently active effect depends on (target, key).
// Reading reactive state outside any effect is legal and tracks nothing.
func (r *Runtime) Track(target any, key string) {
	if !r.tracker.ShouldTrack() {
		return
	}

	r.store.Link(target, key, r.tracker.Active())
}

// Trigger re-runs every effect subscribed to (target, key), either directly
// or through the effect's scheduler. The currently executing effect is
// skipped so an effect writing a key it also reads doesn't recurse into
// itself. Longer cycles across multiple effects are not guarded.
func (r *Runtime) Trigger(target any, key string) {
	subs := r.store.Subscribers(target, key, r.tracker.Active())

	for _, effect := range subs {
		if effect.scheduler != nil {
			effect.scheduler(effect)
		} else {
			effect.Run()
		}
	}
}

// Untrack runs fn with dependency tracking suspended.
func (r *Runtime) Untrack(fn func()) {
	r.tracker.RunUntracked(fn)
}

// Defer enqueues a job for the next Flush.
func (r *Runtime) Defer(job func()) {
	r.queue.Enqueue(job)
}

// Flush drains the deferred job queue in FIFO order.
// Jobs enqueued while draining run in the same flush.
func (r *Runtime) Flush() {
	r.queue.Drain()
}
