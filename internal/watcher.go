package internal

type FlushMode int

const (
	// FlushSync runs the watch job inside the trigger that invalidated it.
	FlushSync FlushMode = iota

	// FlushPost defers the job to the next Flush of the runtime's queue,
	// so the callback sees the state after the current span of writes.
	FlushPost
)

type WatchConfig struct {
	Immediate bool
	Flush     FlushMode
}

// Watcher re-runs a getter whenever one of its dependencies changes and
// hands the callback the new and previous results.
type Watcher struct {
	effect   *Effect
	callback func(newValue, oldValue any)
	oldValue any
}

func (r *Runtime) NewWatcher(getter func() any, callback func(newValue, oldValue any), config WatchConfig) *Watcher {
	w := &Watcher{
		callback: callback,
	}

	w.effect = r.NewEffect(getter, EffectConfig{
		Lazy: true,
		Scheduler: func(*Effect) {
			if config.Flush == FlushPost {
				GetRuntime().Defer(w.job)
			} else {
				w.job()
			}
		},
	})

	if config.Immediate {
		w.job()
	} else {
		w.oldValue = w.effect.Run()
	}

	return w
}

// job re-evaluates the getter and reports the transition. oldValue is
// updated only after the callback returns, so the callback still sees the
// value it is transitioning away from.
func (w *Watcher) job() {
	newValue := w.effect.Run()
	w.callback(newValue, w.oldValue)
	w.oldValue = newValue
}
