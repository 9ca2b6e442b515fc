package internal

// Computed is a lazily evaluated, cached derived value. It is itself
// observable: readers subscribe to it under the synthetic "value" key, and
// its scheduler re-publishes upstream invalidations through the ordinary
// trigger channel, since tracking inside the inner effect is local to it.
type Computed struct {
	effect *Effect
	value  any
	dirty  bool
}

func (r *Runtime) NewComputed(getter func() any) *Computed {
	c := &Computed{
		dirty: true,
	}

	c.effect = r.NewEffect(getter, EffectConfig{
		Lazy: true,
		Scheduler: func(*Effect) {
			c.dirty = true
			GetRuntime().Trigger(c, "value")
		},
	})

	return c
}

// Value returns the cached result, recomputing only when an upstream
// trigger has marked it dirty. The read always tracks, so an enclosing
// effect subscribes to this computed like any other property.
func (c *Computed) Value() any {
	if c.dirty {
		c.value = c.effect.Run()
		c.dirty = false
	}

	GetRuntime().Track(c, "value")

	return c.value
}
