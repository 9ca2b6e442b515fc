package rx

import "github.com/AnatoleLucet/rx/internal"

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

type Object struct {
	object *internal.Object
}

// Reactive wraps a plain keyed record so reads are tracked and writes
// notify subscribers. Values come back unmodified; nest Reactive objects
// explicitly to observe deeper structures.
func Reactive(values map[string]any) *Object {
	return &Object{
		internal.NewObject(values),
	}
}

// Get reads the value under key, subscribing the enclosing effect if any.
func (o *Object) Get(key string) any {
	return o.object.Get(key)
}

// Set writes the value under key and re-runs every subscriber, even when
// the value is unchanged.
func (o *Object) Set(key string, value any) {
	o.object.Set(key, value)
}

// Keys returns the object's own keys in sorted order.
func (o *Object) Keys() []string {
	return o.object.Keys()
}

// Dep identifies one (target, key) pair an effect subscribes to.
type Dep = internal.Dep

type Effect struct {
	effect *internal.Effect
}

type EffectOption func(*internal.EffectConfig)

// Lazy keeps the effect from running at creation; it only runs when
// called directly or when a dependency triggers it.
func Lazy() EffectOption {
	return func(c *internal.EffectConfig) { c.Lazy = true }
}

// WithScheduler substitutes fn for direct re-execution whenever one of
// the effect's dependencies changes.
func WithScheduler(fn func(*Effect)) EffectOption {
	return func(c *internal.EffectConfig) {
		c.Scheduler = func(e *internal.Effect) { fn(&Effect{e}) }
	}
}

// NewEffect creates an effect that re-runs whenever the reactive state it
// read during its last run changes. Unless Lazy, it runs once immediately,
// through the same path every later rerun uses.
func NewEffect(fn func(), opts ...EffectOption) *Effect {
	config := internal.EffectConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	return &Effect{
		internal.GetRuntime().NewEffect(func() any {
			fn()
			return nil
		}, config),
	}
}

// Run forces an immediate rerun.
func (e *Effect) Run() {
	e.effect.Run()
}

// Stop unsubscribes the effect from everything it reads and keeps it from
// re-subscribing.
func (e *Effect) Stop() {
	e.effect.Stop()
}

// Deps returns the (target, key) pairs the effect currently subscribes to.
func (e *Effect) Deps() []Dep {
	return e.effect.Deps()
}

type Computed[T any] struct {
	computed *internal.Computed
}

// NewComputed creates a lazily cached value derived from reactive state.
// The getter runs at most once between upstream changes.
func NewComputed[T any](getter func() T) *Computed[T] {
	return &Computed[T]{
		internal.GetRuntime().NewComputed(func() any {
			return getter()
		}),
	}
}

// Value returns the cached result, recomputing it if an upstream change
// invalidated it, and tracks the read like any other property.
func (c *Computed[T]) Value() T {
	return as[T](c.computed.Value())
}

type FlushMode = internal.FlushMode

const (
	FlushSync = internal.FlushSync
	FlushPost = internal.FlushPost
)

type WatchOption func(*internal.WatchConfig)

// Immediate runs the callback once at creation; oldValue is nil for that
// first call.
func Immediate() WatchOption {
	return func(c *internal.WatchConfig) { c.Immediate = true }
}

// WithFlush selects when the callback runs relative to the write that
// triggered it: FlushSync inside the write, FlushPost on the next Flush.
func WithFlush(mode FlushMode) WatchOption {
	return func(c *internal.WatchConfig) { c.Flush = mode }
}

// Watch observes source and calls callback(newValue, oldValue) when it
// changes. Source is either a getter func() any, used verbatim, or a
// reactive object, in which case every reachable property is watched and
// values arrive as nested map snapshots.
func Watch(source any, callback func(newValue, oldValue any), opts ...WatchOption) {
	config := internal.WatchConfig{}
	for _, opt := range opts {
		opt(&config)
	}

	var getter func() any
	switch src := source.(type) {
	case func() any:
		getter = src
	case internal.Observable:
		getter = func() any { return internal.Traverse(src) }
	default:
		panic("rx: watch source must be a func() any getter or a reactive object")
	}

	internal.GetRuntime().NewWatcher(getter, callback, config)
}

// Flush runs every watch job deferred by FlushPost, in FIFO order.
func Flush() {
	internal.GetRuntime().Flush()
}

// Untrack runs the given function without tracking any reactive dependencies.
func Untrack[T any](fn func() T) T {
	var result T
	internal.GetRuntime().Untrack(func() { result = fn() })
	return result
}
