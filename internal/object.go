package internal

import "slices"

// Object is the observation layer over a plain keyed record: reads track,
// writes trigger. Values come back unmodified, so nested records are only
// reactive if they are observed objects themselves.
type Object struct {
	values map[string]any
}

func NewObject(values map[string]any) *Object {
	if values == nil {
		values = make(map[string]any)
	}

	return &Object{values: values}
}

// Get returns the value stored under key, subscribing the active effect
// to (object, key).
func (o *Object) Get(key string) any {
	GetRuntime().Track(o, key)
	return o.values[key]
}

// Set stores v under key and notifies subscribers. Every write triggers,
// even when v equals the previous value.
func (o *Object) Set(key string, v any) {
	o.values[key] = v
	GetRuntime().Trigger(o, key)
}

// Keys returns the object's own keys in sorted order. Listing keys does
// not track.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.values))
	for key := range o.values {
		keys = append(keys, key)
	}

	slices.Sort(keys)
	return keys
}
