package internal

// Dep identifies one (target, key) subscription, for introspection.
type Dep struct {
	Target any
	Key    string
}

// subscriberSet is one cell of the dependency store: the effects
// subscribed to a single (target, key) pair.
type subscriberSet struct {
	store  *DepStore
	target any
	key    string

	effects map[*Effect]struct{}
}

func (s *subscriberSet) add(e *Effect) bool {
	if _, ok := s.effects[e]; ok {
		return false
	}

	s.effects[e] = struct{}{}
	return true
}

// remove drops e from the set and prunes the store entry once empty.
func (s *subscriberSet) remove(e *Effect) {
	delete(s.effects, e)

	if len(s.effects) == 0 {
		s.store.prune(s)
	}
}

// DepStore is the two-level dependency table: observed-target identity →
// property key → subscriber set. Entries are pruned as soon as their last
// subscriber leaves, so the table never outgrows the live subscriptions.
type DepStore struct {
	targets map[any]map[string]*subscriberSet
}

func NewDepStore() *DepStore {
	return &DepStore{
		targets: make(map[any]map[string]*subscriberSet),
	}
}

// Link subscribes the effect to (target, key) and records the set on the
// effect's own subscription list, for cleanup before its next run.
func (d *DepStore) Link(target any, key string, e *Effect) {
	keys, ok := d.targets[target]
	if !ok {
		keys = make(map[string]*subscriberSet)
		d.targets[target] = keys
	}

	set, ok := keys[key]
	if !ok {
		set = &subscriberSet{
			store:   d,
			target:  target,
			key:     key,
			effects: make(map[*Effect]struct{}),
		}
		keys[key] = set
	}

	if set.add(e) {
		e.deps = append(e.deps, set)
	}
}

// Subscribers snapshots the set for (target, key), excluding the given
// effect. A snapshot is needed because re-running a subscriber mutates
// the set it was taken from.
func (d *DepStore) Subscribers(target any, key string, except *Effect) []*Effect {
	keys, ok := d.targets[target]
	if !ok {
		return nil
	}

	set, ok := keys[key]
	if !ok {
		return nil
	}

	subs := make([]*Effect, 0, len(set.effects))
	for e := range set.effects {
		if e != except {
			subs = append(subs, e)
		}
	}

	return subs
}

func (d *DepStore) prune(set *subscriberSet) {
	keys, ok := d.targets[set.target]
	if !ok {
		return
	}

	delete(keys, set.key)
	if len(keys) == 0 {
		delete(d.targets, set.target)
	}
}
