package internal

// Observable is the capability an observed record exposes to the deep
// traversal: list its own keys and read one of them, tracking the read.
type Observable interface {
	Keys() []string
	Get(key string) any
}

// Traverse reads every property reachable from src, subscribing the
// active effect to each one, and returns a plain snapshot of the values.
// The visited table keeps reference cycles from recursing forever: an
// object already seen in this traversal maps to its (possibly still
// filling) snapshot.
func Traverse(src Observable) map[string]any {
	return traverse(src, make(map[Observable]map[string]any))
}

func traverse(src Observable, visited map[Observable]map[string]any) map[string]any {
	if snapshot, ok := visited[src]; ok {
		return snapshot
	}

	snapshot := make(map[string]any)
	visited[src] = snapshot

	for _, key := range src.Keys() {
		value := src.Get(key)

		if nested, ok := value.(Observable); ok {
			snapshot[key] = traverse(nested, visited)
		} else {
			snapshot[key] = value
		}
	}

	return snapshot
}
