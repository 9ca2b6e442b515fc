package rx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputed(t *testing.T) {
	t.Run("derives value from reactive state", func(t *testing.T) {
		state := Reactive(map[string]any{"count": 2})

		double := NewComputed(func() int {
			return state.Get("count").(int) * 2
		})

		assert.Equal(t, 4, double.Value())

		state.Set("count", 5)
		assert.Equal(t, 10, double.Value())
	})

	t.Run("caches between upstream changes", func(t *testing.T) {
		calls := 0

		state := Reactive(map[string]any{"count": 2})

		double := NewComputed(func() int {
			calls++
			return state.Get("count").(int) * 2
		})

		assert.Equal(t, 0, calls) // lazy until first read

		assert.Equal(t, 4, double.Value())
		assert.Equal(t, 4, double.Value())
		assert.Equal(t, 1, calls)

		state.Set("count", 3)
		assert.Equal(t, 1, calls) // invalidated, not recomputed

		assert.Equal(t, 6, double.Value())
		assert.Equal(t, 6, double.Value())
		assert.Equal(t, 2, calls)
	})

	t.Run("is observable by outer effects", func(t *testing.T) {
		log := []string{}

		state := Reactive(map[string]any{"count": 1})

		double := NewComputed(func() int {
			return state.Get("count").(int) * 2
		})

		NewEffect(func() {
			log = append(log, fmt.Sprintf("double %d", double.Value()))
		})

		state.Set("count", 10)

		assert.Equal(t, []string{
			"double 2",
			"double 20",
		}, log)
	})

	t.Run("chained computeds", func(t *testing.T) {
		log := []string{}

		state := Reactive(map[string]any{"count": 1})

		double := NewComputed(func() int {
			log = append(log, "doubling")
			return state.Get("count").(int) * 2
		})
		plustwo := NewComputed(func() int {
			log = append(log, "adding")
			return double.Value() + 2
		})

		assert.Equal(t, 2, double.Value())
		assert.Equal(t, 4, plustwo.Value())

		state.Set("count", 10)
		assert.Equal(t, 20, double.Value())
		assert.Equal(t, 22, plustwo.Value())

		assert.Equal(t, []string{
			"doubling",
			"adding",
			"doubling",
			"adding",
		}, log)
	})

	t.Run("observed inside a watch getter", func(t *testing.T) {
		calls := [][2]any{}

		state := Reactive(map[string]any{"count": 1})

		double := NewComputed(func() int {
			return state.Get("count").(int) * 2
		})

		Watch(func() any { return double.Value() }, func(newValue, oldValue any) {
			calls = append(calls, [2]any{newValue, oldValue})
		})

		state.Set("count", 3)

		assert.Equal(t, [][2]any{{6, 2}}, calls)
	})
}
