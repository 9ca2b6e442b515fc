package rx

import (
	"fmt"
)

func ExampleReactive() {
	state := Reactive(map[string]any{"count": 1})

	NewEffect(func() {
		fmt.Println("count:", state.Get("count"))
	})

	state.Set("count", 2)

	// Output:
	// count: 1
	// count: 2
}

func ExampleNewComputed() {
	state := Reactive(map[string]any{"count": 2})

	double := NewComputed(func() int {
		fmt.Println("computing")
		return state.Get("count").(int) * 2
	})

	fmt.Println(double.Value())
	fmt.Println(double.Value())

	state.Set("count", 3)
	fmt.Println(double.Value())

	// Output:
	// computing
	// 4
	// 4
	// computing
	// 6
}

func ExampleWatch() {
	state := Reactive(map[string]any{"temp": 20})

	Watch(func() any { return state.Get("temp") }, func(newValue, oldValue any) {
		fmt.Println("temp:", oldValue, "->", newValue)
	})

	state.Set("temp", 25)

	// Output:
	// temp: 20 -> 25
}

func ExampleFlush() {
	state := Reactive(map[string]any{"temp": 20})

	Watch(func() any { return state.Get("temp") }, func(newValue, oldValue any) {
		fmt.Println("temp:", oldValue, "->", newValue)
	}, WithFlush(FlushPost))

	state.Set("temp", 21)
	state.Set("temp", 22)
	fmt.Println("settled")

	Flush()

	// Output:
	// settled
	// temp: 20 -> 22
	// temp: 22 -> 22
}
