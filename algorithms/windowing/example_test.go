package windowing_test

import (
	"fmt"

	"github.com/RyanBlaney/labtrace/algorithms/windowing"
)

func ExampleCreateWindow() {
	w, err := windowing.CreateWindow(4, windowing.Uniform, nil)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(w))
	fmt.Printf("%.1f\n", w[0])
	// Output:
	// 5
	// 0.2
}
