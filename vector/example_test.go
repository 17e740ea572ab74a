// SPDX-License-Identifier: MIT

package vector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvvec/interp"
	"github.com/katalvlaran/lvvec/vector"
)

// ExampleFloat_AtFrac samples a three-point tent with two different curves.
func ExampleFloat_AtFrac() {
	f, err := vector.NewFloat[float64](3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	_ = f.Set(0, 1)
	_ = f.Set(1, 3)
	_ = f.Set(2, 1)

	_, err = f.AtFrac(0.5)
	fmt.Println(errors.Is(err, vector.ErrInterpolationMode))

	f.SetInterpolation(interp.Linear)
	lin, _ := f.AtFrac(0.5)

	f.SetInterpolation(interp.Bezier2)
	bez, _ := f.AtFrac(0.5)

	fmt.Printf("linear=%.2f bezier2=%.2f\n", lin, bez)
	// Output:
	// true
	// linear=2.00 bezier2=1.75
}

// ExampleVector_Move shows ownership transfer.
func ExampleVector_Move() {
	v, _ := vector.New[string](2)
	_ = v.Set(0, "x")
	_ = v.Set(1, "y")

	w, _ := v.Move()
	fmt.Println(w, w.Size())
	fmt.Println(v, v.Size())
	// Output:
	// [x, y] 2
	// [released] 0
}
