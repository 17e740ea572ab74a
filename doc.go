// Package lvvec is a small set of fixed-capacity containers.
//
// 🚀 What is inside?
//
//	buffer/: Fixed: zero-filled flat storage with checked access
//	vector/: Vector[T]: owned storage with explicit copy/move/swap/release;
//	           Float[F]: the same, readable at fractional positions
//	interp/: curve kernels behind Float.AtFrac (Linear, Bezier2, Bezier3,
//	           CatmullRom, Lagrange)
//	bitvec/: BitVector: booleans packed eight per byte, addressed through Ref
//
// Capacity is fixed at construction. Nothing here is safe for concurrent use.
//
// Quick example:
//
//	f, _ := vector.NewFloat[float64](3, vector.WithMode(interp.Linear))
//	_ = f.Set(0, 1); _ = f.Set(1, 3); _ = f.Set(2, 1)
//	y, _ := f.AtFrac(0.5) // 2
//
// See examples/ for a runnable walkthrough.
package lvvec
