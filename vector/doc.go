// SPDX-License-Identifier: MIT

// Package vector provides Vector, a fixed-capacity array of any element type,
// and Float, its floating-point specialization that can also be read at
// fractional positions through a selectable interpolation curve.
//
// 🚀 Lifecycle
//
//	A Vector owns its storage exclusively. Capacity is chosen once (New) or
//	defaults to DefaultCapacity (NewDefault) and never changes.
//	  • Clone: independent deep copy
//	  • Move: transfers storage; the source becomes released
//	  • Assign: clone the source, then swap it in
//	  • AssignMove: move the source, then swap it in
//	  • Swap: O(1) exchange of all state
//	  • Release: drops storage; later accesses fail with ErrReleased
//
// ✨ Fractional access (Float only)
//
//	f, _ := vector.NewFloat[float64](3)
//	f.SetInterpolation(interp.Linear)
//	_ = f.Set(0, 1); _ = f.Set(1, 3); _ = f.Set(2, 1)
//	y, _ := f.AtFrac(0.5) // 2
//
// Errors are package sentinels matched with errors.Is: ErrConstruction,
// ErrIndex, ErrInsufficientPoints, ErrInterpolationMode and ErrReleased.
//
// Vectors are not safe for concurrent use.
package vector
