// SPDX-License-Identifier: MIT

// Package interp evaluates curves fitted through a sequence of control points
// stored at unit-spaced positions 0, 1, …, n-1.
//
// 🚀 What does it do?
//
//	A fractional position x in [0, n-1] is treated as a continuous parameter
//	over the implicit x-axis formed by the point indices. The selected Mode
//	decides how the value between two stored points is produced:
//	  • Linear: straight segment between neighbours (≥2 points)
//	  • Bezier2: piecewise quadratic Bezier over groups of 3 (≥3 points)
//	  • Bezier3: piecewise cubic Bezier over groups of 4 (≥4 points)
//	  • CatmullRom: cubic Catmull–Rom window of 4 points (≥4 points)
//	  • Lagrange: single global polynomial through all points (≥2 points)
//
// Positions within Epsilon of an integer return the stored point unchanged,
// whatever the mode.
//
// ⚙️ Usage:
//
//	v, err := interp.Eval(interp.Linear, []float64{1, 3, 1}, 0.5) // 2
//
//	ip, err := interp.New([]float64{0, 1, 4, 9}, interp.Lagrange)
//	ys, err := ip.EvalAll([]float64{0.5, 1.5, 2.5})
//
// Complexity:
//
//   - Linear, Bezier2, Bezier3, CatmullRom: O(1) per query.
//   - Lagrange: O(n²) per query.
package interp
