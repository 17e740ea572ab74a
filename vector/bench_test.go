// SPDX-License-Identifier: MIT

package vector_test

import (
	"testing"

	"github.com/katalvlaran/lvvec/interp"
	"github.com/katalvlaran/lvvec/vector"
)

// benchmarkAtFrac fills a Float of size n with a ramp and samples it in mode.
func benchmarkAtFrac(b *testing.B, n int, mode interp.Mode) {
	f, err := vector.NewFloat[float64](n, vector.WithMode(mode))
	if err != nil {
		b.Fatalf("NewFloat: %v", err)
	}
	for i := 0; i < n; i++ {
		_ = f.Set(i, float64(i))
	}
	span := float64(n - 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pos := span * float64(i%997) / 997.5
		if _, err = f.AtFrac(pos); err != nil {
			b.Fatalf("AtFrac(%v): %v", pos, err)
		}
	}
}

func BenchmarkAtFrac_Linear256(b *testing.B)     { benchmarkAtFrac(b, 256, interp.Linear) }
func BenchmarkAtFrac_Bezier3_256(b *testing.B)   { benchmarkAtFrac(b, 256, interp.Bezier3) }
func BenchmarkAtFrac_CatmullRom256(b *testing.B) { benchmarkAtFrac(b, 256, interp.CatmullRom) }
func BenchmarkAtFrac_Lagrange32(b *testing.B)    { benchmarkAtFrac(b, 32, interp.Lagrange) }

func BenchmarkClone256(b *testing.B) {
	v, err := vector.NewDefault[float64]()
	if err != nil {
		b.Fatalf("NewDefault: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, _ := v.Clone()
		c.Release()
	}
}
