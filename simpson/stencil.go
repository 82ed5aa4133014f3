// SPDX-License-Identifier: MIT
// Package simpson: Simpson stencil weights.
//
// Purpose:
//   - Keep the 1-4-1 pattern and its tensor products in one place.
//   - Sample layout is row-major: index = i·9 + j·3 + k for (x_i, y_j, z_k),
//     i·3 + j for (x_i, y_j). Weights use the same layout, so a stencil is a
//     single dot product.
//
// Weights:
//   - 1-D: [1, 4, 1]
//   - 2-D: corners 1, edge midpoints 4, centre 16
//   - 3-D: corners 1, one midpoint coordinate 4, two 16, centre 64

package simpson

import "gonum.org/v1/gonum/floats"

var (
	weights1 = []float64{1, 4, 1}
	weights2 = tensor(weights1, weights1)
	weights3 = tensor(weights2, weights1)
)

// Simpson constants applied by Finalize and by last-panel weighting.
const (
	divisor1 = 3.0
	divisor2 = 9.0
	divisor3 = 27.0
)

// tensor returns the row-major outer product of a and b.
func tensor(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)*len(b))
	for _, wa := range a {
		for _, wb := range b {
			out = append(out, wa*wb)
		}
	}
	return out
}

// stencil1 returns f0 + 4·f1 + f2.
func stencil1(f *[3]float64) float64 {
	return floats.Dot(weights1, f[:])
}

// stencil2 returns the weighted 3×3 sum (without the hk/9 constant).
func stencil2(f *[9]float64) float64 {
	return floats.Dot(weights2, f[:])
}

// stencil3 returns the weighted 3×3×3 sum (without the hkl/27 constant).
func stencil3(f *[27]float64) float64 {
	return floats.Dot(weights3, f[:])
}
