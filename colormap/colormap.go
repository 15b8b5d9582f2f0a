// seehuhn.de/go/chroma - a library for colorimetric computation
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package colormap implements continuous mappings of the interval
// [0, 1] to colors, for visualizing scalar data.
//
// Two kinds of colormap are provided:
//   - [Gradient]: a continuous blend between two endpoint colors, with
//     an optional nonlinear reparametrization and range padding.
//   - [Listed]: a finite table of sample colors, interpolated linearly
//     between neighboring entries.
//
// Both produce colors of any type implementing the
// [seehuhn.de/go/chroma.Point] capability.
package colormap

import "seehuhn.de/go/chroma"

// A Map assigns a color to every number between 0 and 1.  Inputs
// outside that range are clamped.  Apart from NaN inputs a Map never
// fails: out-of-range data simply maps to the boundary colors.
type Map[T chroma.Point[T]] interface {
	// At returns the color for the parameter x.
	At(x float64) T
}

// All maps every element of xs through m.  The result is in input
// order.  Evaluation is eager rather than lazy, so that colormap
// implementations whose state changes between calls still produce
// consistent results.
func All[T chroma.Point[T]](m Map[T], xs []float64) []T {
	res := make([]T, len(xs))
	for i, x := range xs {
		res[i] = m.At(x)
	}
	return res
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
