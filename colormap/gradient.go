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

package colormap

import "seehuhn.de/go/chroma"

// Gradient is a continuous blend between two colors in the embedding
// space of their color type.  With the default padding (0, 1), the
// parameter 0 (and anything smaller) maps to Start, and 1 (and anything
// larger) maps to End.
type Gradient[T chroma.Point[T]] struct {
	// Start is the color returned for parameter 0 (with default
	// padding).
	Start T

	// End is the color returned for parameter 1 (with default
	// padding).
	End T

	// Normalize reparametrizes the gradient, for example to emphasize
	// differences at the low end of the range.
	Normalize Mapping

	// Lo and Hi restrict the gradient to the sub-interval [Lo, Hi] of
	// the full Start-End blend: the map's value at 0 is the full
	// gradient evaluated at Lo, and its value at 1 is the full
	// gradient at Hi.  For example, Lo=1/8, Hi=1 removes the lowest
	// eighth of the blend while keeping the map continuous.  Lo < Hi
	// is required but not checked.
	Lo, Hi float64
}

// NewLinear returns a linear gradient from start to end, without
// padding.
func NewLinear[T chroma.Point[T]](start, end T) *Gradient[T] {
	return &Gradient[T]{
		Start:     start,
		End:       end,
		Normalize: Linear,
		Lo:        0,
		Hi:        1,
	}
}

// NewCbrt returns a cube-root gradient from start to end, without
// padding.
func NewCbrt[T chroma.Point[T]](start, end T) *Gradient[T] {
	return &Gradient[T]{
		Start:     start,
		End:       end,
		Normalize: Cbrt,
		Lo:        0,
		Hi:        1,
	}
}

// At implements the [Map] interface.
func (g *Gradient[T]) At(x float64) T {
	t := g.Lo + (g.Hi-g.Lo)*g.Normalize(clamp01(x))
	return chroma.WeightedMidpoint(g.Start, g.End, t)
}
