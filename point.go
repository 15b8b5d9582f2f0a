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

package chroma

import "errors"

// ErrMismatchedWeights is returned by [WeightedAverage] when the number
// of weights does not match the number of colors.
var ErrMismatchedWeights = errors.New("number of weights does not match number of colors")

// Distance returns the Euclidean distance between a and b in the
// embedding 3-space.
//
// This is a metric on the coordinates of the representation, not a
// measure of color similarity: two colors at a small Euclidean distance
// in one space can be far apart in another.
func Distance[T Point[T]](a, b T) float64 {
	return a.Coord().Distance(b.Coord())
}

// WeightedMidpoint returns the color on the line segment between a and
// b at parameter w: weight 0 returns a, weight 1 returns b, and
// intermediate weights interpolate linearly in the embedding space.
// Weights outside [0, 1] extrapolate past the endpoints.
func WeightedMidpoint[T Point[T]](a, b T, w float64) T {
	return a.FromCoord(a.Coord().WeightedMidpoint(b.Coord(), w))
}

// Midpoint returns the color halfway between a and b in the embedding
// space.
func Midpoint[T Point[T]](a, b T) T {
	return a.FromCoord(a.Coord().Midpoint(b.Coord()))
}

// WeightedAverage returns the weighted average of first and others.
// The weights apply to first and then to the elements of others in
// order, and are normalized so that they sum to one.
//
// If len(weights) != len(others)+1, the error is [ErrMismatchedWeights].
func WeightedAverage[T Point[T]](first T, others []T, weights []float64) (T, error) {
	if len(weights) != len(others)+1 {
		var zero T
		return zero, ErrMismatchedWeights
	}

	var norm float64
	for _, w := range weights {
		norm += w
	}

	acc := first.Coord().Mul(weights[0] / norm)
	for i, c := range others {
		acc = acc.Add(c.Coord().Mul(weights[i+1] / norm))
	}
	return first.FromCoord(acc), nil
}

// Average returns the arithmetic mean of first and others, as a raw
// coordinate in the embedding space.  It is equivalent to
// [WeightedAverage] with all weights equal.
func Average[T Point[T]](first T, others []T) Coord {
	acc := first.Coord()
	for _, c := range others {
		acc = acc.Add(c.Coord())
	}
	return acc.Mul(1 / float64(len(others)+1))
}
