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

import (
	"math"

	"seehuhn.de/go/chroma"
)

// Listed is a colormap backed by a table of equally-spaced sRGB
// samples, interpolated linearly between neighboring entries.  This
// is the shape used by the preset colormaps of plotting libraries such
// as matplotlib.
type Listed[T chroma.Point[T]] struct {
	// Samples holds the table rows as sRGB channel triples with values
	// in [0, 1].  The table must have at least two rows; this is a
	// precondition, not checked at run time.
	Samples [][3]float64
}

// NewListed returns a colormap interpolating the given sample table.
// The slice is kept, not copied; callers must not modify it afterwards.
func NewListed[T chroma.Point[T]](samples [][3]float64) *Listed[T] {
	return &Listed[T]{Samples: samples}
}

// At implements the [Map] interface.
//
// Only the one or two table rows bounding x are converted to the target
// color type, so large tables are cheap to evaluate pointwise.  Values
// exactly on a grid point return that table entry with no interpolation
// error.
func (m *Listed[T]) At(x float64) T {
	var zero T

	idx := clamp01(x) * float64(len(m.Samples)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))

	if lo == hi {
		return zero.FromXYZ(rowXYZ(m.Samples[lo]))
	}

	a := m.Samples[lo]
	b := m.Samples[hi]
	c := chroma.Coord{X: a[0], Y: a[1], Z: a[2]}.
		WeightedMidpoint(chroma.Coord{X: b[0], Y: b[1], Z: b[2]}, idx-float64(lo))
	return zero.FromXYZ(rowXYZ([3]float64{c.X, c.Y, c.Z}))
}

// rowXYZ interprets a table row as an sRGB triple and converts it to
// the canonical coordinate.
func rowXYZ(row [3]float64) chroma.XYZ {
	c := chroma.SRGB{R: row[0], G: row[1], B: row[2]}
	return c.ToXYZ(chroma.DefaultIlluminant)
}
