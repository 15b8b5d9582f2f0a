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

import "math"

// Coord is a point in Euclidean 3-space.  It is the common embedding
// used for all geometric operations on colors: each three-component
// color representation maps its components onto X, Y and Z.
type Coord struct {
	X, Y, Z float64
}

// Add returns the component-wise sum of c and d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y, c.Z + d.Z}
}

// Sub returns the component-wise difference of c and d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{c.X - d.X, c.Y - d.Y, c.Z - d.Z}
}

// Mul returns c scaled by the factor k.
func (c Coord) Mul(k float64) Coord {
	return Coord{k * c.X, k * c.Y, k * c.Z}
}

// Distance returns the Euclidean distance between c and d.  This is a
// metric: it is zero if and only if c == d, it is symmetric, and it
// satisfies the triangle inequality.
func (c Coord) Distance(d Coord) float64 {
	dx := c.X - d.X
	dy := c.Y - d.Y
	dz := c.Z - d.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// WeightedMidpoint returns the affine combination (1-w)*c + w*d:
// weight 0 gives exactly c, weight 1 gives exactly d.  The weight is
// not restricted to [0, 1]; values outside that range extrapolate past
// the endpoints.
func (c Coord) WeightedMidpoint(d Coord, w float64) Coord {
	return Coord{
		(1-w)*c.X + w*d.X,
		(1-w)*c.Y + w*d.Y,
		(1-w)*c.Z + w*d.Z,
	}
}

// Midpoint returns the point halfway between c and d.
func (c Coord) Midpoint(d Coord) Coord {
	return c.WeightedMidpoint(d, 0.5)
}

// Mean returns the arithmetic mean of the given points.
// It panics if the slice is empty.
func Mean(points []Coord) Coord {
	var acc Coord
	for _, p := range points {
		acc = acc.Add(p)
	}
	return acc.Mul(1 / float64(len(points)))
}
