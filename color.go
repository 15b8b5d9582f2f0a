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

// XYZ is a CIE 1931 tristimulus coordinate, tagged with the illuminant
// it is relative to.  XYZ is the canonical representation which all
// concrete color types convert through.
type XYZ struct {
	X, Y, Z    float64
	Illuminant Illuminant
}

// Color is the capability shared by all concrete color representations:
// conversion to the canonical tristimulus coordinate, relative to a
// given reference white.
//
// Converting to XYZ and back under the same illuminant reproduces the
// original value up to floating-point error.  Round trips through
// different illuminants depend on the chromatic adaptation of the
// individual color space and are not guaranteed.
type Color interface {
	// ToXYZ returns the tristimulus coordinate of the color relative
	// to the given illuminant.
	ToXYZ(ill Illuminant) XYZ
}

// Point is the capability of color types which are in bijection with
// Euclidean 3-space: the representation consists of exactly three
// numbers and carries no other state.  Any such type gets the geometric
// operations [Distance], [Midpoint], [WeightedMidpoint], [Average] and
// [WeightedAverage] for free.
//
// FromCoord and FromXYZ construct new values; the receiver is only used
// to select the concrete type.
type Point[T any] interface {
	Color
	Coord() Coord
	FromCoord(c Coord) T
	FromXYZ(xyz XYZ) T
}

// ToXYZ implements the [Color] interface.  If the target illuminant
// differs from the coordinate's own, the coordinate is chromatically
// adapted using the Bradford transform.
func (xyz XYZ) ToXYZ(ill Illuminant) XYZ {
	return xyz.Adapt(ill)
}

// Adapt converts the coordinate to the reference white of the given
// illuminant, using the linear Bradford chromatic adaptation transform.
func (xyz XYZ) Adapt(ill Illuminant) XYZ {
	if ill == xyz.Illuminant {
		return xyz
	}

	src := bradford(xyz.Illuminant.WhitePoint())
	dst := bradford(ill.WhitePoint())

	cone := bradford(Coord{xyz.X, xyz.Y, xyz.Z})
	cone.X *= dst.X / src.X
	cone.Y *= dst.Y / src.Y
	cone.Z *= dst.Z / src.Z

	c := bradfordInv(cone)
	return XYZ{c.X, c.Y, c.Z, ill}
}

// bradford maps a tristimulus coordinate to the Bradford cone response
// domain.
func bradford(c Coord) Coord {
	return Coord{
		0.8951*c.X + 0.2664*c.Y - 0.1614*c.Z,
		-0.7502*c.X + 1.7135*c.Y + 0.0367*c.Z,
		0.0389*c.X - 0.0685*c.Y + 1.0296*c.Z,
	}
}

func bradfordInv(c Coord) Coord {
	return Coord{
		0.9869929*c.X - 0.1470543*c.Y + 0.1599627*c.Z,
		0.4323053*c.X + 0.5183603*c.Y + 0.0492912*c.Z,
		-0.0085287*c.X + 0.0400428*c.Y + 0.9684867*c.Z,
	}
}
