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

// Lab is a color in the CIE 1976 L*a*b* color space.  L* is the
// lightness and ranges from 0 to 100; a* and b* are the green-red and
// blue-yellow opponent axes, usually within -100 to 100 for visible
// colors.
type Lab struct {
	L, A, B float64
}

// Coord implements the [Point] capability.
func (c Lab) Coord() Coord {
	return Coord{c.L, c.A, c.B}
}

// FromCoord implements the [Point] capability.
func (Lab) FromCoord(coord Coord) Lab {
	return Lab{coord.X, coord.Y, coord.Z}
}

// FromXYZ implements the [Point] capability.  The conversion is
// relative to the white point of the coordinate's illuminant.
func (Lab) FromXYZ(xyz XYZ) Lab {
	wp := xyz.Illuminant.WhitePoint()

	fx := labF(xyz.X / wp.X)
	fy := labF(xyz.Y / wp.Y)
	fz := labF(xyz.Z / wp.Z)

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// ToXYZ implements the [Color] interface.  Lab uses the white point of
// the target illuminant directly; converting through an illuminant
// other than the one the color was constructed under uses a different
// adaptation than [XYZ.Adapt] and may disagree with it.
func (c Lab) ToXYZ(ill Illuminant) XYZ {
	wp := ill.WhitePoint()

	fy := (c.L + 16) / 116
	fx := fy + c.A/500
	fz := fy - c.B/200

	return XYZ{
		X:          wp.X * labFInv(fx),
		Y:          wp.Y * labFInv(fy),
		Z:          wp.Z * labFInv(fz),
		Illuminant: ill,
	}
}

const labDelta = 6.0 / 29.0

// labF is the piecewise cube-root function of the L*a*b* definition:
// a cube root above (6/29)^3, continued linearly below.
func labF(t float64) float64 {
	if t > labDelta*labDelta*labDelta {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29.0
}

func labFInv(t float64) float64 {
	if t > labDelta {
		return t * t * t
	}
	return 3 * labDelta * labDelta * (t - 4.0/29.0)
}
