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

// Luv is a color in the CIE 1976 L*u*v* color space.  L* is the
// lightness and ranges from 0 to 100; u* and v* are chrominance axes,
// roughly red-green and blue-yellow, usually within -100 to 100 for
// visible colors.
//
// L*u*v* handles white points by a simple translational adaptation.
// Converting a Luv color through an illuminant other than the one it
// was constructed under can produce coordinates outside the physically
// realizable gamut; doing so is unsupported rather than diagnosed.
type Luv struct {
	L, U, V float64
}

// Coord implements the [Point] capability.
func (c Luv) Coord() Coord {
	return Coord{c.L, c.U, c.V}
}

// FromCoord implements the [Point] capability.
func (Luv) FromCoord(coord Coord) Luv {
	return Luv{coord.X, coord.Y, coord.Z}
}

// FromXYZ implements the [Point] capability.  The conversion is
// relative to the white point of the coordinate's illuminant.
func (Luv) FromXYZ(xyz XYZ) Luv {
	wp := xyz.Illuminant.WhitePoint()

	uPrimeN, vPrimeN := uvPrime(wp)
	uPrime, vPrime := uvPrime(Coord{xyz.X, xyz.Y, xyz.Z})

	// The white point is normalized to Y=1, so this division only
	// matters if a caller supplies scaled coordinates.
	yScaled := xyz.Y / wp.Y

	const delta = 6.0 / 29.0
	var l float64
	if yScaled <= delta*delta*delta {
		l = (2 / delta) * (2 / delta) * (2 / delta) * yScaled
	} else {
		l = 116*math.Cbrt(yScaled) - 16
	}

	return Luv{
		L: l,
		U: 13 * l * (uPrime - uPrimeN),
		V: 13 * l * (vPrime - vPrimeN),
	}
}

// ToXYZ implements the [Color] interface.  The chrominance formulas are
// inverted relative to the white point of the target illuminant.  For
// L=0 the chromaticity is undefined and the result contains NaN; black
// inputs are a documented precondition of the inverse transform.
func (c Luv) ToXYZ(ill Illuminant) XYZ {
	wp := ill.WhitePoint()
	uPrimeN, vPrimeN := uvPrime(wp)

	uPrime := c.U/(13*c.L) + uPrimeN
	vPrime := c.V/(13*c.L) + vPrimeN

	const delta = 6.0 / 29.0
	var y float64
	if c.L <= 8 {
		y = wp.Y * c.L * (delta / 2) * (delta / 2) * (delta / 2)
	} else {
		t := (c.L + 16) / 116
		y = wp.Y * t * t * t
	}

	return XYZ{
		X:          y * 9 * uPrime / (4 * vPrime),
		Y:          y,
		Z:          y * (12 - 3*uPrime - 20*vPrime) / (4 * vPrime),
		Illuminant: ill,
	}
}

// uvPrime returns the u'v' chromaticity of a tristimulus coordinate.
func uvPrime(c Coord) (uPrime, vPrime float64) {
	denom := c.X + 15*c.Y + 3*c.Z
	return 4 * c.X / denom, 9 * c.Y / denom
}
