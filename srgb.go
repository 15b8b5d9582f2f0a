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

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// SRGB is a color in the sRGB color space.  The channel values
// nominally range from 0 to 1; values outside this range represent
// out-of-gamut colors and are not clamped.
type SRGB struct {
	R, G, B float64
}

// ParseHex parses a hexadecimal color string of the form "#RRGGBB".
// Parsing is case-insensitive.  Each channel is scaled from 0-255 to
// the range [0, 1].
func ParseHex(s string) (SRGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return SRGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return SRGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	return SRGB{
		R: float64(n>>16&0xFF) / 255,
		G: float64(n>>8&0xFF) / 255,
		B: float64(n&0xFF) / 255,
	}, nil
}

// FromName returns the SVG 1.1 color with the given name, for example
// "rebeccapurple".  Lookup is case-insensitive.
func FromName(name string) (SRGB, bool) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return SRGB{}, false
	}
	return SRGB{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}, true
}

// Hex returns the color as an uppercase hexadecimal string of the form
// "#RRGGBB".  Channels are clamped to [0, 1] and rounded to the nearest
// 8-bit value.
func (c SRGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", hexByte(c.R), hexByte(c.G), hexByte(c.B))
}

// String returns the same representation as [SRGB.Hex].
func (c SRGB) String() string {
	return c.Hex()
}

func hexByte(v float64) byte {
	x := math.Round(v * 255)
	if x < 0 {
		x = 0
	} else if x > 255 {
		x = 255
	}
	return byte(x)
}

// RGBA implements the color.Color interface of the standard library's
// image/color package.
func (c SRGB) RGBA() (r, g, b, a uint32) {
	conv := func(v float64) uint32 {
		x := math.Round(v * 0xFFFF)
		if x < 0 {
			x = 0
		} else if x > 0xFFFF {
			x = 0xFFFF
		}
		return uint32(x)
	}
	return conv(c.R), conv(c.G), conv(c.B), 0xFFFF
}

// Coord implements the [Point] capability.  The embedding is the raw
// channel triple, so geometric operations on SRGB values interpolate in
// gamma-encoded sRGB space.
func (c SRGB) Coord() Coord {
	return Coord{c.R, c.G, c.B}
}

// FromCoord implements the [Point] capability.
func (SRGB) FromCoord(coord Coord) SRGB {
	return SRGB{coord.X, coord.Y, coord.Z}
}

// FromXYZ implements the [Point] capability.
func (SRGB) FromXYZ(xyz XYZ) SRGB {
	// sRGB is defined relative to D65; adapt first if necessary.
	d65 := xyz.Adapt(IlluminantD65)

	rLin := 3.2409699419045214*d65.X - 1.5373831775700935*d65.Y - 0.4986107602930033*d65.Z
	gLin := -0.9692436362808798*d65.X + 1.8759675015077207*d65.Y + 0.0415550574071756*d65.Z
	bLin := 0.0556300796969937*d65.X - 0.2039769588889765*d65.Y + 1.0569715142428786*d65.Z

	return SRGB{gammaEncode(rLin), gammaEncode(gLin), gammaEncode(bLin)}
}

// ToXYZ implements the [Color] interface.
func (c SRGB) ToXYZ(ill Illuminant) XYZ {
	r := gammaExpand(c.R)
	g := gammaExpand(c.G)
	b := gammaExpand(c.B)

	xyz := XYZ{
		X:          0.4123907992659595*r + 0.3575843393838780*g + 0.1804807884018343*b,
		Y:          0.2126390058715104*r + 0.7151686787677559*g + 0.0721923153607337*b,
		Z:          0.0193308187155918*r + 0.1191947797946260*g + 0.9505321522496606*b,
		Illuminant: IlluminantD65,
	}
	return xyz.Adapt(ill)
}

// gammaExpand converts a gamma-encoded sRGB channel to linear light.
func gammaExpand(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// gammaEncode converts a linear-light channel to gamma-encoded sRGB.
func gammaEncode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}
