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

// Illuminant is a CIE standard illuminant, i.e. a reference white point.
// All white points use the CIE 1931 2° standard observer and are
// normalized to Y=1.
type Illuminant int

// The supported standard illuminants.
const (
	IlluminantA Illuminant = iota
	IlluminantB
	IlluminantC
	IlluminantD50
	IlluminantD55
	IlluminantD65
	IlluminantD75
	IlluminantE
	IlluminantF2
	IlluminantF7
	IlluminantF11
)

// DefaultIlluminant is the reference white used when colors are
// converted between concrete spaces without an explicit illuminant.
const DefaultIlluminant = IlluminantD50

// WhitePoint returns the XYZ coordinates of the illuminant's diffuse
// white point.
func (ill Illuminant) WhitePoint() Coord {
	return whitePoints[ill]
}

// String returns the conventional name of the illuminant, for example
// "D65".
func (ill Illuminant) String() string {
	if ill < 0 || int(ill) >= len(illuminantNames) {
		return "unknown illuminant"
	}
	return illuminantNames[ill]
}

var whitePoints = [...]Coord{
	IlluminantA:   {1.09850, 1, 0.35585},
	IlluminantB:   {0.99072, 1, 0.85223},
	IlluminantC:   {0.98074, 1, 1.18232},
	IlluminantD50: {0.96422, 1, 0.82521},
	IlluminantD55: {0.95682, 1, 0.92149},
	IlluminantD65: {0.95047, 1, 1.08883},
	IlluminantD75: {0.94972, 1, 1.22638},
	IlluminantE:   {1, 1, 1},
	IlluminantF2:  {0.99187, 1, 0.67395},
	IlluminantF7:  {0.95044, 1, 1.08755},
	IlluminantF11: {1.00966, 1, 0.64370},
}

var illuminantNames = [...]string{
	IlluminantA:   "A",
	IlluminantB:   "B",
	IlluminantC:   "C",
	IlluminantD50: "D50",
	IlluminantD55: "D55",
	IlluminantD65: "D65",
	IlluminantD75: "D75",
	IlluminantE:   "E",
	IlluminantF2:  "F2",
	IlluminantF7:  "F7",
	IlluminantF11: "F11",
}
