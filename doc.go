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

// Package chroma implements color spaces and geometric operations on colors.
//
// Every color representation in this package converts to and from [XYZ],
// a CIE 1931 tristimulus coordinate tagged with the [Illuminant] it is
// relative to.  The following concrete color types are provided:
//   - [SRGB]: sRGB colors with the standard transfer curve, e.g. SRGB{1, 0, 0}
//   - [Lab]: CIE 1976 L*a*b* colors
//   - [Luv]: CIE 1976 L*u*v* colors
//
// Color types whose representation is exactly three numbers also embed
// into Euclidean 3-space via the [Point] capability.  The functions
// [Distance], [Midpoint], [WeightedMidpoint], [Average] and
// [WeightedAverage] operate on any such type, using only the embedding.
//
// Colormaps, which map the interval [0, 1] onto colors, are implemented
// in the package [seehuhn.de/go/chroma/colormap].
package chroma
