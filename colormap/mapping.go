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

import "math"

// A Mapping reparametrizes a gradient.  It must map 0 to 0, 1 to 1 and
// keep interior values inside [0, 1]; this is a precondition on the
// caller, not checked at run time.  Behavior for inputs outside [0, 1]
// is unspecified.
//
// Since mappings are plain function values they cannot be compared for
// equality.
type Mapping func(x float64) float64

// Linear is the identity mapping: the gradient parameter is used
// unchanged.
var Linear Mapping = func(x float64) float64 { return x }

// Cbrt is the cube-root mapping: 1/8 maps to 1/2, for example.  It
// expands the low end of the range, which suits data like sound
// intensity that is not perceived linearly.
var Cbrt Mapping = math.Cbrt
