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

package presets

// grayData is a linear ramp from black to white.
var grayData = [][3]float64{
	{0, 0, 0},
	{1, 1, 1},
}

// blueredData is a simple diverging ramp from blue through white to
// red, for signed data centered on zero.
var blueredData = [][3]float64{
	{0.230, 0.299, 0.754},
	{0.615, 0.650, 0.871},
	{0.865, 0.865, 0.865},
	{0.878, 0.610, 0.520},
	{0.706, 0.016, 0.150},
}

// The following tables are the matplotlib colormaps, sampled at six
// equally spaced positions of the full 256-row reference tables.
// The sample values match the reference implementation exactly at the
// grid points x = 0, 0.2, ..., 1.

var viridisData = [][3]float64{
	{0.267004, 0.004874, 0.329415},
	{0.253935, 0.265254, 0.529983},
	{0.163625, 0.471133, 0.558148},
	{0.134692, 0.658636, 0.517649},
	{0.477504, 0.821444, 0.318195},
	{0.993248, 0.906157, 0.143936},
}

var magmaData = [][3]float64{
	{0.001462, 0.000466, 0.013866},
	{0.232077, 0.059889, 0.437695},
	{0.550287, 0.161158, 0.505719},
	{0.868793, 0.287728, 0.409303},
	{0.994738, 0.624350, 0.427397},
	{0.987053, 0.991438, 0.749504},
}

var infernoData = [][3]float64{
	{0.001462, 0.000466, 0.013866},
	{0.258234, 0.038571, 0.406485},
	{0.578304, 0.148039, 0.404411},
	{0.865006, 0.316822, 0.226055},
	{0.987622, 0.645320, 0.039886},
	{0.988362, 0.998364, 0.644924},
}

var plasmaData = [][3]float64{
	{0.050383, 0.029803, 0.527975},
	{0.417642, 0.000564, 0.658390},
	{0.692840, 0.165141, 0.564522},
	{0.881443, 0.392529, 0.383229},
	{0.988260, 0.652325, 0.211364},
	{0.940015, 0.975158, 0.131326},
}
