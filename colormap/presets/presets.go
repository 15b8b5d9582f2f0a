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

// Package presets provides ready-made colormap sample tables and a
// lookup-by-name registry.
//
// The tables are plain data; all interpolation logic lives in the
// colormap package.
package presets

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/chroma"
	"seehuhn.de/go/chroma/colormap"
)

// Names returns the names of all preset colormaps, sorted
// alphabetically.
func Names() []string {
	names := maps.Keys(tables)
	slices.Sort(names)
	return names
}

// Table returns the raw sample table of the named preset.
func Table(name string) ([][3]float64, bool) {
	t, ok := tables[name]
	return t, ok
}

// Lookup returns the named preset as a colormap producing colors of
// type T.
func Lookup[T chroma.Point[T]](name string) (colormap.Map[T], bool) {
	t, ok := tables[name]
	if !ok {
		return nil, false
	}
	return colormap.NewListed[T](t), true
}

var tables = map[string][][3]float64{
	"gray":    grayData,
	"bluered": blueredData,
	"viridis": viridisData,
	"magma":   magmaData,
	"inferno": infernoData,
	"plasma":  plasmaData,
}
