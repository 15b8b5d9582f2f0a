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
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var _ color.Color = SRGB{}

func TestParseHex(t *testing.T) {
	type testCase struct {
		in   string
		want SRGB
	}
	cases := []testCase{
		{"#000000", SRGB{0, 0, 0}},
		{"#FFFFFF", SRGB{1, 1, 1}},
		{"#ff0000", SRGB{1, 0, 0}},
		{"#CC0033", SRGB{0.8, 0, 0.2}},
		{"#Cc0033", SRGB{0.8, 0, 0.2}},
	}
	for _, c := range cases {
		got, err := ParseHex(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
			t.Errorf("%q: %s", c.in, d)
		}
	}

	for _, bad := range []string{"", "#", "#FFF", "FF0000", "#GG0000", "#FF00001"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("%q: expected error", bad)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000", "#FFFFFF", "#EE0011", "#CC0033", "#123456"} {
		c, err := ParseHex(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Hex(); got != s {
			t.Errorf("round trip %q -> %q", s, got)
		}
	}
}

func TestHexClamps(t *testing.T) {
	c := SRGB{R: 1.2, G: -0.1, B: 0.5}
	if got := c.Hex(); got != "#FF0080" {
		t.Errorf("got %q", got)
	}
}

func TestFromName(t *testing.T) {
	c, ok := FromName("RebeccaPurple")
	if !ok {
		t.Fatal("name not found")
	}
	if got := c.Hex(); got != "#663399" {
		t.Errorf("got %q", got)
	}

	if _, ok := FromName("no such color"); ok {
		t.Error("lookup of invalid name succeeded")
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	cases := []SRGB{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
		{0.8, 0, 0.2},
		{0.25, 0.5, 0.75},
	}
	opt := cmpopts.EquateApprox(0, 1e-6)
	for _, ill := range []Illuminant{IlluminantD65, IlluminantD50} {
		for i, c := range cases {
			var zero SRGB
			back := zero.FromXYZ(c.ToXYZ(ill))
			if d := cmp.Diff(c, back, opt); d != "" {
				t.Errorf("case %d via %s: %s", i, ill, d)
			}
		}
	}
}

// TestSRGBAgainstColorful cross-checks the sRGB to XYZ conversion
// against the go-colorful package.
func TestSRGBAgainstColorful(t *testing.T) {
	cases := []SRGB{
		{0, 0, 0},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{0.25, 0.5, 0.75},
		{0.01, 0.02, 0.03},
	}
	opt := cmpopts.EquateApprox(0, 1e-6)
	for i, c := range cases {
		x, y, z := colorful.Color{R: c.R, G: c.G, B: c.B}.Xyz()
		got := c.ToXYZ(IlluminantD65)
		if d := cmp.Diff(Coord{x, y, z}, Coord{got.X, got.Y, got.Z}, opt); d != "" {
			t.Errorf("case %d: %s", i, d)
		}
	}
}

func TestSRGBWhite(t *testing.T) {
	got := SRGB{1, 1, 1}.ToXYZ(IlluminantD65)
	want := IlluminantD65.WhitePoint()
	opt := cmpopts.EquateApprox(0, 1e-3)
	if d := cmp.Diff(want, Coord{got.X, got.Y, got.Z}, opt); d != "" {
		t.Error(d)
	}
}

func TestSRGBRGBA(t *testing.T) {
	r, g, b, a := SRGB{1, 0, 0.5}.RGBA()
	if r != 0xFFFF || g != 0 || b != 0x8000 || a != 0xFFFF {
		t.Errorf("got %04x %04x %04x %04x", r, g, b, a)
	}
}
