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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var testCoords = []Coord{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
	{1, 1, 1},
	{0.5, -0.25, 0.75},
	{-3, 2, -1},
	{100, -45, 40},
	{54.2, 65, 100},
}

// TestDistanceMetric checks the metric axioms on sampled triples of
// points.
func TestDistanceMetric(t *testing.T) {
	for i, a := range testCoords {
		if d := a.Distance(a); d != 0 {
			t.Errorf("coord%d: distance to itself is %g", i, d)
		}
		for j, b := range testCoords {
			dab := a.Distance(b)
			if dab < 0 {
				t.Errorf("coord%d/%d: negative distance %g", i, j, dab)
			}
			if dba := b.Distance(a); dab != dba {
				t.Errorf("coord%d/%d: asymmetric distance %g != %g", i, j, dab, dba)
			}
			for k, c := range testCoords {
				if a.Distance(b) > a.Distance(c)+c.Distance(b)+1e-12 {
					t.Errorf("coord%d/%d/%d: triangle inequality violated", i, j, k)
				}
			}
		}
	}
}

func TestDistanceValue(t *testing.T) {
	a := Coord{0, 0, 0}
	b := Coord{1, 2, 2}
	if d := a.Distance(b); math.Abs(d-3) > 1e-12 {
		t.Errorf("expected distance 3, got %g", d)
	}
}

func TestWeightedMidpoint(t *testing.T) {
	for i, a := range testCoords {
		for j, b := range testCoords {
			name := fmt.Sprintf("%d-%d", i, j)
			t.Run(name, func(t *testing.T) {
				// the extreme weights hit the endpoints exactly
				if got := a.WeightedMidpoint(b, 0); got != a {
					t.Errorf("weight 0: got %v, want %v", got, a)
				}
				if got := a.WeightedMidpoint(b, 1); got != b {
					t.Errorf("weight 1: got %v, want %v", got, b)
				}

				mid := a.Midpoint(b)
				want := a.Add(b).Mul(0.5)
				if d := cmp.Diff(want, mid, cmpopts.EquateApprox(0, 1e-12)); d != "" {
					t.Error(d)
				}
			})
		}
	}
}

// TestWeightedMidpointExtrapolates checks that weights outside [0, 1]
// are not clamped.
func TestWeightedMidpointExtrapolates(t *testing.T) {
	a := Coord{0, 0, 0}
	b := Coord{1, 1, 1}
	got := a.WeightedMidpoint(b, 2)
	want := Coord{2, 2, 2}
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestMean(t *testing.T) {
	points := []Coord{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
	want := Coord{1.0 / 3, 1.0 / 3, 1.0 / 3}
	if d := cmp.Diff(want, Mean(points), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}
