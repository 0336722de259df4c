// seehuhn.de/go/rasterdev - an in-memory raster graphics engine
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

package trap

import (
	"bytes"
	"testing"
)

// scenario6Rows is spec.md §8 scenario 6's raw (comp0, comp1) band, chunky
// component-interleaved.
var scenario6Rows = [][]byte{
	{255, 0, 255, 0, 255, 0, 255, 0, 255, 0},
	{255, 0, 255, 0, 20, 0, 255, 0, 255, 0},
	{255, 0, 255, 0, 255, 0, 255, 0, 255, 0},
}

func scenario6Processor(t *testing.T) *ChunkyProcessor {
	t.Helper()
	p, err := NewChunky(5, 3, 2, []int{0, 1}, 1, 1, func(y int) ([]byte, error) {
		return scenario6Rows[y], nil
	})
	if err != nil {
		t.Fatalf("NewChunky: %v", err)
	}
	return p
}

// TestChunkyProcessorRow1MatchesInput is spec.md §8 scenario 6: row 1's
// single divot at pixel (2,1) shadows comp1 only, and comp1's own
// local maximum is 0, so the trap test (5v < 4max) cannot pass and the
// trapped output must equal the raw input row unchanged.
func TestChunkyProcessorRow1MatchesInput(t *testing.T) {
	p := scenario6Processor(t)
	if _, err := p.ProcessRow(0); err != nil {
		t.Fatalf("ProcessRow(0): %v", err)
	}
	out, err := p.ProcessRow(1)
	if err != nil {
		t.Fatalf("ProcessRow(1): %v", err)
	}
	if !bytes.Equal(out, scenario6Rows[1]) {
		t.Errorf("row 1 = % d, want % d (unchanged)", out, scenario6Rows[1])
	}
}

// TestChunkyProcessorIdempotentOnFlatInput is spec.md §9's flat-input
// invariant: when every component is constant everywhere, min_v ==
// max_v == v at every pixel, so neither the shadow test (needs
// min_v < max_v) nor the trap test (needs process[x] > v, and
// process[x] is only ever set from a maxV that then equals v) can
// ever fire, and the processor must reproduce its input exactly.
func TestChunkyProcessorIdempotentOnFlatInput(t *testing.T) {
	const w, h, c = 4, 4, 3
	flat := make([]byte, w*c)
	for i := range flat {
		flat[i] = byte(40 + i%3*30)
	}
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = flat
	}
	p, err := NewChunky(w, h, c, []int{0, 1, 2}, 1, 1, func(y int) ([]byte, error) {
		return rows[y], nil
	})
	if err != nil {
		t.Fatalf("NewChunky: %v", err)
	}
	for y := 0; y < h; y++ {
		out, err := p.ProcessRow(y)
		if err != nil {
			t.Fatalf("ProcessRow(%d): %v", y, err)
		}
		if !bytes.Equal(out, flat) {
			t.Errorf("row %d = % d, want unchanged % d", y, out, flat)
		}
	}
}

// TestPlanarProcessorMatchesChunkyOnScenario6 checks the planar
// variant reproduces the same decision core as the chunky one, fed
// the same band split into two single-component planes.
func TestPlanarProcessorMatchesChunkyOnScenario6(t *testing.T) {
	comp0 := make([][]byte, 3)
	comp1 := make([][]byte, 3)
	for y, row := range scenario6Rows {
		c0 := make([]byte, 5)
		c1 := make([]byte, 5)
		for x := 0; x < 5; x++ {
			c0[x] = row[x*2]
			c1[x] = row[x*2+1]
		}
		comp0[y], comp1[y] = c0, c1
	}
	p, err := NewPlanar(5, 3, 2, []int{0, 1}, 1, 1, []func(y int) ([]byte, error){
		func(y int) ([]byte, error) { return comp0[y], nil },
		func(y int) ([]byte, error) { return comp1[y], nil },
	})
	if err != nil {
		t.Fatalf("NewPlanar: %v", err)
	}
	p.ProcessRow(0)
	out, err := p.ProcessRow(1)
	if err != nil {
		t.Fatalf("ProcessRow(1): %v", err)
	}
	if !bytes.Equal(out[0], comp0[1]) || !bytes.Equal(out[1], comp1[1]) {
		t.Errorf("planar row 1 = %v/%v, want unchanged %v/%v", out[0], out[1], comp0[1], comp1[1])
	}
}
