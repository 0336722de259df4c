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

import "seehuhn.de/go/rasterdev"

// ChunkyProcessor traps a component-interleaved (chunky) source: each
// raw scanline is W*C bytes, samples for pixel x packed as
// row[x*C : x*C+C].
type ChunkyProcessor struct {
	W, H, C             int
	CompOrder           []int
	MaxX, MaxY          int
	GetLine             func(y int) ([]byte, error)

	ring        [][]byte
	depth       int
	bytesPerRow int
	linesIn     int // rows read into the ring so far (0-based count)
	linesOut    int // output rows produced so far
}

// NewChunky allocates a chunky trap processor with a ring buffer
// (2*maxY+1)*(W*C) bytes deep — the same depth gdevmem.c's
// `claptrap.c` ring uses, so only rows actually needed for the current
// and next few output rows are ever held in memory (spec.md §4.7,
// "Refill the ring buffer").
func NewChunky(w, h, c int, compOrder []int, maxX, maxY int, getLine func(y int) ([]byte, error)) (*ChunkyProcessor, error) {
	if w <= 0 || h <= 0 || c <= 0 {
		return nil, rasterdev.ErrRange
	}
	if len(compOrder) != c {
		return nil, rasterdev.ErrRange
	}
	depth := 2*maxY + 1
	bytesPerRow := w * c
	ring := make([][]byte, depth)
	for i := range ring {
		ring[i] = make([]byte, bytesPerRow)
	}
	return &ChunkyProcessor{
		W: w, H: h, C: c, CompOrder: compOrder, MaxX: maxX, MaxY: maxY,
		GetLine: getLine, ring: ring, depth: depth, bytesPerRow: bytesPerRow,
	}, nil
}

func (p *ChunkyProcessor) refill(y int) error {
	target := y + p.MaxY
	if target > p.H-1 {
		target = p.H - 1
	}
	for p.linesIn <= target {
		row, err := p.GetLine(p.linesIn)
		if err != nil {
			return err
		}
		copy(p.ring[p.linesIn%p.depth], row)
		p.linesIn++
	}
	return nil
}

func (p *ChunkyProcessor) sample(comp int) func(y, x int) int {
	return func(y, x int) int {
		return int(p.ring[y%p.depth][x*p.C+comp])
	}
}

// ProcessRow produces the trapped output row y, refilling the ring
// buffer as needed. Calls must be made with monotonically increasing
// y within one pass; when y wraps to 0, call Reset first (spec.md
// §4.7 step 4, "Advance y; when y == H, wrap to 0 and clear
// lines_read").
func (p *ChunkyProcessor) ProcessRow(y int) ([]byte, error) {
	if err := p.refill(y); err != nil {
		return nil, err
	}
	y0, y1 := clipRange(y, p.MaxY, p.H)

	out := make([]byte, p.bytesPerRow)
	process := make([]int, p.W)
	for i, comp := range p.CompOrder {
		first := i == 0
		last := i == len(p.CompOrder)-1
		get := p.sample(comp)
		row := p.ring[y%p.depth]
		rowGet := func(x int) int { return int(row[x*p.C+comp]) }
		compRow := processComponent(p.W, p.MaxX, y0, y1, get, rowGet, first, last, process)
		for x := 0; x < p.W; x++ {
			out[x*p.C+comp] = compRow[x]
		}
	}
	p.linesOut++
	return out, nil
}

// Reset clears the read cursor so the next ProcessRow call re-reads
// from the top of the source (spec.md §4.7 step 4: frame wraparound).
func (p *ChunkyProcessor) Reset() {
	p.linesIn = 0
	p.linesOut = 0
}
