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

// PlanarProcessor traps a source held as C separate one-byte-per-pixel
// planes, each with its own GetLine callback — the layout
// planar.Device produces for an 8-bit-per-component image (spec.md
// §4.7, "a planar variant shares the same decision core over one ring
// buffer per plane").
type PlanarProcessor struct {
	W, H, C    int
	CompOrder  []int
	MaxX, MaxY int
	GetLine    []func(y int) ([]byte, error) // one per component, len == C

	rings       [][][]byte // rings[comp][slot]
	depth       int
	linesIn     []int
	linesOut    int
}

// NewPlanar allocates a planar trap processor, one ring buffer per
// component.
func NewPlanar(w, h, c int, compOrder []int, maxX, maxY int, getLine []func(y int) ([]byte, error)) (*PlanarProcessor, error) {
	if w <= 0 || h <= 0 || c <= 0 {
		return nil, rasterdev.ErrRange
	}
	if len(compOrder) != c || len(getLine) != c {
		return nil, rasterdev.ErrRange
	}
	depth := 2*maxY + 1
	rings := make([][][]byte, c)
	for comp := range rings {
		rings[comp] = make([][]byte, depth)
		for slot := range rings[comp] {
			rings[comp][slot] = make([]byte, w)
		}
	}
	return &PlanarProcessor{
		W: w, H: h, C: c, CompOrder: compOrder, MaxX: maxX, MaxY: maxY,
		GetLine: getLine, rings: rings, depth: depth,
		linesIn: make([]int, c),
	}, nil
}

func (p *PlanarProcessor) refill(comp, y int) error {
	target := y + p.MaxY
	if target > p.H-1 {
		target = p.H - 1
	}
	for p.linesIn[comp] <= target {
		row, err := p.GetLine[comp](p.linesIn[comp])
		if err != nil {
			return err
		}
		copy(p.rings[comp][p.linesIn[comp]%p.depth], row)
		p.linesIn[comp]++
	}
	return nil
}

func (p *PlanarProcessor) sample(comp int) func(y, x int) int {
	return func(y, x int) int {
		return int(p.rings[comp][y%p.depth][x])
	}
}

// ProcessRow produces one trapped output row per component, indexed by
// component number; components are processed in CompOrder order.
func (p *PlanarProcessor) ProcessRow(y int) ([][]byte, error) {
	for comp := 0; comp < p.C; comp++ {
		if err := p.refill(comp, y); err != nil {
			return nil, err
		}
	}
	y0, y1 := clipRange(y, p.MaxY, p.H)

	out := make([][]byte, p.C)
	process := make([]int, p.W)
	for i, comp := range p.CompOrder {
		first := i == 0
		last := i == len(p.CompOrder)-1
		get := p.sample(comp)
		row := p.rings[comp][y%p.depth]
		rowGet := func(x int) int { return int(row[x]) }
		out[comp] = processComponent(p.W, p.MaxX, y0, y1, get, rowGet, first, last, process)
	}
	p.linesOut++
	return out, nil
}

// Reset clears the read cursors so the next ProcessRow call re-reads
// from the top of the source.
func (p *PlanarProcessor) Reset() {
	for comp := range p.linesIn {
		p.linesIn[comp] = 0
	}
	p.linesOut = 0
}
