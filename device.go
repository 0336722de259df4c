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

package rasterdev

import "seehuhn.de/go/geom/rect"

// PlaneDescriptor describes one component plane of a planar device
// (spec.md §3, "Plane descriptor"). Depth is the plane's bits per
// pixel (1..16); Shift is the bit position of the component within the
// logical chunky pixel; Component is an opaque index the caller
// assigns meaning to (e.g. 0=C, 1=M, 2=Y, 3=K).
type PlaneDescriptor struct {
	Depth     int
	Shift     int
	Component int
}

// ValidatePlanes checks the invariants spec.md §3 requires of a planar
// configuration: the plane depths must sum to at most totalDepth, and
// no two planes' (shift, depth) bit ranges may overlap.
func ValidatePlanes(planes []PlaneDescriptor, totalDepth int) error {
	sum := 0
	for _, p := range planes {
		sum += p.Depth
	}
	if sum > totalDepth {
		return errRangef("planar depths sum to %d, exceeds total depth %d", sum, totalDepth)
	}
	for i, a := range planes {
		aLo, aHi := a.Shift, a.Shift+a.Depth
		for j, b := range planes {
			if i == j {
				continue
			}
			bLo, bHi := b.Shift, b.Shift+b.Depth
			if aLo < bHi && bLo < aHi {
				return errRangef("plane %d and plane %d have overlapping bit ranges", i, j)
			}
		}
	}
	return nil
}

// TileBitmap is a strip bitmap: the finite replication unit of a
// possibly-infinite tiled pattern (spec.md §3, "Tile (strip bitmap)",
// and §6.3). Bit (x,y) of the infinite tile is
// Data[(y mod RepHeight)*Raster + effectiveX(x,y)/8], counted MSB
// first, where effectiveX applies RepShift every RepHeight rows.
type TileBitmap struct {
	Data                []byte
	Raster              int // bytes per row within one repetition
	RepWidth, RepHeight int
	RepShift            int // x shift applied every RepHeight rows ("brick" pattern)
	Planes              int // 1 for chunky masks, N for planar tiles
	ID                  uint64
}

// Bit returns the bit of the tile at infinite-tile coordinates (x,y).
func (t *TileBitmap) Bit(x, y int) int {
	eff := effectiveTileX(x, y, t.RepWidth, t.RepHeight, t.RepShift)
	row := mod(y, t.RepHeight)
	byteIdx := row*t.Raster + eff/8
	return int(t.Data[byteIdx]>>uint(7-eff%8)) & 1
}

// effectiveTileX computes the shifted X coordinate used to address a
// tile with a nonzero RepShift ("brick" pattern), per spec.md §6.3:
// effective x = (x + (y/RepHeight)*RepShift) mod RepWidth.
func effectiveTileX(x, y, repWidth, repHeight, repShift int) int {
	if repShift == 0 {
		return mod(x, repWidth)
	}
	band := floorDiv(y, repHeight)
	return mod(x+band*repShift, repWidth)
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// GetBitsOptions is the recognized option bitmask for
// GetBitsRectangle (spec.md §6.2).
type GetBitsOptions uint32

const (
	ReturnPointer GetBitsOptions = 1 << iota
	ReturnCopy

	AlignStandard
	AlignAny

	Offset0
	OffsetSpecified
	OffsetAny

	RasterStandard
	RasterSpecified
	RasterAny

	PackingChunky
	PackingPlanar
	SelectPlanes
	PackingBitPlanar

	ColorsNative
	ColorsRGB
	ColorsCMYK
	ColorsGray

	AlphaNone
	AlphaFirst
	AlphaLast

	Depth8
	DepthAll
)

// GetBitsParams carries the arguments and (on success) the results of
// a GetBitsRectangle call (spec.md §6.2).
type GetBitsParams struct {
	Options  GetBitsOptions
	XOffset  int // used when Options has OffsetSpecified
	Raster   int // used when Options has RasterSpecified
	Planes   []bool // used when Options has SelectPlanes: true entries are returned
	Data     [][]byte
}

// Rect re-exports geom/rect.Rect so callers of this package don't need
// a second import for device rectangles (spec.md §6.1 passes
// rectangles this way throughout).
type Rect = rect.Rect
