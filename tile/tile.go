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

// Package tile holds the strip-bitmap replication model shared by the
// RasterOp engine (package rop) and the tile clipper (package clip),
// per spec.md §6.3: a finite bitmap, replicated over an infinite plane
// with an optional per-band X shift ("brick" pattern), addressed
// through a phase offset.
package tile

import "seehuhn.de/go/rasterdev"

// Phase is a tile or rop texture origin offset, modeled as a
// vec.Vec2-shaped pair of ints (spec.md §B: "Tile phase (px,py)").
type Phase struct {
	X, Y int
}

// Sampler answers "what is the tile bit at destination pixel (dx,dy)
// given this phase" without materializing the infinite replication.
type Sampler struct {
	Bitmap *rasterdev.TileBitmap
	Phase  Phase
}

// At returns the tile's bit value for a destination pixel.
func (s Sampler) At(dx, dy int) int {
	return s.Bitmap.Bit(dx+s.Phase.X, dy+s.Phase.Y)
}

// RowOrigin returns the effective X origin (mod RepWidth) of row dy,
// accounting for rep_shift banding (spec.md §4.4: "Tile with
// rep_shift != 0: each row's texture X origin shifts by
// floor((dy+phase_y)/rep_height) * rep_shift modulo rep_width").
// Precomputing this once per row, rather than recomputing the band
// shift per pixel, is what the RasterOp inner loop relies on.
func (s Sampler) RowOrigin(dy int) int {
	y := dy + s.Phase.Y
	if s.Bitmap.RepShift == 0 {
		return mod(s.Phase.X, s.Bitmap.RepWidth)
	}
	band := floorDiv(y, s.Bitmap.RepHeight)
	return mod(s.Phase.X+band*s.Bitmap.RepShift, s.Bitmap.RepWidth)
}

// RowBit returns the tile bit for row dy (already resolved via
// RowOrigin) at column dx, without recomputing the band shift.
func (s Sampler) RowBit(rowOrigin, dy, dx int) int {
	x := mod(dx+rowOrigin, s.Bitmap.RepWidth)
	y := mod(dy+s.Phase.Y, s.Bitmap.RepHeight)
	byteIdx := y*s.Bitmap.Raster + x/8
	return int(s.Bitmap.Data[byteIdx]>>uint(7-x%8)) & 1
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
