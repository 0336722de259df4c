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

package rop

import "seehuhn.de/go/rasterdev/tile"

func getBit(row []byte, x int) byte {
	return (row[x/8] >> uint(7-x%8)) & 1
}

func setBit(row []byte, x int, bit byte) {
	mask := byte(0x80) >> uint(x%8)
	if bit != 0 {
		row[x/8] |= mask
	} else {
		row[x/8] &^= mask
	}
}

// ApplyMonobit runs the generic rolling inner loop over a monobit
// destination (MSB-first, dRaster bytes per row), per spec.md §4.4.
// src is optional (hasSrc=false treats every S sample as 0, matching a
// rop already sanitized against an absent source); texture is an
// optional tile.Sampler supplying T bit-for-bit, already carrying its
// own phase.
func ApplyMonobit(dst []byte, dRaster, x, y, w, h int, code Code, src []byte, srcX, srcRaster int, hasSrc bool, texture *tile.Sampler) {
	for row := 0; row < h; row++ {
		dRow := dst[(y+row)*dRaster:]
		var sRow []byte
		if hasSrc {
			sRow = src[row*srcRaster:]
		}
		var rowOrigin int
		if texture != nil {
			rowOrigin = texture.RowOrigin(y + row)
		}
		for i := 0; i < w; i++ {
			dx := x + i
			d := getBit(dRow, dx)
			var s byte
			if hasSrc {
				s = getBit(sRow, srcX+i)
			}
			var t byte
			if texture != nil {
				t = byte(texture.RowBit(rowOrigin, y+row, dx))
			}
			out := code.Apply(d, s, t) & 1
			setBit(dRow, dx, out)
		}
	}
}

// StripTileRectangle is the rop_usage_T fast path: the rectangle is
// filled directly from the (possibly inverted) tile pattern, with no
// per-pixel rop evaluation (spec.md §4.4, "pure tile or inverted
// tile → strip_tile_rectangle").
func StripTileRectangle(dst []byte, dRaster, x, y, w, h int, s tile.Sampler, invert bool) {
	for row := 0; row < h; row++ {
		dRow := dst[(y+row)*dRaster:]
		rowOrigin := s.RowOrigin(y + row)
		for i := 0; i < w; i++ {
			bit := s.RowBit(rowOrigin, y+row, x+i)
			if invert {
				bit ^= 1
			}
			setBit(dRow, x+i, byte(bit))
		}
	}
}
