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

package mem

import (
	"seehuhn.de/go/rasterdev"
)

// FillRectangle sets every pixel in the clipped rectangle to color
// (spec.md §4.2). A negative w or h is an error unless both are, in
// which case the call is a documented no-op.
func (d *Device) FillRectangle(x, y, w, h int, color rasterdev.ColorIndex) error {
	cx, cy, cw, ch, ok, err := d.clip(x, y, w, h)
	if err != nil {
		return err
	}
	if !ok {
		return nil // no-op: both dimensions negative, or fully clipped away
	}

	switch d.Depth {
	case 1:
		return d.fillRow1(cx, cy, cw, ch, byte(color&1))
	case 8:
		return d.fillRow8(cx, cy, cw, ch, byte(color))
	case 16:
		return d.fillRow16(cx, cy, cw, ch, uint16(color))
	case 24:
		return d.fillRowBytes(cx, cy, cw, ch, []byte{byte(color >> 16), byte(color >> 8), byte(color)})
	case 32:
		return d.fillRowBytes(cx, cy, cw, ch, []byte{byte(color >> 24), byte(color >> 16), byte(color >> 8), byte(color)})
	case 40, 48, 56, 64:
		return d.fillRowBytes(cx, cy, cw, ch, d.packedColor(color))
	default:
		return d.fillRowGeneric(cx, cy, cw, ch, color)
	}
}

// packedColor returns the per-pixel byte pattern for color at the
// device's depth, most-significant byte first, caching the last value
// split so that a run of fills with the same color (the common case)
// avoids repeating the shifts (spec.md §4.2: "a packed cache inside
// the device remembers the last color as split into word-sized
// pieces").
func (d *Device) packedColor(color rasterdev.ColorIndex) []byte {
	if d.lastColorValid && d.lastColor == color {
		return d.lastColorBytes
	}
	d.lastColor = color
	d.lastColorBytes = packBE(color, d.Depth/8)
	d.lastColorValid = true
	return d.lastColorBytes
}

func (d *Device) fillRow1(x, y, w, h int, bit byte) error {
	for row := y; row < y+h; row++ {
		r := d.Rows[row]
		d.bracketSwap(row, 0, len(r), func() {
			rasterdev.FillBitRect(r, d.Raster, x, 0, w, 1, bit)
		})
	}
	return nil
}

func (d *Device) fillRow8(x, y, w, h int, v byte) error {
	for row := y; row < y+h; row++ {
		r := d.Rows[row]
		line := r[x : x+w]
		for i := range line {
			line[i] = v
		}
	}
	return nil
}

func (d *Device) fillRow16(x, y, w, h int, v uint16) error {
	hi, lo := byte(v>>8), byte(v)
	for row := y; row < y+h; row++ {
		r := d.Rows[row]
		off := x * 2
		for i := 0; i < w; i++ {
			r[off] = hi
			r[off+1] = lo
			off += 2
		}
	}
	return nil
}

// fillRowBytes handles any byte-aligned depth (24, 32, 40, 48, 56, 64)
// by repeating the per-pixel byte pattern across the row.
func (d *Device) fillRowBytes(x, y, w, h int, pattern []byte) error {
	bpp := len(pattern)
	for row := y; row < y+h; row++ {
		r := d.Rows[row]
		off := x * bpp
		for i := 0; i < w; i++ {
			copy(r[off:off+bpp], pattern)
			off += bpp
		}
	}
	return nil
}

// fillRowGeneric handles sub-byte depths (2, 4) via the bit-serial
// sample-packing primitives (C2); CopyMono and CopyAlpha reach it
// through fillPixelAny only at those depths.
func (d *Device) fillRowGeneric(x, y, w, h int, color rasterdev.ColorIndex) error {
	for row := y; row < y+h; row++ {
		r := d.Rows[row]
		c := rasterdev.Cursor{Byte: (x * d.Depth) / 8, Bit: (x * d.Depth) % 8}
		for i := 0; i < w; i++ {
			next, _, err := rasterdev.StoreNext(r, c, d.Depth, uint64(color), 0)
			if err != nil {
				return err
			}
			c = next
		}
	}
	return nil
}

// fillPixelAny sets a single pixel at (x,y) to color, for any depth.
// Used by CopyMono and CopyAlpha, which must address arbitrary depths
// one pixel at a time.
func (d *Device) fillPixelAny(x, y int, color rasterdev.ColorIndex) error {
	switch d.Depth {
	case 1:
		return d.fillRow1(x, y, 1, 1, byte(color&1))
	case 8:
		return d.fillRow8(x, y, 1, 1, byte(color))
	case 16:
		return d.fillRow16(x, y, 1, 1, uint16(color))
	case 24:
		return d.fillRowBytes(x, y, 1, 1, []byte{byte(color >> 16), byte(color >> 8), byte(color)})
	case 32:
		return d.fillRowBytes(x, y, 1, 1, []byte{byte(color >> 24), byte(color >> 16), byte(color >> 8), byte(color)})
	case 40, 48, 56, 64:
		return d.fillRowBytes(x, y, 1, 1, d.packedColor(color))
	default:
		return d.fillRowGeneric(x, y, 1, 1, color)
	}
}

// packBE packs the low n*8 bits of v into n bytes, most-significant
// first (spec.md §4.1: "For D >= 10 the store primitive stores bytes
// most-significant first"). Used for the 40/48/56/64-bit chunky depths
// whose per-pixel sample is exactly an integral number of bytes and so
// needs no bit-serial handling.
func packBE(v rasterdev.ColorIndex, n int) []byte {
	out := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return out
}
