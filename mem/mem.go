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

// Package mem implements the chunky raster device (spec.md §4.2, C3):
// a depth-specialized pixel buffer with fill_rectangle, copy_mono,
// copy_color, copy_alpha, copy_planes and get_bits_rectangle.
//
// Polymorphism by depth (Design Notes §9) is realised as one Device
// type whose methods dispatch on Depth, rather than a per-instance
// table of function pointers: the dispatch is a plain switch, which is
// both simpler and safer than the original's patched procedure tables.
package mem

import (
	"fmt"

	"seehuhn.de/go/rasterdev"
)

// chunkyDepths enumerates the depths spec.md §1/§4.2 names for chunky
// devices.
var chunkyDepths = map[int]bool{
	1: true, 2: true, 4: true, 8: true, 16: true, 24: true, 32: true,
	40: true, 48: true, 56: true, 64: true,
}

// Device is a chunky raster device: every pixel's components are
// adjacent bits within a single per-pixel sample of Depth bits.
type Device struct {
	W, H, Depth int
	Raster      int // bytes per row
	Rows        [][]byte

	Palette  *rasterdev.Palette // indexed depths (1,2,4,8) and monobit
	Inverted bool               // monobit polarity (spec.md §4.2 "Polarity")

	// WordOriented buffers store rows in machine-word order instead of
	// big-endian byte order (Design Notes §9 "Endianness"). Depth-1
	// fills (including the per-pixel writes CopyMono and CopyAlpha make
	// at depth 1) and the byte-aligned CopyColor path bracket their
	// touched rows with rasterdev.SwapWords before and after; fills at
	// other depths, the sub-byte CopyColor path, StripCopyRop and
	// GetBitsRectangle do not swap. wordSize is the machine word size
	// in bytes.
	WordOriented bool
	wordSize     int

	// lastColorBytes caches the most recent fill color already split
	// into bytes, for depths 40/48/56/64 (see packedColor in fill.go).
	lastColor      rasterdev.ColorIndex
	lastColorBytes []byte
	lastColorValid bool
}

// Open allocates an owned chunky device of the given width, height and
// depth. For depth 1 the device uses the default monobit palette
// unless overridden via SetPalette; at depths 2, 4 and 8 with no
// palette set via SetPalette, colors map to gray levels.
func Open(width, height, depth int) (*Device, error) {
	if !chunkyDepths[depth] {
		return nil, fmt.Errorf("%w: unsupported chunky depth %d", rasterdev.ErrRange, depth)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimension", rasterdev.ErrRange)
	}
	raster := rasterdev.RasterAlign(width*depth, 8)
	data := make([]byte, raster*height)
	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = data[y*raster : (y+1)*raster]
	}
	d := &Device{W: width, H: height, Depth: depth, Raster: raster, Rows: rows, wordSize: 4}
	if depth == 1 {
		d.Palette = rasterdev.NewMonoPalette(false)
	}
	return d, nil
}

// OpenExternal wraps a caller-supplied, already row-addressable
// backing store instead of allocating one (spec.md §6.1,
// "Backing-store ownership: ... external").
func OpenExternal(width, height, depth, raster int, rows [][]byte) (*Device, error) {
	if !chunkyDepths[depth] {
		return nil, fmt.Errorf("%w: unsupported chunky depth %d", rasterdev.ErrRange, depth)
	}
	if len(rows) != height {
		return nil, fmt.Errorf("%w: row table length %d != height %d", rasterdev.ErrRange, len(rows), height)
	}
	return &Device{W: width, H: height, Depth: depth, Raster: raster, Rows: rows, wordSize: 4}, nil
}

// SetPalette installs a palette for indexed color mapping.
func (d *Device) SetPalette(p *rasterdev.Palette) { d.Palette = p }

// SetInverted sets the monobit polarity flag. Setting polarity is
// idempotent and always re-derivable from the palette (spec.md §4.2).
func (d *Device) SetInverted(inverted bool) {
	d.Inverted = inverted
	if d.Depth == 1 {
		d.Palette = rasterdev.NewMonoPalette(inverted)
	}
}

func (d *Device) Width() int  { return d.W }
func (d *Device) Height() int { return d.H }

// clip intersects (x,y,w,h) with the device bounds.
func (d *Device) clip(x, y, w, h int) (cx, cy, cw, ch int, ok bool, err error) {
	return rasterdev.ClipRect(x, y, w, h, d.W, d.H)
}

func (d *Device) bracketSwap(y, byteOff, byteLen int, fn func()) {
	if !d.WordOriented {
		fn()
		return
	}
	row := d.Rows[y]
	seg := row[byteOff : byteOff+byteLen]
	rasterdev.SwapWords(seg, d.wordSize)
	fn()
	rasterdev.SwapWords(seg, d.wordSize)
}
