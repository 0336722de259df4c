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
	"bytes"
	"testing"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/rop"
	"seehuhn.de/go/rasterdev/tile"
)

// TestStripCopyRopNoop is spec.md §8's "strip_copy_rop with rop=0xAA
// (D) is a no-op on the destination".
func TestStripCopyRopNoop(t *testing.T) {
	d, err := Open(8, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	copy(d.Rows[0], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	copy(d.Rows[1], []byte{9, 10, 11, 12, 13, 14, 15, 16})
	before0 := append([]byte(nil), d.Rows[0]...)
	before1 := append([]byte(nil), d.Rows[1]...)

	if err := d.StripCopyRop(0, 0, 8, 2, 0xAA, false, nil, 0, 0, false, nil, 0, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d.Rows[0], before0) || !bytes.Equal(d.Rows[1], before1) {
		t.Errorf("rop=0xAA changed the destination: got % X / % X", d.Rows[0], d.Rows[1])
	}
}

// TestStripCopyRopCopyColorEquivalence is spec.md §8's "strip_copy_rop
// with rop=0xCC (S, source-copy) is equivalent to copy_color".
func TestStripCopyRopCopyColorEquivalence(t *testing.T) {
	d1, err := Open(8, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Open(8, 2, 8)
	if err != nil {
		t.Fatal(err)
	}
	src := []byte{10, 20, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160}

	if err := d1.CopyColor(src, 0, 8, 0, 0, 8, 2); err != nil {
		t.Fatal(err)
	}
	if err := d2.StripCopyRop(0, 0, 8, 2, 0xCC, true, src, 0, 8, false, nil, 0, 0); err != nil {
		t.Fatal(err)
	}
	for row := range d1.Rows {
		if !bytes.Equal(d1.Rows[row], d2.Rows[row]) {
			t.Errorf("row %d: CopyColor=% X, StripCopyRop(0xCC)=% X", row, d1.Rows[row], d2.Rows[row])
		}
	}
}

// TestStripCopyRopStripTileEquivalence is spec.md §8's "for a tile
// with rep_shift=0 and no mask, stripping rop=0xF0 ... is equivalent
// to strip_tile_rectangle".
func TestStripCopyRopStripTileEquivalence(t *testing.T) {
	bm := &rasterdev.TileBitmap{
		Data:      []byte{0x40, 0x80}, // row0 = 01......, row1 = 10......
		Raster:    1,
		RepWidth:  2,
		RepHeight: 2,
	}

	d1, err := Open(8, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	d2, err := Open(8, 4, 1)
	if err != nil {
		t.Fatal(err)
	}

	sampler := tile.Sampler{Bitmap: bm}
	for row := 0; row < 4; row++ {
		rop.StripTileRectangle(d1.Rows[row], 0, 0, row, 8, 1, sampler, false)
	}
	if err := d2.StripCopyRop(0, 0, 8, 4, 0xF0, false, nil, 0, 0, true, bm, 0, 0); err != nil {
		t.Fatal(err)
	}
	for row := range d1.Rows {
		if !bytes.Equal(d1.Rows[row], d2.Rows[row]) {
			t.Errorf("row %d: StripTileRectangle=% X, StripCopyRop(0xF0)=% X", row, d1.Rows[row], d2.Rows[row])
		}
	}
}

// TestStripCopyRopUnsupportedDepth exercises spec.md §4.4's documented
// "oversight": 16/32-bit (and other non-8/24) chunky RasterOp has no
// native inner loop and must fail cleanly rather than silently
// misbehave.
func TestStripCopyRopUnsupportedDepth(t *testing.T) {
	d, err := Open(4, 2, 16)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.StripCopyRop(0, 0, 4, 2, 0x66, false, nil, 0, 0, false, nil, 0, 0); err == nil {
		t.Fatal("expected an error for depth-16 strip_copy_rop, got nil")
	}
}
