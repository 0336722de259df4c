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

package clip

import (
	"testing"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/mem"
	"seehuhn.de/go/rasterdev/tile"
)

// checkerMask builds a 4x4 monobit TileBitmap alternating columns:
// bit(x,y) = 1 iff x is even. This is a column checker, so every row
// is the same byte.
func checkerMask(t *testing.T) *rasterdev.TileBitmap {
	t.Helper()
	// 4 wide, 4 tall, pattern per row: 1010 in the high nibble.
	row := byte(0b10100000)
	return &rasterdev.TileBitmap{
		Data:      []byte{row, row, row, row},
		Raster:    1,
		RepWidth:  4,
		RepHeight: 4,
		Planes:    1,
	}
}

func TestFillRectangleMasksOddColumns(t *testing.T) {
	target, err := mem.Open(4, 4, 8)
	if err != nil {
		t.Fatalf("mem.Open: %v", err)
	}
	c := NewMaskClip(target, checkerMask(t), tile.Phase{})

	if err := c.FillRectangle(0, 0, 4, 4, rasterdev.ColorIndex(0x7F)); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := target.Rows[y][x]
			want := byte(0)
			if x%2 == 0 {
				want = 0x7F
			}
			if got != want {
				t.Errorf("pixel (%d,%d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestCopyColorOnlyTouchesMaskedRuns(t *testing.T) {
	target, err := mem.Open(4, 4, 8)
	if err != nil {
		t.Fatalf("mem.Open: %v", err)
	}
	if err := target.FillRectangle(0, 0, 4, 4, rasterdev.ColorIndex(0x11)); err != nil {
		t.Fatalf("pre-fill: %v", err)
	}
	c := NewMaskClip(target, checkerMask(t), tile.Phase{})

	src := []byte{0x99, 0x99, 0x99, 0x99}
	if err := c.CopyColor(src, 0, 4, 0, 0, 4, 1); err != nil {
		t.Fatalf("CopyColor: %v", err)
	}
	want := []byte{0x99, 0x11, 0x99, 0x11}
	for x := 0; x < 4; x++ {
		if target.Rows[0][x] != want[x] {
			t.Errorf("pixel (%d,0) = %#x, want %#x", x, target.Rows[0][x], want[x])
		}
	}
}

func TestSetPhaseIsCheap(t *testing.T) {
	target, err := mem.Open(4, 4, 8)
	if err != nil {
		t.Fatalf("mem.Open: %v", err)
	}
	c := NewTileClip(target, checkerMask(t), tile.Phase{})
	c.SetPhase(tile.Phase{X: 1})
	if c.Phase.X != 1 {
		t.Errorf("SetPhase did not update Phase")
	}
	// Shifting phase by 1 should invert which columns are masked in.
	if err := c.FillRectangle(0, 0, 4, 4, rasterdev.ColorIndex(0x55)); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}
	for x := 0; x < 4; x++ {
		got := target.Rows[0][x]
		want := byte(0)
		if x%2 == 1 {
			want = 0x55
		}
		if got != want {
			t.Errorf("pixel (%d,0) = %#x, want %#x", x, got, want)
		}
	}
}
