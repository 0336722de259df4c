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

package planar

import (
	"bytes"
	"testing"

	"seehuhn.de/go/rasterdev"
)

func rgbDescs() []rasterdev.PlaneDescriptor {
	return []rasterdev.PlaneDescriptor{
		{Depth: 8, Shift: 16, Component: 0},
		{Depth: 8, Shift: 8, Component: 1},
		{Depth: 8, Shift: 0, Component: 2},
	}
}

// TestCopyColor24to888 is spec.md §8 end-to-end scenario 5: a 4-pixel
// chunky RGB row split into three 8-bit planes.
func TestCopyColor24to888(t *testing.T) {
	d, err := Open(4, 1, rgbDescs())
	if err != nil {
		t.Fatal(err)
	}
	if !d.accel24to888 {
		t.Fatal("expected the 24->8+8+8 accelerator to be selected")
	}
	src := []byte{
		0xFF, 0x00, 0x00,
		0x00, 0xFF, 0x00,
		0x00, 0x00, 0xFF,
		0xFF, 0xFF, 0x00,
	}
	if err := d.CopyColor(src, 0, 12, 0, 0, 4, 1); err != nil {
		t.Fatal(err)
	}
	wantR := []byte{0xFF, 0x00, 0x00, 0xFF}
	wantG := []byte{0x00, 0xFF, 0x00, 0xFF}
	wantB := []byte{0x00, 0x00, 0xFF, 0x00}
	if !bytes.Equal(d.Planes[0].Rows[0], wantR) {
		t.Errorf("plane R = % X, want % X", d.Planes[0].Rows[0], wantR)
	}
	if !bytes.Equal(d.Planes[1].Rows[0], wantG) {
		t.Errorf("plane G = % X, want % X", d.Planes[1].Rows[0], wantG)
	}
	if !bytes.Equal(d.Planes[2].Rows[0], wantB) {
		t.Errorf("plane B = % X, want % X", d.Planes[2].Rows[0], wantB)
	}
}

func cmykDescs() []rasterdev.PlaneDescriptor {
	return []rasterdev.PlaneDescriptor{
		{Depth: 1, Shift: 3, Component: 0},
		{Depth: 1, Shift: 2, Component: 1},
		{Depth: 1, Shift: 1, Component: 2},
		{Depth: 1, Shift: 0, Component: 3},
	}
}

func TestCopyColor4to1111(t *testing.T) {
	d, err := Open(2, 1, cmykDescs())
	if err != nil {
		t.Fatal(err)
	}
	if !d.accel4to1111 {
		t.Fatal("expected the 4->1+1+1+1 accelerator to be selected")
	}
	// One source byte: two pixels, nibbles 1000 (C only) and 0001 (K only).
	src := []byte{0x81}
	if err := d.CopyColor(src, 0, 1, 0, 0, 2, 1); err != nil {
		t.Fatal(err)
	}
	if d.Planes[0].Rows[0][0]>>7 != 1 {
		t.Errorf("pixel 0 C bit not set")
	}
	if (d.Planes[3].Rows[0][0]>>6)&1 != 1 || d.Planes[3].Rows[0][0]>>7 != 0 {
		t.Errorf("pixel 1 K bit expected, plane K row = %08b", d.Planes[3].Rows[0][0])
	}
}

func TestPlanarFillRoundTrip(t *testing.T) {
	d, err := Open(4, 2, rgbDescs())
	if err != nil {
		t.Fatal(err)
	}
	color := d.MapRGBColor(0x11, 0x22, 0x33)
	if err := d.FillRectangle(0, 0, 4, 2, color); err != nil {
		t.Fatal(err)
	}
	for i := range d.Planes[0].Rows[0] {
		if d.Planes[0].Rows[0][i] != 0x11 || d.Planes[1].Rows[0][i] != 0x22 || d.Planes[2].Rows[0][i] != 0x33 {
			t.Fatalf("fill mismatch at %d", i)
		}
	}
	r, g, b := d.MapColorRGB(color)
	if r != 0x11 || g != 0x22 || b != 0x33 {
		t.Errorf("MapColorRGB round trip got (%x,%x,%x)", r, g, b)
	}
}

func TestPlanarGetBitsChunky(t *testing.T) {
	d, err := Open(2, 1, rgbDescs())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.FillRectangle(0, 0, 2, 1, d.MapRGBColor(0xAA, 0xBB, 0xCC)); err != nil {
		t.Fatal(err)
	}
	params := &rasterdev.GetBitsParams{
		Options: rasterdev.ReturnCopy | rasterdev.PackingChunky | rasterdev.ColorsRGB,
	}
	if err := d.GetBitsRectangle(rasterdev.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1}, params); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xAA, 0xBB, 0xCC, 0xAA, 0xBB, 0xCC}
	if !bytes.Equal(params.Data[0], want) {
		t.Errorf("got % X, want % X", params.Data[0], want)
	}
}

func TestPlanarGetBitsPlanar(t *testing.T) {
	d, err := Open(2, 1, rgbDescs())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.FillRectangle(0, 0, 2, 1, d.MapRGBColor(1, 2, 3)); err != nil {
		t.Fatal(err)
	}
	params := &rasterdev.GetBitsParams{
		Options: rasterdev.ReturnCopy | rasterdev.PackingPlanar | rasterdev.ColorsNative,
	}
	if err := d.GetBitsRectangle(rasterdev.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1}, params); err != nil {
		t.Fatal(err)
	}
	if len(params.Data) != 3 {
		t.Fatalf("expected 3 rows (one per plane), got %d", len(params.Data))
	}
	if params.Data[0][0] != 1 || params.Data[1][0] != 2 || params.Data[2][0] != 3 {
		t.Errorf("plane rows = %v", params.Data)
	}
}

func TestFillRectangleHLColor(t *testing.T) {
	d, err := Open(2, 1, cmykDescs())
	if err != nil {
		t.Fatal(err)
	}
	if err := d.FillRectangleHLColor(0, 0, 2, 1, []uint16{0xFFFF, 0, 0, 0}); err != nil {
		t.Fatal(err)
	}
	if d.Planes[0].Rows[0][0] != 0xC0 {
		t.Errorf("C plane's two pixels not set: %08b", d.Planes[0].Rows[0][0])
	}
	if d.Planes[1].Rows[0][0] != 0 {
		t.Errorf("M plane should be unset: %08b", d.Planes[1].Rows[0][0])
	}
}
