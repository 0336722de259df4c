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
	"errors"
	"testing"

	"seehuhn.de/go/rasterdev"
)

// TestMonobitFillFullBuffer is spec.md §8 end-to-end scenario 1.
func TestMonobitFillFullBuffer(t *testing.T) {
	d, err := Open(16, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.FillRectangle(0, 0, 16, 4, 1); err != nil {
		t.Fatal(err)
	}

	params := &rasterdev.GetBitsParams{
		Options: rasterdev.ReturnCopy | rasterdev.RasterStandard | rasterdev.Offset0 |
			rasterdev.PackingChunky | rasterdev.ColorsNative | rasterdev.AlignStandard,
	}
	if err := d.GetBitsRectangle(rasterdev.Rect{LLx: 0, LLy: 0, URx: 16, URy: 4}, params); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0xFF}
	for i, row := range params.Data {
		if !bytes.Equal(row, want) {
			t.Errorf("row %d = % X, want % X", i, row, want)
		}
	}
}

// TestCopyMonoStencil is spec.md §8 end-to-end scenario 2.
func TestCopyMonoStencil(t *testing.T) {
	d, err := Open(8, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	src := []byte{0xA5} // 10100101
	if err := d.CopyMono(src, 0, 1, 0, 0, 8, 1, rasterdev.NoColor, 0xFF); err != nil {
		t.Fatal(err)
	}
	want := []byte{0xFF, 0x00, 0xFF, 0x00, 0x00, 0xFF, 0x00, 0xFF}
	if !bytes.Equal(d.Rows[0], want) {
		t.Errorf("got % X, want % X", d.Rows[0], want)
	}
}

// TestCopyMonoRoundTrip checks the §8 invariant: painting 0/1 then 1/0
// over the same rectangle is the identity.
func TestCopyMonoRoundTrip(t *testing.T) {
	d, err := Open(8, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	copy(d.Rows[0], []byte{1, 2, 3, 4, 5, 6, 7, 8})
	before := append([]byte(nil), d.Rows[0]...)

	src := []byte{0xA5}
	if err := d.CopyMono(src, 0, 1, 0, 0, 8, 1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := d.CopyMono(src, 0, 1, 0, 0, 8, 1, 1, 0); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(d.Rows[0], before) {
		t.Errorf("round trip mismatch: got % X, want % X", d.Rows[0], before)
	}
}

func TestFillRectangleZeroArea(t *testing.T) {
	d, _ := Open(8, 8, 8)
	if err := d.FillRectangle(2, 2, 0, 5, 1); err != nil {
		t.Fatal(err)
	}
	for _, row := range d.Rows {
		for _, b := range row {
			if b != 0 {
				t.Fatalf("zero-width fill had a side effect")
			}
		}
	}
}

func TestFillRectangleBothNegativeIsNoop(t *testing.T) {
	d, _ := Open(8, 8, 8)
	if err := d.FillRectangle(2, 2, -3, -3, 1); err != nil {
		t.Fatal(err)
	}
}

// TestFillRectangleSingleNegativeIsRangeError is spec.md §4.2/§7: a
// negative w or h is a Range error unless both are negative.
func TestFillRectangleSingleNegativeIsRangeError(t *testing.T) {
	d, _ := Open(8, 8, 8)
	if err := d.FillRectangle(2, 2, -3, 3, 1); !errors.Is(err, rasterdev.ErrRange) {
		t.Fatalf("w<0, h>0: got %v, want ErrRange", err)
	}
	if err := d.FillRectangle(2, 2, 3, -3, 1); !errors.Is(err, rasterdev.ErrRange) {
		t.Fatalf("w>0, h<0: got %v, want ErrRange", err)
	}
}

// TestGetBitsRectangleSingleNegativeIsRangeError checks the same rule
// applies to get_bits_rectangle (spec.md §7's Range error list names
// "negative width/height (only when exactly one is negative)"
// alongside get_bits_rectangle's own unsupported-option-mode case).
func TestGetBitsRectangleSingleNegativeIsRangeError(t *testing.T) {
	d, _ := Open(8, 8, 8)
	params := &rasterdev.GetBitsParams{
		Options: rasterdev.ReturnCopy | rasterdev.RasterStandard | rasterdev.Offset0 |
			rasterdev.PackingChunky | rasterdev.ColorsNative | rasterdev.AlignStandard,
	}
	r := rasterdev.Rect{LLx: 2, LLy: 2, URx: 2 - 3, URy: 5} // w = -3, h = 3
	if err := d.GetBitsRectangle(r, params); !errors.Is(err, rasterdev.ErrRange) {
		t.Fatalf("got %v, want ErrRange", err)
	}
}

// TestFillRoundTripAllDepths is spec.md §8's "Round-trips" property
// for byte-aligned depths.
func TestFillRoundTripAllDepths(t *testing.T) {
	cases := []struct {
		depth int
		color rasterdev.ColorIndex
	}{
		{8, 0x5A},
		{16, 0x1234},
		{24, 0x112233},
		{32, 0xAABBCCDD},
		{40, 0x1122334455},
		{48, 0x112233445566},
		{56, 0x11223344556677},
		{64, 0x1122334455667788},
	}
	for _, c := range cases {
		d, err := Open(4, 2, c.depth)
		if err != nil {
			t.Fatalf("depth %d: %v", c.depth, err)
		}
		if err := d.FillRectangle(0, 0, 4, 2, c.color); err != nil {
			t.Fatalf("depth %d: %v", c.depth, err)
		}
		params := &rasterdev.GetBitsParams{
			Options: rasterdev.ReturnCopy | rasterdev.RasterStandard | rasterdev.Offset0 |
				rasterdev.PackingChunky | rasterdev.ColorsNative,
		}
		if err := d.GetBitsRectangle(rasterdev.Rect{LLx: 0, LLy: 0, URx: 4, URy: 2}, params); err != nil {
			t.Fatalf("depth %d: %v", c.depth, err)
		}
		bpp := c.depth / 8
		want := packBE(c.color, bpp)
		for _, row := range params.Data {
			for px := 0; px < 4; px++ {
				got := row[px*bpp : (px+1)*bpp]
				if !bytes.Equal(got, want) {
					t.Errorf("depth %d: pixel got % X, want % X", c.depth, got, want)
				}
			}
		}
	}
}

// TestCMYKToRGBRoundTrip is spec.md §8's 4-bit CMYK -> 24-bit RGB
// round-trip, checked over all 16 codes.
func TestCMYKToRGBRoundTrip(t *testing.T) {
	for code := 0; code < 16; code++ {
		c := (code >> 3) & 1
		m := (code >> 2) & 1
		y := (code >> 1) & 1
		k := code & 1
		r, g, b := rasterdev.CMYKBitsToRGB(c, m, y, k)
		if k == 1 {
			if r != 0 || g != 0 || b != 0 {
				t.Errorf("code %04b: K=1 should force black, got (%d,%d,%d)", code, r, g, b)
			}
			continue
		}
		checkChannel := func(bit int, got byte, name string) {
			if bit == 1 && got != 0 {
				t.Errorf("code %04b: %s should be 0, got %d", code, name, got)
			}
			if bit == 0 && got != 0xFF {
				t.Errorf("code %04b: %s should be 255, got %d", code, name, got)
			}
		}
		checkChannel(c, r, "R")
		checkChannel(m, g, "G")
		checkChannel(y, b, "B")
	}
}

func TestWordOrientedRoundTrip(t *testing.T) {
	d, err := Open(8, 1, 8)
	if err != nil {
		t.Fatal(err)
	}
	d.WordOriented = true
	d.wordSize = 4
	if err := d.FillRectangle(0, 0, 8, 1, 7); err != nil {
		t.Fatal(err)
	}
	for _, b := range d.Rows[0] {
		if b != 7 {
			t.Fatalf("word-oriented fill got %v", d.Rows[0])
		}
	}
}
