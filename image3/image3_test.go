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

package image3

import (
	"testing"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/mem"
)

func TestValidateChunkyRequiresEqualDimensions(t *testing.T) {
	p := Params{Mode: Chunky, ImageWidth: 4, ImageHeight: 4, MaskWidth: 2, MaskHeight: 4,
		ImageComponents: 3, ImageBitsPerComponent: 8, MaskBitsPerComponent: 8}
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for mismatched chunky dimensions")
	}
}

func TestValidateSeparateSourceAllowsDivisibleDimensions(t *testing.T) {
	p := Params{Mode: SeparateSource, ImageWidth: 8, ImageHeight: 8, MaskWidth: 4, MaskHeight: 4,
		ImageComponents: 3, ImageBitsPerComponent: 8, MaskBitsPerComponent: 1}
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidateRejectsIncommensurateDimensions(t *testing.T) {
	p := Params{Mode: SeparateSource, ImageWidth: 5, ImageHeight: 8, MaskWidth: 3, MaskHeight: 4,
		ImageComponents: 3, ImageBitsPerComponent: 8, MaskBitsPerComponent: 1}
	if err := p.Validate(); err == nil {
		t.Fatal("expected an error for incommensurate dimensions")
	}
}

// TestSplitChunkyRowSeparatesMaskFromImage checks that one interleaved
// row of 2-component (N=1 image component) chunky samples splits into
// the correct mask bits and the correct image byte stream (spec.md
// §4.8, "Chunky" mode).
func TestSplitChunkyRowSeparatesMaskFromImage(t *testing.T) {
	p := Params{Mode: Chunky, ImageWidth: 3, ImageHeight: 1, MaskWidth: 3, MaskHeight: 1,
		ImageComponents: 1, ImageBitsPerComponent: 8, MaskBitsPerComponent: 8}
	mask := NewMaskBitmap(3, 1)
	s := &Splitter{Params: p, Mask: mask}

	// pixel0: mask=0xFF (opaque), image=10
	// pixel1: mask=0x00 (transparent), image=20
	// pixel2: mask=0x80 (top bit set -> opaque), image=30
	row := []byte{0xFF, 10, 0x00, 20, 0x80, 30}
	image, err := s.SplitChunkyRow(0, row)
	if err != nil {
		t.Fatalf("SplitChunkyRow: %v", err)
	}
	if len(image) != 3 || image[0] != 10 || image[1] != 20 || image[2] != 30 {
		t.Fatalf("image row = %v, want [10 20 30]", image)
	}
	if mask.Bit(0, 0) != 1 || mask.Bit(1, 0) != 0 || mask.Bit(2, 0) != 1 {
		t.Errorf("mask bits = %d,%d,%d, want 1,0,1", mask.Bit(0, 0), mask.Bit(1, 0), mask.Bit(2, 0))
	}
}

// Bit is a small test helper reading back one mask sample.
func (m *MaskBitmap) Bit(x, y int) int {
	return int(m.data[y*m.raster+x/8]>>uint(7-x%8)) & 1
}

// TestNextIsMaskFollowsOwedInvariant drives the scan-lines bookkeeping
// across mismatched mask/image heights and checks every step satisfies
// mask_y/mask_full_height >= image_y/image_full_height once advanced
// (spec.md §4.8, "Scan-lines" mode).
func TestNextIsMaskFollowsOwedInvariant(t *testing.T) {
	p := Params{Mode: ScanLines, ImageWidth: 4, ImageHeight: 4, MaskWidth: 4, MaskHeight: 2,
		ImageComponents: 3, ImageBitsPerComponent: 8, MaskBitsPerComponent: 1}
	s := &Splitter{Params: p}
	st := NewScanState()

	var maskRows, imageRows int
	for maskRows < p.MaskHeight || imageRows < p.ImageHeight {
		if maskRows < p.MaskHeight && (imageRows >= p.ImageHeight || s.NextIsMask(st)) {
			s.AdvanceMask(st)
			maskRows++
		} else {
			s.AdvanceImage(st)
			imageRows++
		}
		if st.maskY*p.ImageHeight < st.imageY*p.MaskHeight {
			t.Errorf("after %d mask, %d image rows: mask behind image", maskRows, imageRows)
		}
	}
	if maskRows != p.MaskHeight || imageRows != p.ImageHeight {
		t.Fatalf("consumed %d mask rows, %d image rows, want %d,%d", maskRows, imageRows, p.MaskHeight, p.ImageHeight)
	}
}

// TestMaskClipLayersOverDestination checks that MaskBitmap.MaskClip
// produces a device that only paints where the mask bit is set
// (spec.md §4.8 step 3).
func TestMaskClipLayersOverDestination(t *testing.T) {
	target, err := mem.Open(4, 2, 8)
	if err != nil {
		t.Fatalf("mem.Open: %v", err)
	}
	mask := NewMaskBitmap(4, 2)
	mask.SetSample(0, 0, 1)
	mask.SetSample(2, 0, 1)
	mask.SetSample(1, 1, 1)

	clipped := mask.MaskClip(target, 0, 0)
	color := rasterdev.ColorIndex(9)
	if err := clipped.FillRectangle(0, 0, 4, 2, color); err != nil {
		t.Fatalf("FillRectangle: %v", err)
	}

	want := [][2]int{{0, 0}, {2, 0}, {1, 1}}
	params := &rasterdev.GetBitsParams{
		Options: rasterdev.ReturnCopy | rasterdev.RasterStandard | rasterdev.Offset0 |
			rasterdev.PackingChunky | rasterdev.ColorsNative | rasterdev.AlignStandard,
	}
	if err := target.GetBitsRectangle(rasterdev.Rect{LLx: 0, LLy: 0, URx: 4, URy: 2}, params); err != nil {
		t.Fatalf("GetBitsRectangle: %v", err)
	}
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			isWant := false
			for _, p := range want {
				if p[0] == x && p[1] == y {
					isWant = true
				}
			}
			got := params.Data[y][x] != 0
			if got != isWant {
				t.Errorf("pixel (%d,%d) painted=%v, want %v", x, y, got, isWant)
			}
		}
	}
}
