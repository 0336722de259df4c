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

// Package image3 implements the type-3 image splitter (spec.md §4.8,
// C9): an image with an associated opacity mask is split into a mask
// plane (rendered into a monobit device, then used to build a mask
// clipper over the real destination) and an opaque image plane
// rendered through that clipper.
package image3

import (
	"fmt"

	"seehuhn.de/go/rasterdev"
)

// Mode is one of the three ways a type-3 image source interleaves its
// mask and image samples (spec.md §4.8, "Interleave modes").
type Mode int

const (
	// Chunky: N+1 components per pixel (mask bit, then N image
	// components) at the image's own resolution.
	Chunky Mode = iota
	// SeparateSource: independent mask and image planes, possibly at
	// different resolutions.
	SeparateSource
	// ScanLines: one source stream alternating blocks of mask rows
	// and blocks of image rows.
	ScanLines
)

// Params describes one type-3 image split (spec.md §4.8's contract
// section): ImageWidth/Height and MaskWidth/Height must either be
// equal (chunky mode) or one must divide the other (scan-lines mode);
// ImageComponents is the image's component count N (the chunky source
// then delivers N+1 components per pixel).
type Params struct {
	Mode                    Mode
	ImageWidth, ImageHeight int
	MaskWidth, MaskHeight   int
	ImageComponents         int
	ImageBitsPerComponent   int
	// MaskBitsPerComponent must be 1, except in chunky mode where it
	// equals ImageBitsPerComponent and only the sample's top bit is
	// observed (spec.md §4.8, "Contract").
	MaskBitsPerComponent int
}

// Validate checks the dimension contract spec.md §4.8 states.
func (p Params) Validate() error {
	if p.Mode != Chunky && p.MaskBitsPerComponent != 1 {
		return fmt.Errorf("%w: mask bits per component must be 1 outside chunky mode", rasterdev.ErrRange)
	}
	if p.Mode == Chunky && p.MaskBitsPerComponent != p.ImageBitsPerComponent {
		return fmt.Errorf("%w: chunky mask bits per component must equal the image's", rasterdev.ErrRange)
	}
	switch p.Mode {
	case Chunky:
		if p.MaskWidth != p.ImageWidth || p.MaskHeight != p.ImageHeight {
			return fmt.Errorf("%w: chunky mode requires equal mask/image dimensions", rasterdev.ErrRange)
		}
	default:
		if !dividesOrIsDivided(p.MaskWidth, p.ImageWidth) || !dividesOrIsDivided(p.MaskHeight, p.ImageHeight) {
			return fmt.Errorf("%w: mask dimensions must divide or be divided by image dimensions", rasterdev.ErrRange)
		}
	}
	return nil
}

func dividesOrIsDivided(a, b int) bool {
	if a <= 0 || b <= 0 {
		return false
	}
	if a >= b {
		return a%b == 0
	}
	return b%a == 0
}

// MaskDevice is the minimal surface the splitter needs from the
// monobit mask-image device created over the union bounding box
// (spec.md §4.8 step 1): set one sample per call as ordinary image
// rendering walks the mask plane.
type MaskDevice interface {
	SetSample(x, y int, bit byte)
	Rows() [][]byte // raw MSB-first rows, one byte slice per row
	Raster() int
}

// Splitter drives one type-3 image split: it owns the mask device and
// forwards opaque-image pixel data pulled from the source, one output
// row at a time, through SplitChunkyRow/SplitScanLineRow as
// appropriate for Params.Mode.
type Splitter struct {
	Params Params
	Mask   MaskDevice
}

// SplitChunkyRow splits one row of N+1-component chunky source samples
// (spec.md §4.8, "Chunky... split occurs row-by-row in a local
// buffer") into a mask-bit row (written into s.Mask at row y) and an
// image-component row (returned, ImageWidth*N bytes wide, one byte per
// component).
func (s *Splitter) SplitChunkyRow(y int, row []byte) ([]byte, error) {
	n := s.Params.ImageComponents
	if s.Params.Mode != Chunky {
		return nil, fmt.Errorf("%w: SplitChunkyRow requires chunky mode", rasterdev.ErrRange)
	}
	stride := n + 1
	if len(row) < s.Params.ImageWidth*stride {
		return nil, fmt.Errorf("%w: chunky row too short", rasterdev.ErrRange)
	}
	image := make([]byte, s.Params.ImageWidth*n)
	for x := 0; x < s.Params.ImageWidth; x++ {
		base := x * stride
		maskBit := row[base] >> 7 // only the top bit is observed
		s.Mask.SetSample(x, y, maskBit)
		copy(image[x*n:(x+1)*n], row[base+1:base+1+n])
	}
	return image, nil
}

// scanState tracks which plane is "owed next" for scan-lines mode
// (spec.md §4.8, "the code tracks which plane is 'owed next' by the
// invariant mask_y/mask_full_height >= pixel_y/pixel_full_height").
type scanState struct {
	maskY, imageY int
}

// NextIsMask reports whether the scan-lines source should deliver its
// next block of rows from the mask plane (true) or the image plane
// (false), per the owed-next invariant: the mask is owed whenever
// consuming one more image row would put the image ahead of it.
func (s *Splitter) NextIsMask(st *scanState) bool {
	lhs := st.maskY * s.Params.ImageHeight // mask_y/mask_full_height >= image_y/image_full_height
	rhs := (st.imageY + 1) * s.Params.MaskHeight
	return lhs < rhs
}

// AdvanceMask records that one mask row was consumed by the scan-line
// source.
func (s *Splitter) AdvanceMask(st *scanState) { st.maskY++ }

// AdvanceImage records that one image row was consumed.
func (s *Splitter) AdvanceImage(st *scanState) { st.imageY++ }

// NewScanState starts scan-lines bookkeeping at the top of both
// planes.
func NewScanState() *scanState { return &scanState{} }
