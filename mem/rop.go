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
	"fmt"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/rop"
	"seehuhn.de/go/rasterdev/tile"
)

// StripCopyRop is the C5 RasterOp engine entry point for a chunky
// device (spec.md §4.4). Sanitizing against the caller's hasSrc/
// hasTexture flags and classifying the result picks one of the
// documented fast dispatches before falling back to the rolling inner
// loop, so rop=0xAA (identity D) is a true no-op, rop=0xCC (pure copy
// of S) and rop=0xF0 with rep_shift=0 (pure copy of T) resolve without
// a full per-byte rop evaluation for monobit devices.
func (d *Device) StripCopyRop(x, y, w, h int, code byte, hasSrc bool, src []byte, srcX, srcStride int, hasTexture bool, texture *rasterdev.TileBitmap, phaseX, phaseY int) error {
	cx, cy, cw, ch, ok, err := d.clip(x, y, w, h)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	dx, dy := cx-x, cy-y
	csrcX := srcX + dx

	var sConst, tConst *byte
	zero := byte(0)
	if !hasSrc {
		sConst = &zero
	}
	if !hasTexture {
		tConst = &zero
	}
	decision := rop.Classify(rop.Code(code), sConst, tConst)

	switch decision.Path {
	case rop.PathConstantFill:
		return d.FillRectangle(cx, cy, cw, ch, rasterdev.ColorIndex(decision.Const))
	case rop.PathNoop:
		return nil
	}

	switch d.Depth {
	case 1:
		return d.stripCopyRopMonobit(cx, cy, cw, ch, decision, hasSrc, src, csrcX, srcStride, dy, hasTexture, texture, phaseX, phaseY)
	case 8:
		return d.stripCopyRopChunky(cx, cy, cw, ch, decision.Code, hasSrc, src, csrcX, srcStride, dy, hasTexture, texture, phaseX, phaseY, 1)
	case 24:
		return d.stripCopyRopChunky(cx, cy, cw, ch, decision.Code, hasSrc, src, csrcX, srcStride, dy, hasTexture, texture, phaseX, phaseY, 3)
	default:
		// spec.md §4.4 "Oversights to encode as testable failures":
		// 16-bit and 32-bit (and other non-8/24) chunky RasterOp needs
		// a transcode-to-24-bit-RGB fallback this engine doesn't
		// implement.
		return fmt.Errorf("%w: strip_copy_rop has no native inner loop for chunky depth %d", rasterdev.ErrRange, d.Depth)
	}
}

// stripCopyRopMonobit runs the RasterOp engine over a 1-bit device,
// one destination row at a time so that no code here ever assumes
// d.Rows is backed by one contiguous allocation (OpenExternal permits
// otherwise). dRaster=0 in the rop.ApplyMonobit/StripTileRectangle
// calls below is deliberate: with h=1 and row=0 every access reduces
// to dst[x:], letting each call address exactly one already-sliced
// row while still passing the row's true absolute index as y so a
// tile texture's rep_shift banding resolves correctly.
func (d *Device) stripCopyRopMonobit(cx, cy, cw, ch int, decision rop.Decision, hasSrc bool, src []byte, csrcX, srcStride, dy int, hasTexture bool, texture *rasterdev.TileBitmap, phaseX, phaseY int) error {
	var sampler *tile.Sampler
	if hasTexture {
		sampler = &tile.Sampler{Bitmap: texture, Phase: tile.Phase{X: phaseX, Y: phaseY}}
	}

	if decision.Path == rop.PathStripTile && sampler != nil {
		for row := 0; row < ch; row++ {
			absRow := cy + row
			rop.StripTileRectangle(d.Rows[absRow], 0, cx, absRow, cw, 1, *sampler, decision.Inverse)
		}
		return nil
	}

	if decision.Path == rop.PathCopyMono && hasSrc {
		c0, c1 := rasterdev.ColorIndex(0), rasterdev.ColorIndex(1)
		if decision.Inverse {
			c0, c1 = 1, 0
		}
		return d.CopyMono(src[dy*srcStride:], csrcX, srcStride, cx, cy, cw, ch, c0, c1)
	}

	for row := 0; row < ch; row++ {
		absRow := cy + row
		var srcRow []byte
		if hasSrc {
			srcRow = src[(dy+row)*srcStride:]
		}
		rop.ApplyMonobit(d.Rows[absRow], 0, cx, absRow, cw, 1, decision.Code, srcRow, csrcX, 0, hasSrc, sampler)
	}
	return nil
}

// stripCopyRopChunky runs the RasterOp engine over an 8-bit or 24-bit
// chunky device, bytesPerPixel distinguishing the two (spec.md §4.4's
// separate depth-8 and depth-24 inner loops). A tile texture has no
// native per-pixel byte representation at these depths, so its bits
// are expanded to 0x00/0xFF once per row before rop.ApplyChunky8/24
// runs; rows are processed one at a time for the same non-contiguity
// reason as stripCopyRopMonobit.
func (d *Device) stripCopyRopChunky(cx, cy, cw, ch int, code rop.Code, hasSrc bool, src []byte, csrcX, srcStride, dy int, hasTexture bool, texture *rasterdev.TileBitmap, phaseX, phaseY, bytesPerPixel int) error {
	for row := 0; row < ch; row++ {
		absRow := cy + row
		var srcRow []byte
		if hasSrc {
			srcRow = src[(dy+row)*srcStride:]
		}
		var texRow []byte
		if hasTexture {
			texRow = expandTileByteRow(texture, absRow, phaseX, phaseY, cx, cw, bytesPerPixel)
		}
		switch bytesPerPixel {
		case 1:
			rop.ApplyChunky8(d.Rows[absRow], 0, cx, 0, cw, 1, code, srcRow, csrcX, 0, hasSrc, texRow, 0, 0, hasTexture)
		case 3:
			rop.ApplyChunky24(d.Rows[absRow], 0, cx, 0, cw, 1, code, srcRow, csrcX, 0, hasSrc, texRow, 0, 0, hasTexture)
		}
	}
	return nil
}

// expandTileByteRow materializes w pixels of a tile bitmap, starting
// at destination column x0 of row y, as bytesPerPixel identical bytes
// per pixel (0x00 or 0xFF), the representation rop.ApplyChunky8/24
// expect for their texture operand.
func expandTileByteRow(texture *rasterdev.TileBitmap, y, phaseX, phaseY, x0, w, bytesPerPixel int) []byte {
	out := make([]byte, w*bytesPerPixel)
	for i := 0; i < w; i++ {
		v := byte(0)
		if texture.Bit(x0+i+phaseX, y+phaseY) != 0 {
			v = 0xFF
		}
		for b := 0; b < bytesPerPixel; b++ {
			out[i*bytesPerPixel+b] = v
		}
	}
	return out
}
