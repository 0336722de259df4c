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
	"fmt"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/rop"
)

// StripCopyRop is the C5 RasterOp engine entry point for a planar
// device (spec.md §4.3, "strip_copy_rop on a planar device"). A
// 4-plane 1-bit CMYK configuration gets the dedicated fast routine
// that applies rop to each plane and reconstructs K; every other
// plane layout forwards the call to each plane's own chunky
// StripCopyRop, which is correct whenever the operation acts
// independently on components and src/texture are already split into
// that plane's own sample format (the caller's responsibility,
// matching copyColor4to1111's documented alignment preconditions in
// draw.go).
func (d *Device) StripCopyRop(x, y, w, h int, code byte, hasSrc bool, src []byte, srcX, srcStride int, hasTexture bool, texture *rasterdev.TileBitmap, phaseX, phaseY int) error {
	if d.accel4to1111 {
		return d.stripCopyRopCMYK4(x, y, w, h, rop.Code(code), hasSrc, src, hasTexture, texture, phaseX, phaseY)
	}
	for i, p := range d.Planes {
		if err := p.StripCopyRop(x, y, w, h, code, hasSrc, src, srcX, srcStride, hasTexture, texture, phaseX, phaseY); err != nil {
			return fmt.Errorf("plane %d: %w", i, err)
		}
	}
	return nil
}

// stripCopyRopCMYK4 runs the 4-plane 1-bit CMYK inner loop (spec.md
// §4.4) over the clipped, byte-aligned rectangle. A chunky source
// isn't accepted here: there is no single natural byte encoding of
// four independent 1-bit planes in one source stream, so the caller
// must route a chunky source through CopyColor (which already
// deinterleaves via the 4-to-1111 accelerator or the generic path) and
// use StripCopyRop only for destination/texture-only rops (fill,
// no-op, tile stamping).
func (d *Device) stripCopyRopCMYK4(x, y, w, h int, code rop.Code, hasSrc bool, src []byte, hasTexture bool, texture *rasterdev.TileBitmap, phaseX, phaseY int) error {
	if hasSrc {
		return fmt.Errorf("%w: CMYK 4-plane strip_copy_rop does not accept a chunky source", rasterdev.ErrRange)
	}
	if x%8 != 0 || w%8 != 0 {
		return fmt.Errorf("%w: CMYK 4-plane strip_copy_rop requires byte-aligned x and w", rasterdev.ErrRange)
	}
	cx, cy, cw, ch, ok, err := rasterdev.ClipRect(x, y, w, h, d.W, d.H)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if cx%8 != 0 || cw%8 != 0 {
		return fmt.Errorf("%w: CMYK 4-plane strip_copy_rop requires a byte-aligned clipped rectangle", rasterdev.ErrRange)
	}

	byteX := cx / 8
	byteWidth := cw / 8
	cPlane, mPlane, yPlane, kPlane := d.Planes[0], d.Planes[1], d.Planes[2], d.Planes[3]

	for row := 0; row < ch; row++ {
		absRow := cy + row
		cRow := cPlane.Rows[absRow][byteX : byteX+byteWidth]
		mRow := mPlane.Rows[absRow][byteX : byteX+byteWidth]
		yRow := yPlane.Rows[absRow][byteX : byteX+byteWidth]
		kRow := kPlane.Rows[absRow][byteX : byteX+byteWidth]

		for bi := 0; bi < byteWidth; bi++ {
			var t [4]byte
			if hasTexture {
				for bit := 0; bit < 8; bit++ {
					col := (byteX+bi)*8 + bit
					if texture.Bit(col+phaseX, absRow+phaseY) != 0 {
						mask := byte(0x80) >> uint(bit)
						t[0] |= mask
						t[1] |= mask
						t[2] |= mask
						t[3] |= mask
					}
				}
			}
			c, m, ye, k := rop.ApplyPlanar4CMYK(code, cRow[bi], mRow[bi], yRow[bi], kRow[bi], [4]byte{}, t, false, hasTexture)
			cRow[bi], mRow[bi], yRow[bi], kRow[bi] = c, m, ye, k
		}
	}
	return nil
}
