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

// CopyColor blits source pixels of the device's own depth (spec.md
// §4.2). For byte-aligned depths (8, 16, 24, 32, 40, 48, 56, 64) this
// is a straight per-row byte copy; for sub-byte depths (1, 2, 4) it
// goes through the bit-serial sample primitives.
func (d *Device) CopyColor(src []byte, srcX, srcStride, x, y, w, h int) error {
	cx, cy, cw, ch, ok, err := d.clip(x, y, w, h)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	// account for clipping having moved the destination origin
	dx, dy := cx-x, cy-y
	srcX += dx
	srcYBase := dy

	if d.Depth%8 == 0 {
		byteWidth := cw * d.Depth / 8
		for row := 0; row < ch; row++ {
			dstOff := cx * d.Depth / 8
			srcOff := srcX * d.Depth / 8
			srcRow := src[(srcYBase+row)*srcStride+srcOff : (srcYBase+row)*srcStride+srcOff+byteWidth]
			dstRow := d.Rows[cy+row]
			d.bracketSwap(cy+row, dstOff, byteWidth, func() {
				copy(dstRow[dstOff:dstOff+byteWidth], srcRow)
			})
		}
		return nil
	}

	// Sub-byte depths: sample-by-sample via the cursor primitives.
	for row := 0; row < ch; row++ {
		srcC := rasterdev.Cursor{Byte: (srcX * d.Depth) / 8, Bit: (srcX * d.Depth) % 8}
		srcRow := src[(srcYBase+row)*srcStride:]
		dstC := rasterdev.Cursor{Byte: (cx * d.Depth) / 8, Bit: (cx * d.Depth) % 8}
		dstRow := d.Rows[cy+row]
		for i := 0; i < cw; i++ {
			v, nsrc, err := rasterdev.LoadNext(srcRow, srcC, d.Depth)
			if err != nil {
				return err
			}
			srcC = nsrc
			ndst, _, err := rasterdev.StoreNext(dstRow, dstC, d.Depth, v, 0)
			if err != nil {
				return err
			}
			dstC = ndst
		}
	}
	return nil
}

// CopyMono reads a 1-bit source (MSB-first) and paints color0 where
// the source bit is 0 and color1 where it is 1. A NoColor value in
// either slot leaves that polarity's destination pixels unchanged
// (stencil / reverse-stencil modes). Supplying NoColor for both is an
// undefined result (spec.md §7).
func (d *Device) CopyMono(src []byte, srcX, srcStride, x, y, w, h int, color0, color1 rasterdev.ColorIndex) error {
	if color0 == rasterdev.NoColor && color1 == rasterdev.NoColor {
		return rasterdev.ErrUndefinedResult
	}
	cx, cy, cw, ch, ok, err := d.clip(x, y, w, h)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	dx, dy := cx-x, cy-y
	srcX += dx

	for row := 0; row < ch; row++ {
		srcRow := src[(dy+row)*srcStride:]
		for i := 0; i < cw; i++ {
			bitIdx := srcX + i
			bit := (srcRow[bitIdx/8] >> uint(7-bitIdx%8)) & 1
			var color rasterdev.ColorIndex
			if bit == 0 {
				color = color0
			} else {
				color = color1
			}
			if color == rasterdev.NoColor {
				continue
			}
			if err := d.fillPixelAny(cx+i, cy+row, color); err != nil {
				return err
			}
		}
	}
	return nil
}

// CopyAlpha composites color over the destination at each pixel,
// weighted by an alphaDepth-bit alpha sample read from src (spec.md
// §4.2). Blending happens in 8-bit RGB space via MapColorRGB /
// MapRGBColor so it works uniformly across every device depth.
func (d *Device) CopyAlpha(src []byte, srcX, srcStride, x, y, w, h int, color rasterdev.ColorIndex, alphaDepth int) error {
	cx, cy, cw, ch, ok, err := d.clip(x, y, w, h)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	dx, dy := cx-x, cy-y
	srcX += dx

	maxA := (1 << uint(alphaDepth)) - 1
	cr, cg, cb := d.MapColorRGB(color)

	for row := 0; row < ch; row++ {
		srcRow := src[(dy+row)*srcStride:]
		c := rasterdev.Cursor{Byte: (srcX * alphaDepth) / 8, Bit: (srcX * alphaDepth) % 8}
		for i := 0; i < cw; i++ {
			a, next, err := rasterdev.LoadNext(srcRow, c, alphaDepth)
			if err != nil {
				return err
			}
			c = next
			if a == 0 {
				continue
			}
			px := cx + i
			py := cy + row
			if int(a) == maxA {
				if err := d.fillPixelAny(px, py, color); err != nil {
					return err
				}
				continue
			}
			dr, dg, db := d.pixelRGB(px, py)
			br := blend8(dr, cr, int(a), maxA)
			bg := blend8(dg, cg, int(a), maxA)
			bb := blend8(db, cb, int(a), maxA)
			if err := d.fillPixelAny(px, py, d.MapRGBColor(br, bg, bb)); err != nil {
				return err
			}
		}
	}
	return nil
}

func blend8(dst, src byte, a, maxA int) byte {
	return byte((int(dst)*(maxA-a) + int(src)*a) / maxA)
}

// CopyPlanes blits a planar source — planes laid out sequentially,
// each srcStride bytes per row and h rows tall — onto the device by
// interleaving samples one destination pixel at a time. Chunky devices
// have a single effective "plane" per component, so this degenerates
// to reading one sample per plane per pixel and packing them into the
// device's native chunky layout via MapRGBColor/MapCMYKColor when the
// plane count matches a known color model, or writing planes directly
// when the device itself only has one component.
func (d *Device) CopyPlanes(planes [][]byte, srcX, srcStride, x, y, w, h int) error {
	if len(planes) == 0 {
		return rasterdev.ErrFatal
	}
	cx, cy, cw, ch, ok, err := d.clip(x, y, w, h)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	dx, dy := cx-x, cy-y
	srcX += dx

	switch len(planes) {
	case 1:
		return d.CopyColor(planes[0], srcX, srcStride, cx, cy, cw, ch)
	case 3:
		for row := 0; row < ch; row++ {
			for i := 0; i < cw; i++ {
				r := planes[0][(dy+row)*srcStride+srcX+i]
				g := planes[1][(dy+row)*srcStride+srcX+i]
				b := planes[2][(dy+row)*srcStride+srcX+i]
				if err := d.fillPixelAny(cx+i, cy+row, d.MapRGBColor(r, g, b)); err != nil {
					return err
				}
			}
		}
		return nil
	case 4:
		for row := 0; row < ch; row++ {
			for i := 0; i < cw; i++ {
				c := planes[0][(dy+row)*srcStride+srcX+i]
				m := planes[1][(dy+row)*srcStride+srcX+i]
				ye := planes[2][(dy+row)*srcStride+srcX+i]
				k := planes[3][(dy+row)*srcStride+srcX+i]
				if err := d.fillPixelAny(cx+i, cy+row, d.MapCMYKColor(c, m, ye, k)); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return rasterdev.ErrRange
	}
}

func (d *Device) pixelRGB(x, y int) (r, g, b byte) {
	row := d.Rows[y]
	switch d.Depth {
	case 8:
		v := row[x]
		if d.Palette != nil {
			return d.Palette.At(int(v))
		}
		return v, v, v
	case 16:
		hi, lo := row[x*2], row[x*2+1]
		return rasterdev.UnpackRGB565(rasterdev.ColorIndex(uint16(hi)<<8 | uint16(lo)))
	case 24:
		o := x * 3
		return row[o], row[o+1], row[o+2]
	case 32:
		o := x * 4
		cc, m, ye, k := row[o], row[o+1], row[o+2], row[o+3]
		return rasterdev.CMYKBitsToRGB(b2i(cc > 127), b2i(m > 127), b2i(ye > 127), b2i(k > 127))
	default:
		c := d.pixelValue(x, y)
		return d.MapColorRGB(c)
	}
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// pixelValue reads the raw sample at (x,y) for any depth.
func (d *Device) pixelValue(x, y int) rasterdev.ColorIndex {
	row := d.Rows[y]
	c := rasterdev.Cursor{Byte: (x * d.Depth) / 8, Bit: (x * d.Depth) % 8}
	v, _, err := rasterdev.LoadNext(row, c, d.Depth)
	if err != nil {
		return 0
	}
	return rasterdev.ColorIndex(v)
}

// SamplePixel reads the raw native sample at (x,y), exported for
// devices built out of several mem.Device planes (see the planar
// package).
func (d *Device) SamplePixel(x, y int) rasterdev.ColorIndex {
	return d.pixelValue(x, y)
}
