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

import "seehuhn.de/go/rasterdev"

// FillRectangle iterates all N planes, shifting and masking color for
// each (spec.md §4.3).
func (d *Device) FillRectangle(x, y, w, h int, color rasterdev.ColorIndex) error {
	for i, p := range d.Planes {
		if err := p.FillRectangle(x, y, w, h, d.componentOf(color, i)); err != nil {
			return err
		}
	}
	return nil
}

// CopyMono iterates all N planes with the caller's two device colors
// split per plane (spec.md §4.3).
func (d *Device) CopyMono(src []byte, srcX, srcStride, x, y, w, h int, color0, color1 rasterdev.ColorIndex) error {
	for i, p := range d.Planes {
		c0, c1 := color0, color1
		if c0 != rasterdev.NoColor {
			c0 = d.componentOf(c0, i)
		}
		if c1 != rasterdev.NoColor {
			c1 = d.componentOf(c1, i)
		}
		if err := p.CopyMono(src, srcX, srcStride, x, y, w, h, c0, c1); err != nil {
			return err
		}
	}
	return nil
}

// CopyColor blits a chunky source onto the planar device. Two
// dedicated accelerators apply when the plane configuration matches
// (spec.md §4.3): 24-bit RGB -> three 8-bit planes via one
// deinterleaving pass, and 4-bit CMYK -> four 1-bit planes via a
// 256-entry nibble-expansion table. Otherwise each source pixel is
// read with one LoadNext and split generically into the planes.
func (d *Device) CopyColor(src []byte, srcX, srcStride, x, y, w, h int) error {
	switch {
	case d.accel24to888:
		return d.copyColor24to888(src, srcX, srcStride, x, y, w, h)
	case d.accel4to1111:
		return d.copyColor4to1111(src, srcX, srcStride, x, y, w, h)
	default:
		return d.copyColorGeneric(src, srcX, srcStride, x, y, w, h)
	}
}

func (d *Device) copyColor24to888(src []byte, srcX, srcStride, x, y, w, h int) error {
	cx, cy, cw, ch, ok, err := rasterdev.ClipRect(x, y, w, h, d.W, d.H)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	dx, dy := cx-x, cy-y
	for row := 0; row < ch; row++ {
		srcRow := src[(dy+row)*srcStride+(srcX+dx)*3:]
		rPlane := d.Planes[0].Rows[cy+row]
		gPlane := d.Planes[1].Rows[cy+row]
		bPlane := d.Planes[2].Rows[cy+row]
		so := 0
		for i := 0; i < cw; i++ {
			rPlane[cx+i] = srcRow[so]
			gPlane[cx+i] = srcRow[so+1]
			bPlane[cx+i] = srcRow[so+2]
			so += 3
		}
	}
	return nil
}

// cmykExpand is a 256-entry table indexed by one source byte (two
// CMYK nibbles, each with bits in C,M,Y,K order, MSB first): entry
// [plane] holds the two pixels' bits for that plane in its top two
// bits, so four source bytes (8 nibbles) fill one output byte per
// plane (spec.md §4.3: "4->1+1+1+1 CMYK").
var cmykExpand [256][4]byte

func init() {
	for b := 0; b < 256; b++ {
		var c, m, y, k byte
		for pix := 0; pix < 2; pix++ {
			nib := (b >> uint(4*(1-pix))) & 0xF
			bit := byte(pix)
			_ = bit
			c |= byte((nib>>3)&1) << uint(7-pix)
			m |= byte((nib>>2)&1) << uint(7-pix)
			y |= byte((nib>>1)&1) << uint(7-pix)
			k |= byte(nib&1) << uint(7-pix)
		}
		cmykExpand[b] = [4]byte{c, m, y, k}
	}
}

// copyColor4to1111 deinterleaves a 4-bit-per-pixel CMYK chunky source
// (two pixels per source byte) into four 1-bit planes, one source
// byte at a time via the cmykExpand table. It requires x, srcX and w
// to be even so that source/destination bytes align on 2-pixel
// (1-byte) boundaries; callers with odd alignment fall back to the
// generic path.
func (d *Device) copyColor4to1111(src []byte, srcX, srcStride, x, y, w, h int) error {
	if x%2 != 0 || srcX%2 != 0 || w%2 != 0 {
		return d.copyColorGeneric(src, srcX, srcStride, x, y, w, h)
	}
	cx, cy, cw, ch, ok, err := rasterdev.ClipRect(x, y, w, h, d.W, d.H)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	if cx%2 != 0 || cw%2 != 0 {
		return d.copyColorGeneric(src, srcX+(cx-x), srcStride, cx, cy, cw, ch)
	}
	dx, dy := cx-x, cy-y
	byteWidth := cw / 2
	for row := 0; row < ch; row++ {
		srcOff := (srcX+dx)/2 + (dy+row)*srcStride
		srcRow := src[srcOff : srcOff+byteWidth]
		for bi, sb := range srcRow {
			exp := cmykExpand[sb]
			px := cx + 2*bi
			shift := uint(px % 8)
			for plane := 0; plane < 4; plane++ {
				b := &d.Planes[plane].Rows[cy+row][px/8]
				*b = *b&^(0xC0>>shift) | exp[plane]>>shift
			}
		}
	}
	return nil
}

func (d *Device) copyColorGeneric(src []byte, srcX, srcStride, x, y, w, h int) error {
	depth := totalDepth(d.Descs)
	cx, cy, cw, ch, ok, err := rasterdev.ClipRect(x, y, w, h, d.W, d.H)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	dx, dy := cx-x, cy-y
	for row := 0; row < ch; row++ {
		srcRow := src[(dy+row)*srcStride:]
		c := rasterdev.Cursor{Byte: ((srcX + dx) * depth) / 8, Bit: ((srcX + dx) * depth) % 8}
		for i := 0; i < cw; i++ {
			v, next, err := rasterdev.LoadNext(srcRow, c, depth)
			if err != nil {
				return err
			}
			c = next
			for pi, p := range d.Planes {
				comp := d.componentOf(rasterdev.ColorIndex(v), pi)
				if err := p.FillRectangle(cx+i, cy+row, 1, 1, comp); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// CopyAlpha iterates all N planes.
func (d *Device) CopyAlpha(src []byte, srcX, srcStride, x, y, w, h int, color rasterdev.ColorIndex, alphaDepth int) error {
	for i, p := range d.Planes {
		if err := p.CopyAlpha(src, srcX, srcStride, x, y, w, h, d.componentOf(color, i), alphaDepth); err != nil {
			return err
		}
	}
	return nil
}

// CopyPlanes copies a planar source directly onto this planar
// device's planes one-to-one. The source plane count must match.
func (d *Device) CopyPlanes(planes [][]byte, srcX, srcStride, x, y, w, h int) error {
	if len(planes) != len(d.Planes) {
		return rasterdev.ErrRange
	}
	for i, p := range d.Planes {
		if err := p.CopyColor(planes[i], srcX, srcStride, x, y, w, h); err != nil {
			return err
		}
	}
	return nil
}

// MapRGBColor composes the device color index out of per-plane values
// shifted into place. With three planes, plane i takes the i-th of R,
// G, B reduced to the plane's depth (the inverse of MapColorRGB);
// otherwise each plane contributes its own mapping of the triple.
func (d *Device) MapRGBColor(r, g, b byte) rasterdev.ColorIndex {
	if len(d.Planes) == 3 {
		rgb := [3]byte{r, g, b}
		var out rasterdev.ColorIndex
		for i := range d.Planes {
			out |= rasterdev.ColorIndex(rgb[i]>>uint(8-d.Descs[i].Depth)) << uint(d.Descs[i].Shift)
		}
		return out
	}
	var out rasterdev.ColorIndex
	for i, p := range d.Planes {
		c := p.MapRGBColor(r, g, b)
		out |= c << uint(d.Descs[i].Shift)
	}
	return out
}

// MapColorRGB reads back RGB using plane 0's color model as a
// representative (planar devices are typically either all-gray
// separations or CMYK/RGB split by component, where plane 0 alone
// doesn't carry full color information for CMYK/RGB splits, so this
// delegates to the 3/4-plane-aware path).
func (d *Device) MapColorRGB(c rasterdev.ColorIndex) (r, g, b byte) {
	switch len(d.Planes) {
	case 3:
		return byte(d.componentOf(c, 0) << (8 - d.Descs[0].Depth)),
			byte(d.componentOf(c, 1) << (8 - d.Descs[1].Depth)),
			byte(d.componentOf(c, 2) << (8 - d.Descs[2].Depth))
	case 4:
		cc := byte(d.componentOf(c, 0))
		m := byte(d.componentOf(c, 1))
		y := byte(d.componentOf(c, 2))
		k := byte(d.componentOf(c, 3))
		return rasterdev.CMYKBitsToRGB(int(cc), int(m), int(y), int(k))
	default:
		return d.Planes[0].MapColorRGB(d.componentOf(c, 0))
	}
}

// MapCMYKColor composes a device color from a CMYK quadruple.
func (d *Device) MapCMYKColor(c, m, y, k byte) rasterdev.ColorIndex {
	if len(d.Planes) == 4 {
		var out rasterdev.ColorIndex
		vals := []byte{c, m, y, k}
		for i, p := range d.Planes {
			bit := rasterdev.ColorIndex(0)
			if vals[i] > 127 {
				bit = (1 << uint(d.Descs[i].Depth)) - 1
			}
			out |= (p.MapRGBColor(0, 0, 0)*0 + bit) << uint(d.Descs[i].Shift)
		}
		return out
	}
	r, g, b := rasterdev.CMYKBitsToRGB(b2i(c > 127), b2i(m > 127), b2i(y > 127), b2i(k > 127))
	return d.MapRGBColor(r, g, b)
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}

// FillRectangleHLColor fills each plane with its scaled devn
// component directly, bypassing the palette (spec.md §4.3).
func (d *Device) FillRectangleHLColor(x, y, w, h int, devn []uint16) error {
	if len(devn) != len(d.Planes) {
		return rasterdev.ErrRange
	}
	for i, p := range d.Planes {
		depth := d.Descs[i].Depth
		v := rasterdev.ColorIndex(devn[i] >> uint(16-depth))
		if err := p.FillRectangle(x, y, w, h, v); err != nil {
			return err
		}
	}
	return nil
}
