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

import "seehuhn.de/go/rasterdev"

// MapRGBColor converts an 8-bit RGB triple to the device's native
// ColorIndex (spec.md §4.2: "color-space bridging").
func (d *Device) MapRGBColor(r, g, b byte) rasterdev.ColorIndex {
	switch d.Depth {
	case 1:
		return rasterdev.MapRGBToMono(r, g, b, d.Inverted)
	case 2, 4, 8:
		if d.Palette == nil {
			return rasterdev.ColorIndex(rasterdev.Luma(r, g, b) >> (8 - d.Depth))
		}
		if isGrayPalette(d.Palette) {
			return rasterdev.ColorIndex(d.Palette.NearestGrayIndex(byte(rasterdev.Luma(r, g, b))))
		}
		return rasterdev.ColorIndex(d.Palette.NearestIndex(r, g, b))
	case 16:
		return rasterdev.RGB565(r, g, b)
	case 24:
		return rasterdev.ColorIndex(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
	default:
		c, m, y, k := rgbToCMYK(r, g, b)
		return rasterdev.PackCMYK(c, m, y, k)
	}
}

func isGrayPalette(p *rasterdev.Palette) bool {
	for i := 0; i < p.Size(); i++ {
		r, g, b := p.At(i)
		if r != g || g != b {
			return false
		}
	}
	return true
}

// MapColorRGB converts a native ColorIndex back to an 8-bit RGB
// triple.
func (d *Device) MapColorRGB(c rasterdev.ColorIndex) (r, g, b byte) {
	switch d.Depth {
	case 1:
		v := byte(c & 1)
		if d.Palette != nil {
			return d.Palette.At(int(v))
		}
		if (v == 0) != d.Inverted {
			return 0xFF, 0xFF, 0xFF
		}
		return 0, 0, 0
	case 2, 4, 8:
		if d.Palette != nil && int(c) < d.Palette.Size() {
			return d.Palette.At(int(c))
		}
		v := byte(c << (8 - d.Depth))
		return v, v, v
	case 16:
		return rasterdev.UnpackRGB565(c)
	case 24:
		return byte(c >> 16), byte(c >> 8), byte(c)
	default:
		cc, m, y, k := rasterdev.UnpackCMYK(c)
		return rasterdev.CMYKBitsToRGB(b2i(cc > 127), b2i(m > 127), b2i(y > 127), b2i(k > 127))
	}
}

// MapCMYKColor converts an 8-bit CMYK quadruple to the device's
// native ColorIndex.
func (d *Device) MapCMYKColor(c, m, y, k byte) rasterdev.ColorIndex {
	if d.Depth == 32 {
		return rasterdev.PackCMYK(c, m, y, k)
	}
	r, g, b := rasterdev.CMYKBitsToRGB(b2i(c > 127), b2i(m > 127), b2i(y > 127), b2i(k > 127))
	return d.MapRGBColor(r, g, b)
}

// FillRectangleHLColor is the separation-aware fill: devn carries one
// high-resolution (16-bit) value per device component, bypassing the
// palette (spec.md §4.2). On a chunky device the values are scaled
// down to the device's native representation via MapCMYKColor/
// MapRGBColor according to the configured component count.
func (d *Device) FillRectangleHLColor(x, y, w, h int, devn []uint16) error {
	switch len(devn) {
	case 1:
		v := byte(devn[0] >> 8)
		return d.FillRectangle(x, y, w, h, d.MapRGBColor(v, v, v))
	case 3:
		return d.FillRectangle(x, y, w, h, d.MapRGBColor(byte(devn[0]>>8), byte(devn[1]>>8), byte(devn[2]>>8)))
	case 4:
		return d.FillRectangle(x, y, w, h, d.MapCMYKColor(byte(devn[0]>>8), byte(devn[1]>>8), byte(devn[2]>>8), byte(devn[3]>>8)))
	default:
		return rasterdev.ErrRange
	}
}
