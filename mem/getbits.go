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

// GetBitsRectangle is the sole way to read back from the device
// (spec.md §6.2). RETURN_POINTER with COLORS_NATIVE and PACKING_CHUNKY
// over full-width rows returns the device rows directly (zero-copy).
// Otherwise RETURN_COPY is required together with one of COLORS_NATIVE,
// COLORS_RGB, COLORS_CMYK or COLORS_GRAY, else the call is a range
// error; OFFSET_SPECIFIED with a nonzero XOffset is a range error too.
// The remaining option bits are not checked. Copied rows are the
// unpadded byte width of the rectangle unless RASTER_SPECIFIED is set.
func (d *Device) GetBitsRectangle(r rasterdev.Rect, params *rasterdev.GetBitsParams) error {
	x, y, w, h := rasterdev.IntRect(r)
	cx, cy, cw, ch, ok, err := rasterdev.ClipRect(x, y, w, h, d.W, d.H)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	opts := params.Options
	if opts&rasterdev.OffsetSpecified != 0 && params.XOffset != 0 {
		return rasterdev.ErrRange
	}

	if opts&rasterdev.ReturnPointer != 0 && opts&rasterdev.ColorsNative != 0 &&
		cx == 0 && cw == d.W && opts&rasterdev.PackingChunky != 0 {
		rows := make([][]byte, ch)
		for i := 0; i < ch; i++ {
			rows[i] = d.Rows[cy+i]
		}
		params.Data = rows
		return nil
	}

	if opts&rasterdev.ReturnCopy == 0 {
		return rasterdev.ErrRange
	}

	switch {
	case opts&rasterdev.ColorsNative != 0:
		return d.getBitsNative(cx, cy, cw, ch, params)
	case opts&rasterdev.ColorsRGB != 0:
		return d.getBitsConverted(cx, cy, cw, ch, params, 3, func(x, y int) []byte {
			r, g, b := d.pixelRGB(x, y)
			return []byte{r, g, b}
		})
	case opts&rasterdev.ColorsCMYK != 0:
		return d.getBitsConverted(cx, cy, cw, ch, params, 4, func(x, y int) []byte {
			r, g, b := d.pixelRGB(x, y)
			c, m, ye, k := rgbToCMYK(r, g, b)
			return []byte{c, m, ye, k}
		})
	case opts&rasterdev.ColorsGray != 0:
		return d.getBitsConverted(cx, cy, cw, ch, params, 1, func(x, y int) []byte {
			r, g, b := d.pixelRGB(x, y)
			return []byte{byte(rasterdev.Luma(r, g, b))}
		})
	default:
		return rasterdev.ErrRange
	}
}

func rgbToCMYK(r, g, b byte) (c, m, y, k byte) {
	k = 255 - max3(r, g, b)
	if k == 255 {
		return 0, 0, 0, 255
	}
	scale := func(ch byte) byte {
		return byte((255 - int(ch) - int(k)) * 255 / (255 - int(k)))
	}
	return scale(r), scale(g), scale(b), k
}

func max3(a, b, c byte) byte {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func (d *Device) getBitsNative(x, y, w, h int, params *rasterdev.GetBitsParams) error {
	byteWidth := rasterdev.RasterAlign(w*d.Depth, 1)
	outRaster := byteWidth // RasterStandard: unpadded rows
	if params.Options&rasterdev.RasterSpecified != 0 {
		outRaster = params.Raster
	}

	rows := make([][]byte, h)
	for row := 0; row < h; row++ {
		out := make([]byte, outRaster)
		srcOff := x * d.Depth / 8
		if d.Depth%8 == 0 {
			copy(out, d.Rows[y+row][srcOff:srcOff+byteWidth])
		} else {
			srcC := rasterdev.Cursor{Byte: (x * d.Depth) / 8, Bit: (x * d.Depth) % 8}
			var dstC rasterdev.Cursor
			for i := 0; i < w; i++ {
				v, next, err := rasterdev.LoadNext(d.Rows[y+row], srcC, d.Depth)
				if err != nil {
					return err
				}
				srcC = next
				nc, _, err := rasterdev.StoreNext(out, dstC, d.Depth, v, 0)
				if err != nil {
					return err
				}
				dstC = nc
			}
		}
		rows[row] = out
	}
	params.Data = rows
	return nil
}

func (d *Device) getBitsConverted(x, y, w, h int, params *rasterdev.GetBitsParams, components int, pixel func(x, y int) []byte) error {
	alphaFirst := params.Options&rasterdev.AlphaFirst != 0
	alphaLast := params.Options&rasterdev.AlphaLast != 0
	perPixel := components
	if alphaFirst || alphaLast {
		perPixel++
	}

	byteWidth := w * perPixel
	outRaster := byteWidth
	if params.Options&rasterdev.RasterSpecified != 0 {
		outRaster = params.Raster
	}

	rows := make([][]byte, h)
	for row := 0; row < h; row++ {
		out := make([]byte, outRaster)
		off := 0
		for i := 0; i < w; i++ {
			if alphaFirst {
				out[off] = 0xFF
				off++
			}
			copy(out[off:off+components], pixel(x+i, y+row))
			off += components
			if alphaLast {
				out[off] = 0xFF
				off++
			}
		}
		rows[row] = out
	}
	params.Data = rows
	return nil
}
