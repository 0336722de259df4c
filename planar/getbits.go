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

// GetBitsRectangle supports two packings (spec.md §6.2 as extended to
// multi-plane devices): PACKING_PLANAR, which returns each selected
// plane's own rows back to back (plane 0's rows, then plane 1's, and
// so on; SELECT_PLANES narrows which planes are included), and
// PACKING_CHUNKY, which recomposes a single logical pixel per sample
// from all planes and proceeds exactly like mem.Device.GetBitsRectangle
// from there.
func (d *Device) GetBitsRectangle(r rasterdev.Rect, params *rasterdev.GetBitsParams) error {
	opts := params.Options
	if opts&rasterdev.PackingPlanar != 0 {
		return d.getBitsPlanar(r, params)
	}
	return d.getBitsChunky(r, params)
}

func (d *Device) getBitsPlanar(r rasterdev.Rect, params *rasterdev.GetBitsParams) error {
	var rows [][]byte
	for i, p := range d.Planes {
		if params.Options&rasterdev.SelectPlanes != 0 {
			if i >= len(params.Planes) || !params.Planes[i] {
				continue
			}
		}
		sub := &rasterdev.GetBitsParams{
			Options: (params.Options &^ rasterdev.PackingPlanar &^ rasterdev.SelectPlanes) | rasterdev.PackingChunky,
			Raster:  params.Raster,
		}
		if err := p.GetBitsRectangle(r, sub); err != nil {
			return err
		}
		rows = append(rows, sub.Data...)
	}
	params.Data = rows
	return nil
}

func (d *Device) getBitsChunky(r rasterdev.Rect, params *rasterdev.GetBitsParams) error {
	x, y, w, h := rasterdev.IntRect(r)
	cx, cy, cw, ch, ok, err := rasterdev.ClipRect(x, y, w, h, d.W, d.H)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	opts := params.Options
	switch {
	case opts&rasterdev.ColorsNative != 0:
		depth := totalDepth(d.Descs)
		byteWidth := rasterdev.RasterAlign(cw*depth, 8)
		rows := make([][]byte, ch)
		for row := 0; row < ch; row++ {
			out := make([]byte, byteWidth)
			var cur rasterdev.Cursor
			for i := 0; i < cw; i++ {
				color := d.pixelColor(cx+i, cy+row)
				nc, _, err := rasterdev.StoreNext(out, cur, depth, uint64(color), 0)
				if err != nil {
					return err
				}
				cur = nc
			}
			rows[row] = out
		}
		params.Data = rows
		return nil
	case opts&rasterdev.ColorsRGB != 0:
		return d.getBitsRGBish(cx, cy, cw, ch, params, 3, func(x, y int) []byte {
			r, g, b := d.MapColorRGB(d.pixelColor(x, y))
			return []byte{r, g, b}
		})
	case opts&rasterdev.ColorsGray != 0:
		return d.getBitsRGBish(cx, cy, cw, ch, params, 1, func(x, y int) []byte {
			r, g, b := d.MapColorRGB(d.pixelColor(x, y))
			return []byte{byte(rasterdev.Luma(r, g, b))}
		})
	case opts&rasterdev.ColorsCMYK != 0:
		return d.getBitsRGBish(cx, cy, cw, ch, params, 4, func(x, y int) []byte {
			if len(d.Planes) == 4 {
				return []byte{
					byte(d.componentOf(d.pixelColor(x, y), 0)),
					byte(d.componentOf(d.pixelColor(x, y), 1)),
					byte(d.componentOf(d.pixelColor(x, y), 2)),
					byte(d.componentOf(d.pixelColor(x, y), 3)),
				}
			}
			r, g, b := d.MapColorRGB(d.pixelColor(x, y))
			c, m, ye, k := rgbToCMYKLocal(r, g, b)
			return []byte{c, m, ye, k}
		})
	default:
		return rasterdev.ErrRange
	}
}

func rgbToCMYKLocal(r, g, b byte) (c, m, y, k byte) {
	max := r
	if g > max {
		max = g
	}
	if b > max {
		max = b
	}
	k = 255 - max
	if k == 255 {
		return 0, 0, 0, 255
	}
	scale := func(ch byte) byte {
		return byte((255 - int(ch) - int(k)) * 255 / (255 - int(k)))
	}
	return scale(r), scale(g), scale(b), k
}

func (d *Device) getBitsRGBish(x, y, w, h int, params *rasterdev.GetBitsParams, components int, pixel func(x, y int) []byte) error {
	byteWidth := w * components
	out := make([][]byte, h)
	for row := 0; row < h; row++ {
		line := make([]byte, byteWidth)
		off := 0
		for i := 0; i < w; i++ {
			copy(line[off:off+components], pixel(x+i, y+row))
			off += components
		}
		out[row] = line
	}
	params.Data = out
	return nil
}

// pixelColor reads one pixel's logical color index by combining every
// plane's own sample at (x,y).
func (d *Device) pixelColor(x, y int) rasterdev.ColorIndex {
	var out rasterdev.ColorIndex
	for i, p := range d.Planes {
		v := p.SamplePixel(x, y)
		out |= rasterdev.ColorIndex(v) << uint(d.Descs[i].Shift)
	}
	return out
}
