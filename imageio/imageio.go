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

// Package imageio bridges any rasterdev.Device to the standard
// image/draw ecosystem: Wrap exposes a device as a draw.Image so
// callers can draw.Draw PNGs, gradients, or any other image.Image
// straight onto a device, reusing the device's own MapRGBColor /
// MapCMYKColor in Set and GetBitsRectangle's RGB conversion in At for
// color-space bridging (spec.md §4.2 explicitly allows
// this, even though full color-space management is a non-goal).
package imageio

import (
	"image"
	"image/color"

	"seehuhn.de/go/rasterdev"
)

// Image adapts a rasterdev.Device to image.Image and draw.Image.
// With CMYK set, Set maps through MapCMYKColor instead of MapRGBColor
// and At converts the read-back RGB with color.RGBToCMYK (spec.md
// §4.2, "CMYK devices use color.CMYK").
type Image struct {
	Device rasterdev.Device
	CMYK   bool
}

// Wrap returns an *Image exposing device through the image/draw APIs.
func Wrap(device rasterdev.Device) *Image {
	return &Image{Device: device}
}

// ColorModel reports color.RGBAModel, or color.CMYKModel when CMYK is
// set.
func (im *Image) ColorModel() color.Model {
	if im.CMYK {
		return color.CMYKModel
	}
	return color.RGBAModel
}

// Bounds returns the device's pixel rectangle, origin at (0,0).
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.Device.Width(), im.Device.Height())
}

// At reads one pixel by asking GetBitsRectangle to convert it to 8-bit
// RGB directly, sidestepping the device's native packing entirely
// (spec.md §4.2's explicit allowance for color-space bridging).
func (im *Image) At(x, y int) color.Color {
	if x < 0 || y < 0 || x >= im.Device.Width() || y >= im.Device.Height() {
		return color.RGBA{}
	}
	params := &rasterdev.GetBitsParams{
		Options: rasterdev.ReturnCopy | rasterdev.RasterStandard | rasterdev.Offset0 |
			rasterdev.PackingChunky | rasterdev.ColorsRGB | rasterdev.AlignStandard,
	}
	if err := im.Device.GetBitsRectangle(rasterdev.Rect{LLx: float64(x), LLy: float64(y), URx: float64(x + 1), URy: float64(y + 1)}, params); err != nil {
		return color.RGBA{}
	}
	row := params.Data[0]
	r, g, b := row[0], row[1], row[2]
	if im.CMYK {
		c, m, ye, k := rgbToCMYK(r, g, b)
		return color.CMYK{C: c, M: m, Y: ye, K: k}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Set writes one pixel by mapping its 8-bit RGB through the device's
// MapRGBColor (or MapCMYKColor) and issuing a 1x1 FillRectangle.
func (im *Image) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= im.Device.Width() || y >= im.Device.Height() {
		return
	}
	var native rasterdev.ColorIndex
	if im.CMYK {
		cc := color.CMYKModel.Convert(c).(color.CMYK)
		native = im.Device.MapCMYKColor(cc.C, cc.M, cc.Y, cc.K)
	} else {
		rc := color.RGBAModel.Convert(c).(color.RGBA)
		native = im.Device.MapRGBColor(rc.R, rc.G, rc.B)
	}
	_ = im.Device.FillRectangle(x, y, 1, 1, native)
}

// rgbToCMYK is the naive subtractive conversion color.CMYKModel itself
// uses, exposed here so callers reading CMYK devices via At don't
// round-trip through color.Color twice.
func rgbToCMYK(r, g, b byte) (c, m, y, k byte) {
	return color.RGBToCMYK(r, g, b)
}
