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
	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/clip"
	"seehuhn.de/go/rasterdev/tile"
)

// MaskBitmap is the monobit backing store created over the mask's own
// W*H sample grid (spec.md §4.8 step 1: "a mask image device is created
// with a monobit W*H backing, initially all zero"). It satisfies
// MaskDevice directly, and its Data/Raster double as the
// rasterdev.TileBitmap the real destination gets clipped through.
type MaskBitmap struct {
	width, height int
	raster        int
	data          []byte
}

// NewMaskBitmap allocates a zeroed monobit mask plane width x height.
func NewMaskBitmap(width, height int) *MaskBitmap {
	raster := rasterdev.RasterAlign(width, 8)
	return &MaskBitmap{
		width: width, height: height, raster: raster,
		data: make([]byte, raster*height),
	}
}

func (m *MaskBitmap) SetSample(x, y int, bit byte) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	idx := y*m.raster + x/8
	mask := byte(0x80 >> uint(x%8))
	if bit != 0 {
		m.data[idx] |= mask
	} else {
		m.data[idx] &^= mask
	}
}

func (m *MaskBitmap) Rows() [][]byte {
	rows := make([][]byte, m.height)
	for y := range rows {
		rows[y] = m.data[y*m.raster : (y+1)*m.raster]
	}
	return rows
}

func (m *MaskBitmap) Raster() int { return m.raster }

// AsTileBitmap exposes the mask plane as a one-shot (non-repeating)
// rasterdev.TileBitmap covering the whole mask rectangle, the form
// clip.Clipper consumes (spec.md §4.5: a "one-shot full mask" is just a
// tile whose repetition unit equals the full bitmap).
func (m *MaskBitmap) AsTileBitmap() *rasterdev.TileBitmap {
	return &rasterdev.TileBitmap{
		Data: m.data, Raster: m.raster,
		RepWidth: m.width, RepHeight: m.height,
		Planes: 1,
	}
}

// MaskClip builds a clip.Clipper that layers this mask plane over the
// real destination device (spec.md §4.8 step 3: "the real destination
// is wrapped in a mask clipper built from the rendered mask plane").
// offsetX/offsetY place the mask's origin relative to the destination,
// matching the image's own placement; they become the clipper's
// initial tile phase.
func (m *MaskBitmap) MaskClip(target rasterdev.Device, offsetX, offsetY int) *clip.Clipper {
	// tile.Sampler.At(dx,dy) reads Bitmap.Bit(dx+Phase.X, dy+Phase.Y), so
	// to have destination pixel (offsetX,offsetY) read mask pixel (0,0)
	// the phase must be the negated offset.
	return clip.NewMaskClip(target, m.AsTileBitmap(), tile.Phase{X: -offsetX, Y: -offsetY})
}
