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

// Command rastercheck exercises every layer of the raster engine
// against one small device and writes the result to a PNG.
package main

import (
	"flag"
	"fmt"
	"os"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/alpha"
	"seehuhn.de/go/rasterdev/bitcache"
	"seehuhn.de/go/rasterdev/clip"
	"seehuhn.de/go/rasterdev/image3"
	"seehuhn.de/go/rasterdev/imageio"
	"seehuhn.de/go/rasterdev/mem"
	"seehuhn.de/go/rasterdev/tile"
	"seehuhn.de/go/rasterdev/trap"

	"image/png"
)

const (
	width  = 32
	height = 32
)

func main() {
	out := flag.String("o", "rastercheck.png", "PNG output path")
	flag.Parse()

	device, err := mem.Open(width, height, 8)
	if err != nil {
		panic(err)
	}
	black := device.MapRGBColor(0, 0, 0)
	white := device.MapRGBColor(0xFF, 0xFF, 0xFF)
	gray := device.MapRGBColor(0x80, 0x80, 0x80)
	if err := device.FillRectangle(0, 0, width, height, black); err != nil {
		panic(err)
	}

	checkerTile(device, gray)
	antialiasedTriangle(device, white)
	maskedSplit(device, white)
	stampRopTile(device)
	trapFilteredBand()
	cachedTileBitmap()

	if err := writePNG(device, *out); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", *out, width, height)
}

// checkerTile clips a fill through a 4x4 checkerboard tile, exercising
// package clip (spec.md §4.5, C6).
func checkerTile(device *mem.Device, color rasterdev.ColorIndex) {
	bitmap := &rasterdev.TileBitmap{
		Data:     []byte{0b10100000, 0b01010000, 0b10100000, 0b01010000},
		Raster:   1, RepWidth: 4, RepHeight: 4, Planes: 1,
	}
	clipper := clip.NewTileClip(device, bitmap, tile.Phase{})
	if err := clipper.FillRectangle(0, 0, width, height/2, color); err != nil {
		panic(err)
	}
}

// antialiasedTriangle rasterizes a right triangle at 4x/4x oversampling
// through an alpha.Buffer, exercising package alpha (spec.md §4.6, C7).
func antialiasedTriangle(device *mem.Device, color rasterdev.ColorIndex) {
	const scale = 2 // 4x oversampling (2 bits)
	buf, err := alpha.NewBuffer(width, scale, scale, 2, 4, device)
	if err != nil {
		panic(err)
	}
	if err := buf.SetColor(color); err != nil {
		panic(err)
	}
	top := height / 2
	rows := height - top
	for row := 0; row < rows<<scale; row++ {
		y := row >> scale
		runWidth := (y * width) / rows
		ys := (top << scale) + row
		if err := buf.OrSpan(0, runWidth<<scale, ys); err != nil {
			panic(err)
		}
	}
	if err := buf.Flush(); err != nil {
		panic(err)
	}
}

// maskedSplit builds a tiny type-3 chunky mask+image source, splits it,
// and paints the image plane through the resulting mask clip,
// exercising package image3 (spec.md §4.8, C9).
func maskedSplit(device *mem.Device, color rasterdev.ColorIndex) {
	const mw, mh = 6, 6
	params := image3.Params{
		Mode: image3.Chunky, ImageWidth: mw, ImageHeight: mh, MaskWidth: mw, MaskHeight: mh,
		ImageComponents: 1, ImageBitsPerComponent: 8, MaskBitsPerComponent: 8,
	}
	if err := params.Validate(); err != nil {
		panic(err)
	}
	mask := image3.NewMaskBitmap(mw, mh)
	splitter := &image3.Splitter{Params: params, Mask: mask}
	for y := 0; y < mh; y++ {
		row := make([]byte, mw*2)
		for x := 0; x < mw; x++ {
			if (x+y)%2 == 0 {
				row[x*2] = 0xFF
			}
			row[x*2+1] = 0xFF // image sample, unused by this demo
		}
		if _, err := splitter.SplitChunkyRow(y, row); err != nil {
			panic(err)
		}
	}
	clipped := mask.MaskClip(device, width-mw, height-mh)
	if err := clipped.FillRectangle(width-mw, height-mh, mw, mh, color); err != nil {
		panic(err)
	}
}

// stampRopTile stamps a 2x2 tile into the bottom-left corner with
// rop=0xF0 (pure tile copy), exercising package rop's device-level
// wiring (spec.md §4.4, C5) through the Device interface's
// StripCopyRop method.
func stampRopTile(device *mem.Device) {
	bitmap := &rasterdev.TileBitmap{
		Data:     []byte{0b10000000, 0b01000000},
		Raster:   1, RepWidth: 2, RepHeight: 2, Planes: 1,
	}
	const stampW, stampH = 8, 8
	if err := device.StripCopyRop(0, height-stampH, stampW, stampH, 0xF0, false, nil, 0, 0, true, bitmap, 0, 0); err != nil {
		panic(err)
	}
}

// trapFilteredBand runs a 1-pixel-radius shadow/trap pass over a small
// synthetic two-component band, exercising package trap (spec.md §4.7,
// C8).
func trapFilteredBand() {
	const w, h, c = 4, 3, 2
	band := [][]byte{
		{255, 0, 255, 0, 255, 0, 255, 0},
		{255, 0, 255, 0, 20, 0, 255, 0},
		{255, 0, 255, 0, 255, 0, 255, 0},
	}
	proc, err := trap.NewChunky(w, h, c, []int{0, 1}, 1, 1, func(y int) ([]byte, error) {
		return band[y], nil
	})
	if err != nil {
		panic(err)
	}
	row, err := proc.ProcessRow(1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("trap row 1 = % X\n", row)
}

// cachedTileBitmap persists a small monobit pattern via bitcache,
// exercising package bitcache (spec.md §6.5).
func cachedTileBitmap() {
	pattern := []byte{0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00}
	blob, err := bitcache.PutBits(pattern, 8, 8, 1, 0)
	if err != nil {
		panic(err)
	}
	fmt.Printf("bitcache chose %s encoding: %d bytes\n", blob.Mode, len(blob.Data))
}

// writePNG encodes device through the imageio bridge (spec.md §4.2's
// color-space bridging allowance).
func writePNG(device *mem.Device, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, imageio.Wrap(device))
}
