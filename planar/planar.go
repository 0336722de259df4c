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

// Package planar implements the planar raster device (spec.md §4.3,
// C4): a device wrapping N chunky plane devices that share a height,
// where each drawing operation iterates over the planes, rebasing the
// caller's color into each plane's shift/mask.
//
// The original (gdevmpla.c) mutates a single shared row-pointer table
// in place to "rebase" the device onto each plane in turn. Per Design
// Notes §9 ("Global and implicit state"), we instead give each plane
// its own independent *mem.Device and loop over an explicit slice —
// there is no shared mutable row-pointer table to get out of sync.
package planar

import (
	"fmt"

	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/mem"
)

// Device is a planar raster device: N component planes, each its own
// chunky mem.Device, sharing width and height.
type Device struct {
	W, H   int
	Planes []*mem.Device
	Descs  []rasterdev.PlaneDescriptor

	// accel24to888 is true when this device is configured as exactly
	// three 8-bit planes with shifts 16, 8 and 0 (the RGB order),
	// enabling the dedicated 24->8+8+8 CopyColor accelerator
	// (spec.md §4.3).
	accel24to888 bool

	// accel4to1111 is true when this device is four 1-bit planes,
	// enabling the CMYK nibble-expansion CopyColor accelerator.
	accel4to1111 bool
}

// totalDepth returns the packed pixel width, the highest Shift+Depth
// over the configured planes; Open validates the caller's shift/mask
// split against it per spec.md §3's invariant (sum(Dᵢ) <= total depth).
func totalDepth(descs []rasterdev.PlaneDescriptor) int {
	max := 0
	for _, d := range descs {
		if top := d.Shift + d.Depth; top > max {
			max = top
		}
	}
	return max
}

// Open allocates a planar device with one plane per descriptor.
func Open(width, height int, descs []rasterdev.PlaneDescriptor) (*Device, error) {
	if err := rasterdev.ValidatePlanes(descs, totalDepth(descs)); err != nil {
		return nil, err
	}
	planes := make([]*mem.Device, len(descs))
	for i, desc := range descs {
		pd, err := mem.Open(width, height, desc.Depth)
		if err != nil {
			return nil, fmt.Errorf("plane %d: %w", i, err)
		}
		planes[i] = pd
	}
	d := &Device{W: width, H: height, Planes: planes, Descs: descs}
	d.accel24to888 = is24to888(descs)
	d.accel4to1111 = is4to1111(descs)
	return d, nil
}

func is24to888(descs []rasterdev.PlaneDescriptor) bool {
	if len(descs) != 3 {
		return false
	}
	want := []int{16, 8, 0}
	for i, d := range descs {
		if d.Depth != 8 || d.Shift != want[i] {
			return false
		}
	}
	return true
}

func is4to1111(descs []rasterdev.PlaneDescriptor) bool {
	if len(descs) != 4 {
		return false
	}
	for _, d := range descs {
		if d.Depth != 1 {
			return false
		}
	}
	return true
}

func (d *Device) Width() int  { return d.W }
func (d *Device) Height() int { return d.H }

// componentOf extracts plane i's bits out of a logical color index.
func (d *Device) componentOf(color rasterdev.ColorIndex, i int) rasterdev.ColorIndex {
	desc := d.Descs[i]
	mask := rasterdev.ColorIndex(1<<uint(desc.Depth) - 1)
	return (color >> uint(desc.Shift)) & mask
}
