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

// Package rasterdev implements the core of an in-memory raster
// graphics engine: depth- and layout-specialized pixel devices, a
// RasterOp engine, tile/mask clipping, an oversampled alpha buffer,
// and a pre-press trap processor. See the subpackages mem, planar,
// rop, clip, alpha, trap and image3 for each subsystem.
//
// Polymorphism across pixel depths is modeled as the Device interface
// below, implemented by one type per layout (mem for chunky, planar for
// planar) that switches on depth internally (Design Notes §9), rather
// than as a per-instance table of function pointers.
package rasterdev

// Device is the drawing contract every raster device variant
// implements: chunky devices of every supported depth (package mem),
// planar devices (package planar), and the forwarding clip devices
// (mask clipper, tile clipper) that translate calls onto an underlying
// target (spec.md §4.2-§4.5). The alpha buffer is not a Device; it
// forwards into one.
type Device interface {
	// Width and Height return the device's pixel dimensions.
	Width() int
	Height() int

	// FillRectangle sets every pixel in the clipped rectangle to color.
	FillRectangle(x, y, w, h int, color ColorIndex) error

	// CopyMono reads a 1-bit source (MSB-first, srcStride bytes per
	// row) and paints color0 where the source bit is 0, color1 where
	// it is 1. NoColor in either slot leaves that polarity unchanged.
	CopyMono(src []byte, srcX, srcStride, x, y, w, h int, color0, color1 ColorIndex) error

	// CopyColor blits source pixels of the device's own depth.
	CopyColor(src []byte, srcX, srcStride, x, y, w, h int) error

	// CopyAlpha composites color over the destination using an
	// alphaDepth-bit alpha sample per source pixel.
	CopyAlpha(src []byte, srcX, srcStride, x, y, w, h int, color ColorIndex, alphaDepth int) error

	// CopyPlanes blits a planar source (one byte slice per plane, each
	// with srcStride bytes per row) onto the device.
	CopyPlanes(planes [][]byte, srcX, srcStride, x, y, w, h int) error

	// GetBitsRectangle is the sole way to read back from the device.
	GetBitsRectangle(r Rect, params *GetBitsParams) error

	// MapRGBColor, MapColorRGB and MapCMYKColor bridge between device-
	// native pixel values and 8-bit component colors.
	MapRGBColor(r, g, b byte) ColorIndex
	MapColorRGB(c ColorIndex) (r, g, b byte)
	MapCMYKColor(c, m, y, k byte) ColorIndex

	// FillRectangleHLColor is the separation-aware fill: devn carries
	// one high-resolution value per device component.
	FillRectangleHLColor(x, y, w, h int, devn []uint16) error

	// StripCopyRop combines the destination with an optional source and
	// an optional tile texture under an 8-bit Boolean rop code (spec.md
	// §4.4, C5): new destination is f(D,S,T), code's bit i giving
	// f for input index (T_i<<2|S_i<<1|D_i). code is a rop.Code value
	// carried as a plain byte here, and texture a *TileBitmap sampled at
	// (dx+phaseX, dy+phaseY), so that this package's Device interface
	// doesn't need to import the rop/tile subpackages (which themselves
	// import this package). hasSrc/hasTexture false treats that operand
	// as the constant 0 byte, matching package rop's sanitization
	// convention.
	StripCopyRop(x, y, w, h int, code byte, hasSrc bool, src []byte, srcX, srcStride int, hasTexture bool, texture *TileBitmap, phaseX, phaseY int) error
}
