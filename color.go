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

package rasterdev


// ColorIndex is an abstract device-native pixel value (spec.md §3).
// For chunky depths <= 32 it is packed big-endian in that many bits;
// for depth > 32 it conceptually spans multiple bytes but is still
// carried as a single 64-bit value here (rasterdev is built with the
// 64-bit ColorIndex configuration; spec.md allows either 32 or 64-bit
// at build time).
type ColorIndex uint64

// NoColor is the sentinel "no color" value denoting a transparent
// source or destination in CopyMono's stencil/reverse-stencil modes.
const NoColor ColorIndex = ^ColorIndex(0)

// Palette is a lookup table of RGB triples for indexed depths
// (1, 2, 4, 8 bits per pixel): 3*K bytes for K distinct indices
// (spec.md §3).
type Palette struct {
	RGB []byte // len == 3*K
}

// Size returns the number of distinct indices K in the palette.
func (p *Palette) Size() int {
	if p == nil {
		return 0
	}
	return len(p.RGB) / 3
}

// At returns the RGB triple for index i.
func (p *Palette) At(i int) (r, g, b byte) {
	o := i * 3
	return p.RGB[o], p.RGB[o+1], p.RGB[o+2]
}

// NewMonoPalette returns the default 2-entry palette for a monobit
// device. When inverted is false, index 0 is white and index 1 is
// black; when true, the polarity is reversed (spec.md §3, "Palette").
func NewMonoPalette(inverted bool) *Palette {
	if inverted {
		return &Palette{RGB: []byte{0, 0, 0, 0xFF, 0xFF, 0xFF}}
	}
	return &Palette{RGB: []byte{0xFF, 0xFF, 0xFF, 0, 0, 0}}
}

// NearestIndex finds the palette entry closest to (r,g,b) under a
// sum-of-absolute-differences metric over the R, G, B components,
// exiting early on an exact match (spec.md §4.2, "Indexed 2/4/8").
func (p *Palette) NearestIndex(r, g, b byte) int {
	best := 0
	bestDist := -1
	for i := 0; i < p.Size(); i++ {
		pr, pg, pb := p.At(i)
		dist := absInt(int(pr)-int(r)) + absInt(int(pg)-int(g)) + absInt(int(pb)-int(b))
		if dist == 0 {
			return i
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

// NearestGrayIndex is the single-component short-circuit used for
// gray-only palettes (spec.md §4.2).
func (p *Palette) NearestGrayIndex(gray byte) int {
	best := 0
	bestDist := -1
	for i := 0; i < p.Size(); i++ {
		pr, _, _ := p.At(i)
		dist := absInt(int(pr) - int(gray))
		if dist == 0 {
			return i
		}
		if bestDist < 0 || dist < bestDist {
			bestDist = dist
			best = i
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// RGB565 packs an 8-bit RGB triple into a 16-bit 5-6-5 ColorIndex,
// big-endian on disk (spec.md §4.2, "16-bit").
func RGB565(r, g, b byte) ColorIndex {
	v := uint64(r>>3)<<11 | uint64(g>>2)<<5 | uint64(b>>3)
	return ColorIndex(v)
}

// UnpackRGB565 is the inverse of RGB565.
func UnpackRGB565(c ColorIndex) (r, g, b byte) {
	v := uint64(c)
	r = byte((v >> 11 & 0x1F) << 3)
	g = byte((v >> 5 & 0x3F) << 2)
	b = byte((v & 0x1F) << 3)
	return
}

// PackCMYK packs a CMYK byte quadruple into a 32-bit ColorIndex
// (spec.md §4.2, "32-bit").
func PackCMYK(c, m, y, k byte) ColorIndex {
	return ColorIndex(uint64(c)<<24 | uint64(m)<<16 | uint64(y)<<8 | uint64(k))
}

// UnpackCMYK is the inverse of PackCMYK.
func UnpackCMYK(v ColorIndex) (c, m, y, k byte) {
	u := uint64(v)
	return byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)
}

// CMYKBitsToRGB implements the 1-bit-per-channel CMYK -> RGB mapping
// spec.md §8 requires for the 16-code round-trip test: each of c,m,y,k
// is 0 or 1. K=1 forces (0,0,0); otherwise each of R,G,B is 255 unless
// its corresponding ink bit (C->R, M->G, Y->B) is set, in which case
// it is 0.
func CMYKBitsToRGB(c, m, y, k int) (r, g, b byte) {
	if k != 0 {
		return 0, 0, 0
	}
	r, g, b = 0xFF, 0xFF, 0xFF
	if c != 0 {
		r = 0
	}
	if m != 0 {
		g = 0
	}
	if y != 0 {
		b = 0
	}
	return
}

// Luma computes the monobit threshold input: a simple unweighted
// average, using integer arithmetic rather than floating point.
func Luma(r, g, b byte) int {
	return (int(r) + int(g) + int(b)) / 3
}

// monoThreshold is the luma value at or above which a monobit device
// maps an RGB input to pixel value 0 when the device is not inverted
// (spec.md §4.2, "Monobit").
const monoThreshold = 128

// MapRGBToMono maps an 8-bit RGB triple to a monobit pixel value (0 or
// 1), honoring the device's inverted polarity flag.
func MapRGBToMono(r, g, b byte, inverted bool) ColorIndex {
	bit := ColorIndex(0)
	if Luma(r, g, b) < monoThreshold {
		bit = 1
	}
	if inverted {
		bit ^= 1
	}
	return bit
}
