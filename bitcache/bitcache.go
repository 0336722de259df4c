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

// Package bitcache implements the put_bits tile-cache emitter (spec.md
// §6.5): an external command-list writer may ask to persist a
// rendered tile bitmap, and this package picks whichever of {none,
// constant, run-length, group-4-facsimile} compresses it smallest,
// rejecting the result with rasterdev.ErrLimit if even the best
// encoding exceeds a caller-supplied cap.
package bitcache

import (
	"fmt"

	"seehuhn.de/go/rasterdev"
)

// Mode identifies which of the four put_bits encodings produced a
// Blob's Data.
type Mode byte

const (
	None Mode = iota
	Constant
	RunLength
	Group4
)

func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Constant:
		return "constant"
	case RunLength:
		return "run-length"
	case Group4:
		return "group-4-facsimile"
	default:
		return "unknown"
	}
}

// Blob is one put_bits result: the chosen encoding and its bytes, plus
// the bitmap dimensions needed to reconstruct it.
type Blob struct {
	Mode          Mode
	Data          []byte
	WidthBits     int
	Height        int
	SourceRaster  int
}

// PutBits compresses a monobit bitmap (one row every raster bytes,
// widthBits significant bits per row, MSB first) choosing whichever of
// the four encodings is smallest, per spec.md §6.5: "the emitter
// chooses whichever is smallest and fits". maxBytes <= 0 means no cap.
// On success with every candidate encoding oversized, PutBits returns
// rasterdev.ErrLimit (spec.md §7, "Limit error").
func PutBits(pixelData []byte, widthBits, height, raster int, maxBytes int) (*Blob, error) {
	if widthBits <= 0 || height <= 0 || raster <= 0 {
		return nil, fmt.Errorf("%w: non-positive bitmap dimensions", rasterdev.ErrRange)
	}
	if len(pixelData) < raster*height {
		return nil, fmt.Errorf("%w: pixel data shorter than raster*height", rasterdev.ErrRange)
	}

	candidates := make([]*Blob, 0, 4)
	candidates = append(candidates, &Blob{Mode: None, Data: pixelData[:raster*height], WidthBits: widthBits, Height: height, SourceRaster: raster})
	if data, ok := encodeConstant(pixelData, widthBits, height, raster); ok {
		candidates = append(candidates, &Blob{Mode: Constant, Data: data, WidthBits: widthBits, Height: height, SourceRaster: raster})
	}
	candidates = append(candidates, &Blob{Mode: RunLength, Data: encodeRLE(pixelData, widthBits, height, raster), WidthBits: widthBits, Height: height, SourceRaster: raster})
	if data, err := encodeG4(pixelData, widthBits, height, raster); err == nil {
		candidates = append(candidates, &Blob{Mode: Group4, Data: data, WidthBits: widthBits, Height: height, SourceRaster: raster})
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.Data) < len(best.Data) {
			best = c
		}
	}
	if maxBytes > 0 && len(best.Data) > maxBytes {
		return nil, fmt.Errorf("%w: smallest encoding (%s, %d bytes) exceeds cap %d", rasterdev.ErrLimit, best.Mode, len(best.Data), maxBytes)
	}
	return best, nil
}

// encodeConstant reports whether every pixel in the bitmap's
// significant bit range has the same value, returning that single bit
// (0 or 1) packed as a one-byte payload if so.
func encodeConstant(pixelData []byte, widthBits, height, raster int) ([]byte, bool) {
	first := bitAt(pixelData, raster, 0, 0)
	for y := 0; y < height; y++ {
		for x := 0; x < widthBits; x++ {
			if bitAt(pixelData, raster, x, y) != first {
				return nil, false
			}
		}
	}
	return []byte{first}, true
}

func bitAt(data []byte, raster, x, y int) byte {
	b := data[y*raster+x/8]
	return (b >> uint(7-x%8)) & 1
}
