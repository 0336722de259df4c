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

// Package alpha implements the alpha-buffer scanline device (spec.md
// §4.6, C7): a monobit raster device that accumulates an oversampled
// rendering of a single-color shape across a sliding Y band, then
// compresses each block of scaled rows into an anti-aliased alpha
// strip forwarded to a target device's CopyAlpha.
package alpha

import (
	"fmt"

	"seehuhn.de/go/rasterdev"
)

// SpecOpTarget is implemented by targets that want to observe the
// pre-fill/pre-stroke/cleanup/post-stroke transitions a fill+stroke
// sequence emits before flushing (spec.md §4.6, "dev_spec_op"). A
// target that does not implement it is simply not notified.
type SpecOpTarget interface {
	DevSpecOp(op string) error
}

// Buffer is the oversampled monobit accumulator. Coordinates passed to
// SetBit/OrSpan are in the OVERSAMPLED pixel grid (Width<<XScale wide,
// unboundedly tall): absolute scaled-Y coordinates the caller is
// responsible for presenting in non-decreasing order within a band
// (spec.md §4.6, "callers promise monotone-Y traversal").
type Buffer struct {
	Width         int // device pixel width, unscaled
	XScale        int // log2 horizontal oversampling factor
	YScale        int // log2 vertical oversampling factor
	AlphaBitCount int // log2 alpha levels: 0,1,2 -> 1,2,4 bits
	Target        rasterdev.Device
	Color         rasterdev.ColorIndex

	raster     int // bytes per physical (scaled) row
	bandHeight int // physical rows stored, a multiple of 2^YScale, >= 2*2^YScale
	rows       [][]byte

	mappedY      int // absolute scaled-Y of the first mapped physical row
	mappedHeight int // number of physical rows currently mapped (valid)
	mappedStart  int // physical row index (circular) of mappedY
	haveColor    bool
}

// NewBuffer allocates a band at least minBlocks blocks tall (a block
// is 2^yScale scaled rows); minBlocks below 2 is raised to 2 per spec.md §4.6's
// "stored-band height... minimum 2^(y-scale+1)".
func NewBuffer(width, xScale, yScale, alphaBitCount, minBlocks int, target rasterdev.Device) (*Buffer, error) {
	if width <= 0 || xScale < 0 || yScale < 0 {
		return nil, rasterdev.ErrRange
	}
	if alphaBitCount < 0 || alphaBitCount > 2 {
		return nil, fmt.Errorf("%w: alpha bit count %d out of range 0..2", rasterdev.ErrRange, alphaBitCount)
	}
	if minBlocks < 2 {
		minBlocks = 2
	}
	block := 1 << uint(yScale)
	bandHeight := minBlocks * block
	raster := rasterdev.RasterAlign(width<<uint(xScale), 8)
	rows := make([][]byte, bandHeight)
	for i := range rows {
		rows[i] = make([]byte, raster)
	}
	return &Buffer{
		Width: width, XScale: xScale, YScale: yScale, AlphaBitCount: alphaBitCount,
		Target: target, raster: raster, bandHeight: bandHeight, rows: rows,
	}, nil
}

func (b *Buffer) block() int { return 1 << uint(b.YScale) }

// SetColor changes the paint color, flushing first if the band holds
// data painted with a different color (spec.md §4.6, "on color change
// the buffer is flushed").
func (b *Buffer) SetColor(color rasterdev.ColorIndex) error {
	if b.haveColor && b.Color != color && b.mappedHeight > 0 {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	b.Color = color
	b.haveColor = true
	return nil
}

// DeclareRange tells the buffer the caller is about to paint scaled
// rows [y0,y1). A disjoint range or one starting before the currently
// mapped window forces a flush first (spec.md §4.6 step 1).
func (b *Buffer) DeclareRange(y0, y1 int) error {
	if y1 <= y0 {
		return nil
	}
	if b.mappedHeight == 0 {
		b.mappedY = roundDownBlock(y0, b.block())
		b.mappedStart = 0
		return nil
	}
	mappedEnd := b.mappedY + b.mappedHeight
	if y0 < b.mappedY || y0 > mappedEnd {
		if err := b.Flush(); err != nil {
			return err
		}
		b.mappedY = roundDownBlock(y0, b.block())
		b.mappedStart = 0
	}
	return nil
}

func roundDownBlock(y, block int) int {
	if y >= 0 {
		return (y / block) * block
	}
	return -(((-y) + block - 1) / block) * block
}

// ensureRow grows (sliding and flushing the oldest block as needed)
// the mapped window until absolute scaled row ys is mapped, and
// returns its physical row index.
func (b *Buffer) ensureRow(ys int) (int, error) {
	block := b.block()
	if ys < b.mappedY {
		return 0, fmt.Errorf("%w: alpha buffer write before mapped window", rasterdev.ErrRange)
	}
	for ys >= b.mappedY+b.mappedHeight {
		if b.mappedHeight >= b.bandHeight {
			if err := b.flushOldestBlock(); err != nil {
				return 0, err
			}
		}
		// zero the newly exposed block before use
		base := (b.mappedStart + b.mappedHeight) % b.bandHeight
		for i := 0; i < block; i++ {
			row := b.rows[(base+i)%b.bandHeight]
			for j := range row {
				row[j] = 0
			}
		}
		b.mappedHeight += block
	}
	return (b.mappedStart + (ys - b.mappedY)) % b.bandHeight, nil
}

// SetBit sets one oversampled pixel.
func (b *Buffer) SetBit(xs, ys int) error {
	if xs < 0 || xs >= b.Width<<uint(b.XScale) {
		return nil
	}
	idx, err := b.ensureRow(ys)
	if err != nil {
		return err
	}
	row := b.rows[idx]
	row[xs/8] |= 0x80 >> uint(xs%8)
	return nil
}

// OrSpan sets oversampled pixels [xs0,xs1) of row ys.
func (b *Buffer) OrSpan(xs0, xs1, ys int) error {
	for xs := xs0; xs < xs1; xs++ {
		if err := b.SetBit(xs, ys); err != nil {
			return err
		}
	}
	return nil
}

// flushOldestBlock compresses and forwards the oldest mapped block,
// then slides mappedStart/mappedY past it (spec.md §4.6 step 2: "the
// window slides via mapped_start += block_height mod height — no
// memcpy").
func (b *Buffer) flushOldestBlock() error {
	block := b.block()
	if b.mappedHeight < block {
		return nil
	}
	rows := make([][]byte, block)
	for i := 0; i < block; i++ {
		rows[i] = b.rows[(b.mappedStart+i)%b.bandHeight]
	}
	if err := b.compressAndForward(rows, b.mappedY); err != nil {
		return err
	}
	b.mappedStart = (b.mappedStart + block) % b.bandHeight
	b.mappedY += block
	b.mappedHeight -= block
	return nil
}

// Flush compresses and forwards every fully-mapped block still held,
// then resets the band to empty (spec.md §4.6 step 1: "then resets
// the band").
func (b *Buffer) Flush() error {
	block := b.block()
	for b.mappedHeight >= block {
		if err := b.flushOldestBlock(); err != nil {
			return err
		}
	}
	b.mappedHeight = 0
	b.mappedStart = 0
	return nil
}

// compressAndForward converts one block (2^YScale physical rows) of
// oversampled bits into one compressed alpha row and forwards it via
// Target.CopyAlpha (spec.md §4.6, "Per-block flush").
func (b *Buffer) compressAndForward(blockRows [][]byte, scaledY int) error {
	xLoByte, xHiByte, anySet := boundingByteRange(blockRows)
	if !anySet {
		return nil
	}
	xLo := xLoByte * 8
	xHi := xHiByte * 8
	outLo := xLo >> uint(b.XScale)
	outHi := (xHi + (1<<uint(b.XScale) - 1)) >> uint(b.XScale)
	if outHi > b.Width {
		outHi = b.Width // byte-aligned bounding may overshoot past raster padding
	}
	outW := outHi - outLo
	if outW <= 0 {
		return nil
	}

	alphaBits := 1 << uint(b.AlphaBitCount)
	cellArea := (1 << uint(b.XScale)) * (1 << uint(b.YScale))
	maxLevel := (1 << uint(alphaBits)) - 1

	outRaster := rasterdev.RasterAlign(outW*alphaBits, 8)
	out := make([]byte, outRaster)
	cursor := rasterdev.Cursor{}
	var carry byte
	for ox := 0; ox < outW; ox++ {
		cellX0 := (outLo + ox) << uint(b.XScale)
		sum := 0
		for dy := 0; dy < len(blockRows); dy++ {
			row := blockRows[dy]
			for dx := 0; dx < 1<<uint(b.XScale); dx++ {
				x := cellX0 + dx
				if row[x/8]&(0x80>>uint(x%8)) != 0 {
					sum++
				}
			}
		}
		level := (sum*maxLevel*2 + cellArea) / (2 * cellArea) // round to nearest
		if level > maxLevel {
			level = maxLevel
		}
		next, nextCarry, err := rasterdev.StoreNext(out, cursor, alphaBits, uint64(level), carry)
		if err != nil {
			return err
		}
		cursor, carry = next, nextCarry
	}
	if err := rasterdev.StoreFlush(out, cursor, carry); err != nil {
		return err
	}

	y := scaledY >> uint(b.YScale)
	return b.Target.CopyAlpha(out, 0, outRaster, outLo, y, outW, 1, b.Color, alphaBits)
}

// boundingByteRange finds the smallest byte-aligned [lo,hi) covering
// every set bit across all given rows, per spec.md §4.6's "compute the
// X bounding box of set bits (expanded to byte boundaries) to avoid
// compressing zero tails".
func boundingByteRange(rows [][]byte) (lo, hi int, any bool) {
	n := len(rows[0])
	lo, hi = n, 0
	for _, row := range rows {
		for i, bb := range row {
			if bb == 0 {
				continue
			}
			any = true
			if i < lo {
				lo = i
			}
			if i+1 > hi {
				hi = i + 1
			}
		}
	}
	return lo, hi, any
}
