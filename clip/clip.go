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

// Package clip implements the mask clipper and tile clipper (spec.md
// §4.5, C6): forwarding devices that restrict every write to the
// pixels where a 1-bit bitmap is set, issuing one call per maximal
// rectangle of mask-1 pixels on the underlying target.
//
// A non-repeating mask (RepWidth/RepHeight spanning the whole device)
// and a small replicated tile are the same addressing problem once
// routed through rasterdev.TileBitmap's mod arithmetic (package tile's
// Sampler already handles both) — so one Clipper type serves both
// named devices from spec.md, distinguished only by the bitmap they
// are constructed with (Design Notes §9, "Forwarding devices": model
// as composition, explicitly implementing every op rather than
// replicating a patched procedure table).
package clip

import (
	"seehuhn.de/go/rasterdev"
	"seehuhn.de/go/rasterdev/tile"
)

// scratchBudgetBytes bounds how many rows of mask bits a single
// forwarding pass materializes at once, echoing spec.md §4.5's "the
// scratch device's height is chosen so that its bitmap plus row
// pointers fit in ≈32 KiB".
const scratchBudgetBytes = 32 * 1024

// Clipper is a forwarding rasterdev.Device that restricts every
// drawing call to the pixels where Bitmap is set, per the phase
// offset. It implements the full rasterdev.Device contract.
type Clipper struct {
	Target rasterdev.Device
	Bitmap *rasterdev.TileBitmap
	Phase  tile.Phase
}

// NewMaskClip wraps target with a one-shot (non-repeating) clip mask:
// bitmap's replication unit is expected to cover the whole clipped
// area, so RowOrigin/At never actually wrap in normal use.
func NewMaskClip(target rasterdev.Device, bitmap *rasterdev.TileBitmap, phase tile.Phase) *Clipper {
	return &Clipper{Target: target, Bitmap: bitmap, Phase: phase}
}

// NewTileClip wraps target with a small bitmap replicated (tiled)
// across the clipped area — the same Clipper, since rasterdev.TileBitmap
// already models the infinite replication (spec.md §4.5, "Tile
// clipper").
func NewTileClip(target rasterdev.Device, bitmap *rasterdev.TileBitmap, phase tile.Phase) *Clipper {
	return &Clipper{Target: target, Bitmap: bitmap, Phase: phase}
}

// SetPhase updates the clip origin without touching Bitmap: an O(1)
// operation that never rebuilds any derived mask state (spec.md §4.5,
// "Phase update... does not rebuild the mask").
func (c *Clipper) SetPhase(p tile.Phase) { c.Phase = p }

func (c *Clipper) Width() int  { return c.Target.Width() }
func (c *Clipper) Height() int { return c.Target.Height() }

func (c *Clipper) MapRGBColor(r, g, b byte) rasterdev.ColorIndex { return c.Target.MapRGBColor(r, g, b) }
func (c *Clipper) MapColorRGB(v rasterdev.ColorIndex) (r, g, b byte) { return c.Target.MapColorRGB(v) }
func (c *Clipper) MapCMYKColor(ci, m, y, k byte) rasterdev.ColorIndex {
	return c.Target.MapCMYKColor(ci, m, y, k)
}

// GetBitsRectangle reads straight through: the clip mask only governs
// writes.
func (c *Clipper) GetBitsRectangle(r rasterdev.Rect, params *rasterdev.GetBitsParams) error {
	return c.Target.GetBitsRectangle(r, params)
}

// sampleRowBits packs the mask bits for columns [x0,x1) of row y into
// an MSB-first byte buffer addressed from 0, so tile.Runs' byteRuns
// fast path (spec.md §4.5, "a precomputed byte-bit-run-length table")
// can enumerate its runs.
func sampleRowBits(bitmap *rasterdev.TileBitmap, phase tile.Phase, y, x0, x1 int) []byte {
	w := x1 - x0
	buf := make([]byte, (w+7)/8)
	s := tile.Sampler{Bitmap: bitmap, Phase: phase}
	rowOrigin := s.RowOrigin(y)
	for i := 0; i < w; i++ {
		if s.RowBit(rowOrigin, y, x0+i) != 0 {
			buf[i/8] |= 0x80 >> uint(i%8)
		}
	}
	return buf
}

func maskRuns(bitmap *rasterdev.TileBitmap, phase tile.Phase, y, x0, x1 int) []tile.Run {
	buf := sampleRowBits(bitmap, phase, y, x0, x1)
	runs := tile.Runs(buf, 0, x1-x0)
	for i := range runs {
		runs[i].Start += x0
		runs[i].End += x0
	}
	return runs
}

// forEachMaskedRect walks rows y..y+h-1 of the destination rectangle,
// merges vertically-adjacent identical mask runs into rectangles
// (spec.md §4.5, "merging vertically-adjacent identical runs into
// rectangles before issuing"), and invokes fn once per maximal
// rectangle with destination coordinates and the row/column offset
// (relative to the original rectangle's origin) that fn should apply
// to its own source data.
func (c *Clipper) forEachMaskedRect(x, y, w, h int, fn func(rx, ry, rw, rh, rowOff, colOff int) error) error {
	flush := func(rects []tile.OpenRect) error {
		for _, o := range rects {
			rx, rw := o.Run.Start, o.Run.End-o.Run.Start
			ry, rh := y+o.Y0, o.Y1-o.Y0
			if err := fn(rx, ry, rw, rh, o.Y0, rx-x); err != nil {
				return err
			}
		}
		return nil
	}

	var open []tile.OpenRect
	for row := 0; row < h; row++ {
		runs := maskRuns(c.Bitmap, c.Phase, y+row, x, x+w)
		closed, stillOpen := tile.MergeRow(open, row, runs)
		if err := flush(closed); err != nil {
			return err
		}
		open = stillOpen
	}
	return flush(open)
}

// FillRectangle treats the mask as the "ink": it builds MSB-first
// mask-bit rows for the rectangle and issues one CopyMono call per
// band of rows that fits scratchBudgetBytes, with color0 transparent,
// color1 the fill color
// (spec.md §4.5, "for fill_rectangle... invoke the target's
// copy_mono").
func (c *Clipper) FillRectangle(x, y, w, h int, color rasterdev.ColorIndex) error {
	raster := (w + 7) / 8
	rowsPerBand := scratchBudgetBytes / raster
	if rowsPerBand < 1 {
		rowsPerBand = 1
	}
	buf := make([]byte, raster*min(rowsPerBand, h))
	for band := 0; band < h; band += rowsPerBand {
		bh := min(rowsPerBand, h-band)
		for row := 0; row < bh; row++ {
			rowBits := sampleRowBits(c.Bitmap, c.Phase, y+band+row, x, x+w)
			copy(buf[row*raster:(row+1)*raster], rowBits)
		}
		if err := c.Target.CopyMono(buf, 0, raster, x, y+band, w, bh, rasterdev.NoColor, color); err != nil {
			return err
		}
	}
	return nil
}

// CopyMono forwards onto the target only within maximal rectangles of
// mask-1 pixels; pixels where the mask is 0 are left untouched, the
// same effect spec.md §4.5 describes as ANDing the tile cell against
// the source bits before forwarding.
func (c *Clipper) CopyMono(src []byte, srcX, srcStride, x, y, w, h int, color0, color1 rasterdev.ColorIndex) error {
	return c.forEachMaskedRect(x, y, w, h, func(rx, ry, rw, rh, rowOff, colOff int) error {
		sub := src[rowOff*srcStride:]
		return c.Target.CopyMono(sub, srcX+colOff, srcStride, rx, ry, rw, rh, color0, color1)
	})
}

// CopyColor forwards onto the target only within maximal rectangles of
// mask-1 pixels (spec.md §4.5, "enumerate maximal horizontal runs of
// mask-1 bits per row... and issue one forwarded call per run").
func (c *Clipper) CopyColor(src []byte, srcX, srcStride, x, y, w, h int) error {
	return c.forEachMaskedRect(x, y, w, h, func(rx, ry, rw, rh, rowOff, colOff int) error {
		sub := src[rowOff*srcStride:]
		return c.Target.CopyColor(sub, srcX+colOff, srcStride, rx, ry, rw, rh)
	})
}

// CopyAlpha forwards per masked run, matching the run-based strategy
// spec.md §4.5 prescribes for every drawing primitive other than
// fill_rectangle.
func (c *Clipper) CopyAlpha(src []byte, srcX, srcStride, x, y, w, h int, color rasterdev.ColorIndex, alphaDepth int) error {
	return c.forEachMaskedRect(x, y, w, h, func(rx, ry, rw, rh, rowOff, colOff int) error {
		sub := src[rowOff*srcStride:]
		return c.Target.CopyAlpha(sub, srcX+colOff, srcStride, rx, ry, rw, rh, color, alphaDepth)
	})
}

// CopyPlanes forwards per masked run, slicing every plane identically.
func (c *Clipper) CopyPlanes(planes [][]byte, srcX, srcStride, x, y, w, h int) error {
	return c.forEachMaskedRect(x, y, w, h, func(rx, ry, rw, rh, rowOff, colOff int) error {
		subPlanes := make([][]byte, len(planes))
		for i, p := range planes {
			subPlanes[i] = p[rowOff*srcStride:]
		}
		return c.Target.CopyPlanes(subPlanes, srcX+colOff, srcStride, rx, ry, rw, rh)
	})
}

// FillRectangleHLColor forwards per masked run; there is no source
// buffer to slice, only the destination rectangle changes per run.
func (c *Clipper) FillRectangleHLColor(x, y, w, h int, devn []uint16) error {
	return c.forEachMaskedRect(x, y, w, h, func(rx, ry, rw, rh, rowOff, colOff int) error {
		return c.Target.FillRectangleHLColor(rx, ry, rw, rh, devn)
	})
}

// StripCopyRop forwards per masked run (spec.md §4.5, "for other
// operations (copy_color, copy_alpha, strip_copy_rop, etc.)..."). The
// source is resliced per run the same way CopyColor/CopyAlpha do; the
// texture's phase stays absolute, since the target sees the same
// (phaseX,phaseY) origin regardless of which run is being forwarded.
func (c *Clipper) StripCopyRop(x, y, w, h int, code byte, hasSrc bool, src []byte, srcX, srcStride int, hasTexture bool, texture *rasterdev.TileBitmap, phaseX, phaseY int) error {
	return c.forEachMaskedRect(x, y, w, h, func(rx, ry, rw, rh, rowOff, colOff int) error {
		var sub []byte
		if hasSrc {
			sub = src[rowOff*srcStride:]
		}
		return c.Target.StripCopyRop(rx, ry, rw, rh, code, hasSrc, sub, srcX+colOff, srcStride, hasTexture, texture, phaseX, phaseY)
	})
}

var _ rasterdev.Device = (*Clipper)(nil)
