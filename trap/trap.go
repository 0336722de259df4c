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

// Package trap implements the pre-press trap processor (spec.md §4.7,
// C8): given a source that yields raw scanlines, it produces trapped
// output scanlines one row at a time, sharing one decision core
// between a chunky (component-interleaved) and a planar (one plane
// per component) variant.
package trap

// shadowTest decides whether the NEXT component in comp_order should
// be pulled toward this component's local maximum at a pixel: the
// window's local min drops sharply below the window's local max
// (spec.md §4.7; the literal worked example in spec.md §8 resolves
// the narrative "min_v < 0.8*v" using v = the component's own local
// window maximum, not its raw sample — 5*minV < 4*maxV is the integer
// form of minV < 0.8*maxV).
func shadowTest(minV, maxV int) bool {
	return 5*minV < 4*maxV && minV < maxV-16
}

// trapTest decides whether THIS component's raw value at a pixel
// should be pulled up toward the incoming process value, because an
// earlier component in comp_order shadowed it here.
func trapTest(process, v, maxV int) bool {
	return process > v && 5*v < 4*maxV
}

// clipRange clips [v-max, v+max] to [0, limit-1].
func clipRange(v, max, limit int) (lo, hi int) {
	lo, hi = v-max, v+max
	if lo < 0 {
		lo = 0
	}
	if hi > limit-1 {
		hi = limit - 1
	}
	return lo, hi
}

// windowMinMax scans the rectangle [x0,x1] x [y0,y1] of one
// component's samples via get(y,x), returning the combined min/max.
func windowMinMax(get func(y, x int) int, x0, x1, y0, y1 int) (minV, maxV int) {
	minV, maxV = 255, 0
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v := get(y, x)
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}
	return minV, maxV
}

// processComponent runs one comp_order entry over one output row.
// get(y,x) reads this component's raw sample at absolute row y,
// column x; rowGet(x) is the same for the CURRENT output row (a
// specialization get callers already have handy). process carries
// shadow state across components for the same pixel and is mutated in
// place; the caller zeroes it before comp_order index 0 of each row.
func processComponent(w, maxX, y0, y1 int, get func(y, x int) int, rowGet func(x int) int, first, last bool, process []int) []byte {
	out := make([]byte, w)
	needWindow := !first || !last
	for x := 0; x < w; x++ {
		v := rowGet(x)
		var minV, maxV int
		if needWindow {
			x0, x1 := clipRange(x, maxX, w)
			minV, maxV = windowMinMax(get, x0, x1, y0, y1)
		}
		outV := v
		if !first {
			if trapTest(process[x], v, maxV) {
				outV = process[x]
				if maxV < outV {
					outV = maxV
				}
			}
		}
		if !last {
			if shadowTest(minV, maxV) {
				if maxV > process[x] {
					process[x] = maxV
				}
			}
		}
		out[x] = byte(outV)
	}
	return out
}
