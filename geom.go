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

import "seehuhn.de/go/geom/rect"

// IntRect returns the integer-aligned pixel rectangle [X,X+W) x
// [Y,Y+H) described by r. Device rectangles throughout this package
// are communicated as rect.Rect and converted to integers at the
// point of use.
func IntRect(r rect.Rect) (x, y, w, h int) {
	x = int(r.LLx)
	y = int(r.LLy)
	w = int(r.URx) - x
	h = int(r.URy) - y
	return
}

// Rect builds a rect.Rect from integer pixel coordinates.
func Rect(x, y, w, h int) rect.Rect {
	return rect.Rect{
		LLx: float64(x), LLy: float64(y),
		URx: float64(x + w), URy: float64(y + h),
	}
}

// ClipRect intersects (x,y,w,h) with the device bounds (0,0,devW,devH)
// and reports whether any area remains. A negative w or h is a Range
// error (err == ErrRange) unless both are negative, in which case the
// result is the documented no-op: ok is false and err is nil (spec.md
// §4.2 "Failure", §7 "Range error... negative width/height (only when
// exactly one is negative)").
func ClipRect(x, y, w, h, devW, devH int) (cx, cy, cw, ch int, ok bool, err error) {
	if w < 0 && h < 0 {
		return 0, 0, 0, 0, false, nil
	}
	if w < 0 || h < 0 {
		return 0, 0, 0, 0, false, errRangef("negative dimension w=%d h=%d", w, h)
	}
	x0, y0 := x, y
	x1, y1 := x+w, y+h
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > devW {
		x1 = devW
	}
	if y1 > devH {
		y1 = devH
	}
	if x0 >= x1 || y0 >= y1 {
		return 0, 0, 0, 0, false, nil
	}
	return x0, y0, x1 - x0, y1 - y0, true, nil
}
