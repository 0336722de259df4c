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

package tile

// runInfo records, for one possible byte value, the length of its
// leading run of set bits (from the MSB) and its trailing run of set
// bits (to the LSB), plus whether the whole byte is one run of set
// bits (AllSet, true only for 0xFF). This is gdevdrop.c's run-length
// enumeration table, kept here once behind Runs, which the clipping
// devices call, instead of being duplicated per caller (spec.md §C
// item 7).
type runInfo struct {
	Leading, Trailing int
	AllSet            bool
}

var byteRuns [256]runInfo

func init() {
	for b := 0; b < 256; b++ {
		lead := 0
		for bit := 7; bit >= 0 && (b>>uint(bit))&1 == 1; bit-- {
			lead++
		}
		trail := 0
		for bit := 0; bit < 8 && (b>>uint(bit))&1 == 1; bit++ {
			trail++
		}
		byteRuns[b] = runInfo{Leading: lead, Trailing: trail, AllSet: b == 0xFF}
	}
}

// Run is a maximal horizontal run of set bits within one row,
// expressed as [Start, End) pixel columns.
type Run struct {
	Start, End int
}

// Runs enumerates the maximal runs of 1-bits in one MSB-first packed
// row, restricted to columns [x0, x1). It walks whole bytes using the
// byteRuns table wherever a run spans a byte boundary, only inspecting
// individual bits at the two edges of the requested range and at
// run/non-run transitions within a byte.
func Runs(row []byte, x0, x1 int) []Run {
	var runs []Run
	inRun := false
	var start int
	flush := func(end int) {
		if inRun {
			runs = append(runs, Run{Start: start, End: end})
			inRun = false
		}
	}
	for x := x0; x < x1; {
		byteIdx := x / 8
		if x%8 == 0 && x+8 <= x1 {
			info := byteRuns[row[byteIdx]]
			if info.AllSet {
				if !inRun {
					inRun = true
					start = x
				}
				x += 8
				continue
			}
			if info.Leading == 0 && info.Trailing == 0 && row[byteIdx] == 0 {
				flush(x)
				x += 8
				continue
			}
		}
		bit := (row[x/8] >> uint(7-x%8)) & 1
		if bit == 1 {
			if !inRun {
				inRun = true
				start = x
			}
		} else {
			flush(x)
		}
		x++
	}
	flush(x1)
	return runs
}

// OpenRect is an in-progress rectangle of merged runs: MergeRow
// extends one in place when a new row has an identical, vertically
// adjacent run rather than starting a new one, per spec.md §4.5 ("merging vertically-adjacent identical runs
// into rectangles before issuing").
type OpenRect struct {
	Run      Run
	Y0, Y1   int // [Y0, Y1) rows covered so far
}

// MergeRow advances a set of open rectangles by one row's runs,
// returning the rectangles that did NOT continue (to be flushed by the
// caller) and the updated open set.
func MergeRow(open []OpenRect, y int, runs []Run) (closed, stillOpen []OpenRect) {
	matched := make([]bool, len(runs))
	for _, o := range open {
		extended := false
		for i, r := range runs {
			if !matched[i] && r == o.Run && o.Y1 == y {
				stillOpen = append(stillOpen, OpenRect{Run: r, Y0: o.Y0, Y1: y + 1})
				matched[i] = true
				extended = true
				break
			}
		}
		if !extended {
			closed = append(closed, o)
		}
	}
	for i, r := range runs {
		if !matched[i] {
			stillOpen = append(stillOpen, OpenRect{Run: r, Y0: y, Y1: y + 1})
		}
	}
	return closed, stillOpen
}
