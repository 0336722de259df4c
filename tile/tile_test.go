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

import (
	"reflect"
	"testing"

	"seehuhn.de/go/rasterdev"
)

func TestRunsWholeByteAllSet(t *testing.T) {
	row := []byte{0xFF, 0x0F, 0x00}
	got := Runs(row, 0, 24)
	want := []Run{{Start: 0, End: 8}, {Start: 12, End: 16}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunsMultiple(t *testing.T) {
	row := []byte{0b10110010}
	got := Runs(row, 0, 8)
	want := []Run{{Start: 0, End: 1}, {Start: 2, End: 4}, {Start: 6, End: 7}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSamplerRowOriginRepShift(t *testing.T) {
	bm := &rasterdev.TileBitmap{
		Data:      []byte{0xFF, 0x00},
		Raster:    1,
		RepWidth:  8,
		RepHeight: 1,
		RepShift:  3,
	}
	s := Sampler{Bitmap: bm, Phase: Phase{X: 0, Y: 0}}
	if got := s.RowOrigin(0); got != 0 {
		t.Errorf("row 0 origin = %d, want 0", got)
	}
	if got := s.RowOrigin(1); got != 3 {
		t.Errorf("row 1 origin = %d, want 3", got)
	}
	if got := s.RowOrigin(2); got != 6 {
		t.Errorf("row 2 origin = %d, want 6", got)
	}
}

func TestMergeRowExtendsAndCloses(t *testing.T) {
	var open []OpenRect
	_, open = MergeRow(open, 0, []Run{{Start: 0, End: 4}})
	_, open = MergeRow(open, 1, []Run{{Start: 0, End: 4}})
	closed, open := MergeRow(open, 2, []Run{{Start: 1, End: 4}})
	if len(closed) != 1 || closed[0].Run != (Run{Start: 0, End: 4}) || closed[0].Y0 != 0 || closed[0].Y1 != 2 {
		t.Errorf("expected the 2-row rect to close, got %v", closed)
	}
	if len(open) != 1 || open[0].Y0 != 2 {
		t.Errorf("expected a fresh open rect starting at row 2, got %v", open)
	}
}
