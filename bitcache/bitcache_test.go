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

package bitcache

import (
	"bytes"
	"io"
	"testing"

	"golang.org/x/image/ccitt"
)

// TestPutBitsPicksConstantForBlankTiles checks an all-zero tile
// compresses to the 1-byte constant encoding (spec.md §6.5, "the
// emitter chooses whichever is smallest and fits").
func TestPutBitsPicksConstantForBlankTiles(t *testing.T) {
	data := make([]byte, 8*4)
	blob, err := PutBits(data, 64, 4, 8, 0)
	if err != nil {
		t.Fatalf("PutBits: %v", err)
	}
	if blob.Mode != Constant {
		t.Fatalf("mode = %v, want Constant", blob.Mode)
	}
	if len(blob.Data) != 1 || blob.Data[0] != 0 {
		t.Errorf("constant payload = % X, want a single zero byte", blob.Data)
	}
}

// TestPutBitsRespectsCap checks a cap too small for every candidate
// encoding yields ErrLimit (spec.md §7, "Limit error").
func TestPutBitsRespectsCap(t *testing.T) {
	data := make([]byte, 8*4)
	for i := range data {
		data[i] = byte(i*37 + 11) // incompressible noise
	}
	_, err := PutBits(data, 64, 4, 8, 1)
	if err == nil {
		t.Fatal("expected an error when every encoding exceeds the cap")
	}
}

// TestRLERoundTrips exercises the PackBits-style codec directly on a
// row with both literal and repeat runs.
func TestRLERoundTrips(t *testing.T) {
	raster := 8
	height := 3
	data := make([]byte, raster*height)
	// row 0: all the same byte (a long repeat run)
	for i := 0; i < raster; i++ {
		data[i] = 0x55
	}
	// row 1: distinct bytes 0..7 (forces a literal run)
	for i := 0; i < raster; i++ {
		data[raster+i] = byte(i)
	}
	// row 2: mixed
	copy(data[2*raster:], []byte{1, 1, 1, 2, 3, 3, 4, 5})

	encoded := encodeRLE(data, raster*8, height, raster)
	decoded := decodeRLE(encoded, height, raster)
	if !bytes.Equal(decoded, data) {
		t.Errorf("decodeRLE(encodeRLE(x)) != x\ngot:  % X\nwant: % X", decoded, data)
	}
}

// TestGroup4RoundTripsThroughStandardDecoder checks our G4 encoder's
// output decodes correctly via golang.org/x/image/ccitt's Group4
// reader, the "encode then verify via the standard decoder" pattern
// used in place of trusting a hand-rolled decoder (spec.md §6.5).
func TestGroup4RoundTripsThroughStandardDecoder(t *testing.T) {
	width, height := 16, 4
	raster := width / 8
	data := []byte{
		0xFF, 0x00, // row 0: left half black, right half white
		0x0F, 0xF0, // row 1: inverse-ish pattern
		0x00, 0x00, // row 2: all white
		0xAA, 0xAA, // row 3: alternating bits
	}
	if len(data) != raster*height {
		t.Fatalf("test fixture size mismatch")
	}

	encoded, err := encodeG4(data, width, height, raster)
	if err != nil {
		t.Fatalf("encodeG4: %v", err)
	}

	r := ccitt.NewReader(bytes.NewReader(encoded), ccitt.MSB, ccitt.Group4, width, height, &ccitt.Options{Invert: true})
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ccitt decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("G4 round trip mismatch\ngot:  % X\nwant: % X", got, data)
	}
}

// TestPutBitsPicksSmallestAmongCandidates checks a highly compressible
// bitmap (a single black rectangle) does not fall back to the
// uncompressed "none" encoding.
func TestPutBitsPicksSmallestAmongCandidates(t *testing.T) {
	width, height := 32, 8
	raster := width / 8
	data := make([]byte, raster*height)
	for y := 2; y < 6; y++ {
		for i := 1; i < 3; i++ {
			data[y*raster+i] = 0xFF
		}
	}
	blob, err := PutBits(data, width, height, raster, 0)
	if err != nil {
		t.Fatalf("PutBits: %v", err)
	}
	if blob.Mode == None {
		t.Errorf("a highly compressible bitmap chose the uncompressed encoding")
	}
}
