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

// encodeRLE is a PackBits-style byte run-length codec, reset at every
// row boundary so a decoder can seek to any row without decoding the
// whole blob. Each row is a sequence of packets: a literal-run packet
// (length byte 0..127 meaning 1..128 literal bytes follow) or a
// repeat-run packet (length byte 128..255 meaning 2..129 repeats of
// the one byte that follows, encoded as 257-length).
func encodeRLE(pixelData []byte, widthBits, height, raster int) []byte {
	out := make([]byte, 0, raster*height/2+height)
	for y := 0; y < height; y++ {
		row := pixelData[y*raster : (y+1)*raster]
		out = appendRLERow(out, row)
	}
	return out
}

func appendRLERow(out []byte, row []byte) []byte {
	i := 0
	for i < len(row) {
		// try a repeat run first
		j := i + 1
		for j < len(row) && j-i < 129 && row[j] == row[i] {
			j++
		}
		if j-i >= 2 {
			out = append(out, byte(257-(j-i)), row[i])
			i = j
			continue
		}
		// literal run: extend until the next repeat run of length >= 2
		k := i + 1
		for k < len(row) && k-i < 128 {
			if k+1 < len(row) && row[k+1] == row[k] {
				break
			}
			k++
		}
		out = append(out, byte(k-i-1))
		out = append(out, row[i:k]...)
		i = k
	}
	return out
}

// decodeRLE reverses encodeRLE, reconstructing height rows of raster
// bytes each. It exists for this package's own round-trip tests.
func decodeRLE(data []byte, height, raster int) []byte {
	out := make([]byte, height*raster)
	pos := 0
	for y := 0; y < height; y++ {
		rowStart := 0
		for rowStart < raster {
			n := int(int8(data[pos]))
			pos++
			if n >= 0 {
				count := n + 1
				copy(out[y*raster+rowStart:], data[pos:pos+count])
				pos += count
				rowStart += count
			} else {
				count := 1 - n
				b := data[pos]
				pos++
				for i := 0; i < count; i++ {
					out[y*raster+rowStart+i] = b
				}
				rowStart += count
			}
		}
	}
	return out
}
