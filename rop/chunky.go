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

package rop

// ApplyChunky8 runs the depth-8 chunky inner loop (spec.md §4.4): each
// destination byte IS one pixel sample, so the rop applies directly,
// byte for byte, with no bit-serial assembly needed. src/texture are
// optional raw byte rows (hasSrc/hasTexture false treats that operand
// as the constant 0 byte, matching an already-sanitized rop).
func ApplyChunky8(dst []byte, dRaster, x, y, w, h int, code Code, src []byte, srcX, srcRaster int, hasSrc bool, texture []byte, texX, texRaster int, hasTexture bool) {
	for row := 0; row < h; row++ {
		dRow := dst[(y+row)*dRaster+x:]
		var sRow, tRow []byte
		if hasSrc {
			sRow = src[row*srcRaster+srcX:]
		}
		if hasTexture {
			tRow = texture[row*texRaster+texX:]
		}
		for i := 0; i < w; i++ {
			var s, t byte
			if hasSrc {
				s = sRow[i]
			}
			if hasTexture {
				t = tRow[i]
			}
			dRow[i] = code.Apply(dRow[i], s, t)
		}
	}
}

// ApplyChunky24 runs the depth-24 chunky inner loop: the rop is
// applied independently to each of the R, G, B byte lanes of every
// pixel (spec.md §4.4, "S and T are... read as chunky 24-bit").
func ApplyChunky24(dst []byte, dRaster, x, y, w, h int, code Code, src []byte, srcX, srcRaster int, hasSrc bool, texture []byte, texX, texRaster int, hasTexture bool) {
	for row := 0; row < h; row++ {
		dRow := dst[(y+row)*dRaster+x*3:]
		var sRow, tRow []byte
		if hasSrc {
			sRow = src[row*srcRaster+srcX*3:]
		}
		if hasTexture {
			tRow = texture[row*texRaster+texX*3:]
		}
		for i := 0; i < w*3; i++ {
			var s, t byte
			if hasSrc {
				s = sRow[i]
			}
			if hasTexture {
				t = tRow[i]
			}
			dRow[i] = code.Apply(dRow[i], s, t)
		}
	}
}
