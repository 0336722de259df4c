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

// Sanitize simplifies a rop code given which operands are actually
// present, per spec.md §4.4:
//  1. Removing unused operands is implicit in ComputeUsage; sanitize
//     only needs to collapse operands the CALLER says are constant.
//  2. A constant source (both scolors equal, or no source bitmap at
//     all) is folded in via knowS0/knowS1.
//  3. A constant texture is folded in the same way.
//
// sConstant/tConstant are nil when that operand is a real bitmap, or
// point to the known constant bit (0 or 1) when it collapses.
func Sanitize(c Code, sConstant, tConstant *byte) Code {
	if sConstant != nil {
		c = knownS(c, *sConstant)
	}
	if tConstant != nil {
		c = knownT(c, *tConstant)
	}
	return c
}

// knownS collapses the code's dependence on S by fixing S=value,
// duplicating the resulting D,T-indexed 4-entry table across both
// halves of the new code (so ComputeUsage correctly reports S as
// unused afterward).
func knownS(c Code, value byte) Code {
	var out Code
	for d := byte(0); d < 2; d++ {
		for t := byte(0); t < 2; t++ {
			bit := bitAt(c, d, value, t)
			for s := byte(0); s < 2; s++ {
				idx := t<<2 | s<<1 | d
				if bit == 1 {
					out |= 1 << idx
				}
			}
		}
	}
	return out
}

// knownT collapses the code's dependence on T by fixing T=value.
func knownT(c Code, value byte) Code {
	var out Code
	for d := byte(0); d < 2; d++ {
		for s := byte(0); s < 2; s++ {
			bit := bitAt(c, d, s, value)
			for t := byte(0); t < 2; t++ {
				idx := t<<2 | s<<1 | d
				if bit == 1 {
					out |= 1 << idx
				}
			}
		}
	}
	return out
}
