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

// Package rop implements the RasterOp engine (spec.md §4.4, C5): an
// 8-bit Boolean function of (Destination, Source, Texture), applied
// bytewise across monobit, 8-bit/24-bit chunky and 4-plane-1-bit-CMYK
// buffers, with sanitization to collapse unused or constant operands
// into cheaper fast paths before the generic rolling inner loop runs.
package rop

// Code is one of the 256 Boolean raster-operation codes. Bit i of Code
// gives the output bit for input combination i = T*4 + S*2 + D (D is
// the least-significant input, T the most significant) — the same
// convention as the classic ternary ROP3 byte (e.g. 0xCC = S,
// 0x66 = D^S).
type Code byte

// Apply computes f(D,S,T) bytewise: bit i of the result is Code's bit
// at index (T_i<<2 | S_i<<1 | D_i).
func (c Code) Apply(d, s, t byte) byte {
	var out byte
	for bit := uint(0); bit < 8; bit++ {
		di := (d >> bit) & 1
		si := (s >> bit) & 1
		ti := (t >> bit) & 1
		idx := ti<<2 | si<<1 | di
		out |= ((byte(c) >> idx) & 1) << bit
	}
	return out
}

// Usage describes which of (Destination, Source, Texture) a
// sanitized rop code actually depends on (spec.md §4.4's "rop_usage
// table": {none, D, S, T, DS, DT, ST, DST}).
type Usage struct {
	D, S, T bool
}

// None reports whether the rop ignores all three operands (constant
// output).
func (u Usage) None() bool { return !u.D && !u.S && !u.T }

// ComputeUsage derives which operands influence the output of a rop
// code by comparing outputs across that operand's two values while
// holding the others fixed.
func ComputeUsage(c Code) Usage {
	var u Usage
	for d := byte(0); d < 2 && !u.D; d++ {
		for s := byte(0); s < 2 && !u.D; s++ {
			for t := byte(0); t < 2 && !u.D; t++ {
				if bitAt(c, d, s, t) != bitAt(c, d^1, s, t) {
					u.D = true
				}
			}
		}
	}
	for d := byte(0); d < 2 && !u.S; d++ {
		for s := byte(0); s < 2 && !u.S; s++ {
			for t := byte(0); t < 2 && !u.S; t++ {
				if bitAt(c, d, s, t) != bitAt(c, d, s^1, t) {
					u.S = true
				}
			}
		}
	}
	for d := byte(0); d < 2 && !u.T; d++ {
		for s := byte(0); s < 2 && !u.T; s++ {
			for t := byte(0); t < 2 && !u.T; t++ {
				if bitAt(c, d, s, t) != bitAt(c, d, s, t^1) {
					u.T = true
				}
			}
		}
	}
	return u
}

func bitAt(c Code, d, s, t byte) byte {
	idx := t<<2 | s<<1 | d
	return (byte(c) >> idx) & 1
}

// ConstantResult returns the rop's output (0 or 0xFF) when Usage is
// None(); the caller must check None() first.
func (c Code) ConstantResult() byte {
	if bitAt(c, 0, 0, 0) == 1 {
		return 0xFF
	}
	return 0x00
}

// IsIdentityD reports whether the code reduces to f(D,S,T)=D (a
// no-op write) given that usage is D-only.
func (c Code) IsIdentityD() bool {
	return bitAt(c, 0, 0, 0) == 0 && bitAt(c, 1, 0, 0) == 1
}

// IsPureCopyS reports f(D,S,T)=S given S-only usage.
func (c Code) IsPureCopyS() bool {
	return bitAt(c, 0, 0, 0) == 0 && bitAt(c, 0, 1, 0) == 1
}

// IsInvertedCopyS reports f(D,S,T)=~S given S-only usage.
func (c Code) IsInvertedCopyS() bool {
	return bitAt(c, 0, 0, 0) == 1 && bitAt(c, 0, 1, 0) == 0
}

// IsPureTileT reports f(D,S,T)=T given T-only usage.
func (c Code) IsPureTileT() bool {
	return bitAt(c, 0, 0, 0) == 0 && bitAt(c, 0, 0, 1) == 1
}

// IsInvertedTileT reports f(D,S,T)=~T given T-only usage.
func (c Code) IsInvertedTileT() bool {
	return bitAt(c, 0, 0, 0) == 1 && bitAt(c, 0, 0, 1) == 0
}
