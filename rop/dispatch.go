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

// Path names the fast dispatch a sanitized code reduces to (spec.md
// §4.4's ordered list of fast dispatches).
type Path int

const (
	// PathConstantFill: rop_usage_none — the whole rectangle becomes a
	// single constant color via fill_rectangle.
	PathConstantFill Path = iota
	// PathNoop: rop_usage_D and f(D,S,T)=D — nothing to do.
	PathNoop
	// PathCopyMono: rop_usage_S with a pure or inverted copy — forward
	// to copy_mono with the appropriate color polarity.
	PathCopyMono
	// PathStripTile: rop_usage_T with a pure or inverted tile —
	// forward to strip_tile_rectangle.
	PathStripTile
	// PathGeneric: none of the above apply; run the rolling inner
	// loop.
	PathGeneric
)

// Decision is the outcome of sanitizing and classifying a rop code
// plus its operand presence, ready for a caller to act on.
type Decision struct {
	Path    Path
	Code    Code
	Usage   Usage
	Inverse bool // PathCopyMono/PathStripTile: whether the copy/tile is inverted
	Const   byte // PathConstantFill: the fill bit (0 or 1)
}

// Classify sanitizes code against known-constant source/texture values
// (nil when that operand is a real bitmap) and returns which fast path
// applies.
func Classify(code Code, sConstant, tConstant *byte) Decision {
	c := Sanitize(code, sConstant, tConstant)
	u := ComputeUsage(c)

	switch {
	case u.None():
		return Decision{Path: PathConstantFill, Code: c, Usage: u, Const: c.ConstantResult() & 1}
	case u.D && !u.S && !u.T:
		if c.IsIdentityD() {
			return Decision{Path: PathNoop, Code: c, Usage: u}
		}
		return Decision{Path: PathGeneric, Code: c, Usage: u}
	case !u.D && u.S && !u.T:
		if c.IsPureCopyS() {
			return Decision{Path: PathCopyMono, Code: c, Usage: u, Inverse: false}
		}
		if c.IsInvertedCopyS() {
			return Decision{Path: PathCopyMono, Code: c, Usage: u, Inverse: true}
		}
		return Decision{Path: PathGeneric, Code: c, Usage: u}
	case !u.D && !u.S && u.T:
		if c.IsPureTileT() {
			return Decision{Path: PathStripTile, Code: c, Usage: u, Inverse: false}
		}
		if c.IsInvertedTileT() {
			return Decision{Path: PathStripTile, Code: c, Usage: u, Inverse: true}
		}
		return Decision{Path: PathGeneric, Code: c, Usage: u}
	default:
		return Decision{Path: PathGeneric, Code: c, Usage: u}
	}
}
