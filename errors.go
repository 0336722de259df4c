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

import (
	"errors"
	"fmt"
)

// Error kinds, abstract (spec.md §7). Every error a drawing primitive
// returns is one of these or wraps exactly one of them with
// fmt.Errorf("%w: ..."), so callers distinguish kinds with errors.Is.
var (
	// ErrRange marks a parameter outside its declared domain: an
	// unsupported sample depth, an unknown rop code, a planar
	// configuration whose plane depths overlap or overflow, or a
	// get_bits_rectangle option combination with no supported mode.
	ErrRange = errors.New("rasterdev: range error")

	// ErrLimit marks a computed allocation or compressed bitmap that
	// exceeds a configured cap.
	ErrLimit = errors.New("rasterdev: limit error")

	// ErrMemory marks an allocation failure in an init path or a
	// transient scratch buffer.
	ErrMemory = errors.New("rasterdev: memory error")

	// ErrUndefinedResult marks a request whose result is undefined,
	// such as copy_mono with both colors set to NoColor.
	ErrUndefinedResult = errors.New("rasterdev: undefined result")

	// ErrFatal marks a violated internal invariant, such as planar
	// source routing recursing with a nonzero plane height.
	ErrFatal = errors.New("rasterdev: fatal error")
)

// errRangef wraps ErrRange with a formatted message, the pattern every
// drawing primitive in this module uses to report a parameter out of
// its declared domain (spec.md §7).
func errRangef(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrRange}, args...)...)
}

// errLimitf wraps ErrLimit with a formatted message.
func errLimitf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrLimit}, args...)...)
}

// errFatalf wraps ErrFatal with a formatted message.
func errFatalf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrFatal}, args...)...)
}
