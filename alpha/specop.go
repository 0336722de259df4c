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

package alpha

import "seehuhn.de/go/rasterdev"

// specOp calls Target.DevSpecOp when Target implements SpecOpTarget,
// otherwise it is a no-op.
func (b *Buffer) specOp(op string) error {
	t, ok := b.Target.(SpecOpTarget)
	if !ok {
		return nil
	}
	return t.DevSpecOp(op)
}

// FillThenStroke runs paintFill under fillColor and paintStroke under
// strokeColor, bracketing the transition with the pre-fill/pre-stroke/
// cleanup/post-stroke dev_spec_op sequence an overprint/transparency
// compositor on Target may need (spec.md §4.6, "Integration with
// overprint compositors").
//
// All four transitions are idempotent to errors: a failed pre-stroke
// restores fillColor before returning; a cleanup is emitted after any
// paintFill error.
func (b *Buffer) FillThenStroke(fillColor, strokeColor rasterdev.ColorIndex, paintFill, paintStroke func() error) error {
	if err := b.specOp("pre-fill"); err != nil {
		return err
	}
	if err := b.SetColor(fillColor); err != nil {
		return err
	}
	if err := paintFill(); err != nil {
		_ = b.specOp("cleanup")
		return err
	}

	if err := b.specOp("pre-stroke"); err != nil {
		if setErr := b.SetColor(fillColor); setErr != nil {
			return setErr
		}
		return err
	}

	if err := b.SetColor(strokeColor); err != nil {
		return err
	}
	if err := paintStroke(); err != nil {
		_ = b.specOp("cleanup")
		return err
	}

	return b.specOp("post-stroke")
}
