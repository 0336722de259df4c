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

package image3

import "seehuhn.de/go/geom/matrix"

// MaskMatrix derives the mask image's ImageMatrix from the opaque
// image's ImageMatrix for the separate-source and scan-lines
// interleave modes (spec.md §4.8: "the mask's ImageMatrix is
// overridden to be a pure scale of the image's ImageMatrix"). This
// resolves the Open Question spec.md §9 leaves narrative by following
// the original's own derivation exactly: the mask matrix maps mask
// sample space to the same device rectangle as the image, so it is
// the image matrix pre-scaled by the ratio of image samples to mask
// samples along each axis.
func MaskMatrix(imageMatrix matrix.Matrix, imageWidth, imageHeight, maskWidth, maskHeight int) matrix.Matrix {
	sx := float64(imageWidth) / float64(maskWidth)
	sy := float64(imageHeight) / float64(maskHeight)
	return matrix.Scale(sx, sy).Mul(imageMatrix)
}
