// antimony-render - a volumetric rasteriser for implicit solids
// Copyright (C) 2026  Mike Estee
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

package render

import (
	"slices"

	"github.com/soypat/glgl/math/ms3"
)

// renderLeaf8 and renderLeaf16 materialise a region's sample grid,
// evaluate it in a single bulk call, and write pixel heights directly.
// Samples are enumerated k descending, j ascending, i ascending, so each
// Z-slice's samples are contiguous and slices are visited topmost-first;
// the first (highest) slice containing the surface wins the write.
//
// Scratch buffers are owned by the Renderer and reused across calls; they
// are sized to MinVolume in steady state and released along with the
// Renderer itself, never allocated proportionally to overall image size.
func (r *Renderer) renderLeaf8(tree Tree, region Region, img *Image8) {
	pts, vals := r.leafScratch(region.Voxels)
	fillLeafGrid(region, pts)
	tree.EvalBulk(pts, vals)

	q := 0
	for k := region.NK - 1; k >= 0; k-- {
		l := uint8(region.L[k+1] >> 8)
		for j := 0; j < region.NJ; j++ {
			row := j + region.JMin
			base := row * img.Width
			for i := 0; i < region.NI; i++ {
				col := i + region.IMin
				if vals[q] < 0 && img.Pix[base+col] < l {
					img.Pix[base+col] = l
				}
				q++
			}
		}
	}
}

func (r *Renderer) renderLeaf16(tree Tree, region Region, img *Image16) {
	pts, vals := r.leafScratch(region.Voxels)
	fillLeafGrid(region, pts)
	tree.EvalBulk(pts, vals)

	q := 0
	for k := region.NK - 1; k >= 0; k-- {
		l := region.L[k+1]
		for j := 0; j < region.NJ; j++ {
			row := j + region.JMin
			base := row * img.Width
			for i := 0; i < region.NI; i++ {
				col := i + region.IMin
				if vals[q] < 0 && img.Pix[base+col] < l {
					img.Pix[base+col] = l
				}
				q++
			}
		}
	}
}

// leafScratch returns reusable points/values buffers of length n, growing
// the Renderer's backing arrays if needed.
func (r *Renderer) leafScratch(n int) ([]ms3.Vec, []float32) {
	r.ptsScratch = slices.Grow(r.ptsScratch[:0], n)[:n]
	r.valsScratch = slices.Grow(r.valsScratch[:0], n)[:n]
	return r.ptsScratch, r.valsScratch
}

// fillLeafGrid flattens region's per-axis corner samples into the packed,
// per-voxel sample-centre convention the bulk evaluator expects, in
// k-descending, j-ascending, i-ascending order.
func fillLeafGrid(region Region, pts []ms3.Vec) {
	q := 0
	for k := region.NK - 1; k >= 0; k-- {
		z := region.Z[k]
		for j := 0; j < region.NJ; j++ {
			y := region.Y[j]
			for i := 0; i < region.NI; i++ {
				pts[q] = ms3.Vec{X: region.X[i], Y: y, Z: z}
				q++
			}
		}
	}
}
