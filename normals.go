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

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// GetNormals8 estimates a unit surface normal at each of the len(x) points
// (x[i], y[i], z[i]) by forward finite differences with step eps. Where
// the estimated gradient has zero length the output normal is the zero
// vector.
//
// The points are copied into a scratch buffer and only that copy is
// perturbed (push/pop epsilon); x, y, and z themselves are never written.
func (r *Renderer) GetNormals8(tree Tree, x, y, z []float32, eps float32, out []ms3.Vec) {
	n := len(x)
	pts := r.normalScratchPts(n)
	for i := range pts {
		pts[i] = ms3.Vec{X: x[i], Y: y[i], Z: z[i]}
	}

	base := r.normalScratchVals(&r.nrmBase, n)
	tree.EvalBulk(pts, base)

	dx := r.normalScratchVals(&r.nrmDX, n)
	for i := range pts {
		pts[i].X += eps
	}
	tree.EvalBulk(pts, dx)
	for i := range pts {
		pts[i].X -= eps
	}

	dy := r.normalScratchVals(&r.nrmDY, n)
	for i := range pts {
		pts[i].Y += eps
	}
	tree.EvalBulk(pts, dy)
	for i := range pts {
		pts[i].Y -= eps
	}

	dz := r.normalScratchVals(&r.nrmDZ, n)
	for i := range pts {
		pts[i].Z += eps
	}
	tree.EvalBulk(pts, dz)

	for i := 0; i < n; i++ {
		g := ms3.Vec{X: dx[i] - base[i], Y: dy[i] - base[i], Z: dz[i] - base[i]}
		dist := math32.Sqrt(g.X*g.X + g.Y*g.Y + g.Z*g.Z)
		if dist == 0 {
			out[i] = ms3.Vec{}
			continue
		}
		out[i] = ms3.Vec{X: g.X / dist, Y: g.Y / dist, Z: g.Z / dist}
	}
}

func (r *Renderer) normalScratchPts(n int) []ms3.Vec {
	r.ptsScratch = slices.Grow(r.ptsScratch[:0], n)[:n]
	return r.ptsScratch
}

func (r *Renderer) normalScratchVals(buf *[]float32, n int) []float32 {
	*buf = slices.Grow((*buf)[:0], n)[:n]
	return *buf
}
