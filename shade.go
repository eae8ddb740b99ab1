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
	"sync/atomic"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

// shadeBatch holds the pending surface points accumulated by Shaded8
// before a batched call to GetNormals8.
type shadeBatch struct {
	x, y, z  []float32
	col, row []int
	normals  []ms3.Vec
}

func (b *shadeBatch) reset() { b.x, b.y, b.z, b.col, b.row = b.x[:0], b.y[:0], b.z[:0], b.col[:0], b.row[:0] }

func (b *shadeBatch) len() int { return len(b.x) }

func (b *shadeBatch) add(x, y, z float32, col, row int) {
	b.x = append(b.x, x)
	b.y = append(b.y, y)
	b.z = append(b.z, z)
	b.col = append(b.col, col)
	b.row = append(b.row, row)
}

// Shaded8 walks a completed 8-bit height image, estimates surface normals
// in batches of up to r.MinVolume points, and writes |n|*255 per channel
// into an RGB output.
//
// region must be the same top-level region the depth image was rendered
// from: its corner sample arrays are used to map pixel (col, row) and
// depth byte back to world (X, Y, Z).
func (r *Renderer) Shaded8(tree Tree, region Region, depth *Image8, out *RGBImage, halt *atomic.Bool) {
	eps := (region.X[1] - region.X[0]) / 10

	batch := &r.batch
	batch.reset()
	flush := func() {
		if batch.len() == 0 {
			return
		}
		batch.normals = slices.Grow(batch.normals[:0], batch.len())[:batch.len()]
		r.GetNormals8(tree, batch.x, batch.y, batch.z, eps, batch.normals)
		for i, n := range batch.normals {
			shadePixel(out, batch.col[i], batch.row[i], n)
		}
		batch.reset()
	}

	batchSize := r.minVolume()
	for row := 0; row < region.NJ; row++ {
		if halt != nil && halt.Load() {
			return
		}
		if r.Progress != nil {
			r.Progress()
		}

		for col := 0; col < region.NI; col++ {
			d := depth.At(region.IMin+col, region.JMin+row)
			if d != 0 {
				worldZ := region.Z[0] + float32(d)/255*(region.Z[region.NK]-region.Z[0])
				batch.add(region.X[col], region.Y[row], worldZ, region.IMin+col, region.JMin+row)
			}

			lastPixel := row == region.NJ-1 && col == region.NI-1
			if batch.len() == batchSize || (batch.len() > 0 && lastPixel) {
				flush()
			}
		}
	}
}

func shadePixel(out *RGBImage, col, row int, n ms3.Vec) {
	out.Set(col, row,
		uint8(math32.Round(math32.Abs(n.X)*255)),
		uint8(math32.Round(math32.Abs(n.Y)*255)),
		uint8(math32.Round(math32.Abs(n.Z)*255)),
	)
}
