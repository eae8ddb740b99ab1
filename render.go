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
	"sync/atomic"

	"github.com/soypat/glgl/math/ms3"
)

// Renderer drives render8/render16/shaded8 against a Tree. Create one
// instance and reuse it across renders: internal scratch buffers grow as
// needed but never shrink, the same buffer-reuse discipline a rasteriser
// uses for its edge/coverage buffers.
//
// A Renderer is not safe for concurrent use; the same Tree must also not be
// driven by two Renderers at once (see the Tree doc comment).
type Renderer struct {
	// MinVolume is the voxel-count threshold below which render8/render16
	// delegate to the leaf rasteriser instead of subdividing further.
	// Must be at least 1. Typical values are 64-512.
	MinVolume int

	// Prune enables the disable/enable pruning step between interval
	// probes and recursive descent.
	Prune bool

	// Progress, if non-nil, is called once per leaf rasterisation during
	// Render8 and once per image row during Shaded8. Render16 never calls
	// it.
	Progress func()

	// point/value scratch buffers, shared by renderLeaf8, renderLeaf16,
	// and GetNormals8. Never held across calls that could alias.
	ptsScratch  []ms3.Vec
	valsScratch []float32

	// normal-estimation scratch buffers, shared by GetNormals8.
	nrmBase, nrmDX, nrmDY, nrmDZ []float32

	// batch is Shaded8's reusable surface-point accumulator.
	batch shadeBatch
}

// NewRenderer returns a Renderer with MinVolume 64 and pruning enabled.
func NewRenderer() *Renderer {
	return &Renderer{MinVolume: 64, Prune: true}
}

// Reset clears per-render scratch state while preserving buffer capacity.
// The halt flag and progress callback are supplied fresh to each render
// call and are never retained between calls.
func (r *Renderer) Reset() {
	r.ptsScratch = r.ptsScratch[:0]
	r.valsScratch = r.valsScratch[:0]
	r.nrmBase = r.nrmBase[:0]
	r.nrmDX = r.nrmDX[:0]
	r.nrmDY = r.nrmDY[:0]
	r.nrmDZ = r.nrmDZ[:0]
	r.batch.reset()
}

func (r *Renderer) minVolume() int {
	if r.MinVolume < 1 {
		return 1
	}
	return r.MinVolume
}

// Render8 paints region's height field into img at 8-bit luminance,
// driving tree via recursive subdivision, interval-arithmetic culling, and
// (when r.Prune) opportunistic subtree pruning.
//
// halt is polled at every recursive entry; setting it from another
// goroutine makes Render8 return as soon as it next checks, leaving img in
// a valid "best effort so far" partial state.
//
// Render8 requires a non-nil tree; passing nil is the caller's error, not
// Render8's to guard against.
func (r *Renderer) Render8(tree Tree, region Region, img *Image8, halt *atomic.Bool) {
	r.render8(tree, region, img, halt)
}

func (r *Renderer) render8(tree Tree, region Region, img *Image8, halt *atomic.Bool) {
	if halt != nil && halt.Load() {
		return
	}

	if region.Voxels > 0 && region.Voxels < r.minVolume() {
		if r.Progress != nil {
			r.Progress()
		}
		r.renderLeaf8(tree, region, img)
		return
	}
	if region.Voxels == 0 {
		return
	}

	ltop := region.topLuminance8()
	if regionAlreadyLit8(region, img, ltop) {
		return
	}

	result := tree.EvalInterval(region.XRange(), region.YRange(), region.ZRange())

	if result.IsStrictlyInside() {
		fillRegion8(region, img, ltop)
		return
	}
	if result.IsStrictlyOutside() {
		return
	}

	if r.Prune {
		tree.Disable()
		tree.DisableBinary()
	}

	if region.Voxels > 1 {
		a, b, err := Bisect(region)
		if err == nil {
			r.render8(tree, b, img, halt)
			r.render8(tree, a, img, halt)
		}
	}

	if r.Prune {
		tree.Enable()
	}
}

// Render16 is the 16-bit counterpart of Render8. A nil tree is a no-op.
func (r *Renderer) Render16(tree Tree, region Region, img *Image16, halt *atomic.Bool) {
	if tree == nil {
		return
	}
	r.render16(tree, region, img, halt)
}

func (r *Renderer) render16(tree Tree, region Region, img *Image16, halt *atomic.Bool) {
	if halt != nil && halt.Load() {
		return
	}

	if region.Voxels > 0 && region.Voxels < r.minVolume() {
		r.renderLeaf16(tree, region, img)
		return
	}
	if region.Voxels == 0 {
		return
	}

	ltop := region.topLuminance16()
	if regionAlreadyLit16(region, img, ltop) {
		return
	}

	result := tree.EvalInterval(region.XRange(), region.YRange(), region.ZRange())

	if result.IsStrictlyInside() {
		fillRegion16(region, img, ltop)
		return
	}
	if result.IsStrictlyOutside() {
		return
	}

	if r.Prune {
		tree.Disable()
		tree.DisableBinary()
	}

	if region.Voxels > 1 {
		a, b, err := Bisect(region)
		if err == nil {
			r.render16(tree, b, img, halt)
			r.render16(tree, a, img, halt)
		}
	}

	if r.Prune {
		tree.Enable()
	}
}

// regionAlreadyLit8 reports whether every pixel in region's footprint is
// already at least as bright as ltop, the best luminance region could
// possibly deposit.
func regionAlreadyLit8(region Region, img *Image8, ltop uint8) bool {
	for row := region.JMin; row < region.JMin+region.NJ; row++ {
		base := row * img.Width
		for col := region.IMin; col < region.IMin+region.NI; col++ {
			if ltop > img.Pix[base+col] {
				return false
			}
		}
	}
	return true
}

func regionAlreadyLit16(region Region, img *Image16, ltop uint16) bool {
	for row := region.JMin; row < region.JMin+region.NJ; row++ {
		base := row * img.Width
		for col := region.IMin; col < region.IMin+region.NI; col++ {
			if ltop > img.Pix[base+col] {
				return false
			}
		}
	}
	return true
}

// fillRegion8 and fillRegion16 implement the monotone-max fill applied when
// a region is certified entirely inside the solid.
func fillRegion8(region Region, img *Image8, ltop uint8) {
	for row := region.JMin; row < region.JMin+region.NJ; row++ {
		base := row * img.Width
		for col := region.IMin; col < region.IMin+region.NI; col++ {
			if ltop > img.Pix[base+col] {
				img.Pix[base+col] = ltop
			}
		}
	}
}

func fillRegion16(region Region, img *Image16, ltop uint16) {
	for row := region.JMin; row < region.JMin+region.NJ; row++ {
		base := row * img.Width
		for col := region.IMin; col < region.IMin+region.NI; col++ {
			if ltop > img.Pix[base+col] {
				img.Pix[base+col] = ltop
			}
		}
	}
}
