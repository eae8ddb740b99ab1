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
	"github.com/soypat/glgl/math/ms3"
	"seehuhn.de/go/geom/vec"
)

// Region describes an axis-aligned subgrid of the output image crossed
// with a slab of Z values: the pixel extents [IMin,IMin+NI) x
// [JMin,JMin+NJ), the voxel counts NI, NJ, NK, and the sample coordinates
// along each axis.
//
// X, Y, Z serve two different conventions depending on where a Region is in
// its lifecycle:
//
//   - During recursive descent (the convention this struct's exported
//     fields always hold), they are box-corner arrays: X has length NI+1,
//     Y has length NJ+1, Z has length NK+1, and XRange/YRange/ZRange read
//     them as such.
//
//   - The leaf rasteriser reads the first NI, NJ, NK entries of X, Y, Z as
//     per-voxel sample positions and packs them into the Renderer's scratch
//     point buffer (see fillLeafGrid). The Region's own X/Y/Z are never
//     rewritten, so every Region value keeps the corner convention.
type Region struct {
	IMin, JMin int // pixel-space origin
	NI, NJ, NK int // voxel counts along X, Y, Z

	X, Y, Z []float32 // box-corner sample coordinates; see doc above

	// L is the depth-to-luminance table shared by the whole render tree:
	// L[k] is the luminance a pixel receives if its topmost in-surface
	// sample is at slice k. Length NK+1, monotonically non-decreasing.
	L []uint16

	// Voxels caches NI*NJ*NK; zero means an empty region.
	Voxels int
}

// NewRegion constructs a Region from box-corner sample coordinates and a
// shared luminance table, validating monotonicity and image bounds against
// the given image dimensions.
func NewRegion(imin, jmin int, x, y, z []float32, l []uint16, imgW, imgH int) (Region, error) {
	ni, nj, nk := len(x)-1, len(y)-1, len(z)-1
	if ni < 0 || nj < 0 || nk < 0 {
		return Region{}, ErrBadExtent
	}
	if len(l) != nk+1 {
		return Region{}, ErrBadExtent
	}
	if !strictlyMonotonic(x) || !strictlyMonotonic(y) || !strictlyMonotonic(z) {
		return Region{}, ErrNonMonotonic
	}
	if imin < 0 || jmin < 0 || imin+ni > imgW || jmin+nj > imgH {
		return Region{}, ErrOutOfBounds
	}
	return Region{
		IMin: imin, JMin: jmin,
		NI: ni, NJ: nj, NK: nk,
		X: x, Y: y, Z: z,
		L:      l,
		Voxels: ni * nj * nk,
	}, nil
}

func strictlyMonotonic(v []float32) bool {
	if len(v) < 2 {
		return true
	}
	asc := v[1] > v[0]
	for i := 1; i < len(v); i++ {
		if asc {
			if v[i] <= v[i-1] {
				return false
			}
		} else {
			if v[i] >= v[i-1] {
				return false
			}
		}
	}
	return true
}

// XRange, YRange, and ZRange return the corner-convention extent of the
// region along each axis, as used by the interval probe before recursing.
func (r Region) XRange() Interval { return Interval{r.X[0], r.X[r.NI]} }
func (r Region) YRange() Interval { return Interval{r.Y[0], r.Y[r.NJ]} }
func (r Region) ZRange() Interval { return Interval{r.Z[0], r.Z[r.NK]} }

// Bounds returns the region's world-space bounding box.
func (r Region) Bounds() ms3.Box {
	xr, yr, zr := r.XRange(), r.YRange(), r.ZRange()
	return ms3.Box{
		Min: ms3.Vec{X: xr.Lower, Y: yr.Lower, Z: zr.Lower},
		Max: ms3.Vec{X: xr.Upper, Y: yr.Upper, Z: zr.Upper},
	}
}

// FootprintXY returns the region's world-space (X, Y) footprint as the
// lower-left and upper-right corners, for tooling that reports scene
// extents without pulling in the full 3-D box (e.g. the CLI's -describe
// output). Built on seehuhn.de/go/geom/vec, the same 2-D point type used
// elsewhere for planar geometry.
func (r Region) FootprintXY() (ll, ur vec.Vec2) {
	xr, yr := r.XRange(), r.YRange()
	return vec.Vec2{X: float64(xr.Lower), Y: float64(yr.Lower)},
		vec.Vec2{X: float64(xr.Upper), Y: float64(yr.Upper)}
}

// topLuminance8 and topLuminance16 return L[NK] at the region's bit depth:
// the best luminance a region could possibly deposit.
func (r Region) topLuminance16() uint16 { return r.L[r.NK] }
func (r Region) topLuminance8() uint8   { return uint8(r.L[r.NK] >> 8) }

// axis identifies one of the three region axes.
type axis int

const (
	axisX axis = iota
	axisY
	axisZ
)

// longestAxis picks the axis to bisect along, preferring Z over Y over X on
// ties.
func (r Region) longestAxis() axis {
	switch {
	case r.NK >= r.NJ && r.NK >= r.NI:
		return axisZ
	case r.NJ >= r.NI:
		return axisY
	default:
		return axisX
	}
}

// Bisect splits a region with Voxels > 1 into two disjoint halves A and B
// along its longest axis, sharing the boundary sample. B always holds the
// upper-index half; callers recurse into B before A so that back-to-front
// occlusion ordering holds regardless of which axis was split.
func Bisect(r Region) (a, b Region, err error) {
	if r.Voxels <= 1 {
		return Region{}, Region{}, ErrNotBisectable
	}

	switch r.longestAxis() {
	case axisX:
		split := r.NI / 2
		a, b = r, r
		a.X, a.NI = r.X[:split+1], split
		b.X, b.NI = r.X[split:], r.NI-split
		b.IMin = r.IMin + split
	case axisY:
		split := r.NJ / 2
		a, b = r, r
		a.Y, a.NJ = r.Y[:split+1], split
		b.Y, b.NJ = r.Y[split:], r.NJ-split
		b.JMin = r.JMin + split
	default: // axisZ
		split := r.NK / 2
		a, b = r, r
		a.Z, a.NK = r.Z[:split+1], split
		b.Z, b.NK = r.Z[split:], r.NK-split
		a.L = r.L[:split+1]
		b.L = r.L[split:]
	}

	a.Voxels = a.NI * a.NJ * a.NK
	b.Voxels = b.NI * b.NJ * b.NK
	return a, b, nil
}
