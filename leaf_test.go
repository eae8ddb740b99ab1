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
	"testing"

	"github.com/mikest/antimony-render/internal/exprtree"
)

func TestFillLeafGridEnumeratesEveryVoxelOnce(t *testing.T) {
	x := linspace(-1, 1, 2)
	y := linspace(-1, 1, 3)
	z := linspace(-1, 1, 4)
	region, err := NewRegion(0, 0, x, y, z, lumRamp(4), 2, 3)
	if err != nil {
		t.Fatal(err)
	}

	tree := exprtree.New(exprtree.Const(-1))
	r := NewRenderer()
	r.MinVolume = region.Voxels + 1 // force the leaf path
	img := NewImage8(2, 3)
	r.Render8(tree, region, img, nil)

	for i, v := range img.Pix {
		if v == 0 {
			t.Fatalf("pixel %d never received a leaf write", i)
		}
	}
}

func TestRenderLeaf8OnlyRaisesPixelsInsideTheSolid(t *testing.T) {
	// A plane at z=0: everything with z<0 is inside.
	tree := exprtree.New(exprtree.Plane(0, 0, 1, 0))

	x := linspace(-1, 1, 4)
	y := linspace(-1, 1, 4)
	z := linspace(-1, 1, 4) // spans both sides of the plane
	region, err := NewRegion(0, 0, x, y, z, lumRamp(4), 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	r := NewRenderer()
	r.MinVolume = region.Voxels + 1
	img := NewImage8(4, 4)
	r.Render8(tree, region, img, nil)

	// Slice samples sit at z = -1, -0.5, 0, 0.5; only the first two are
	// inside, so every column stops at slice 1's luminance, L[2].
	want := uint8(region.L[2] >> 8)
	for i, v := range img.Pix {
		if v != want {
			t.Fatalf("pixel %d: got %d, want %d (highest sample below z=0)", i, v, want)
		}
	}
}
