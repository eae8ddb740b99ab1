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
	"testing"

	"github.com/mikest/antimony-render/internal/exprtree"
)

func sphereRegion(t *testing.T, n, imgSize int) (Region, *Image8) {
	t.Helper()
	x := linspace(-2, 2, n)
	y := linspace(-2, 2, n)
	z := linspace(-2, 2, n)
	r, err := NewRegion(0, 0, x, y, z, lumRamp(n), imgSize, imgSize)
	if err != nil {
		t.Fatal(err)
	}
	return r, NewImage8(imgSize, imgSize)
}

func TestRender8UnitSphereLitAtCentreDarkAtCorners(t *testing.T) {
	tree := exprtree.New(exprtree.Sphere(0, 0, 0, 1))
	region, img := sphereRegion(t, 16, 16)

	rend := NewRenderer()
	rend.MinVolume = 32
	rend.Render8(tree, region, img, nil)

	centre := img.At(8, 8)
	corner := img.At(0, 0)
	if centre == 0 {
		t.Errorf("centre pixel should be lit by the sphere, got 0")
	}
	if corner != 0 {
		t.Errorf("corner pixel should stay dark, got %d", corner)
	}
}

func TestRender8EmptySceneStaysBlack(t *testing.T) {
	// Const(1) never goes negative: nothing is ever inside.
	tree := exprtree.New(exprtree.Const(1))
	region, img := sphereRegion(t, 8, 8)

	NewRenderer().Render8(tree, region, img, nil)

	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: got %d, want 0", i, v)
		}
	}
}

func TestRender8FilledSceneFullyLit(t *testing.T) {
	// Const(-1) is negative everywhere: every column is filled to the top.
	tree := exprtree.New(exprtree.Const(-1))
	region, img := sphereRegion(t, 8, 8)

	NewRenderer().Render8(tree, region, img, nil)

	want := region.topLuminance8()
	for i, v := range img.Pix {
		if v != want {
			t.Fatalf("pixel %d: got %d, want %d", i, v, want)
		}
	}
}

func TestRender8HaltStopsBeforeAnyWrite(t *testing.T) {
	tree := exprtree.New(exprtree.Sphere(0, 0, 0, 1))
	region, img := sphereRegion(t, 16, 16)

	var halt atomic.Bool
	halt.Store(true)

	NewRenderer().Render8(tree, region, img, &halt)

	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: got %d, want 0 (halted before any write)", i, v)
		}
	}
}

// TestRender8HaltMidRenderLeavesConsistentPartialState halts after a few
// leaves have already been rasterised, not before the first one, and checks
// the partial image against an uninterrupted control render: every pixel
// either still reads zero (its leaf never ran) or already matches the final
// value (a leaf wrote it before the halt was observed) — partial state is
// never wrong, only incomplete. Resuming the same image buffer with halt
// cleared then completes it to exactly the control image, relying on the
// monotone-max fill to make a second pass over already-covered ground safe.
func TestRender8HaltMidRenderLeavesConsistentPartialState(t *testing.T) {
	scene := exprtree.Union(exprtree.Sphere(-0.5, 0, 0, 0.8), exprtree.Sphere(0.5, 0, 0, 0.8))

	controlRegion, controlImg := sphereRegion(t, 16, 16)
	NewRenderer().Render8(exprtree.New(scene), controlRegion, controlImg, nil)

	region, img := sphereRegion(t, 16, 16)
	tree := exprtree.New(scene)

	var halt atomic.Bool
	var leaves int
	rend := NewRenderer()
	rend.MinVolume = 32
	rend.Progress = func() {
		leaves++
		if leaves == 2 {
			halt.Store(true)
		}
	}
	rend.Render8(tree, region, img, &halt)

	if leaves < 2 {
		t.Fatalf("expected at least 2 leaves to run before halt, got %d", leaves)
	}

	wroteSomething := false
	for i, v := range img.Pix {
		if v == 0 {
			continue
		}
		wroteSomething = true
		if v != controlImg.Pix[i] {
			t.Fatalf("pixel %d: partial value %d disagrees with control %d", i, v, controlImg.Pix[i])
		}
	}
	if !wroteSomething {
		t.Fatalf("expected at least one pixel written before halt took effect")
	}

	// Resume on the same image: clear halt and render again from scratch
	// over the same (partially filled) buffer.
	rend.Reset()
	rend.Progress = nil
	var resumed atomic.Bool
	rend.Render8(exprtree.New(scene), region, img, &resumed)

	for i, v := range img.Pix {
		if v != controlImg.Pix[i] {
			t.Fatalf("pixel %d after resume: got %d, want %d", i, v, controlImg.Pix[i])
		}
	}
}

func TestRender8PruneDoesNotChangeResult(t *testing.T) {
	scene := exprtree.Union(exprtree.Sphere(-0.5, 0, 0, 0.8), exprtree.Sphere(0.5, 0, 0, 0.8))

	region, imgPruned := sphereRegion(t, 16, 16)
	treePruned := exprtree.New(scene)
	rendPruned := NewRenderer()
	rendPruned.Prune = true
	rendPruned.Render8(treePruned, region, imgPruned, nil)

	region2, imgPlain := sphereRegion(t, 16, 16)
	treePlain := exprtree.New(scene)
	rendPlain := NewRenderer()
	rendPlain.Prune = false
	rendPlain.Render8(treePlain, region2, imgPlain, nil)

	for i := range imgPruned.Pix {
		if imgPruned.Pix[i] != imgPlain.Pix[i] {
			t.Fatalf("pixel %d: pruned=%d plain=%d, want equal", i, imgPruned.Pix[i], imgPlain.Pix[i])
		}
	}
}

func TestRender8IsMonotoneNonDecreasingDuringFill(t *testing.T) {
	// fillRegion8/renderLeaf8 must never lower an already-written pixel;
	// rendering the same scene twice in a row must leave the image
	// unchanged the second time.
	tree := exprtree.New(exprtree.Sphere(0, 0, 0, 1))
	region, img := sphereRegion(t, 16, 16)

	rend := NewRenderer()
	rend.Render8(tree, region, img, nil)
	before := append([]uint8(nil), img.Pix...)

	rend.Reset()
	rend.Render8(exprtree.New(exprtree.Sphere(0, 0, 0, 1)), region, img, nil)

	for i := range before {
		if img.Pix[i] != before[i] {
			t.Fatalf("pixel %d changed from %d to %d on a repeat render", i, before[i], img.Pix[i])
		}
	}
}

func TestRender16MatchesRender8Shape(t *testing.T) {
	tree16 := exprtree.New(exprtree.Sphere(0, 0, 0, 1))
	tree8 := exprtree.New(exprtree.Sphere(0, 0, 0, 1))

	n, size := 16, 16
	x, y, z := linspace(-2, 2, n), linspace(-2, 2, n), linspace(-2, 2, n)

	r16, err := NewRegion(0, 0, x, y, z, lumRamp(n), size, size)
	if err != nil {
		t.Fatal(err)
	}
	img16 := NewImage16(size, size)
	NewRenderer().Render16(tree16, r16, img16, nil)

	r8, _ := NewRegion(0, 0, x, y, z, lumRamp(n), size, size)
	img8 := NewImage8(size, size)
	NewRenderer().Render8(tree8, r8, img8, nil)

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			lit16 := img16.At(col, row) != 0
			lit8 := img8.At(col, row) != 0
			if lit16 != lit8 {
				t.Fatalf("pixel (%d,%d): 16-bit lit=%v, 8-bit lit=%v", col, row, lit16, lit8)
			}
		}
	}
}

func TestRender16NilTreeIsNoOp(t *testing.T) {
	region, _ := sphereRegion(t, 8, 8)
	img := NewImage16(8, 8)
	NewRenderer().Render16(nil, region, img, nil)
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("pixel %d: got %d, want 0", i, v)
		}
	}
}
