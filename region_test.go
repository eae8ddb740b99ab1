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

import "testing"

// linspace returns n+1 strictly increasing samples from lo to hi inclusive.
func linspace(lo, hi float32, n int) []float32 {
	out := make([]float32, n+1)
	for i := range out {
		out[i] = lo + (hi-lo)*float32(i)/float32(n)
	}
	return out
}

// lumRamp returns a monotone non-decreasing 16-bit luminance table of
// length n+1, ramping from 0 to 0xFFFF.
func lumRamp(n int) []uint16 {
	out := make([]uint16, n+1)
	for i := range out {
		out[i] = uint16(0xFFFF * i / n)
	}
	return out
}

func TestNewRegionRejectsNonMonotonic(t *testing.T) {
	x := []float32{0, 1, 0.5, 2}
	y := linspace(-1, 1, 3)
	z := linspace(-1, 1, 3)
	_, err := NewRegion(0, 0, x, y, z, lumRamp(3), 16, 16)
	if err != ErrNonMonotonic {
		t.Fatalf("got %v, want ErrNonMonotonic", err)
	}
}

func TestNewRegionRejectsBadExtent(t *testing.T) {
	x := linspace(-1, 1, 4)
	y := linspace(-1, 1, 4)
	z := linspace(-1, 1, 4)
	_, err := NewRegion(0, 0, x, y, z, lumRamp(3), 16, 16)
	if err != ErrBadExtent {
		t.Fatalf("got %v, want ErrBadExtent", err)
	}
}

func TestNewRegionRejectsOutOfBounds(t *testing.T) {
	x := linspace(-1, 1, 4)
	y := linspace(-1, 1, 4)
	z := linspace(-1, 1, 4)
	_, err := NewRegion(14, 14, x, y, z, lumRamp(4), 16, 16)
	if err != ErrOutOfBounds {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

func TestBisectSplitsVoxelsExactly(t *testing.T) {
	for _, dims := range [][3]int{{8, 8, 8}, {3, 5, 7}, {1, 1, 4}, {2, 1, 1}} {
		x := linspace(-1, 1, dims[0])
		y := linspace(-1, 1, dims[1])
		z := linspace(-1, 1, dims[2])
		r, err := NewRegion(0, 0, x, y, z, lumRamp(dims[2]), 64, 64)
		if err != nil {
			t.Fatalf("dims %v: %v", dims, err)
		}

		a, b, err := Bisect(r)
		if err != nil {
			t.Fatalf("dims %v: %v", dims, err)
		}
		if a.Voxels+b.Voxels != r.Voxels {
			t.Errorf("dims %v: a.Voxels+b.Voxels = %d, want %d", dims, a.Voxels+b.Voxels, r.Voxels)
		}
		if a.Voxels == 0 || b.Voxels == 0 {
			t.Errorf("dims %v: bisect produced an empty half (a=%d b=%d)", dims, a.Voxels, b.Voxels)
		}
	}
}

func TestBisectRejectsSingleVoxel(t *testing.T) {
	r, err := NewRegion(0, 0, linspace(-1, 1, 1), linspace(-1, 1, 1), linspace(-1, 1, 1), lumRamp(1), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := Bisect(r); err != ErrNotBisectable {
		t.Fatalf("got %v, want ErrNotBisectable", err)
	}
}

func TestBisectPrefersZThenYThenX(t *testing.T) {
	r, err := NewRegion(0, 0, linspace(-1, 1, 2), linspace(-1, 1, 2), linspace(-1, 1, 4), lumRamp(4), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	if r.longestAxis() != axisZ {
		t.Errorf("expected Z to win with NK=4 > NI=NJ=2")
	}

	r2, _ := NewRegion(0, 0, linspace(-1, 1, 2), linspace(-1, 1, 2), linspace(-1, 1, 2), lumRamp(2), 8, 8)
	if r2.longestAxis() != axisZ {
		t.Errorf("expected Z to win ties")
	}

	r3, _ := NewRegion(0, 0, linspace(-1, 1, 2), linspace(-1, 1, 2), linspace(-1, 1, 1), lumRamp(1), 8, 8)
	if r3.longestAxis() != axisY {
		t.Errorf("expected Y to win an X/Y tie")
	}
}

func TestFootprintXYMatchesCorners(t *testing.T) {
	r, err := NewRegion(0, 0, linspace(-2, 3, 4), linspace(-1, 1, 2), linspace(0, 1, 1), lumRamp(1), 8, 8)
	if err != nil {
		t.Fatal(err)
	}
	ll, ur := r.FootprintXY()
	if ll.X != -2 || ll.Y != -1 || ur.X != 3 || ur.Y != 1 {
		t.Errorf("got ll=%v ur=%v, want ll=(-2,-1) ur=(3,1)", ll, ur)
	}
}
