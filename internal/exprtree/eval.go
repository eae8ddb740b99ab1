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

package exprtree

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"

	"github.com/mikest/antimony-render"
)

// EvalInterval returns a sound enclosure of the tree over the given box. It
// also caches each node's interval in lastIv, which Disable and
// DisableBinary use to find provably-irrelevant subtrees.
//
// A min/max node whose sibling subtree was disabled by the most recent
// Disable/DisableBinary call skips the disabled side entirely: its own
// enclosure is exactly the surviving side's, since the surviving side was
// already proven to dominate pointwise across the superset box that led to
// the disable.
func (t *Tree) EvalInterval(x, y, z render.Interval) render.Interval {
	return t.evalInterval(t.root, x, y, z)
}

func (t *Tree) evalInterval(n *node, x, y, z render.Interval) render.Interval {
	var iv render.Interval
	switch n.kind {
	case kX:
		iv = x
	case kY:
		iv = y
	case kZ:
		iv = z
	case kConst:
		iv = render.Point(n.val)
	case kAdd:
		a, b := t.evalInterval(n.a, x, y, z), t.evalInterval(n.b, x, y, z)
		iv = render.Interval{Lower: a.Lower + b.Lower, Upper: a.Upper + b.Upper}
	case kSub:
		a, b := t.evalInterval(n.a, x, y, z), t.evalInterval(n.b, x, y, z)
		iv = render.Interval{Lower: a.Lower - b.Upper, Upper: a.Upper - b.Lower}
	case kMul:
		a, b := t.evalInterval(n.a, x, y, z), t.evalInterval(n.b, x, y, z)
		iv = mulInterval(a, b)
	case kMin:
		if t.disabled.Test(n.b.id) {
			iv = t.evalInterval(n.a, x, y, z)
			break
		}
		if t.disabled.Test(n.a.id) {
			iv = t.evalInterval(n.b, x, y, z)
			break
		}
		a, b := t.evalInterval(n.a, x, y, z), t.evalInterval(n.b, x, y, z)
		iv = render.Interval{Lower: math32.Min(a.Lower, b.Lower), Upper: math32.Min(a.Upper, b.Upper)}
	case kMax:
		if t.disabled.Test(n.b.id) {
			iv = t.evalInterval(n.a, x, y, z)
			break
		}
		if t.disabled.Test(n.a.id) {
			iv = t.evalInterval(n.b, x, y, z)
			break
		}
		a, b := t.evalInterval(n.a, x, y, z), t.evalInterval(n.b, x, y, z)
		iv = render.Interval{Lower: math32.Max(a.Lower, b.Lower), Upper: math32.Max(a.Upper, b.Upper)}
	case kSqrt:
		a := t.evalInterval(n.a, x, y, z)
		lo, up := a.Lower, a.Upper
		if lo < 0 {
			lo = 0
		}
		if up < 0 {
			up = 0
		}
		iv = render.Interval{Lower: math32.Sqrt(lo), Upper: math32.Sqrt(up)}
	case kNeg:
		a := t.evalInterval(n.a, x, y, z)
		iv = render.Interval{Lower: -a.Upper, Upper: -a.Lower}
	}
	n.lastIv = iv
	return iv
}

func mulInterval(a, b render.Interval) render.Interval {
	p1, p2 := a.Lower*b.Lower, a.Lower*b.Upper
	p3, p4 := a.Upper*b.Lower, a.Upper*b.Upper
	lo := math32.Min(math32.Min(p1, p2), math32.Min(p3, p4))
	up := math32.Max(math32.Max(p1, p2), math32.Max(p3, p4))
	return render.Interval{Lower: lo, Upper: up}
}

// EvalBulk evaluates the tree at every point in pts, writing results to
// out. len(out) must equal len(pts).
func (t *Tree) EvalBulk(pts []ms3.Vec, out []float32) {
	for i, p := range pts {
		out[i] = t.evalAt(t.root, p)
	}
}

func (t *Tree) evalAt(n *node, p ms3.Vec) float32 {
	switch n.kind {
	case kX:
		return p.X
	case kY:
		return p.Y
	case kZ:
		return p.Z
	case kConst:
		return n.val
	case kAdd:
		return t.evalAt(n.a, p) + t.evalAt(n.b, p)
	case kSub:
		return t.evalAt(n.a, p) - t.evalAt(n.b, p)
	case kMul:
		// A disabled operand here was proven to have a zero interval
		// across the enclosing box, so the product is zero everywhere
		// in it regardless of the other operand's value.
		if t.disabled.Test(n.a.id) || t.disabled.Test(n.b.id) {
			return 0
		}
		return t.evalAt(n.a, p) * t.evalAt(n.b, p)
	case kMin:
		if t.disabled.Test(n.b.id) {
			return t.evalAt(n.a, p)
		}
		if t.disabled.Test(n.a.id) {
			return t.evalAt(n.b, p)
		}
		return math32.Min(t.evalAt(n.a, p), t.evalAt(n.b, p))
	case kMax:
		if t.disabled.Test(n.b.id) {
			return t.evalAt(n.a, p)
		}
		if t.disabled.Test(n.a.id) {
			return t.evalAt(n.b, p)
		}
		return math32.Max(t.evalAt(n.a, p), t.evalAt(n.b, p))
	case kSqrt:
		v := t.evalAt(n.a, p)
		if v < 0 {
			v = 0
		}
		return math32.Sqrt(v)
	case kNeg:
		return -t.evalAt(n.a, p)
	}
	return 0
}
