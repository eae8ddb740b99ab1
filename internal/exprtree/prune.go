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

import "github.com/mikest/antimony-render"

// Disable walks the tree looking at each min/max node's most recent
// EvalInterval result: if one operand's interval is entirely below (for
// min) or above (for max) the other's, that other operand can never win
// the comparison anywhere in the box just evaluated, so its whole subtree
// is disabled. The ids disabled by this call open a new frame on the undo
// stack; a DisableBinary call that follows merges into that same frame
// rather than opening its own, so the pair is undone by one Enable.
func (t *Tree) Disable() {
	var newlyDisabled []uint
	var rec func(n *node)
	rec = func(n *node) {
		if n == nil || t.disabled.Test(n.id) {
			return
		}
		switch n.kind {
		case kMin:
			if n.a.lastIv.Upper <= n.b.lastIv.Lower {
				t.disableSubtree(n.b, &newlyDisabled)
				rec(n.a)
				return
			}
			if n.b.lastIv.Upper <= n.a.lastIv.Lower {
				t.disableSubtree(n.a, &newlyDisabled)
				rec(n.b)
				return
			}
		case kMax:
			if n.a.lastIv.Lower >= n.b.lastIv.Upper {
				t.disableSubtree(n.b, &newlyDisabled)
				rec(n.a)
				return
			}
			if n.b.lastIv.Lower >= n.a.lastIv.Upper {
				t.disableSubtree(n.a, &newlyDisabled)
				rec(n.b)
				return
			}
		}
		rec(n.a)
		rec(n.b)
	}
	rec(t.root)
	t.stack = append(t.stack, newlyDisabled)
}

// DisableBinary is a second pruning pass, independent of Disable, over
// multiplications: if either operand's interval collapsed to exactly zero,
// the product is zero throughout the box regardless of the other operand,
// so both subtrees are disabled and evaluation of the node becomes a
// constant.
//
// Its finds are merged into the frame the most recent Disable call opened,
// rather than opening a second frame of their own: render.go always calls
// Disable and DisableBinary as one pruning pass ahead of a single matching
// Enable, so the two calls' disabled ids must be undone together. Calling
// DisableBinary with no open frame (on its own, without a preceding
// Disable) opens one.
func (t *Tree) DisableBinary() {
	var newlyDisabled []uint
	var rec func(n *node)
	rec = func(n *node) {
		if n == nil || t.disabled.Test(n.id) {
			return
		}
		if n.kind == kMul && (isZero(n.a.lastIv) || isZero(n.b.lastIv)) {
			t.disableSubtree(n.a, &newlyDisabled)
			t.disableSubtree(n.b, &newlyDisabled)
			return
		}
		rec(n.a)
		rec(n.b)
	}
	rec(t.root)

	if len(t.stack) == 0 {
		t.stack = append(t.stack, newlyDisabled)
		return
	}
	top := len(t.stack) - 1
	t.stack[top] = append(t.stack[top], newlyDisabled...)
}

func isZero(iv render.Interval) bool { return iv.Lower == 0 && iv.Upper == 0 }

// Enable reverses the most recent open frame: a Disable together with any
// DisableBinary merged into it, or a DisableBinary that opened its own.
func (t *Tree) Enable() {
	if len(t.stack) == 0 {
		return
	}
	last := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	for _, id := range last {
		t.disabled.Clear(id)
	}
}

func (t *Tree) disableSubtree(n *node, ids *[]uint) {
	if n == nil || t.disabled.Test(n.id) {
		return
	}
	t.disabled.Set(n.id)
	*ids = append(*ids, n.id)
	t.disableSubtree(n.a, ids)
	t.disableSubtree(n.b, ids)
}
