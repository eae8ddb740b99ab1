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

// Package exprtree is a small reference math tree: a scalar expression over
// x, y, z built from arithmetic and min/max nodes, evaluated either
// pointwise or as a sound interval enclosure. It exists to give the root
// render package something concrete to drive in its own tests and to back
// the command-line demo; it is not meant as a general-purpose CSG kernel.
package exprtree

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/mikest/antimony-render"
)

type kind uint8

const (
	kX kind = iota
	kY
	kZ
	kConst
	kAdd
	kSub
	kMul
	kMin
	kMax
	kSqrt
	kNeg
)

// node is one operation in the tree. Leaves (kX, kY, kZ, kConst) have nil
// children; kSqrt and kNeg are unary and use only a; every other kind is
// binary.
type node struct {
	id     uint
	kind   kind
	val    float32
	a, b   *node
	lastIv render.Interval // cached by the most recent EvalInterval walk
}

// Expr is a handle to a node, returned by the constructor functions and
// consumed by the binary/unary combinators. It carries no exported fields;
// build expressions with X, Y, Z, Const, and the combinators below, then
// hand the root to New.
type Expr struct{ n *node }

func leaf(k kind) Expr { return Expr{&node{kind: k}} }

// X, Y, and Z are the three coordinate axes.
func X() Expr { return leaf(kX) }
func Y() Expr { return leaf(kY) }
func Z() Expr { return leaf(kZ) }

// Const returns the constant expression v.
func Const(v float32) Expr { return Expr{&node{kind: kConst, val: v}} }

func binary(k kind, a, b Expr) Expr { return Expr{&node{kind: k, a: a.n, b: b.n}} }
func unary(k kind, a Expr) Expr     { return Expr{&node{kind: k, a: a.n}} }

// Add, Sub, Mul, Min, and Max combine two expressions.
func Add(a, b Expr) Expr { return binary(kAdd, a, b) }
func Sub(a, b Expr) Expr { return binary(kSub, a, b) }
func Mul(a, b Expr) Expr { return binary(kMul, a, b) }
func Min(a, b Expr) Expr { return binary(kMin, a, b) }
func Max(a, b Expr) Expr { return binary(kMax, a, b) }

// Sqrt and Neg transform a single expression.
func Sqrt(a Expr) Expr { return unary(kSqrt, a) }
func Neg(a Expr) Expr  { return unary(kNeg, a) }

// Tree is a built expression, ready to be evaluated through render.Tree.
// The zero value is not usable; build one with New.
type Tree struct {
	root  *node
	nodes []*node // indexed by node.id, used to size the disabled bitset

	disabled *bitset.BitSet
	// stack holds, per open pruning frame (a Disable plus any DisableBinary
	// merged into it), the ids it newly disabled; Enable pops and clears
	// the most recent entry. This
	// is the LIFO gate render.Tree's doc comment requires.
	stack [][]uint
}

// New numbers every node in root's expression in postorder and returns a
// Tree ready for repeated EvalInterval/EvalBulk calls.
func New(root Expr) *Tree {
	t := &Tree{root: root.n}
	t.number(t.root)
	t.disabled = bitset.New(uint(len(t.nodes)))
	return t
}

func (t *Tree) number(n *node) {
	if n == nil {
		return
	}
	t.number(n.a)
	t.number(n.b)
	n.id = uint(len(t.nodes))
	t.nodes = append(t.nodes, n)
}
