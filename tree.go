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

import "github.com/soypat/glgl/math/ms3"

// Tree is the external math-tree collaborator: an evaluation tree over a
// scalar field f(x,y,z). Parsing, construction, and the concrete evaluation
// strategy are outside this package's scope — Tree only describes the
// contract the rasteriser drives.
//
// A Tree's Disable/DisableBinary/Enable calls are a LIFO gate: a Disable
// optionally followed by a DisableBinary forms one pruning pass, and that
// whole pass — however many of the two calls it made — must be matched by
// exactly one Enable before the caller's path returns control to a caller
// that might probe the tree again. A single Tree value must not be
// evaluated by two concurrent renders, since disabling is a mutation of
// shared internal state.
type Tree interface {
	// EvalInterval returns a sound enclosure of f over the box
	// [x.Lower,x.Upper] x [y.Lower,y.Upper] x [z.Lower,z.Upper].
	EvalInterval(x, y, z Interval) Interval

	// EvalBulk evaluates f at each point in pts, writing the results to
	// out. len(out) must equal len(pts); the caller owns both slices.
	EvalBulk(pts []ms3.Vec, out []float32)

	// Disable temporarily disables subtrees proven irrelevant to the sign
	// of f over the box of the most recent EvalInterval call.
	Disable()

	// DisableBinary is a second, independent pruning pass over binary
	// nodes, run after Disable.
	DisableBinary()

	// Enable reverses the most recent matching Disable/DisableBinary pair.
	Enable()
}
