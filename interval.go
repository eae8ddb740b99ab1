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

import "github.com/chewxy/math32"

// Interval is a sound enclosure [Lower, Upper] of a real value, as produced
// by a Tree's EvalInterval over an axis-aligned box. Lower must never be
// greater than Upper for a valid enclosure.
type Interval struct {
	Lower, Upper float32
}

// Point returns the degenerate interval enclosing exactly v.
func Point(v float32) Interval {
	return Interval{Lower: v, Upper: v}
}

// Sound reports whether the interval is a well-formed enclosure: neither
// bound is NaN, and Lower <= Upper.
func (iv Interval) Sound() bool {
	return !math32.IsNaN(iv.Lower) && !math32.IsNaN(iv.Upper) && iv.Lower <= iv.Upper
}

// IsStrictlyInside reports whether every value enclosed is negative, i.e.
// the interval certifies "entirely inside the solid".
func (iv Interval) IsStrictlyInside() bool {
	return iv.Upper < 0
}

// IsStrictlyOutside reports whether every value enclosed is non-negative,
// i.e. the interval certifies "entirely outside the solid".
func (iv Interval) IsStrictlyOutside() bool {
	return iv.Lower >= 0
}

// Width returns Upper - Lower.
func (iv Interval) Width() float32 {
	return iv.Upper - iv.Lower
}
