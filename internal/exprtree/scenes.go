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

// Sphere returns the signed-distance expression for a sphere of radius r
// centred at (cx, cy, cz): negative inside, zero on the surface.
func Sphere(cx, cy, cz, r float32) Expr {
	dx := Sub(X(), Const(cx))
	dy := Sub(Y(), Const(cy))
	dz := Sub(Z(), Const(cz))
	sq := Add(Add(Mul(dx, dx), Mul(dy, dy)), Mul(dz, dz))
	return Sub(Sqrt(sq), Const(r))
}

// Plane returns the signed half-space expression nx*x + ny*y + nz*z - d,
// negative on the side the unit normal (nx, ny, nz) points away from.
func Plane(nx, ny, nz, d float32) Expr {
	return Sub(Add(Add(Mul(Const(nx), X()), Mul(Const(ny), Y())), Mul(Const(nz), Z())), Const(d))
}

// Torus returns the signed-distance expression for a torus centred on the
// origin, lying in the XY plane, with major radius R and minor radius r.
func Torus(majorR, minorR float32) Expr {
	q := Sub(Sqrt(Add(Mul(X(), X()), Mul(Y(), Y()))), Const(majorR))
	return Sub(Sqrt(Add(Mul(q, q), Mul(Z(), Z()))), Const(minorR))
}

// Union returns the expression for the union of two solids: the pointwise
// minimum of their signed distances.
func Union(a, b Expr) Expr { return Min(a, b) }

// Intersect returns the expression for the intersection of two solids: the
// pointwise maximum of their signed distances.
func Intersect(a, b Expr) Expr { return Max(a, b) }

// Subtract returns the expression for a minus b: the intersection of a
// with the complement of b.
func Subtract(a, b Expr) Expr { return Max(a, Neg(b)) }
