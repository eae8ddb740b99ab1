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

// Package render renders implicit solids f(x,y,z) < 0 into a 2.5-D
// height-field image by recursively subdividing an axis-aligned region of
// space, culling subregions with interval arithmetic, and falling back to
// direct per-voxel evaluation once a region is small enough.
//
// The math tree itself — parsing, construction, and the low-level
// eval_i/eval_r evaluators — is treated as an external collaborator and
// described by the Tree interface. [internal/exprtree] ships a small
// reference implementation used by this package's own tests and by
// [cmd/antimony-render].
package render
