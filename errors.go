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

import "errors"

// Sentinel errors returned by Region construction and bisection. A render
// call itself never returns an error: an unhaltable, malformed region is
// simply refused at construction time, and halting is a normal return, not
// a failure.
var (
	// ErrNonMonotonic is returned when a Region's sample grid along some
	// axis is not strictly monotonic.
	ErrNonMonotonic = errors.New("render: sample grid is not strictly monotonic")

	// ErrOutOfBounds is returned when a Region's pixel footprint would
	// write outside its image.
	ErrOutOfBounds = errors.New("render: region footprint exceeds image bounds")

	// ErrBadExtent is returned when a Region's extents don't match the
	// length of its sample arrays.
	ErrBadExtent = errors.New("render: sample grid length does not match region extent")

	// ErrNotBisectable is returned by Bisect when called on a region with
	// fewer than two voxels; such a region has no valid split.
	ErrNotBisectable = errors.New("render: region has no axis left to bisect")
)
