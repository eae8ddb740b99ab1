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

import "seehuhn.de/go/geom/rect"

// Image8 is a row-major 8-bit height-field image. The zero value is not
// usable; construct with NewImage8. Pixel writes are monotone non-decreasing
// for the lifetime of a render.
type Image8 struct {
	Width, Height int
	Pix           []uint8 // row-major, len == Width*Height
}

// NewImage8 allocates a zeroed Width x Height image.
func NewImage8(width, height int) *Image8 {
	return &Image8{Width: width, Height: height, Pix: make([]uint8, width*height)}
}

// At returns the luminance at pixel (col, row).
func (img *Image8) At(col, row int) uint8 { return img.Pix[row*img.Width+col] }

// Footprint returns the image bounds as a rect.Rect, for clipping regions
// against the image the way a path gets clipped against its own output
// rectangle.
func (img *Image8) Footprint() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(img.Width), URy: float64(img.Height)}
}

// Image16 is the 16-bit counterpart of Image8.
type Image16 struct {
	Width, Height int
	Pix           []uint16
}

// NewImage16 allocates a zeroed Width x Height image.
func NewImage16(width, height int) *Image16 {
	return &Image16{Width: width, Height: height, Pix: make([]uint16, width*height)}
}

// At returns the luminance at pixel (col, row).
func (img *Image16) At(col, row int) uint16 { return img.Pix[row*img.Width+col] }

// Footprint returns the image bounds as a rect.Rect.
func (img *Image16) Footprint() rect.Rect {
	return rect.Rect{LLx: 0, LLy: 0, URx: float64(img.Width), URy: float64(img.Height)}
}

// RGBImage is a row-major, 3-channel 8-bit image written by Shaded8.
type RGBImage struct {
	Width, Height int
	Pix           []uint8 // row-major, stride 3, len == Width*Height*3
}

// NewRGBImage allocates a zeroed Width x Height RGB image.
func NewRGBImage(width, height int) *RGBImage {
	return &RGBImage{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// Set writes the colour at pixel (col, row).
func (img *RGBImage) Set(col, row int, r, g, b uint8) {
	i := (row*img.Width + col) * 3
	img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
}
