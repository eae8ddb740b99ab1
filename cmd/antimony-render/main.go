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

// Command antimony-render renders a small fixed library of implicit solids
// (see internal/exprtree) to a height-field or shaded image, as a
// demonstration of the render package.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"sync/atomic"

	"github.com/chai2010/webp"
	"github.com/xfmoulet/qoi"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"

	"github.com/mikest/antimony-render"
	"github.com/mikest/antimony-render/export"
	"github.com/mikest/antimony-render/internal/exprtree"
)

func main() {
	scene := flag.String("scene", "sphere", "scene to render: sphere, union, torus")
	size := flag.Int("size", 256, "output image size in pixels")
	depth := flag.Int("depth", 8, "height-field bit depth: 8 or 16")
	format := flag.String("format", "png", "output image format: png, qoi, or webp")
	out := flag.String("out", "render.png", "output file path")
	minVolume := flag.Int("min-volume", 64, "voxel count threshold for leaf rasterisation")
	prune := flag.Bool("prune", true, "enable interval-pruning of the math tree")
	shaded := flag.Bool("shaded", false, "write a shaded normal image instead of a height field")
	upscale := flag.Int("upscale", 0, "if >0, bilinear-upscale the output to this size for inspection")
	raw := flag.String("raw", "", "if set with -depth 16 (and without -shaded), also write a zstd-compressed raw 16-bit height field to this path")
	describe := flag.Bool("describe", false, "print the region's world-space and pixel footprint to stderr before rendering")
	flag.Parse()

	if *depth != 8 && *depth != 16 {
		log.Fatalf("invalid -depth %d: must be 8 or 16", *depth)
	}

	tree := exprtree.New(sceneByName(*scene))

	n := 64
	x := axisSamples(-1.5, 1.5, n)
	y := axisSamples(-1.5, 1.5, n)
	z := axisSamples(-1.5, 1.5, n)
	region, err := render.NewRegion(0, 0, x, y, z, lumTable16(n), *size, *size)
	if err != nil {
		log.Fatalf("building region: %v", err)
	}

	r := render.NewRenderer()
	r.MinVolume = *minVolume
	r.Prune = *prune

	var halt atomic.Bool
	var img image.Image
	switch {
	case *shaded:
		depth8 := render.NewImage8(*size, *size)
		if *describe {
			describeFootprint(region, depth8)
		}
		r.Render8(tree, region, depth8, &halt)
		rgb := render.NewRGBImage(*size, *size)
		r.Shaded8(tree, region, depth8, rgb, &halt)
		img = rgbImageToGoImage(rgb)
	case *depth == 16:
		img16 := render.NewImage16(*size, *size)
		if *describe {
			describeFootprint(region, img16)
		}
		r.Render16(tree, region, img16, &halt)
		if *raw != "" {
			if err := writeRaw(*raw, img16); err != nil {
				log.Fatalf("writing raw height field: %v", err)
			}
		}
		img = image16ToGoImage(img16)
	default:
		img8 := render.NewImage8(*size, *size)
		if *describe {
			describeFootprint(region, img8)
		}
		r.Render8(tree, region, img8, &halt)
		img = image8ToGoImage(img8)
	}

	if *upscale > 0 {
		img = upscaleImage(img, *upscale)
	}

	if err := writeImage(*out, *format, img); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}

// footprintImage is satisfied by render.Image8 and render.Image16: any
// output buffer that can report its own pixel bounds.
type footprintImage interface {
	Footprint() rect.Rect
}

// describeFootprint prints a region's world-space (X, Y) extent alongside
// the destination image's pixel bounds, so a caller can sanity-check the
// mapping before committing to a long render.
func describeFootprint(region render.Region, img footprintImage) {
	ll, ur := region.FootprintXY()
	px := img.Footprint()
	fmt.Fprintf(os.Stderr, "footprint: world (%.3f, %.3f)-(%.3f, %.3f) -> pixels (%.0f, %.0f)-(%.0f, %.0f)\n",
		ll.X, ll.Y, ur.X, ur.Y, px.LLx, px.LLy, px.URx, px.URy)
}

func sceneByName(name string) exprtree.Expr {
	switch name {
	case "sphere":
		return exprtree.Sphere(0, 0, 0, 1)
	case "union":
		return exprtree.Union(exprtree.Sphere(-0.5, 0, 0, 0.8), exprtree.Sphere(0.5, 0, 0, 0.8))
	case "torus":
		return exprtree.Torus(0.8, 0.3)
	default:
		log.Fatalf("unknown scene %q: want sphere, union, or torus", name)
		return exprtree.Expr{}
	}
}

func axisSamples(lo, hi float32, n int) []float32 {
	out := make([]float32, n+1)
	for i := range out {
		out[i] = lo + (hi-lo)*float32(i)/float32(n)
	}
	return out
}

func lumTable16(n int) []uint16 {
	out := make([]uint16, n+1)
	for i := range out {
		out[i] = uint16(0xFFFF * i / n)
	}
	return out
}

func writeRaw(path string, img *render.Image16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return export.WriteRaw16(f, img)
}

func image8ToGoImage(src *render.Image8) image.Image {
	dst := image.NewGray(image.Rect(0, 0, src.Width, src.Height))
	for row := 0; row < src.Height; row++ {
		for col := 0; col < src.Width; col++ {
			dst.SetGray(col, row, color.Gray{Y: src.At(col, row)})
		}
	}
	return dst
}

func image16ToGoImage(src *render.Image16) image.Image {
	dst := image.NewGray16(image.Rect(0, 0, src.Width, src.Height))
	for row := 0; row < src.Height; row++ {
		for col := 0; col < src.Width; col++ {
			dst.SetGray16(col, row, color.Gray16{Y: src.At(col, row)})
		}
	}
	return dst
}

func rgbImageToGoImage(src *render.RGBImage) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, src.Width, src.Height))
	for row := 0; row < src.Height; row++ {
		for col := 0; col < src.Width; col++ {
			i := (row*src.Width + col) * 3
			dst.SetRGBA(col, row, color.RGBA{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: 255})
		}
	}
	return dst
}

func upscaleImage(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch format {
	case "png":
		return png.Encode(f, img)
	case "qoi":
		return qoi.Encode(f, img)
	case "webp":
		return webp.Encode(f, img, &webp.Options{Lossless: true})
	default:
		return fmt.Errorf("unknown format %q: want png, qoi, or webp", format)
	}
}
