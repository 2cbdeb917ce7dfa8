// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package convert

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

const previewPadding = 10

// Thumbnail scales an image down to fit within maxw x maxh, keeping
// its aspect ratio. Images which already fit are returned unchanged.
func Thumbnail(img image.Image, maxw, maxh int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxw && h <= maxh {
		return img
	}

	scale := math.Min(float64(maxw)/float64(w), float64(maxh)/float64(h))
	tw := int(math.Round(float64(w) * scale))
	th := int(math.Round(float64(h) * scale))
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	thumb := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(thumb, thumb.Bounds(), img, b, draw.Src, nil)
	return thumb
}

// SideBySide creates an image with thumbnails of the original and
// processed images next to each other, each fitted within box x box
func SideBySide(original, processed image.Image, box int) *image.RGBA {
	left := Thumbnail(original, box, box)
	right := Thumbnail(processed, box, box)
	lb, rb := left.Bounds(), right.Bounds()

	h := lb.Dy()
	if rb.Dy() > h {
		h = rb.Dy()
	}
	w := lb.Dx() + rb.Dx() + previewPadding*3

	canvas := image.NewRGBA(image.Rect(0, 0, w, h+previewPadding*2))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	lr := image.Rect(previewPadding, previewPadding, previewPadding+lb.Dx(), previewPadding+lb.Dy())
	draw.Draw(canvas, lr, left, lb.Min, draw.Src)

	x := lr.Max.X + previewPadding
	rr := image.Rect(x, previewPadding, x+rb.Dx(), previewPadding+rb.Dy())
	draw.Draw(canvas, rr, right, rb.Min, draw.Src)

	return canvas
}
