// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package smooth

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ToGray converts any image into a grey image with its origin at 0,0.
//
// Transparency is ignored, so a fully transparent white pixel becomes
// white rather than black.
func ToGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	if g, ok := img.(*image.Gray); ok {
		draw.Draw(gray, gray.Bounds(), g, b.Min, draw.Src)
		return gray
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			gray.SetGray(x-b.Min.X, y-b.Min.Y, luma(c))
		}
	}
	return gray
}

// luma uses the same weights as color.GrayModel, but on the colour
// values before any alpha is applied
func luma(c color.NRGBA) color.Gray {
	r, g, b := uint32(c.R), uint32(c.G), uint32(c.B)
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return color.Gray{uint8(y)}
}

// Resize resamples an image to w x h with a Lanczos filter
func Resize(img *image.Gray, w, h int) *image.Gray {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return ToGray(img)
	}
	return ToGray(imaging.Resize(img, w, h, imaging.Lanczos))
}
