// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package smooth

import (
	"image"
	"image/color"
)

// Bilevel is the palette of a black and white image
var Bilevel = color.Palette{color.Gray{0}, color.Gray{255}}

// Threshold makes every pixel brighter than thresh white, and every
// other pixel black. The result uses the Bilevel palette.
func Threshold(img *image.Gray, thresh uint8) *image.Paletted {
	b := img.Bounds()
	new := image.NewPaletted(b, Bilevel)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > thresh {
				new.SetColorIndex(x, y, 1)
			} else {
				new.SetColorIndex(x, y, 0)
			}
		}
	}

	return new
}

// ThresholdGray is the same as Threshold, but keeps the result as an
// 8-bit grey image, so that it can be resampled smoothly afterwards
func ThresholdGray(img *image.Gray, thresh uint8) *image.Gray {
	b := img.Bounds()
	new := image.NewGray(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y > thresh {
				new.SetGray(x, y, color.Gray{255})
			} else {
				new.SetGray(x, y, color.Gray{0})
			}
		}
	}

	return new
}
