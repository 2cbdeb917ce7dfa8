// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package smooth

import (
	"image"
	"image/color"
)

// filled returns a w x h grey image with every pixel set to v
func filled(w, h int, v uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = v
	}
	return img
}

// split returns a w x h grey image with the left half set to left
// and the right half set to right
func split(w, h int, left, right uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.SetGray(x, y, color.Gray{left})
			} else {
				img.SetGray(x, y, color.Gray{right})
			}
		}
	}
	return img
}

// levels returns the set of distinct grey values in an image
func levels(img image.Image) map[uint8]bool {
	l := make(map[uint8]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			l[color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y] = true
		}
	}
	return l
}

// grayAt returns the grey value of a pixel in any image
func grayAt(img image.Image, x, y int) uint8 {
	return color.GrayModel.Convert(img.At(x, y)).(color.Gray).Y
}
