// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package smooth

import (
	"image"

	"github.com/disintegration/gift"
)

// smoothMoreKernel is a 5x5 weighted average which keeps most of the
// weight on the centre pixel
var smoothMoreKernel = []float32{
	1, 1, 1, 1, 1,
	1, 5, 5, 5, 1,
	1, 5, 44, 5, 1,
	1, 5, 5, 5, 1,
	1, 1, 1, 1, 1,
}

// apply runs a chain of gift filters over a grey image, returning a
// new grey image
func apply(img *image.Gray, filters ...gift.Filter) *image.Gray {
	g := gift.New(filters...)
	dst := image.NewGray(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// Median replaces each pixel with the median of the size x size square
// around it. Pixels beyond the edge of the image are taken to be the
// same as the nearest edge pixel.
func Median(img *image.Gray, size int) *image.Gray {
	return apply(img, gift.Median(size, false))
}

// Blur applies a Gaussian blur with the standard deviation sigma
func Blur(img *image.Gray, sigma float64) *image.Gray {
	return apply(img, gift.GaussianBlur(float32(sigma)))
}

// MedianBlur is Median followed by Blur, done in a single pass
// through gift
func MedianBlur(img *image.Gray, size int, sigma float64) *image.Gray {
	return apply(img, gift.Median(size, false), gift.GaussianBlur(float32(sigma)))
}

// SmoothMore applies a gentle 5x5 smoothing to an image
func SmoothMore(img *image.Gray) *image.Gray {
	return apply(img, gift.Convolution(smoothMoreKernel, true, false, false, 0))
}
