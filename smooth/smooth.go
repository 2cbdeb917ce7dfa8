// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// smooth contains the filters which make up the black and white
// smoothing conversion, and Process, which runs them in order.
package smooth

import (
	"errors"
	"fmt"
	"image"

	"rescribe.xyz/bwsmooth"
)

// ErrEmptyImage is returned when an image has no width or height
var ErrEmptyImage = errors.New("image has zero width or height")

// ErrTooLarge is returned when upscaling would make an image bigger
// than bwsmooth.MaxPixels
var ErrTooLarge = errors.New("upscaled image would be too large")

// Process converts a grey image into a smoothed black and white image
// of the same size, according to the settings in c.
//
// Without an upscale factor the result is a two colour *image.Paletted,
// which will be encoded as a 1-bit PNG. With one the result is an
// *image.Gray, as scaling the thresholded image back down reintroduces
// grey levels along the edges.
func Process(img *image.Gray, c bwsmooth.Config) (image.Image, error) {
	err := c.Validate()
	if err != nil {
		return nil, fmt.Errorf("Error with settings: %w", err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmptyImage
	}

	if !c.HighResolution() {
		return basic(img, c), nil
	}

	f := int64(c.UpscaleFactor)
	if int64(b.Dx())*f*int64(b.Dy())*f > bwsmooth.MaxPixels {
		return nil, fmt.Errorf("Error upscaling %dx%d image %d times: %w", b.Dx(), b.Dy(), c.UpscaleFactor, ErrTooLarge)
	}
	return highres(img, c), nil
}

func basic(img *image.Gray, c bwsmooth.Config) *image.Paletted {
	clean := MedianBlur(img, bwsmooth.MedianSize, c.BlurSigma)
	return Threshold(clean, uint8(c.Threshold))
}

func highres(img *image.Gray, c bwsmooth.Config) *image.Gray {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	big := Resize(img, w*c.UpscaleFactor, h*c.UpscaleFactor)
	big = MedianBlur(big, bwsmooth.MedianSize, c.BlurSigma)
	big = ThresholdGray(big, uint8(c.Threshold))

	small := Resize(big, w, h)
	return SmoothMore(small)
}
