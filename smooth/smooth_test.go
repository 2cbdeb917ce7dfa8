// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package smooth

import (
	"errors"
	"fmt"
	"image"
	"math/rand"
	"testing"

	"rescribe.xyz/bwsmooth"
)

func noise(w, h int, seed int64) *image.Gray {
	r := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(r.Intn(256))
	}
	return img
}

func TestProcessDimensions(t *testing.T) {
	sizes := []struct {
		w, h int
	}{
		{1, 1},
		{2, 1},
		{3, 7},
		{10, 10},
		{31, 17},
	}

	for _, c := range []bwsmooth.Config{bwsmooth.Basic, bwsmooth.HighRes} {
		for _, s := range sizes {
			t.Run(fmt.Sprintf("%s_%dx%d", c.Name, s.w, s.h), func(t *testing.T) {
				got, err := Process(noise(s.w, s.h, 1), c)
				if err != nil {
					t.Fatalf("Error processing image: %v", err)
				}
				want := image.Rect(0, 0, s.w, s.h)
				if !got.Bounds().Eq(want) {
					t.Fatalf("Expected bounds %v, got %v", want, got.Bounds())
				}
			})
		}
	}
}

func TestBasicIsTwoLevel(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		t.Run(fmt.Sprintf("seed%d", seed), func(t *testing.T) {
			got, err := Process(noise(40, 30, seed), bwsmooth.Basic)
			if err != nil {
				t.Fatalf("Error processing image: %v", err)
			}
			if _, ok := got.(*image.Paletted); !ok {
				t.Fatalf("Expected a paletted image, got %T", got)
			}
			for l := range levels(got) {
				if l != 0 && l != 255 {
					t.Fatalf("Found grey level %d in basic output", l)
				}
			}
		})
	}
}

func TestConstantFill(t *testing.T) {
	cases := []struct {
		v     uint8
		white bool
	}{
		{0, false},
		{50, false},
		{127, false},
		{128, false},
		{200, true},
		{255, true},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("basic_%d", c.v), func(t *testing.T) {
			got, err := Process(filled(12, 9, c.v), bwsmooth.Basic)
			if err != nil {
				t.Fatalf("Error processing image: %v", err)
			}
			want := uint8(0)
			if c.white {
				want = 255
			}
			l := levels(got)
			if len(l) != 1 || !l[want] {
				t.Fatalf("Expected only level %d, got %v", want, l)
			}
		})
	}

	// The highres threshold is 140; resampling can shift the result
	// by a level, so only check each side is close to black or white.
	for _, v := range []uint8{0, 50, 200, 255} {
		t.Run(fmt.Sprintf("highres_%d", v), func(t *testing.T) {
			got, err := Process(filled(12, 9, v), bwsmooth.HighRes)
			if err != nil {
				t.Fatalf("Error processing image: %v", err)
			}
			for l := range levels(got) {
				if v > 140 && l < 250 {
					t.Fatalf("Expected near white output, found level %d", l)
				}
				if v <= 140 && l > 5 {
					t.Fatalf("Expected near black output, found level %d", l)
				}
			}
		})
	}
}

func TestSplitImage(t *testing.T) {
	img := split(10, 10, 200, 50)
	got, err := Process(img, bwsmooth.Basic)
	if err != nil {
		t.Fatalf("Error processing image: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 4; x++ {
			if v := grayAt(got, x, y); v != 255 {
				t.Errorf("Expected white at %d,%d, got %d", x, y, v)
			}
		}
		for x := 6; x < 10; x++ {
			if v := grayAt(got, x, y); v != 0 {
				t.Errorf("Expected black at %d,%d, got %d", x, y, v)
			}
		}
	}
}

func TestHighResFactors(t *testing.T) {
	maxf := 6
	if testing.Short() {
		maxf = 2
	}
	img := split(13, 7, 220, 30)
	for f := 1; f <= maxf; f++ {
		t.Run(fmt.Sprintf("x%d", f), func(t *testing.T) {
			c := bwsmooth.HighRes
			c.UpscaleFactor = f
			got, err := Process(img, c)
			if err != nil {
				t.Fatalf("Error processing image: %v", err)
			}
			if _, ok := got.(*image.Gray); !ok {
				t.Fatalf("Expected a grey image, got %T", got)
			}
			if !got.Bounds().Eq(img.Bounds()) {
				t.Fatalf("Expected bounds %v, got %v", img.Bounds(), got.Bounds())
			}
			if v := grayAt(got, 0, 3); v < 200 {
				t.Errorf("Expected left edge to be white, got %d", v)
			}
			if v := grayAt(got, 12, 3); v > 55 {
				t.Errorf("Expected right edge to be black, got %d", v)
			}
			aa := false
			for x := 4; x <= 8; x++ {
				if v := grayAt(got, x, 3); v > 0 && v < 255 {
					aa = true
				}
			}
			if !aa {
				t.Errorf("Expected an intermediate grey level along the boundary")
			}
		})
	}
}

func TestProcessErrors(t *testing.T) {
	badThresh := bwsmooth.Basic
	badThresh.Threshold = 300
	badUpscale := bwsmooth.HighRes
	badUpscale.UpscaleFactor = -1
	hugeUpscale := bwsmooth.HighRes
	hugeUpscale.UpscaleFactor = bwsmooth.MaxUpscale + 1

	cases := []struct {
		name  string
		img   *image.Gray
		c     bwsmooth.Config
		empty bool
	}{
		{"zerowidth", image.NewGray(image.Rect(0, 0, 0, 5)), bwsmooth.Basic, true},
		{"zeroheight", image.NewGray(image.Rect(0, 0, 5, 0)), bwsmooth.HighRes, true},
		{"threshold", filled(4, 4, 10), badThresh, false},
		{"upscale", filled(4, 4, 10), badUpscale, false},
		{"hugeupscale", filled(4, 4, 10), hugeUpscale, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Process(c.img, c.c)
			if err == nil {
				t.Fatalf("Expected an error, got none")
			}
			if errors.Is(err, ErrEmptyImage) != c.empty {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestProcessTooLarge(t *testing.T) {
	c := bwsmooth.HighRes
	c.UpscaleFactor = bwsmooth.MaxUpscale

	// 1100*16 x 1000*16 is just over MaxPixels
	_, err := Process(filled(1100, 1000, 10), c)
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Expected ErrTooLarge, got %v", err)
	}

	// the size check only applies when upscaling
	out, err := Process(filled(1100, 1000, 10), bwsmooth.Basic)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.Bounds() != image.Rect(0, 0, 1100, 1000) {
		t.Fatalf("Unexpected bounds %v", out.Bounds())
	}
}
