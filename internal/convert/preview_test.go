// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package convert

import (
	"fmt"
	"image"
	"testing"
)

func TestThumbnail(t *testing.T) {
	cases := []struct {
		w, h   int
		tw, th int
	}{
		{100, 50, 100, 50},
		{300, 300, 300, 300},
		{600, 300, 300, 150},
		{300, 900, 100, 300},
		{1000, 1, 300, 1},
		{1234, 567, 300, 138},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%dx%d", c.w, c.h), func(t *testing.T) {
			img := image.NewGray(image.Rect(0, 0, c.w, c.h))
			got := Thumbnail(img, 300, 300).Bounds()
			if got.Dx() != c.tw || got.Dy() != c.th {
				t.Fatalf("Expected %dx%d, got %dx%d", c.tw, c.th, got.Dx(), got.Dy())
			}
		})
	}
}

func TestSideBySide(t *testing.T) {
	orig := image.NewGray(image.Rect(0, 0, 600, 400))
	done := image.NewGray(image.Rect(0, 0, 600, 400))

	got := SideBySide(orig, done, 300).Bounds()
	w := 300*2 + previewPadding*3
	h := 200 + previewPadding*2
	if got.Dx() != w || got.Dy() != h {
		t.Fatalf("Expected %dx%d, got %dx%d", w, h, got.Dx(), got.Dy())
	}
}

func TestArgsChooser(t *testing.T) {
	cases := []struct {
		in, out string
		want    string
	}{
		{"/a/b/pic.png", "", "/a/b/pic_black_white_smooth.png"},
		{"/a/b/pic.png", "/c/out.png", "/c/out.png"},
		{"pic.png", "", "pic_black_white_smooth.png"},
	}

	for _, c := range cases {
		t.Run(c.in+"_"+c.out, func(t *testing.T) {
			a := ArgsChooser{In: c.in, Out: c.out}
			in, err := a.ChooseOpenPath()
			if err != nil || in != c.in {
				t.Fatalf("Expected %s, got %s (%v)", c.in, in, err)
			}
			got, err := a.ChooseSavePath("pic_black_white_smooth.png")
			if err != nil {
				t.Fatalf("Error choosing save path: %v", err)
			}
			if got != c.want {
				t.Fatalf("Expected %s, got %s", c.want, got)
			}
		})
	}
}
