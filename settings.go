// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bwsmooth

// This file contains the default settings for each conversion variant;
// change these if you want different defaults.

// Basic variant
const (
	basicThreshold = 128
	basicSigma     = 1.0
	basicSuffix    = "_black_white_smooth"
)

// High resolution variant
const (
	highresThreshold = 140
	highresSigma     = 1.5
	highresUpscale   = 4
	highresSuffix    = "_bw_smooth_highres"
)

// MaxUpscale is the largest upscale factor accepted
const MaxUpscale = 16

// MaxPixels is the largest number of pixels an upscaled image may have
const MaxPixels = 1 << 28

// MedianSize is the width and height of the median filter neighbourhood
const MedianSize = 3

// PreviewBox is the size of the box each preview image is fitted inside
const PreviewBox = 300

// Notices shown to the user
const (
	NoticeNoImage  = "No image selected."
	NoticeNotSaved = "File not saved."
	NoticeSaved    = "Image saved to:\n%s"
)
