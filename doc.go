// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

/*
The bwsmooth package contains tools and functions to turn a scanned or drawn
image into a clean black and white image, with smooth edges rather than the
jagged "staircase" edges a plain threshold gives. It is intended for line
art, signatures, logos and the like, which need to be black and white for
printing, cutting or further processing.

# Introduction

The conversion is a short chain of filters, applied to a greyscale version
of the input image:

  - A 3x3 median filter, which removes isolated specks of noise without
    moving any edges
  - A small Gaussian blur, which softens the jagged transitions between
    light and dark areas
  - A threshold, which makes every pixel lighter than the cutoff white, and
    every other pixel black

There are two variants of the conversion, called "basic" and "highres".
The basic variant produces a true 1-bit image, using a threshold of 128.
The highres variant first upscales the image 4 times with a Lanczos filter,
so that the blur and threshold operate at a higher resolution, then scales
the thresholded image back down to its original size and smooths it once
more. Its threshold is 140. The result of the highres variant is therefore
not strictly two levelled; there will be some grey pixels along the edges,
which give it an anti-aliased appearance. This is intentional.

Both variants are described by a Config, and can be selected by name with
the Variant function. The defaults for each are in settings.go.

Neither variant is idempotent; running the conversion again on its own
output can move edge pixels.

# Using bwsmooth

The bwsmooth command, which is part of the rescribe.xyz/bwsmooth package,
can be installed like this:

	go install rescribe.xyz/bwsmooth/cmd/bwsmooth@latest

Run without any arguments it starts a small graphical program, with a
button to choose an image. Once the image is converted a preview of the
original and converted image is shown, and a save dialog is opened,
suggesting a file name based on the original one. The preview can be
closed at any time.

It can also be used without the graphical window, either with the native
file dialogs of the operating system:

	bwsmooth -native

or entirely from the command line:

	bwsmooth -variant highres drawing.png

which will save the result as drawing_bw_smooth_highres.png. Use the '-h'
flag for information on the other options, which include writing a PDF of
the result and a histogram of the image intensities with the threshold
marked, which can be helpful in choosing a threshold for difficult images.
*/
package bwsmooth
