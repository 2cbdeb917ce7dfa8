// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// convert is a package used by the bwsmooth command, which handles
// the steps of a single conversion: choosing an image, converting it,
// previewing it and saving it. The file choosing, notification and
// preview parts are interfaces, so that the same process can be run
// from a graphical interface, native dialogs, or the command line.
// Note that it is considered an "internal" package, not intended for
// external use, and no guarantee is made of the stability of any
// interfaces provided.
package convert

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"path/filepath"

	"github.com/disintegration/imaging"
	"rescribe.xyz/bwsmooth"
	"rescribe.xyz/bwsmooth/smooth"
)

// Chooser asks the user for file paths. An empty path with a nil
// error means that the user cancelled.
type Chooser interface {
	ChooseOpenPath() (string, error)
	ChooseSavePath(defaultName string) (string, error)
}

type Notifier interface {
	Notify(message string)
}

type Interactor interface {
	Chooser
	Notifier
}

// Previewer shows the original and converted image to the user.
// Previews are informational only, so an error from one is logged
// rather than stopping the conversion.
type Previewer interface {
	Preview(original, processed image.Image) error
}

// null writer to enable non-verbose logging to be discarded
type NullWriter bool

func (w NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Load opens an image and converts it to greyscale
func Load(path string) (*image.Gray, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Error opening image %s: %w", path, err)
	}
	return smooth.ToGray(img), nil
}

// Save writes an image to path as a PNG
func Save(path string, img image.Image) error {
	err := imaging.Save(img, path, imaging.PNGCompressionLevel(png.BestCompression))
	if err != nil {
		return fmt.Errorf("Error saving image %s: %w", path, err)
	}
	return nil
}

// withExt adds a .png extension to a path which has none
func withExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".png"
	}
	return path
}

// Run does a full conversion, asking ui for the image to convert and
// where to save it, and returns the path the result was saved to.
// If the user cancels at either point they are notified, and an empty
// path and nil error are returned. p may be nil if no preview is
// wanted.
func Run(c bwsmooth.Config, ui Interactor, p Previewer, logger *log.Logger) (string, error) {
	in, err := ui.ChooseOpenPath()
	if err != nil {
		return "", fmt.Errorf("Error choosing image: %w", err)
	}
	if in == "" {
		logger.Println("No image selected")
		ui.Notify(bwsmooth.NoticeNoImage)
		return "", nil
	}

	logger.Println("Loading", in)
	img, err := Load(in)
	if err != nil {
		return "", err
	}

	logger.Printf("Converting %s with the %s settings\n", in, c.Name)
	bw, err := smooth.Process(img, c)
	if err != nil {
		return "", fmt.Errorf("Error converting %s: %w", in, err)
	}

	if p != nil {
		logger.Println("Showing preview")
		err = p.Preview(img, bw)
		if err != nil {
			logger.Println("Error showing preview:", err)
		}
	}

	out, err := ui.ChooseSavePath(c.DefaultName(in))
	if err != nil {
		return "", fmt.Errorf("Error choosing where to save: %w", err)
	}
	if out == "" {
		logger.Println("Saving cancelled")
		ui.Notify(bwsmooth.NoticeNotSaved)
		return "", nil
	}
	out = withExt(out)

	logger.Println("Saving", out)
	err = Save(out, bw)
	if err != nil {
		return "", err
	}
	ui.Notify(fmt.Sprintf(bwsmooth.NoticeSaved, out))

	return out, nil
}
