// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package convert

import (
	"image"
	"log"
	"path/filepath"

	"rescribe.xyz/bwsmooth"
)

// ArgsChooser is a Chooser which doesn't ask the user anything,
// instead using paths that are already known, such as from the
// command line. If Out is empty the default name is used, in the
// same directory as In.
type ArgsChooser struct {
	In, Out string
}

func (a ArgsChooser) ChooseOpenPath() (string, error) {
	return a.In, nil
}

func (a ArgsChooser) ChooseSavePath(defaultName string) (string, error) {
	if a.Out != "" {
		return a.Out, nil
	}
	return filepath.Join(filepath.Dir(a.In), defaultName), nil
}

// LogNotifier notifies by writing to a logger
type LogNotifier struct {
	Logger *log.Logger
}

func (n LogNotifier) Notify(message string) {
	n.Logger.Println(message)
}

// Local combines an ArgsChooser and LogNotifier, for running a
// conversion without any interaction
type Local struct {
	ArgsChooser
	LogNotifier
}

// FilePreviewer saves a preview of the original and converted images
// next to each other as a PNG at Path
type FilePreviewer struct {
	Path string
}

func (f FilePreviewer) Preview(original, processed image.Image) error {
	return Save(f.Path, SideBySide(original, processed, bwsmooth.PreviewBox))
}
