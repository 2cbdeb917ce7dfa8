// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"rescribe.xyz/bwsmooth"
	"rescribe.xyz/bwsmooth/internal/convert"
)

var pngFilter = storage.NewExtensionFileFilter([]string{".png", ".PNG"})

// fyneUI asks for files and shows notices with fyne dialogs. Its
// Choose methods block until the dialog is closed, so they must not
// be called from the fyne event loop.
type fyneUI struct {
	win fyne.Window
}

func (f fyneUI) ChooseOpenPath() (string, error) {
	type result struct {
		path string
		err  error
	}
	c := make(chan result)
	d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil || r == nil {
			c <- result{"", err}
			return
		}
		path := r.URI().Path()
		c <- result{path, r.Close()}
	}, f.win)
	d.SetFilter(pngFilter)
	d.Show()
	res := <-c
	return res.path, res.err
}

func (f fyneUI) ChooseSavePath(defaultName string) (string, error) {
	type result struct {
		path string
		err  error
	}
	c := make(chan result)
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil || w == nil {
			c <- result{"", err}
			return
		}
		// the file is written afterwards by convert.Save, so
		// the writer fyne opens is just closed here
		err = w.Close()
		if err != nil {
			c <- result{"", err}
			return
		}
		path, err := savePath(w.URI().Path())
		c <- result{path, err}
	}, f.win)
	d.SetFilter(pngFilter)
	d.SetFileName(defaultName)
	d.Show()
	res := <-c
	return res.path, res.err
}

// savePath returns the path to save a PNG to. Fyne creates the file
// chosen in its save dialog, so if the name has no extension the empty
// file it left is removed and the path with .png added is used instead.
func savePath(path string) (string, error) {
	if filepath.Ext(path) != "" {
		return path, nil
	}
	fi, err := os.Stat(path)
	if err == nil && fi.Mode().IsRegular() && fi.Size() == 0 {
		err = os.Remove(path)
		if err != nil {
			return "", fmt.Errorf("Error removing empty file %s: %w", path, err)
		}
	}
	return path + ".png", nil
}

func (f fyneUI) Notify(message string) {
	dialog.ShowInformation(noticeTitle(message), message, f.win)
}

// noticeTitle returns the title for the dialog showing a notice
func noticeTitle(message string) string {
	switch message {
	case bwsmooth.NoticeNoImage, bwsmooth.NoticeNotSaved:
		return "Cancelled"
	}
	return "Success"
}

// fynePreviewer shows previews in a new window
type fynePreviewer struct {
	app fyne.App
}

func (p fynePreviewer) Preview(original, processed image.Image) error {
	w := p.app.NewWindow("Preview")
	w.SetContent(previewContent(original, processed))
	w.Show()
	return nil
}

// previewContent lays out labelled thumbnails of the original and
// processed images side by side
func previewContent(original, processed image.Image) *fyne.Container {
	var objs []fyne.CanvasObject
	objs = append(objs, widget.NewLabel("Original PNG"), widget.NewLabel("Smoothed Black & White PNG"))
	for _, img := range []image.Image{original, processed} {
		thumb := convert.Thumbnail(img, bwsmooth.PreviewBox, bwsmooth.PreviewBox)
		b := thumb.Bounds()
		ci := canvas.NewImageFromImage(thumb)
		ci.FillMode = canvas.ImageFillContain
		ci.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
		objs = append(objs, ci)
	}
	return container.New(layout.NewGridLayout(2), objs...)
}

// windowText returns the window title, heading and description to
// use for a variant
func windowText(c bwsmooth.Config) (string, string, string) {
	if c.HighResolution() {
		return "High-Res PNG → Smoothed Black & White Converter",
			"High-Resolution Smoothed B&W",
			"Spline-like smoothing with minimal jaggies"
	}
	return "PNG → Smoothed Black & White Converter",
		"PNG to Smoothed Black & White",
		"Loads a PNG, smooths edges, and exports a clean black & white image"
}

// mainContent creates the contents of the main window, with a button
// that calls load when pressed
func mainContent(c bwsmooth.Config, load func()) (*fyne.Container, *widget.Button) {
	_, heading, desc := windowText(c)

	title := widget.NewLabelWithStyle(heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	description := widget.NewLabelWithStyle(desc, fyne.TextAlignCenter, fyne.TextStyle{})
	description.Wrapping = fyne.TextWrapWord

	loadbtn := widget.NewButtonWithIcon("Load PNG Image", theme.FileImageIcon(), load)

	return container.NewVBox(title, description, layout.NewSpacer(), loadbtn), loadbtn
}

// startGui starts the gui process
func startGui(log *log.Logger, c bwsmooth.Config) error {
	myApp := app.New()
	wintitle, _, _ := windowText(c)
	myWindow := myApp.NewWindow(wintitle)

	progressBar := widget.NewProgressBarInfinite()
	progressBar.Hide()

	var loadbtn *widget.Button
	content, loadbtn := mainContent(c, func() {
		loadbtn.Disable()
		progressBar.Show()

		// the conversion waits on dialogs, which need the event
		// loop to keep running
		go func() {
			defer func() {
				progressBar.Hide()
				loadbtn.Enable()
			}()
			_, err := convert.Run(c, fyneUI{myWindow}, fynePreviewer{myApp}, log)
			if err != nil {
				log.Println("Error converting image:", err)
				dialog.ShowError(err, myWindow)
			}
		}()
	})
	content.Add(progressBar)

	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(440, 250))
	myWindow.SetFixedSize(true)

	myWindow.Show()
	myApp.Run()

	return nil
}
