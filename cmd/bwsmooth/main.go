// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

// bwsmooth converts an image to a smoothed black and white image.
// By default it runs as a small graphical program; it can also use
// the native file dialogs, or run entirely from the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"rescribe.xyz/bwsmooth"
	"rescribe.xyz/bwsmooth/internal/convert"
	"rescribe.xyz/bwsmooth/internal/desktop"
)

const usage = `Usage: bwsmooth [-v] [-variant name] [-t thresh] [-u factor] [-native] [-preview file] [-pdf file] [-hist file] [inimg [outimg]]

Converts a PNG image into a smoothed black and white image.

With no inimg a window is opened with a button to choose the image,
after which a preview is shown and a location to save the result is
asked for. With -native the same is done with the native file dialogs
of the operating system, without the window. If inimg is given the
conversion is done with no interaction, saving to outimg, or if it is
not given to a name based on inimg in the same directory.

The -preview, -pdf and -hist options are used by -native and command
line runs only.

`

// recorder remembers which image was chosen to be converted
type recorder struct {
	convert.Interactor
	in string
}

func (r *recorder) ChooseOpenPath() (string, error) {
	var err error
	r.in, err = r.Interactor.ChooseOpenPath()
	return r.in, err
}

func main() {
	verbose := flag.Bool("v", false, "verbose")
	variant := flag.String("variant", "basic", "conversion settings to use: "+strings.Join(bwsmooth.VariantNames(), " or "))
	thresh := flag.Int("t", -1, "threshold (0-255) to use instead of the variant's default")
	upscale := flag.Int("u", -1, "upscale factor to use instead of the variant's default; 0 for none")
	native := flag.Bool("native", false, "use native file dialogs rather than the graphical window")
	preview := flag.String("preview", "", "save a side by side preview of the original and converted image to this file")
	pdfpath := flag.String("pdf", "", "also save the converted image as a PDF to this file")
	histpath := flag.String("hist", "", "save a histogram of the original image's grey levels to this file")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}

	var verboselog *log.Logger
	if *verbose {
		verboselog = log.New(os.Stdout, "", 0)
	} else {
		var n convert.NullWriter
		verboselog = log.New(n, "", 0)
	}

	c, err := bwsmooth.Variant(*variant)
	if err != nil {
		log.Fatalln(err)
	}
	if *thresh >= 0 {
		c.Threshold = *thresh
	}
	if *upscale >= 0 {
		c.UpscaleFactor = *upscale
	}
	err = c.Validate()
	if err != nil {
		log.Fatalln(err)
	}

	if flag.NArg() == 0 && !*native {
		err = startGui(verboselog, c)
		if err != nil {
			log.Fatalln(err)
		}
		return
	}

	var ui *recorder
	if *native {
		ui = &recorder{Interactor: desktop.Native{Logger: verboselog}}
	} else {
		ui = &recorder{Interactor: convert.Local{
			ArgsChooser: convert.ArgsChooser{In: flag.Arg(0), Out: flag.Arg(1)},
			LogNotifier: convert.LogNotifier{Logger: log.New(os.Stderr, "", 0)},
		}}
	}

	var p convert.Previewer
	if *preview != "" {
		p = convert.FilePreviewer{Path: *preview}
	}

	out, err := convert.Run(c, ui, p, verboselog)
	if err != nil {
		log.Fatalln(err)
	}

	if *histpath != "" && ui.in != "" {
		err = saveHistogram(ui.in, c.Threshold, *histpath)
		if err != nil {
			log.Fatalln(err)
		}
	}

	if *pdfpath != "" && out != "" {
		err = savePDF(out, *pdfpath)
		if err != nil {
			log.Fatalln(err)
		}
	}
}

// saveHistogram saves a histogram of the grey levels of the image at
// in to path
func saveHistogram(in string, thresh int, path string) error {
	img, err := convert.Load(in)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Error creating file %s: %w", path, err)
	}
	defer f.Close()
	err = bwsmooth.Histogram(img, thresh, in, f)
	if err != nil {
		return fmt.Errorf("Error creating histogram: %w", err)
	}
	return nil
}

// savePDF saves the image at in as a single page PDF at path
func savePDF(in string, path string) error {
	img, err := convert.Load(in)
	if err != nil {
		return err
	}
	var p bwsmooth.Fpdf
	err = p.Setup()
	if err != nil {
		return fmt.Errorf("Error setting up PDF: %w", err)
	}
	err = p.AddPage(img)
	if err != nil {
		return fmt.Errorf("Error adding image to PDF: %w", err)
	}
	err = p.Save(path)
	if err != nil {
		return fmt.Errorf("Error saving PDF %s: %w", path, err)
	}
	return nil
}
