// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bwsmooth

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/nickjwhite/gofpdf"
)

const pageWidth = 5 // pageWidth in inches

// pxToPt converts a pixel value into a pt value (72 pts per inch)
// This uses pageWidth to determine the appropriate value
func pxToPt(i int) float64 {
	return float64(i) / pageWidth
}

type Fpdf struct {
	fpdf  *gofpdf.Fpdf
	pages int
}

// Setup creates a new PDF with appropriate settings
func (p *Fpdf) Setup() error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddPage adds a page to the pdf containing just the image, with the
// page sized to fit it exactly
func (p *Fpdf) AddPage(img image.Image) error {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return fmt.Errorf("Could not add empty image to PDF")
	}

	// gofpdf only understands 8 bit greyscale or colour PNGs, so
	// 1-bit images are expanded first
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)

	var buf bytes.Buffer
	err := png.Encode(&buf, gray)
	if err != nil {
		return fmt.Errorf("Could not encode image for PDF: %w", err)
	}

	p.pages++
	name := fmt.Sprintf("page%d", p.pages)
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	p.fpdf.AddPageFormat("P", gofpdf.SizeType{Wd: pxToPt(b.Dx()), Ht: pxToPt(b.Dy())})
	_ = p.fpdf.RegisterImageOptionsReader(name, opts, &buf)
	p.fpdf.ImageOptions(name, 0, 0, pxToPt(b.Dx()), pxToPt(b.Dy()), false, opts, 0, "")

	return p.fpdf.Error()
}

// Save saves the PDF to the file at path
func (p *Fpdf) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
