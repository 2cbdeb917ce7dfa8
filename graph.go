// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bwsmooth

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const graphWidth = 1920
const graphHeight = 1080
const xtickevery = 16

// Levels counts the number of pixels at each intensity in a grey image
func Levels(img *image.Gray) [256]int {
	var levels [256]int
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			levels[img.GrayAt(x, y).Y]++
		}
	}
	return levels
}

// createVLine creates a vertical line at a particular x value for a
// graph, reaching up to top
func createVLine(x float64, top float64, c drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		XValues: []float64{x, x},
		YValues: []float64{0, top},
		Style: chart.Style{
			StrokeColor:     c,
			StrokeWidth:     3,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// Histogram creates a graph of the number of pixels at each intensity
// in an image, with the threshold marked, and writes it as a PNG to w
func Histogram(img *image.Gray, threshold int, title string, w io.Writer) error {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return errors.New("Image is empty, cannot create histogram")
	}

	levels := Levels(img)

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	top := 0
	for i, n := range levels {
		xvalues = append(xvalues, float64(i))
		yvalues = append(yvalues, float64(n))
		if n > top {
			top = n
		}
		if i%xtickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: float64(i), Label: fmt.Sprintf("%d", i)})
		}
	}
	ticks = append(ticks, chart.Tick{Value: 255, Label: "255"})
	ymax := float64(top) * 1.1

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}

	threshSeries := createVLine(float64(threshold), ymax, chart.ColorRed)

	graph := chart.Chart{
		Title:  title,
		Width:  graphWidth,
		Height: graphHeight,
		XAxis: chart.XAxis{
			Name: "Intensity",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Pixels",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: ymax,
			},
		},
		Series: []chart.Series{
			mainSeries,
			threshSeries,
			chart.AnnotationSeries{
				Annotations: []chart.Value2{
					{Label: fmt.Sprintf("threshold %d", threshold), XValue: float64(threshold), YValue: ymax},
				},
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
