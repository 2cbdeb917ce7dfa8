// Copyright 2026 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package bwsmooth

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Config describes one variant of the smoothing conversion
type Config struct {
	Name      string
	Threshold int
	// UpscaleFactor of 0 means no resampling round trip, and a 1-bit
	// output. Any factor of 1 or more produces anti-aliased grey output.
	UpscaleFactor int
	BlurSigma     float64
	Suffix        string
}

// Basic is the plain variant, producing a true black and white image
var Basic = Config{
	Name:      "basic",
	Threshold: basicThreshold,
	BlurSigma: basicSigma,
	Suffix:    basicSuffix,
}

// HighRes is the variant which filters at a higher resolution
var HighRes = Config{
	Name:          "highres",
	Threshold:     highresThreshold,
	UpscaleFactor: highresUpscale,
	BlurSigma:     highresSigma,
	Suffix:        highresSuffix,
}

var variants = map[string]Config{
	Basic.Name:   Basic,
	HighRes.Name: HighRes,
}

// VariantNames returns the names of all known variants, sorted
func VariantNames() []string {
	var names []string
	for n := range variants {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Variant returns the Config for a named variant
func Variant(name string) (Config, error) {
	c, ok := variants[strings.ToLower(name)]
	if !ok {
		return Config{}, fmt.Errorf("Unknown variant %q, must be one of %s", name, strings.Join(VariantNames(), ", "))
	}
	return c, nil
}

// Validate checks that the settings of a Config are usable
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 255 {
		return fmt.Errorf("Threshold %d out of range, must be between 0 and 255", c.Threshold)
	}
	if c.UpscaleFactor < 0 || c.UpscaleFactor > MaxUpscale {
		return fmt.Errorf("Upscale factor %d out of range, must be between 0 and %d", c.UpscaleFactor, MaxUpscale)
	}
	if c.BlurSigma < 0 {
		return fmt.Errorf("Blur sigma %g is negative", c.BlurSigma)
	}
	return nil
}

// HighResolution reports whether the Config includes the resampling
// round trip
func (c Config) HighResolution() bool {
	return c.UpscaleFactor > 0
}

// DefaultName returns the file name to suggest for saving the
// converted version of the image at inPath
func (c Config) DefaultName(inPath string) string {
	base := filepath.Base(inPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + c.Suffix + ".png"
}
