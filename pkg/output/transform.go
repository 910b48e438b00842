package output

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Options selects the post-processing applied before saving
type Options struct {
	Flip   bool // Also save a vertically flipped copy
	Width  int  // Resize to this width (0 keeps the aspect ratio or the original size)
	Height int  // Resize to this height (0 keeps the aspect ratio or the original size)
}

// Variant is one image to be saved under a name
type Variant struct {
	Name  string
	Image image.Image
}

// Flipped returns a copy of img mirrored top to bottom
func Flipped(img image.Image) image.Image {
	return imaging.FlipV(img)
}

// Resized scales img with Lanczos resampling. It returns img unchanged when
// both dimensions are zero or already match.
func Resized(img image.Image, width, height int) image.Image {
	if width <= 0 && height <= 0 {
		return img
	}
	bounds := img.Bounds()
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}
	return resize.Resize(uint(max(width, 0)), uint(max(height, 0)), img, resize.Lanczos3)
}

// Variants applies the options to img and returns everything to save:
// the (possibly resized) image, then its flipped copy when requested
func Variants(name string, img image.Image, opts Options) []Variant {
	base := Resized(img, opts.Width, opts.Height)
	variants := []Variant{{Name: name, Image: base}}

	if opts.Flip {
		ext := filepath.Ext(name)
		flippedName := strings.TrimSuffix(name, ext) + "_flipped" + ext
		variants = append(variants, Variant{Name: flippedName, Image: Flipped(base)})
	}
	return variants
}

// TimestampedName returns e.g. "render_20060102_150405.png"
func TimestampedName(prefix, ext string, now time.Time) string {
	ext = strings.TrimPrefix(ext, ".")
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("20060102_150405"), ext)
}

// ValidateFormat checks that the name has an extension the encoder supports
func ValidateFormat(name string) error {
	if _, err := imaging.FormatFromFilename(name); err != nil {
		return fmt.Errorf("unsupported output format for %s: %w", name, err)
	}
	return nil
}
