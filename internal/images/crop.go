// Package images prepares elevation images for the devicetype-library:
// rectangular crops of vendor photos plus the transparent-trim and
// aspect-ratio normalization passes. Output is always PNG.
package images

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// CropSpec is a crop rectangle in source-image pixel space. Coordinates are
// offsets from the top-left corner; Right and Bottom are exclusive, so the
// output is (Right-Left) x (Bottom-Top) pixels.
type CropSpec struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// ParseCropSpec parses a "left,top,right,bottom" crop cell. Inverted
// rectangles (right <= left, bottom <= top) and negative offsets are
// rejected here; bounds against a concrete image are checked at crop time.
func ParseCropSpec(s string) (CropSpec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return CropSpec{}, fmt.Errorf("crop spec %q must have 4 values (left,top,right,bottom)", s)
	}

	vals := make([]int, 4)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return CropSpec{}, fmt.Errorf("crop spec %q: invalid value %q", s, p)
		}
		if n < 0 {
			return CropSpec{}, fmt.Errorf("crop spec %q: negative offset %d", s, n)
		}
		vals[i] = n
	}

	spec := CropSpec{Left: vals[0], Top: vals[1], Right: vals[2], Bottom: vals[3]}
	if spec.Right <= spec.Left {
		return CropSpec{}, fmt.Errorf("crop spec %q: right (%d) must exceed left (%d)", s, spec.Right, spec.Left)
	}
	if spec.Bottom <= spec.Top {
		return CropSpec{}, fmt.Errorf("crop spec %q: bottom (%d) must exceed top (%d)", s, spec.Bottom, spec.Top)
	}

	return spec, nil
}

// Rect returns the spec as an image.Rectangle.
func (c CropSpec) Rect() image.Rectangle {
	return image.Rect(c.Left, c.Top, c.Right, c.Bottom)
}

// Width returns the output width in pixels.
func (c CropSpec) Width() int {
	return c.Right - c.Left
}

// Height returns the output height in pixels.
func (c CropSpec) Height() int {
	return c.Bottom - c.Top
}

func (c CropSpec) String() string {
	return fmt.Sprintf("%d,%d,%d,%d", c.Left, c.Top, c.Right, c.Bottom)
}

// Crop extracts the spec rectangle from img. The rectangle must lie fully
// within the image bounds; out-of-bounds specs are an error, never clamped.
func Crop(img image.Image, spec CropSpec) (*image.NRGBA, error) {
	bounds := img.Bounds()
	if !spec.Rect().In(bounds) {
		return nil, fmt.Errorf("crop rectangle %s outside image bounds %dx%d", spec, bounds.Dx(), bounds.Dy())
	}
	return imaging.Crop(img, spec.Rect()), nil
}

// Load opens and decodes a source image.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}

// Save encodes img to path; the format follows the file extension, which is
// always .png for elevation images.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}
