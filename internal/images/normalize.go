package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Elevation images in the library are rendered at a 10:1 rack-unit aspect;
// the effective width multiplier leaves a small margin on the right.
const elevationAspect = 9.8

// TrimTransparent crops the image to the bounding box of its non-transparent
// pixels. A fully transparent image is returned unchanged.
func TrimTransparent(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	bounds := src.Bounds()

	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowStart := src.PixOffset(bounds.Min.X, y)
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			alpha := src.Pix[rowStart+(x-bounds.Min.X)*4+3]
			if alpha == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return src
	}

	return imaging.Crop(src, image.Rect(minX, minY, maxX+1, maxY+1))
}

// FlattenToAspect flattens img onto a white background sized to the
// elevation aspect ratio at the image's height: narrower images are padded
// with white on the right, wider images are cropped from the right.
func FlattenToAspect(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	targetWidth := int(elevationAspect * float64(height))

	if width > targetWidth {
		img = imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+targetWidth, bounds.Max.Y))
	}

	canvas := imaging.New(targetWidth, height, color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// Normalize runs both elevation passes on a source file and writes the
// result: trim transparent borders, then flatten to the target aspect.
func Normalize(srcPath, dstPath string) error {
	img, err := Load(srcPath)
	if err != nil {
		return err
	}

	out := FlattenToAspect(TrimTransparent(img))

	return Save(out, dstPath)
}
