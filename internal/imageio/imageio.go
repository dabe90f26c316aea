// Package imageio loads the startup image into an editable RGBA buffer.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/disintegration/imaging"
)

// ErrEmptyImage is returned when a file decodes to an image with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Options controls how an image is prepared after decoding.
type Options struct {
	// MaxSize fits the image into a MaxSize x MaxSize box, keeping the
	// aspect ratio. Zero leaves the image at its native size.
	MaxSize int
}

// Load decodes the image at path and returns an owned RGBA copy whose
// bounds start at the origin. EXIF orientation is applied.
func Load(path string, opts Options) (*image.RGBA, error) {
	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return Prepare(src, opts)
}

// Prepare normalises an already decoded image the same way Load does.
func Prepare(src image.Image, opts Options) (*image.RGBA, error) {
	if src == nil || src.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	b := src.Bounds()
	if opts.MaxSize > 0 && (b.Dx() > opts.MaxSize || b.Dy() > opts.MaxSize) {
		src = imaging.Fit(src, opts.MaxSize, opts.MaxSize, imaging.Lanczos)
	} else if b.Min != (image.Point{}) {
		// imaging.Clone rebases to the origin.
		src = imaging.Clone(src)
	}

	return clone.AsRGBA(src), nil
}

// Pixels flattens img row by row into dst, growing dst if needed, and
// returns it. *image.RGBA is copied straight from its pixel buffer.
func Pixels(img image.Image, dst []color.RGBA) []color.RGBA {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]

	i := 0
	switch src := img.(type) {
	case *image.RGBA:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := src.Pix[src.PixOffset(b.Min.X, y):]
			for x := 0; x < b.Dx(); x++ {
				p := row[x*4 : x*4+4 : x*4+4]
				dst[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
				i++
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst[i] = color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				i++
			}
		}
	}
	return dst
}
