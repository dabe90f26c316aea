// Package colorspace converts RGB images into false-color renderings of
// other color spaces.
//
// The output packs each converted pixel the way an 8-bit BGR image viewer
// would see it: the first component of the target space lands in the blue
// channel, the second in green and the third in red. Scaling follows the
// common 8-bit conventions:
//
//	HLS: H/2, L*255, S*255
//	Lab: L*255/100, a+128, b+128
//	Luv: L*255/100, (u+134)*255/354, (v+140)*255/262
package colorspace

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"github.com/lucasb-eyer/go-colorful"
)

// Space identifies a conversion target.
type Space int

const (
	Identity Space = iota
	HLS
	Lab
	Luv
)

var spaceNames = []string{"IDENTITY", "HLS", "LAB", "LUV"}

func (s Space) String() string {
	if s >= 0 && int(s) < len(spaceNames) {
		return spaceNames[s]
	}
	return "UNKNOWN"
}

// FromFilter maps a filter control value to a Space. Unknown values map to
// Identity.
func FromFilter(v int) Space {
	switch Space(v) {
	case HLS, Lab, Luv:
		return Space(v)
	}
	return Identity
}

// Convert returns a new image holding src converted to space. src is never
// modified. The result has the same bounds as src and is fully opaque
// unless space is Identity, in which case it is a plain copy.
func Convert(src image.Image, space Space) *image.RGBA {
	dst := clone.AsRGBA(src)
	if space == Identity {
		return dst
	}

	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := dst.PixOffset(x, y)
			p := dst.Pix[i : i+4 : i+4]
			c0, c1, c2 := convertPixel(p[0], p[1], p[2], space)
			p[0], p[1], p[2], p[3] = c2, c1, c0, 0xff
		}
	}
	return dst
}

// ConvertColor converts a single color and returns the packed result.
func ConvertColor(c color.RGBA, space Space) color.RGBA {
	if space == Identity {
		return c
	}
	c0, c1, c2 := convertPixel(c.R, c.G, c.B, space)
	return color.RGBA{R: c2, G: c1, B: c0, A: 0xff}
}

// convertPixel returns the three 8-bit components of the target space in
// their natural order.
func convertPixel(r, g, b uint8, space Space) (uint8, uint8, uint8) {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	switch space {
	case HLS:
		h, s, l := c.Hsl()
		return to8(h / 2), to8(l * 255), to8(s * 255)
	case Lab:
		l, a, bb := c.Lab()
		// go-colorful reports Lab scaled down by 100.
		return to8(l * 255), to8(a*100 + 128), to8(bb*100 + 128)
	case Luv:
		l, u, v := c.Luv()
		return to8(l * 255), to8((u*100 + 134) * 255 / 354), to8((v*100 + 140) * 255 / 262)
	}
	return b, g, r
}

func to8(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
