// Package region tracks interactive rectangle selections and fills
// rectangles of an RGBA buffer.
package region

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Selection accumulates rectangles picked by dragging over an image.
// Rectangles are kept in the order they were committed.
type Selection struct {
	bounds   image.Rectangle
	anchor   image.Point
	current  image.Rectangle
	dragging bool
	rects    []image.Rectangle
}

// NewSelection creates a selection limited to bounds.
func NewSelection(bounds image.Rectangle) *Selection {
	return &Selection{bounds: bounds}
}

// Begin starts a new drag at p, replacing any uncommitted rectangle.
func (s *Selection) Begin(p image.Point) {
	s.anchor = p
	s.dragging = true
	s.current = s.span(p)
}

// Drag moves the free corner of the current rectangle to p.
func (s *Selection) Drag(p image.Point) {
	if !s.dragging {
		return
	}
	s.current = s.span(p)
}

// End stops dragging. The rectangle stays pending until Commit or Cancel.
func (s *Selection) End(p image.Point) {
	if !s.dragging {
		return
	}
	s.current = s.span(p)
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Selection) Dragging() bool { return s.dragging }

// Current returns the pending rectangle, which may be empty.
func (s *Selection) Current() image.Rectangle { return s.current }

// Commit keeps the pending rectangle. Empty rectangles are dropped.
// It reports whether a rectangle was kept.
func (s *Selection) Commit() bool {
	r := s.current
	s.current = image.Rectangle{}
	s.dragging = false
	if r.Empty() {
		return false
	}
	s.rects = append(s.rects, r)
	return true
}

// Cancel discards the pending rectangle.
func (s *Selection) Cancel() {
	s.current = image.Rectangle{}
	s.dragging = false
}

// Rects returns the committed rectangles.
func (s *Selection) Rects() []image.Rectangle {
	out := make([]image.Rectangle, len(s.rects))
	copy(out, s.rects)
	return out
}

func (s *Selection) span(p image.Point) image.Rectangle {
	// image.Rectangle.Canon handles drags up and to the left.
	return image.Rectangle{Min: s.anchor, Max: p}.Canon().Intersect(s.bounds)
}

// Fill paints every rectangle in rects with c, one after another. Parts of a
// rectangle outside img are ignored.
func Fill(img *image.RGBA, rects []image.Rectangle, c color.RGBA) {
	src := image.NewUniform(c)
	for _, r := range rects {
		r = r.Canon().Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
}
