// Package input turns per-frame mouse readings into trackbar values and
// editor mouse events. It holds no windowing code, so the window package
// only has to sample the mouse and draw.
package input

import (
	"image"
	"image/color"
	"math"

	"github.com/ha1tch/cvpaint/internal/editor"
)

// Mouse is one frame's reading of the mouse.
type Mouse struct {
	X, Y     float32
	Pressed  bool // left button went down this frame
	Down     bool // left button is held
	Released bool // left button went up this frame
	Wheel    float32
}

// Point returns the cursor position in whole pixels.
func (m Mouse) Point() image.Point {
	return image.Pt(int(m.X), int(m.Y))
}

// Slider is an integer trackbar bounded to [0, Max] occupying the
// rectangle at X, Y of size Width x Height.
type Slider struct {
	X, Y, Width, Height float32
	Label               string
	Max                 int

	value    int
	dragging bool
	hover    bool
}

// Set moves the slider, clamping v to its range. It also ends any drag in
// progress, so a value set by the program holds until the next press.
func (s *Slider) Set(v int) {
	s.value = clampInt(v, 0, s.Max)
	s.dragging = false
}

// Value returns the current position.
func (s *Slider) Value() int { return s.value }

// Hover reports whether the cursor was over the slider on the last Update.
func (s *Slider) Hover() bool { return s.hover }

// Dragging reports whether the slider is following the cursor.
func (s *Slider) Dragging() bool { return s.dragging }

// Contains reports whether (x, y) lies on the slider.
func (s *Slider) Contains(x, y float32) bool {
	return x >= s.X && x < s.X+s.Width && y >= s.Y && y < s.Y+s.Height
}

// HandleX returns the x coordinate of the handle.
func (s *Slider) HandleX() float32 {
	if s.Max <= 0 {
		return s.X
	}
	return s.X + float32(s.value)/float32(s.Max)*s.Width
}

// Update applies m: a press on the slider starts a drag that sets the value
// until the button is released; the wheel steps it while hovering.
func (s *Slider) Update(m Mouse) {
	s.hover = s.Contains(m.X, m.Y)

	if s.hover && m.Pressed {
		s.dragging = true
	}
	if !m.Down {
		s.dragging = false
	}

	if s.dragging {
		s.value = valueAt(m.X-s.X, s.Width, s.Max)
	} else if s.hover && m.Wheel != 0 {
		s.value = clampInt(s.value+int(math.Copysign(1, float64(m.Wheel))), 0, s.Max)
	}
}

// valueAt maps an offset along a track of the given width to [0, max].
func valueAt(offset, width float32, max int) int {
	if width <= 0 || max <= 0 {
		return 0
	}
	v := int(math.Round(float64(offset / width * float32(max))))
	return clampInt(v, 0, max)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Trackbars is the fixed set of six editor controls.
type Trackbars struct {
	sliders []*Slider
	index   map[editor.Control]*Slider
}

var trackbarDefs = []struct {
	control editor.Control
	label   string
	max     int
}{
	{editor.ControlRed, "R", 255},
	{editor.ControlGreen, "G", 255},
	{editor.ControlBlue, "B", 255},
	{editor.ControlMode, "MODE", 3},
	{editor.ControlFilter, "FILTER", 3},
	{editor.ControlConfirm, "CONFIRM", 1},
}

// NewTrackbars lays the controls out in a column starting at (x, y), each
// width wide and spacing apart. All start at 0.
func NewTrackbars(x, y, width, spacing float32) *Trackbars {
	t := &Trackbars{index: make(map[editor.Control]*Slider)}
	for i, d := range trackbarDefs {
		s := &Slider{
			X:      x,
			Y:      y + float32(i)*spacing,
			Width:  width,
			Height: 20,
			Label:  d.label,
			Max:    d.max,
		}
		t.sliders = append(t.sliders, s)
		t.index[d.control] = s
	}
	return t
}

// Sliders returns the sliders in display order.
func (t *Trackbars) Sliders() []*Slider { return t.sliders }

// Poll applies m to every slider and reads the controls.
func (t *Trackbars) Poll(m Mouse) editor.Settings {
	for _, s := range t.sliders {
		s.Update(m)
	}
	return editor.Settings{
		Color: color.RGBA{
			R: uint8(t.index[editor.ControlRed].Value()),
			G: uint8(t.index[editor.ControlGreen].Value()),
			B: uint8(t.index[editor.ControlBlue].Value()),
			A: 255,
		},
		Mode:    editor.Mode(t.index[editor.ControlMode].Value()),
		Filter:  t.index[editor.ControlFilter].Value(),
		Confirm: t.index[editor.ControlConfirm].Value(),
	}
}

// Set moves one control.
func (t *Trackbars) Set(c editor.Control, v int) {
	if s, ok := t.index[c]; ok {
		s.Set(v)
	}
}

// Tracker converts mouse readings into editor mouse events for a frame
// shown at the window origin.
type Tracker struct {
	handler func(editor.MouseEvent)
	last    image.Point
}

// SetHandler registers h; nil stops delivery.
func (t *Tracker) SetHandler(h func(editor.MouseEvent)) { t.handler = h }

// Deliver sends the events implied by m. Presses and moves count only over
// frame; a release is always delivered so drawing stops even off the frame.
func (t *Tracker) Deliver(m Mouse, frame image.Rectangle) {
	p := m.Point()
	defer func() { t.last = p }()

	if t.handler == nil {
		return
	}
	if m.Pressed && p.In(frame) {
		t.handler(editor.MouseEvent{Kind: editor.MouseDown, X: p.X, Y: p.Y})
	}
	if p != t.last && p.In(frame) {
		t.handler(editor.MouseEvent{Kind: editor.MouseMove, X: p.X, Y: p.Y})
	}
	if m.Released {
		t.handler(editor.MouseEvent{Kind: editor.MouseUp, X: p.X, Y: p.Y})
	}
}
