// Package editor implements the paint loop: it polls the trackbar controls,
// renders the color/menu bar above the image and dispatches each frame to
// the handler of the selected mode.
//
// The editor is single threaded. The only state shared with the windowing
// side is the Pointer, which the mouse handler writes and the draw handler
// reads.
package editor

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/ha1tch/cvpaint/internal/colorspace"
	"github.com/ha1tch/cvpaint/internal/region"
)

// Mode selects what the editor does with each frame.
type Mode int

const (
	ModeNone Mode = iota
	ModeDraw
	ModeFilter
	ModeRegion
)

var modeNames = []string{"NONE", "DRAW", "FILTER", "REGION"}

func (m Mode) String() string {
	if m >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "UNKNOWN"
}

// Control identifies one of the six trackbars.
type Control int

const (
	ControlRed Control = iota
	ControlGreen
	ControlBlue
	ControlMode
	ControlFilter
	ControlConfirm
)

// Settings is one reading of all controls.
type Settings struct {
	Color   color.RGBA
	Mode    Mode
	Filter  int
	Confirm int
}

// Controls is the trackbar surface. Values are bounded by the controls
// themselves, so Poll never returns an out of range value.
type Controls interface {
	Poll() Settings
	Set(c Control, v int)
}

// Display shows frames and delivers mouse input.
type Display interface {
	Show(frame image.Image)
	// SetMouseHandler registers the function that receives mouse events.
	// Events are delivered between frames on the editor's goroutine or
	// from another goroutine; the handler must cope with both.
	SetMouseHandler(h func(MouseEvent))
	QuitRequested() bool
}

// RegionSelector lets the user pick rectangles over img. It may return
// none.
type RegionSelector interface {
	SelectRegions(img image.Image) []image.Rectangle
}

// DefaultLineWeight is the half side of the square painted in draw mode.
const DefaultLineWeight = 1

// Options configures an Editor.
type Options struct {
	LineWeight int
	Logger     *slog.Logger
}

// Editor owns the image buffer and the per-frame state machine.
type Editor struct {
	img        *image.RGBA
	controls   Controls
	display    Display
	selector   RegionSelector
	pointer    *Pointer
	lineWeight int
	log        *slog.Logger

	mode Mode
}

// New creates an editor over img. The editor takes ownership of img and
// mutates it in place.
func New(img *image.RGBA, controls Controls, display Display, selector RegionSelector, opts Options) *Editor {
	if opts.LineWeight <= 0 {
		opts.LineWeight = DefaultLineWeight
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Editor{
		img:        img,
		controls:   controls,
		display:    display,
		selector:   selector,
		pointer:    &Pointer{},
		lineWeight: opts.LineWeight,
		log:        opts.Logger,
	}
}

// Image returns the current image buffer. A committed filter replaces the
// buffer, so callers should not hold on to the result across frames.
func (e *Editor) Image() *image.RGBA { return e.img }

// Pointer returns the cursor and button state fed by the mouse handler.
func (e *Editor) Pointer() *Pointer { return e.pointer }

// Run steps the editor until quit is requested.
func (e *Editor) Run() {
	e.log.Info("editor started", "width", e.img.Bounds().Dx(), "height", e.img.Bounds().Dy())
	for e.Step() {
	}
	e.log.Info("editor stopped")
}

// Step runs one frame: poll the controls, render the bar and image,
// dispatch to the mode handler and check for quit. It returns false once
// the loop should end.
func (e *Editor) Step() bool {
	s := e.controls.Poll()
	e.enterMode(s.Mode)

	e.RenderFrame(e.img, s.Color, s.Mode)

	switch s.Mode {
	case ModeDraw:
		e.handleDraw(s)
	case ModeFilter:
		if !e.handleFilter(s) {
			return false
		}
	case ModeRegion:
		e.handleRegion(s)
	}

	return !e.display.QuitRequested()
}

func (e *Editor) enterMode(m Mode) {
	if m == e.mode {
		return
	}
	e.log.Debug("mode changed", "from", e.mode, "to", m)
	e.mode = m
	// Draw state does not survive leaving draw mode.
	e.pointer.SetArmed(m == ModeDraw)
}

// RenderFrame stacks the color/menu bar above img and shows the result.
func (e *Editor) RenderFrame(img *image.RGBA, c color.RGBA, m Mode) {
	e.display.Show(Compose(img, c, m))
}

// OverlayHeight is the height of the bar drawn above img.
func OverlayHeight(img image.Image) int {
	return img.Bounds().Dy() / 10
}

func (e *Editor) handleDraw(s Settings) {
	e.display.SetMouseHandler(e.pointer.HandleEvent)

	x, y, drawing := e.pointer.State()
	if !drawing {
		return
	}
	// The window shows the bar above the image.
	y -= OverlayHeight(e.img)
	PaintSquare(e.img, x, y, e.lineWeight, s.Color)
}

// PaintSquare fills [y-w, y+w) x [x-w, x+w) with c, clipped to img.
func PaintSquare(img *image.RGBA, x, y, w int, c color.RGBA) {
	region.Fill(img, []image.Rectangle{image.Rect(x-w, y-w, x+w, y+w)}, c)
}

// handleFilter previews color-space conversions until the confirm control
// is raised again. The stored image is only replaced on confirmation. It
// returns false if quit was requested during the preview.
func (e *Editor) handleFilter(s Settings) bool {
	if s.Confirm != 1 {
		return true
	}
	e.controls.Set(ControlConfirm, 0)
	e.log.Debug("filter preview started")

	var preview *image.RGBA
	for {
		s = e.controls.Poll()
		preview = colorspace.Convert(e.img, colorspace.FromFilter(s.Filter))
		e.RenderFrame(preview, s.Color, s.Mode)
		if s.Confirm == 1 {
			break
		}
		if e.display.QuitRequested() {
			e.log.Debug("filter preview discarded")
			return false
		}
	}

	e.controls.Set(ControlMode, 0)
	e.controls.Set(ControlFilter, 0)
	e.controls.Set(ControlConfirm, 0)

	if preview.Bounds() != e.img.Bounds() {
		// Conversions keep dimensions; anything else would desync the
		// draw offset.
		e.log.Warn("filter changed image size", "before", e.img.Bounds(), "after", preview.Bounds())
	}
	e.img = preview
	e.log.Debug("filter applied", "space", colorspace.FromFilter(s.Filter))
	return true
}

func (e *Editor) handleRegion(s Settings) {
	if s.Confirm != 1 {
		return
	}
	e.controls.Set(ControlConfirm, 0)

	rects := e.selector.SelectRegions(e.img)
	region.Fill(e.img, rects, s.Color)
	e.log.Debug("regions filled", "count", len(rects), "color", s.Color)

	e.controls.Set(ControlMode, 0)
}
