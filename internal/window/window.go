// Package window is the raylib frontend of the editor: one window showing
// the composed frame on the left and a panel of trackbars on the right.
//
// Window implements editor.Controls, editor.Display and
// editor.RegionSelector. All methods must be called from the goroutine that
// called Open.
package window

import (
	"image"
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/cvpaint/internal/editor"
	"github.com/ha1tch/cvpaint/internal/imageio"
	"github.com/ha1tch/cvpaint/internal/input"
)

const (
	fontSize       = 10
	panelWidth     = 220
	panelMinHeight = 360
	sliderSpacing  = 50
)

// Config describes the window to open.
type Config struct {
	Title  string
	FPS    int
	Logger *slog.Logger
}

// Window owns the raylib window, its trackbars and the frame texture.
type Window struct {
	frameSize image.Point
	width     int32
	height    int32

	bars    *input.Trackbars
	tracker input.Tracker

	texture    rl.Texture2D
	textureSet bool
	textureDim image.Point
	pixels     []color.RGBA

	log *slog.Logger
}

// Open creates a window large enough for frames of frameSize plus the
// trackbar panel.
func Open(frameSize image.Point, cfg Config) *Window {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.FPS <= 0 {
		cfg.FPS = 60
	}

	w := &Window{
		frameSize: frameSize,
		width:     int32(frameSize.X + panelWidth),
		height:    int32(max(frameSize.Y, panelMinHeight)),
		log:       cfg.Logger,
	}

	rl.InitWindow(w.width, w.height, cfg.Title)
	rl.SetTargetFPS(int32(cfg.FPS))
	// ESC belongs to the region selector.
	rl.SetExitKey(rl.KeyNull)

	w.bars = input.NewTrackbars(float32(frameSize.X+10), 40, panelWidth-20, sliderSpacing)

	w.log.Debug("window opened", "width", w.width, "height", w.height)
	return w
}

// Close releases the texture and closes the window.
func (w *Window) Close() {
	if w.textureSet {
		rl.UnloadTexture(w.texture)
	}
	rl.CloseWindow()
}

// Poll applies this frame's mouse input to the trackbars and reads them.
func (w *Window) Poll() editor.Settings {
	return w.bars.Poll(readMouse())
}

// Set moves a trackbar. Any drag on it ends.
func (w *Window) Set(c editor.Control, v int) {
	w.bars.Set(c, v)
}

// Show draws frame at the top-left corner with the trackbar panel beside
// it, then delivers mouse events for the finished frame.
func (w *Window) Show(frame image.Image) {
	w.upload(frame)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{40, 40, 40, 255})
	rl.DrawTexture(w.texture, 0, 0, rl.White)
	w.drawPanel()
	rl.EndDrawing()

	w.tracker.Deliver(readMouse(), frame.Bounds())
}

// SetMouseHandler registers h for mouse events over the frame.
func (w *Window) SetMouseHandler(h func(editor.MouseEvent)) {
	w.tracker.SetHandler(h)
}

// QuitRequested reports whether the window was closed or Q was pressed.
func (w *Window) QuitRequested() bool {
	return rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyQ)
}

// upload copies img into the frame texture, recreating it when the size
// changes.
func (w *Window) upload(img image.Image) {
	b := img.Bounds()
	dim := image.Pt(b.Dx(), b.Dy())

	if !w.textureSet || dim != w.textureDim {
		if w.textureSet {
			rl.UnloadTexture(w.texture)
		}
		blank := rl.GenImageColor(dim.X, dim.Y, rl.Black)
		w.texture = rl.LoadTextureFromImage(blank)
		rl.UnloadImage(blank)
		w.textureSet = true
		w.textureDim = dim
	}

	w.pixels = imageio.Pixels(img, w.pixels)
	rl.UpdateTexture(w.texture, w.pixels)
}

func (w *Window) drawPanel() {
	panelX := int32(w.frameSize.X)
	rl.DrawRectangle(panelX, 0, panelWidth, w.height, rl.Color{50, 50, 50, 255})
	rl.DrawText("CONTROLS", panelX+10, 10, fontSize, rl.White)

	for _, s := range w.bars.Sliders() {
		drawSlider(s)
	}

	rl.DrawText("Q TO QUIT", panelX+10, w.height-20, fontSize, rl.LightGray)
}
