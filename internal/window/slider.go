package window

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/cvpaint/internal/input"
)

// readMouse samples the mouse for this frame.
func readMouse() input.Mouse {
	pos := rl.GetMousePosition()
	return input.Mouse{
		X:        pos.X,
		Y:        pos.Y,
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Down:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
		Wheel:    rl.GetMouseWheelMove(),
	}
}

// drawSlider renders the label, track, handle and value of s.
func drawSlider(s *input.Slider) {
	rect := rl.Rectangle{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
	rl.DrawText(s.Label, int32(s.X), int32(s.Y-12), fontSize, rl.LightGray)

	trackColor := rl.Color{60, 60, 60, 255}
	if s.Hover() || s.Dragging() {
		trackColor = rl.Color{80, 80, 80, 255}
	}
	rl.DrawRectangleRec(rect, trackColor)
	rl.DrawRectangleLinesEx(rect, 1, rl.Color{90, 90, 90, 255})

	rl.DrawRectangle(int32(s.HandleX()-2), int32(s.Y), 4, int32(s.Height), rl.White)

	text := fmt.Sprintf("%d", s.Value())
	textW := rl.MeasureText(text, fontSize)
	rl.DrawText(text, int32(s.X+s.Width)-textW, int32(s.Y-12), fontSize, rl.White)
}
