package window

import (
	"fmt"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/cvpaint/internal/region"
)

var selectorHelp = []string{
	"SELECT REGIONS",
	"DRAG TO MARK",
	"SPACE/ENTER: KEEP",
	"C: DISCARD",
	"ESC: FINISH",
}

// SelectRegions shows img without the bar and lets the user mark
// rectangles until ESC is pressed or the window is closed. Rectangles are
// in image coordinates, in the order they were kept.
func (w *Window) SelectRegions(img image.Image) []image.Rectangle {
	bounds := img.Bounds()
	sel := region.NewSelection(bounds)
	w.upload(img)

	for !rl.WindowShouldClose() {
		pos := rl.GetMousePosition()
		p := image.Pt(int(pos.X), int(pos.Y)).Add(bounds.Min)

		if rl.IsMouseButtonPressed(rl.MouseLeftButton) && p.In(bounds) {
			sel.Begin(p)
		}
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			sel.Drag(p)
		}
		if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
			sel.End(p)
		}

		if rl.IsKeyPressed(rl.KeySpace) || rl.IsKeyPressed(rl.KeyEnter) {
			if sel.Commit() {
				w.log.Debug("region kept", "rect", sel.Rects()[len(sel.Rects())-1])
			}
		}
		if rl.IsKeyPressed(rl.KeyC) {
			sel.Cancel()
		}
		if rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		w.drawSelection(sel, bounds.Min, p)
	}

	return sel.Rects()
}

func (w *Window) drawSelection(sel *region.Selection, origin, cursor image.Point) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{40, 40, 40, 255})
	rl.DrawTexture(w.texture, 0, 0, rl.White)

	for _, r := range sel.Rects() {
		drawRect(r.Sub(origin), rl.Blue)
	}
	if cur := sel.Current(); !cur.Empty() {
		drawRect(cur.Sub(origin), rl.Yellow)
	}

	// Crosshair over the image.
	c := cursor.Sub(origin)
	if c.In(image.Rect(0, 0, w.textureDim.X, w.textureDim.Y)) {
		rl.DrawLine(int32(c.X), 0, int32(c.X), int32(w.textureDim.Y), rl.Color{255, 255, 255, 120})
		rl.DrawLine(0, int32(c.Y), int32(w.textureDim.X), int32(c.Y), rl.Color{255, 255, 255, 120})
	}

	panelX := int32(w.frameSize.X)
	rl.DrawRectangle(panelX, 0, panelWidth, w.height, rl.Color{50, 50, 50, 255})
	for i, line := range selectorHelp {
		col := rl.LightGray
		if i == 0 {
			col = rl.White
		}
		rl.DrawText(line, panelX+10, int32(10+i*16), fontSize, col)
	}
	rl.DrawText(fmt.Sprintf("KEPT: %d", len(sel.Rects())), panelX+10, int32(20+len(selectorHelp)*16), fontSize, rl.Yellow)

	rl.EndDrawing()
}

func drawRect(r image.Rectangle, col rl.Color) {
	rl.DrawRectangleLines(int32(r.Min.X), int32(r.Min.Y), int32(r.Dx()), int32(r.Dy()), col)
}
