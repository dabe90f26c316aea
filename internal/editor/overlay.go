package editor

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var menuText = []string{
	"Select a Mode",
	"Draw: Select a color then left click hold to draw",
	"Filter: Select confirm, scroll through filters, press confirm again to apply",
	"Draw Squares: Choose color, confirm, draw squares, confirm with space. ESC to quit",
}

var (
	menuTextColor  = color.RGBA{255, 255, 0, 255}
	menuTextOrigin = image.Pt(100, 50)
)

// MenuText returns the help line shown for m.
func MenuText(m Mode) string {
	if m >= 0 && int(m) < len(menuText) {
		return menuText[m]
	}
	return menuText[ModeNone]
}

// OverlayBar returns a width x height bar filled with c.
func OverlayBar(width, height int, c color.RGBA) *image.RGBA {
	bar := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(bar, bar.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return bar
}

// drawMenuText writes the help line for m onto bar. Text past the bar's
// edges is clipped.
func drawMenuText(bar *image.RGBA, m Mode) {
	d := &font.Drawer{
		Dst:  bar,
		Src:  image.NewUniform(menuTextColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(menuTextOrigin.X, menuTextOrigin.Y),
	}
	d.DrawString(MenuText(m))
}

// Compose builds the frame shown in the window: a bar of height
// OverlayHeight(img) filled with c and labelled for m, stacked above img.
func Compose(img *image.RGBA, c color.RGBA, m Mode) *image.RGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	barH := OverlayHeight(img)

	bar := OverlayBar(w, barH, c)
	drawMenuText(bar, m)

	frame := image.NewRGBA(image.Rect(0, 0, w, barH+h))
	draw.Draw(frame, bar.Bounds(), bar, image.Point{}, draw.Src)
	draw.Draw(frame, image.Rect(0, barH, w, barH+h), img, img.Bounds().Min, draw.Src)
	return frame
}
