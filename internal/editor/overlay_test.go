package editor

import (
	"image"
	"image/color"
	"testing"
)

func TestOverlayBar_Filled(t *testing.T) {
	colors := []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{10, 20, 30, 255},
		{255, 0, 128, 255},
	}
	for _, c := range colors {
		bar := OverlayBar(120, 12, c)
		if bar.Bounds() != image.Rect(0, 0, 120, 12) {
			t.Fatalf("bounds = %v", bar.Bounds())
		}
		for y := 0; y < 12; y++ {
			for x := 0; x < 120; x++ {
				if got := bar.RGBAAt(x, y); got != c {
					t.Fatalf("color %v: pixel (%d,%d) = %v", c, x, y, got)
				}
			}
		}
	}
}

func TestCompose_Size(t *testing.T) {
	tests := []struct {
		width, height int
		barHeight     int
	}{
		{100, 100, 10},
		{640, 480, 48},
		{33, 99, 9},
		{50, 5, 0},
	}
	for _, tt := range tests {
		img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
		if got := OverlayHeight(img); got != tt.barHeight {
			t.Errorf("%dx%d: overlay height %d, want %d", tt.width, tt.height, got, tt.barHeight)
		}
		for m := ModeNone; m <= ModeRegion; m++ {
			frame := Compose(img, color.RGBA{1, 2, 3, 255}, m)
			want := image.Rect(0, 0, tt.width, tt.height+tt.barHeight)
			if frame.Bounds() != want {
				t.Errorf("%dx%d mode %v: frame %v, want %v", tt.width, tt.height, m, frame.Bounds(), want)
			}
		}
	}
}

func TestCompose_DrawsMenuText(t *testing.T) {
	bg := color.RGBA{0, 0, 255, 255}
	img := image.NewRGBA(image.Rect(0, 0, 400, 600))

	frame := Compose(img, bg, ModeDraw)

	found := false
	for y := 0; y < 60 && !found; y++ {
		for x := 100; x < 400; x++ {
			if frame.RGBAAt(x, y) == menuTextColor {
				found = true
				break
			}
		}
	}
	if !found {
		t.Error("menu text not drawn on the bar")
	}

	// Text starts at the fixed origin.
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			if got := frame.RGBAAt(x, y); got != bg {
				t.Fatalf("pixel (%d,%d) left of the text = %v", x, y, got)
			}
		}
	}
}

func TestCompose_DoesNotModifyImage(t *testing.T) {
	img := createGradientImage(100, 100)
	want := copyImage(img)

	Compose(img, color.RGBA{255, 255, 0, 255}, ModeFilter)

	sameImage(t, img, want)
}

func TestMenuText(t *testing.T) {
	if MenuText(ModeNone) != "Select a Mode" {
		t.Errorf("MenuText(ModeNone) = %q", MenuText(ModeNone))
	}
	if MenuText(Mode(42)) != MenuText(ModeNone) {
		t.Error("unknown mode should fall back to the default text")
	}
	for m := ModeNone; m <= ModeRegion; m++ {
		if MenuText(m) == "" {
			t.Errorf("empty text for %v", m)
		}
	}
}
