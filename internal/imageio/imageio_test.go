package imageio

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.NRGBA
			switch {
			case x < width/2 && y < height/2:
				c = color.NRGBA{255, 0, 0, 255}
			case x >= width/2 && y < height/2:
				c = color.NRGBA{0, 255, 0, 255}
			case x < width/2:
				c = color.NRGBA{0, 0, 255, 255}
			default:
				c = color.NRGBA{255, 255, 255, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return path
}

func TestLoad_PNG(t *testing.T) {
	path := writePNG(t, createPatternImage(40, 20))

	img, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 40, 20) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("top-left = %v", got)
	}
	if got := img.RGBAAt(39, 19); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("bottom-right = %v", got)
	}
}

func TestLoad_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := jpeg.Encode(f, createPatternImage(32, 32), nil); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jpg"), Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, Options{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestLoad_MaxSize(t *testing.T) {
	path := writePNG(t, createPatternImage(200, 100))

	img, err := Load(path, Options{MaxSize: 50})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 50 || img.Bounds().Dy() != 25 {
		t.Errorf("fitted bounds = %v, want 50x25", img.Bounds())
	}
}

func TestPrepare_SmallerThanMaxSize(t *testing.T) {
	img, err := Prepare(createPatternImage(10, 10), Options{MaxSize: 50})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 10, 10) {
		t.Errorf("bounds = %v", img.Bounds())
	}
}

func TestPrepare_Empty(t *testing.T) {
	_, err := Prepare(image.NewRGBA(image.Rect(0, 0, 0, 0)), Options{})
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("got %v, want ErrEmptyImage", err)
	}
	_, err = Prepare(nil, Options{})
	if !errors.Is(err, ErrEmptyImage) {
		t.Errorf("nil image: got %v, want ErrEmptyImage", err)
	}
}

func TestPrepare_Rebases(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 15, 10))
	src.SetRGBA(5, 5, color.RGBA{1, 2, 3, 255})

	img, err := Prepare(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds() != image.Rect(0, 0, 10, 5) {
		t.Errorf("bounds = %v", img.Bounds())
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("origin pixel = %v", got)
	}
}

func TestPrepare_ReturnsCopy(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img, err := Prepare(src, Options{})
	if err != nil {
		t.Fatal(err)
	}
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	if src.RGBAAt(0, 0) == img.RGBAAt(0, 0) {
		t.Error("Prepare shares pixels with its input")
	}
}

func TestPixels_RGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(0, 0, color.RGBA{1, 2, 3, 255})
	src.SetRGBA(2, 1, color.RGBA{7, 8, 9, 255})

	px := Pixels(src, nil)
	if len(px) != 6 {
		t.Fatalf("got %d pixels, want 6", len(px))
	}
	if px[0] != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("first pixel = %v", px[0])
	}
	if px[5] != (color.RGBA{7, 8, 9, 255}) {
		t.Errorf("last pixel = %v", px[5])
	}
}

func TestPixels_SubImageAndReuse(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.SetRGBA(2, 2, color.RGBA{50, 60, 70, 255})
	sub := src.SubImage(image.Rect(2, 2, 4, 4))

	buf := make([]color.RGBA, 0, 16)
	px := Pixels(sub, buf)
	if len(px) != 4 {
		t.Fatalf("got %d pixels, want 4", len(px))
	}
	if &px[0] != &buf[:1][0] {
		t.Error("buffer with enough capacity was not reused")
	}
	if px[0] != (color.RGBA{50, 60, 70, 255}) {
		t.Errorf("sub-image origin = %v", px[0])
	}
}

func TestPixels_OtherModels(t *testing.T) {
	src := createPatternImage(4, 4)

	px := Pixels(src, nil)
	if px[0] != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("top-left = %v", px[0])
	}
	if px[15] != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("bottom-right = %v", px[15])
	}
}
