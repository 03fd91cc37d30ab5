package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestFlipRGBA(t *testing.T) {
	// 1x2 image: bottom row red, top row blue (OpenGL order)
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	img := FlipRGBA(pixels, 1, 2)

	if r, _, b, _ := img.At(0, 0).RGBA(); b == 0 || r != 0 {
		t.Errorf("top row should be blue")
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom row should be red")
	}
}

func TestCaptureFromPixels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "meshview")
	sc.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }

	pixels := make([]byte, 4*3*4)
	path, err := sc.CaptureFromPixels(pixels, 4, 3)
	if err != nil {
		t.Fatalf("CaptureFromPixels failed: %v", err)
	}

	if want := filepath.Join(dir, "meshview_2024-05-01_12-30-00.000.png"); path != want {
		t.Errorf("got path %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open screenshot: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("not a PNG: %v", err)
	}
	if cfg.Width != 4 || cfg.Height != 3 {
		t.Errorf("got %dx%d, want 4x3", cfg.Width, cfg.Height)
	}
}

func TestCaptureFromPixelsRejectsBadInput(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")

	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil || !strings.Contains(err.Error(), "mismatch") {
		t.Errorf("expected size mismatch error, got %v", err)
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty size")
	}
}
