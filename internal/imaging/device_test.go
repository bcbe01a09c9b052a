package imaging

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTestPNG(t *testing.T, width, height int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "capture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test image: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			t.Errorf("closing test image: %v", err)
		}
	}()

	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return path
}

func TestFileDeviceCapture(t *testing.T) {
	path := writeTestPNG(t, 12, 8)
	d := FileDevice{Path: path}

	if err := d.RequestPermission(context.Background()); err != nil {
		t.Fatalf("permission: %v", err)
	}

	c, err := d.Capture(context.Background())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if c.Width != 12 || c.Height != 8 {
		t.Errorf("dimensions = %dx%d, want 12x8", c.Width, c.Height)
	}
	if len(c.Bytes) == 0 {
		t.Error("capture has no bytes")
	}
}

func TestFileDeviceCaptureTime(t *testing.T) {
	path := writeTestPNG(t, 4, 4)
	mod := time.Date(2025, 6, 1, 15, 4, 5, 0, time.Local)
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("setting mtime: %v", err)
	}

	c, err := FileDevice{Path: path}.Capture(context.Background())
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if got := c.EXIF["DateTimeOriginal"]; got != "2025:06:01 15:04:05" {
		t.Errorf("DateTimeOriginal = %q, want 2025:06:01 15:04:05", got)
	}
	if got := c.EXIF["OffsetTimeOriginal"]; got != mod.Format("-07:00") {
		t.Errorf("OffsetTimeOriginal = %q, want %q", got, mod.Format("-07:00"))
	}
}

func TestFileDeviceMissingFile(t *testing.T) {
	d := FileDevice{Path: filepath.Join(t.TempDir(), "nope.png")}

	if err := d.RequestPermission(context.Background()); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("permission err = %v, want ErrPermissionDenied", err)
	}
	if _, err := d.Capture(context.Background()); !errors.Is(err, ErrCaptureFailed) {
		t.Errorf("capture err = %v, want ErrCaptureFailed", err)
	}
}

func TestFileDeviceRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-an-image.png")
	if err := os.WriteFile(path, []byte("plain text"), 0o644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	d := FileDevice{Path: path}
	if _, err := d.Capture(context.Background()); !errors.Is(err, ErrCaptureFailed) {
		t.Errorf("err = %v, want ErrCaptureFailed", err)
	}
}
