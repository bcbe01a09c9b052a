// Package imaging turns a raw camera capture plus a geolocation fix
// into a durable, annotated image reference.
package imaging

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// Pipeline error kinds. Each aborts only the current capture action;
// prior aggregate state stays intact and the caller re-invokes.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrCaptureFailed    = errors.New("capture failed")
	ErrUploadFailed     = errors.New("upload failed")
)

// Capture is one raw camera result: image bytes plus dimensions and
// whatever EXIF tags the device reported.
type Capture struct {
	Bytes  []byte
	Width  int
	Height int
	EXIF   map[string]string
}

// CaptureDevice abstracts the camera. Capture returns ErrCaptureFailed
// (wrapped) when the device produces no asset.
type CaptureDevice interface {
	RequestPermission(ctx context.Context) error
	Capture(ctx context.Context) (*Capture, error)
}

// FileDevice is a capture device backed by an image file on disk. It
// stands in for camera hardware in server and CLI contexts.
type FileDevice struct {
	Path string
}

// RequestPermission checks the file is readable.
func (d FileDevice) RequestPermission(_ context.Context) error {
	f, err := os.Open(d.Path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPermissionDenied, err)
	}
	return f.Close()
}

// Capture reads the file and probes its dimensions.
func (d FileDevice) Capture(_ context.Context) (*Capture, error) {
	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrCaptureFailed, d.Path, err)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrCaptureFailed, d.Path, err)
	}

	c := &Capture{Bytes: data, Width: cfg.Width, Height: cfg.Height}
	// File modification time stands in for the capture time tags a
	// camera would report.
	if fi, err := os.Stat(d.Path); err == nil {
		mod := fi.ModTime()
		c.EXIF = map[string]string{
			"DateTimeOriginal":   mod.Format("2006:01:02 15:04:05"),
			"OffsetTimeOriginal": mod.Format("-07:00"),
		}
	}
	return c, nil
}
