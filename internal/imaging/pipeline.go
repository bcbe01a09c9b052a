package imaging

import (
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/homedoc/homedoc/internal/blob"
)

// Pipeline runs capture → annotate → upload. Each invocation makes at
// most one upload call; there is no retry, the caller re-invokes on
// failure.
type Pipeline struct {
	device CaptureDevice
	geo    Geolocator
	blobs  blob.Store
	vp     Viewport
	now    func() time.Time
}

// NewPipeline creates a pipeline over the given collaborators.
func NewPipeline(device CaptureDevice, geo Geolocator, blobs blob.Store, vp Viewport) *Pipeline {
	if vp.Width <= 0 || vp.Height <= 0 {
		vp = DefaultViewport
	}
	return &Pipeline{device: device, geo: geo, blobs: blobs, vp: vp, now: time.Now}
}

// RasterKey derives the blob key for a raster payload: an MD5 of the
// base64 encoding with a fixed .png extension.
func RasterKey(data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("images/%x.png", md5.Sum([]byte(encoded)))
}

// VectorKey derives the blob key for a composed vector document.
func VectorKey(svg string) string {
	return fmt.Sprintf("images/%x.svg", md5.Sum([]byte(svg)))
}

// UploadRaster stores raw image bytes under their content-derived key
// and returns the durable URL.
func (p *Pipeline) UploadRaster(ctx context.Context, data []byte) (string, error) {
	url, err := p.blobs.Upload(ctx, RasterKey(data), data, "image/png")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}

// UploadVector stores a composed vector document and returns the
// durable URL.
func (p *Pipeline) UploadVector(ctx context.Context, svg string) (string, error) {
	url, err := p.blobs.Upload(ctx, VectorKey(svg), []byte(svg), "image/svg+xml")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}

// CaptureRaster captures an image and uploads it as-is, returning the
// durable URL.
func (p *Pipeline) CaptureRaster(ctx context.Context) (string, error) {
	if err := p.device.RequestPermission(ctx); err != nil {
		return "", err
	}
	c, err := p.device.Capture(ctx)
	if err != nil {
		return "", err
	}
	return p.UploadRaster(ctx, c.Bytes)
}

// CaptureVector captures an image, acquires and reverse-geocodes the
// current position, and composes the annotated vector document. When
// reverse geocoding is unavailable the watermark variant is composed
// instead, carrying the raw coordinates and the device EXIF time. The
// document is returned for local preview, not yet uploaded.
func (p *Pipeline) CaptureVector(ctx context.Context) (string, error) {
	if err := p.geo.RequestPermission(ctx); err != nil {
		return "", fmt.Errorf("%w: location: %v", ErrPermissionDenied, err)
	}
	if err := p.device.RequestPermission(ctx); err != nil {
		return "", err
	}

	pos, err := p.geo.CurrentPosition(ctx)
	if err != nil {
		return "", fmt.Errorf("getting position: %w", err)
	}

	c, err := p.device.Capture(ctx)
	if err != nil {
		return "", err
	}

	place, err := p.geo.ReverseGeocode(ctx, pos)
	if err != nil {
		return ComposeWatermark(c, &pos), nil
	}

	overlay := Overlay{Location: place.String(), CapturedAt: p.now()}
	return ComposeOverlay(c, overlay, p.vp), nil
}

// CaptureWatermark captures an image and composes the watermark
// variant directly, skipping reverse geocoding. A position fix is
// attached when available; without one the coordinates read N/A.
func (p *Pipeline) CaptureWatermark(ctx context.Context) (string, error) {
	if err := p.device.RequestPermission(ctx); err != nil {
		return "", err
	}

	c, err := p.device.Capture(ctx)
	if err != nil {
		return "", err
	}

	var pos *Position
	if err := p.geo.RequestPermission(ctx); err == nil {
		if fix, err := p.geo.CurrentPosition(ctx); err == nil {
			pos = &fix
		}
	}
	return ComposeWatermark(c, pos), nil
}

// CaptureAnnotated runs the full vector pipeline and uploads the
// result, returning the durable URL.
func (p *Pipeline) CaptureAnnotated(ctx context.Context) (string, error) {
	svg, err := p.CaptureVector(ctx)
	if err != nil {
		return "", err
	}
	return p.UploadVector(ctx, svg)
}
