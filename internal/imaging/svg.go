package imaging

import (
	"encoding/base64"
	"fmt"
	"math"
	"strings"
	"time"
)

// Viewport is the display area captures are scaled to fit.
type Viewport struct {
	Width  float64
	Height float64
}

// DefaultViewport approximates a phone screen in points.
var DefaultViewport = Viewport{Width: 390, Height: 844}

// scaleToFit computes display dimensions for an image inside the
// viewport. Width is clamped first and height derived from the aspect
// ratio; if the derived height overflows, width is re-clamped from the
// viewport height. Both passes preserve the aspect ratio exactly.
func scaleToFit(imageWidth, imageHeight int, vp Viewport) (float64, float64) {
	aspect := float64(imageWidth) / float64(imageHeight)

	width := math.Min(vp.Width, float64(imageWidth))
	height := width / aspect

	if height > vp.Height {
		width = math.Min(vp.Height*aspect, float64(imageWidth))
		height = width / aspect
	}
	return width, height
}

// Overlay is the annotation drawn on a scaled capture.
type Overlay struct {
	Location   string
	CapturedAt time.Time
}

// ComposeOverlay embeds the capture in a vector document with the
// location and timestamp labels positioned relative to the scaled
// dimensions. Text size tracks the scaled height.
func ComposeOverlay(c *Capture, o Overlay, vp Viewport) string {
	width, height := scaleToFit(c.Width, c.Height, vp)
	textSize := height * 0.03

	location := o.Location
	if location == "" {
		location = "N/A"
	}
	encoded := base64.StdEncoding.EncodeToString(c.Bytes)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%g" height="%g" xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMidYMid meet">`+"\n", width, height)
	fmt.Fprintf(&b, `  <image href="data:image/jpeg;base64,%s" width="%g" height="%g" preserveAspectRatio="xMidYMid meet"/>`+"\n", encoded, width, height)
	fmt.Fprintf(&b, `  <text x="%g" y="%g" font-size="%g" fill="red" font-family="Arial" font-weight="bold" text-anchor="start">Location: %s</text>`+"\n",
		width*0.05, height*0.9, textSize, location)
	fmt.Fprintf(&b, `  <text x="%g" y="%g" font-size="%g" fill="red" font-family="Arial" font-weight="bold" text-anchor="start">Time&amp;Date: %s</text>`+"\n",
		width*0.05, height*0.95, textSize, o.CapturedAt.Format("1/2/2006, 3:04:05 PM"))
	b.WriteString(`</svg>`)
	return b.String()
}

// ComposeWatermark is the full-frame variant used when no reverse
// geocoding is available: raw coordinates plus the EXIF capture time
// over a black backdrop.
func ComposeWatermark(c *Capture, pos *Position) string {
	offsetTime := exifOr(c, "OffsetTimeOriginal")
	dateTime := exifOr(c, "DateTimeOriginal")

	location := "N/A"
	if pos != nil {
		location = fmt.Sprintf("%g, %g", pos.Lat, pos.Lon)
	}
	encoded := base64.StdEncoding.EncodeToString(c.Bytes)

	var b strings.Builder
	b.WriteString(`<svg width="100%" height="100%" xmlns="http://www.w3.org/2000/svg" preserveAspectRatio="xMidYMid meet">` + "\n")
	b.WriteString(`  <rect width="100%" height="100%" fill="black"/>` + "\n")
	fmt.Fprintf(&b, `  <image href="data:image/jpeg;base64,%s" width="100%%" height="100%%" preserveAspectRatio="xMidYMid meet"/>`+"\n", encoded)
	fmt.Fprintf(&b, `  <text x="10" y="75%%" font-size="10" fill="white" font-family="Arial" font-weight="bold">OffsetTime: %s</text>`+"\n", offsetTime)
	fmt.Fprintf(&b, `  <text x="10" y="85%%" font-size="10" fill="white" font-family="Arial" font-weight="bold">Time&amp;Date: %s</text>`+"\n", dateTime)
	fmt.Fprintf(&b, `  <text x="10" y="95%%" font-size="10" fill="white" font-family="Arial" font-weight="bold">Location: %s</text>`+"\n", location)
	b.WriteString(`</svg>`)
	return b.String()
}

func exifOr(c *Capture, tag string) string {
	if v, ok := c.EXIF[tag]; ok && v != "" {
		return v
	}
	return "N/A"
}
