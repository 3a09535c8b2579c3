package screenshot

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/kbinani/screenshot"
)

// Region is a screen area to capture, in absolute pixels.
type Region struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Capture grabs a screenshot of region, or of the entire virtual desktop
// when region is nil, and returns it as PNG bytes.
func Capture(region *Region) ([]byte, error) {
	var bounds image.Rectangle
	if region == nil {
		vb, err := VirtualBounds()
		if err != nil {
			return nil, err
		}
		bounds = vb
	} else {
		if region.Width <= 0 || region.Height <= 0 {
			return nil, fmt.Errorf("invalid region dimensions: width=%d, height=%d", region.Width, region.Height)
		}
		bounds = image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	}

	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("failed to capture screen: %v", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image as PNG: %v", err)
	}
	return buf.Bytes(), nil
}

// VirtualBounds returns the union of all active display bounds, so captures
// and the selection overlay cover every monitor.
func VirtualBounds() (image.Rectangle, error) {
	n := screenshot.NumActiveDisplays()
	if n == 0 {
		return image.Rectangle{}, fmt.Errorf("no active displays found")
	}
	bounds := screenshot.GetDisplayBounds(0)
	for i := 1; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}
	return bounds, nil
}
