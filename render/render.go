package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/katalvlaran/kleinian/window"
)

// Gray rasterizes the cloud into an 8-bit grayscale image: background 255,
// a 0 byte at every pixel some point maps to, indexed x·height+y in the
// flat buffer.
//
// The window fit runs here, so its sentinels (window.ErrEmptyPointSet,
// window.ErrNonFinitePoint, window.ErrDegenerateExtent,
// window.ErrBadDimensions) surface wrapped.
//
// Complexity: O(width·height + len(pts)).
func Gray(pts []complex128, width, height int) (*image.Gray, error) {
	// 1) Fit the viewport over the cloud.
	tr, err := window.New(pts, width, height)
	if err != nil {
		return nil, fmt.Errorf("render: fitting window: %w", err)
	}

	// 2) White background.
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	// 3) One black byte per mapped point.
	var x, y int
	for _, p := range pts {
		x, y = tr.Apply(p)
		img.Pix[x*height+y] = 0
	}

	return img, nil
}

// RGBA rasterizes the cloud into four-channel bytes: every channel starts
// at 255 (opaque white) and each mapped point clears R, G and B to 0 at
// index 4·(x·height+y), leaving alpha untouched.
//
// Window-fit sentinels surface wrapped, as in Gray.
func RGBA(pts []complex128, width, height int) (*image.RGBA, error) {
	tr, err := window.New(pts, width, height)
	if err != nil {
		return nil, fmt.Errorf("render: fitting window: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}

	var x, y, idx int
	for _, p := range pts {
		x, y = tr.Apply(p)
		idx = 4 * (x*height + y)
		img.Pix[idx] = 0
		img.Pix[idx+1] = 0
		img.Pix[idx+2] = 0
	}

	return img, nil
}

// SavePNG writes img to path as a PNG file, creating or truncating it.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: creating %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("render: encoding %s: %w", path, err)
	}

	return nil
}
