package render_test

import (
	"image"
	"image/png"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kleinian/render"
	"github.com/katalvlaran/kleinian/window"
)

// cloud is the fixture every raster test draws: the unit square's defining
// corners plus one interior point, so the fitted window is known and the
// third pixel separates column-major from row-major indexing.
var cloud = []complex128{0, 1 + 1i, 0.6 + 0.3i}

// TestGray_BufferConvention pins the flat-buffer layout on a non-square
// raster. On a 3×2 raster the interior point maps to pixel (1, 0):
// x·height+y addresses byte 2, while a row-major y·width+x would address
// byte 1. Only byte 2 may be painted.
func TestGray_BufferConvention(t *testing.T) {
	img, err := render.Gray(cloud, 3, 2)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), img.Bounds())
	require.Len(t, img.Pix, 6)

	// Corners land on bytes 0 and 5, the interior point on byte 2.
	want := []uint8{0, 0xFF, 0, 0xFF, 0xFF, 0}
	require.Equal(t, want, img.Pix)
}

// TestGray_Background paints three points on an 8×8 raster and checks
// every remaining byte stays white.
func TestGray_Background(t *testing.T) {
	img, err := render.Gray(cloud, 8, 8)
	require.NoError(t, err)

	painted := map[int]bool{0: true, 7*8 + 7: true, 4*8 + 2: true}
	for i, b := range img.Pix {
		if painted[i] {
			require.Equal(t, uint8(0), b, "byte %d", i)
			continue
		}
		require.Equal(t, uint8(0xFF), b, "byte %d", i)
	}
}

// TestRGBA_Channels checks the four-channel layout: painted points clear
// RGB at 4·(x·height+y) and never touch alpha.
func TestRGBA_Channels(t *testing.T) {
	img, err := render.RGBA(cloud, 3, 2)
	require.NoError(t, err)
	require.Len(t, img.Pix, 24)

	painted := map[int]bool{0: true, 2: true, 5: true}
	for px := 0; px < 6; px++ {
		r, g, b, a := img.Pix[4*px], img.Pix[4*px+1], img.Pix[4*px+2], img.Pix[4*px+3]
		require.Equal(t, uint8(0xFF), a, "pixel %d alpha", px)
		if painted[px] {
			require.Equal(t, uint8(0), r, "pixel %d", px)
			require.Equal(t, uint8(0), g, "pixel %d", px)
			require.Equal(t, uint8(0), b, "pixel %d", px)
			continue
		}
		require.Equal(t, uint8(0xFF), r, "pixel %d", px)
	}
}

// TestRasterize_WindowErrors keeps the window sentinels matchable through
// the wrap in both constructors.
func TestRasterize_WindowErrors(t *testing.T) {
	_, err := render.Gray(nil, 10, 10)
	require.ErrorIs(t, err, window.ErrEmptyPointSet)

	_, err = render.Gray([]complex128{0, complex(math.NaN(), 0)}, 10, 10)
	require.ErrorIs(t, err, window.ErrNonFinitePoint)

	_, err = render.Gray(cloud, 0, 10)
	require.ErrorIs(t, err, window.ErrBadDimensions)

	_, err = render.RGBA([]complex128{2i, 2i}, 10, 10)
	require.ErrorIs(t, err, window.ErrDegenerateExtent)
}

// TestSavePNG_RoundTrip writes a raster to disk and decodes it back
// byte-for-byte.
func TestSavePNG_RoundTrip(t *testing.T) {
	img, err := render.Gray(cloud, 8, 8)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "gasket.png")
	require.NoError(t, render.SavePNG(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	decoded, err := png.Decode(f)
	require.NoError(t, err)
	gray, ok := decoded.(*image.Gray)
	require.True(t, ok, "decoded %T, want *image.Gray", decoded)
	require.Equal(t, img.Pix, gray.Pix)
}

// TestSavePNG_BadPath surfaces the file-system error for an unwritable
// target.
func TestSavePNG_BadPath(t *testing.T) {
	img, err := render.Gray(cloud, 4, 4)
	require.NoError(t, err)

	err = render.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img)
	require.ErrorIs(t, err, fs.ErrNotExist)
}
