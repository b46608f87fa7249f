package main

import (
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// serve runs one request through the render handler and returns the recorder.
func serve(t *testing.T, handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	return rr
}

// TestRenderHandler_Gasket renders the Apollonian gasket small and checks a
// decodable PNG of the requested size comes back.
func TestRenderHandler_Gasket(t *testing.T) {
	rr := serve(t, renderHandler, "/render?re1=2&im1=0&re2=2&im2=0&n=100&width=64&height=64")

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	require.Equal(t, "image/png", rr.Header().Get("Content-Type"))

	img, err := png.Decode(rr.Body)
	require.NoError(t, err)
	require.Equal(t, 64, img.Bounds().Dx())
	require.Equal(t, 64, img.Bounds().Dy())
}

// TestRenderHandler_BadRequest maps every class of client mistake to 400.
func TestRenderHandler_BadRequest(t *testing.T) {
	cases := []struct {
		name   string
		target string
	}{
		{"missing traces", "/render"},
		{"unparseable trace", "/render?re1=abc&im1=0&re2=2&im2=0"},
		{"zero points", "/render?re1=2&im1=0&re2=2&im2=0&n=0"},
		{"oversized raster", "/render?re1=2&im1=0&re2=2&im2=0&width=9999"},
		{"points over cap", "/render?re1=2&im1=0&re2=2&im2=0&n=9999999"},
		{"singular traces", "/render?re1=2&im1=2&re2=2&im2=0"},
		{"singular x trace", "/render?scheme=xii&re1=0&im1=0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := serve(t, renderHandler, tc.target)
			require.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
		})
	}
}

// TestRenderHandler_SchemeXSkipsSecondTrace accepts an xii request without
// re2/im2: the single-trace recipe never reads them.
func TestRenderHandler_SchemeXSkipsSecondTrace(t *testing.T) {
	rr := serve(t, renderHandler, "/render?scheme=xii&re1=1.87&im1=0.1&n=50&width=32&height=32")

	// The only acceptable failure is a server-side one from degenerate
	// geometry, never a parameter complaint.
	require.NotEqual(t, http.StatusBadRequest, rr.Code, rr.Body.String())
}

// TestIndexHandler serves the form at the root and nothing else.
func TestIndexHandler(t *testing.T) {
	rr := serve(t, indexHandler, "/")
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	require.True(t, strings.Contains(rr.Body.String(), "<form"), "index page lost its form")

	rr = serve(t, indexHandler, "/nonsense")
	require.Equal(t, http.StatusNotFound, rr.Code)
}
