// SPDX-License-Identifier: MIT

package window

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// margin shrinks the fitted scale so the extreme points of the cloud land
// strictly inside the raster instead of on its boundary.
const margin = 0.999

// Transform is the affine map from the point plane onto a pixel raster.
// Scale applies to both axes; XOff and YOff are the point-plane coordinates
// of the raster's lower-left corner. The zero value is useless; build one
// with New.
type Transform struct {
	Scale float64 // pixels per unit length, equal on both axes
	XOff  float64 // point-plane x of the left raster edge
	YOff  float64 // point-plane y of the bottom raster edge

	width  int // raster width in pixels, clamp bound for Apply
	height int // raster height in pixels, clamp bound for Apply
}

// New fits a Transform to the bounding box of pts so that the whole cloud
// lands inside a width×height raster, centered and slightly inset.
//
// Returns:
//
//   - ErrBadDimensions if width or height is below 1.
//   - ErrEmptyPointSet if pts is empty.
//   - ErrNonFinitePoint if any coordinate is NaN or Inf.
//   - ErrDegenerateExtent if all points coincide.
//
// Complexity: O(len(pts)) time and space.
func New(pts []complex128, width, height int) (Transform, error) {
	// 1) Validate the raster dimensions.
	if width < 1 || height < 1 {
		return Transform{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}

	// 2) An empty cloud has no bounding box.
	if len(pts) == 0 {
		return Transform{}, ErrEmptyPointSet
	}

	// 3) Split the coordinates and refuse non-finite values: a NaN would
	//    poison the extrema, an Inf would zero the scale.
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	var re, im float64
	for i, p := range pts {
		re, im = real(p), imag(p)
		if math.IsNaN(re) || math.IsInf(re, 0) || math.IsNaN(im) || math.IsInf(im, 0) {
			return Transform{}, fmt.Errorf("%w: point %d = %v", ErrNonFinitePoint, i, p)
		}
		xs[i] = re
		ys[i] = im
	}

	// 4) Bounding box of the cloud.
	xmin, xmax := floats.Min(xs), floats.Max(xs)
	ymin, ymax := floats.Min(ys), floats.Max(ys)
	dx, dy := xmax-xmin, ymax-ymin

	// 5) A cloud of one distinct point cannot fix a finite scale.
	if dx == 0 && dy == 0 {
		return Transform{}, fmt.Errorf("%w: every point equals %v", ErrDegenerateExtent, pts[0])
	}

	// 6) One scale for both axes keeps the aspect ratio; the tighter axis
	//    wins. A box flat in one direction divides to +Inf there and the
	//    other axis takes the min.
	scale := math.Min(float64(width)/dx, float64(height)/dy) * margin

	// 7) Center the box: each offset is the box center pulled back by half
	//    the raster extent in point units.
	return Transform{
		Scale:  scale,
		XOff:   (xmin+xmax)/2 - float64(width)/(2*scale),
		YOff:   (ymin+ymax)/2 - float64(height)/(2*scale),
		width:  width,
		height: height,
	}, nil
}

// Apply maps the point z to raster coordinates. The integer cast truncates,
// which floors the non-negative values every point inside the fitted cloud
// produces; the clamp covers callers applying the transform outside it.
func (tr Transform) Apply(z complex128) (x, y int) {
	x = clamp(int(tr.Scale*(real(z)-tr.XOff)), tr.width-1)
	y = clamp(int(tr.Scale*(imag(z)-tr.YOff)), tr.height-1)

	return x, y
}

// clamp restricts v to [0, hi].
func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}

	return v
}
