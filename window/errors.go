// SPDX-License-Identifier: MIT

package window

import "errors"

// Sentinel errors returned by New.
var (
	// ErrEmptyPointSet indicates that the point cloud is empty.
	ErrEmptyPointSet = errors.New("window: point set is empty")

	// ErrBadDimensions indicates a raster narrower or shorter than one pixel.
	ErrBadDimensions = errors.New("window: width and height must be at least 1")

	// ErrNonFinitePoint indicates a NaN or Inf coordinate in the cloud.
	ErrNonFinitePoint = errors.New("window: point coordinates must be finite")

	// ErrDegenerateExtent indicates that every point in the cloud is
	// identical, so no finite scale can spread it over the raster.
	ErrDegenerateExtent = errors.New("window: point cloud collapses to a single point")
)
