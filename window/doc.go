// SPDX-License-Identifier: MIT

// Package window fits a cloud of complex points onto an integer pixel grid.
//
// Overview:
//
//   - New scans the cloud once, takes its bounding box, and derives the
//     affine map pixel = scale·(coordinate − offset) that centers the box
//     inside a width×height raster. A single scale serves both axes, so
//     the cloud keeps its aspect ratio; a small margin keeps the extreme
//     points off the raster boundary.
//   - Apply maps one point to its pixel pair, truncating to integers and
//     clamping to the raster, so callers can index image buffers without
//     their own bounds checks. The y coordinate grows with the imaginary
//     part; callers that want screen orientation flip it themselves.
//
// Error handling (sentinel errors):
//
//   - ErrBadDimensions:    width or height below one pixel.
//   - ErrEmptyPointSet:    no points, hence no bounding box.
//   - ErrNonFinitePoint:   a NaN or Inf coordinate in the cloud.
//   - ErrDegenerateExtent: every point identical, no finite scale exists.
package window
