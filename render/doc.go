// Package render rasterizes limit-set point clouds into stdlib images.
//
// Both constructors fit a window.Transform over the cloud themselves and
// draw black points on a white background. The flat pixel buffer is
// addressed x·height+y (column-major by height); consumers doing manual
// buffer writes must keep that convention. Gray produces the 8-bit grayscale
// raster the CLI writes to disk; RGBA produces the byte layout a browser
// canvas consumes.
//
// Errors from the window fit (empty cloud, non-finite points, degenerate
// extent, bad dimensions) pass through wrapped and stay matchable with
// errors.Is. SavePNG adds the file-system and encoding errors of writing
// the output.
package render
