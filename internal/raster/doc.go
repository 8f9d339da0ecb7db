// Package raster holds the numeric image representations used by the signature
// pipeline and the low-level operations on them.
//
// A Grid is a row-major float64 intensity image and a Mask is its boolean
// counterpart. Both use the coordinate convention of the imaging package:
// (0,0) is the top-left pixel, X grows rightward (columns) and Y grows downward
// (rows).
//
// # Operations
//
//   - FromImage: decode-side grayscale conversion into [0,1] intensities
//   - Threshold: fixed-level binarization (strictly greater than the level)
//   - ErodeRect: binary erosion with a rectangular all-ones structuring element
//   - Sobel: gradient magnitude restricted to a mask
//
// All operations allocate a new result and never modify their inputs.
package raster
