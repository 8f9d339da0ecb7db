// Package signature locates handwritten signature candidates in a scanned page.
//
// The Detector runs a fixed, linear pipeline in which every stage narrows the
// candidate set produced by the one before it:
//
//  1. Binarize: intensities strictly above the threshold become true (paper).
//  2. Group: a tall, narrow erosion grows the ink so words merge into blobs.
//  3. Extract: iso-contours of the grouped page, keeping only long ones.
//  4. Classify: keep contours whose gradient profile is farther than average from
//     a purely horizontal or vertical stroke.
//  5. Bounding boxes: one integer box per surviving contour.
//  6. Re-analyze blocks: Sobel edges of the binarized page inside each box are
//     contoured again; boxes with fewer edge contours than average survive.
//  7. Assemble: inside each surviving block, keep contours longer than the block's
//     average.
//
// Selection at stages 4, 6 and 7 compares every value to its population mean with
// a strict inequality, so one candidate alone, or several that tie, never survive.
// An empty Result means "no signature candidates", not failure.
//
// # Configuration
//
// Config exposes the pipeline constants with their fixed defaults. LoadConfig reads
// a YAML file over those defaults.
//
// # Concurrency
//
// A Detector is immutable after construction and may be shared. Each Detect call
// runs synchronously on its own data.
package signature
