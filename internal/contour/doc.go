// Package contour traces iso-valued contours in a raster.Grid.
//
// Find walks every 2×2 cell of the grid (marching squares), emits a line segment
// wherever the level crosses the cell, and joins the segments into contours. Points
// lie on cell edges with sub-pixel precision found by linear interpolation, so a
// contour around a binary blob sits between the blob pixels and their neighbours.
//
// # Conventions
//
//   - Points are (Row, Col) in pixel units, origin at the top-left pixel center.
//   - Values strictly greater than the level are "high"; saddle cells connect the
//     low vertices, so diagonal high pixels stay in separate contours.
//   - Closed contours end with a copy of their first point.
//   - Contours are returned in the order their first segment was found, scanning
//     rows top to bottom and columns left to right.
//
// No contour runs along the image border: cells outside the grid do not exist, so a
// region touching the border yields an open contour.
package contour
