// Package imaging loads scanned pages and writes the artifacts of a signature
// search: crops of candidate regions and annotated overlays.
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X increasing
// rightward and Y downward. Regions are half-open: Min is inclusive and Max is
// exclusive. Overlay boxes are the one exception and are drawn with Max
// inclusive so the outline matches a bounding box's extreme pixels.
//
// Decoding goes through disintegration/imaging with EXIF auto-orientation and
// understands PNG, JPEG, GIF, BMP and TIFF. ImageCache is safe for concurrent
// use; the other functions are stateless.
package imaging
