// Package ocr annotates signature candidates with text recognized by Tesseract.
//
// Candidates that carry readable text with high confidence are usually printed
// labels or stamps rather than handwriting, so the annotation lets a reviewer
// discard them. Recognition goes through gosseract/v2, which needs the Tesseract
// library and language data installed:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// The default language is English ("eng").
package ocr
