package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// CropResult contains an encoded crop of a page.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// checkRegion validates r against bounds. r must be non-empty and fully inside.
func checkRegion(r, bounds image.Rectangle) error {
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return fmt.Errorf("invalid crop region %v: min must be less than max", r)
	}
	if !r.In(bounds) {
		return fmt.Errorf("crop region %v outside image bounds %v", r, bounds)
	}
	return nil
}

// CropRegion cuts r out of img, optionally rescales it, and returns it as a
// base64 PNG.
func CropRegion(img image.Image, r image.Rectangle, scale float64) (*CropResult, error) {
	if err := checkRegion(r, img.Bounds()); err != nil {
		return nil, err
	}

	cropped := imaging.Crop(img, r)

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, cropped, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveRegion crops r out of img and saves it to dst. The output format
// follows dst's extension.
func SaveRegion(img image.Image, r image.Rectangle, dst string) error {
	if err := checkRegion(r, img.Bounds()); err != nil {
		return err
	}
	if err := imaging.Save(imaging.Crop(img, r), dst); err != nil {
		return fmt.Errorf("failed to save crop to %s: %w", dst, err)
	}
	return nil
}

// ExportRegion loads srcPath and saves region r of it to dst.
func ExportRegion(srcPath string, r image.Rectangle, dst string) error {
	img, err := Load(srcPath)
	if err != nil {
		return err
	}
	return SaveRegion(img, r, dst)
}

// PadRegion grows r by margin pixels on every side, clipped to bounds.
func PadRegion(r image.Rectangle, margin int, bounds image.Rectangle) image.Rectangle {
	return r.Inset(-margin).Intersect(bounds)
}
