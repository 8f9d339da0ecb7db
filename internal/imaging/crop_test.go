package imaging

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

// decodeCrop turns a CropResult back into an image
func decodeCrop(t *testing.T, result *CropResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}
	return img
}

func TestCropRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	result, err := CropRegion(img, image.Rect(0, 0, 50, 50), 1.0)
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}

	if result.Width != 50 || result.Height != 50 {
		t.Errorf("dimensions: got %dx%d, want 50x50", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}

	// top-left quadrant is red
	r, g, b, _ := decodeCrop(t, result).At(25, 25).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("cropped color: got (%d,%d,%d), want (255,0,0)", r>>8, g>>8, b>>8)
	}
}

func TestCropRegion_Scale(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name         string
		r            image.Rectangle
		scale        float64
		wantW, wantH int
	}{
		{"up", image.Rect(0, 0, 50, 50), 2.0, 100, 100},
		{"down", image.Rect(0, 0, 100, 100), 0.5, 50, 50},
		{"ignored when not positive", image.Rect(10, 10, 30, 40), 0, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CropRegion(img, tt.r, tt.scale)
			if err != nil {
				t.Fatalf("CropRegion failed: %v", err)
			}
			if result.Width != tt.wantW || result.Height != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", result.Width, result.Height, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestCropRegion_Invalid(t *testing.T) {
	img := createInMemoryImage(100, 100, color.White)

	tests := []struct {
		name string
		r    image.Rectangle
	}{
		{"x1 negative", image.Rectangle{Min: image.Pt(-1, 0), Max: image.Pt(50, 50)}},
		{"x2 too large", image.Rectangle{Min: image.Pt(0, 0), Max: image.Pt(101, 50)}},
		{"y2 too large", image.Rectangle{Min: image.Pt(0, 0), Max: image.Pt(50, 101)}},
		{"zero width", image.Rectangle{Min: image.Pt(50, 0), Max: image.Pt(50, 50)}},
		{"inverted", image.Rectangle{Min: image.Pt(0, 60), Max: image.Pt(50, 50)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(img, tt.r, 1.0); err == nil {
				t.Error("CropRegion should fail")
			}
		})
	}
}

func TestExportRegion(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "page.png", createPatternImage(100, 100))
	dst := filepath.Join(dir, "page-signature-1.png")

	if err := ExportRegion(src, image.Rect(50, 50, 100, 80), dst); err != nil {
		t.Fatalf("ExportRegion failed: %v", err)
	}

	out, err := Load(dst)
	if err != nil {
		t.Fatalf("failed to reload export: %v", err)
	}
	if out.Bounds().Dx() != 50 || out.Bounds().Dy() != 30 {
		t.Errorf("dimensions: got %dx%d, want 50x30", out.Bounds().Dx(), out.Bounds().Dy())
	}
	// bottom-right quadrant is white
	r, g, b, _ := out.At(out.Bounds().Min.X+10, out.Bounds().Min.Y+10).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("exported color: got (%d,%d,%d), want white", r>>8, g>>8, b>>8)
	}
}

func TestExportRegion_Errors(t *testing.T) {
	dir := t.TempDir()
	src := writePNG(t, dir, "page.png", createInMemoryImage(20, 20, color.White))

	if err := ExportRegion(filepath.Join(dir, "missing.png"), image.Rect(0, 0, 5, 5), filepath.Join(dir, "a.png")); err == nil {
		t.Error("ExportRegion should fail for a missing source")
	}
	if err := ExportRegion(src, image.Rect(0, 0, 50, 50), filepath.Join(dir, "b.png")); err == nil {
		t.Error("ExportRegion should fail for a region outside the page")
	}
	if err := ExportRegion(src, image.Rect(0, 0, 5, 5), filepath.Join(dir, "c.unknown")); err == nil {
		t.Error("ExportRegion should fail for an unsupported extension")
	}
}

func TestPadRegion(t *testing.T) {
	bounds := image.Rect(0, 0, 100, 100)

	tests := []struct {
		name string
		r    image.Rectangle
		want image.Rectangle
	}{
		{"inside", image.Rect(20, 20, 40, 40), image.Rect(15, 15, 45, 45)},
		{"clipped", image.Rect(2, 90, 40, 99), image.Rect(0, 85, 45, 100)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PadRegion(tt.r, 5, bounds); got != tt.want {
				t.Errorf("PadRegion: got %v, want %v", got, tt.want)
			}
		})
	}
}
