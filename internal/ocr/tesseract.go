package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// DefaultLanguage is used when no language is given.
const DefaultLanguage = "eng"

// Word is one recognized word inside an annotated region.
type Word struct {
	Text string `json:"text"`

	// Confidence is Tesseract's word confidence scaled to 0..1.
	Confidence float64 `json:"confidence"`

	// Bounds is in the coordinates of the full page, not the crop.
	Bounds image.Rectangle `json:"bounds"`
}

// Annotation is the OCR reading of one page region.
type Annotation struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Words      []Word  `json:"words"`
}

// HasText reports whether any word was recognized.
func (a *Annotation) HasText() bool {
	return len(a.Words) > 0
}

// AnnotateRegion crops rect out of img and runs Tesseract on it. Confidence is
// the mean confidence of the recognized words, zero when there are none.
func AnnotateRegion(img image.Image, rect image.Rectangle, lang string) (*Annotation, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to annotate")
	}
	region := rect.Canon().Intersect(img.Bounds())
	if region.Empty() {
		return nil, fmt.Errorf("region %v is outside image bounds %v", rect, img.Bounds())
	}
	if lang == "" {
		lang = DefaultLanguage
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.Crop(img, region), imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode region: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	ann := &Annotation{Text: strings.TrimSpace(text), Words: []Word{}}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// text without word boxes is still useful
		return ann, nil
	}
	ann.Words = collectWords(boxes, region.Min)
	ann.Confidence = meanConfidence(ann.Words)
	return ann, nil
}

// collectWords converts Tesseract boxes to page coordinates, dropping empty words.
func collectWords(boxes []gosseract.BoundingBox, offset image.Point) []Word {
	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		if strings.TrimSpace(box.Word) == "" {
			continue
		}
		words = append(words, Word{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds:     box.Box.Add(offset),
		})
	}
	return words
}

func meanConfidence(words []Word) float64 {
	if len(words) == 0 {
		return 0
	}
	var sum float64
	for _, w := range words {
		sum += w.Confidence
	}
	return sum / float64(len(words))
}

// Version returns the linked Tesseract version.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}
