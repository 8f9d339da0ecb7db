package signature

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/ironsheep/sigfind/internal/contour"
	"github.com/ironsheep/sigfind/internal/raster"
)

// Detector runs the signature pipeline with one Config.
type Detector struct {
	cfg Config
	log *zap.Logger
}

// Option customizes a Detector.
type Option func(*Detector)

// WithLogger sets the logger used for stage reports. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(d *Detector) {
		if l != nil {
			d.log = l
		}
	}
}

// NewDetector validates cfg and returns a Detector. Logging is off unless
// WithLogger is given.
func NewDetector(cfg Config, opts ...Option) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Detector{cfg: cfg, log: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Config returns the detector's configuration.
func (d *Detector) Config() Config {
	return d.cfg
}

// Detect converts img to grayscale and runs the pipeline on it.
func (d *Detector) Detect(img image.Image) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to analyze")
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("image has no pixels")
	}
	return d.DetectGrid(raster.FromImage(img)), nil
}

// DetectGrid runs every stage on a grayscale grid with intensities in [0,1].
func (d *Detector) DetectGrid(g *raster.Grid) *Result {
	binary := d.Binarize(g)
	grouped := d.Group(binary)

	extracted, _ := d.Extract(grouped.Grid(), RequestedContourLength)
	classified := d.Classify(extracted)
	boxes := BoundingBoxes(classified)

	blocks := d.AnalyzeBlocks(binary.Grid(), boxes)
	selected := SelectBlocks(blocks)
	final := Assemble(selected)

	res := &Result{
		Width:    g.Width,
		Height:   g.Height,
		Contours: final,
		Boxes:    BoundingBoxes(final),
		Stages: Stages{
			Extracted:  len(extracted),
			Classified: len(classified),
			Blocks:     len(blocks),
			Selected:   len(selected),
			Final:      len(final),
		},
	}

	d.log.Debug("signature pipeline stages",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.Int("extracted", res.Stages.Extracted),
		zap.Int("classified", res.Stages.Classified),
		zap.Int("blocks", res.Stages.Blocks),
		zap.Int("selected", res.Stages.Selected),
		zap.Int("final", res.Stages.Final),
	)
	return res
}

// Binarize marks pixels brighter than the configured threshold.
func (d *Detector) Binarize(g *raster.Grid) *raster.Mask {
	return raster.Threshold(g, d.cfg.BinarizeThreshold)
}

// Group erodes the binarized page with the configured rectangle so neighbouring
// ink strokes merge into blobs.
func (d *Detector) Group(m *raster.Mask) *raster.Mask {
	return raster.ErodeRect(m, d.cfg.ErosionHeight, d.cfg.ErosionWidth)
}

// Extract traces contours of g at the configured level and keeps those with at
// least Config.MinContourLength points, returning them with their lengths.
//
// minLength is accepted for callers that state their own minimum, but the
// configured value always applies.
func (d *Detector) Extract(g *raster.Grid, minLength int) ([]contour.Contour, []int) {
	if minLength != d.cfg.MinContourLength {
		d.log.Debug("requested minimum contour length replaced by configured value",
			zap.Int("requested", minLength),
			zap.Int("applied", d.cfg.MinContourLength),
		)
	}
	minLength = d.cfg.MinContourLength

	all := contour.Find(g, d.cfg.ContourLevel)
	contours := make([]contour.Contour, 0, len(all))
	lengths := make([]int, 0, len(all))
	for _, c := range all {
		if c.Len() >= minLength {
			contours = append(contours, c)
			lengths = append(lengths, c.Len())
		}
	}
	return contours, lengths
}
