package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/sigfind/internal/imaging"
	"github.com/ironsheep/sigfind/internal/ocr"
	"github.com/ironsheep/sigfind/internal/signature"
)

type options struct {
	outDir     string
	json       bool
	crop       bool
	padding    int
	ocr        bool
	lang       string
	configPath string
	workers    int
}

// candidateReport is one candidate in the JSON report.
type candidateReport struct {
	signature.Candidate
	Crop     string          `json:"crop,omitempty"`
	OCR      *ocr.Annotation `json:"ocr,omitempty"`
	OCRError string          `json:"ocr_error,omitempty"`
}

// report is the outcome of one input image.
type report struct {
	RunID      string            `json:"run_id"`
	Path       string            `json:"path"`
	Overlay    string            `json:"overlay,omitempty"`
	Width      int               `json:"width"`
	Height     int               `json:"height"`
	Candidates []candidateReport `json:"candidates"`
	Stages     signature.Stages  `json:"stages"`
	Error      string            `json:"error,omitempty"`
}

// annotate and tesseractVersion are swapped in tests that do not have Tesseract.
var (
	annotate         = ocr.AnnotateRegion
	tesseractVersion = ocr.Version
)

// run processes every path with at most opts.workers images in flight. A
// failing image does not stop the others; all failures are returned together.
func run(opts options, paths []string, stdout io.Writer, logger *zap.Logger) error {
	cfg := signature.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = signature.LoadConfig(opts.configPath); err != nil {
			return err
		}
	}
	if opts.padding < 0 {
		return fmt.Errorf("padding %d must not be negative", opts.padding)
	}
	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	det, err := signature.NewDetector(cfg, signature.WithLogger(logger))
	if err != nil {
		return err
	}

	workers := opts.workers
	if workers < 1 {
		workers = 1
	}

	reports := make([]*report, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			rep, err := processFile(det, opts, path, logger)
			rep.RunID = runID
			if err != nil {
				rep.Error = err.Error()
				errs[i] = fmt.Errorf("%s: %w", path, err)
				logger.Warn("image failed", zap.String("path", path), zap.Error(err))
			}
			reports[i] = rep
			return nil
		})
	}
	_ = g.Wait()

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		for _, rep := range reports {
			if err := enc.Encode(rep); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
		}
	}

	return multierr.Combine(errs...)
}

// processFile detects signatures on one page and writes its artifacts. The
// returned report is never nil.
func processFile(det *signature.Detector, opts options, path string, logger *zap.Logger) (*report, error) {
	rep := &report{Path: path, Candidates: []candidateReport{}}

	img, err := imaging.Load(path)
	if err != nil {
		return rep, err
	}
	res, err := det.Detect(img)
	if err != nil {
		return rep, err
	}
	rep.Width, rep.Height, rep.Stages = res.Width, res.Height, res.Stages

	origin := img.Bounds().Min
	base := baseName(path)

	marks := make([]imaging.Mark, 0, len(res.Contours))
	for i, c := range res.Candidates() {
		pts := res.Contours[i].ImagePoints()
		for j := range pts {
			pts[j] = pts[j].Add(origin)
		}
		marks = append(marks, imaging.Mark{Points: pts, Box: c.Box.Rect().Add(origin), Label: fmt.Sprint(i + 1)})

		region := c.Box.Region().Add(origin)
		cr := candidateReport{Candidate: c}
		if opts.crop {
			dst := filepath.Join(opts.outDir, fmt.Sprintf("%s-signature-%d.png", base, i+1))
			if err := imaging.SaveRegion(img, imaging.PadRegion(region, opts.padding, img.Bounds()), dst); err != nil {
				return rep, err
			}
			cr.Crop = dst
		}
		if opts.ocr {
			ann, err := annotate(img, region, opts.lang)
			if err != nil {
				cr.OCRError = err.Error()
			} else {
				cr.OCR = ann
			}
		}
		rep.Candidates = append(rep.Candidates, cr)
	}

	overlay := filepath.Join(opts.outDir, base+"-signature.png")
	if err := imaging.SaveOverlay(overlay, imaging.RenderOverlay(img, marks)); err != nil {
		return rep, err
	}
	rep.Overlay = overlay

	logger.Info("image processed",
		zap.String("path", path),
		zap.Int("candidates", len(rep.Candidates)),
		zap.String("overlay", overlay),
	)
	return rep, nil
}

// baseName strips the directory and extension from path.
func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
