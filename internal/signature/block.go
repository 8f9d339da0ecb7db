package signature

import (
	"go.uber.org/zap"

	"github.com/ironsheep/sigfind/internal/contour"
	"github.com/ironsheep/sigfind/internal/raster"
	"github.com/ironsheep/sigfind/internal/stats"
)

// Block is the edge-contour analysis of one bounding box.
type Block struct {
	Box      Box
	Count    int
	Contours []contour.Contour
	Lengths  []int
}

// AnalyzeBlock contours the Sobel edges of img inside box.
func (d *Detector) AnalyzeBlock(img *raster.Grid, box Box) Block {
	edges := raster.Sobel(img, box.Mask(img.Width, img.Height))
	cs, lengths := d.Extract(edges, d.cfg.MinContourLength)
	return Block{
		Box:      box,
		Count:    len(cs),
		Contours: cs,
		Lengths:  lengths,
	}
}

// AnalyzeBlocks runs AnalyzeBlock for every box, in order.
func (d *Detector) AnalyzeBlocks(img *raster.Grid, boxes []Box) []Block {
	blocks := make([]Block, len(boxes))
	for i, box := range boxes {
		blocks[i] = d.AnalyzeBlock(img, box)
		d.log.Debug("block analyzed",
			zap.Int("index", i),
			zap.Any("box", box),
			zap.Int("count", blocks[i].Count),
		)
	}
	return blocks
}

// SelectBlocks keeps blocks whose contour count is strictly below the mean count.
func SelectBlocks(blocks []Block) []Block {
	counts := make([]float64, len(blocks))
	for i, b := range blocks {
		counts[i] = float64(b.Count)
	}

	keep := stats.FilterByMean(counts, stats.Below)
	out := make([]Block, 0, len(keep))
	for _, i := range keep {
		out = append(out, blocks[i])
	}
	return out
}

// Assemble keeps, from each block, the contours longer than that block's mean
// length, concatenated block by block.
func Assemble(blocks []Block) []contour.Contour {
	var out []contour.Contour
	for _, b := range blocks {
		for _, i := range stats.FilterByMean(stats.Ints(b.Lengths), stats.Above) {
			out = append(out, b.Contours[i])
		}
	}
	if out == nil {
		out = []contour.Contour{}
	}
	return out
}
