package signature

import (
	"math"

	"github.com/ironsheep/sigfind/internal/contour"
	"github.com/ironsheep/sigfind/internal/stats"
)

// GradientProfile summarizes how a contour moves across columns.
type GradientProfile struct {
	// XStat is the sum of absolute column gradients along the contour.
	XStat float64
	// YStat is the length of the row gradient, which is the point count.
	YStat float64
}

// Diff is the distance between the two statistics.
func (p GradientProfile) Diff() float64 {
	return math.Abs(p.XStat - p.YStat)
}

// Profile computes the gradient profile of c.
func Profile(c contour.Contour) GradientProfile {
	var sum float64
	for _, v := range Gradient(c.Cols()) {
		sum += math.Abs(v)
	}
	return GradientProfile{
		XStat: sum,
		YStat: float64(len(Gradient(c.Rows()))),
	}
}

// Gradient returns the discrete derivative of a sampled sequence: one-sided
// differences at both ends, centred differences inside. Sequences shorter than
// two samples have a zero gradient.
func Gradient(v []float64) []float64 {
	n := len(v)
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	out[0] = v[1] - v[0]
	out[n-1] = v[n-1] - v[n-2]
	for i := 1; i < n-1; i++ {
		out[i] = (v[i+1] - v[i-1]) / 2
	}
	return out
}

// Classify keeps the contours whose profile Diff is strictly above the mean Diff of
// all contours, in input order.
func (d *Detector) Classify(cs []contour.Contour) []contour.Contour {
	diffs := make([]float64, len(cs))
	for i, c := range cs {
		diffs[i] = Profile(c).Diff()
	}

	keep := stats.FilterByMean(diffs, stats.Above)
	out := make([]contour.Contour, 0, len(keep))
	for _, i := range keep {
		out = append(out, cs[i])
	}
	return out
}
