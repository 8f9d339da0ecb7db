package signature

import "github.com/ironsheep/sigfind/internal/contour"

// Stages counts the candidates left after each pipeline stage.
type Stages struct {
	Extracted  int `json:"extracted"`
	Classified int `json:"classified"`
	Blocks     int `json:"blocks"`
	Selected   int `json:"selected"`
	Final      int `json:"final"`
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Width and Height are the analyzed page size in pixels.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Contours are the final signature contours. Empty when nothing was found.
	Contours []contour.Contour `json:"-"`

	// Boxes holds one bounding box per final contour.
	Boxes []Box `json:"boxes"`

	Stages Stages `json:"stages"`
}

// Candidate is the summary of one final contour.
type Candidate struct {
	Index  int  `json:"index"`
	Box    Box  `json:"box"`
	Points int  `json:"points"`
	Closed bool `json:"closed"`
}

// Empty reports whether no candidates were found.
func (r *Result) Empty() bool {
	return len(r.Contours) == 0
}

// Candidates summarizes the final contours in output order.
func (r *Result) Candidates() []Candidate {
	out := make([]Candidate, len(r.Contours))
	for i, c := range r.Contours {
		out[i] = Candidate{
			Index:  i,
			Box:    r.Boxes[i],
			Points: c.Len(),
			Closed: c.Closed(),
		}
	}
	return out
}
