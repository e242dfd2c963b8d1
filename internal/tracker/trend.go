package tracker

import "github.com/abhisek/reasonprep/internal/qtype"

// Direction is the movement of a learner's accuracy over time.
type Direction string

const (
	Improving Direction = "improving"
	Declining Direction = "declining"
	Stable    Direction = "stable"
)

// TrendResult is the output of the sliding-window trend analysis.
type TrendResult struct {
	Type       qtype.Type `json:"questionType"`
	Direction  Direction  `json:"direction"`
	Confidence float64    `json:"confidence"`
	DataPoints int        `json:"dataPoints"`
}

// trendMaxEntries bounds the analysis to the most recent attempts so
// old history cannot mask a current shift.
const trendMaxEntries = 20

// trendMinEntries is the fewest attempts worth analyzing; below it the
// trend is reported stable with zero confidence.
const trendMinEntries = 3

// AnalyzeTrend slides accuracy windows over the last attempts of one
// type and compares the first window against the last. Window size is
// max(3, n/3). Confidence scales with sample count and shrinks with
// the variance across windows.
func (tr *Tracker) AnalyzeTrend(t qtype.Type) TrendResult {
	entries := tr.entriesOf(t)
	if len(entries) > trendMaxEntries {
		entries = entries[len(entries)-trendMaxEntries:]
	}
	res := TrendResult{Type: t, Direction: Stable, DataPoints: len(entries)}
	if len(entries) < trendMinEntries {
		return res
	}

	window := len(entries) / 3
	if window < trendMinEntries {
		window = trendMinEntries
	}

	accuracies := make([]float64, 0, len(entries)-window+1)
	for i := 0; i+window <= len(entries); i++ {
		accuracies = append(accuracies, accuracyOf(entries[i:i+window]))
	}

	// Stable only strictly inside the threshold band; a shift equal to
	// the threshold counts as movement.
	delta := accuracies[len(accuracies)-1] - accuracies[0]
	switch {
	case delta >= tr.tun.TrendStableDelta:
		res.Direction = Improving
	case delta <= -tr.tun.TrendStableDelta:
		res.Direction = Declining
	}

	sample := float64(len(entries)) / 10
	if sample > 1 {
		sample = 1
	}
	v := variance(accuracies)
	if v > 0.5 {
		v = 0.5
	}
	res.Confidence = sample * (1 - v)
	return res
}

func variance(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	mean := 0.0
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))
	v := 0.0
	for _, x := range xs {
		d := x - mean
		v += d * d
	}
	return v / float64(len(xs))
}
