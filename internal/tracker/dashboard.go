package tracker

import (
	"sort"
	"time"

	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/traps"
)

// PatternCount pairs a trap pattern with how often the learner fell
// for it.
type PatternCount struct {
	Pattern traps.Pattern `json:"pattern"`
	Label   string        `json:"label"`
	Count   int           `json:"count"`
}

// Dashboard is the full at-a-glance performance view.
type Dashboard struct {
	TotalAttempts   int                `json:"totalAttempts"`
	OverallAccuracy float64            `json:"overallAccuracy"`
	AverageTime     float64            `json:"averageTime"`
	// TimeEfficiency is summed recommended time over summed actual
	// time; above 1 means the learner runs ahead of the budget.
	TimeEfficiency  float64            `json:"timeEfficiency"`
	StrongestTypes  []*TypePerformance `json:"strongestTypes"`
	WeakestTypes    []*TypePerformance `json:"weakestTypes"`
	TrendingTypes   []TrendResult      `json:"trendingTypes"`
	CommonMistakes  []PatternCount     `json:"commonMistakes"`
	GeneratedAt     time.Time          `json:"generatedAt"`
}

// dashboard listing caps.
const (
	rankedTypeCount   = 3
	commonMistakeTop  = 5
	trendMinDataPoint = 3
)

// Dashboard computes the aggregate view over the whole entry log.
func (tr *Tracker) Dashboard() *Dashboard {
	d := &Dashboard{GeneratedAt: time.Now()}
	if len(tr.entries) == 0 {
		return d
	}

	correct := 0
	totalTime := 0.0
	totalRecommended := 0.0
	for _, e := range tr.entries {
		d.TotalAttempts++
		if e.Correct {
			correct++
		}
		totalTime += e.TimeSpent
		totalRecommended += float64(e.RecommendedTime)
	}
	d.OverallAccuracy = float64(correct) / float64(d.TotalAttempts)
	d.AverageTime = totalTime / float64(d.TotalAttempts)
	if totalTime > 0 {
		d.TimeEfficiency = totalRecommended / totalTime
	}

	perType := make([]*TypePerformance, 0)
	for _, t := range tr.attemptedTypes() {
		perType = append(perType, tr.Performance(t))
	}

	ranked := make([]*TypePerformance, len(perType))
	copy(ranked, perType)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Accuracy > ranked[j].Accuracy
	})
	d.StrongestTypes = topN(ranked, rankedTypeCount)

	reversed := make([]*TypePerformance, len(ranked))
	for i, p := range ranked {
		reversed[len(ranked)-1-i] = p
	}
	d.WeakestTypes = topN(reversed, rankedTypeCount)

	for _, t := range tr.attemptedTypes() {
		trend := tr.AnalyzeTrend(t)
		if trend.DataPoints >= trendMinDataPoint {
			d.TrendingTypes = append(d.TrendingTypes, trend)
		}
	}
	sort.SliceStable(d.TrendingTypes, func(i, j int) bool {
		return d.TrendingTypes[i].Confidence > d.TrendingTypes[j].Confidence
	})

	d.CommonMistakes = tr.commonMistakes(commonMistakeTop)
	return d
}

func topN(ps []*TypePerformance, n int) []*TypePerformance {
	if len(ps) > n {
		ps = ps[:n]
	}
	out := make([]*TypePerformance, len(ps))
	copy(out, ps)
	return out
}

// commonMistakes counts trap patterns across all wrong answers and
// returns the n most frequent.
func (tr *Tracker) commonMistakes(n int) []PatternCount {
	counts := make(map[traps.Pattern]int)
	for _, e := range tr.entries {
		if e.Correct {
			continue
		}
		for _, p := range e.Patterns {
			counts[p]++
		}
	}
	out := make([]PatternCount, 0, len(counts))
	for p, c := range counts {
		out = append(out, PatternCount{Pattern: p, Label: traps.Label(p), Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Pattern < out[j].Pattern
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Accuracy returns the historical accuracy for one type and whether
// any attempts exist. Consumers that need a prior for unseen types
// supply their own default.
func (tr *Tracker) Accuracy(t qtype.Type) (float64, bool) {
	p := tr.Performance(t)
	if p.Attempts == 0 {
		return 0, false
	}
	return p.Accuracy, true
}
