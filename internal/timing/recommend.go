package timing

import (
	"math"

	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

// Recommendation floor: no question ever gets under 30 seconds, which
// also keeps efficiency ratios defined.
const MinRecommendSeconds = 30

// Difficulty factor weights: seconds multiplier change per unit of
// deviation from the factor midpoint.
const (
	weightAbstractness = 0.10
	weightComplexity   = 0.15
	weightVocabulary   = 0.10
	weightTrapDensity  = 0.05

	factorMidpoint = 3.0

	multiplierMin = 0.7
	multiplierMax = 1.5
)

// History-based adjustment: with at least minHistorySamples recorded,
// a learner averaging over 1.3x the base time gets extra seconds and
// one averaging under 0.7x gives some back.
const (
	minHistorySamples = 3
	slowRatio         = 1.3
	fastRatio         = 0.7
	slowAdjustSeconds = 15
	fastAdjustSeconds = -10
)

// RecommendTime computes the personalized recommended seconds for a
// question: round(max(30, base x difficultyMultiplier + userAdjustment)).
func (s *Service) RecommendTime(q *question.Question) int {
	base := float64(qtype.BaseSeconds(q.Type))
	raw := base*difficultyMultiplier(q.Difficulty) + float64(s.userAdjustment(q.Type))
	if raw < MinRecommendSeconds {
		raw = MinRecommendSeconds
	}
	return int(math.Round(raw))
}

// difficultyMultiplier blends the four factor deviations from the
// midpoint with fixed weights, clamped to [0.7, 1.5].
func difficultyMultiplier(d question.DifficultyFactors) float64 {
	d = d.Clamp()
	m := 1.0 +
		weightAbstractness*(float64(d.Abstractness)-factorMidpoint) +
		weightComplexity*(float64(d.ArgumentComplexity)-factorMidpoint) +
		weightVocabulary*(float64(d.VocabularyLevel)-factorMidpoint) +
		weightTrapDensity*(float64(d.TrapDensity)-factorMidpoint)
	if m < multiplierMin {
		return multiplierMin
	}
	if m > multiplierMax {
		return multiplierMax
	}
	return m
}

// userAdjustment consults the rolling per-type history: consistently
// slow learners get more seconds, consistently fast ones fewer.
// Requires minHistorySamples data points.
func (s *Service) userAdjustment(t qtype.Type) int {
	samples := s.history[t]
	if len(samples) < minHistorySamples {
		return 0
	}
	sum := 0.0
	for _, v := range samples {
		sum += v
	}
	avg := sum / float64(len(samples))
	base := float64(qtype.BaseSeconds(t))
	switch {
	case avg > slowRatio*base:
		return slowAdjustSeconds
	case avg < fastRatio*base:
		return fastAdjustSeconds
	default:
		return 0
	}
}
