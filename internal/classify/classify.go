// Package classify maps a question's stem text to one of the fifteen
// logical-reasoning question types using weighted keyword and pattern
// matching. Classification is deterministic and explainable: every
// result carries the indicators that drove the decision.
package classify

import (
	"regexp"
	"strings"

	"github.com/abhisek/reasonprep/internal/qtype"
)

// Scoring weights. Pattern hits outweigh keyword hits because a
// compiled pattern encodes word order, not just presence; priority
// breaks ties between types whose vocabulary overlaps.
const (
	KeywordWeight     = 2.0
	PatternWeight     = 3.0
	PriorityDivisor   = 10.0
	ConfidenceDivisor = 10.0
)

// Fallback applied when no type scores above zero. A deliberate soft
// default, not an error: an unrecognizable stem is treated as the most
// common type at low confidence.
const (
	FallbackType       = qtype.MustBeTrue
	FallbackConfidence = 0.3
)

// Result is the outcome of classifying a stem.
type Result struct {
	Type       qtype.Type
	Confidence float64    // 0-1
	Secondary  qtype.Type // Next-best candidate, "" if none scored
	Indicators []string   // Matched keywords and pattern captures
}

// typeRule holds the compiled matching rules for one question type.
type typeRule struct {
	typ      qtype.Type
	keywords []string
	patterns []*regexp.Regexp
	priority float64
}

// rules is the package-level rule registry, built by init from the
// seed table. New question types are added by registering a seed
// entry, not by editing control flow.
var rules []typeRule

func init() {
	rules = make([]typeRule, 0, len(seedRules))
	for _, s := range seedRules {
		r := typeRule{typ: s.typ, keywords: s.keywords, priority: s.priority}
		for _, p := range s.patterns {
			r.patterns = append(r.patterns, regexp.MustCompile("(?i)"+p))
		}
		rules = append(rules, r)
	}
}

// Classify returns the best-matching question type for a stem. The
// stimulus is accepted for interface symmetry with the other analyzers
// but type indicators live in the stem alone.
func Classify(stem, stimulus string) Result {
	_ = stimulus

	var best, second *scored
	for i := range rules {
		s := scoreRule(&rules[i], stem)
		if s.score <= 0 {
			continue
		}
		switch {
		case best == nil || s.score > best.score:
			second = best
			best = s
		case second == nil || s.score > second.score:
			second = s
		}
	}

	if best == nil {
		return Result{Type: FallbackType, Confidence: FallbackConfidence}
	}

	res := Result{
		Type:       best.rule.typ,
		Confidence: capConfidence(best.score / ConfidenceDivisor),
		Indicators: best.indicators,
	}
	if second != nil {
		res.Secondary = second.rule.typ
	}
	return res
}

// RecommendedTime returns the baseline recommended seconds for a type.
func RecommendedTime(t qtype.Type) int {
	return qtype.BaseSeconds(t)
}

type scored struct {
	rule       *typeRule
	score      float64
	indicators []string
}

func scoreRule(r *typeRule, stem string) *scored {
	lower := strings.ToLower(stem)
	s := &scored{rule: r}

	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			s.score += KeywordWeight
			s.indicators = append(s.indicators, kw)
		}
	}
	for _, p := range r.patterns {
		if m := p.FindString(stem); m != "" {
			s.score += PatternWeight
			s.indicators = append(s.indicators, strings.ToLower(m))
		}
	}
	if s.score > 0 {
		s.score += r.priority / PriorityDivisor
	}
	return s
}

func capConfidence(c float64) float64 {
	if c > 1 {
		return 1
	}
	return c
}
