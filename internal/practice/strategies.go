package practice

import (
	"sort"

	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

// selectWeaknessFocused orders candidates by how weak the learner is
// on their type, weakest first, and takes the requested count.
func (g *Generator) selectWeaknessFocused(pool []question.Question, c Criteria) []question.Question {
	out := make([]question.Question, len(pool))
	copy(out, pool)
	sort.SliceStable(out, func(i, j int) bool {
		return g.accuracyFor(out[i].Type) < g.accuracyFor(out[j].Type)
	})
	return capAt(out, c.QuestionCount)
}

// selectTimePressure takes the fastest questions first so a short
// session still covers the full count.
func (g *Generator) selectTimePressure(pool []question.Question, c Criteria) []question.Question {
	out := make([]question.Question, len(pool))
	copy(out, pool)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TimeRecommendation < out[j].TimeRecommendation
	})
	return capAt(out, c.QuestionCount)
}

// selectReviewMistakes walks the target types from lowest historical
// accuracy upward, pulling a proportional share from each.
func (g *Generator) selectReviewMistakes(pool []question.Question, c Criteria) []question.Question {
	types := make([]qtype.Type, len(c.TargetTypes))
	copy(types, c.TargetTypes)
	if len(types) == 0 {
		types = poolTypes(pool)
	}
	sort.SliceStable(types, func(i, j int) bool {
		return g.accuracyFor(types[i]) < g.accuracyFor(types[j])
	})

	byType := groupByType(pool)
	var out []question.Question
	remaining := c.QuestionCount
	for i, t := range types {
		if remaining <= 0 {
			break
		}
		share := remaining / (len(types) - i)
		if remaining%(len(types)-i) != 0 {
			share++
		}
		candidates := byType[t]
		if share > len(candidates) {
			share = len(candidates)
		}
		out = append(out, candidates[:share]...)
		remaining -= share
	}
	return out
}

// selectBalanced spreads the count evenly across the target types,
// shuffling within each type so repeat sessions vary.
func (g *Generator) selectBalanced(pool []question.Question, c Criteria) []question.Question {
	types := c.TargetTypes
	if len(types) == 0 {
		types = poolTypes(pool)
	}
	if len(types) == 0 {
		return nil
	}

	byType := groupByType(pool)
	base := c.QuestionCount / len(types)
	remainder := c.QuestionCount % len(types)

	var out []question.Question
	for i, t := range types {
		want := base * weightFactor(c.TypeWeights, t)
		if i < remainder {
			want++
		}
		candidates := byType[t]
		g.rng.Shuffle(len(candidates), func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		if want > len(candidates) {
			want = len(candidates)
		}
		out = append(out, candidates[:want]...)
	}

	// Backfill from the whole pool if per-type shortfalls left the set
	// under count.
	out = g.backfill(out, pool, c.QuestionCount)
	return capAt(out, c.QuestionCount)
}

// selectDifficultyLadder sorts by overall difficulty and samples at a
// fixed stride so the set spans the full range bottom to top.
func (g *Generator) selectDifficultyLadder(pool []question.Question, c Criteria) []question.Question {
	out := make([]question.Question, len(pool))
	copy(out, pool)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Difficulty.Overall() < out[j].Difficulty.Overall()
	})
	if c.QuestionCount <= 0 || len(out) <= c.QuestionCount {
		return out
	}
	stride := len(out) / c.QuestionCount
	picked := make([]question.Question, 0, c.QuestionCount)
	for i := 0; i < len(out) && len(picked) < c.QuestionCount; i += stride {
		picked = append(picked, out[i])
	}
	return picked
}

// selectComprehensive guarantees representation from the five core
// types, then fills the remaining slots at random.
func (g *Generator) selectComprehensive(pool []question.Question, c Criteria) []question.Question {
	byType := groupByType(pool)
	taken := make(map[string]bool)
	var out []question.Question

	for _, t := range qtype.Core() {
		if len(out) >= c.QuestionCount {
			break
		}
		candidates := byType[t]
		if len(candidates) == 0 {
			continue
		}
		q := candidates[g.rng.Intn(len(candidates))]
		out = append(out, q)
		taken[q.ID] = true
	}

	rest := make([]question.Question, 0, len(pool))
	for _, q := range pool {
		if !taken[q.ID] {
			rest = append(rest, q)
		}
	}
	g.rng.Shuffle(len(rest), func(a, b int) {
		rest[a], rest[b] = rest[b], rest[a]
	})
	for _, q := range rest {
		if len(out) >= c.QuestionCount {
			break
		}
		out = append(out, q)
	}
	return out
}

// backfill tops a selection up to count with unused pool questions.
func (g *Generator) backfill(out, pool []question.Question, count int) []question.Question {
	if len(out) >= count {
		return out
	}
	taken := make(map[string]bool, len(out))
	for _, q := range out {
		taken[q.ID] = true
	}
	for _, q := range pool {
		if len(out) >= count {
			break
		}
		if !taken[q.ID] {
			out = append(out, q)
			taken[q.ID] = true
		}
	}
	return out
}

func capAt(qs []question.Question, n int) []question.Question {
	if n >= 0 && len(qs) > n {
		return qs[:n]
	}
	return qs
}

func groupByType(pool []question.Question) map[qtype.Type][]question.Question {
	byType := make(map[qtype.Type][]question.Question)
	for _, q := range pool {
		byType[q.Type] = append(byType[q.Type], q)
	}
	return byType
}

// poolTypes returns the distinct types present in the pool, in stable
// catalog order.
func poolTypes(pool []question.Question) []qtype.Type {
	present := make(map[qtype.Type]bool)
	for _, q := range pool {
		present[q.Type] = true
	}
	var out []qtype.Type
	for _, t := range qtype.All() {
		if present[t] {
			out = append(out, t)
		}
	}
	return out
}

// weightFactor rounds a custom type weight to a whole multiplier,
// defaulting to 1 for unweighted types.
func weightFactor(weights map[qtype.Type]float64, t qtype.Type) int {
	w, ok := weights[t]
	if !ok || w <= 0 {
		return 1
	}
	f := int(w + 0.5)
	if f < 1 {
		f = 1
	}
	return f
}
