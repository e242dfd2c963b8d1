package practice

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
	"github.com/abhisek/reasonprep/internal/tracker"
)

// defaultAccuracy is the prior for types with no history.
const defaultAccuracy = 0.65

// timePressureUnderMinutes is the session budget below which the
// generator drills fast questions.
const timePressureUnderMinutes = 60

// ladderSpanLevels is the difficulty-range width that triggers the
// difficulty-ladder strategy (the full 1-5 scale).
const ladderSpanLevels = 5

// reviewMaxTypes is the most target types review-mistakes handles.
const reviewMaxTypes = 2

// Generator builds practice sets from a pool and a learner history.
type Generator struct {
	tun     config.Tunables
	history *tracker.Tracker
	rng     *rand.Rand
}

// NewGenerator creates a generator. A nil rng gets a time-seeded one;
// tests inject a fixed seed for determinism.
func NewGenerator(tun config.Tunables, history *tracker.Tracker, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{tun: tun, history: history, rng: rng}
}

// Generate assembles one practice set. When the filtered pool is
// smaller than the requested count, the full filtered pool is returned
// rather than failing the call.
func (g *Generator) Generate(pool []question.Question, c Criteria) *Set {
	filtered := g.filterPool(pool, c)
	strategy := g.selectStrategy(c)

	var selected []question.Question
	switch strategy {
	case StrategyWeaknessFocused:
		selected = g.selectWeaknessFocused(filtered, c)
	case StrategyTimePressure:
		selected = g.selectTimePressure(filtered, c)
	case StrategyReviewMistakes:
		selected = g.selectReviewMistakes(filtered, c)
	case StrategyBalanced:
		selected = g.selectBalanced(filtered, c)
	case StrategyDifficultyLadder:
		selected = g.selectDifficultyLadder(filtered, c)
	default:
		selected = g.selectComprehensive(filtered, c)
	}
	if len(selected) > c.QuestionCount {
		selected = selected[:c.QuestionCount]
	}

	set := &Set{
		Questions:              selected,
		Strategy:               strategy,
		Rationale:              rationaleFor(strategy),
		TypeDistribution:       typeDistribution(selected),
		DifficultyDistribution: difficultyDistribution(selected),
		EstimatedAccuracy:      g.estimateAccuracy(selected),
		Recommendations:        g.recommendationsFor(strategy, selected),
		GeneratedAt:            time.Now(),
	}
	return set
}

// selectStrategy applies the mutually exclusive strategy rules in
// priority order.
func (g *Generator) selectStrategy(c Criteria) Strategy {
	hasHistory := len(g.history.Entries()) > 0
	switch {
	case c.FocusWeaknesses && hasHistory:
		return StrategyWeaknessFocused
	case c.TimeLimitMinutes > 0 && c.TimeLimitMinutes < timePressureUnderMinutes:
		return StrategyTimePressure
	case len(c.TargetTypes) > 0 && len(c.TargetTypes) <= reviewMaxTypes:
		return StrategyReviewMistakes
	case c.Variety:
		return StrategyBalanced
	case c.MinDifficulty > 0 && c.MaxDifficulty-c.MinDifficulty+1 >= ladderSpanLevels:
		return StrategyDifficultyLadder
	default:
		return StrategyComprehensive
	}
}

// filterPool applies the type, difficulty-range, and recent-exclusion
// criteria.
func (g *Generator) filterPool(pool []question.Question, c Criteria) []question.Question {
	wantType := make(map[qtype.Type]bool, len(c.TargetTypes))
	for _, t := range c.TargetTypes {
		wantType[t] = true
	}
	excluded := make(map[string]bool, len(c.ExcludeQuestionIDs))
	for _, id := range c.ExcludeQuestionIDs {
		excluded[id] = true
	}

	var out []question.Question
	for _, q := range pool {
		if len(wantType) > 0 && !wantType[q.Type] {
			continue
		}
		overall := q.Difficulty.Overall()
		if c.MinDifficulty > 0 && overall < c.MinDifficulty {
			continue
		}
		if c.MaxDifficulty > 0 && overall > c.MaxDifficulty {
			continue
		}
		if excluded[q.ID] {
			continue
		}
		out = append(out, q)
	}
	return out
}

// accuracyFor returns the learner's historical accuracy for a type,
// or the default prior when unseen.
func (g *Generator) accuracyFor(t qtype.Type) float64 {
	if acc, ok := g.history.Accuracy(t); ok {
		return acc
	}
	return defaultAccuracy
}

// estimateAccuracy predicts set accuracy as the mean of per-type
// historical accuracy over the selected questions.
func (g *Generator) estimateAccuracy(selected []question.Question) float64 {
	if len(selected) == 0 {
		return defaultAccuracy
	}
	total := 0.0
	for _, q := range selected {
		total += g.accuracyFor(q.Type)
	}
	return total / float64(len(selected))
}

func typeDistribution(selected []question.Question) map[qtype.Type]int {
	dist := make(map[qtype.Type]int)
	for _, q := range selected {
		dist[q.Type]++
	}
	return dist
}

// Difficulty band boundaries on the 1-5 overall scale.
const (
	easyBelow = 2.5
	hardAbove = 3.5
)

func difficultyDistribution(selected []question.Question) map[string]int {
	dist := map[string]int{"easy": 0, "medium": 0, "hard": 0}
	for _, q := range selected {
		switch overall := q.Difficulty.Overall(); {
		case overall < easyBelow:
			dist["easy"]++
		case overall > hardAbove:
			dist["hard"]++
		default:
			dist["medium"]++
		}
	}
	return dist
}

func rationaleFor(s Strategy) string {
	switch s {
	case StrategyWeaknessFocused:
		return "Questions target the types where your accuracy is lowest."
	case StrategyTimePressure:
		return "Short-budget session; questions are ordered by lowest recommended time."
	case StrategyReviewMistakes:
		return "A narrow type focus for revisiting your most-missed question types."
	case StrategyBalanced:
		return "Questions are spread evenly across the requested types for variety."
	case StrategyDifficultyLadder:
		return "Questions step from easy to hard across the full difficulty range."
	default:
		return "A representative mix covering the core question types."
	}
}

// recommendationsFor builds the adaptive advice attached to a set.
func (g *Generator) recommendationsFor(s Strategy, selected []question.Question) []string {
	var recs []string
	switch s {
	case StrategyWeaknessFocused:
		recs = append(recs, "Work untimed first; accuracy before speed on weak types.")
	case StrategyTimePressure:
		recs = append(recs, "Hold each question to its recommended time; skip and return rather than stall.")
	case StrategyReviewMistakes:
		recs = append(recs, "After each miss, write down the trap you fell for before moving on.")
	case StrategyBalanced:
		recs = append(recs, "Note which types feel slowest; they are your next focus candidates.")
	case StrategyDifficultyLadder:
		recs = append(recs, "If accuracy drops sharply at a rung, stay at that difficulty next session.")
	default:
		recs = append(recs, "Treat this as a diagnostic; review every explanation, right or wrong.")
	}

	dist := typeDistribution(selected)
	for _, w := range g.history.Weaknesses() {
		if dist[w.Type] > 0 {
			recs = append(recs, fmt.Sprintf("%s accuracy is %.0f%%; aim for %.0f%% this week.",
				qtype.DisplayName(w.Type), w.Accuracy*100, w.WeeklyTarget.TargetAccuracy*100))
			break
		}
	}
	return recs
}
