// Package practice assembles personalized practice sets from a
// question pool using performance history. Strategy selection is
// rule-based and mutually exclusive; each strategy owns its selection
// logic and its adaptive advice.
package practice

import (
	"time"

	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

// Strategy names one selection approach.
type Strategy string

const (
	StrategyWeaknessFocused  Strategy = "weakness_focused"
	StrategyTimePressure     Strategy = "time_pressure"
	StrategyReviewMistakes   Strategy = "review_mistakes"
	StrategyBalanced         Strategy = "balanced"
	StrategyDifficultyLadder Strategy = "difficulty_ladder"
	StrategyComprehensive    Strategy = "comprehensive"
)

// Criteria are the caller's generation constraints. Zero values mean
// "no constraint" except QuestionCount, which is required.
type Criteria struct {
	// TargetTypes restricts the pool; empty means every type.
	TargetTypes []qtype.Type

	// MinDifficulty and MaxDifficulty bound the overall difficulty
	// (1-5 scale); zero means unbounded on that side.
	MinDifficulty float64
	MaxDifficulty float64

	// QuestionCount is the requested set size.
	QuestionCount int

	// FocusWeaknesses prioritizes the learner's weak types.
	FocusWeaknesses bool

	// Variety requests an even spread across the target types.
	Variety bool

	// TimeLimitMinutes is the session budget; under an hour the
	// generator switches to time-pressure drilling. Zero means none.
	TimeLimitMinutes int

	// ExcludeQuestionIDs drops recently seen questions from the pool.
	ExcludeQuestionIDs []string

	// TypeWeights optionally biases per-type shares; unweighted types
	// default to 1.
	TypeWeights map[qtype.Type]float64
}

// Set is one generated practice set, immutable once built.
type Set struct {
	Questions              []question.Question `json:"questions"`
	Strategy               Strategy            `json:"strategy"`
	Rationale              string              `json:"rationale"`
	TypeDistribution       map[qtype.Type]int  `json:"typeDistribution"`
	DifficultyDistribution map[string]int      `json:"difficultyDistribution"`
	EstimatedAccuracy      float64             `json:"estimatedAccuracy"`
	Recommendations        []string            `json:"recommendations"`
	GeneratedAt            time.Time           `json:"generatedAt"`
}
