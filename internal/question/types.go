package question

import "github.com/abhisek/reasonprep/internal/qtype"

// Question is an immutable logical-reasoning question record supplied
// by the hosting application's question repository. The analysis core
// never mutates it.
type Question struct {
	// ID uniquely identifies the question within the pool.
	ID string `json:"id"`

	// Type is the question's logical-reasoning type.
	Type qtype.Type `json:"questionType"`

	// Stimulus is the argument passage the question is based on.
	Stimulus string `json:"stimulus"`

	// Stem is the instruction text, e.g. "Which one of the following,
	// if true, would most weaken the argument above?"
	Stem string `json:"stem"`

	// Choices are the ordered answer choices. Exactly one is correct.
	Choices []AnswerChoice `json:"answerChoices"`

	// Difficulty holds the four bounded difficulty factor scores.
	Difficulty DifficultyFactors `json:"difficultyFactors"`

	// TimeRecommendation is the suggested solve time in seconds.
	// Zero means "not set"; the pool loader fills it from the type's
	// baseline so downstream ratios never divide by zero.
	TimeRecommendation int `json:"timeRecommendation"`
}

// AnswerChoice is one labeled candidate response to a stem.
type AnswerChoice struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	Correct     bool   `json:"isCorrect"`
	Explanation string `json:"explanation,omitempty"`
}

// CorrectChoice returns the correct answer choice, or nil if the
// record is malformed and has none.
func (q *Question) CorrectChoice() *AnswerChoice {
	for i := range q.Choices {
		if q.Choices[i].Correct {
			return &q.Choices[i]
		}
	}
	return nil
}

// DifficultyFactors are four bounded scores (1-5 each) summarizing a
// question's estimated difficulty.
type DifficultyFactors struct {
	Abstractness       int `json:"abstractness"`
	ArgumentComplexity int `json:"argumentComplexity"`
	VocabularyLevel    int `json:"vocabularyLevel"`
	TrapDensity        int `json:"trapDensity"`
}

// FactorMin and FactorMax bound each difficulty factor score.
const (
	FactorMin = 1
	FactorMax = 5
)

// Clamp returns a copy with every factor forced into [FactorMin, FactorMax].
func (d DifficultyFactors) Clamp() DifficultyFactors {
	return DifficultyFactors{
		Abstractness:       clampFactor(d.Abstractness),
		ArgumentComplexity: clampFactor(d.ArgumentComplexity),
		VocabularyLevel:    clampFactor(d.VocabularyLevel),
		TrapDensity:        clampFactor(d.TrapDensity),
	}
}

// Overall returns the mean of the four factors.
func (d DifficultyFactors) Overall() float64 {
	return float64(d.Abstractness+d.ArgumentComplexity+d.VocabularyLevel+d.TrapDensity) / 4
}

func clampFactor(v int) int {
	if v < FactorMin {
		return FactorMin
	}
	if v > FactorMax {
		return FactorMax
	}
	return v
}
