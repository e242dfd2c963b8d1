// Package traps diagnoses why a chosen wrong answer is attractive yet
// incorrect by matching it against a closed catalog of known trap
// patterns. Detection is rule-based and explainable; every match
// carries a confidence and a reason.
package traps

// Pattern names one recurring trap in the catalog.
type Pattern string

const (
	OppositeAnswer        Pattern = "opposite_answer"
	TooExtreme            Pattern = "too_extreme"
	OutOfScope            Pattern = "out_of_scope"
	PremiseRepeat         Pattern = "premise_repeat"
	ConclusionRepeat      Pattern = "conclusion_repeat"
	ReverseCausation      Pattern = "reverse_causation"
	WrongComparison       Pattern = "wrong_comparison"
	TemporalConfusion     Pattern = "temporal_confusion"
	PartiallyCorrect      Pattern = "partially_correct"
	IrrelevantDistinction Pattern = "irrelevant_distinction"
)

// AllPatterns returns the full catalog.
func AllPatterns() []Pattern {
	return []Pattern{
		OppositeAnswer,
		TooExtreme,
		OutOfScope,
		PremiseRepeat,
		ConclusionRepeat,
		ReverseCausation,
		WrongComparison,
		TemporalConfusion,
		PartiallyCorrect,
		IrrelevantDistinction,
	}
}

// trapLabels are the short display names surfaced to the UI as the
// "common mistake" banner.
var trapLabels = map[Pattern]string{
	OppositeAnswer:        "Opposite Answer",
	TooExtreme:            "Too Extreme",
	OutOfScope:            "Out of Scope",
	PremiseRepeat:         "Premise Restatement",
	ConclusionRepeat:      "Conclusion Restatement",
	ReverseCausation:      "Reversed Causation",
	WrongComparison:       "Faulty Comparison",
	TemporalConfusion:     "Time-Shift Trap",
	PartiallyCorrect:      "Half-Right Answer",
	IrrelevantDistinction: "Irrelevant Distinction",
}

// Label returns the display label for a pattern.
func Label(p Pattern) string {
	if l, ok := trapLabels[p]; ok {
		return l
	}
	return string(p)
}
