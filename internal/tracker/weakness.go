package tracker

import (
	"fmt"
	"math"
	"sort"

	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/traps"
)

// Priority ranks how urgently a weakness needs attention.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// WeeklyTarget is the per-week goal derived from a weakness.
type WeeklyTarget struct {
	QuestionCount  int     `json:"questionCount"`
	TargetAccuracy float64 `json:"targetAccuracy"`
}

// Weakness is one question type the learner should focus on.
type Weakness struct {
	Type               qtype.Type   `json:"questionType"`
	Accuracy           float64      `json:"accuracy"`
	Trend              Direction    `json:"trend"`
	Priority           Priority     `json:"priority"`
	SuggestedQuestions int          `json:"suggestedQuestions"`
	FocusPoints        []string     `json:"focusPoints"`
	WeeklyTarget       WeeklyTarget `json:"weeklyTarget"`
	EstimatedDays      int          `json:"estimatedDays"`
}

// maxWeaknesses caps the report so advice stays actionable.
const maxWeaknesses = 5

// Weekly-target and improvement-estimate parameters.
const (
	targetAccuracyCeil = 0.85
	targetAccuracyGain = 0.15
	improveBaseDays    = 7
	improveHighDays    = 14
	improveMediumDays  = 10
)

// practiceCountFor maps an accuracy band to a suggested drill volume.
func practiceCountFor(accuracy float64) int {
	switch {
	case accuracy < 0.5:
		return 20
	case accuracy < 0.65:
		return 15
	case accuracy < 0.7:
		return 10
	default:
		return 5
	}
}

// Weaknesses selects up to five attempted types that are weak by
// accuracy or declining by trend, worst accuracy first.
func (tr *Tracker) Weaknesses() []Weakness {
	var out []Weakness
	for _, t := range tr.attemptedTypes() {
		p := tr.Performance(t)
		trend := tr.AnalyzeTrend(t)
		if p.Accuracy >= tr.tun.WeakAccuracy && trend.Direction != Declining {
			continue
		}
		out = append(out, tr.buildWeakness(p, trend.Direction))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Accuracy < out[j].Accuracy
	})
	if len(out) > maxWeaknesses {
		out = out[:maxWeaknesses]
	}
	return out
}

func (tr *Tracker) buildWeakness(p *TypePerformance, trend Direction) Weakness {
	w := Weakness{
		Type:     p.Type,
		Accuracy: p.Accuracy,
		Trend:    trend,
	}

	switch {
	case p.Accuracy < tr.tun.PriorityHighBelow:
		w.Priority = PriorityHigh
	case p.Accuracy < tr.tun.PriorityMedBelow:
		w.Priority = PriorityMedium
	default:
		w.Priority = PriorityLow
	}

	w.SuggestedQuestions = practiceCountFor(p.Accuracy)
	w.FocusPoints = focusPoints(p)

	w.WeeklyTarget = WeeklyTarget{
		QuestionCount:  int(math.Ceil(float64(w.SuggestedQuestions) / 7)),
		TargetAccuracy: math.Min(targetAccuracyCeil, p.Accuracy+targetAccuracyGain),
	}

	w.EstimatedDays = improveBaseDays
	switch w.Priority {
	case PriorityHigh:
		w.EstimatedDays += improveHighDays
	case PriorityMedium:
		w.EstimatedDays += improveMediumDays
	}
	return w
}

// typeFocus is one study tip per question type.
var typeFocus = map[qtype.Type]string{
	qtype.Strengthen:            "Identify the gap between evidence and conclusion before reading choices.",
	qtype.Weaken:                "Attack the link between premises and conclusion, not the premises themselves.",
	qtype.Assumption:            "Use the negation test: negating a required assumption must break the argument.",
	qtype.Flaw:                  "Name the reasoning error in your own words before matching it to a choice.",
	qtype.MustBeTrue:            "Stay within what the stimulus states; reject anything needing outside support.",
	qtype.MainConclusion:        "Separate the author's claim from the evidence offered for it.",
	qtype.ParallelReasoning:     "Abstract the argument's structure before comparing choices.",
	qtype.Principle:             "Generalize the specific case into a rule, then test each choice against it.",
	qtype.Paradox:               "Look for the fact that lets both sides of the discrepancy be true.",
	qtype.MethodOfReasoning:     "Describe how the argument moves, not what it says.",
	qtype.PointAtIssue:          "Find the single claim the speakers actually disagree about.",
	qtype.Evaluate:              "Ask what additional fact would most change the argument's force.",
	qtype.MostStronglySupported: "Prefer the modest inference over the sweeping one.",
	qtype.ParallelFlaw:          "Match the flaw first, the subject matter never.",
	qtype.RoleOfStatement:       "Trace whether the statement supports, concludes, or concedes.",
}

// patternFocus is one remediation tip per trap pattern.
var patternFocus = map[traps.Pattern]string{
	traps.OppositeAnswer:        "Re-read the stem's direction before committing; you are picking reversed-effect answers.",
	traps.TooExtreme:            "Flag absolute words (all, never, must) and demand matching support in the stimulus.",
	traps.OutOfScope:            "Check every choice's subject matter against the stimulus before weighing it.",
	traps.PremiseRepeat:         "A restated premise adds nothing; look for what the argument needs but never says.",
	traps.ConclusionRepeat:      "Repeating the conclusion is not analysis; describe the reasoning instead.",
	traps.ReverseCausation:      "When the stimulus reports a correlation, test both causal directions.",
	traps.WrongComparison:       "Verify the stimulus actually draws the comparison a choice relies on.",
	traps.TemporalConfusion:     "Watch the time frame; past evidence rarely fixes future claims.",
	traps.PartiallyCorrect:      "Half-right answers fail on the clause you skimmed; read every clause.",
	traps.IrrelevantDistinction: "Ask whether a distinction changes the conclusion; if not, discard it.",
}

// focusPoints assembles the tip list for a weakness: the type's study
// tip plus one tip per frequent trap pattern.
func focusPoints(p *TypePerformance) []string {
	var out []string
	if tip, ok := typeFocus[p.Type]; ok {
		out = append(out, tip)
	}
	for _, pat := range p.CommonPatterns {
		if tip, ok := patternFocus[pat]; ok {
			out = append(out, tip)
		}
	}
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("Drill untimed %s questions and review every explanation.", qtype.DisplayName(p.Type)))
	}
	return out
}
