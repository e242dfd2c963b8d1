package traps

import (
	"sort"
	"strings"

	"github.com/abhisek/reasonprep/internal/argument"
	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

// Context is the analysis context for diagnosing one answer choice.
type Context struct {
	QuestionType  qtype.Type
	Stimulus      string
	Stem          string
	CorrectAnswer string
	// Structure enables the structural pass when supplied.
	Structure *argument.Structure
}

// Match is one trap pattern found in an answer choice.
type Match struct {
	Pattern    Pattern
	Confidence float64
	Reason     string
}

// Detection is the full diagnosis of one answer choice.
type Detection struct {
	Matches     []Match
	Confidence  float64 // Aggregate across the three passes, 0-1
	Explanation string
	TrapLabel   string // Display label of the strongest match, "" if none
}

// Patterns returns the distinct matched patterns in match order.
func (d *Detection) Patterns() []Pattern {
	seen := make(map[Pattern]bool, len(d.Matches))
	var out []Pattern
	for _, m := range d.Matches {
		if !seen[m.Pattern] {
			seen[m.Pattern] = true
			out = append(out, m.Pattern)
		}
	}
	return out
}

// rule inspects one answer choice in context and reports a match or nil.
type rule func(d *Detector, choice string, ctx *Context) *Match

// Detector runs the trap catalog against answer choices. Rules live in
// three registries checked as independent passes; new traps are added
// by registering a rule, not by editing the pass loop.
type Detector struct {
	tun             config.Tunables
	typeRules       map[qtype.Type][]rule
	generalRules    []rule
	structuralRules []rule
}

// NewDetector builds a detector with the default rule registries.
func NewDetector(tun config.Tunables) *Detector {
	return &Detector{
		tun:             tun,
		typeRules:       defaultTypeRules(),
		generalRules:    defaultGeneralRules(),
		structuralRules: defaultStructuralRules(),
	}
}

// passCount divides the aggregate: three passes always run, so an
// answer flagged by a single pass lands around a third of its pass
// confidence.
const passCount = 3

// Detect diagnoses a single answer choice. The structural pass is
// skipped when ctx.Structure is nil.
func (det *Detector) Detect(choice string, ctx *Context) *Detection {
	d := &Detection{}
	if strings.TrimSpace(choice) == "" {
		d.Explanation = "Empty answer choice; nothing to diagnose."
		return d
	}

	typePass := det.runRules(det.typeRules[ctx.QuestionType], choice, ctx, d)
	generalPass := det.runRules(det.generalRules, choice, ctx, d)
	structuralPass := 0.0
	if ctx.Structure != nil {
		structuralPass = det.runRules(det.structuralRules, choice, ctx, d)
	}

	d.Confidence = (typePass + generalPass + structuralPass) / passCount
	if d.Confidence > 1 {
		d.Confidence = 1
	}
	d.Explanation = buildExplanation(d.Matches)
	if best := strongestMatch(d.Matches); best != nil {
		d.TrapLabel = Label(best.Pattern)
	}
	return d
}

// runRules executes one registry pass, appending matches to d and
// returning the pass confidence (its strongest match).
func (det *Detector) runRules(rules []rule, choice string, ctx *Context, d *Detection) float64 {
	best := 0.0
	for _, r := range rules {
		m := r(det, choice, ctx)
		if m == nil {
			continue
		}
		d.Matches = append(d.Matches, *m)
		if m.Confidence > best {
			best = m.Confidence
		}
	}
	return best
}

// ChoiceDiagnosis pairs one answer choice with its diagnosis. The
// correct choice is marked trivially correct with its stored
// explanation instead of being run through the catalog.
type ChoiceDiagnosis struct {
	ChoiceID    string
	Correct     bool
	Detection   *Detection
	Explanation string
}

// DetectAll diagnoses every choice of a question. The structure may be
// nil; pass one from argument.Analyze for the structural rules.
func (det *Detector) DetectAll(q *question.Question, structure *argument.Structure) []ChoiceDiagnosis {
	correct := q.CorrectChoice()
	ctx := &Context{
		QuestionType: q.Type,
		Stimulus:     q.Stimulus,
		Stem:         q.Stem,
		Structure:    structure,
	}
	if correct != nil {
		ctx.CorrectAnswer = correct.Text
	}

	out := make([]ChoiceDiagnosis, 0, len(q.Choices))
	for i := range q.Choices {
		c := &q.Choices[i]
		if c.Correct {
			expl := c.Explanation
			if expl == "" {
				expl = "This is the correct answer."
			}
			out = append(out, ChoiceDiagnosis{ChoiceID: c.ID, Correct: true, Explanation: expl})
			continue
		}
		d := det.Detect(c.Text, ctx)
		out = append(out, ChoiceDiagnosis{ChoiceID: c.ID, Detection: d, Explanation: d.Explanation})
	}
	return out
}

func strongestMatch(matches []Match) *Match {
	var best *Match
	for i := range matches {
		if best == nil || matches[i].Confidence > best.Confidence {
			best = &matches[i]
		}
	}
	return best
}

func buildExplanation(matches []Match) string {
	if len(matches) == 0 {
		return "No known trap pattern detected; compare this choice against the argument's conclusion directly."
	}
	sorted := make([]Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})
	reasons := make([]string, 0, len(sorted))
	seen := make(map[Pattern]bool)
	for _, m := range sorted {
		if seen[m.Pattern] {
			continue
		}
		seen[m.Pattern] = true
		reasons = append(reasons, m.Reason)
	}
	return strings.Join(reasons, " ")
}
