package argument

import (
	"strings"

	"github.com/abhisek/reasonprep/internal/textutil"
)

// Assumption-gap language tables. Each gap pattern pairs premise-side
// language with conclusion-side language; a match appends one fixed
// assumption string.

var specificEvidenceMarkers = []string{
	"study", "survey", "sample", "experiment", "in one case",
	"some ", "several ", "a few ", "percent", "%",
}

var universalMarkers = []string{
	"all ", "every ", "always", "never", "none ", "no one",
	"everyone", "nothing", "everything",
}

var correlationMarkers = []string{
	"associated with", "correlated", "linked to", "tend to",
	"coincided", "accompanied by", "at the same time",
}

var causalMarkers = []string{
	"cause", "caused", "causes", "because of", "leads to", "led to",
	"results in", "resulted in", "due to", "responsible for",
	"produced by", "brings about",
}

// Fixed assumption strings appended on a gap match.
const (
	AssumptionGeneralization = "The argument assumes that the specific evidence cited generalizes to all relevant cases."
	AssumptionCausal         = "The argument assumes that the observed correlation reflects a causal relationship."
	AssumptionTemporal       = "The argument assumes that past patterns will continue to hold in the future."
)

// detectAssumptionGaps scans the premise side and the conclusion side
// of the structure for the three known gap patterns.
func detectAssumptionGaps(s *Structure) []string {
	premiseText := strings.ToLower(joinPremiseSide(s))
	conclusionText := strings.ToLower(s.MainConclusion)
	if conclusionText == "" {
		return nil
	}

	var out []string
	if textutil.CountAny(premiseText, specificEvidenceMarkers) > 0 &&
		textutil.CountAny(conclusionText, universalMarkers) > 0 {
		out = append(out, AssumptionGeneralization)
	}
	if textutil.CountAny(premiseText, correlationMarkers) > 0 &&
		textutil.CountAny(conclusionText, causalMarkers) > 0 {
		out = append(out, AssumptionCausal)
	}
	if textutil.DetectTense(premiseText) == textutil.TensePast &&
		textutil.DetectTense(conclusionText) == textutil.TenseFuture {
		out = append(out, AssumptionTemporal)
	}
	return out
}

// joinPremiseSide concatenates every premise, evidence, and background
// component text.
func joinPremiseSide(s *Structure) string {
	var b strings.Builder
	for i := range s.Components {
		switch s.Components[i].Type {
		case Premise, Evidence, Background:
			b.WriteString(s.Components[i].Text)
			b.WriteByte(' ')
		}
	}
	return b.String()
}
