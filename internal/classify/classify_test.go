package classify

import (
	"testing"

	"github.com/abhisek/reasonprep/internal/qtype"
)

func TestClassify_StrengthenStem(t *testing.T) {
	res := Classify("Which one of the following, if true, would most strengthen the argument above?", "")
	if res.Type != qtype.Strengthen {
		t.Fatalf("got type %q, want %q", res.Type, qtype.Strengthen)
	}
	if res.Confidence < 0.8 {
		t.Errorf("got confidence %f, want >= 0.8", res.Confidence)
	}
	found := false
	for _, ind := range res.Indicators {
		if ind == "strengthen" {
			found = true
		}
	}
	if !found {
		t.Errorf("indicators %v do not include %q", res.Indicators, "strengthen")
	}
}

func TestClassify_IndicatorPhrases(t *testing.T) {
	// Each canonical indicator phrase alone must classify to its type
	// with confidence >= 0.5.
	tests := []struct {
		phrase string
		want   qtype.Type
	}{
		{"strengthen", qtype.Strengthen},
		{"weaken", qtype.Weaken},
		{"assumption", qtype.Assumption},
		{"flaw", qtype.Flaw},
		{"must be true", qtype.MustBeTrue},
		{"most strongly supported", qtype.MostStronglySupported},
		{"main conclusion", qtype.MainConclusion},
		{"method of reasoning", qtype.MethodOfReasoning},
		{"most similar in its reasoning", qtype.ParallelReasoning},
		{"flawed reasoning most similar", qtype.ParallelFlaw},
		{"principle", qtype.Principle},
		{"evaluate", qtype.Evaluate},
		{"paradox", qtype.Paradox},
		{"disagree about", qtype.PointAtIssue},
		{"role in the argument", qtype.RoleOfStatement},
	}
	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			res := Classify(tt.phrase, "")
			if res.Type != tt.want {
				t.Fatalf("got type %q, want %q", res.Type, tt.want)
			}
			if res.Confidence < 0.5 {
				t.Errorf("got confidence %f, want >= 0.5", res.Confidence)
			}
		})
	}
}

func TestClassify_FallbackOnUnrecognizableStem(t *testing.T) {
	res := Classify("Pick the best option.", "")
	if res.Type != FallbackType {
		t.Errorf("got type %q, want fallback %q", res.Type, FallbackType)
	}
	if res.Confidence != FallbackConfidence {
		t.Errorf("got confidence %f, want %f", res.Confidence, FallbackConfidence)
	}
	if len(res.Indicators) != 0 {
		t.Errorf("fallback should carry no indicators, got %v", res.Indicators)
	}
}

func TestClassify_EmptyStem(t *testing.T) {
	res := Classify("", "")
	if res.Type != FallbackType || res.Confidence != FallbackConfidence {
		t.Errorf("got %q @ %f, want fallback", res.Type, res.Confidence)
	}
}

func TestClassify_SecondaryCandidate(t *testing.T) {
	// A stem mixing weaken language with doubt language still picks
	// weaken first; the secondary slot records the runner-up.
	res := Classify("Which one of the following, if true, would most weaken the argument, calling into question its main conclusion?", "")
	if res.Type != qtype.Weaken {
		t.Fatalf("got type %q, want %q", res.Type, qtype.Weaken)
	}
	if res.Secondary == "" {
		t.Error("expected a secondary candidate")
	}
}

func TestClassify_ParallelFlawBeatsFlaw(t *testing.T) {
	res := Classify("The flawed reasoning in the argument above is most similar to that in which one of the following?", "")
	if res.Type != qtype.ParallelFlaw {
		t.Fatalf("got type %q, want %q", res.Type, qtype.ParallelFlaw)
	}
}

func TestRecommendedTime_MatchesBaseline(t *testing.T) {
	for _, typ := range qtype.All() {
		if got := RecommendedTime(typ); got != qtype.BaseSeconds(typ) {
			t.Errorf("%s: got %d, want %d", typ, got, qtype.BaseSeconds(typ))
		}
		if RecommendedTime(typ) <= 0 {
			t.Errorf("%s: non-positive baseline", typ)
		}
	}
}

func TestEstimateDifficulty_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		stimulus string
		stem     string
	}{
		{"empty", "", ""},
		{"simple", "The cat sat. The dog ran.", "What must be true?"},
		{"abstract", "The hypothesis that institutional phenomena determine the formation of conceptual categories presupposes a theory of abstraction whose plausibility remains contested among proponents of structuralism.", "Which principle underlies the argument?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := EstimateDifficulty(tt.stimulus, tt.stem)
			for _, v := range []int{d.Abstractness, d.ArgumentComplexity, d.VocabularyLevel, d.TrapDensity} {
				if v < 1 || v > 5 {
					t.Errorf("factor out of range: %+v", d)
				}
			}
		})
	}
}

func TestEstimateDifficulty_AbstractScoresHigher(t *testing.T) {
	simple := EstimateDifficulty("The cat sat on the mat. It was warm.", "")
	abstract := EstimateDifficulty(
		"The institutionalization of normative abstraction presupposes a phenomenon whose conceptualization resists categorical formalization within any hypothesis of structural determination.", "")
	if abstract.Abstractness <= simple.Abstractness {
		t.Errorf("abstract %d should exceed simple %d", abstract.Abstractness, simple.Abstractness)
	}
	if abstract.VocabularyLevel <= simple.VocabularyLevel {
		t.Errorf("abstract vocab %d should exceed simple %d", abstract.VocabularyLevel, simple.VocabularyLevel)
	}
}
