package traps

import (
	"fmt"

	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/textutil"
)

// Effect-direction and intensity vocabularies used by the rules.

var weakenEffectWords = []string{
	"undermine", "weaken", "cast doubt", "challenge", "contradict", "refute",
}

var strengthenEffectWords = []string{
	"strengthen", "support", "confirm", "bolster", "reinforce", "corroborate",
}

var extremeWords = []string{
	"all ", "every ", "always", "never", "none ", "no one", "only ",
	"must ", "impossible", "certainly", "undoubtedly", "entirely",
}

var causalWords = []string{
	"cause", "caused", "causes", "leads to", "led to", "results in",
	"due to", "because of", "responsible for", "produces",
}

var comparisonWords = []string{
	"more than", "less than", "better than", "worse than",
	"compared to", "compared with", "greater than", "fewer than",
}

var distinctionWords = []string{
	"distinction", "difference between", "unlike", "whereas",
	"as opposed to", "in contrast to",
}

// Per-match confidences. A direction flip is close to certain; scope
// and comparison cues are weaker signals.
const (
	confOpposite    = 0.9
	confRepeat      = 0.8
	confExtreme     = 0.7
	confPartial     = 0.7
	confTemporal    = 0.6
	confCausal      = 0.6
	confScope       = 0.5
	confComparison  = 0.5
	confDistinction = 0.5
)

// outOfScopeOverlap is the overlap below which a choice is considered
// to have left the stimulus's subject matter entirely.
const outOfScopeOverlap = 0.1

// defaultTypeRules builds the per-question-type registry.
func defaultTypeRules() map[qtype.Type][]rule {
	oppositeFor := func(words []string, direction string) rule {
		return func(det *Detector, choice string, ctx *Context) *Match {
			word, ok := textutil.ContainsAny(choice, words)
			if !ok {
				return nil
			}
			return &Match{
				Pattern:    OppositeAnswer,
				Confidence: confOpposite,
				Reason: fmt.Sprintf("This choice works to %s the argument, the opposite of what a %s question asks for (indicator: %q).",
					direction, qtype.DisplayName(ctx.QuestionType), word),
			}
		}
	}

	return map[qtype.Type][]rule{
		qtype.Strengthen: {
			oppositeFor(weakenEffectWords, "weaken"),
		},
		qtype.Weaken: {
			oppositeFor(strengthenEffectWords, "strengthen"),
		},
		qtype.Assumption: {
			ruleExtremeLanguage,
			ruleStimulusLift,
		},
		qtype.Flaw: {
			ruleConclusionEcho,
		},
		qtype.MustBeTrue: {
			ruleExtremeLanguage,
			ruleCausalLeap,
		},
		qtype.MostStronglySupported: {
			ruleExtremeLanguage,
			ruleCausalLeap,
		},
	}
}

// ruleExtremeLanguage flags absolute or universal language, which is
// rarely warranted by a measured stimulus.
func ruleExtremeLanguage(det *Detector, choice string, ctx *Context) *Match {
	word, ok := textutil.ContainsAny(" "+choice, extremeWords)
	if !ok {
		return nil
	}
	return &Match{
		Pattern:    TooExtreme,
		Confidence: confExtreme,
		Reason:     fmt.Sprintf("The absolute language %q goes further than the stimulus can justify.", word),
	}
}

// ruleStimulusLift flags choices lifted nearly verbatim from the
// stimulus: restating a premise is not an unstated assumption.
func ruleStimulusLift(det *Detector, choice string, ctx *Context) *Match {
	if textutil.Overlap(choice, ctx.Stimulus) <= det.tun.StimulusOverlap {
		return nil
	}
	return &Match{
		Pattern:    PremiseRepeat,
		Confidence: confRepeat,
		Reason:     "This choice restates what the stimulus already says; an assumption must be unstated.",
	}
}

// ruleConclusionEcho flags flaw answers that merely echo the
// conclusion instead of describing the reasoning error.
func ruleConclusionEcho(det *Detector, choice string, ctx *Context) *Match {
	conclusion := ""
	if ctx.Structure != nil {
		conclusion = ctx.Structure.MainConclusion
	}
	if conclusion == "" {
		if sentences := textutil.SplitSentences(ctx.Stimulus); len(sentences) > 0 {
			conclusion = sentences[len(sentences)-1].Text
		}
	}
	if conclusion == "" || textutil.Jaccard(choice, conclusion) <= det.tun.StructuralSimilarity {
		return nil
	}
	return &Match{
		Pattern:    ConclusionRepeat,
		Confidence: confRepeat,
		Reason:     "This choice repeats the argument's conclusion rather than describing the flaw in its reasoning.",
	}
}

// ruleCausalLeap flags causal claims in a choice when the stimulus
// only reports causal or correlational observations: inference
// questions cannot upgrade a correlation into a cause.
func ruleCausalLeap(det *Detector, choice string, ctx *Context) *Match {
	if textutil.CountAny(choice, causalWords) == 0 {
		return nil
	}
	if textutil.CountAny(ctx.Stimulus, causalWords) == 0 {
		return nil
	}
	return &Match{
		Pattern:    ReverseCausation,
		Confidence: confCausal,
		Reason:     "This choice asserts a causal direction the stimulus does not establish.",
	}
}

// defaultGeneralRules builds the type-independent registry.
func defaultGeneralRules() []rule {
	return []rule{
		ruleTenseMismatch,
		rulePartialMatch,
		ruleOutOfScope,
		ruleWrongComparison,
		ruleIrrelevantDistinction,
	}
}

func ruleTenseMismatch(det *Detector, choice string, ctx *Context) *Match {
	st := textutil.DetectTense(ctx.Stimulus)
	ct := textutil.DetectTense(choice)
	if st == textutil.TenseUnknown || ct == textutil.TenseUnknown || st == ct {
		return nil
	}
	return &Match{
		Pattern:    TemporalConfusion,
		Confidence: confTemporal,
		Reason:     "This choice shifts the time frame relative to the stimulus.",
	}
}

func rulePartialMatch(det *Detector, choice string, ctx *Context) *Match {
	if ctx.CorrectAnswer == "" {
		return nil
	}
	sim := textutil.Jaccard(choice, ctx.CorrectAnswer)
	if sim < det.tun.PartialMatchLow || sim > det.tun.PartialMatchHigh {
		return nil
	}
	return &Match{
		Pattern:    PartiallyCorrect,
		Confidence: confPartial,
		Reason:     "This choice shares ground with the correct answer but diverges on the point that matters.",
	}
}

func ruleOutOfScope(det *Detector, choice string, ctx *Context) *Match {
	if ctx.Stimulus == "" {
		return nil
	}
	if textutil.Overlap(choice, ctx.Stimulus) >= outOfScopeOverlap {
		return nil
	}
	return &Match{
		Pattern:    OutOfScope,
		Confidence: confScope,
		Reason:     "This choice introduces subject matter the stimulus never discusses.",
	}
}

func ruleWrongComparison(det *Detector, choice string, ctx *Context) *Match {
	if textutil.CountAny(choice, comparisonWords) == 0 {
		return nil
	}
	if textutil.CountAny(ctx.Stimulus, comparisonWords) > 0 {
		return nil
	}
	return &Match{
		Pattern:    WrongComparison,
		Confidence: confComparison,
		Reason:     "This choice relies on a comparison the stimulus never draws.",
	}
}

func ruleIrrelevantDistinction(det *Detector, choice string, ctx *Context) *Match {
	if textutil.CountAny(choice, distinctionWords) == 0 {
		return nil
	}
	return &Match{
		Pattern:    IrrelevantDistinction,
		Confidence: confDistinction,
		Reason:     "This choice draws a distinction that does not bear on the conclusion.",
	}
}

// defaultStructuralRules builds the registry that consults the
// argument structure when one is supplied.
func defaultStructuralRules() []rule {
	return []rule{
		ruleStructuralPremiseRepeat,
		ruleStructuralConclusionRepeat,
	}
}

func ruleStructuralPremiseRepeat(det *Detector, choice string, ctx *Context) *Match {
	for _, p := range ctx.Structure.MainPremises {
		if textutil.Jaccard(choice, p) > det.tun.StructuralSimilarity {
			return &Match{
				Pattern:    PremiseRepeat,
				Confidence: confRepeat,
				Reason:     "This choice closely mirrors one of the argument's stated premises.",
			}
		}
	}
	return nil
}

func ruleStructuralConclusionRepeat(det *Detector, choice string, ctx *Context) *Match {
	c := ctx.Structure.MainConclusion
	if c == "" || textutil.Jaccard(choice, c) <= det.tun.StructuralSimilarity {
		return nil
	}
	return &Match{
		Pattern:    ConclusionRepeat,
		Confidence: confRepeat,
		Reason:     "This choice closely mirrors the argument's main conclusion.",
	}
}
