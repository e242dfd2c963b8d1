package traps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasonprep/internal/argument"
	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

func findMatch(d *Detection, p Pattern) *Match {
	for i := range d.Matches {
		if d.Matches[i].Pattern == p {
			return &d.Matches[i]
		}
	}
	return nil
}

func TestDetect_OppositeAnswerOnStrengthen(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType: qtype.Strengthen,
		Stimulus:     "Students who review their mistakes improve their scores on later exams.",
		Stem:         "Which one of the following, if true, most strengthens the argument?",
	}

	d := det.Detect("The findings undermine the claim that reviewing mistakes helps students.", ctx)
	m := findMatch(d, OppositeAnswer)
	require.NotNil(t, m, "expected an opposite_answer match")
	assert.Greater(t, m.Confidence, 0.5)
	assert.Contains(t, m.Reason, "undermine")
	assert.Equal(t, "Opposite Answer", d.TrapLabel)
	assert.Greater(t, d.Confidence, 0.0)
	assert.LessOrEqual(t, d.Confidence, 1.0)
}

func TestDetect_StrengthenWordOnWeaken(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType: qtype.Weaken,
		Stimulus:     "The new policy reduced traffic accidents in the city center.",
	}

	d := det.Detect("Independent data confirm that the policy reduced accidents.", ctx)
	m := findMatch(d, OppositeAnswer)
	require.NotNil(t, m)
	assert.InDelta(t, 0.9, m.Confidence, 1e-9)
}

func TestDetect_TooExtremeOnAssumption(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType: qtype.Assumption,
		Stimulus:     "Some employees who took the training reported higher satisfaction.",
	}

	d := det.Detect("All employees will always benefit from any training program.", ctx)
	m := findMatch(d, TooExtreme)
	require.NotNil(t, m)
	assert.InDelta(t, 0.7, m.Confidence, 1e-9)
	assert.Contains(t, d.Explanation, "absolute language")
}

func TestDetect_PremiseRepeatOnAssumption(t *testing.T) {
	det := NewDetector(config.Default())
	stimulus := "The factory doubled production capacity last year."
	ctx := &Context{
		QuestionType: qtype.Assumption,
		Stimulus:     stimulus,
	}

	// A near-verbatim lift of the stimulus is not an unstated assumption.
	d := det.Detect("The factory doubled production capacity.", ctx)
	m := findMatch(d, PremiseRepeat)
	require.NotNil(t, m)
	assert.InDelta(t, 0.8, m.Confidence, 1e-9)
}

func TestDetect_PartiallyCorrect(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType:  qtype.Strengthen,
		Stimulus:      "Regular review sessions help students retain material over the semester.",
		CorrectAnswer: "Regular review improves scores significantly.",
	}

	d := det.Detect("Regular review improves retention dramatically.", ctx)
	m := findMatch(d, PartiallyCorrect)
	require.NotNil(t, m)
	assert.InDelta(t, 0.7, m.Confidence, 1e-9)
}

func TestDetect_OutOfScope(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType: qtype.MainConclusion,
		Stimulus:     "Migratory birds navigate using the earth's magnetic field.",
	}

	d := det.Detect("Corporate tax policy should reward charitable donations.", ctx)
	m := findMatch(d, OutOfScope)
	require.NotNil(t, m)
	assert.InDelta(t, 0.5, m.Confidence, 1e-9)
}

func TestDetect_WrongComparison(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType: qtype.MainConclusion,
		Stimulus:     "The city's library expanded its weekend hours this spring.",
	}

	d := det.Detect("The library serves more than twice as many weekend visitors compared to weekday visitors.", ctx)
	m := findMatch(d, WrongComparison)
	require.NotNil(t, m)
}

func TestDetect_StructuralPassNeedsStructure(t *testing.T) {
	det := NewDetector(config.Default())
	premise := "Sales increased sharply after the advertising campaign started."
	choice := "Sales increased sharply after the advertising campaign launched."

	ctx := &Context{
		QuestionType: qtype.Flaw,
		Stimulus:     premise + " Therefore the campaign caused the increase.",
	}
	without := det.Detect(choice, ctx)
	assert.Nil(t, findMatch(without, PremiseRepeat))

	ctx.Structure = &argument.Structure{
		MainConclusion: "Therefore the campaign caused the increase.",
		MainPremises:   []string{premise},
	}
	with := det.Detect(choice, ctx)
	m := findMatch(with, PremiseRepeat)
	require.NotNil(t, m)
	assert.InDelta(t, 0.8, m.Confidence, 1e-9)
}

func TestDetect_EmptyChoice(t *testing.T) {
	det := NewDetector(config.Default())
	d := det.Detect("   ", &Context{QuestionType: qtype.Strengthen, Stimulus: "Anything."})
	assert.Empty(t, d.Matches)
	assert.Zero(t, d.Confidence)
	assert.NotEmpty(t, d.Explanation)
}

func TestDetect_NoMatchExplanation(t *testing.T) {
	det := NewDetector(config.Default())
	ctx := &Context{
		QuestionType: qtype.MainConclusion,
		Stimulus:     "The museum extended its evening program through the summer.",
	}
	d := det.Detect("The museum extended its evening program recently.", ctx)
	if len(d.Matches) == 0 {
		assert.Contains(t, d.Explanation, "No known trap pattern")
	}
}

func TestDetectAll_MarksCorrectChoice(t *testing.T) {
	det := NewDetector(config.Default())
	q := &question.Question{
		ID:       "q1",
		Type:     qtype.Strengthen,
		Stimulus: "Students who review their mistakes improve their scores.",
		Stem:     "Which one of the following most strengthens the argument?",
		Choices: []question.AnswerChoice{
			{ID: "a", Text: "Reviewing mistakes builds durable understanding of the material.", Correct: true, Explanation: "Directly supports the causal link."},
			{ID: "b", Text: "The findings undermine the value of reviewing mistakes."},
		},
	}

	diags := det.DetectAll(q, nil)
	require.Len(t, diags, 2)

	assert.True(t, diags[0].Correct)
	assert.Nil(t, diags[0].Detection)
	assert.Equal(t, "Directly supports the causal link.", diags[0].Explanation)

	assert.False(t, diags[1].Correct)
	require.NotNil(t, diags[1].Detection)
	assert.NotNil(t, findMatch(diags[1].Detection, OppositeAnswer))
}

func TestDetection_PatternsDeduped(t *testing.T) {
	d := &Detection{Matches: []Match{
		{Pattern: TooExtreme}, {Pattern: OutOfScope}, {Pattern: TooExtreme},
	}}
	assert.Equal(t, []Pattern{TooExtreme, OutOfScope}, d.Patterns())
}

func TestLabelFallback(t *testing.T) {
	assert.Equal(t, "Opposite Answer", Label(OppositeAnswer))
	assert.Equal(t, "mystery", Label(Pattern("mystery")))
}
