package argument

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_EmptyStimulus(t *testing.T) {
	s := Analyze("")
	assert.Empty(t, s.Components)
	assert.Empty(t, s.MainConclusion)
	assert.Equal(t, Weak, s.Strength)
	assert.Empty(t, s.LogicalFlow)
}

func TestAnalyze_TwoSentenceExample(t *testing.T) {
	s := Analyze("Sales increased. Therefore, the marketing campaign succeeded.")

	require.Len(t, s.Components, 2)
	assert.Equal(t, Premise, s.Components[0].Type)
	assert.Equal(t, Conclusion, s.Components[1].Type)
	assert.Equal(t, "therefore", s.Components[1].Indicator)
	assert.Equal(t, "Therefore, the marketing campaign succeeded.", s.MainConclusion)
	assert.True(t, s.Components[1].IsMain)

	require.Len(t, s.LogicalFlow, 1)
	assert.Equal(t, Edge{From: "c1", To: "c2", Relationship: Supports}, s.LogicalFlow[0])
	assert.Equal(t, []string{"Sales increased."}, s.MainPremises)
}

func TestAnalyze_ComponentCountEqualsSentenceCount(t *testing.T) {
	// No subordinating conjunctions: one component per sentence.
	s := Analyze("The factory opened. Workers arrived. Production started. Orders shipped.")
	assert.Len(t, s.Components, 4)
}

func TestAnalyze_SubClauseExtraction(t *testing.T) {
	s := Analyze("The team won because the defense improved. Therefore, the coaching change worked.")

	// Two sentences plus one extracted clause.
	require.Len(t, s.Components, 3)
	sub := s.Component("c1.1")
	require.NotNil(t, sub)
	assert.Equal(t, Premise, sub.Type)
	assert.Equal(t, "because the defense improved", sub.Text)
	assert.Equal(t, "because", sub.Indicator)

	// Offsets point back into the stimulus.
	assert.Equal(t, sub.Text, s.Stimulus[sub.Start:sub.End])

	// The sub-clause supports its parent sentence.
	assert.Contains(t, s.LogicalFlow, Edge{From: "c1.1", To: "c1", Relationship: Supports})
}

func TestAnalyze_FirstSentenceBackground(t *testing.T) {
	// A scene-setting opener with no indicators goes background when
	// later sentences carry the premises.
	s := Analyze("City parks have existed for centuries. A recent study found that park visits reduce stress. Therefore, cities should fund more parks.")

	require.GreaterOrEqual(t, len(s.Components), 3)
	assert.Equal(t, Background, s.Components[0].Type)
	assert.Equal(t, Evidence, s.Components[1].Type)
	assert.Equal(t, Conclusion, s.Components[2].Type)
}

func TestAnalyze_MainConclusionFallbackMostSupported(t *testing.T) {
	// Two conclusions; the one with more incoming support wins.
	s := Analyze("Rents rose. Wages stagnated. Therefore, affordability declined. Thus, policy failed somewhere.")

	var conclusions []*Component
	for i := range s.Components {
		if s.Components[i].Type == Conclusion {
			conclusions = append(conclusions, &s.Components[i])
		}
	}
	require.Len(t, conclusions, 2)
	assert.NotEmpty(t, s.MainConclusion)
}

func TestAnalyze_OpposesEdge(t *testing.T) {
	s := Analyze("The plan has merits, but costs are high. Critics accept the goal, but they reject the method.")

	found := false
	for _, e := range s.LogicalFlow {
		if e.Relationship == Opposes {
			found = true
		}
	}
	assert.True(t, found, "expected an opposes edge between components sharing a contrast indicator")
}

func TestAnalyze_CausalAssumptionGap(t *testing.T) {
	s := Analyze("Ice cream sales are associated with drowning rates. Therefore, ice cream causes drowning.")
	assert.Contains(t, s.Assumptions, AssumptionCausal)
}

func TestAnalyze_GeneralizationAssumptionGap(t *testing.T) {
	s := Analyze("In one study, some participants improved with the treatment. Therefore, every patient will benefit from it.")
	assert.Contains(t, s.Assumptions, AssumptionGeneralization)
}

func TestAnalyze_TemporalAssumptionGap(t *testing.T) {
	s := Analyze("Profits were higher last year. Therefore, the company will expand next year.")
	assert.Contains(t, s.Assumptions, AssumptionTemporal)
}

func TestAnalyze_NoAssumptionsWithoutConclusion(t *testing.T) {
	s := Analyze("Some birds migrate. Some birds do not.")
	assert.Empty(t, s.Assumptions)
	assert.Empty(t, s.MainConclusion)
}

func TestAnalyze_StrengthStrong(t *testing.T) {
	s := Analyze("A recent study found that output rose. Workers were motivated because bonuses were offered. Managers also reported fewer delays. Training reduced errors. Therefore, the new policy improved productivity.")
	assert.Equal(t, Strong, s.Strength)
}

func TestAnalyze_StrengthWeak(t *testing.T) {
	s := Analyze("Sales increased. Therefore, the marketing campaign succeeded.")
	assert.Equal(t, Weak, s.Strength)
}

func TestVisualizationData_Derivative(t *testing.T) {
	s := Analyze("Sales increased. Therefore, the marketing campaign succeeded.")
	vis := VisualizationData(s)

	require.Len(t, vis.Nodes, len(s.Components))
	require.Len(t, vis.Edges, len(s.LogicalFlow))

	// Conclusion sits on a lower row than its premise.
	byID := make(map[string]VisNode)
	for _, n := range vis.Nodes {
		byID[n.ID] = n
	}
	assert.Greater(t, byID["c2"].Y, byID["c1"].Y)
	assert.True(t, byID["c2"].IsMain)
}
