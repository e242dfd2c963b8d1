package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/traps"
)

func entryAt(t qtype.Type, correct bool, n int) Entry {
	return Entry{
		QuestionID:      "q",
		Type:            t,
		TimeSpent:       60,
		RecommendedTime: 80,
		Correct:         correct,
		Timestamp:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Minute),
		SessionID:       "s1",
	}
}

// addRun appends a run of attempts with the given outcomes, oldest first.
func addRun(tr *Tracker, t qtype.Type, outcomes ...bool) {
	for i, ok := range outcomes {
		tr.Add(entryAt(t, ok, len(tr.entries)+i))
	}
}

func TestPerformance_BasicAggregates(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Strengthen, true, false, true, true)

	p := tr.Performance(qtype.Strengthen)
	assert.Equal(t, 4, p.Attempts)
	assert.Equal(t, 3, p.CorrectCount)
	assert.InDelta(t, 0.75, p.Accuracy, 1e-9)
	assert.InDelta(t, 60, p.AverageTime, 1e-9)
	assert.False(t, p.LastPracticed.IsZero())
}

func TestPerformance_EmptyType(t *testing.T) {
	tr := New(config.Default())
	p := tr.Performance(qtype.Weaken)
	assert.Zero(t, p.Attempts)
	assert.Zero(t, p.Accuracy)
	assert.Equal(t, Stable, p.RecentTrend)
}

func TestPerformance_CacheInvalidatedOnAdd(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Flaw, true)
	first := tr.Performance(qtype.Flaw)
	assert.Same(t, first, tr.Performance(qtype.Flaw), "repeated reads should hit the cache")

	addRun(tr, qtype.Flaw, false)
	second := tr.Performance(qtype.Flaw)
	assert.NotSame(t, first, second)
	assert.Equal(t, 2, second.Attempts)
	assert.InDelta(t, 0.5, second.Accuracy, 1e-9)
}

func TestAnalyzeTrend_Improving(t *testing.T) {
	tr := New(config.Default())
	// Five misses followed by five hits must read as improving.
	addRun(tr, qtype.Assumption, false, false, false, false, false, true, true, true, true, true)

	res := tr.AnalyzeTrend(qtype.Assumption)
	assert.Equal(t, Improving, res.Direction)
	assert.Equal(t, 10, res.DataPoints)
	assert.Greater(t, res.Confidence, 0.0)
}

func TestAnalyzeTrend_Declining(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Weaken, true, true, true, true, true, false, false, false, false, false)
	assert.Equal(t, Declining, tr.AnalyzeTrend(qtype.Weaken).Direction)
}

func TestAnalyzeTrend_TooFewEntries(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Flaw, true, false)

	res := tr.AnalyzeTrend(qtype.Flaw)
	assert.Equal(t, Stable, res.Direction)
	assert.Zero(t, res.Confidence)
}

func TestAnalyzeTrend_UsesLastTwentyOnly(t *testing.T) {
	tr := New(config.Default())
	// Thirty early misses, then twenty hits: only the hits are in view,
	// so the trend over them is flat.
	for i := 0; i < 30; i++ {
		addRun(tr, qtype.Principle, false)
	}
	for i := 0; i < 20; i++ {
		addRun(tr, qtype.Principle, true)
	}

	res := tr.AnalyzeTrend(qtype.Principle)
	assert.Equal(t, 20, res.DataPoints)
	assert.Equal(t, Stable, res.Direction)
}

func TestAnalyzeTrend_DeltaAtThresholdIsMovement(t *testing.T) {
	tun := config.Default()
	tun.TrendStableDelta = 0.25
	tr := New(tun)
	// Twelve attempts give windows of four. The first window is all
	// misses and the last holds exactly one hit, so the shift equals
	// the threshold and must not read as stable.
	addRun(tr, qtype.Evaluate,
		false, false, false, false, false, false, false, false,
		true, false, false, false)
	assert.Equal(t, Improving, tr.AnalyzeTrend(qtype.Evaluate).Direction)

	// Mirrored run: the shift equals minus the threshold.
	addRun(tr, qtype.Paradox,
		true, false, false, false, false, false, false, false,
		false, false, false, false)
	assert.Equal(t, Declining, tr.AnalyzeTrend(qtype.Paradox).Direction)
}

func TestRecentTrend_DeltaAtThresholdIsMovement(t *testing.T) {
	tun := config.Default()
	tun.RecentStableDelta = 0.2
	tr := New(tun)
	// Previous window all misses, last window one hit of five: the
	// two-window delta lands exactly on the threshold.
	addRun(tr, qtype.PointAtIssue,
		false, false, false, false, false,
		true, false, false, false, false)
	assert.Equal(t, Improving, tr.Performance(qtype.PointAtIssue).RecentTrend)
}

func TestDashboard_Aggregates(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Strengthen, true, true, true, true)
	addRun(tr, qtype.Weaken, false, false, true)

	wrong := entryAt(qtype.Weaken, false, 99)
	wrong.Patterns = []traps.Pattern{traps.OppositeAnswer, traps.TooExtreme}
	tr.Add(wrong)

	d := tr.Dashboard()
	assert.Equal(t, 8, d.TotalAttempts)
	assert.InDelta(t, 5.0/8.0, d.OverallAccuracy, 1e-9)
	assert.InDelta(t, 60, d.AverageTime, 1e-9)
	assert.InDelta(t, 80.0/60.0, d.TimeEfficiency, 1e-9)

	require.NotEmpty(t, d.StrongestTypes)
	assert.Equal(t, qtype.Strengthen, d.StrongestTypes[0].Type)
	require.NotEmpty(t, d.WeakestTypes)
	assert.Equal(t, qtype.Weaken, d.WeakestTypes[0].Type)

	require.NotEmpty(t, d.CommonMistakes)
	assert.Equal(t, traps.OppositeAnswer, d.CommonMistakes[0].Pattern)
	assert.Equal(t, "Opposite Answer", d.CommonMistakes[0].Label)
}

func TestDashboard_Empty(t *testing.T) {
	tr := New(config.Default())
	d := tr.Dashboard()
	assert.Zero(t, d.TotalAttempts)
	assert.Empty(t, d.StrongestTypes)
	assert.Empty(t, d.CommonMistakes)
}

func TestWeaknesses_SelectionAndPriority(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Strengthen, true, true, true, true)         // strong, excluded
	addRun(tr, qtype.Weaken, false, false, false, true)          // 0.25, high
	addRun(tr, qtype.Assumption, false, true, true, false, true) // 0.60, medium
	addRun(tr, qtype.Flaw, true, true, false, true, true, false) // ~0.67, low but weak

	ws := tr.Weaknesses()
	require.Len(t, ws, 3)

	assert.Equal(t, qtype.Weaken, ws[0].Type)
	assert.Equal(t, PriorityHigh, ws[0].Priority)
	assert.Equal(t, 20, ws[0].SuggestedQuestions)
	assert.Equal(t, 3, ws[0].WeeklyTarget.QuestionCount)
	assert.InDelta(t, 0.40, ws[0].WeeklyTarget.TargetAccuracy, 1e-9)
	assert.Equal(t, 21, ws[0].EstimatedDays)
	assert.NotEmpty(t, ws[0].FocusPoints)

	assert.Equal(t, qtype.Assumption, ws[1].Type)
	assert.Equal(t, PriorityMedium, ws[1].Priority)
	assert.Equal(t, 15, ws[1].SuggestedQuestions)
	assert.Equal(t, 17, ws[1].EstimatedDays)

	assert.Equal(t, qtype.Flaw, ws[2].Type)
	assert.Equal(t, PriorityLow, ws[2].Priority)
	assert.Equal(t, 10, ws[2].SuggestedQuestions)
	assert.Equal(t, 7, ws[2].EstimatedDays)
}

func TestWeaknesses_TargetAccuracyCapped(t *testing.T) {
	tr := New(config.Default())
	// Accuracy 0.75 with a declining trend still qualifies, and its
	// weekly target accuracy caps at 0.85.
	addRun(tr, qtype.MustBeTrue,
		true, true, true, true, true, true, true, true, true, true,
		true, true, true, true, true, false, false, false, false, false)

	ws := tr.Weaknesses()
	require.Len(t, ws, 1)
	assert.Equal(t, Declining, ws[0].Trend)
	assert.InDelta(t, 0.85, ws[0].WeeklyTarget.TargetAccuracy, 1e-9)
}

func TestFocusTipsCoverCatalog(t *testing.T) {
	for _, typ := range qtype.All() {
		tip, ok := typeFocus[typ]
		assert.True(t, ok, "no study tip for %s", typ)
		assert.NotEmpty(t, tip)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Strengthen, true, false, true)

	snap := tr.Export()
	require.Len(t, snap.Entries, 3)
	require.NotNil(t, snap.Dashboard)

	other := New(config.Default())
	other.Import(snap)
	assert.Equal(t, tr.Performance(qtype.Strengthen).Accuracy, other.Performance(qtype.Strengthen).Accuracy)
}

func TestReset(t *testing.T) {
	tr := New(config.Default())
	addRun(tr, qtype.Strengthen, true)
	tr.Reset()
	assert.Empty(t, tr.Entries())
	assert.Zero(t, tr.Performance(qtype.Strengthen).Attempts)
}
