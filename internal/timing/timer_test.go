package timing

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

// fakeClock steps time manually for deterministic timer tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestService(clock *fakeClock) *Service {
	s := NewService(config.Default())
	s.Now = clock.now
	return s
}

func midQuestion(id string, t qtype.Type) question.Question {
	return question.Question{
		ID:   id,
		Type: t,
		Difficulty: question.DifficultyFactors{
			Abstractness: 3, ArgumentComplexity: 3, VocabularyLevel: 3, TrapDensity: 3,
		},
	}
}

func TestStartSession_ModeThresholds(t *testing.T) {
	tests := []struct {
		mode     Mode
		warn     int
		hasLimit bool
	}{
		{ModeStrict, WarnStrict, true},
		{ModeRecommended, WarnRecommended, true},
		{ModeUntimed, WarnUntimed, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			svc := newTestService(newFakeClock())
			timer := svc.StartSession(tt.mode, []question.Question{midQuestion("q1", qtype.Strengthen)})
			assert.Equal(t, tt.warn, timer.WarningThreshold)
			assert.NotEmpty(t, timer.SessionID)
			if tt.hasLimit {
				assert.Greater(t, timer.HardLimitSeconds, 0)
			} else {
				assert.Zero(t, timer.HardLimitSeconds)
			}
		})
	}
}

func TestStartSession_HardLimitMultipliers(t *testing.T) {
	q := midQuestion("q1", qtype.Strengthen)

	strictSvc := newTestService(newFakeClock())
	strict := strictSvc.StartSession(ModeStrict, []question.Question{q})

	recSvc := newTestService(newFakeClock())
	rec := recSvc.StartSession(ModeRecommended, []question.Question{q})

	base := qtype.BaseSeconds(qtype.Strengthen)
	assert.Equal(t, int(1.2*float64(base)), strict.HardLimitSeconds)
	assert.Equal(t, int(1.5*float64(base)), rec.HardLimitSeconds)
}

func TestCompleteQuestion_TimeSpentAndEfficiency(t *testing.T) {
	clock := newFakeClock()
	svc := newTestService(clock)
	svc.StartSession(ModeRecommended, nil)

	q := midQuestion("q1", qtype.Strengthen)
	require.NoError(t, svc.StartQuestion(&q))
	clock.advance(40 * time.Second)

	res, err := svc.CompleteQuestion()
	require.NoError(t, err)
	assert.Equal(t, "q1", res.QuestionID)
	assert.InDelta(t, 40, res.TimeSpent, 1e-9)
	assert.Equal(t, qtype.BaseSeconds(qtype.Strengthen), res.Recommended)
	assert.InDelta(t, 40.0/float64(res.Recommended), res.Efficiency, 1e-9)
	assert.GreaterOrEqual(t, res.TimeSpent, 0.0)
}

func TestPauseResume_PreservesElapsed(t *testing.T) {
	clock := newFakeClock()
	svc := newTestService(clock)
	svc.StartSession(ModeRecommended, nil)

	q := midQuestion("q1", qtype.Weaken)
	require.NoError(t, svc.StartQuestion(&q))

	clock.advance(20 * time.Second)
	require.NoError(t, svc.Pause())
	assert.Equal(t, StatePaused, svc.State())

	// Paused time must not count as time spent.
	clock.advance(5 * time.Minute)
	require.NoError(t, svc.Resume())
	assert.Equal(t, StateRunning, svc.State())

	clock.advance(10 * time.Second)
	res, err := svc.CompleteQuestion()
	require.NoError(t, err)
	assert.InDelta(t, 30, res.TimeSpent, 1e-9)
}

func TestPauseResume_InvalidTransitions(t *testing.T) {
	svc := newTestService(newFakeClock())
	assert.ErrorIs(t, svc.Pause(), ErrNoSession)
	assert.ErrorIs(t, svc.Resume(), ErrNoSession)

	svc.StartSession(ModeRecommended, nil)
	assert.ErrorIs(t, svc.Resume(), ErrNotPaused)
	require.NoError(t, svc.Pause())
	assert.ErrorIs(t, svc.Pause(), ErrNotRunning)
}

func TestRecommendTime_Floor(t *testing.T) {
	svc := newTestService(newFakeClock())
	q := question.Question{
		Type: qtype.MainConclusion, // lightest baseline
		Difficulty: question.DifficultyFactors{
			Abstractness: 1, ArgumentComplexity: 1, VocabularyLevel: 1, TrapDensity: 1,
		},
	}
	got := svc.RecommendTime(&q)
	assert.GreaterOrEqual(t, got, MinRecommendSeconds)
}

func TestRecommendTime_DifficultyScaling(t *testing.T) {
	svc := newTestService(newFakeClock())
	easy := midQuestion("e", qtype.Assumption)
	easy.Difficulty = question.DifficultyFactors{Abstractness: 1, ArgumentComplexity: 1, VocabularyLevel: 1, TrapDensity: 1}
	hard := midQuestion("h", qtype.Assumption)
	hard.Difficulty = question.DifficultyFactors{Abstractness: 5, ArgumentComplexity: 5, VocabularyLevel: 5, TrapDensity: 5}

	base := qtype.BaseSeconds(qtype.Assumption)
	// The easy multiplier computes to 0.2 and clamps at 0.7.
	assert.Equal(t, int(math.Round(0.7*float64(base))), svc.RecommendTime(&easy))
	assert.Greater(t, svc.RecommendTime(&hard), base)
	assert.Less(t, svc.RecommendTime(&easy), base)
}

func TestRecommendTime_UserAdjustment(t *testing.T) {
	clock := newFakeClock()
	svc := newTestService(clock)
	svc.StartSession(ModeUntimed, nil)

	q := midQuestion("q", qtype.Strengthen)
	base := qtype.BaseSeconds(qtype.Strengthen)
	neutral := svc.RecommendTime(&q)

	// Three slow completions (well over 1.3x base) earn +15s.
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.StartQuestion(&q))
		clock.advance(time.Duration(2*base) * time.Second)
		_, err := svc.CompleteQuestion()
		require.NoError(t, err)
	}
	assert.Equal(t, neutral+slowAdjustSeconds, svc.RecommendTime(&q))
}

func TestRecommendTime_NoAdjustmentUnderThreeSamples(t *testing.T) {
	clock := newFakeClock()
	svc := newTestService(clock)
	svc.StartSession(ModeUntimed, nil)

	q := midQuestion("q", qtype.Weaken)
	neutral := svc.RecommendTime(&q)

	for i := 0; i < 2; i++ {
		require.NoError(t, svc.StartQuestion(&q))
		clock.advance(10 * time.Minute)
		_, err := svc.CompleteQuestion()
		require.NoError(t, err)
	}
	assert.Equal(t, neutral, svc.RecommendTime(&q))
}

func TestHistoryCappedAtTen(t *testing.T) {
	clock := newFakeClock()
	svc := newTestService(clock)
	svc.StartSession(ModeUntimed, nil)

	q := midQuestion("q", qtype.Flaw)
	for i := 0; i < 15; i++ {
		require.NoError(t, svc.StartQuestion(&q))
		clock.advance(time.Minute)
		_, err := svc.CompleteQuestion()
		require.NoError(t, err)
	}
	assert.Len(t, svc.history[qtype.Flaw], historyCap)
}

func TestEndSession_PaceVerdicts(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    Pace
	}{
		{"too fast", 30, PaceTooFast},  // well under recommended
		{"good pace", 80, PaceGood},    // near the strengthen baseline
		{"too slow", 200, PaceTooSlow}, // well over
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newFakeClock()
			svc := newTestService(clock)
			svc.StartSession(ModeRecommended, nil)

			q := midQuestion("q", qtype.Strengthen)
			require.NoError(t, svc.StartQuestion(&q))
			clock.advance(time.Duration(tt.seconds) * time.Second)
			_, err := svc.CompleteQuestion()
			require.NoError(t, err)

			sum := svc.EndSession()
			assert.Equal(t, tt.want, sum.Pace)
			assert.NotEmpty(t, sum.Advice)
			assert.Equal(t, StateCompleted, svc.State())
		})
	}
}

func TestReset_ClearsState(t *testing.T) {
	clock := newFakeClock()
	svc := newTestService(clock)
	svc.StartSession(ModeRecommended, nil)
	q := midQuestion("q", qtype.Strengthen)
	require.NoError(t, svc.StartQuestion(&q))
	clock.advance(time.Minute)
	_, err := svc.CompleteQuestion()
	require.NoError(t, err)

	svc.Reset()
	assert.Equal(t, StateIdle, svc.State())
	assert.Nil(t, svc.Timer())
	assert.Empty(t, svc.Results())
	assert.Empty(t, svc.history)
}
