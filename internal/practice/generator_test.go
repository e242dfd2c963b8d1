package practice

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
	"github.com/abhisek/reasonprep/internal/tracker"
)

func poolQuestion(id string, t qtype.Type, level int, rec int) question.Question {
	return question.Question{
		ID:   id,
		Type: t,
		Difficulty: question.DifficultyFactors{
			Abstractness: level, ArgumentComplexity: level, VocabularyLevel: level, TrapDensity: level,
		},
		TimeRecommendation: rec,
	}
}

// mixedPool builds count questions cycling through the core types and
// difficulty levels 1-5.
func mixedPool(count int) []question.Question {
	core := qtype.Core()
	pool := make([]question.Question, 0, count)
	for i := 0; i < count; i++ {
		pool = append(pool, poolQuestion(
			fmt.Sprintf("q%d", i),
			core[i%len(core)],
			i%5+1,
			60+5*(i%10),
		))
	}
	return pool
}

func testGenerator(t *testing.T, history *tracker.Tracker) *Generator {
	t.Helper()
	if history == nil {
		history = tracker.New(config.Default())
	}
	return NewGenerator(config.Default(), history, rand.New(rand.NewSource(1)))
}

func historyWith(t qtype.Type, outcomes ...bool) *tracker.Tracker {
	tr := tracker.New(config.Default())
	for _, ok := range outcomes {
		tr.Add(tracker.Entry{QuestionID: "h", Type: t, Correct: ok, TimeSpent: 60, RecommendedTime: 80})
	}
	return tr
}

func TestGenerate_CountContract(t *testing.T) {
	g := testGenerator(t, nil)
	pool := mixedPool(40)

	set := g.Generate(pool, Criteria{QuestionCount: 10})
	assert.Len(t, set.Questions, 10)

	// A filtered pool smaller than the request returns the whole pool.
	small := g.Generate(mixedPool(4), Criteria{QuestionCount: 10})
	assert.Len(t, small.Questions, 4)
}

func TestGenerate_NoDuplicates(t *testing.T) {
	g := testGenerator(t, nil)
	set := g.Generate(mixedPool(30), Criteria{QuestionCount: 15, Variety: true})
	seen := make(map[string]bool)
	for _, q := range set.Questions {
		assert.False(t, seen[q.ID], "duplicate question %s", q.ID)
		seen[q.ID] = true
	}
}

func TestSelectStrategy_Order(t *testing.T) {
	withHistory := historyWith(qtype.Weaken, false, false, true)
	tests := []struct {
		name    string
		history *tracker.Tracker
		c       Criteria
		want    Strategy
	}{
		{"weakness wins with history", withHistory, Criteria{FocusWeaknesses: true, TimeLimitMinutes: 30}, StrategyWeaknessFocused},
		{"weakness needs history", nil, Criteria{FocusWeaknesses: true}, StrategyComprehensive},
		{"time pressure under an hour", nil, Criteria{TimeLimitMinutes: 45}, StrategyTimePressure},
		{"hour budget is not time pressure", nil, Criteria{TimeLimitMinutes: 60, Variety: true}, StrategyBalanced},
		{"review for narrow focus", nil, Criteria{TargetTypes: []qtype.Type{qtype.Flaw, qtype.Weaken}}, StrategyReviewMistakes},
		{"balanced for variety", nil, Criteria{Variety: true}, StrategyBalanced},
		{"ladder for full range", nil, Criteria{MinDifficulty: 1, MaxDifficulty: 5}, StrategyDifficultyLadder},
		{"comprehensive default", nil, Criteria{}, StrategyComprehensive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGenerator(t, tt.history)
			assert.Equal(t, tt.want, g.selectStrategy(tt.c))
		})
	}
}

func TestFilterPool(t *testing.T) {
	g := testGenerator(t, nil)
	pool := []question.Question{
		poolQuestion("a", qtype.Strengthen, 1, 60),
		poolQuestion("b", qtype.Strengthen, 5, 60),
		poolQuestion("c", qtype.Weaken, 3, 60),
	}

	byType := g.filterPool(pool, Criteria{TargetTypes: []qtype.Type{qtype.Weaken}})
	require.Len(t, byType, 1)
	assert.Equal(t, "c", byType[0].ID)

	byRange := g.filterPool(pool, Criteria{MinDifficulty: 2, MaxDifficulty: 4})
	require.Len(t, byRange, 1)
	assert.Equal(t, "c", byRange[0].ID)

	excluded := g.filterPool(pool, Criteria{ExcludeQuestionIDs: []string{"a", "c"}})
	require.Len(t, excluded, 1)
	assert.Equal(t, "b", excluded[0].ID)
}

func TestWeaknessFocused_WeakTypeFirst(t *testing.T) {
	// Weaken history is poor, strengthen history is strong.
	tr := historyWith(qtype.Weaken, false, false, false, true)
	for i := 0; i < 4; i++ {
		tr.Add(tracker.Entry{QuestionID: "h", Type: qtype.Strengthen, Correct: true, TimeSpent: 60, RecommendedTime: 80})
	}
	g := testGenerator(t, tr)

	pool := []question.Question{
		poolQuestion("s1", qtype.Strengthen, 3, 80),
		poolQuestion("w1", qtype.Weaken, 3, 80),
		poolQuestion("s2", qtype.Strengthen, 3, 80),
		poolQuestion("w2", qtype.Weaken, 3, 80),
	}
	set := g.Generate(pool, Criteria{QuestionCount: 2, FocusWeaknesses: true})

	require.Equal(t, StrategyWeaknessFocused, set.Strategy)
	require.Len(t, set.Questions, 2)
	for _, q := range set.Questions {
		assert.Equal(t, qtype.Weaken, q.Type)
	}
}

func TestTimePressure_FastestFirst(t *testing.T) {
	g := testGenerator(t, nil)
	pool := []question.Question{
		poolQuestion("slow", qtype.Flaw, 3, 120),
		poolQuestion("fast", qtype.Flaw, 3, 45),
		poolQuestion("mid", qtype.Flaw, 3, 80),
	}
	set := g.Generate(pool, Criteria{QuestionCount: 2, TimeLimitMinutes: 30})

	require.Equal(t, StrategyTimePressure, set.Strategy)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, "fast", set.Questions[0].ID)
	assert.Equal(t, "mid", set.Questions[1].ID)
}

func TestBalanced_EvenSpread(t *testing.T) {
	g := testGenerator(t, nil)
	var pool []question.Question
	for i := 0; i < 10; i++ {
		pool = append(pool, poolQuestion(fmt.Sprintf("s%d", i), qtype.Strengthen, 3, 80))
		pool = append(pool, poolQuestion(fmt.Sprintf("w%d", i), qtype.Weaken, 3, 80))
	}
	set := g.Generate(pool, Criteria{
		QuestionCount: 8,
		Variety:       true,
		TargetTypes:   []qtype.Type{qtype.Strengthen, qtype.Weaken},
	})

	require.Equal(t, StrategyBalanced, set.Strategy)
	require.Len(t, set.Questions, 8)
	assert.Equal(t, 4, set.TypeDistribution[qtype.Strengthen])
	assert.Equal(t, 4, set.TypeDistribution[qtype.Weaken])
}

func TestDifficultyLadder_SpansRange(t *testing.T) {
	g := testGenerator(t, nil)
	set := g.Generate(mixedPool(25), Criteria{QuestionCount: 5, MinDifficulty: 1, MaxDifficulty: 5})

	require.Equal(t, StrategyDifficultyLadder, set.Strategy)
	require.Len(t, set.Questions, 5)
	for i := 1; i < len(set.Questions); i++ {
		assert.LessOrEqual(t,
			set.Questions[i-1].Difficulty.Overall(),
			set.Questions[i].Difficulty.Overall())
	}
	assert.Greater(t, set.DifficultyDistribution["easy"], 0)
	assert.Greater(t, set.DifficultyDistribution["hard"], 0)
}

func TestComprehensive_CoreRepresentation(t *testing.T) {
	g := testGenerator(t, nil)
	set := g.Generate(mixedPool(30), Criteria{QuestionCount: 10})

	require.Equal(t, StrategyComprehensive, set.Strategy)
	require.Len(t, set.Questions, 10)
	for _, t2 := range qtype.Core() {
		assert.Greater(t, set.TypeDistribution[t2], 0, "core type %s missing", t2)
	}
}

func TestEstimatedAccuracy(t *testing.T) {
	// Without history the prior applies.
	g := testGenerator(t, nil)
	set := g.Generate(mixedPool(10), Criteria{QuestionCount: 5})
	assert.InDelta(t, defaultAccuracy, set.EstimatedAccuracy, 1e-9)

	// With history the per-type accuracy drives the estimate.
	tr := historyWith(qtype.Weaken, true, true, true, true)
	gh := testGenerator(t, tr)
	pool := []question.Question{
		poolQuestion("w1", qtype.Weaken, 3, 80),
		poolQuestion("w2", qtype.Weaken, 3, 80),
	}
	hset := gh.Generate(pool, Criteria{QuestionCount: 2, TargetTypes: []qtype.Type{qtype.Weaken}, Variety: true})
	assert.InDelta(t, 1.0, hset.EstimatedAccuracy, 1e-9)
}

func TestGenerate_MetadataPresent(t *testing.T) {
	g := testGenerator(t, nil)
	set := g.Generate(mixedPool(20), Criteria{QuestionCount: 5})
	assert.NotEmpty(t, set.Rationale)
	assert.NotEmpty(t, set.Recommendations)
	assert.False(t, set.GeneratedAt.IsZero())
}
