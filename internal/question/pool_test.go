package question

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/reasonprep/internal/qtype"
)

const validPoolJSON = `[
  {
    "id": "q-001",
    "questionType": "strengthen",
    "stimulus": "Sales increased. Therefore, the marketing campaign succeeded.",
    "stem": "Which one of the following, if true, would most strengthen the argument above?",
    "answerChoices": [
      {"id": "a", "text": "No other factor changed during the period.", "isCorrect": true},
      {"id": "b", "text": "Sales often fluctuate seasonally.", "isCorrect": false}
    ],
    "difficultyFactors": {"abstractness": 2, "argumentComplexity": 3, "vocabularyLevel": 2, "trapDensity": 9},
    "timeRecommendation": 0
  },
  {
    "id": "q-002",
    "questionType": "not_a_real_type",
    "stimulus": "x",
    "stem": "y?",
    "answerChoices": [
      {"id": "a", "text": "a", "isCorrect": true},
      {"id": "b", "text": "b", "isCorrect": false}
    ]
  },
  {
    "id": "q-003",
    "questionType": "weaken",
    "stimulus": "x",
    "stem": "y?",
    "answerChoices": [
      {"id": "a", "text": "a", "isCorrect": false},
      {"id": "b", "text": "b", "isCorrect": false}
    ]
  }
]`

func TestParsePool_SkipsBadRecordsAndNormalizes(t *testing.T) {
	pool, err := ParsePool([]byte(validPoolJSON))
	require.NoError(t, err)

	// q-002 has an unknown type, q-003 has no correct choice.
	require.Len(t, pool, 1)
	q := pool[0]
	assert.Equal(t, "q-001", q.ID)
	assert.Equal(t, qtype.Strengthen, q.Type)

	// Trap density 9 clamps to 5; zero time recommendation defaults to
	// the strengthen baseline.
	assert.Equal(t, 5, q.Difficulty.TrapDensity)
	assert.Equal(t, qtype.BaseSeconds(qtype.Strengthen), q.TimeRecommendation)
}

func TestParsePool_RejectsSchemaViolation(t *testing.T) {
	// answerChoices below minItems.
	bad := `[{"id": "q", "questionType": "weaken", "stimulus": "s", "stem": "t",
	         "answerChoices": [{"id": "a", "text": "x", "isCorrect": true}]}]`
	_, err := ParsePool([]byte(bad))
	require.Error(t, err)
}

func TestParsePool_RejectsInvalidJSON(t *testing.T) {
	_, err := ParsePool([]byte("{not json"))
	require.Error(t, err)
}

func TestDifficultyFactors_ClampAndOverall(t *testing.T) {
	d := DifficultyFactors{Abstractness: 0, ArgumentComplexity: 7, VocabularyLevel: 3, TrapDensity: -2}.Clamp()
	assert.Equal(t, DifficultyFactors{Abstractness: 1, ArgumentComplexity: 5, VocabularyLevel: 3, TrapDensity: 1}, d)
	assert.InDelta(t, 2.5, d.Overall(), 1e-9)
}

func TestCorrectChoice(t *testing.T) {
	q := Question{Choices: []AnswerChoice{
		{ID: "a", Correct: false},
		{ID: "b", Correct: true},
	}}
	require.NotNil(t, q.CorrectChoice())
	assert.Equal(t, "b", q.CorrectChoice().ID)

	empty := Question{}
	assert.Nil(t, empty.CorrectChoice())
}
