package classify

import (
	"github.com/abhisek/reasonprep/internal/question"
	"github.com/abhisek/reasonprep/internal/textutil"
)

// abstractMarkers are suffix and vocabulary cues for abstract prose.
var abstractMarkers = []string{
	"tion", "ness", "ity", "ism", "ance", "ence",
	"principle", "theory", "concept", "notion", "phenomenon", "hypothesis",
}

// EstimateDifficulty scores a question's difficulty factors from
// surface text features alone: word length drives vocabulary, sentence
// length drives argument complexity, abstract-noun markers drive
// abstractness. Trap density cannot be read off the surface, so it
// defaults to the midpoint. All scores land in [1, 5].
func EstimateDifficulty(stimulus, stem string) question.DifficultyFactors {
	text := stimulus + " " + stem
	return question.DifficultyFactors{
		Abstractness:       scoreAbstractness(text),
		ArgumentComplexity: scoreComplexity(stimulus),
		VocabularyLevel:    scoreVocabulary(text),
		TrapDensity:        3,
	}.Clamp()
}

func scoreVocabulary(text string) int {
	avg := textutil.AvgWordLen(text)
	switch {
	case avg == 0:
		return 1
	case avg < 4.5:
		return 2
	case avg < 5.5:
		return 3
	case avg < 6.5:
		return 4
	default:
		return 5
	}
}

func scoreComplexity(stimulus string) int {
	avg := textutil.AvgSentenceLen(stimulus)
	switch {
	case avg == 0:
		return 1
	case avg < 10:
		return 2
	case avg < 18:
		return 3
	case avg < 26:
		return 4
	default:
		return 5
	}
}

func scoreAbstractness(text string) int {
	hits := textutil.CountAny(text, abstractMarkers)
	switch {
	case hits == 0:
		return 1
	case hits <= 2:
		return 2
	case hits <= 4:
		return 3
	case hits <= 6:
		return 4
	default:
		return 5
	}
}
