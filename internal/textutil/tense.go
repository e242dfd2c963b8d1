package textutil

import "strings"

// Tense is a coarse surface-level tense signal.
type Tense int

const (
	TenseUnknown Tense = iota
	TensePast
	TensePresent
	TenseFuture
)

var pastMarkers = []string{
	" was ", " were ", " had ", " did ", " used to ",
	"last year", "last month", "last week", "previously", "formerly",
	" ago ", " ago.", " ago,",
}

var futureMarkers = []string{
	" will ", " going to ", " shall ", " would soon ",
	"next year", "next month", "next week", "in the future", "is expected to",
}

// DetectTense returns the dominant coarse tense of the text, based on
// auxiliary verbs, time adverbs, and the common -ed suffix. Present is
// the default when neither past nor future markers dominate.
func DetectTense(text string) Tense {
	if strings.TrimSpace(text) == "" {
		return TenseUnknown
	}
	lower := " " + strings.ToLower(text) + " "

	past := CountAny(lower, pastMarkers)
	future := CountAny(lower, futureMarkers)

	// The -ed suffix is a weak signal; only count it once.
	for _, w := range strings.Fields(lower) {
		w = strings.Trim(w, ".,;:!?\"'()")
		if len(w) > 4 && strings.HasSuffix(w, "ed") {
			past++
			break
		}
	}

	switch {
	case future > past:
		return TenseFuture
	case past > future && past > 0:
		return TensePast
	default:
		return TensePresent
	}
}
