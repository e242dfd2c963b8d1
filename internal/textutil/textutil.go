// Package textutil provides the shared surface-text heuristics used by
// the argument analyzer and the trap detector: tokenization, set
// similarity, sentence splitting, and tense detection. Everything here
// operates on plain lowercase word tokens; no linguistic model is
// involved.
package textutil

import (
	"strings"
	"unicode"
)

// MinTokenLen is the minimum token length considered for similarity.
// Shorter tokens (articles, pronouns, "is"/"of") dominate overlap
// without carrying content.
const MinTokenLen = 3

// Tokenize splits text into lowercase word tokens of at least
// MinTokenLen characters. Punctuation is stripped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= MinTokenLen {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// TokenSet returns the distinct tokens of text.
func TokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range Tokenize(text) {
		set[t] = true
	}
	return set
}

// Jaccard returns the Jaccard similarity (intersection over union) of
// the token sets of a and b. Two empty texts are 0, not 1: an empty
// answer choice should never look "identical" to anything.
func Jaccard(a, b string) float64 {
	setA := TokenSet(a)
	setB := TokenSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for t := range setA {
		if setB[t] {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	return float64(inter) / float64(union)
}

// Overlap returns the fraction of a's tokens that also appear in b.
// Asymmetric: Overlap(answer, stimulus) asks how much of the answer is
// lifted from the stimulus.
func Overlap(a, b string) float64 {
	setA := TokenSet(a)
	if len(setA) == 0 {
		return 0
	}
	setB := TokenSet(b)
	inter := 0
	for t := range setA {
		if setB[t] {
			inter++
		}
	}
	return float64(inter) / float64(len(setA))
}

// ContainsAny reports whether the lowercased text contains any of the
// given phrases, and returns the first phrase found.
func ContainsAny(text string, phrases []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return p, true
		}
	}
	return "", false
}

// CountAny returns how many of the given phrases occur in the
// lowercased text, counting each phrase at most once.
func CountAny(text string, phrases []string) int {
	lower := strings.ToLower(text)
	n := 0
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			n++
		}
	}
	return n
}
