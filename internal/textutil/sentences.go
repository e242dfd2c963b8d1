package textutil

import "strings"

// Sentence is a span of source text ending at terminal punctuation.
type Sentence struct {
	Text  string // Trimmed sentence text, terminal punctuation included
	Start int    // Byte offset of the first character in the source
	End   int    // Byte offset one past the last character
}

// SplitSentences splits prose on terminal punctuation (. ! ?),
// preserving byte offsets into the source. A trailing fragment with no
// terminator is kept as a final sentence. Whitespace-only fragments are
// dropped.
func SplitSentences(text string) []Sentence {
	var out []Sentence
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			appendSentence(&out, text, start, i+1)
			start = i + 1
		}
	}
	if start < len(text) {
		appendSentence(&out, text, start, len(text))
	}
	return out
}

func appendSentence(out *[]Sentence, text string, start, end int) {
	raw := text[start:end]
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return
	}
	lead := strings.Index(raw, trimmed)
	*out = append(*out, Sentence{
		Text:  trimmed,
		Start: start + lead,
		End:   start + lead + len(trimmed),
	})
}

// AvgWordLen returns the mean length of the word tokens in text,
// or 0 for empty input.
func AvgWordLen(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len(strings.Trim(w, ".,;:!?\"'()"))
	}
	return float64(total) / float64(len(words))
}

// AvgSentenceLen returns the mean word count per sentence, or 0 for
// empty input.
func AvgSentenceLen(text string) float64 {
	sentences := SplitSentences(text)
	if len(sentences) == 0 {
		return 0
	}
	total := 0
	for _, s := range sentences {
		total += len(strings.Fields(s.Text))
	}
	return float64(total) / float64(len(sentences))
}
