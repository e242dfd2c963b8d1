package textutil

import (
	"math"
	"testing"
)

func TestTokenize_DropsShortTokens(t *testing.T) {
	tokens := Tokenize("The cat sat on a mat, obviously.")
	want := []string{"the", "cat", "sat", "mat", "obviously"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens %v, want %d", len(tokens), tokens, len(want))
	}
	for i, w := range want {
		if tokens[i] != w {
			t.Errorf("token %d: got %q, want %q", i, tokens[i], w)
		}
	}
}

func TestJaccard_Identical(t *testing.T) {
	got := Jaccard("sales increased sharply", "sales increased sharply")
	if got != 1.0 {
		t.Errorf("got %f, want 1.0", got)
	}
}

func TestJaccard_Disjoint(t *testing.T) {
	got := Jaccard("sales increased", "weather improved")
	if got != 0 {
		t.Errorf("got %f, want 0", got)
	}
}

func TestJaccard_EmptyIsZero(t *testing.T) {
	if got := Jaccard("", "anything here"); got != 0 {
		t.Errorf("got %f for empty input, want 0", got)
	}
	if got := Jaccard("", ""); got != 0 {
		t.Errorf("got %f for both empty, want 0", got)
	}
}

func TestJaccard_PartialOverlap(t *testing.T) {
	// Tokens: {marketing, campaign, succeeded} vs {marketing, campaign, failed}
	// Intersection 2, union 4.
	got := Jaccard("the marketing campaign succeeded", "the marketing campaign failed")
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("got %f, want 0.5", got)
	}
}

func TestOverlap_Asymmetric(t *testing.T) {
	a := "sales increased"
	b := "sales increased because the marketing campaign succeeded"
	if got := Overlap(a, b); got != 1.0 {
		t.Errorf("Overlap(a,b) = %f, want 1.0", got)
	}
	if got := Overlap(b, a); got >= 1.0 {
		t.Errorf("Overlap(b,a) = %f, want < 1.0", got)
	}
}

func TestSplitSentences_PreservesOffsets(t *testing.T) {
	text := "Sales increased. Therefore, the marketing campaign succeeded."
	sentences := SplitSentences(text)
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sentences))
	}
	if sentences[0].Text != "Sales increased." {
		t.Errorf("sentence 0: got %q", sentences[0].Text)
	}
	if sentences[1].Text != "Therefore, the marketing campaign succeeded." {
		t.Errorf("sentence 1: got %q", sentences[1].Text)
	}
	for i, s := range sentences {
		if text[s.Start:s.End] != s.Text {
			t.Errorf("sentence %d: span [%d,%d) = %q, want %q",
				i, s.Start, s.End, text[s.Start:s.End], s.Text)
		}
	}
}

func TestSplitSentences_UnterminatedRemainder(t *testing.T) {
	sentences := SplitSentences("First point. And a trailing fragment")
	if len(sentences) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sentences))
	}
	if sentences[1].Text != "And a trailing fragment" {
		t.Errorf("got %q", sentences[1].Text)
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences(""); len(got) != 0 {
		t.Errorf("got %d sentences for empty input, want 0", len(got))
	}
	if got := SplitSentences("   "); len(got) != 0 {
		t.Errorf("got %d sentences for blank input, want 0", len(got))
	}
}

func TestDetectTense(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Tense
	}{
		{"past auxiliary", "The company was profitable last year.", TensePast},
		{"future auxiliary", "The company will expand next year.", TenseFuture},
		{"present default", "The company sells hardware.", TensePresent},
		{"empty", "", TenseUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectTense(tt.text); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
