// Package tracker aggregates graded practice attempts into per-type
// performance, trend analysis, dashboards, and weakness reports. The
// entry log is append-only; every aggregate is a projection recomputed
// on demand and cached per question type until a new entry of that
// type invalidates it. One Tracker belongs to one learner session.
package tracker

import (
	"sort"
	"time"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/traps"
)

// Entry is one answered-question attempt, the sole unit the tracker
// ingests. Durable storage is the hosting layer's job.
type Entry struct {
	QuestionID      string          `json:"questionId"`
	Type            qtype.Type      `json:"questionType"`
	Difficulty      float64         `json:"difficulty"`
	TimeSpent       float64         `json:"timeSpent"`
	RecommendedTime int             `json:"recommendedTime"`
	Correct         bool            `json:"isCorrect"`
	ChosenAnswer    string          `json:"chosenAnswer"`
	CorrectAnswer   string          `json:"correctAnswer"`
	Patterns        []traps.Pattern `json:"detectedPatterns,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	SessionID       string          `json:"sessionId"`
}

// TypePerformance is the derived per-type aggregate.
type TypePerformance struct {
	Type           qtype.Type      `json:"questionType"`
	Attempts       int             `json:"attempts"`
	CorrectCount   int             `json:"correctCount"`
	Accuracy       float64         `json:"accuracy"`
	AverageTime    float64         `json:"averageTime"`
	RecentTrend    Direction       `json:"recentTrend"`
	CommonPatterns []traps.Pattern `json:"commonPatterns,omitempty"`
	LastPracticed  time.Time       `json:"lastPracticed"`
}

// Tracker holds the session entry log and the per-type cache.
type Tracker struct {
	tun     config.Tunables
	entries []Entry
	cache   map[qtype.Type]*TypePerformance
}

// New creates an empty tracker with the given tunables.
func New(tun config.Tunables) *Tracker {
	return &Tracker{
		tun:   tun,
		cache: make(map[qtype.Type]*TypePerformance),
	}
}

// Add appends an attempt and eagerly invalidates that type's cache.
func (tr *Tracker) Add(e Entry) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	tr.entries = append(tr.entries, e)
	delete(tr.cache, e.Type)
}

// Entries returns the full append-only log, oldest first.
func (tr *Tracker) Entries() []Entry { return tr.entries }

// Reset discards the entry log and cache deterministically.
func (tr *Tracker) Reset() {
	tr.entries = nil
	tr.cache = make(map[qtype.Type]*TypePerformance)
}

// entriesOf returns the attempts of one type, oldest first.
func (tr *Tracker) entriesOf(t qtype.Type) []Entry {
	var out []Entry
	for _, e := range tr.entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// recentWindow is the sample size of the lightweight two-window trend
// kept in the per-type cache.
const recentWindow = 5

// Performance returns the aggregate for one type, computing and
// caching it if needed. A type with no attempts yields a zero-valued
// aggregate with a stable trend.
func (tr *Tracker) Performance(t qtype.Type) *TypePerformance {
	if p, ok := tr.cache[t]; ok {
		return p
	}

	p := &TypePerformance{Type: t, RecentTrend: Stable}
	entries := tr.entriesOf(t)
	if len(entries) > 0 {
		totalTime := 0.0
		for _, e := range entries {
			p.Attempts++
			if e.Correct {
				p.CorrectCount++
			}
			totalTime += e.TimeSpent
		}
		p.Accuracy = float64(p.CorrectCount) / float64(p.Attempts)
		p.AverageTime = totalTime / float64(p.Attempts)
		p.RecentTrend = tr.recentTrend(entries)
		p.CommonPatterns = commonPatterns(entries, 3)
		p.LastPracticed = entries[len(entries)-1].Timestamp
	}

	tr.cache[t] = p
	return p
}

// recentTrend compares the last window of attempts against the window
// before it. It is coarser than AnalyzeTrend and only feeds the cached
// per-type aggregate.
func (tr *Tracker) recentTrend(entries []Entry) Direction {
	if len(entries) < 2*recentWindow {
		return Stable
	}
	last := accuracyOf(entries[len(entries)-recentWindow:])
	prev := accuracyOf(entries[len(entries)-2*recentWindow : len(entries)-recentWindow])
	delta := last - prev
	switch {
	case delta >= tr.tun.RecentStableDelta:
		return Improving
	case delta <= -tr.tun.RecentStableDelta:
		return Declining
	default:
		return Stable
	}
}

func accuracyOf(entries []Entry) float64 {
	if len(entries) == 0 {
		return 0
	}
	correct := 0
	for _, e := range entries {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(entries))
}

// commonPatterns returns the up-to-n most frequent trap patterns seen
// in the wrong answers of the given entries, most frequent first.
func commonPatterns(entries []Entry, n int) []traps.Pattern {
	counts := make(map[traps.Pattern]int)
	for _, e := range entries {
		if e.Correct {
			continue
		}
		for _, p := range e.Patterns {
			counts[p]++
		}
	}
	if len(counts) == 0 {
		return nil
	}
	patterns := make([]traps.Pattern, 0, len(counts))
	for p := range counts {
		patterns = append(patterns, p)
	}
	sort.Slice(patterns, func(i, j int) bool {
		if counts[patterns[i]] != counts[patterns[j]] {
			return counts[patterns[i]] > counts[patterns[j]]
		}
		return patterns[i] < patterns[j]
	})
	if len(patterns) > n {
		patterns = patterns[:n]
	}
	return patterns
}

// attemptedTypes returns the distinct types in the log, in the stable
// catalog order from qtype.All.
func (tr *Tracker) attemptedTypes() []qtype.Type {
	seen := make(map[qtype.Type]bool)
	for _, e := range tr.entries {
		seen[e.Type] = true
	}
	var out []qtype.Type
	for _, t := range qtype.All() {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}
