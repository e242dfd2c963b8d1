// Package config holds the tunable thresholds of the analysis engine.
// Every cutoff that shapes a heuristic verdict (similarity bands, pace
// thresholds, accuracy cutoffs) lives here rather than inline in logic,
// so hosts can retune without code changes.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Tunables collects the adjustable constants used across the engine.
type Tunables struct {
	// Similarity thresholds used by the trap detector.
	StructuralSimilarity float64 `toml:"structural_similarity"` // premise/conclusion repeat cutoff
	StimulusOverlap      float64 `toml:"stimulus_overlap"`      // answer-lifted-from-stimulus cutoff
	PartialMatchLow      float64 `toml:"partial_match_low"`     // partially_correct band, lower bound
	PartialMatchHigh     float64 `toml:"partial_match_high"`    // partially_correct band, upper bound

	// Pace thresholds used by the timer summary.
	PaceFastBelow float64 `toml:"pace_fast_below"` // efficiency under this is too_fast
	PaceSlowAbove float64 `toml:"pace_slow_above"` // efficiency over this is too_slow

	// Trend thresholds used by the performance tracker.
	TrendStableDelta  float64 `toml:"trend_stable_delta"`  // sliding-window accuracy delta
	RecentStableDelta float64 `toml:"recent_stable_delta"` // two-window accuracy delta

	// Weakness cutoffs used by the weakness report.
	WeakAccuracy      float64 `toml:"weak_accuracy"` // below this a type is weak
	PriorityHighBelow float64 `toml:"priority_high_below"`
	PriorityMedBelow  float64 `toml:"priority_med_below"`
}

// Default returns the engine's stock tunables.
func Default() Tunables {
	return Tunables{
		StructuralSimilarity: 0.7,
		StimulusOverlap:      0.7,
		PartialMatchLow:      0.3,
		PartialMatchHigh:     0.7,
		PaceFastBelow:        0.8,
		PaceSlowAbove:        1.3,
		TrendStableDelta:     0.10,
		RecentStableDelta:    0.15,
		WeakAccuracy:         0.7,
		PriorityHighBelow:    0.5,
		PriorityMedBelow:     0.65,
	}
}

// fileTunables mirrors Tunables with pointer fields so a config file
// only overrides what it sets.
type fileTunables struct {
	StructuralSimilarity *float64 `toml:"structural_similarity"`
	StimulusOverlap      *float64 `toml:"stimulus_overlap"`
	PartialMatchLow      *float64 `toml:"partial_match_low"`
	PartialMatchHigh     *float64 `toml:"partial_match_high"`
	PaceFastBelow        *float64 `toml:"pace_fast_below"`
	PaceSlowAbove        *float64 `toml:"pace_slow_above"`
	TrendStableDelta     *float64 `toml:"trend_stable_delta"`
	RecentStableDelta    *float64 `toml:"recent_stable_delta"`
	WeakAccuracy         *float64 `toml:"weak_accuracy"`
	PriorityHighBelow    *float64 `toml:"priority_high_below"`
	PriorityMedBelow     *float64 `toml:"priority_med_below"`
}

type fileConfig struct {
	Tuning fileTunables `toml:"tuning"`
}

// Load returns the defaults overlaid with any values set in the TOML
// file at path. A missing file is not an error; the defaults apply.
func Load(path string) (Tunables, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config: %w", err)
	}
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	overlay(&cfg, fc.Tuning)
	return cfg, nil
}

func overlay(cfg *Tunables, f fileTunables) {
	setF := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	setF(&cfg.StructuralSimilarity, f.StructuralSimilarity)
	setF(&cfg.StimulusOverlap, f.StimulusOverlap)
	setF(&cfg.PartialMatchLow, f.PartialMatchLow)
	setF(&cfg.PartialMatchHigh, f.PartialMatchHigh)
	setF(&cfg.PaceFastBelow, f.PaceFastBelow)
	setF(&cfg.PaceSlowAbove, f.PaceSlowAbove)
	setF(&cfg.TrendStableDelta, f.TrendStableDelta)
	setF(&cfg.RecentStableDelta, f.RecentStableDelta)
	setF(&cfg.WeakAccuracy, f.WeakAccuracy)
	setF(&cfg.PriorityHighBelow, f.PriorityHighBelow)
	setF(&cfg.PriorityMedBelow, f.PriorityMedBelow)
}
