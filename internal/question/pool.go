package question

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/reasonprep/internal/qtype"
)

// LoadPool reads a question pool from a JSON file, validates it against
// the pool schema, and normalizes each record: difficulty factors are
// clamped into range and a zero time recommendation is filled from the
// type's baseline. Records with an unknown question type or no correct
// choice are skipped rather than failing the whole pool.
func LoadPool(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool: %w", err)
	}
	return ParsePool(raw)
}

// ParsePool validates and normalizes raw pool JSON.
func ParsePool(raw []byte) ([]Question, error) {
	if err := validatePool(raw); err != nil {
		return nil, err
	}

	var records []Question
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode pool: %w", err)
	}

	pool := make([]Question, 0, len(records))
	for _, q := range records {
		if !qtype.Valid(q.Type) {
			continue
		}
		if q.CorrectChoice() == nil {
			continue
		}
		pool = append(pool, Normalize(q))
	}
	return pool, nil
}

// Normalize returns a copy of q with difficulty factors clamped and a
// missing time recommendation defaulted from the type baseline.
func Normalize(q Question) Question {
	q.Difficulty = q.Difficulty.Clamp()
	if q.TimeRecommendation <= 0 {
		q.TimeRecommendation = qtype.BaseSeconds(q.Type)
	}
	return q
}
