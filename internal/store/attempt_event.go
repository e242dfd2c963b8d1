package store

import (
	"context"
	"fmt"

	"github.com/abhisek/reasonprep/ent"
	"github.com/abhisek/reasonprep/ent/attemptevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetQuestionID(data.QuestionID).
		SetQuestionType(data.QuestionType).
		SetDifficulty(data.Difficulty).
		SetCorrect(data.Correct).
		SetTimeSpent(data.TimeSpent).
		SetRecommendedSeconds(data.RecommendedSeconds).
		SetChosenAnswer(data.ChosenAnswer).
		SetCorrectAnswer(data.CorrectAnswer)

	if len(data.Patterns) > 0 {
		builder = builder.SetPatterns(data.Patterns)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptEventData, error) {
	q := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence))

	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}
	if opts.After > 0 {
		q = q.Where(attemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(attemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(attemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(attemptevent.TimestampLTE(opts.To))
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	// Reverse to oldest-first so trackers replay in arrival order.
	out := make([]AttemptEventData, 0, len(events))
	for i := len(events) - 1; i >= 0; i-- {
		e := events[i]
		out = append(out, AttemptEventData{
			SessionID:          e.SessionID,
			QuestionID:         e.QuestionID,
			QuestionType:       e.QuestionType,
			Difficulty:         e.Difficulty,
			Correct:            e.Correct,
			TimeSpent:          e.TimeSpent,
			RecommendedSeconds: e.RecommendedSeconds,
			ChosenAnswer:       e.ChosenAnswer,
			CorrectAnswer:      e.CorrectAnswer,
			Patterns:           e.Patterns,
		})
	}
	return out, nil
}

func (r *eventRepo) RecentQuestionIDs(ctx context.Context, n int) ([]string, error) {
	events, err := r.client.AttemptEvent.Query().
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent question ids: %w", err)
	}

	seen := make(map[string]bool, len(events))
	var ids []string
	for _, e := range events {
		if !seen[e.QuestionID] {
			seen[e.QuestionID] = true
			ids = append(ids, e.QuestionID)
		}
	}
	return ids, nil
}

func (r *eventRepo) TypeAccuracy(ctx context.Context, questionType string) (float64, int, error) {
	events, err := r.client.AttemptEvent.Query().
		Where(attemptevent.QuestionType(questionType)).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("query type accuracy: %w", err)
	}
	if len(events) == 0 {
		return 0, 0, nil
	}

	correct := 0
	for _, e := range events {
		if e.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(events)), len(events), nil
}
