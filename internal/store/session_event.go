package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.PracticeSessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		SetTotalSeconds(data.TotalSeconds)

	if data.Mode != "" {
		builder = builder.SetMode(data.Mode)
	}
	if data.Strategy != "" {
		builder = builder.SetStrategy(data.Strategy)
	}
	if data.Pace != "" {
		builder = builder.SetPace(data.Pace)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save practice session event: %w", err)
	}
	return nil
}
