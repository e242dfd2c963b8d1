package timing

// Pace is the session-level pacing verdict.
type Pace string

const (
	PaceTooFast Pace = "too_fast"
	PaceTooSlow Pace = "too_slow"
	PaceGood    Pace = "good_pace"
)

// Summary reports a completed session's timing.
type Summary struct {
	SessionID     string
	QuestionCount int
	TotalSeconds  float64
	AvgEfficiency float64 // Mean of per-question time/recommended ratios
	Pace          Pace
	Advice        string
}

func (s *Service) summarize() *Summary {
	sum := &Summary{
		SessionID:     s.timer.SessionID,
		QuestionCount: len(s.results),
		TotalSeconds:  s.timer.ElapsedSeconds,
		Pace:          PaceGood,
	}
	if len(s.results) == 0 {
		sum.Advice = "No questions completed this session."
		return sum
	}

	total := 0.0
	for _, r := range s.results {
		total += r.Efficiency
	}
	sum.AvgEfficiency = total / float64(len(s.results))

	switch {
	case sum.AvgEfficiency < s.tun.PaceFastBelow:
		sum.Pace = PaceTooFast
		sum.Advice = "You are finishing well under the recommended time. Slow down and re-read each answer choice before committing; rushed picks are where trap answers land."
	case sum.AvgEfficiency > s.tun.PaceSlowAbove:
		sum.Pace = PaceTooSlow
		sum.Advice = "You are running over the recommended time. Practice identifying the conclusion first and eliminating two choices quickly before weighing the rest."
	default:
		sum.Pace = PaceGood
		sum.Advice = "Your pacing is on target. Keep the same rhythm and spend the spare seconds double-checking extreme language in answer choices."
	}
	return sum
}
