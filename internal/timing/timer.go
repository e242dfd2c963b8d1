// Package timing owns the practice-session timer state machine and the
// per-question time-recommendation math. One Service instance belongs
// to one practice session; instances must not be shared across
// concurrent sessions. All timing here is advisory: a hard limit is a
// value the hosting UI enforces, not something this package polices.
package timing

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/question"
)

// Mode selects how strictly a session is timed.
type Mode string

const (
	ModeStrict      Mode = "strict"
	ModeRecommended Mode = "recommended"
	ModeUntimed     Mode = "untimed"
)

// Warning thresholds by mode: seconds of remaining recommended time at
// which the UI should warn.
const (
	WarnStrict      = 10
	WarnRecommended = 15
	WarnUntimed     = 30
)

// Hard-limit multipliers over the summed recommended times.
const (
	hardLimitStrict      = 1.2
	hardLimitRecommended = 1.5
)

// State is the timer's lifecycle phase.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
)

// Sentinel errors for invalid state transitions.
var (
	ErrNoSession  = errors.New("timing: no active session")
	ErrNotRunning = errors.New("timing: timer is not running")
	ErrNotPaused  = errors.New("timing: timer is not paused")
)

// TimerState is the session-scoped mutable timer record.
type TimerState struct {
	SessionID        string
	Mode             Mode
	SessionStart     time.Time
	QuestionStart    time.Time
	ElapsedSeconds   float64 // Cumulative completed-question seconds
	Running          bool
	Paused           bool
	WarningThreshold int // Seconds
	HardLimitSeconds int // 0 = no hard limit

	pausedAt   time.Time
	pauseAccum time.Duration // Paused time within the current question
	currentQ   *question.Question
	currentRec int
}

// QuestionResult records one completed question's timing.
type QuestionResult struct {
	QuestionID  string
	Type        qtype.Type
	TimeSpent   float64 // Seconds, never negative
	Recommended int     // Seconds, never zero (floor is 30)
	Efficiency  float64 // TimeSpent / Recommended
}

// Service is the timed practice service for one session.
type Service struct {
	tun   config.Tunables
	state State
	timer *TimerState

	results []QuestionResult
	// history holds recent per-type time-spent samples, newest last,
	// capped at historyCap, used to personalize recommendations.
	history map[qtype.Type][]float64

	// Now is the clock; tests substitute a fake. Defaults to time.Now.
	Now func() time.Time
}

// historyCap bounds the rolling per-type sample window.
const historyCap = 10

// NewService creates a timing service with the given tunables.
func NewService(tun config.Tunables) *Service {
	return &Service{
		tun:     tun,
		state:   StateIdle,
		history: make(map[qtype.Type][]float64),
		Now:     time.Now,
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State { return s.state }

// Timer returns the active timer state, or nil outside a session.
func (s *Service) Timer() *TimerState { return s.timer }

// Results returns the completed-question records so far.
func (s *Service) Results() []QuestionResult { return s.results }

// StartSession initializes a fresh timer for the given questions and
// mode. The hard limit is derived from the summed per-question
// recommended times; untimed mode has none.
func (s *Service) StartSession(mode Mode, questions []question.Question) *TimerState {
	now := s.Now()
	t := &TimerState{
		SessionID:    uuid.NewString(),
		Mode:         mode,
		SessionStart: now,
		Running:      true,
	}

	switch mode {
	case ModeStrict:
		t.WarningThreshold = WarnStrict
	case ModeUntimed:
		t.WarningThreshold = WarnUntimed
	default:
		t.WarningThreshold = WarnRecommended
	}

	if mode != ModeUntimed {
		total := 0
		for i := range questions {
			total += s.RecommendTime(&questions[i])
		}
		mult := hardLimitRecommended
		if mode == ModeStrict {
			mult = hardLimitStrict
		}
		t.HardLimitSeconds = int(math.Round(float64(total) * mult))
	}

	s.timer = t
	s.state = StateRunning
	s.results = nil
	return t
}

// StartQuestion resets the per-question clock for q.
func (s *Service) StartQuestion(q *question.Question) error {
	if s.timer == nil {
		return ErrNoSession
	}
	if !s.timer.Running {
		return ErrNotRunning
	}
	s.timer.QuestionStart = s.Now()
	s.timer.pauseAccum = 0
	s.timer.currentQ = q
	s.timer.currentRec = s.RecommendTime(q)
	return nil
}

// Pause suspends the timer without losing elapsed time.
func (s *Service) Pause() error {
	if s.timer == nil {
		return ErrNoSession
	}
	if !s.timer.Running || s.timer.Paused {
		return ErrNotRunning
	}
	s.timer.Paused = true
	s.timer.Running = false
	s.timer.pausedAt = s.Now()
	s.state = StatePaused
	return nil
}

// Resume continues a paused timer.
func (s *Service) Resume() error {
	if s.timer == nil {
		return ErrNoSession
	}
	if !s.timer.Paused {
		return ErrNotPaused
	}
	s.timer.pauseAccum += s.Now().Sub(s.timer.pausedAt)
	s.timer.Paused = false
	s.timer.Running = true
	s.state = StateRunning
	return nil
}

// CompleteQuestion stamps the elapsed seconds for the current
// question, appends a tracking record, and feeds the rolling per-type
// history. TimeSpent is clamped to zero and Recommended is never zero,
// so Efficiency is always defined.
func (s *Service) CompleteQuestion() (QuestionResult, error) {
	if s.timer == nil {
		return QuestionResult{}, ErrNoSession
	}
	t := s.timer
	if !t.Running {
		return QuestionResult{}, ErrNotRunning
	}
	if t.currentQ == nil {
		return QuestionResult{}, ErrNotRunning
	}

	spent := s.Now().Sub(t.QuestionStart) - t.pauseAccum
	seconds := spent.Seconds()
	if seconds < 0 {
		seconds = 0
	}

	res := QuestionResult{
		QuestionID:  t.currentQ.ID,
		Type:        t.currentQ.Type,
		TimeSpent:   seconds,
		Recommended: t.currentRec,
		Efficiency:  seconds / float64(t.currentRec),
	}
	s.results = append(s.results, res)
	t.ElapsedSeconds += seconds

	h := append(s.history[res.Type], seconds)
	if len(h) > historyCap {
		h = h[len(h)-historyCap:]
	}
	s.history[res.Type] = h

	t.currentQ = nil
	return res, nil
}

// EndSession marks the session completed and returns its summary.
func (s *Service) EndSession() *Summary {
	if s.timer == nil {
		return &Summary{Pace: PaceGood}
	}
	s.state = StateCompleted
	s.timer.Running = false
	return s.summarize()
}

// Reset discards all session and history state deterministically.
func (s *Service) Reset() {
	s.state = StateIdle
	s.timer = nil
	s.results = nil
	s.history = make(map[qtype.Type][]float64)
}
