package store

import (
	"context"
	"time"

	"github.com/abhisek/reasonprep/internal/tracker"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the learner's performance state at a point in
// time.
type SnapshotData struct {
	Version     int               `json:"version"`
	Performance *tracker.Snapshot `json:"performance,omitempty"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// AttemptEventData captures one answered question for the event log.
type AttemptEventData struct {
	SessionID          string
	QuestionID         string
	QuestionType       string
	Difficulty         float64
	Correct            bool
	TimeSpent          float64
	RecommendedSeconds int
	ChosenAnswer       string
	CorrectAnswer      string
	Patterns           []string
}

// SessionEventData captures a practice-session lifecycle event.
type SessionEventData struct {
	SessionID     string
	Action        string // "started" or "completed"
	Mode          string
	Strategy      string
	QuestionCount int
	CorrectCount  int
	TotalSeconds  float64
	Pace          string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttempt records one answered question.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendSessionEvent records a session start or completion.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentAttempts returns the most recent attempts matching opts,
	// oldest first. Used to rehydrate a tracker.
	RecentAttempts(ctx context.Context, opts QueryOpts) ([]AttemptEventData, error)

	// RecentQuestionIDs returns the distinct question IDs of the last
	// n attempts, for recent-question exclusion during set generation.
	RecentQuestionIDs(ctx context.Context, n int) ([]string, error)

	// TypeAccuracy returns the all-time accuracy for one question type
	// and the number of attempts behind it.
	TypeAccuracy(ctx context.Context, questionType string) (float64, int, error)
}
