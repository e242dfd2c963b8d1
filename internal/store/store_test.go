package store

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/reasonprep/internal/config"
	"github.com/abhisek/reasonprep/internal/qtype"
	"github.com/abhisek/reasonprep/internal/tracker"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot.
	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	// Count remaining snapshots.
	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// Save only 2 snapshots.
	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAttemptEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", QuestionID: "q1", QuestionType: "strengthen", Difficulty: 3, Correct: true, TimeSpent: 72, RecommendedSeconds: 80},
		{SessionID: "s1", QuestionID: "q2", QuestionType: "weaken", Difficulty: 2.5, Correct: false, TimeSpent: 95, RecommendedSeconds: 80, Patterns: []string{"opposite_answer"}},
		{SessionID: "s1", QuestionID: "q3", QuestionType: "strengthen", Difficulty: 4, Correct: false, TimeSpent: 110, RecommendedSeconds: 90},
	}
	for i, a := range attempts {
		if err := repo.AppendAttempt(ctx, a); err != nil {
			t.Fatalf("append attempt %d: %v", i, err)
		}
	}

	got, err := repo.RecentAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent attempts: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("attempts = %d, want 3", len(got))
	}
	if got[0].QuestionID != "q1" || got[2].QuestionID != "q3" {
		t.Errorf("attempts not oldest-first: %v, %v", got[0].QuestionID, got[2].QuestionID)
	}
	if len(got[1].Patterns) != 1 || got[1].Patterns[0] != "opposite_answer" {
		t.Errorf("patterns = %v, want [opposite_answer]", got[1].Patterns)
	}

	acc, n, err := repo.TypeAccuracy(ctx, "strengthen")
	if err != nil {
		t.Fatalf("type accuracy: %v", err)
	}
	if n != 2 || acc != 0.5 {
		t.Errorf("strengthen accuracy = %v over %d, want 0.5 over 2", acc, n)
	}

	ids, err := repo.RecentQuestionIDs(ctx, 2)
	if err != nil {
		t.Fatalf("recent question ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != "q3" || ids[1] != "q2" {
		t.Errorf("recent ids = %v, want [q3 q2]", ids)
	}
}

func TestRecentAttemptsQueryOpts(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	for i, id := range []string{"q1", "q2", "q3", "q4"} {
		data := AttemptEventData{SessionID: "s1", QuestionID: id, QuestionType: "weaken", Correct: i%2 == 0}
		if err := repo.AppendAttempt(ctx, data); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	got, err := repo.RecentAttempts(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("limit query: %v", err)
	}
	if len(got) != 2 || got[0].QuestionID != "q3" || got[1].QuestionID != "q4" {
		t.Errorf("limited attempts = %v, want [q3 q4] oldest-first", questionIDs(got))
	}

	got, err = repo.RecentAttempts(ctx, QueryOpts{After: 2})
	if err != nil {
		t.Fatalf("after query: %v", err)
	}
	if len(got) != 2 || got[0].QuestionID != "q3" {
		t.Errorf("after=2 attempts = %v, want [q3 q4]", questionIDs(got))
	}

	got, err = repo.RecentAttempts(ctx, QueryOpts{Before: 3})
	if err != nil {
		t.Fatalf("before query: %v", err)
	}
	if len(got) != 2 || got[1].QuestionID != "q2" {
		t.Errorf("before=3 attempts = %v, want [q1 q2]", questionIDs(got))
	}

	got, err = repo.RecentAttempts(ctx, QueryOpts{From: time.Now().Add(time.Hour)})
	if err != nil {
		t.Fatalf("from query: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("future-from attempts = %v, want none", questionIDs(got))
	}
}

func questionIDs(attempts []AttemptEventData) []string {
	ids := make([]string, len(attempts))
	for i, a := range attempts {
		ids[i] = a.QuestionID
	}
	return ids
}

func TestSessionEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	ctx := context.Background()

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "s1",
		Action:        "started",
		Mode:          "recommended",
		Strategy:      "balanced",
		QuestionCount: 10,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	err = repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:     "s1",
		Action:        "completed",
		Mode:          "recommended",
		QuestionCount: 10,
		CorrectCount:  7,
		TotalSeconds:  812,
		Pace:          "good_pace",
	})
	if err != nil {
		t.Fatalf("append complete: %v", err)
	}

	count, err := s.Client().PracticeSessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("session events = %d, want 2", count)
	}
}

func TestSnapshotCarriesTrackerState(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	tr := tracker.New(config.Default())
	tr.Add(tracker.Entry{QuestionID: "q1", Type: qtype.Strengthen, Correct: true, TimeSpent: 70, RecommendedTime: 80})
	tr.Add(tracker.Entry{QuestionID: "q2", Type: qtype.Weaken, Correct: false, TimeSpent: 90, RecommendedTime: 80})

	err := repo.Save(ctx, &Snapshot{
		Sequence:  2,
		Timestamp: time.Now().UTC(),
		Data:      SnapshotData{Version: 1, Performance: tr.Export()},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data.Performance == nil {
		t.Fatal("expected performance state in snapshot")
	}
	if len(snap.Data.Performance.Entries) != 2 {
		t.Errorf("entries = %d, want 2", len(snap.Data.Performance.Entries))
	}

	restored := tracker.New(config.Default())
	restored.Import(snap.Data.Performance)
	if got := restored.Performance(qtype.Strengthen).Attempts; got != 1 {
		t.Errorf("restored strengthen attempts = %d, want 1", got)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	// Check that the snapshots table exists.
	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}
