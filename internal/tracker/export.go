package tracker

import "time"

// Snapshot is the serializable state handed to the hosting layer for
// durable storage: the raw entry log plus the computed dashboard and
// weakness report at export time.
type Snapshot struct {
	Entries    []Entry    `json:"entries"`
	Dashboard  *Dashboard `json:"dashboard"`
	Weaknesses []Weakness `json:"weaknesses"`
	ExportedAt time.Time  `json:"exportedAt"`
}

// Export builds a snapshot of the tracker's current state. The entry
// slice is copied so later Add calls cannot mutate the snapshot.
func (tr *Tracker) Export() *Snapshot {
	entries := make([]Entry, len(tr.entries))
	copy(entries, tr.entries)
	return &Snapshot{
		Entries:    entries,
		Dashboard:  tr.Dashboard(),
		Weaknesses: tr.Weaknesses(),
		ExportedAt: time.Now(),
	}
}

// Import replays a previously exported entry log into the tracker,
// after the current state is discarded. Aggregates are rebuilt lazily.
func (tr *Tracker) Import(snap *Snapshot) {
	tr.Reset()
	for _, e := range snap.Entries {
		tr.Add(e)
	}
}
