// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeFloat64},
		{Name: "correct", Type: field.TypeBool},
		{Name: "time_spent", Type: field.TypeFloat64},
		{Name: "recommended_seconds", Type: field.TypeInt},
		{Name: "chosen_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "patterns", Type: field.TypeJSON, Nullable: true},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[3]},
			},
			{
				Name:    "attemptevent_question_type",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[5]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[7]},
			},
		},
	}
	// PracticeSessionEventsColumns holds the columns for the "practice_session_events" table.
	PracticeSessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Nullable: true},
		{Name: "strategy", Type: field.TypeString, Nullable: true},
		{Name: "question_count", Type: field.TypeInt},
		{Name: "correct_count", Type: field.TypeInt},
		{Name: "total_seconds", Type: field.TypeFloat64},
		{Name: "pace", Type: field.TypeString, Nullable: true},
	}
	// PracticeSessionEventsTable holds the schema information for the "practice_session_events" table.
	PracticeSessionEventsTable = &schema.Table{
		Name:       "practice_session_events",
		Columns:    PracticeSessionEventsColumns,
		PrimaryKey: []*schema.Column{PracticeSessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practicesessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionEventsColumns[1]},
			},
			{
				Name:    "practicesessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionEventsColumns[2]},
			},
			{
				Name:    "practicesessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionEventsColumns[3]},
			},
			{
				Name:    "practicesessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{PracticeSessionEventsColumns[4]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		PracticeSessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
