// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/reasonprep/ent/practicesessionevent"
)

// PracticeSessionEvent is the model entity for the PracticeSessionEvent schema.
type PracticeSessionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Stable ID shared with the session's attempt events
	SessionID string `json:"session_id,omitempty"`
	// started or completed
	Action string `json:"action,omitempty"`
	// strict, recommended, or untimed
	Mode string `json:"mode,omitempty"`
	// Practice-set selection strategy used
	Strategy string `json:"strategy,omitempty"`
	// Questions in the session's practice set
	QuestionCount int `json:"question_count,omitempty"`
	// Correct answers at completion; zero on start
	CorrectCount int `json:"correct_count,omitempty"`
	// Cumulative answering time at completion
	TotalSeconds float64 `json:"total_seconds,omitempty"`
	// too_fast, good_pace, or too_slow; empty on start
	Pace         string `json:"pace,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeSessionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicesessionevent.FieldTotalSeconds:
			values[i] = new(sql.NullFloat64)
		case practicesessionevent.FieldID, practicesessionevent.FieldSequence, practicesessionevent.FieldQuestionCount, practicesessionevent.FieldCorrectCount:
			values[i] = new(sql.NullInt64)
		case practicesessionevent.FieldSessionID, practicesessionevent.FieldAction, practicesessionevent.FieldMode, practicesessionevent.FieldStrategy, practicesessionevent.FieldPace:
			values[i] = new(sql.NullString)
		case practicesessionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeSessionEvent fields.
func (pse *PracticeSessionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicesessionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			pse.ID = int(value.Int64)
		case practicesessionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				pse.Sequence = value.Int64
			}
		case practicesessionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				pse.Timestamp = value.Time
			}
		case practicesessionevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				pse.SessionID = value.String
			}
		case practicesessionevent.FieldAction:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field action", values[i])
			} else if value.Valid {
				pse.Action = value.String
			}
		case practicesessionevent.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				pse.Mode = value.String
			}
		case practicesessionevent.FieldStrategy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field strategy", values[i])
			} else if value.Valid {
				pse.Strategy = value.String
			}
		case practicesessionevent.FieldQuestionCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field question_count", values[i])
			} else if value.Valid {
				pse.QuestionCount = int(value.Int64)
			}
		case practicesessionevent.FieldCorrectCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field correct_count", values[i])
			} else if value.Valid {
				pse.CorrectCount = int(value.Int64)
			}
		case practicesessionevent.FieldTotalSeconds:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_seconds", values[i])
			} else if value.Valid {
				pse.TotalSeconds = value.Float64
			}
		case practicesessionevent.FieldPace:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pace", values[i])
			} else if value.Valid {
				pse.Pace = value.String
			}
		default:
			pse.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeSessionEvent.
// This includes values selected through modifiers, order, etc.
func (pse *PracticeSessionEvent) Value(name string) (ent.Value, error) {
	return pse.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeSessionEvent.
// Note that you need to call PracticeSessionEvent.Unwrap() before calling this method if this PracticeSessionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (pse *PracticeSessionEvent) Update() *PracticeSessionEventUpdateOne {
	return NewPracticeSessionEventClient(pse.config).UpdateOne(pse)
}

// Unwrap unwraps the PracticeSessionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (pse *PracticeSessionEvent) Unwrap() *PracticeSessionEvent {
	_tx, ok := pse.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeSessionEvent is not a transactional entity")
	}
	pse.config.driver = _tx.drv
	return pse
}

// String implements the fmt.Stringer.
func (pse *PracticeSessionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeSessionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", pse.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", pse.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(pse.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(pse.SessionID)
	builder.WriteString(", ")
	builder.WriteString("action=")
	builder.WriteString(pse.Action)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(pse.Mode)
	builder.WriteString(", ")
	builder.WriteString("strategy=")
	builder.WriteString(pse.Strategy)
	builder.WriteString(", ")
	builder.WriteString("question_count=")
	builder.WriteString(fmt.Sprintf("%v", pse.QuestionCount))
	builder.WriteString(", ")
	builder.WriteString("correct_count=")
	builder.WriteString(fmt.Sprintf("%v", pse.CorrectCount))
	builder.WriteString(", ")
	builder.WriteString("total_seconds=")
	builder.WriteString(fmt.Sprintf("%v", pse.TotalSeconds))
	builder.WriteString(", ")
	builder.WriteString("pace=")
	builder.WriteString(pse.Pace)
	builder.WriteByte(')')
	return builder.String()
}

// PracticeSessionEvents is a parsable slice of PracticeSessionEvent.
type PracticeSessionEvents []*PracticeSessionEvent
