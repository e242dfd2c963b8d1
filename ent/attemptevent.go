// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/reasonprep/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to PracticeSessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Question attempted
	QuestionID string `json:"question_id,omitempty"`
	// One of the fifteen logical-reasoning types
	QuestionType string `json:"question_type,omitempty"`
	// Overall difficulty on the 1-5 scale
	Difficulty float64 `json:"difficulty,omitempty"`
	// Whether the chosen answer was correct
	Correct bool `json:"correct,omitempty"`
	// Seconds spent on the question
	TimeSpent float64 `json:"time_spent,omitempty"`
	// Recommended solve time at attempt time
	RecommendedSeconds int `json:"recommended_seconds,omitempty"`
	// Text of the chosen answer
	ChosenAnswer string `json:"chosen_answer,omitempty"`
	// Text of the correct answer
	CorrectAnswer string `json:"correct_answer,omitempty"`
	// Trap patterns detected in the chosen wrong answer
	Patterns     []string `json:"patterns,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldPatterns:
			values[i] = new([]byte)
		case attemptevent.FieldCorrect:
			values[i] = new(sql.NullBool)
		case attemptevent.FieldDifficulty, attemptevent.FieldTimeSpent:
			values[i] = new(sql.NullFloat64)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldRecommendedSeconds:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldSessionID, attemptevent.FieldQuestionID, attemptevent.FieldQuestionType, attemptevent.FieldChosenAnswer, attemptevent.FieldCorrectAnswer:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (ae *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ae.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ae.Timestamp = value.Time
			}
		case attemptevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ae.SessionID = value.String
			}
		case attemptevent.FieldQuestionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_id", values[i])
			} else if value.Valid {
				ae.QuestionID = value.String
			}
		case attemptevent.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				ae.QuestionType = value.String
			}
		case attemptevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				ae.Difficulty = value.Float64
			}
		case attemptevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				ae.Correct = value.Bool
			}
		case attemptevent.FieldTimeSpent:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field time_spent", values[i])
			} else if value.Valid {
				ae.TimeSpent = value.Float64
			}
		case attemptevent.FieldRecommendedSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field recommended_seconds", values[i])
			} else if value.Valid {
				ae.RecommendedSeconds = int(value.Int64)
			}
		case attemptevent.FieldChosenAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chosen_answer", values[i])
			} else if value.Valid {
				ae.ChosenAnswer = value.String
			}
		case attemptevent.FieldCorrectAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field correct_answer", values[i])
			} else if value.Valid {
				ae.CorrectAnswer = value.String
			}
		case attemptevent.FieldPatterns:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field patterns", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.Patterns); err != nil {
					return fmt.Errorf("unmarshal field patterns: %w", err)
				}
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AttemptEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ae.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(ae.SessionID)
	builder.WriteString(", ")
	builder.WriteString("question_id=")
	builder.WriteString(ae.QuestionID)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(ae.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", ae.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", ae.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_spent=")
	builder.WriteString(fmt.Sprintf("%v", ae.TimeSpent))
	builder.WriteString(", ")
	builder.WriteString("recommended_seconds=")
	builder.WriteString(fmt.Sprintf("%v", ae.RecommendedSeconds))
	builder.WriteString(", ")
	builder.WriteString("chosen_answer=")
	builder.WriteString(ae.ChosenAnswer)
	builder.WriteString(", ")
	builder.WriteString("correct_answer=")
	builder.WriteString(ae.CorrectAnswer)
	builder.WriteString(", ")
	builder.WriteString("patterns=")
	builder.WriteString(fmt.Sprintf("%v", ae.Patterns))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent
