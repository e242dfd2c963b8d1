// Code generated by ent, DO NOT EDIT.

package practicesessionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/reasonprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldAction, v))
}

// Mode applies equality check predicate on the "mode" field. It's identical to ModeEQ.
func Mode(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldMode, v))
}

// Strategy applies equality check predicate on the "strategy" field. It's identical to StrategyEQ.
func Strategy(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldStrategy, v))
}

// QuestionCount applies equality check predicate on the "question_count" field. It's identical to QuestionCountEQ.
func QuestionCount(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// CorrectCount applies equality check predicate on the "correct_count" field. It's identical to CorrectCountEQ.
func CorrectCount(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// TotalSeconds applies equality check predicate on the "total_seconds" field. It's identical to TotalSecondsEQ.
func TotalSeconds(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldTotalSeconds, v))
}

// Pace applies equality check predicate on the "pace" field. It's identical to PaceEQ.
func Pace(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldPace, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContainsFold(FieldAction, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldMode, vs...))
}

// ModeGT applies the GT predicate on the "mode" field.
func ModeGT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldMode, v))
}

// ModeGTE applies the GTE predicate on the "mode" field.
func ModeGTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldMode, v))
}

// ModeLT applies the LT predicate on the "mode" field.
func ModeLT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldMode, v))
}

// ModeLTE applies the LTE predicate on the "mode" field.
func ModeLTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldMode, v))
}

// ModeContains applies the Contains predicate on the "mode" field.
func ModeContains(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContains(FieldMode, v))
}

// ModeHasPrefix applies the HasPrefix predicate on the "mode" field.
func ModeHasPrefix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasPrefix(FieldMode, v))
}

// ModeHasSuffix applies the HasSuffix predicate on the "mode" field.
func ModeHasSuffix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasSuffix(FieldMode, v))
}

// ModeIsNil applies the IsNil predicate on the "mode" field.
func ModeIsNil() predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIsNull(FieldMode))
}

// ModeNotNil applies the NotNil predicate on the "mode" field.
func ModeNotNil() predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotNull(FieldMode))
}

// ModeEqualFold applies the EqualFold predicate on the "mode" field.
func ModeEqualFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEqualFold(FieldMode, v))
}

// ModeContainsFold applies the ContainsFold predicate on the "mode" field.
func ModeContainsFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContainsFold(FieldMode, v))
}

// StrategyEQ applies the EQ predicate on the "strategy" field.
func StrategyEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldStrategy, v))
}

// StrategyNEQ applies the NEQ predicate on the "strategy" field.
func StrategyNEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldStrategy, v))
}

// StrategyIn applies the In predicate on the "strategy" field.
func StrategyIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldStrategy, vs...))
}

// StrategyNotIn applies the NotIn predicate on the "strategy" field.
func StrategyNotIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldStrategy, vs...))
}

// StrategyGT applies the GT predicate on the "strategy" field.
func StrategyGT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldStrategy, v))
}

// StrategyGTE applies the GTE predicate on the "strategy" field.
func StrategyGTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldStrategy, v))
}

// StrategyLT applies the LT predicate on the "strategy" field.
func StrategyLT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldStrategy, v))
}

// StrategyLTE applies the LTE predicate on the "strategy" field.
func StrategyLTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldStrategy, v))
}

// StrategyContains applies the Contains predicate on the "strategy" field.
func StrategyContains(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContains(FieldStrategy, v))
}

// StrategyHasPrefix applies the HasPrefix predicate on the "strategy" field.
func StrategyHasPrefix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasPrefix(FieldStrategy, v))
}

// StrategyHasSuffix applies the HasSuffix predicate on the "strategy" field.
func StrategyHasSuffix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasSuffix(FieldStrategy, v))
}

// StrategyIsNil applies the IsNil predicate on the "strategy" field.
func StrategyIsNil() predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIsNull(FieldStrategy))
}

// StrategyNotNil applies the NotNil predicate on the "strategy" field.
func StrategyNotNil() predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotNull(FieldStrategy))
}

// StrategyEqualFold applies the EqualFold predicate on the "strategy" field.
func StrategyEqualFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEqualFold(FieldStrategy, v))
}

// StrategyContainsFold applies the ContainsFold predicate on the "strategy" field.
func StrategyContainsFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContainsFold(FieldStrategy, v))
}

// QuestionCountEQ applies the EQ predicate on the "question_count" field.
func QuestionCountEQ(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldQuestionCount, v))
}

// QuestionCountNEQ applies the NEQ predicate on the "question_count" field.
func QuestionCountNEQ(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldQuestionCount, v))
}

// QuestionCountIn applies the In predicate on the "question_count" field.
func QuestionCountIn(vs ...int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldQuestionCount, vs...))
}

// QuestionCountNotIn applies the NotIn predicate on the "question_count" field.
func QuestionCountNotIn(vs ...int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldQuestionCount, vs...))
}

// QuestionCountGT applies the GT predicate on the "question_count" field.
func QuestionCountGT(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldQuestionCount, v))
}

// QuestionCountGTE applies the GTE predicate on the "question_count" field.
func QuestionCountGTE(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldQuestionCount, v))
}

// QuestionCountLT applies the LT predicate on the "question_count" field.
func QuestionCountLT(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldQuestionCount, v))
}

// QuestionCountLTE applies the LTE predicate on the "question_count" field.
func QuestionCountLTE(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldQuestionCount, v))
}

// CorrectCountEQ applies the EQ predicate on the "correct_count" field.
func CorrectCountEQ(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldCorrectCount, v))
}

// CorrectCountNEQ applies the NEQ predicate on the "correct_count" field.
func CorrectCountNEQ(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldCorrectCount, v))
}

// CorrectCountIn applies the In predicate on the "correct_count" field.
func CorrectCountIn(vs ...int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldCorrectCount, vs...))
}

// CorrectCountNotIn applies the NotIn predicate on the "correct_count" field.
func CorrectCountNotIn(vs ...int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldCorrectCount, vs...))
}

// CorrectCountGT applies the GT predicate on the "correct_count" field.
func CorrectCountGT(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldCorrectCount, v))
}

// CorrectCountGTE applies the GTE predicate on the "correct_count" field.
func CorrectCountGTE(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldCorrectCount, v))
}

// CorrectCountLT applies the LT predicate on the "correct_count" field.
func CorrectCountLT(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldCorrectCount, v))
}

// CorrectCountLTE applies the LTE predicate on the "correct_count" field.
func CorrectCountLTE(v int) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldCorrectCount, v))
}

// TotalSecondsEQ applies the EQ predicate on the "total_seconds" field.
func TotalSecondsEQ(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldTotalSeconds, v))
}

// TotalSecondsNEQ applies the NEQ predicate on the "total_seconds" field.
func TotalSecondsNEQ(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldTotalSeconds, v))
}

// TotalSecondsIn applies the In predicate on the "total_seconds" field.
func TotalSecondsIn(vs ...float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldTotalSeconds, vs...))
}

// TotalSecondsNotIn applies the NotIn predicate on the "total_seconds" field.
func TotalSecondsNotIn(vs ...float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldTotalSeconds, vs...))
}

// TotalSecondsGT applies the GT predicate on the "total_seconds" field.
func TotalSecondsGT(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldTotalSeconds, v))
}

// TotalSecondsGTE applies the GTE predicate on the "total_seconds" field.
func TotalSecondsGTE(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldTotalSeconds, v))
}

// TotalSecondsLT applies the LT predicate on the "total_seconds" field.
func TotalSecondsLT(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldTotalSeconds, v))
}

// TotalSecondsLTE applies the LTE predicate on the "total_seconds" field.
func TotalSecondsLTE(v float64) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldTotalSeconds, v))
}

// PaceEQ applies the EQ predicate on the "pace" field.
func PaceEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEQ(FieldPace, v))
}

// PaceNEQ applies the NEQ predicate on the "pace" field.
func PaceNEQ(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNEQ(FieldPace, v))
}

// PaceIn applies the In predicate on the "pace" field.
func PaceIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIn(FieldPace, vs...))
}

// PaceNotIn applies the NotIn predicate on the "pace" field.
func PaceNotIn(vs ...string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotIn(FieldPace, vs...))
}

// PaceGT applies the GT predicate on the "pace" field.
func PaceGT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGT(FieldPace, v))
}

// PaceGTE applies the GTE predicate on the "pace" field.
func PaceGTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldGTE(FieldPace, v))
}

// PaceLT applies the LT predicate on the "pace" field.
func PaceLT(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLT(FieldPace, v))
}

// PaceLTE applies the LTE predicate on the "pace" field.
func PaceLTE(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldLTE(FieldPace, v))
}

// PaceContains applies the Contains predicate on the "pace" field.
func PaceContains(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContains(FieldPace, v))
}

// PaceHasPrefix applies the HasPrefix predicate on the "pace" field.
func PaceHasPrefix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasPrefix(FieldPace, v))
}

// PaceHasSuffix applies the HasSuffix predicate on the "pace" field.
func PaceHasSuffix(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldHasSuffix(FieldPace, v))
}

// PaceIsNil applies the IsNil predicate on the "pace" field.
func PaceIsNil() predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldIsNull(FieldPace))
}

// PaceNotNil applies the NotNil predicate on the "pace" field.
func PaceNotNil() predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldNotNull(FieldPace))
}

// PaceEqualFold applies the EqualFold predicate on the "pace" field.
func PaceEqualFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldEqualFold(FieldPace, v))
}

// PaceContainsFold applies the ContainsFold predicate on the "pace" field.
func PaceContainsFold(v string) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.FieldContainsFold(FieldPace, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeSessionEvent) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeSessionEvent) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeSessionEvent) predicate.PracticeSessionEvent {
	return predicate.PracticeSessionEvent(sql.NotPredicates(p))
}
