// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/reasonprep/ent/attemptevent"
	"github.com/abhisek/reasonprep/ent/practicesessionevent"
	"github.com/abhisek/reasonprep/ent/schema"
	"github.com/abhisek/reasonprep/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescQuestionType is the schema descriptor for question_type field.
	attempteventDescQuestionType := attempteventFields[2].Descriptor()
	// attemptevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	attemptevent.QuestionTypeValidator = attempteventDescQuestionType.Validators[0].(func(string) error)
	practicesessioneventMixin := schema.PracticeSessionEvent{}.Mixin()
	practicesessioneventMixinFields0 := practicesessioneventMixin[0].Fields()
	_ = practicesessioneventMixinFields0
	practicesessioneventFields := schema.PracticeSessionEvent{}.Fields()
	_ = practicesessioneventFields
	// practicesessioneventDescTimestamp is the schema descriptor for timestamp field.
	practicesessioneventDescTimestamp := practicesessioneventMixinFields0[1].Descriptor()
	// practicesessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practicesessionevent.DefaultTimestamp = practicesessioneventDescTimestamp.Default.(func() time.Time)
	// practicesessioneventDescSessionID is the schema descriptor for session_id field.
	practicesessioneventDescSessionID := practicesessioneventFields[0].Descriptor()
	// practicesessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	practicesessionevent.SessionIDValidator = practicesessioneventDescSessionID.Validators[0].(func(string) error)
	// practicesessioneventDescAction is the schema descriptor for action field.
	practicesessioneventDescAction := practicesessioneventFields[1].Descriptor()
	// practicesessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	practicesessionevent.ActionValidator = practicesessioneventDescAction.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
