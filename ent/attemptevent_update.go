// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/reasonprep/ent/attemptevent"
	"github.com/abhisek/reasonprep/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AttemptEventUpdate) SetSessionID(s string) *AttemptEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSessionID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// SetQuestionID sets the "question_id" field.
func (aeu *AttemptEventUpdate) SetQuestionID(s string) *AttemptEventUpdate {
	aeu.mutation.SetQuestionID(s)
	return aeu
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableQuestionID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetQuestionID(*s)
	}
	return aeu
}

// SetQuestionType sets the "question_type" field.
func (aeu *AttemptEventUpdate) SetQuestionType(s string) *AttemptEventUpdate {
	aeu.mutation.SetQuestionType(s)
	return aeu
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableQuestionType(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetQuestionType(*s)
	}
	return aeu
}

// SetDifficulty sets the "difficulty" field.
func (aeu *AttemptEventUpdate) SetDifficulty(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetDifficulty()
	aeu.mutation.SetDifficulty(f)
	return aeu
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableDifficulty(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetDifficulty(*f)
	}
	return aeu
}

// AddDifficulty adds f to the "difficulty" field.
func (aeu *AttemptEventUpdate) AddDifficulty(f float64) *AttemptEventUpdate {
	aeu.mutation.AddDifficulty(f)
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AttemptEventUpdate) SetCorrect(b bool) *AttemptEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrect(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetTimeSpent sets the "time_spent" field.
func (aeu *AttemptEventUpdate) SetTimeSpent(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetTimeSpent()
	aeu.mutation.SetTimeSpent(f)
	return aeu
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableTimeSpent(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetTimeSpent(*f)
	}
	return aeu
}

// AddTimeSpent adds f to the "time_spent" field.
func (aeu *AttemptEventUpdate) AddTimeSpent(f float64) *AttemptEventUpdate {
	aeu.mutation.AddTimeSpent(f)
	return aeu
}

// SetRecommendedSeconds sets the "recommended_seconds" field.
func (aeu *AttemptEventUpdate) SetRecommendedSeconds(i int) *AttemptEventUpdate {
	aeu.mutation.ResetRecommendedSeconds()
	aeu.mutation.SetRecommendedSeconds(i)
	return aeu
}

// SetNillableRecommendedSeconds sets the "recommended_seconds" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableRecommendedSeconds(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetRecommendedSeconds(*i)
	}
	return aeu
}

// AddRecommendedSeconds adds i to the "recommended_seconds" field.
func (aeu *AttemptEventUpdate) AddRecommendedSeconds(i int) *AttemptEventUpdate {
	aeu.mutation.AddRecommendedSeconds(i)
	return aeu
}

// SetChosenAnswer sets the "chosen_answer" field.
func (aeu *AttemptEventUpdate) SetChosenAnswer(s string) *AttemptEventUpdate {
	aeu.mutation.SetChosenAnswer(s)
	return aeu
}

// SetNillableChosenAnswer sets the "chosen_answer" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableChosenAnswer(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetChosenAnswer(*s)
	}
	return aeu
}

// SetCorrectAnswer sets the "correct_answer" field.
func (aeu *AttemptEventUpdate) SetCorrectAnswer(s string) *AttemptEventUpdate {
	aeu.mutation.SetCorrectAnswer(s)
	return aeu
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrectAnswer(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetCorrectAnswer(*s)
	}
	return aeu
}

// SetPatterns sets the "patterns" field.
func (aeu *AttemptEventUpdate) SetPatterns(s []string) *AttemptEventUpdate {
	aeu.mutation.SetPatterns(s)
	return aeu
}

// AppendPatterns appends s to the "patterns" field.
func (aeu *AttemptEventUpdate) AppendPatterns(s []string) *AttemptEventUpdate {
	aeu.mutation.AppendPatterns(s)
	return aeu
}

// ClearPatterns clears the value of the "patterns" field.
func (aeu *AttemptEventUpdate) ClearPatterns() *AttemptEventUpdate {
	aeu.mutation.ClearPatterns()
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.QuestionType(); ok {
		if err := attemptevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.QuestionType(); ok {
		_spec.SetField(attemptevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedDifficulty(); ok {
		_spec.AddField(attemptevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.TimeSpent(); ok {
		_spec.SetField(attemptevent.FieldTimeSpent, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedTimeSpent(); ok {
		_spec.AddField(attemptevent.FieldTimeSpent, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.RecommendedSeconds(); ok {
		_spec.SetField(attemptevent.FieldRecommendedSeconds, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedRecommendedSeconds(); ok {
		_spec.AddField(attemptevent.FieldRecommendedSeconds, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.ChosenAnswer(); ok {
		_spec.SetField(attemptevent.FieldChosenAnswer, field.TypeString, value)
	}
	if value, ok := aeu.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Patterns(); ok {
		_spec.SetField(attemptevent.FieldPatterns, field.TypeJSON, value)
	}
	if value, ok := aeu.mutation.AppendedPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldPatterns, value)
		})
	}
	if aeu.mutation.PatternsCleared() {
		_spec.ClearField(attemptevent.FieldPatterns, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (aeuo *AttemptEventUpdateOne) SetSessionID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSessionID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// SetQuestionID sets the "question_id" field.
func (aeuo *AttemptEventUpdateOne) SetQuestionID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetQuestionID(s)
	return aeuo
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableQuestionID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetQuestionID(*s)
	}
	return aeuo
}

// SetQuestionType sets the "question_type" field.
func (aeuo *AttemptEventUpdateOne) SetQuestionType(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetQuestionType(s)
	return aeuo
}

// SetNillableQuestionType sets the "question_type" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableQuestionType(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetQuestionType(*s)
	}
	return aeuo
}

// SetDifficulty sets the "difficulty" field.
func (aeuo *AttemptEventUpdateOne) SetDifficulty(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetDifficulty()
	aeuo.mutation.SetDifficulty(f)
	return aeuo
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableDifficulty(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetDifficulty(*f)
	}
	return aeuo
}

// AddDifficulty adds f to the "difficulty" field.
func (aeuo *AttemptEventUpdateOne) AddDifficulty(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddDifficulty(f)
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AttemptEventUpdateOne) SetCorrect(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrect(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetTimeSpent sets the "time_spent" field.
func (aeuo *AttemptEventUpdateOne) SetTimeSpent(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetTimeSpent()
	aeuo.mutation.SetTimeSpent(f)
	return aeuo
}

// SetNillableTimeSpent sets the "time_spent" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableTimeSpent(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetTimeSpent(*f)
	}
	return aeuo
}

// AddTimeSpent adds f to the "time_spent" field.
func (aeuo *AttemptEventUpdateOne) AddTimeSpent(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddTimeSpent(f)
	return aeuo
}

// SetRecommendedSeconds sets the "recommended_seconds" field.
func (aeuo *AttemptEventUpdateOne) SetRecommendedSeconds(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetRecommendedSeconds()
	aeuo.mutation.SetRecommendedSeconds(i)
	return aeuo
}

// SetNillableRecommendedSeconds sets the "recommended_seconds" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableRecommendedSeconds(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetRecommendedSeconds(*i)
	}
	return aeuo
}

// AddRecommendedSeconds adds i to the "recommended_seconds" field.
func (aeuo *AttemptEventUpdateOne) AddRecommendedSeconds(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddRecommendedSeconds(i)
	return aeuo
}

// SetChosenAnswer sets the "chosen_answer" field.
func (aeuo *AttemptEventUpdateOne) SetChosenAnswer(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetChosenAnswer(s)
	return aeuo
}

// SetNillableChosenAnswer sets the "chosen_answer" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableChosenAnswer(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetChosenAnswer(*s)
	}
	return aeuo
}

// SetCorrectAnswer sets the "correct_answer" field.
func (aeuo *AttemptEventUpdateOne) SetCorrectAnswer(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrectAnswer(s)
	return aeuo
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrectAnswer(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetCorrectAnswer(*s)
	}
	return aeuo
}

// SetPatterns sets the "patterns" field.
func (aeuo *AttemptEventUpdateOne) SetPatterns(s []string) *AttemptEventUpdateOne {
	aeuo.mutation.SetPatterns(s)
	return aeuo
}

// AppendPatterns appends s to the "patterns" field.
func (aeuo *AttemptEventUpdateOne) AppendPatterns(s []string) *AttemptEventUpdateOne {
	aeuo.mutation.AppendPatterns(s)
	return aeuo
}

// ClearPatterns clears the value of the "patterns" field.
func (aeuo *AttemptEventUpdateOne) ClearPatterns() *AttemptEventUpdateOne {
	aeuo.mutation.ClearPatterns()
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.QuestionType(); ok {
		if err := attemptevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_type": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.QuestionType(); ok {
		_spec.SetField(attemptevent.FieldQuestionType, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedDifficulty(); ok {
		_spec.AddField(attemptevent.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.TimeSpent(); ok {
		_spec.SetField(attemptevent.FieldTimeSpent, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedTimeSpent(); ok {
		_spec.AddField(attemptevent.FieldTimeSpent, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.RecommendedSeconds(); ok {
		_spec.SetField(attemptevent.FieldRecommendedSeconds, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedRecommendedSeconds(); ok {
		_spec.AddField(attemptevent.FieldRecommendedSeconds, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.ChosenAnswer(); ok {
		_spec.SetField(attemptevent.FieldChosenAnswer, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Patterns(); ok {
		_spec.SetField(attemptevent.FieldPatterns, field.TypeJSON, value)
	}
	if value, ok := aeuo.mutation.AppendedPatterns(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, attemptevent.FieldPatterns, value)
		})
	}
	if aeuo.mutation.PatternsCleared() {
		_spec.ClearField(attemptevent.FieldPatterns, field.TypeJSON)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}
