// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/reasonprep/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (aec *AttemptEventCreate) SetSequence(i int64) *AttemptEventCreate {
	aec.mutation.SetSequence(i)
	return aec
}

// SetTimestamp sets the "timestamp" field.
func (aec *AttemptEventCreate) SetTimestamp(t time.Time) *AttemptEventCreate {
	aec.mutation.SetTimestamp(t)
	return aec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (aec *AttemptEventCreate) SetNillableTimestamp(t *time.Time) *AttemptEventCreate {
	if t != nil {
		aec.SetTimestamp(*t)
	}
	return aec
}

// SetSessionID sets the "session_id" field.
func (aec *AttemptEventCreate) SetSessionID(s string) *AttemptEventCreate {
	aec.mutation.SetSessionID(s)
	return aec
}

// SetQuestionID sets the "question_id" field.
func (aec *AttemptEventCreate) SetQuestionID(s string) *AttemptEventCreate {
	aec.mutation.SetQuestionID(s)
	return aec
}

// SetQuestionType sets the "question_type" field.
func (aec *AttemptEventCreate) SetQuestionType(s string) *AttemptEventCreate {
	aec.mutation.SetQuestionType(s)
	return aec
}

// SetDifficulty sets the "difficulty" field.
func (aec *AttemptEventCreate) SetDifficulty(f float64) *AttemptEventCreate {
	aec.mutation.SetDifficulty(f)
	return aec
}

// SetCorrect sets the "correct" field.
func (aec *AttemptEventCreate) SetCorrect(b bool) *AttemptEventCreate {
	aec.mutation.SetCorrect(b)
	return aec
}

// SetTimeSpent sets the "time_spent" field.
func (aec *AttemptEventCreate) SetTimeSpent(f float64) *AttemptEventCreate {
	aec.mutation.SetTimeSpent(f)
	return aec
}

// SetRecommendedSeconds sets the "recommended_seconds" field.
func (aec *AttemptEventCreate) SetRecommendedSeconds(i int) *AttemptEventCreate {
	aec.mutation.SetRecommendedSeconds(i)
	return aec
}

// SetChosenAnswer sets the "chosen_answer" field.
func (aec *AttemptEventCreate) SetChosenAnswer(s string) *AttemptEventCreate {
	aec.mutation.SetChosenAnswer(s)
	return aec
}

// SetCorrectAnswer sets the "correct_answer" field.
func (aec *AttemptEventCreate) SetCorrectAnswer(s string) *AttemptEventCreate {
	aec.mutation.SetCorrectAnswer(s)
	return aec
}

// SetPatterns sets the "patterns" field.
func (aec *AttemptEventCreate) SetPatterns(s []string) *AttemptEventCreate {
	aec.mutation.SetPatterns(s)
	return aec
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aec *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return aec.mutation
}

// Save creates the AttemptEvent in the database.
func (aec *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	aec.defaults()
	return withHooks(ctx, aec.sqlSave, aec.mutation, aec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (aec *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := aec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aec *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := aec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aec *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := aec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (aec *AttemptEventCreate) defaults() {
	if _, ok := aec.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		aec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aec *AttemptEventCreate) check() error {
	if _, ok := aec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := aec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := aec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := aec.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "AttemptEvent.question_id"`)}
	}
	if v, ok := aec.mutation.QuestionID(); ok {
		if err := attemptevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_id": %w`, err)}
		}
	}
	if _, ok := aec.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "AttemptEvent.question_type"`)}
	}
	if v, ok := aec.mutation.QuestionType(); ok {
		if err := attemptevent.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_type": %w`, err)}
		}
	}
	if _, ok := aec.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "AttemptEvent.difficulty"`)}
	}
	if _, ok := aec.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := aec.mutation.TimeSpent(); !ok {
		return &ValidationError{Name: "time_spent", err: errors.New(`ent: missing required field "AttemptEvent.time_spent"`)}
	}
	if _, ok := aec.mutation.RecommendedSeconds(); !ok {
		return &ValidationError{Name: "recommended_seconds", err: errors.New(`ent: missing required field "AttemptEvent.recommended_seconds"`)}
	}
	if _, ok := aec.mutation.ChosenAnswer(); !ok {
		return &ValidationError{Name: "chosen_answer", err: errors.New(`ent: missing required field "AttemptEvent.chosen_answer"`)}
	}
	if _, ok := aec.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AttemptEvent.correct_answer"`)}
	}
	return nil
}

func (aec *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
	if err := aec.check(); err != nil {
		return nil, err
	}
	_node, _spec := aec.createSpec()
	if err := sqlgraph.CreateNode(ctx, aec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	aec.mutation.id = &_node.ID
	aec.mutation.done = true
	return _node, nil
}

func (aec *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: aec.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := aec.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := aec.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := aec.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := aec.mutation.QuestionID(); ok {
		_spec.SetField(attemptevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := aec.mutation.QuestionType(); ok {
		_spec.SetField(attemptevent.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := aec.mutation.Difficulty(); ok {
		_spec.SetField(attemptevent.FieldDifficulty, field.TypeFloat64, value)
		_node.Difficulty = value
	}
	if value, ok := aec.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := aec.mutation.TimeSpent(); ok {
		_spec.SetField(attemptevent.FieldTimeSpent, field.TypeFloat64, value)
		_node.TimeSpent = value
	}
	if value, ok := aec.mutation.RecommendedSeconds(); ok {
		_spec.SetField(attemptevent.FieldRecommendedSeconds, field.TypeInt, value)
		_node.RecommendedSeconds = value
	}
	if value, ok := aec.mutation.ChosenAnswer(); ok {
		_spec.SetField(attemptevent.FieldChosenAnswer, field.TypeString, value)
		_node.ChosenAnswer = value
	}
	if value, ok := aec.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := aec.mutation.Patterns(); ok {
		_spec.SetField(attemptevent.FieldPatterns, field.TypeJSON, value)
		_node.Patterns = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (aecb *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if aecb.err != nil {
		return nil, aecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(aecb.builders))
	nodes := make([]*AttemptEvent, len(aecb.builders))
	mutators := make([]Mutator, len(aecb.builders))
	for i := range aecb.builders {
		func(i int, root context.Context) {
			builder := aecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, aecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, aecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, aecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := aecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (aecb *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := aecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aecb *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := aecb.Exec(ctx); err != nil {
		panic(err)
	}
}
