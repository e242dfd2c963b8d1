// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/reasonprep/ent/practicesessionevent"
)

// PracticeSessionEventCreate is the builder for creating a PracticeSessionEvent entity.
type PracticeSessionEventCreate struct {
	config
	mutation *PracticeSessionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (psec *PracticeSessionEventCreate) SetSequence(i int64) *PracticeSessionEventCreate {
	psec.mutation.SetSequence(i)
	return psec
}

// SetTimestamp sets the "timestamp" field.
func (psec *PracticeSessionEventCreate) SetTimestamp(t time.Time) *PracticeSessionEventCreate {
	psec.mutation.SetTimestamp(t)
	return psec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (psec *PracticeSessionEventCreate) SetNillableTimestamp(t *time.Time) *PracticeSessionEventCreate {
	if t != nil {
		psec.SetTimestamp(*t)
	}
	return psec
}

// SetSessionID sets the "session_id" field.
func (psec *PracticeSessionEventCreate) SetSessionID(s string) *PracticeSessionEventCreate {
	psec.mutation.SetSessionID(s)
	return psec
}

// SetAction sets the "action" field.
func (psec *PracticeSessionEventCreate) SetAction(s string) *PracticeSessionEventCreate {
	psec.mutation.SetAction(s)
	return psec
}

// SetMode sets the "mode" field.
func (psec *PracticeSessionEventCreate) SetMode(s string) *PracticeSessionEventCreate {
	psec.mutation.SetMode(s)
	return psec
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (psec *PracticeSessionEventCreate) SetNillableMode(s *string) *PracticeSessionEventCreate {
	if s != nil {
		psec.SetMode(*s)
	}
	return psec
}

// SetStrategy sets the "strategy" field.
func (psec *PracticeSessionEventCreate) SetStrategy(s string) *PracticeSessionEventCreate {
	psec.mutation.SetStrategy(s)
	return psec
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (psec *PracticeSessionEventCreate) SetNillableStrategy(s *string) *PracticeSessionEventCreate {
	if s != nil {
		psec.SetStrategy(*s)
	}
	return psec
}

// SetQuestionCount sets the "question_count" field.
func (psec *PracticeSessionEventCreate) SetQuestionCount(i int) *PracticeSessionEventCreate {
	psec.mutation.SetQuestionCount(i)
	return psec
}

// SetCorrectCount sets the "correct_count" field.
func (psec *PracticeSessionEventCreate) SetCorrectCount(i int) *PracticeSessionEventCreate {
	psec.mutation.SetCorrectCount(i)
	return psec
}

// SetTotalSeconds sets the "total_seconds" field.
func (psec *PracticeSessionEventCreate) SetTotalSeconds(f float64) *PracticeSessionEventCreate {
	psec.mutation.SetTotalSeconds(f)
	return psec
}

// SetPace sets the "pace" field.
func (psec *PracticeSessionEventCreate) SetPace(s string) *PracticeSessionEventCreate {
	psec.mutation.SetPace(s)
	return psec
}

// SetNillablePace sets the "pace" field if the given value is not nil.
func (psec *PracticeSessionEventCreate) SetNillablePace(s *string) *PracticeSessionEventCreate {
	if s != nil {
		psec.SetPace(*s)
	}
	return psec
}

// Mutation returns the PracticeSessionEventMutation object of the builder.
func (psec *PracticeSessionEventCreate) Mutation() *PracticeSessionEventMutation {
	return psec.mutation
}

// Save creates the PracticeSessionEvent in the database.
func (psec *PracticeSessionEventCreate) Save(ctx context.Context) (*PracticeSessionEvent, error) {
	psec.defaults()
	return withHooks(ctx, psec.sqlSave, psec.mutation, psec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psec *PracticeSessionEventCreate) SaveX(ctx context.Context) *PracticeSessionEvent {
	v, err := psec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psec *PracticeSessionEventCreate) Exec(ctx context.Context) error {
	_, err := psec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psec *PracticeSessionEventCreate) ExecX(ctx context.Context) {
	if err := psec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (psec *PracticeSessionEventCreate) defaults() {
	if _, ok := psec.mutation.Timestamp(); !ok {
		v := practicesessionevent.DefaultTimestamp()
		psec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psec *PracticeSessionEventCreate) check() error {
	if _, ok := psec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeSessionEvent.sequence"`)}
	}
	if _, ok := psec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeSessionEvent.timestamp"`)}
	}
	if _, ok := psec.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PracticeSessionEvent.session_id"`)}
	}
	if v, ok := psec.mutation.SessionID(); ok {
		if err := practicesessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSessionEvent.session_id": %w`, err)}
		}
	}
	if _, ok := psec.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "PracticeSessionEvent.action"`)}
	}
	if v, ok := psec.mutation.Action(); ok {
		if err := practicesessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PracticeSessionEvent.action": %w`, err)}
		}
	}
	if _, ok := psec.mutation.QuestionCount(); !ok {
		return &ValidationError{Name: "question_count", err: errors.New(`ent: missing required field "PracticeSessionEvent.question_count"`)}
	}
	if _, ok := psec.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "PracticeSessionEvent.correct_count"`)}
	}
	if _, ok := psec.mutation.TotalSeconds(); !ok {
		return &ValidationError{Name: "total_seconds", err: errors.New(`ent: missing required field "PracticeSessionEvent.total_seconds"`)}
	}
	return nil
}

func (psec *PracticeSessionEventCreate) sqlSave(ctx context.Context) (*PracticeSessionEvent, error) {
	if err := psec.check(); err != nil {
		return nil, err
	}
	_node, _spec := psec.createSpec()
	if err := sqlgraph.CreateNode(ctx, psec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	psec.mutation.id = &_node.ID
	psec.mutation.done = true
	return _node, nil
}

func (psec *PracticeSessionEventCreate) createSpec() (*PracticeSessionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeSessionEvent{config: psec.config}
		_spec = sqlgraph.NewCreateSpec(practicesessionevent.Table, sqlgraph.NewFieldSpec(practicesessionevent.FieldID, field.TypeInt))
	)
	if value, ok := psec.mutation.Sequence(); ok {
		_spec.SetField(practicesessionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := psec.mutation.Timestamp(); ok {
		_spec.SetField(practicesessionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := psec.mutation.SessionID(); ok {
		_spec.SetField(practicesessionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := psec.mutation.Action(); ok {
		_spec.SetField(practicesessionevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := psec.mutation.Mode(); ok {
		_spec.SetField(practicesessionevent.FieldMode, field.TypeString, value)
		_node.Mode = value
	}
	if value, ok := psec.mutation.Strategy(); ok {
		_spec.SetField(practicesessionevent.FieldStrategy, field.TypeString, value)
		_node.Strategy = value
	}
	if value, ok := psec.mutation.QuestionCount(); ok {
		_spec.SetField(practicesessionevent.FieldQuestionCount, field.TypeInt, value)
		_node.QuestionCount = value
	}
	if value, ok := psec.mutation.CorrectCount(); ok {
		_spec.SetField(practicesessionevent.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := psec.mutation.TotalSeconds(); ok {
		_spec.SetField(practicesessionevent.FieldTotalSeconds, field.TypeFloat64, value)
		_node.TotalSeconds = value
	}
	if value, ok := psec.mutation.Pace(); ok {
		_spec.SetField(practicesessionevent.FieldPace, field.TypeString, value)
		_node.Pace = value
	}
	return _node, _spec
}

// PracticeSessionEventCreateBulk is the builder for creating many PracticeSessionEvent entities in bulk.
type PracticeSessionEventCreateBulk struct {
	config
	err      error
	builders []*PracticeSessionEventCreate
}

// Save creates the PracticeSessionEvent entities in the database.
func (psecb *PracticeSessionEventCreateBulk) Save(ctx context.Context) ([]*PracticeSessionEvent, error) {
	if psecb.err != nil {
		return nil, psecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(psecb.builders))
	nodes := make([]*PracticeSessionEvent, len(psecb.builders))
	mutators := make([]Mutator, len(psecb.builders))
	for i := range psecb.builders {
		func(i int, root context.Context) {
			builder := psecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeSessionEventMutation)
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
					_, err = mutators[i+1].Mutate(root, psecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, psecb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, psecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (psecb *PracticeSessionEventCreateBulk) SaveX(ctx context.Context) []*PracticeSessionEvent {
	v, err := psecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psecb *PracticeSessionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := psecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psecb *PracticeSessionEventCreateBulk) ExecX(ctx context.Context) {
	if err := psecb.Exec(ctx); err != nil {
		panic(err)
	}
}
