// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/reasonprep/ent/practicesessionevent"
	"github.com/abhisek/reasonprep/ent/predicate"
)

// PracticeSessionEventUpdate is the builder for updating PracticeSessionEvent entities.
type PracticeSessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeSessionEventMutation
}

// Where appends a list predicates to the PracticeSessionEventUpdate builder.
func (pseu *PracticeSessionEventUpdate) Where(ps ...predicate.PracticeSessionEvent) *PracticeSessionEventUpdate {
	pseu.mutation.Where(ps...)
	return pseu
}

// SetSessionID sets the "session_id" field.
func (pseu *PracticeSessionEventUpdate) SetSessionID(s string) *PracticeSessionEventUpdate {
	pseu.mutation.SetSessionID(s)
	return pseu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableSessionID(s *string) *PracticeSessionEventUpdate {
	if s != nil {
		pseu.SetSessionID(*s)
	}
	return pseu
}

// SetAction sets the "action" field.
func (pseu *PracticeSessionEventUpdate) SetAction(s string) *PracticeSessionEventUpdate {
	pseu.mutation.SetAction(s)
	return pseu
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableAction(s *string) *PracticeSessionEventUpdate {
	if s != nil {
		pseu.SetAction(*s)
	}
	return pseu
}

// SetMode sets the "mode" field.
func (pseu *PracticeSessionEventUpdate) SetMode(s string) *PracticeSessionEventUpdate {
	pseu.mutation.SetMode(s)
	return pseu
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableMode(s *string) *PracticeSessionEventUpdate {
	if s != nil {
		pseu.SetMode(*s)
	}
	return pseu
}

// ClearMode clears the value of the "mode" field.
func (pseu *PracticeSessionEventUpdate) ClearMode() *PracticeSessionEventUpdate {
	pseu.mutation.ClearMode()
	return pseu
}

// SetStrategy sets the "strategy" field.
func (pseu *PracticeSessionEventUpdate) SetStrategy(s string) *PracticeSessionEventUpdate {
	pseu.mutation.SetStrategy(s)
	return pseu
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableStrategy(s *string) *PracticeSessionEventUpdate {
	if s != nil {
		pseu.SetStrategy(*s)
	}
	return pseu
}

// ClearStrategy clears the value of the "strategy" field.
func (pseu *PracticeSessionEventUpdate) ClearStrategy() *PracticeSessionEventUpdate {
	pseu.mutation.ClearStrategy()
	return pseu
}

// SetQuestionCount sets the "question_count" field.
func (pseu *PracticeSessionEventUpdate) SetQuestionCount(i int) *PracticeSessionEventUpdate {
	pseu.mutation.ResetQuestionCount()
	pseu.mutation.SetQuestionCount(i)
	return pseu
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableQuestionCount(i *int) *PracticeSessionEventUpdate {
	if i != nil {
		pseu.SetQuestionCount(*i)
	}
	return pseu
}

// AddQuestionCount adds i to the "question_count" field.
func (pseu *PracticeSessionEventUpdate) AddQuestionCount(i int) *PracticeSessionEventUpdate {
	pseu.mutation.AddQuestionCount(i)
	return pseu
}

// SetCorrectCount sets the "correct_count" field.
func (pseu *PracticeSessionEventUpdate) SetCorrectCount(i int) *PracticeSessionEventUpdate {
	pseu.mutation.ResetCorrectCount()
	pseu.mutation.SetCorrectCount(i)
	return pseu
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableCorrectCount(i *int) *PracticeSessionEventUpdate {
	if i != nil {
		pseu.SetCorrectCount(*i)
	}
	return pseu
}

// AddCorrectCount adds i to the "correct_count" field.
func (pseu *PracticeSessionEventUpdate) AddCorrectCount(i int) *PracticeSessionEventUpdate {
	pseu.mutation.AddCorrectCount(i)
	return pseu
}

// SetTotalSeconds sets the "total_seconds" field.
func (pseu *PracticeSessionEventUpdate) SetTotalSeconds(f float64) *PracticeSessionEventUpdate {
	pseu.mutation.ResetTotalSeconds()
	pseu.mutation.SetTotalSeconds(f)
	return pseu
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillableTotalSeconds(f *float64) *PracticeSessionEventUpdate {
	if f != nil {
		pseu.SetTotalSeconds(*f)
	}
	return pseu
}

// AddTotalSeconds adds f to the "total_seconds" field.
func (pseu *PracticeSessionEventUpdate) AddTotalSeconds(f float64) *PracticeSessionEventUpdate {
	pseu.mutation.AddTotalSeconds(f)
	return pseu
}

// SetPace sets the "pace" field.
func (pseu *PracticeSessionEventUpdate) SetPace(s string) *PracticeSessionEventUpdate {
	pseu.mutation.SetPace(s)
	return pseu
}

// SetNillablePace sets the "pace" field if the given value is not nil.
func (pseu *PracticeSessionEventUpdate) SetNillablePace(s *string) *PracticeSessionEventUpdate {
	if s != nil {
		pseu.SetPace(*s)
	}
	return pseu
}

// ClearPace clears the value of the "pace" field.
func (pseu *PracticeSessionEventUpdate) ClearPace() *PracticeSessionEventUpdate {
	pseu.mutation.ClearPace()
	return pseu
}

// Mutation returns the PracticeSessionEventMutation object of the builder.
func (pseu *PracticeSessionEventUpdate) Mutation() *PracticeSessionEventMutation {
	return pseu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (pseu *PracticeSessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, pseu.sqlSave, pseu.mutation, pseu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pseu *PracticeSessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := pseu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (pseu *PracticeSessionEventUpdate) Exec(ctx context.Context) error {
	_, err := pseu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pseu *PracticeSessionEventUpdate) ExecX(ctx context.Context) {
	if err := pseu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pseu *PracticeSessionEventUpdate) check() error {
	if v, ok := pseu.mutation.SessionID(); ok {
		if err := practicesessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := pseu.mutation.Action(); ok {
		if err := practicesessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PracticeSessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (pseu *PracticeSessionEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := pseu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesessionevent.Table, practicesessionevent.Columns, sqlgraph.NewFieldSpec(practicesessionevent.FieldID, field.TypeInt))
	if ps := pseu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pseu.mutation.SessionID(); ok {
		_spec.SetField(practicesessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := pseu.mutation.Action(); ok {
		_spec.SetField(practicesessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := pseu.mutation.Mode(); ok {
		_spec.SetField(practicesessionevent.FieldMode, field.TypeString, value)
	}
	if pseu.mutation.ModeCleared() {
		_spec.ClearField(practicesessionevent.FieldMode, field.TypeString)
	}
	if value, ok := pseu.mutation.Strategy(); ok {
		_spec.SetField(practicesessionevent.FieldStrategy, field.TypeString, value)
	}
	if pseu.mutation.StrategyCleared() {
		_spec.ClearField(practicesessionevent.FieldStrategy, field.TypeString)
	}
	if value, ok := pseu.mutation.QuestionCount(); ok {
		_spec.SetField(practicesessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := pseu.mutation.AddedQuestionCount(); ok {
		_spec.AddField(practicesessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := pseu.mutation.CorrectCount(); ok {
		_spec.SetField(practicesessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := pseu.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := pseu.mutation.TotalSeconds(); ok {
		_spec.SetField(practicesessionevent.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if value, ok := pseu.mutation.AddedTotalSeconds(); ok {
		_spec.AddField(practicesessionevent.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if value, ok := pseu.mutation.Pace(); ok {
		_spec.SetField(practicesessionevent.FieldPace, field.TypeString, value)
	}
	if pseu.mutation.PaceCleared() {
		_spec.ClearField(practicesessionevent.FieldPace, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, pseu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	pseu.mutation.done = true
	return n, nil
}

// PracticeSessionEventUpdateOne is the builder for updating a single PracticeSessionEvent entity.
type PracticeSessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeSessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (pseuo *PracticeSessionEventUpdateOne) SetSessionID(s string) *PracticeSessionEventUpdateOne {
	pseuo.mutation.SetSessionID(s)
	return pseuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableSessionID(s *string) *PracticeSessionEventUpdateOne {
	if s != nil {
		pseuo.SetSessionID(*s)
	}
	return pseuo
}

// SetAction sets the "action" field.
func (pseuo *PracticeSessionEventUpdateOne) SetAction(s string) *PracticeSessionEventUpdateOne {
	pseuo.mutation.SetAction(s)
	return pseuo
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableAction(s *string) *PracticeSessionEventUpdateOne {
	if s != nil {
		pseuo.SetAction(*s)
	}
	return pseuo
}

// SetMode sets the "mode" field.
func (pseuo *PracticeSessionEventUpdateOne) SetMode(s string) *PracticeSessionEventUpdateOne {
	pseuo.mutation.SetMode(s)
	return pseuo
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableMode(s *string) *PracticeSessionEventUpdateOne {
	if s != nil {
		pseuo.SetMode(*s)
	}
	return pseuo
}

// ClearMode clears the value of the "mode" field.
func (pseuo *PracticeSessionEventUpdateOne) ClearMode() *PracticeSessionEventUpdateOne {
	pseuo.mutation.ClearMode()
	return pseuo
}

// SetStrategy sets the "strategy" field.
func (pseuo *PracticeSessionEventUpdateOne) SetStrategy(s string) *PracticeSessionEventUpdateOne {
	pseuo.mutation.SetStrategy(s)
	return pseuo
}

// SetNillableStrategy sets the "strategy" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableStrategy(s *string) *PracticeSessionEventUpdateOne {
	if s != nil {
		pseuo.SetStrategy(*s)
	}
	return pseuo
}

// ClearStrategy clears the value of the "strategy" field.
func (pseuo *PracticeSessionEventUpdateOne) ClearStrategy() *PracticeSessionEventUpdateOne {
	pseuo.mutation.ClearStrategy()
	return pseuo
}

// SetQuestionCount sets the "question_count" field.
func (pseuo *PracticeSessionEventUpdateOne) SetQuestionCount(i int) *PracticeSessionEventUpdateOne {
	pseuo.mutation.ResetQuestionCount()
	pseuo.mutation.SetQuestionCount(i)
	return pseuo
}

// SetNillableQuestionCount sets the "question_count" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableQuestionCount(i *int) *PracticeSessionEventUpdateOne {
	if i != nil {
		pseuo.SetQuestionCount(*i)
	}
	return pseuo
}

// AddQuestionCount adds i to the "question_count" field.
func (pseuo *PracticeSessionEventUpdateOne) AddQuestionCount(i int) *PracticeSessionEventUpdateOne {
	pseuo.mutation.AddQuestionCount(i)
	return pseuo
}

// SetCorrectCount sets the "correct_count" field.
func (pseuo *PracticeSessionEventUpdateOne) SetCorrectCount(i int) *PracticeSessionEventUpdateOne {
	pseuo.mutation.ResetCorrectCount()
	pseuo.mutation.SetCorrectCount(i)
	return pseuo
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableCorrectCount(i *int) *PracticeSessionEventUpdateOne {
	if i != nil {
		pseuo.SetCorrectCount(*i)
	}
	return pseuo
}

// AddCorrectCount adds i to the "correct_count" field.
func (pseuo *PracticeSessionEventUpdateOne) AddCorrectCount(i int) *PracticeSessionEventUpdateOne {
	pseuo.mutation.AddCorrectCount(i)
	return pseuo
}

// SetTotalSeconds sets the "total_seconds" field.
func (pseuo *PracticeSessionEventUpdateOne) SetTotalSeconds(f float64) *PracticeSessionEventUpdateOne {
	pseuo.mutation.ResetTotalSeconds()
	pseuo.mutation.SetTotalSeconds(f)
	return pseuo
}

// SetNillableTotalSeconds sets the "total_seconds" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillableTotalSeconds(f *float64) *PracticeSessionEventUpdateOne {
	if f != nil {
		pseuo.SetTotalSeconds(*f)
	}
	return pseuo
}

// AddTotalSeconds adds f to the "total_seconds" field.
func (pseuo *PracticeSessionEventUpdateOne) AddTotalSeconds(f float64) *PracticeSessionEventUpdateOne {
	pseuo.mutation.AddTotalSeconds(f)
	return pseuo
}

// SetPace sets the "pace" field.
func (pseuo *PracticeSessionEventUpdateOne) SetPace(s string) *PracticeSessionEventUpdateOne {
	pseuo.mutation.SetPace(s)
	return pseuo
}

// SetNillablePace sets the "pace" field if the given value is not nil.
func (pseuo *PracticeSessionEventUpdateOne) SetNillablePace(s *string) *PracticeSessionEventUpdateOne {
	if s != nil {
		pseuo.SetPace(*s)
	}
	return pseuo
}

// ClearPace clears the value of the "pace" field.
func (pseuo *PracticeSessionEventUpdateOne) ClearPace() *PracticeSessionEventUpdateOne {
	pseuo.mutation.ClearPace()
	return pseuo
}

// Mutation returns the PracticeSessionEventMutation object of the builder.
func (pseuo *PracticeSessionEventUpdateOne) Mutation() *PracticeSessionEventMutation {
	return pseuo.mutation
}

// Where appends a list predicates to the PracticeSessionEventUpdate builder.
func (pseuo *PracticeSessionEventUpdateOne) Where(ps ...predicate.PracticeSessionEvent) *PracticeSessionEventUpdateOne {
	pseuo.mutation.Where(ps...)
	return pseuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (pseuo *PracticeSessionEventUpdateOne) Select(field string, fields ...string) *PracticeSessionEventUpdateOne {
	pseuo.fields = append([]string{field}, fields...)
	return pseuo
}

// Save executes the query and returns the updated PracticeSessionEvent entity.
func (pseuo *PracticeSessionEventUpdateOne) Save(ctx context.Context) (*PracticeSessionEvent, error) {
	return withHooks(ctx, pseuo.sqlSave, pseuo.mutation, pseuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (pseuo *PracticeSessionEventUpdateOne) SaveX(ctx context.Context) *PracticeSessionEvent {
	node, err := pseuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (pseuo *PracticeSessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := pseuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pseuo *PracticeSessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := pseuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (pseuo *PracticeSessionEventUpdateOne) check() error {
	if v, ok := pseuo.mutation.SessionID(); ok {
		if err := practicesessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "PracticeSessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := pseuo.mutation.Action(); ok {
		if err := practicesessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "PracticeSessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (pseuo *PracticeSessionEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeSessionEvent, err error) {
	if err := pseuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicesessionevent.Table, practicesessionevent.Columns, sqlgraph.NewFieldSpec(practicesessionevent.FieldID, field.TypeInt))
	id, ok := pseuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeSessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := pseuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesessionevent.FieldID)
		for _, f := range fields {
			if !practicesessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicesessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := pseuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := pseuo.mutation.SessionID(); ok {
		_spec.SetField(practicesessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := pseuo.mutation.Action(); ok {
		_spec.SetField(practicesessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := pseuo.mutation.Mode(); ok {
		_spec.SetField(practicesessionevent.FieldMode, field.TypeString, value)
	}
	if pseuo.mutation.ModeCleared() {
		_spec.ClearField(practicesessionevent.FieldMode, field.TypeString)
	}
	if value, ok := pseuo.mutation.Strategy(); ok {
		_spec.SetField(practicesessionevent.FieldStrategy, field.TypeString, value)
	}
	if pseuo.mutation.StrategyCleared() {
		_spec.ClearField(practicesessionevent.FieldStrategy, field.TypeString)
	}
	if value, ok := pseuo.mutation.QuestionCount(); ok {
		_spec.SetField(practicesessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := pseuo.mutation.AddedQuestionCount(); ok {
		_spec.AddField(practicesessionevent.FieldQuestionCount, field.TypeInt, value)
	}
	if value, ok := pseuo.mutation.CorrectCount(); ok {
		_spec.SetField(practicesessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := pseuo.mutation.AddedCorrectCount(); ok {
		_spec.AddField(practicesessionevent.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := pseuo.mutation.TotalSeconds(); ok {
		_spec.SetField(practicesessionevent.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if value, ok := pseuo.mutation.AddedTotalSeconds(); ok {
		_spec.AddField(practicesessionevent.FieldTotalSeconds, field.TypeFloat64, value)
	}
	if value, ok := pseuo.mutation.Pace(); ok {
		_spec.SetField(practicesessionevent.FieldPace, field.TypeString, value)
	}
	if pseuo.mutation.PaceCleared() {
		_spec.ClearField(practicesessionevent.FieldPace, field.TypeString)
	}
	_node = &PracticeSessionEvent{config: pseuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, pseuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicesessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	pseuo.mutation.done = true
	return _node, nil
}
