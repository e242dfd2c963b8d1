// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/reasonprep/ent/practicesessionevent"
	"github.com/abhisek/reasonprep/ent/predicate"
)

// PracticeSessionEventDelete is the builder for deleting a PracticeSessionEvent entity.
type PracticeSessionEventDelete struct {
	config
	hooks    []Hook
	mutation *PracticeSessionEventMutation
}

// Where appends a list predicates to the PracticeSessionEventDelete builder.
func (psed *PracticeSessionEventDelete) Where(ps ...predicate.PracticeSessionEvent) *PracticeSessionEventDelete {
	psed.mutation.Where(ps...)
	return psed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (psed *PracticeSessionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, psed.sqlExec, psed.mutation, psed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (psed *PracticeSessionEventDelete) ExecX(ctx context.Context) int {
	n, err := psed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (psed *PracticeSessionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(practicesessionevent.Table, sqlgraph.NewFieldSpec(practicesessionevent.FieldID, field.TypeInt))
	if ps := psed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, psed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	psed.mutation.done = true
	return affected, err
}

// PracticeSessionEventDeleteOne is the builder for deleting a single PracticeSessionEvent entity.
type PracticeSessionEventDeleteOne struct {
	psed *PracticeSessionEventDelete
}

// Where appends a list predicates to the PracticeSessionEventDelete builder.
func (psedo *PracticeSessionEventDeleteOne) Where(ps ...predicate.PracticeSessionEvent) *PracticeSessionEventDeleteOne {
	psedo.psed.mutation.Where(ps...)
	return psedo
}

// Exec executes the deletion query.
func (psedo *PracticeSessionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := psedo.psed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{practicesessionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (psedo *PracticeSessionEventDeleteOne) ExecX(ctx context.Context) {
	if err := psedo.Exec(ctx); err != nil {
		panic(err)
	}
}
