// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/reasonprep/ent/practicesessionevent"
	"github.com/abhisek/reasonprep/ent/predicate"
)

// PracticeSessionEventQuery is the builder for querying PracticeSessionEvent entities.
type PracticeSessionEventQuery struct {
	config
	ctx        *QueryContext
	order      []practicesessionevent.OrderOption
	inters     []Interceptor
	predicates []predicate.PracticeSessionEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PracticeSessionEventQuery builder.
func (pseq *PracticeSessionEventQuery) Where(ps ...predicate.PracticeSessionEvent) *PracticeSessionEventQuery {
	pseq.predicates = append(pseq.predicates, ps...)
	return pseq
}

// Limit the number of records to be returned by this query.
func (pseq *PracticeSessionEventQuery) Limit(limit int) *PracticeSessionEventQuery {
	pseq.ctx.Limit = &limit
	return pseq
}

// Offset to start from.
func (pseq *PracticeSessionEventQuery) Offset(offset int) *PracticeSessionEventQuery {
	pseq.ctx.Offset = &offset
	return pseq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (pseq *PracticeSessionEventQuery) Unique(unique bool) *PracticeSessionEventQuery {
	pseq.ctx.Unique = &unique
	return pseq
}

// Order specifies how the records should be ordered.
func (pseq *PracticeSessionEventQuery) Order(o ...practicesessionevent.OrderOption) *PracticeSessionEventQuery {
	pseq.order = append(pseq.order, o...)
	return pseq
}

// First returns the first PracticeSessionEvent entity from the query.
// Returns a *NotFoundError when no PracticeSessionEvent was found.
func (pseq *PracticeSessionEventQuery) First(ctx context.Context) (*PracticeSessionEvent, error) {
	nodes, err := pseq.Limit(1).All(setContextOp(ctx, pseq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{practicesessionevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) FirstX(ctx context.Context) *PracticeSessionEvent {
	node, err := pseq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PracticeSessionEvent ID from the query.
// Returns a *NotFoundError when no PracticeSessionEvent ID was found.
func (pseq *PracticeSessionEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = pseq.Limit(1).IDs(setContextOp(ctx, pseq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{practicesessionevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) FirstIDX(ctx context.Context) int {
	id, err := pseq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PracticeSessionEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PracticeSessionEvent entity is found.
// Returns a *NotFoundError when no PracticeSessionEvent entities are found.
func (pseq *PracticeSessionEventQuery) Only(ctx context.Context) (*PracticeSessionEvent, error) {
	nodes, err := pseq.Limit(2).All(setContextOp(ctx, pseq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{practicesessionevent.Label}
	default:
		return nil, &NotSingularError{practicesessionevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) OnlyX(ctx context.Context) *PracticeSessionEvent {
	node, err := pseq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PracticeSessionEvent ID in the query.
// Returns a *NotSingularError when more than one PracticeSessionEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (pseq *PracticeSessionEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = pseq.Limit(2).IDs(setContextOp(ctx, pseq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{practicesessionevent.Label}
	default:
		err = &NotSingularError{practicesessionevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := pseq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PracticeSessionEvents.
func (pseq *PracticeSessionEventQuery) All(ctx context.Context) ([]*PracticeSessionEvent, error) {
	ctx = setContextOp(ctx, pseq.ctx, ent.OpQueryAll)
	if err := pseq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PracticeSessionEvent, *PracticeSessionEventQuery]()
	return withInterceptors[[]*PracticeSessionEvent](ctx, pseq, qr, pseq.inters)
}

// AllX is like All, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) AllX(ctx context.Context) []*PracticeSessionEvent {
	nodes, err := pseq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PracticeSessionEvent IDs.
func (pseq *PracticeSessionEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if pseq.ctx.Unique == nil && pseq.path != nil {
		pseq.Unique(true)
	}
	ctx = setContextOp(ctx, pseq.ctx, ent.OpQueryIDs)
	if err = pseq.Select(practicesessionevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) IDsX(ctx context.Context) []int {
	ids, err := pseq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (pseq *PracticeSessionEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, pseq.ctx, ent.OpQueryCount)
	if err := pseq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, pseq, querierCount[*PracticeSessionEventQuery](), pseq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) CountX(ctx context.Context) int {
	count, err := pseq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (pseq *PracticeSessionEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, pseq.ctx, ent.OpQueryExist)
	switch _, err := pseq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (pseq *PracticeSessionEventQuery) ExistX(ctx context.Context) bool {
	exist, err := pseq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PracticeSessionEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (pseq *PracticeSessionEventQuery) Clone() *PracticeSessionEventQuery {
	if pseq == nil {
		return nil
	}
	return &PracticeSessionEventQuery{
		config:     pseq.config,
		ctx:        pseq.ctx.Clone(),
		order:      append([]practicesessionevent.OrderOption{}, pseq.order...),
		inters:     append([]Interceptor{}, pseq.inters...),
		predicates: append([]predicate.PracticeSessionEvent{}, pseq.predicates...),
		// clone intermediate query.
		sql:  pseq.sql.Clone(),
		path: pseq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PracticeSessionEvent.Query().
//		GroupBy(practicesessionevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (pseq *PracticeSessionEventQuery) GroupBy(field string, fields ...string) *PracticeSessionEventGroupBy {
	pseq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PracticeSessionEventGroupBy{build: pseq}
	grbuild.flds = &pseq.ctx.Fields
	grbuild.label = practicesessionevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.PracticeSessionEvent.Query().
//		Select(practicesessionevent.FieldSequence).
//		Scan(ctx, &v)
func (pseq *PracticeSessionEventQuery) Select(fields ...string) *PracticeSessionEventSelect {
	pseq.ctx.Fields = append(pseq.ctx.Fields, fields...)
	sbuild := &PracticeSessionEventSelect{PracticeSessionEventQuery: pseq}
	sbuild.label = practicesessionevent.Label
	sbuild.flds, sbuild.scan = &pseq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PracticeSessionEventSelect configured with the given aggregations.
func (pseq *PracticeSessionEventQuery) Aggregate(fns ...AggregateFunc) *PracticeSessionEventSelect {
	return pseq.Select().Aggregate(fns...)
}

func (pseq *PracticeSessionEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range pseq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, pseq); err != nil {
				return err
			}
		}
	}
	for _, f := range pseq.ctx.Fields {
		if !practicesessionevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if pseq.path != nil {
		prev, err := pseq.path(ctx)
		if err != nil {
			return err
		}
		pseq.sql = prev
	}
	return nil
}

func (pseq *PracticeSessionEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PracticeSessionEvent, error) {
	var (
		nodes = []*PracticeSessionEvent{}
		_spec = pseq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PracticeSessionEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PracticeSessionEvent{config: pseq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, pseq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (pseq *PracticeSessionEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := pseq.querySpec()
	_spec.Node.Columns = pseq.ctx.Fields
	if len(pseq.ctx.Fields) > 0 {
		_spec.Unique = pseq.ctx.Unique != nil && *pseq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, pseq.driver, _spec)
}

func (pseq *PracticeSessionEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(practicesessionevent.Table, practicesessionevent.Columns, sqlgraph.NewFieldSpec(practicesessionevent.FieldID, field.TypeInt))
	_spec.From = pseq.sql
	if unique := pseq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if pseq.path != nil {
		_spec.Unique = true
	}
	if fields := pseq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicesessionevent.FieldID)
		for i := range fields {
			if fields[i] != practicesessionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := pseq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := pseq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := pseq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := pseq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (pseq *PracticeSessionEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(pseq.driver.Dialect())
	t1 := builder.Table(practicesessionevent.Table)
	columns := pseq.ctx.Fields
	if len(columns) == 0 {
		columns = practicesessionevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if pseq.sql != nil {
		selector = pseq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if pseq.ctx.Unique != nil && *pseq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range pseq.predicates {
		p(selector)
	}
	for _, p := range pseq.order {
		p(selector)
	}
	if offset := pseq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := pseq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PracticeSessionEventGroupBy is the group-by builder for PracticeSessionEvent entities.
type PracticeSessionEventGroupBy struct {
	selector
	build *PracticeSessionEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (psegb *PracticeSessionEventGroupBy) Aggregate(fns ...AggregateFunc) *PracticeSessionEventGroupBy {
	psegb.fns = append(psegb.fns, fns...)
	return psegb
}

// Scan applies the selector query and scans the result into the given value.
func (psegb *PracticeSessionEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, psegb.build.ctx, ent.OpQueryGroupBy)
	if err := psegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PracticeSessionEventQuery, *PracticeSessionEventGroupBy](ctx, psegb.build, psegb, psegb.build.inters, v)
}

func (psegb *PracticeSessionEventGroupBy) sqlScan(ctx context.Context, root *PracticeSessionEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(psegb.fns))
	for _, fn := range psegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*psegb.flds)+len(psegb.fns))
		for _, f := range *psegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*psegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := psegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PracticeSessionEventSelect is the builder for selecting fields of PracticeSessionEvent entities.
type PracticeSessionEventSelect struct {
	*PracticeSessionEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pses *PracticeSessionEventSelect) Aggregate(fns ...AggregateFunc) *PracticeSessionEventSelect {
	pses.fns = append(pses.fns, fns...)
	return pses
}

// Scan applies the selector query and scans the result into the given value.
func (pses *PracticeSessionEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pses.ctx, ent.OpQuerySelect)
	if err := pses.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PracticeSessionEventQuery, *PracticeSessionEventSelect](ctx, pses.PracticeSessionEventQuery, pses, pses.inters, v)
}

func (pses *PracticeSessionEventSelect) sqlScan(ctx context.Context, root *PracticeSessionEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pses.fns))
	for _, fn := range pses.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pses.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pses.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
