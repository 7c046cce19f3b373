// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/precis/ent/analysisevent"
)

// AnalysisEventCreate is the builder for creating a AnalysisEvent entity.
type AnalysisEventCreate struct {
	config
	mutation *AnalysisEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AnalysisEventCreate) SetSequence(v int64) *AnalysisEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AnalysisEventCreate) SetTimestamp(v time.Time) *AnalysisEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTimestamp(v *time.Time) *AnalysisEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetGrade sets the "grade" field.
func (_c *AnalysisEventCreate) SetGrade(v string) *AnalysisEventCreate {
	_c.mutation.SetGrade(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *AnalysisEventCreate) SetTrack(v string) *AnalysisEventCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableTrack(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetTrack(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *AnalysisEventCreate) SetSourceType(v string) *AnalysisEventCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableSourceType(v *string) *AnalysisEventCreate {
	if v != nil {
		_c.SetSourceType(*v)
	}
	return _c
}

// SetPassageWords sets the "passage_words" field.
func (_c *AnalysisEventCreate) SetPassageWords(v int) *AnalysisEventCreate {
	_c.mutation.SetPassageWords(v)
	return _c
}

// SetNillablePassageWords sets the "passage_words" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillablePassageWords(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetPassageWords(*v)
	}
	return _c
}

// SetSummaryWords sets the "summary_words" field.
func (_c *AnalysisEventCreate) SetSummaryWords(v int) *AnalysisEventCreate {
	_c.mutation.SetSummaryWords(v)
	return _c
}

// SetNillableSummaryWords sets the "summary_words" field if the given value is not nil.
func (_c *AnalysisEventCreate) SetNillableSummaryWords(v *int) *AnalysisEventCreate {
	if v != nil {
		_c.SetSummaryWords(*v)
	}
	return _c
}

// SetTotalUniqueWords sets the "total_unique_words" field.
func (_c *AnalysisEventCreate) SetTotalUniqueWords(v int) *AnalysisEventCreate {
	_c.mutation.SetTotalUniqueWords(v)
	return _c
}

// SetTargetWords sets the "target_words" field.
func (_c *AnalysisEventCreate) SetTargetWords(v int) *AnalysisEventCreate {
	_c.mutation.SetTargetWords(v)
	return _c
}

// SetTargetRatio sets the "target_ratio" field.
func (_c *AnalysisEventCreate) SetTargetRatio(v float64) *AnalysisEventCreate {
	_c.mutation.SetTargetRatio(v)
	return _c
}

// SetEraARatio sets the "era_a_ratio" field.
func (_c *AnalysisEventCreate) SetEraARatio(v float64) *AnalysisEventCreate {
	_c.mutation.SetEraARatio(v)
	return _c
}

// SetEraBRatio sets the "era_b_ratio" field.
func (_c *AnalysisEventCreate) SetEraBRatio(v float64) *AnalysisEventCreate {
	_c.mutation.SetEraBRatio(v)
	return _c
}

// SetDegraded sets the "degraded" field.
func (_c *AnalysisEventCreate) SetDegraded(v bool) *AnalysisEventCreate {
	_c.mutation.SetDegraded(v)
	return _c
}

// SetKeywords sets the "keywords" field.
func (_c *AnalysisEventCreate) SetKeywords(v []string) *AnalysisEventCreate {
	_c.mutation.SetKeywords(v)
	return _c
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_c *AnalysisEventCreate) Mutation() *AnalysisEventMutation {
	return _c.mutation
}

// Save creates the AnalysisEvent in the database.
func (_c *AnalysisEventCreate) Save(ctx context.Context) (*AnalysisEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisEventCreate) SaveX(ctx context.Context) *AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := analysisevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Track(); !ok {
		v := analysisevent.DefaultTrack
		_c.mutation.SetTrack(v)
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		v := analysisevent.DefaultSourceType
		_c.mutation.SetSourceType(v)
	}
	if _, ok := _c.mutation.PassageWords(); !ok {
		v := analysisevent.DefaultPassageWords
		_c.mutation.SetPassageWords(v)
	}
	if _, ok := _c.mutation.SummaryWords(); !ok {
		v := analysisevent.DefaultSummaryWords
		_c.mutation.SetSummaryWords(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AnalysisEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AnalysisEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Grade(); !ok {
		return &ValidationError{Name: "grade", err: errors.New(`ent: missing required field "AnalysisEvent.grade"`)}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "AnalysisEvent.track"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "AnalysisEvent.source_type"`)}
	}
	if _, ok := _c.mutation.PassageWords(); !ok {
		return &ValidationError{Name: "passage_words", err: errors.New(`ent: missing required field "AnalysisEvent.passage_words"`)}
	}
	if _, ok := _c.mutation.SummaryWords(); !ok {
		return &ValidationError{Name: "summary_words", err: errors.New(`ent: missing required field "AnalysisEvent.summary_words"`)}
	}
	if _, ok := _c.mutation.TotalUniqueWords(); !ok {
		return &ValidationError{Name: "total_unique_words", err: errors.New(`ent: missing required field "AnalysisEvent.total_unique_words"`)}
	}
	if _, ok := _c.mutation.TargetWords(); !ok {
		return &ValidationError{Name: "target_words", err: errors.New(`ent: missing required field "AnalysisEvent.target_words"`)}
	}
	if _, ok := _c.mutation.TargetRatio(); !ok {
		return &ValidationError{Name: "target_ratio", err: errors.New(`ent: missing required field "AnalysisEvent.target_ratio"`)}
	}
	if _, ok := _c.mutation.EraARatio(); !ok {
		return &ValidationError{Name: "era_a_ratio", err: errors.New(`ent: missing required field "AnalysisEvent.era_a_ratio"`)}
	}
	if _, ok := _c.mutation.EraBRatio(); !ok {
		return &ValidationError{Name: "era_b_ratio", err: errors.New(`ent: missing required field "AnalysisEvent.era_b_ratio"`)}
	}
	if _, ok := _c.mutation.Degraded(); !ok {
		return &ValidationError{Name: "degraded", err: errors.New(`ent: missing required field "AnalysisEvent.degraded"`)}
	}
	return nil
}

func (_c *AnalysisEventCreate) sqlSave(ctx context.Context) (*AnalysisEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisEventCreate) createSpec() (*AnalysisEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisevent.Table, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(analysisevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(analysisevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Grade(); ok {
		_spec.SetField(analysisevent.FieldGrade, field.TypeString, value)
		_node.Grade = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(analysisevent.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(analysisevent.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.PassageWords(); ok {
		_spec.SetField(analysisevent.FieldPassageWords, field.TypeInt, value)
		_node.PassageWords = value
	}
	if value, ok := _c.mutation.SummaryWords(); ok {
		_spec.SetField(analysisevent.FieldSummaryWords, field.TypeInt, value)
		_node.SummaryWords = value
	}
	if value, ok := _c.mutation.TotalUniqueWords(); ok {
		_spec.SetField(analysisevent.FieldTotalUniqueWords, field.TypeInt, value)
		_node.TotalUniqueWords = value
	}
	if value, ok := _c.mutation.TargetWords(); ok {
		_spec.SetField(analysisevent.FieldTargetWords, field.TypeInt, value)
		_node.TargetWords = value
	}
	if value, ok := _c.mutation.TargetRatio(); ok {
		_spec.SetField(analysisevent.FieldTargetRatio, field.TypeFloat64, value)
		_node.TargetRatio = value
	}
	if value, ok := _c.mutation.EraARatio(); ok {
		_spec.SetField(analysisevent.FieldEraARatio, field.TypeFloat64, value)
		_node.EraARatio = value
	}
	if value, ok := _c.mutation.EraBRatio(); ok {
		_spec.SetField(analysisevent.FieldEraBRatio, field.TypeFloat64, value)
		_node.EraBRatio = value
	}
	if value, ok := _c.mutation.Degraded(); ok {
		_spec.SetField(analysisevent.FieldDegraded, field.TypeBool, value)
		_node.Degraded = value
	}
	if value, ok := _c.mutation.Keywords(); ok {
		_spec.SetField(analysisevent.FieldKeywords, field.TypeJSON, value)
		_node.Keywords = value
	}
	return _node, _spec
}

// AnalysisEventCreateBulk is the builder for creating many AnalysisEvent entities in bulk.
type AnalysisEventCreateBulk struct {
	config
	err      error
	builders []*AnalysisEventCreate
}

// Save creates the AnalysisEvent entities in the database.
func (_c *AnalysisEventCreateBulk) Save(ctx context.Context) ([]*AnalysisEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisEventMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) SaveX(ctx context.Context) []*AnalysisEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
