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
	"github.com/abhisek/precis/ent/analysisevent"
	"github.com/abhisek/precis/ent/predicate"
)

// AnalysisEventUpdate is the builder for updating AnalysisEvent entities.
type AnalysisEventUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdate) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGrade sets the "grade" field.
func (_u *AnalysisEventUpdate) SetGrade(v string) *AnalysisEventUpdate {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableGrade(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AnalysisEventUpdate) SetTrack(v string) *AnalysisEventUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTrack(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *AnalysisEventUpdate) SetSourceType(v string) *AnalysisEventUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSourceType(v *string) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetPassageWords sets the "passage_words" field.
func (_u *AnalysisEventUpdate) SetPassageWords(v int) *AnalysisEventUpdate {
	_u.mutation.ResetPassageWords()
	_u.mutation.SetPassageWords(v)
	return _u
}

// SetNillablePassageWords sets the "passage_words" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillablePassageWords(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetPassageWords(*v)
	}
	return _u
}

// AddPassageWords adds value to the "passage_words" field.
func (_u *AnalysisEventUpdate) AddPassageWords(v int) *AnalysisEventUpdate {
	_u.mutation.AddPassageWords(v)
	return _u
}

// SetSummaryWords sets the "summary_words" field.
func (_u *AnalysisEventUpdate) SetSummaryWords(v int) *AnalysisEventUpdate {
	_u.mutation.ResetSummaryWords()
	_u.mutation.SetSummaryWords(v)
	return _u
}

// SetNillableSummaryWords sets the "summary_words" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableSummaryWords(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetSummaryWords(*v)
	}
	return _u
}

// AddSummaryWords adds value to the "summary_words" field.
func (_u *AnalysisEventUpdate) AddSummaryWords(v int) *AnalysisEventUpdate {
	_u.mutation.AddSummaryWords(v)
	return _u
}

// SetTotalUniqueWords sets the "total_unique_words" field.
func (_u *AnalysisEventUpdate) SetTotalUniqueWords(v int) *AnalysisEventUpdate {
	_u.mutation.ResetTotalUniqueWords()
	_u.mutation.SetTotalUniqueWords(v)
	return _u
}

// SetNillableTotalUniqueWords sets the "total_unique_words" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTotalUniqueWords(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTotalUniqueWords(*v)
	}
	return _u
}

// AddTotalUniqueWords adds value to the "total_unique_words" field.
func (_u *AnalysisEventUpdate) AddTotalUniqueWords(v int) *AnalysisEventUpdate {
	_u.mutation.AddTotalUniqueWords(v)
	return _u
}

// SetTargetWords sets the "target_words" field.
func (_u *AnalysisEventUpdate) SetTargetWords(v int) *AnalysisEventUpdate {
	_u.mutation.ResetTargetWords()
	_u.mutation.SetTargetWords(v)
	return _u
}

// SetNillableTargetWords sets the "target_words" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTargetWords(v *int) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTargetWords(*v)
	}
	return _u
}

// AddTargetWords adds value to the "target_words" field.
func (_u *AnalysisEventUpdate) AddTargetWords(v int) *AnalysisEventUpdate {
	_u.mutation.AddTargetWords(v)
	return _u
}

// SetTargetRatio sets the "target_ratio" field.
func (_u *AnalysisEventUpdate) SetTargetRatio(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetTargetRatio()
	_u.mutation.SetTargetRatio(v)
	return _u
}

// SetNillableTargetRatio sets the "target_ratio" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableTargetRatio(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetTargetRatio(*v)
	}
	return _u
}

// AddTargetRatio adds value to the "target_ratio" field.
func (_u *AnalysisEventUpdate) AddTargetRatio(v float64) *AnalysisEventUpdate {
	_u.mutation.AddTargetRatio(v)
	return _u
}

// SetEraARatio sets the "era_a_ratio" field.
func (_u *AnalysisEventUpdate) SetEraARatio(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetEraARatio()
	_u.mutation.SetEraARatio(v)
	return _u
}

// SetNillableEraARatio sets the "era_a_ratio" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableEraARatio(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetEraARatio(*v)
	}
	return _u
}

// AddEraARatio adds value to the "era_a_ratio" field.
func (_u *AnalysisEventUpdate) AddEraARatio(v float64) *AnalysisEventUpdate {
	_u.mutation.AddEraARatio(v)
	return _u
}

// SetEraBRatio sets the "era_b_ratio" field.
func (_u *AnalysisEventUpdate) SetEraBRatio(v float64) *AnalysisEventUpdate {
	_u.mutation.ResetEraBRatio()
	_u.mutation.SetEraBRatio(v)
	return _u
}

// SetNillableEraBRatio sets the "era_b_ratio" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableEraBRatio(v *float64) *AnalysisEventUpdate {
	if v != nil {
		_u.SetEraBRatio(*v)
	}
	return _u
}

// AddEraBRatio adds value to the "era_b_ratio" field.
func (_u *AnalysisEventUpdate) AddEraBRatio(v float64) *AnalysisEventUpdate {
	_u.mutation.AddEraBRatio(v)
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *AnalysisEventUpdate) SetDegraded(v bool) *AnalysisEventUpdate {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *AnalysisEventUpdate) SetNillableDegraded(v *bool) *AnalysisEventUpdate {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *AnalysisEventUpdate) SetKeywords(v []string) *AnalysisEventUpdate {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *AnalysisEventUpdate) AppendKeywords(v []string) *AnalysisEventUpdate {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *AnalysisEventUpdate) ClearKeywords() *AnalysisEventUpdate {
	_u.mutation.ClearKeywords()
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdate) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(analysisevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(analysisevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(analysisevent.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassageWords(); ok {
		_spec.SetField(analysisevent.FieldPassageWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassageWords(); ok {
		_spec.AddField(analysisevent.FieldPassageWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SummaryWords(); ok {
		_spec.SetField(analysisevent.FieldSummaryWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryWords(); ok {
		_spec.AddField(analysisevent.FieldSummaryWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalUniqueWords(); ok {
		_spec.SetField(analysisevent.FieldTotalUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUniqueWords(); ok {
		_spec.AddField(analysisevent.FieldTotalUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetWords(); ok {
		_spec.SetField(analysisevent.FieldTargetWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetWords(); ok {
		_spec.AddField(analysisevent.FieldTargetWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetRatio(); ok {
		_spec.SetField(analysisevent.FieldTargetRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetRatio(); ok {
		_spec.AddField(analysisevent.FieldTargetRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EraARatio(); ok {
		_spec.SetField(analysisevent.FieldEraARatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEraARatio(); ok {
		_spec.AddField(analysisevent.FieldEraARatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EraBRatio(); ok {
		_spec.SetField(analysisevent.FieldEraBRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEraBRatio(); ok {
		_spec.AddField(analysisevent.FieldEraBRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(analysisevent.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(analysisevent.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(analysisevent.FieldKeywords, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisEventUpdateOne is the builder for updating a single AnalysisEvent entity.
type AnalysisEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisEventMutation
}

// SetGrade sets the "grade" field.
func (_u *AnalysisEventUpdateOne) SetGrade(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableGrade(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *AnalysisEventUpdateOne) SetTrack(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTrack(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *AnalysisEventUpdateOne) SetSourceType(v string) *AnalysisEventUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSourceType(v *string) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetPassageWords sets the "passage_words" field.
func (_u *AnalysisEventUpdateOne) SetPassageWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetPassageWords()
	_u.mutation.SetPassageWords(v)
	return _u
}

// SetNillablePassageWords sets the "passage_words" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillablePassageWords(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetPassageWords(*v)
	}
	return _u
}

// AddPassageWords adds value to the "passage_words" field.
func (_u *AnalysisEventUpdateOne) AddPassageWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddPassageWords(v)
	return _u
}

// SetSummaryWords sets the "summary_words" field.
func (_u *AnalysisEventUpdateOne) SetSummaryWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetSummaryWords()
	_u.mutation.SetSummaryWords(v)
	return _u
}

// SetNillableSummaryWords sets the "summary_words" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableSummaryWords(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetSummaryWords(*v)
	}
	return _u
}

// AddSummaryWords adds value to the "summary_words" field.
func (_u *AnalysisEventUpdateOne) AddSummaryWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddSummaryWords(v)
	return _u
}

// SetTotalUniqueWords sets the "total_unique_words" field.
func (_u *AnalysisEventUpdateOne) SetTotalUniqueWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetTotalUniqueWords()
	_u.mutation.SetTotalUniqueWords(v)
	return _u
}

// SetNillableTotalUniqueWords sets the "total_unique_words" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTotalUniqueWords(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTotalUniqueWords(*v)
	}
	return _u
}

// AddTotalUniqueWords adds value to the "total_unique_words" field.
func (_u *AnalysisEventUpdateOne) AddTotalUniqueWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddTotalUniqueWords(v)
	return _u
}

// SetTargetWords sets the "target_words" field.
func (_u *AnalysisEventUpdateOne) SetTargetWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.ResetTargetWords()
	_u.mutation.SetTargetWords(v)
	return _u
}

// SetNillableTargetWords sets the "target_words" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTargetWords(v *int) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTargetWords(*v)
	}
	return _u
}

// AddTargetWords adds value to the "target_words" field.
func (_u *AnalysisEventUpdateOne) AddTargetWords(v int) *AnalysisEventUpdateOne {
	_u.mutation.AddTargetWords(v)
	return _u
}

// SetTargetRatio sets the "target_ratio" field.
func (_u *AnalysisEventUpdateOne) SetTargetRatio(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetTargetRatio()
	_u.mutation.SetTargetRatio(v)
	return _u
}

// SetNillableTargetRatio sets the "target_ratio" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableTargetRatio(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetTargetRatio(*v)
	}
	return _u
}

// AddTargetRatio adds value to the "target_ratio" field.
func (_u *AnalysisEventUpdateOne) AddTargetRatio(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddTargetRatio(v)
	return _u
}

// SetEraARatio sets the "era_a_ratio" field.
func (_u *AnalysisEventUpdateOne) SetEraARatio(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetEraARatio()
	_u.mutation.SetEraARatio(v)
	return _u
}

// SetNillableEraARatio sets the "era_a_ratio" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableEraARatio(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetEraARatio(*v)
	}
	return _u
}

// AddEraARatio adds value to the "era_a_ratio" field.
func (_u *AnalysisEventUpdateOne) AddEraARatio(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddEraARatio(v)
	return _u
}

// SetEraBRatio sets the "era_b_ratio" field.
func (_u *AnalysisEventUpdateOne) SetEraBRatio(v float64) *AnalysisEventUpdateOne {
	_u.mutation.ResetEraBRatio()
	_u.mutation.SetEraBRatio(v)
	return _u
}

// SetNillableEraBRatio sets the "era_b_ratio" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableEraBRatio(v *float64) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetEraBRatio(*v)
	}
	return _u
}

// AddEraBRatio adds value to the "era_b_ratio" field.
func (_u *AnalysisEventUpdateOne) AddEraBRatio(v float64) *AnalysisEventUpdateOne {
	_u.mutation.AddEraBRatio(v)
	return _u
}

// SetDegraded sets the "degraded" field.
func (_u *AnalysisEventUpdateOne) SetDegraded(v bool) *AnalysisEventUpdateOne {
	_u.mutation.SetDegraded(v)
	return _u
}

// SetNillableDegraded sets the "degraded" field if the given value is not nil.
func (_u *AnalysisEventUpdateOne) SetNillableDegraded(v *bool) *AnalysisEventUpdateOne {
	if v != nil {
		_u.SetDegraded(*v)
	}
	return _u
}

// SetKeywords sets the "keywords" field.
func (_u *AnalysisEventUpdateOne) SetKeywords(v []string) *AnalysisEventUpdateOne {
	_u.mutation.SetKeywords(v)
	return _u
}

// AppendKeywords appends value to the "keywords" field.
func (_u *AnalysisEventUpdateOne) AppendKeywords(v []string) *AnalysisEventUpdateOne {
	_u.mutation.AppendKeywords(v)
	return _u
}

// ClearKeywords clears the value of the "keywords" field.
func (_u *AnalysisEventUpdateOne) ClearKeywords() *AnalysisEventUpdateOne {
	_u.mutation.ClearKeywords()
	return _u
}

// Mutation returns the AnalysisEventMutation object of the builder.
func (_u *AnalysisEventUpdateOne) Mutation() *AnalysisEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisEventUpdate builder.
func (_u *AnalysisEventUpdateOne) Where(ps ...predicate.AnalysisEvent) *AnalysisEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisEventUpdateOne) Select(field string, fields ...string) *AnalysisEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisEvent entity.
func (_u *AnalysisEventUpdateOne) Save(ctx context.Context) (*AnalysisEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) SaveX(ctx context.Context) *AnalysisEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *AnalysisEventUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(analysisevent.Table, analysisevent.Columns, sqlgraph.NewFieldSpec(analysisevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisevent.FieldID)
		for _, f := range fields {
			if !analysisevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(analysisevent.FieldGrade, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(analysisevent.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(analysisevent.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PassageWords(); ok {
		_spec.SetField(analysisevent.FieldPassageWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPassageWords(); ok {
		_spec.AddField(analysisevent.FieldPassageWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SummaryWords(); ok {
		_spec.SetField(analysisevent.FieldSummaryWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSummaryWords(); ok {
		_spec.AddField(analysisevent.FieldSummaryWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalUniqueWords(); ok {
		_spec.SetField(analysisevent.FieldTotalUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalUniqueWords(); ok {
		_spec.AddField(analysisevent.FieldTotalUniqueWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetWords(); ok {
		_spec.SetField(analysisevent.FieldTargetWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTargetWords(); ok {
		_spec.AddField(analysisevent.FieldTargetWords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TargetRatio(); ok {
		_spec.SetField(analysisevent.FieldTargetRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTargetRatio(); ok {
		_spec.AddField(analysisevent.FieldTargetRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EraARatio(); ok {
		_spec.SetField(analysisevent.FieldEraARatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEraARatio(); ok {
		_spec.AddField(analysisevent.FieldEraARatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EraBRatio(); ok {
		_spec.SetField(analysisevent.FieldEraBRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEraBRatio(); ok {
		_spec.AddField(analysisevent.FieldEraBRatio, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Degraded(); ok {
		_spec.SetField(analysisevent.FieldDegraded, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Keywords(); ok {
		_spec.SetField(analysisevent.FieldKeywords, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedKeywords(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisevent.FieldKeywords, value)
		})
	}
	if _u.mutation.KeywordsCleared() {
		_spec.ClearField(analysisevent.FieldKeywords, field.TypeJSON)
	}
	_node = &AnalysisEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
