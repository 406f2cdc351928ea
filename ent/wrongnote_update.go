// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daneoapp/daneo/ent/predicate"
	"github.com/daneoapp/daneo/ent/wrongnote"
)

// WrongNoteUpdate is the builder for updating WrongNote entities.
type WrongNoteUpdate struct {
	config
	hooks    []Hook
	mutation *WrongNoteMutation
}

// Where appends a list predicates to the WrongNoteUpdate builder.
func (_u *WrongNoteUpdate) Where(ps ...predicate.WrongNote) *WrongNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWord sets the "word" field.
func (_u *WrongNoteUpdate) SetWord(v string) *WrongNoteUpdate {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *WrongNoteUpdate) SetNillableWord(v *string) *WrongNoteUpdate {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *WrongNoteUpdate) SetSentence(v string) *WrongNoteUpdate {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *WrongNoteUpdate) SetNillableSentence(v *string) *WrongNoteUpdate {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *WrongNoteUpdate) SetMeaning(v string) *WrongNoteUpdate {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *WrongNoteUpdate) SetNillableMeaning(v *string) *WrongNoteUpdate {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *WrongNoteUpdate) SetUserAnswer(v string) *WrongNoteUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *WrongNoteUpdate) SetNillableUserAnswer(v *string) *WrongNoteUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *WrongNoteUpdate) SetCorrectAnswer(v string) *WrongNoteUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *WrongNoteUpdate) SetNillableCorrectAnswer(v *string) *WrongNoteUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *WrongNoteUpdate) SetQuizType(v string) *WrongNoteUpdate {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *WrongNoteUpdate) SetNillableQuizType(v *string) *WrongNoteUpdate {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetNotedAt sets the "noted_at" field.
func (_u *WrongNoteUpdate) SetNotedAt(v time.Time) *WrongNoteUpdate {
	_u.mutation.SetNotedAt(v)
	return _u
}

// Mutation returns the WrongNoteMutation object of the builder.
func (_u *WrongNoteUpdate) Mutation() *WrongNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WrongNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WrongNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WrongNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WrongNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WrongNoteUpdate) defaults() {
	if _, ok := _u.mutation.NotedAt(); !ok {
		v := wrongnote.UpdateDefaultNotedAt()
		_u.mutation.SetNotedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WrongNoteUpdate) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := wrongnote.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "WrongNote.word": %w`, err)}
		}
	}
	return nil
}

func (_u *WrongNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wrongnote.Table, wrongnote.Columns, sqlgraph.NewFieldSpec(wrongnote.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(wrongnote.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(wrongnote.FieldSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(wrongnote.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(wrongnote.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(wrongnote.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(wrongnote.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotedAt(); ok {
		_spec.SetField(wrongnote.FieldNotedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wrongnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WrongNoteUpdateOne is the builder for updating a single WrongNote entity.
type WrongNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WrongNoteMutation
}

// SetWord sets the "word" field.
func (_u *WrongNoteUpdateOne) SetWord(v string) *WrongNoteUpdateOne {
	_u.mutation.SetWord(v)
	return _u
}

// SetNillableWord sets the "word" field if the given value is not nil.
func (_u *WrongNoteUpdateOne) SetNillableWord(v *string) *WrongNoteUpdateOne {
	if v != nil {
		_u.SetWord(*v)
	}
	return _u
}

// SetSentence sets the "sentence" field.
func (_u *WrongNoteUpdateOne) SetSentence(v string) *WrongNoteUpdateOne {
	_u.mutation.SetSentence(v)
	return _u
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_u *WrongNoteUpdateOne) SetNillableSentence(v *string) *WrongNoteUpdateOne {
	if v != nil {
		_u.SetSentence(*v)
	}
	return _u
}

// SetMeaning sets the "meaning" field.
func (_u *WrongNoteUpdateOne) SetMeaning(v string) *WrongNoteUpdateOne {
	_u.mutation.SetMeaning(v)
	return _u
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_u *WrongNoteUpdateOne) SetNillableMeaning(v *string) *WrongNoteUpdateOne {
	if v != nil {
		_u.SetMeaning(*v)
	}
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *WrongNoteUpdateOne) SetUserAnswer(v string) *WrongNoteUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *WrongNoteUpdateOne) SetNillableUserAnswer(v *string) *WrongNoteUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *WrongNoteUpdateOne) SetCorrectAnswer(v string) *WrongNoteUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *WrongNoteUpdateOne) SetNillableCorrectAnswer(v *string) *WrongNoteUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetQuizType sets the "quiz_type" field.
func (_u *WrongNoteUpdateOne) SetQuizType(v string) *WrongNoteUpdateOne {
	_u.mutation.SetQuizType(v)
	return _u
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_u *WrongNoteUpdateOne) SetNillableQuizType(v *string) *WrongNoteUpdateOne {
	if v != nil {
		_u.SetQuizType(*v)
	}
	return _u
}

// SetNotedAt sets the "noted_at" field.
func (_u *WrongNoteUpdateOne) SetNotedAt(v time.Time) *WrongNoteUpdateOne {
	_u.mutation.SetNotedAt(v)
	return _u
}

// Mutation returns the WrongNoteMutation object of the builder.
func (_u *WrongNoteUpdateOne) Mutation() *WrongNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the WrongNoteUpdate builder.
func (_u *WrongNoteUpdateOne) Where(ps ...predicate.WrongNote) *WrongNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WrongNoteUpdateOne) Select(field string, fields ...string) *WrongNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WrongNote entity.
func (_u *WrongNoteUpdateOne) Save(ctx context.Context) (*WrongNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WrongNoteUpdateOne) SaveX(ctx context.Context) *WrongNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WrongNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WrongNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WrongNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.NotedAt(); !ok {
		v := wrongnote.UpdateDefaultNotedAt()
		_u.mutation.SetNotedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WrongNoteUpdateOne) check() error {
	if v, ok := _u.mutation.Word(); ok {
		if err := wrongnote.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "WrongNote.word": %w`, err)}
		}
	}
	return nil
}

func (_u *WrongNoteUpdateOne) sqlSave(ctx context.Context) (_node *WrongNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wrongnote.Table, wrongnote.Columns, sqlgraph.NewFieldSpec(wrongnote.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WrongNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wrongnote.FieldID)
		for _, f := range fields {
			if !wrongnote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wrongnote.FieldID {
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
	if value, ok := _u.mutation.Word(); ok {
		_spec.SetField(wrongnote.FieldWord, field.TypeString, value)
	}
	if value, ok := _u.mutation.Sentence(); ok {
		_spec.SetField(wrongnote.FieldSentence, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meaning(); ok {
		_spec.SetField(wrongnote.FieldMeaning, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(wrongnote.FieldUserAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(wrongnote.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizType(); ok {
		_spec.SetField(wrongnote.FieldQuizType, field.TypeString, value)
	}
	if value, ok := _u.mutation.NotedAt(); ok {
		_spec.SetField(wrongnote.FieldNotedAt, field.TypeTime, value)
	}
	_node = &WrongNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wrongnote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
