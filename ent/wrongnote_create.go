// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/daneoapp/daneo/ent/wrongnote"
)

// WrongNoteCreate is the builder for creating a WrongNote entity.
type WrongNoteCreate struct {
	config
	mutation *WrongNoteMutation
	hooks    []Hook
}

// SetWord sets the "word" field.
func (_c *WrongNoteCreate) SetWord(v string) *WrongNoteCreate {
	_c.mutation.SetWord(v)
	return _c
}

// SetSentence sets the "sentence" field.
func (_c *WrongNoteCreate) SetSentence(v string) *WrongNoteCreate {
	_c.mutation.SetSentence(v)
	return _c
}

// SetNillableSentence sets the "sentence" field if the given value is not nil.
func (_c *WrongNoteCreate) SetNillableSentence(v *string) *WrongNoteCreate {
	if v != nil {
		_c.SetSentence(*v)
	}
	return _c
}

// SetMeaning sets the "meaning" field.
func (_c *WrongNoteCreate) SetMeaning(v string) *WrongNoteCreate {
	_c.mutation.SetMeaning(v)
	return _c
}

// SetNillableMeaning sets the "meaning" field if the given value is not nil.
func (_c *WrongNoteCreate) SetNillableMeaning(v *string) *WrongNoteCreate {
	if v != nil {
		_c.SetMeaning(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *WrongNoteCreate) SetUserAnswer(v string) *WrongNoteCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *WrongNoteCreate) SetNillableUserAnswer(v *string) *WrongNoteCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *WrongNoteCreate) SetCorrectAnswer(v string) *WrongNoteCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *WrongNoteCreate) SetNillableCorrectAnswer(v *string) *WrongNoteCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetQuizType sets the "quiz_type" field.
func (_c *WrongNoteCreate) SetQuizType(v string) *WrongNoteCreate {
	_c.mutation.SetQuizType(v)
	return _c
}

// SetNillableQuizType sets the "quiz_type" field if the given value is not nil.
func (_c *WrongNoteCreate) SetNillableQuizType(v *string) *WrongNoteCreate {
	if v != nil {
		_c.SetQuizType(*v)
	}
	return _c
}

// SetNotedAt sets the "noted_at" field.
func (_c *WrongNoteCreate) SetNotedAt(v time.Time) *WrongNoteCreate {
	_c.mutation.SetNotedAt(v)
	return _c
}

// SetNillableNotedAt sets the "noted_at" field if the given value is not nil.
func (_c *WrongNoteCreate) SetNillableNotedAt(v *time.Time) *WrongNoteCreate {
	if v != nil {
		_c.SetNotedAt(*v)
	}
	return _c
}

// Mutation returns the WrongNoteMutation object of the builder.
func (_c *WrongNoteCreate) Mutation() *WrongNoteMutation {
	return _c.mutation
}

// Save creates the WrongNote in the database.
func (_c *WrongNoteCreate) Save(ctx context.Context) (*WrongNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WrongNoteCreate) SaveX(ctx context.Context) *WrongNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WrongNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WrongNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WrongNoteCreate) defaults() {
	if _, ok := _c.mutation.Sentence(); !ok {
		v := wrongnote.DefaultSentence
		_c.mutation.SetSentence(v)
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		v := wrongnote.DefaultMeaning
		_c.mutation.SetMeaning(v)
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		v := wrongnote.DefaultUserAnswer
		_c.mutation.SetUserAnswer(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := wrongnote.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.QuizType(); !ok {
		v := wrongnote.DefaultQuizType
		_c.mutation.SetQuizType(v)
	}
	if _, ok := _c.mutation.NotedAt(); !ok {
		v := wrongnote.DefaultNotedAt()
		_c.mutation.SetNotedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WrongNoteCreate) check() error {
	if _, ok := _c.mutation.Word(); !ok {
		return &ValidationError{Name: "word", err: errors.New(`ent: missing required field "WrongNote.word"`)}
	}
	if v, ok := _c.mutation.Word(); ok {
		if err := wrongnote.WordValidator(v); err != nil {
			return &ValidationError{Name: "word", err: fmt.Errorf(`ent: validator failed for field "WrongNote.word": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sentence(); !ok {
		return &ValidationError{Name: "sentence", err: errors.New(`ent: missing required field "WrongNote.sentence"`)}
	}
	if _, ok := _c.mutation.Meaning(); !ok {
		return &ValidationError{Name: "meaning", err: errors.New(`ent: missing required field "WrongNote.meaning"`)}
	}
	if _, ok := _c.mutation.UserAnswer(); !ok {
		return &ValidationError{Name: "user_answer", err: errors.New(`ent: missing required field "WrongNote.user_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "WrongNote.correct_answer"`)}
	}
	if _, ok := _c.mutation.QuizType(); !ok {
		return &ValidationError{Name: "quiz_type", err: errors.New(`ent: missing required field "WrongNote.quiz_type"`)}
	}
	if _, ok := _c.mutation.NotedAt(); !ok {
		return &ValidationError{Name: "noted_at", err: errors.New(`ent: missing required field "WrongNote.noted_at"`)}
	}
	return nil
}

func (_c *WrongNoteCreate) sqlSave(ctx context.Context) (*WrongNote, error) {
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

func (_c *WrongNoteCreate) createSpec() (*WrongNote, *sqlgraph.CreateSpec) {
	var (
		_node = &WrongNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wrongnote.Table, sqlgraph.NewFieldSpec(wrongnote.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Word(); ok {
		_spec.SetField(wrongnote.FieldWord, field.TypeString, value)
		_node.Word = value
	}
	if value, ok := _c.mutation.Sentence(); ok {
		_spec.SetField(wrongnote.FieldSentence, field.TypeString, value)
		_node.Sentence = value
	}
	if value, ok := _c.mutation.Meaning(); ok {
		_spec.SetField(wrongnote.FieldMeaning, field.TypeString, value)
		_node.Meaning = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(wrongnote.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(wrongnote.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.QuizType(); ok {
		_spec.SetField(wrongnote.FieldQuizType, field.TypeString, value)
		_node.QuizType = value
	}
	if value, ok := _c.mutation.NotedAt(); ok {
		_spec.SetField(wrongnote.FieldNotedAt, field.TypeTime, value)
		_node.NotedAt = value
	}
	return _node, _spec
}

// WrongNoteCreateBulk is the builder for creating many WrongNote entities in bulk.
type WrongNoteCreateBulk struct {
	config
	err      error
	builders []*WrongNoteCreate
}

// Save creates the WrongNote entities in the database.
func (_c *WrongNoteCreateBulk) Save(ctx context.Context) ([]*WrongNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WrongNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WrongNoteMutation)
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
func (_c *WrongNoteCreateBulk) SaveX(ctx context.Context) []*WrongNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WrongNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WrongNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
