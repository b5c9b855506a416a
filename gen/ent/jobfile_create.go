// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/propscope/underwriter/gen/ent/job"
	"github.com/propscope/underwriter/gen/ent/jobfile"
)

// JobFileCreate is the builder for creating a JobFile entity.
type JobFileCreate struct {
	config
	mutation *JobFileMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobFileCreate) SetJobID(v uuid.UUID) *JobFileCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetDocType sets the "doc_type" field.
func (_c *JobFileCreate) SetDocType(v string) *JobFileCreate {
	_c.mutation.SetDocType(v)
	return _c
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_c *JobFileCreate) SetNillableDocType(v *string) *JobFileCreate {
	if v != nil {
		_c.SetDocType(*v)
	}
	return _c
}

// SetParseStatus sets the "parse_status" field.
func (_c *JobFileCreate) SetParseStatus(v string) *JobFileCreate {
	_c.mutation.SetParseStatus(v)
	return _c
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_c *JobFileCreate) SetNillableParseStatus(v *string) *JobFileCreate {
	if v != nil {
		_c.SetParseStatus(*v)
	}
	return _c
}

// SetParseError sets the "parse_error" field.
func (_c *JobFileCreate) SetParseError(v string) *JobFileCreate {
	_c.mutation.SetParseError(v)
	return _c
}

// SetNillableParseError sets the "parse_error" field if the given value is not nil.
func (_c *JobFileCreate) SetNillableParseError(v *string) *JobFileCreate {
	if v != nil {
		_c.SetParseError(*v)
	}
	return _c
}

// SetMimeType sets the "mime_type" field.
func (_c *JobFileCreate) SetMimeType(v string) *JobFileCreate {
	_c.mutation.SetMimeType(v)
	return _c
}

// SetOriginalFilename sets the "original_filename" field.
func (_c *JobFileCreate) SetOriginalFilename(v string) *JobFileCreate {
	_c.mutation.SetOriginalFilename(v)
	return _c
}

// SetStorageLocator sets the "storage_locator" field.
func (_c *JobFileCreate) SetStorageLocator(v string) *JobFileCreate {
	_c.mutation.SetStorageLocator(v)
	return _c
}

// SetUploadedAt sets the "uploaded_at" field.
func (_c *JobFileCreate) SetUploadedAt(v time.Time) *JobFileCreate {
	_c.mutation.SetUploadedAt(v)
	return _c
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_c *JobFileCreate) SetNillableUploadedAt(v *time.Time) *JobFileCreate {
	if v != nil {
		_c.SetUploadedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobFileCreate) SetID(v uuid.UUID) *JobFileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobFileCreate) SetNillableID(v *uuid.UUID) *JobFileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the Job entity.
func (_c *JobFileCreate) SetJob(v *Job) *JobFileCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobFileMutation object of the builder.
func (_c *JobFileCreate) Mutation() *JobFileMutation {
	return _c.mutation
}

// Save creates the JobFile in the database.
func (_c *JobFileCreate) Save(ctx context.Context) (*JobFile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobFileCreate) SaveX(ctx context.Context) *JobFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobFileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobFileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobFileCreate) defaults() {
	if _, ok := _c.mutation.ParseStatus(); !ok {
		v := jobfile.DefaultParseStatus
		_c.mutation.SetParseStatus(v)
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		v := jobfile.DefaultUploadedAt()
		_c.mutation.SetUploadedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobfile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobFileCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobFile.job_id"`)}
	}
	if _, ok := _c.mutation.ParseStatus(); !ok {
		return &ValidationError{Name: "parse_status", err: errors.New(`ent: missing required field "JobFile.parse_status"`)}
	}
	if v, ok := _c.mutation.ParseStatus(); ok {
		if err := jobfile.ParseStatusValidator(v); err != nil {
			return &ValidationError{Name: "parse_status", err: fmt.Errorf(`ent: validator failed for field "JobFile.parse_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MimeType(); !ok {
		return &ValidationError{Name: "mime_type", err: errors.New(`ent: missing required field "JobFile.mime_type"`)}
	}
	if v, ok := _c.mutation.MimeType(); ok {
		if err := jobfile.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "JobFile.mime_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalFilename(); !ok {
		return &ValidationError{Name: "original_filename", err: errors.New(`ent: missing required field "JobFile.original_filename"`)}
	}
	if v, ok := _c.mutation.OriginalFilename(); ok {
		if err := jobfile.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "JobFile.original_filename": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageLocator(); !ok {
		return &ValidationError{Name: "storage_locator", err: errors.New(`ent: missing required field "JobFile.storage_locator"`)}
	}
	if v, ok := _c.mutation.StorageLocator(); ok {
		if err := jobfile.StorageLocatorValidator(v); err != nil {
			return &ValidationError{Name: "storage_locator", err: fmt.Errorf(`ent: validator failed for field "JobFile.storage_locator": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UploadedAt(); !ok {
		return &ValidationError{Name: "uploaded_at", err: errors.New(`ent: missing required field "JobFile.uploaded_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobFile.job"`)}
	}
	return nil
}

func (_c *JobFileCreate) sqlSave(ctx context.Context) (*JobFile, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobFileCreate) createSpec() (*JobFile, *sqlgraph.CreateSpec) {
	var (
		_node = &JobFile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobfile.Table, sqlgraph.NewFieldSpec(jobfile.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.DocType(); ok {
		_spec.SetField(jobfile.FieldDocType, field.TypeString, value)
		_node.DocType = &value
	}
	if value, ok := _c.mutation.ParseStatus(); ok {
		_spec.SetField(jobfile.FieldParseStatus, field.TypeString, value)
		_node.ParseStatus = value
	}
	if value, ok := _c.mutation.ParseError(); ok {
		_spec.SetField(jobfile.FieldParseError, field.TypeString, value)
		_node.ParseError = &value
	}
	if value, ok := _c.mutation.MimeType(); ok {
		_spec.SetField(jobfile.FieldMimeType, field.TypeString, value)
		_node.MimeType = value
	}
	if value, ok := _c.mutation.OriginalFilename(); ok {
		_spec.SetField(jobfile.FieldOriginalFilename, field.TypeString, value)
		_node.OriginalFilename = value
	}
	if value, ok := _c.mutation.StorageLocator(); ok {
		_spec.SetField(jobfile.FieldStorageLocator, field.TypeString, value)
		_node.StorageLocator = value
	}
	if value, ok := _c.mutation.UploadedAt(); ok {
		_spec.SetField(jobfile.FieldUploadedAt, field.TypeTime, value)
		_node.UploadedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobfile.JobTable,
			Columns: []string{jobfile.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobFileCreateBulk is the builder for creating many JobFile entities in bulk.
type JobFileCreateBulk struct {
	config
	err      error
	builders []*JobFileCreate
}

// Save creates the JobFile entities in the database.
func (_c *JobFileCreateBulk) Save(ctx context.Context) ([]*JobFile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobFile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobFileMutation)
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
func (_c *JobFileCreateBulk) SaveX(ctx context.Context) []*JobFile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobFileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobFileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
