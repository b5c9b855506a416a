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
	"github.com/google/uuid"
	"github.com/propscope/underwriter/gen/ent/job"
	"github.com/propscope/underwriter/gen/ent/jobfile"
	"github.com/propscope/underwriter/gen/ent/predicate"
)

// JobFileUpdate is the builder for updating JobFile entities.
type JobFileUpdate struct {
	config
	hooks    []Hook
	mutation *JobFileMutation
}

// Where appends a list predicates to the JobFileUpdate builder.
func (_u *JobFileUpdate) Where(ps ...predicate.JobFile) *JobFileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobFileUpdate) SetJobID(v uuid.UUID) *JobFileUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableJobID(v *uuid.UUID) *JobFileUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *JobFileUpdate) SetDocType(v string) *JobFileUpdate {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableDocType(v *string) *JobFileUpdate {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *JobFileUpdate) ClearDocType() *JobFileUpdate {
	_u.mutation.ClearDocType()
	return _u
}

// SetParseStatus sets the "parse_status" field.
func (_u *JobFileUpdate) SetParseStatus(v string) *JobFileUpdate {
	_u.mutation.SetParseStatus(v)
	return _u
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableParseStatus(v *string) *JobFileUpdate {
	if v != nil {
		_u.SetParseStatus(*v)
	}
	return _u
}

// SetParseError sets the "parse_error" field.
func (_u *JobFileUpdate) SetParseError(v string) *JobFileUpdate {
	_u.mutation.SetParseError(v)
	return _u
}

// SetNillableParseError sets the "parse_error" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableParseError(v *string) *JobFileUpdate {
	if v != nil {
		_u.SetParseError(*v)
	}
	return _u
}

// ClearParseError clears the value of the "parse_error" field.
func (_u *JobFileUpdate) ClearParseError() *JobFileUpdate {
	_u.mutation.ClearParseError()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *JobFileUpdate) SetMimeType(v string) *JobFileUpdate {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableMimeType(v *string) *JobFileUpdate {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *JobFileUpdate) SetOriginalFilename(v string) *JobFileUpdate {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableOriginalFilename(v *string) *JobFileUpdate {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStorageLocator sets the "storage_locator" field.
func (_u *JobFileUpdate) SetStorageLocator(v string) *JobFileUpdate {
	_u.mutation.SetStorageLocator(v)
	return _u
}

// SetNillableStorageLocator sets the "storage_locator" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableStorageLocator(v *string) *JobFileUpdate {
	if v != nil {
		_u.SetStorageLocator(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *JobFileUpdate) SetUploadedAt(v time.Time) *JobFileUpdate {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *JobFileUpdate) SetNillableUploadedAt(v *time.Time) *JobFileUpdate {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobFileUpdate) SetJob(v *Job) *JobFileUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobFileMutation object of the builder.
func (_u *JobFileUpdate) Mutation() *JobFileMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobFileUpdate) ClearJob() *JobFileUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobFileUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobFileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobFileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobFileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobFileUpdate) check() error {
	if v, ok := _u.mutation.ParseStatus(); ok {
		if err := jobfile.ParseStatusValidator(v); err != nil {
			return &ValidationError{Name: "parse_status", err: fmt.Errorf(`ent: validator failed for field "JobFile.parse_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := jobfile.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "JobFile.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := jobfile.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "JobFile.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageLocator(); ok {
		if err := jobfile.StorageLocatorValidator(v); err != nil {
			return &ValidationError{Name: "storage_locator", err: fmt.Errorf(`ent: validator failed for field "JobFile.storage_locator": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobFile.job"`)
	}
	return nil
}

func (_u *JobFileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobfile.Table, jobfile.Columns, sqlgraph.NewFieldSpec(jobfile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(jobfile.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(jobfile.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.ParseStatus(); ok {
		_spec.SetField(jobfile.FieldParseStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParseError(); ok {
		_spec.SetField(jobfile.FieldParseError, field.TypeString, value)
	}
	if _u.mutation.ParseErrorCleared() {
		_spec.ClearField(jobfile.FieldParseError, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(jobfile.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(jobfile.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageLocator(); ok {
		_spec.SetField(jobfile.FieldStorageLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(jobfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobFileUpdateOne is the builder for updating a single JobFile entity.
type JobFileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobFileMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobFileUpdateOne) SetJobID(v uuid.UUID) *JobFileUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableJobID(v *uuid.UUID) *JobFileUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetDocType sets the "doc_type" field.
func (_u *JobFileUpdateOne) SetDocType(v string) *JobFileUpdateOne {
	_u.mutation.SetDocType(v)
	return _u
}

// SetNillableDocType sets the "doc_type" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableDocType(v *string) *JobFileUpdateOne {
	if v != nil {
		_u.SetDocType(*v)
	}
	return _u
}

// ClearDocType clears the value of the "doc_type" field.
func (_u *JobFileUpdateOne) ClearDocType() *JobFileUpdateOne {
	_u.mutation.ClearDocType()
	return _u
}

// SetParseStatus sets the "parse_status" field.
func (_u *JobFileUpdateOne) SetParseStatus(v string) *JobFileUpdateOne {
	_u.mutation.SetParseStatus(v)
	return _u
}

// SetNillableParseStatus sets the "parse_status" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableParseStatus(v *string) *JobFileUpdateOne {
	if v != nil {
		_u.SetParseStatus(*v)
	}
	return _u
}

// SetParseError sets the "parse_error" field.
func (_u *JobFileUpdateOne) SetParseError(v string) *JobFileUpdateOne {
	_u.mutation.SetParseError(v)
	return _u
}

// SetNillableParseError sets the "parse_error" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableParseError(v *string) *JobFileUpdateOne {
	if v != nil {
		_u.SetParseError(*v)
	}
	return _u
}

// ClearParseError clears the value of the "parse_error" field.
func (_u *JobFileUpdateOne) ClearParseError() *JobFileUpdateOne {
	_u.mutation.ClearParseError()
	return _u
}

// SetMimeType sets the "mime_type" field.
func (_u *JobFileUpdateOne) SetMimeType(v string) *JobFileUpdateOne {
	_u.mutation.SetMimeType(v)
	return _u
}

// SetNillableMimeType sets the "mime_type" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableMimeType(v *string) *JobFileUpdateOne {
	if v != nil {
		_u.SetMimeType(*v)
	}
	return _u
}

// SetOriginalFilename sets the "original_filename" field.
func (_u *JobFileUpdateOne) SetOriginalFilename(v string) *JobFileUpdateOne {
	_u.mutation.SetOriginalFilename(v)
	return _u
}

// SetNillableOriginalFilename sets the "original_filename" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableOriginalFilename(v *string) *JobFileUpdateOne {
	if v != nil {
		_u.SetOriginalFilename(*v)
	}
	return _u
}

// SetStorageLocator sets the "storage_locator" field.
func (_u *JobFileUpdateOne) SetStorageLocator(v string) *JobFileUpdateOne {
	_u.mutation.SetStorageLocator(v)
	return _u
}

// SetNillableStorageLocator sets the "storage_locator" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableStorageLocator(v *string) *JobFileUpdateOne {
	if v != nil {
		_u.SetStorageLocator(*v)
	}
	return _u
}

// SetUploadedAt sets the "uploaded_at" field.
func (_u *JobFileUpdateOne) SetUploadedAt(v time.Time) *JobFileUpdateOne {
	_u.mutation.SetUploadedAt(v)
	return _u
}

// SetNillableUploadedAt sets the "uploaded_at" field if the given value is not nil.
func (_u *JobFileUpdateOne) SetNillableUploadedAt(v *time.Time) *JobFileUpdateOne {
	if v != nil {
		_u.SetUploadedAt(*v)
	}
	return _u
}

// SetJob sets the "job" edge to the Job entity.
func (_u *JobFileUpdateOne) SetJob(v *Job) *JobFileUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobFileMutation object of the builder.
func (_u *JobFileUpdateOne) Mutation() *JobFileMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the Job entity.
func (_u *JobFileUpdateOne) ClearJob() *JobFileUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobFileUpdate builder.
func (_u *JobFileUpdateOne) Where(ps ...predicate.JobFile) *JobFileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobFileUpdateOne) Select(field string, fields ...string) *JobFileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobFile entity.
func (_u *JobFileUpdateOne) Save(ctx context.Context) (*JobFile, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobFileUpdateOne) SaveX(ctx context.Context) *JobFile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobFileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobFileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobFileUpdateOne) check() error {
	if v, ok := _u.mutation.ParseStatus(); ok {
		if err := jobfile.ParseStatusValidator(v); err != nil {
			return &ValidationError{Name: "parse_status", err: fmt.Errorf(`ent: validator failed for field "JobFile.parse_status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MimeType(); ok {
		if err := jobfile.MimeTypeValidator(v); err != nil {
			return &ValidationError{Name: "mime_type", err: fmt.Errorf(`ent: validator failed for field "JobFile.mime_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.OriginalFilename(); ok {
		if err := jobfile.OriginalFilenameValidator(v); err != nil {
			return &ValidationError{Name: "original_filename", err: fmt.Errorf(`ent: validator failed for field "JobFile.original_filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StorageLocator(); ok {
		if err := jobfile.StorageLocatorValidator(v); err != nil {
			return &ValidationError{Name: "storage_locator", err: fmt.Errorf(`ent: validator failed for field "JobFile.storage_locator": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobFile.job"`)
	}
	return nil
}

func (_u *JobFileUpdateOne) sqlSave(ctx context.Context) (_node *JobFile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobfile.Table, jobfile.Columns, sqlgraph.NewFieldSpec(jobfile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobFile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobfile.FieldID)
		for _, f := range fields {
			if !jobfile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobfile.FieldID {
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
	if value, ok := _u.mutation.DocType(); ok {
		_spec.SetField(jobfile.FieldDocType, field.TypeString, value)
	}
	if _u.mutation.DocTypeCleared() {
		_spec.ClearField(jobfile.FieldDocType, field.TypeString)
	}
	if value, ok := _u.mutation.ParseStatus(); ok {
		_spec.SetField(jobfile.FieldParseStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParseError(); ok {
		_spec.SetField(jobfile.FieldParseError, field.TypeString, value)
	}
	if _u.mutation.ParseErrorCleared() {
		_spec.ClearField(jobfile.FieldParseError, field.TypeString)
	}
	if value, ok := _u.mutation.MimeType(); ok {
		_spec.SetField(jobfile.FieldMimeType, field.TypeString, value)
	}
	if value, ok := _u.mutation.OriginalFilename(); ok {
		_spec.SetField(jobfile.FieldOriginalFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageLocator(); ok {
		_spec.SetField(jobfile.FieldStorageLocator, field.TypeString, value)
	}
	if value, ok := _u.mutation.UploadedAt(); ok {
		_spec.SetField(jobfile.FieldUploadedAt, field.TypeTime, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobFile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobfile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
