// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/propscope/underwriter/gen/ent/job"
	"github.com/propscope/underwriter/gen/ent/jobfile"
)

// JobFile is the model entity for the JobFile schema.
type JobFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// DocType holds the value of the "doc_type" field.
	DocType *string `json:"doc_type,omitempty"`
	// ParseStatus holds the value of the "parse_status" field.
	ParseStatus string `json:"parse_status,omitempty"`
	// ParseError holds the value of the "parse_error" field.
	ParseError *string `json:"parse_error,omitempty"`
	// MimeType holds the value of the "mime_type" field.
	MimeType string `json:"mime_type,omitempty"`
	// OriginalFilename holds the value of the "original_filename" field.
	OriginalFilename string `json:"original_filename,omitempty"`
	// StorageLocator holds the value of the "storage_locator" field.
	StorageLocator string `json:"storage_locator,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobFileQuery when eager-loading is set.
	Edges        JobFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobFileEdges holds the relations/edges for other nodes in the graph.
type JobFileEdges struct {
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobFileEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobfile.FieldDocType, jobfile.FieldParseStatus, jobfile.FieldParseError, jobfile.FieldMimeType, jobfile.FieldOriginalFilename, jobfile.FieldStorageLocator:
			values[i] = new(sql.NullString)
		case jobfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case jobfile.FieldID, jobfile.FieldJobID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobFile fields.
func (_m *JobFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case jobfile.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				_m.JobID = *value
			}
		case jobfile.FieldDocType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_type", values[i])
			} else if value.Valid {
				_m.DocType = new(string)
				*_m.DocType = value.String
			}
		case jobfile.FieldParseStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parse_status", values[i])
			} else if value.Valid {
				_m.ParseStatus = value.String
			}
		case jobfile.FieldParseError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parse_error", values[i])
			} else if value.Valid {
				_m.ParseError = new(string)
				*_m.ParseError = value.String
			}
		case jobfile.FieldMimeType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mime_type", values[i])
			} else if value.Valid {
				_m.MimeType = value.String
			}
		case jobfile.FieldOriginalFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field original_filename", values[i])
			} else if value.Valid {
				_m.OriginalFilename = value.String
			}
		case jobfile.FieldStorageLocator:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field storage_locator", values[i])
			} else if value.Valid {
				_m.StorageLocator = value.String
			}
		case jobfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobFile.
// This includes values selected through modifiers, order, etc.
func (_m *JobFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJob queries the "job" edge of the JobFile entity.
func (_m *JobFile) QueryJob() *JobQuery {
	return NewJobFileClient(_m.config).QueryJob(_m)
}

// Update returns a builder for updating this JobFile.
// Note that you need to call JobFile.Unwrap() before calling this method if this JobFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *JobFile) Update() *JobFileUpdateOne {
	return NewJobFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the JobFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *JobFile) Unwrap() *JobFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *JobFile) String() string {
	var builder strings.Builder
	builder.WriteString("JobFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.JobID))
	builder.WriteString(", ")
	if v := _m.DocType; v != nil {
		builder.WriteString("doc_type=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("parse_status=")
	builder.WriteString(_m.ParseStatus)
	builder.WriteString(", ")
	if v := _m.ParseError; v != nil {
		builder.WriteString("parse_error=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("mime_type=")
	builder.WriteString(_m.MimeType)
	builder.WriteString(", ")
	builder.WriteString("original_filename=")
	builder.WriteString(_m.OriginalFilename)
	builder.WriteString(", ")
	builder.WriteString("storage_locator=")
	builder.WriteString(_m.StorageLocator)
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobFiles is a parsable slice of JobFile.
type JobFiles []*JobFile
