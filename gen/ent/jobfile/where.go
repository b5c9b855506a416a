// Code generated by ent, DO NOT EDIT.

package jobfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/propscope/underwriter/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldJobID, v))
}

// DocType applies equality check predicate on the "doc_type" field. It's identical to DocTypeEQ.
func DocType(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldDocType, v))
}

// ParseStatus applies equality check predicate on the "parse_status" field. It's identical to ParseStatusEQ.
func ParseStatus(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldParseStatus, v))
}

// ParseError applies equality check predicate on the "parse_error" field. It's identical to ParseErrorEQ.
func ParseError(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldParseError, v))
}

// MimeType applies equality check predicate on the "mime_type" field. It's identical to MimeTypeEQ.
func MimeType(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldMimeType, v))
}

// OriginalFilename applies equality check predicate on the "original_filename" field. It's identical to OriginalFilenameEQ.
func OriginalFilename(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldOriginalFilename, v))
}

// StorageLocator applies equality check predicate on the "storage_locator" field. It's identical to StorageLocatorEQ.
func StorageLocator(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldStorageLocator, v))
}

// UploadedAt applies equality check predicate on the "uploaded_at" field. It's identical to UploadedAtEQ.
func UploadedAt(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldUploadedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldJobID, vs...))
}

// DocTypeEQ applies the EQ predicate on the "doc_type" field.
func DocTypeEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldDocType, v))
}

// DocTypeNEQ applies the NEQ predicate on the "doc_type" field.
func DocTypeNEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldDocType, v))
}

// DocTypeIn applies the In predicate on the "doc_type" field.
func DocTypeIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldDocType, vs...))
}

// DocTypeNotIn applies the NotIn predicate on the "doc_type" field.
func DocTypeNotIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldDocType, vs...))
}

// DocTypeGT applies the GT predicate on the "doc_type" field.
func DocTypeGT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldDocType, v))
}

// DocTypeGTE applies the GTE predicate on the "doc_type" field.
func DocTypeGTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldDocType, v))
}

// DocTypeLT applies the LT predicate on the "doc_type" field.
func DocTypeLT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldDocType, v))
}

// DocTypeLTE applies the LTE predicate on the "doc_type" field.
func DocTypeLTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldDocType, v))
}

// DocTypeContains applies the Contains predicate on the "doc_type" field.
func DocTypeContains(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContains(FieldDocType, v))
}

// DocTypeHasPrefix applies the HasPrefix predicate on the "doc_type" field.
func DocTypeHasPrefix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasPrefix(FieldDocType, v))
}

// DocTypeHasSuffix applies the HasSuffix predicate on the "doc_type" field.
func DocTypeHasSuffix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasSuffix(FieldDocType, v))
}

// DocTypeIsNil applies the IsNil predicate on the "doc_type" field.
func DocTypeIsNil() predicate.JobFile {
	return predicate.JobFile(sql.FieldIsNull(FieldDocType))
}

// DocTypeNotNil applies the NotNil predicate on the "doc_type" field.
func DocTypeNotNil() predicate.JobFile {
	return predicate.JobFile(sql.FieldNotNull(FieldDocType))
}

// DocTypeEqualFold applies the EqualFold predicate on the "doc_type" field.
func DocTypeEqualFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEqualFold(FieldDocType, v))
}

// DocTypeContainsFold applies the ContainsFold predicate on the "doc_type" field.
func DocTypeContainsFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContainsFold(FieldDocType, v))
}

// ParseStatusEQ applies the EQ predicate on the "parse_status" field.
func ParseStatusEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldParseStatus, v))
}

// ParseStatusNEQ applies the NEQ predicate on the "parse_status" field.
func ParseStatusNEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldParseStatus, v))
}

// ParseStatusIn applies the In predicate on the "parse_status" field.
func ParseStatusIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldParseStatus, vs...))
}

// ParseStatusNotIn applies the NotIn predicate on the "parse_status" field.
func ParseStatusNotIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldParseStatus, vs...))
}

// ParseStatusGT applies the GT predicate on the "parse_status" field.
func ParseStatusGT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldParseStatus, v))
}

// ParseStatusGTE applies the GTE predicate on the "parse_status" field.
func ParseStatusGTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldParseStatus, v))
}

// ParseStatusLT applies the LT predicate on the "parse_status" field.
func ParseStatusLT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldParseStatus, v))
}

// ParseStatusLTE applies the LTE predicate on the "parse_status" field.
func ParseStatusLTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldParseStatus, v))
}

// ParseStatusContains applies the Contains predicate on the "parse_status" field.
func ParseStatusContains(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContains(FieldParseStatus, v))
}

// ParseStatusHasPrefix applies the HasPrefix predicate on the "parse_status" field.
func ParseStatusHasPrefix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasPrefix(FieldParseStatus, v))
}

// ParseStatusHasSuffix applies the HasSuffix predicate on the "parse_status" field.
func ParseStatusHasSuffix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasSuffix(FieldParseStatus, v))
}

// ParseStatusEqualFold applies the EqualFold predicate on the "parse_status" field.
func ParseStatusEqualFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEqualFold(FieldParseStatus, v))
}

// ParseStatusContainsFold applies the ContainsFold predicate on the "parse_status" field.
func ParseStatusContainsFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContainsFold(FieldParseStatus, v))
}

// ParseErrorEQ applies the EQ predicate on the "parse_error" field.
func ParseErrorEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldParseError, v))
}

// ParseErrorNEQ applies the NEQ predicate on the "parse_error" field.
func ParseErrorNEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldParseError, v))
}

// ParseErrorIn applies the In predicate on the "parse_error" field.
func ParseErrorIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldParseError, vs...))
}

// ParseErrorNotIn applies the NotIn predicate on the "parse_error" field.
func ParseErrorNotIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldParseError, vs...))
}

// ParseErrorGT applies the GT predicate on the "parse_error" field.
func ParseErrorGT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldParseError, v))
}

// ParseErrorGTE applies the GTE predicate on the "parse_error" field.
func ParseErrorGTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldParseError, v))
}

// ParseErrorLT applies the LT predicate on the "parse_error" field.
func ParseErrorLT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldParseError, v))
}

// ParseErrorLTE applies the LTE predicate on the "parse_error" field.
func ParseErrorLTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldParseError, v))
}

// ParseErrorContains applies the Contains predicate on the "parse_error" field.
func ParseErrorContains(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContains(FieldParseError, v))
}

// ParseErrorHasPrefix applies the HasPrefix predicate on the "parse_error" field.
func ParseErrorHasPrefix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasPrefix(FieldParseError, v))
}

// ParseErrorHasSuffix applies the HasSuffix predicate on the "parse_error" field.
func ParseErrorHasSuffix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasSuffix(FieldParseError, v))
}

// ParseErrorIsNil applies the IsNil predicate on the "parse_error" field.
func ParseErrorIsNil() predicate.JobFile {
	return predicate.JobFile(sql.FieldIsNull(FieldParseError))
}

// ParseErrorNotNil applies the NotNil predicate on the "parse_error" field.
func ParseErrorNotNil() predicate.JobFile {
	return predicate.JobFile(sql.FieldNotNull(FieldParseError))
}

// ParseErrorEqualFold applies the EqualFold predicate on the "parse_error" field.
func ParseErrorEqualFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEqualFold(FieldParseError, v))
}

// ParseErrorContainsFold applies the ContainsFold predicate on the "parse_error" field.
func ParseErrorContainsFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContainsFold(FieldParseError, v))
}

// MimeTypeEQ applies the EQ predicate on the "mime_type" field.
func MimeTypeEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldMimeType, v))
}

// MimeTypeNEQ applies the NEQ predicate on the "mime_type" field.
func MimeTypeNEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldMimeType, v))
}

// MimeTypeIn applies the In predicate on the "mime_type" field.
func MimeTypeIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldMimeType, vs...))
}

// MimeTypeNotIn applies the NotIn predicate on the "mime_type" field.
func MimeTypeNotIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldMimeType, vs...))
}

// MimeTypeGT applies the GT predicate on the "mime_type" field.
func MimeTypeGT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldMimeType, v))
}

// MimeTypeGTE applies the GTE predicate on the "mime_type" field.
func MimeTypeGTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldMimeType, v))
}

// MimeTypeLT applies the LT predicate on the "mime_type" field.
func MimeTypeLT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldMimeType, v))
}

// MimeTypeLTE applies the LTE predicate on the "mime_type" field.
func MimeTypeLTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldMimeType, v))
}

// MimeTypeContains applies the Contains predicate on the "mime_type" field.
func MimeTypeContains(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContains(FieldMimeType, v))
}

// MimeTypeHasPrefix applies the HasPrefix predicate on the "mime_type" field.
func MimeTypeHasPrefix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasPrefix(FieldMimeType, v))
}

// MimeTypeHasSuffix applies the HasSuffix predicate on the "mime_type" field.
func MimeTypeHasSuffix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasSuffix(FieldMimeType, v))
}

// MimeTypeEqualFold applies the EqualFold predicate on the "mime_type" field.
func MimeTypeEqualFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEqualFold(FieldMimeType, v))
}

// MimeTypeContainsFold applies the ContainsFold predicate on the "mime_type" field.
func MimeTypeContainsFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContainsFold(FieldMimeType, v))
}

// OriginalFilenameEQ applies the EQ predicate on the "original_filename" field.
func OriginalFilenameEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldOriginalFilename, v))
}

// OriginalFilenameNEQ applies the NEQ predicate on the "original_filename" field.
func OriginalFilenameNEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldOriginalFilename, v))
}

// OriginalFilenameIn applies the In predicate on the "original_filename" field.
func OriginalFilenameIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameNotIn applies the NotIn predicate on the "original_filename" field.
func OriginalFilenameNotIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldOriginalFilename, vs...))
}

// OriginalFilenameGT applies the GT predicate on the "original_filename" field.
func OriginalFilenameGT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldOriginalFilename, v))
}

// OriginalFilenameGTE applies the GTE predicate on the "original_filename" field.
func OriginalFilenameGTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldOriginalFilename, v))
}

// OriginalFilenameLT applies the LT predicate on the "original_filename" field.
func OriginalFilenameLT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldOriginalFilename, v))
}

// OriginalFilenameLTE applies the LTE predicate on the "original_filename" field.
func OriginalFilenameLTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldOriginalFilename, v))
}

// OriginalFilenameContains applies the Contains predicate on the "original_filename" field.
func OriginalFilenameContains(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContains(FieldOriginalFilename, v))
}

// OriginalFilenameHasPrefix applies the HasPrefix predicate on the "original_filename" field.
func OriginalFilenameHasPrefix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasPrefix(FieldOriginalFilename, v))
}

// OriginalFilenameHasSuffix applies the HasSuffix predicate on the "original_filename" field.
func OriginalFilenameHasSuffix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasSuffix(FieldOriginalFilename, v))
}

// OriginalFilenameEqualFold applies the EqualFold predicate on the "original_filename" field.
func OriginalFilenameEqualFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEqualFold(FieldOriginalFilename, v))
}

// OriginalFilenameContainsFold applies the ContainsFold predicate on the "original_filename" field.
func OriginalFilenameContainsFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContainsFold(FieldOriginalFilename, v))
}

// StorageLocatorEQ applies the EQ predicate on the "storage_locator" field.
func StorageLocatorEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldStorageLocator, v))
}

// StorageLocatorNEQ applies the NEQ predicate on the "storage_locator" field.
func StorageLocatorNEQ(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldStorageLocator, v))
}

// StorageLocatorIn applies the In predicate on the "storage_locator" field.
func StorageLocatorIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldStorageLocator, vs...))
}

// StorageLocatorNotIn applies the NotIn predicate on the "storage_locator" field.
func StorageLocatorNotIn(vs ...string) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldStorageLocator, vs...))
}

// StorageLocatorGT applies the GT predicate on the "storage_locator" field.
func StorageLocatorGT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldStorageLocator, v))
}

// StorageLocatorGTE applies the GTE predicate on the "storage_locator" field.
func StorageLocatorGTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldStorageLocator, v))
}

// StorageLocatorLT applies the LT predicate on the "storage_locator" field.
func StorageLocatorLT(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldStorageLocator, v))
}

// StorageLocatorLTE applies the LTE predicate on the "storage_locator" field.
func StorageLocatorLTE(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldStorageLocator, v))
}

// StorageLocatorContains applies the Contains predicate on the "storage_locator" field.
func StorageLocatorContains(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContains(FieldStorageLocator, v))
}

// StorageLocatorHasPrefix applies the HasPrefix predicate on the "storage_locator" field.
func StorageLocatorHasPrefix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasPrefix(FieldStorageLocator, v))
}

// StorageLocatorHasSuffix applies the HasSuffix predicate on the "storage_locator" field.
func StorageLocatorHasSuffix(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldHasSuffix(FieldStorageLocator, v))
}

// StorageLocatorEqualFold applies the EqualFold predicate on the "storage_locator" field.
func StorageLocatorEqualFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldEqualFold(FieldStorageLocator, v))
}

// StorageLocatorContainsFold applies the ContainsFold predicate on the "storage_locator" field.
func StorageLocatorContainsFold(v string) predicate.JobFile {
	return predicate.JobFile(sql.FieldContainsFold(FieldStorageLocator, v))
}

// UploadedAtEQ applies the EQ predicate on the "uploaded_at" field.
func UploadedAtEQ(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldEQ(FieldUploadedAt, v))
}

// UploadedAtNEQ applies the NEQ predicate on the "uploaded_at" field.
func UploadedAtNEQ(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldNEQ(FieldUploadedAt, v))
}

// UploadedAtIn applies the In predicate on the "uploaded_at" field.
func UploadedAtIn(vs ...time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldIn(FieldUploadedAt, vs...))
}

// UploadedAtNotIn applies the NotIn predicate on the "uploaded_at" field.
func UploadedAtNotIn(vs ...time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldNotIn(FieldUploadedAt, vs...))
}

// UploadedAtGT applies the GT predicate on the "uploaded_at" field.
func UploadedAtGT(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldGT(FieldUploadedAt, v))
}

// UploadedAtGTE applies the GTE predicate on the "uploaded_at" field.
func UploadedAtGTE(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldGTE(FieldUploadedAt, v))
}

// UploadedAtLT applies the LT predicate on the "uploaded_at" field.
func UploadedAtLT(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldLT(FieldUploadedAt, v))
}

// UploadedAtLTE applies the LTE predicate on the "uploaded_at" field.
func UploadedAtLTE(v time.Time) predicate.JobFile {
	return predicate.JobFile(sql.FieldLTE(FieldUploadedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobFile {
	return predicate.JobFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobFile {
	return predicate.JobFile(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobFile) predicate.JobFile {
	return predicate.JobFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobFile) predicate.JobFile {
	return predicate.JobFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobFile) predicate.JobFile {
	return predicate.JobFile(sql.NotPredicates(p))
}
