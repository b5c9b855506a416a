// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/propscope/underwriter/db/ent/schema"
	"github.com/propscope/underwriter/gen/ent/artifact"
	"github.com/propscope/underwriter/gen/ent/job"
	"github.com/propscope/underwriter/gen/ent/jobfile"
	"github.com/propscope/underwriter/gen/ent/profile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescType is the schema descriptor for type field.
	artifactDescType := artifactFields[2].Descriptor()
	// artifact.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	artifact.TypeValidator = artifactDescType.Validators[0].(func(string) error)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[5].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescID is the schema descriptor for id field.
	artifactDescID := artifactFields[0].Descriptor()
	// artifact.DefaultID holds the default value on creation for the id field.
	artifact.DefaultID = artifactDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[2].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = func() func(string) error {
		validators := jobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobDescReportType is the schema descriptor for report_type field.
	jobDescReportType := jobFields[3].Descriptor()
	// job.DefaultReportType holds the default value on creation for the report_type field.
	job.DefaultReportType = jobDescReportType.Default.(string)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[5].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobfileFields := schema.JobFile{}.Fields()
	_ = jobfileFields
	// jobfileDescParseStatus is the schema descriptor for parse_status field.
	jobfileDescParseStatus := jobfileFields[3].Descriptor()
	// jobfile.DefaultParseStatus holds the default value on creation for the parse_status field.
	jobfile.DefaultParseStatus = jobfileDescParseStatus.Default.(string)
	// jobfile.ParseStatusValidator is a validator for the "parse_status" field. It is called by the builders before save.
	jobfile.ParseStatusValidator = func() func(string) error {
		validators := jobfileDescParseStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(parse_status string) error {
			for _, fn := range fns {
				if err := fn(parse_status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobfileDescMimeType is the schema descriptor for mime_type field.
	jobfileDescMimeType := jobfileFields[5].Descriptor()
	// jobfile.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	jobfile.MimeTypeValidator = jobfileDescMimeType.Validators[0].(func(string) error)
	// jobfileDescOriginalFilename is the schema descriptor for original_filename field.
	jobfileDescOriginalFilename := jobfileFields[6].Descriptor()
	// jobfile.OriginalFilenameValidator is a validator for the "original_filename" field. It is called by the builders before save.
	jobfile.OriginalFilenameValidator = jobfileDescOriginalFilename.Validators[0].(func(string) error)
	// jobfileDescStorageLocator is the schema descriptor for storage_locator field.
	jobfileDescStorageLocator := jobfileFields[7].Descriptor()
	// jobfile.StorageLocatorValidator is a validator for the "storage_locator" field. It is called by the builders before save.
	jobfile.StorageLocatorValidator = jobfileDescStorageLocator.Validators[0].(func(string) error)
	// jobfileDescUploadedAt is the schema descriptor for uploaded_at field.
	jobfileDescUploadedAt := jobfileFields[8].Descriptor()
	// jobfile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	jobfile.DefaultUploadedAt = jobfileDescUploadedAt.Default.(func() time.Time)
	// jobfileDescID is the schema descriptor for id field.
	jobfileDescID := jobfileFields[0].Descriptor()
	// jobfile.DefaultID holds the default value on creation for the id field.
	jobfile.DefaultID = jobfileDescID.Default.(func() uuid.UUID)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[1].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileFields[2].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = profileDescName.Validators[0].(func(string) error)
	// profileDescCreditBalance is the schema descriptor for credit_balance field.
	profileDescCreditBalance := profileFields[3].Descriptor()
	// profile.DefaultCreditBalance holds the default value on creation for the credit_balance field.
	profile.DefaultCreditBalance = profileDescCreditBalance.Default.(int)
	// profile.CreditBalanceValidator is a validator for the "credit_balance" field. It is called by the builders before save.
	profile.CreditBalanceValidator = profileDescCreditBalance.Validators[0].(func(int) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[4].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[5].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileFields[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() uuid.UUID)
}
