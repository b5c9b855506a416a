// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "storage_locator", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "artifacts_jobs_artifacts",
				Columns:    []*schema.Column{ArtifactsColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_job_id_type",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[5], ArtifactsColumns[1]},
			},
			{
				Name:    "artifact_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[5], ArtifactsColumns[4]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "report_type", Type: field.TypeString, Default: "underwriting"},
		{Name: "property_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
		{Name: "error_code", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "owner_id", Type: field.TypeUUID},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_profiles_jobs",
				Columns:    []*schema.Column{JobsColumns[10]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[4]},
			},
			{
				Name:    "job_owner_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[10]},
			},
		},
	}
	// JobFilesColumns holds the columns for the "job_files" table.
	JobFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "doc_type", Type: field.TypeString, Nullable: true},
		{Name: "parse_status", Type: field.TypeString, Default: "pending"},
		{Name: "parse_error", Type: field.TypeString, Nullable: true},
		{Name: "mime_type", Type: field.TypeString},
		{Name: "original_filename", Type: field.TypeString},
		{Name: "storage_locator", Type: field.TypeString},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobFilesTable holds the schema information for the "job_files" table.
	JobFilesTable = &schema.Table{
		Name:       "job_files",
		Columns:    JobFilesColumns,
		PrimaryKey: []*schema.Column{JobFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_files_jobs_files",
				Columns:    []*schema.Column{JobFilesColumns[8]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobfile_job_id_doc_type",
				Unique:  false,
				Columns: []*schema.Column{JobFilesColumns[8], JobFilesColumns[1]},
			},
			{
				Name:    "jobfile_job_id_parse_status",
				Unique:  false,
				Columns: []*schema.Column{JobFilesColumns[8], JobFilesColumns[2]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "credit_balance", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		JobsTable,
		JobFilesTable,
		ProfilesTable,
	}
)

func init() {
	ArtifactsTable.ForeignKeys[0].RefTable = JobsTable
	ArtifactsTable.Annotation = &entsql.Annotation{
		Table: "artifacts",
	}
	JobsTable.ForeignKeys[0].RefTable = ProfilesTable
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobFilesTable.ForeignKeys[0].RefTable = JobsTable
	JobFilesTable.Annotation = &entsql.Annotation{
		Table: "job_files",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
}
