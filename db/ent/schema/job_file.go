package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/db/ent/schema/utils"
)

type JobFile struct{ ent.Schema }

func (JobFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_files"},
	}
}

func (JobFile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}),
		// nullable until the classifier assigns one
		field.String("doc_type").Optional().Nillable(),
		field.String("parse_status").NotEmpty().
			Default(string(constants.ParseStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.ParseStatusPending),
				string(constants.ParseStatusParsed),
				string(constants.ParseStatusParsedWarn),
				string(constants.ParseStatusFailed),
			)),
		field.String("parse_error").Optional().Nillable(),
		field.String("mime_type").NotEmpty(),
		field.String("original_filename").NotEmpty(),
		field.String("storage_locator").NotEmpty(),
		field.Time("uploaded_at").Default(time.Now),
	}
}

func (JobFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("files").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (JobFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "doc_type"),
		index.Fields("job_id", "parse_status"),
	}
}
