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

type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so repositories can filter without loading the edge
		field.UUID("owner_id", uuid.UUID{}),
		field.String("status").NotEmpty().
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(
				string(constants.JobStatusQueued),
				string(constants.JobStatusExtracting),
				string(constants.JobStatusUnderwriting),
				string(constants.JobStatusScoring),
				string(constants.JobStatusRendering),
				string(constants.JobStatusPDFGenerating),
				string(constants.JobStatusPublishing),
				string(constants.JobStatusPublished),
				string(constants.JobStatusNeedsDocuments),
				string(constants.JobStatusFailed),
			)),
		field.String("report_type").Default("underwriting"),
		field.String("property_name").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("failed_at").Optional().Nillable(),
		field.String("error_code").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", Profile.Type).
			Ref("jobs").
			Field("owner_id").
			Unique().
			Required(),
		edge.To("files", JobFile.Type),
		edge.To("artifacts", Artifact.Type),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("owner_id"),
	}
}
