package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Artifact rows are append-only: written once, never updated or deleted.
// Presence of a (job_id, type) pair is the idempotency marker that keeps
// re-delivered work from double-executing side effects.
type Artifact struct{ ent.Schema }

func (Artifact) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "artifacts"},
	}
}

func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("job_id", uuid.UUID{}).Immutable(),
		field.String("type").NotEmpty().Immutable(),
		field.String("storage_locator").Optional().Nillable().Immutable(),
		field.JSON("payload", json.RawMessage{}).Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Artifact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("artifacts").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "type"),
		index.Fields("job_id", "created_at"),
	}
}
