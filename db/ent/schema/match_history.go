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

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/db/ent/schema/utils"
)

type MatchHistory struct{ ent.Schema }

func (MatchHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "match_history"},
	}
}

func (MatchHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("tenant_id", uuid.UUID{}),
		field.UUID("vendor_id", uuid.UUID{}),
		field.UUID("product_id", uuid.UUID{}),
		field.String("vendor_sku").NotEmpty(),
		field.String("description").Optional(),
		field.String("method").NotEmpty().
			Validate(utils.EnumValidator(constants.MatchMethods...)),
		field.Float("confidence").Min(0).Max(1),
		field.Bool("confirmed").Default(false),
		field.Time("created_at").Default(time.Now),
	}
}

func (MatchHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("matches").
			Field("tenant_id").
			Unique().
			Required(),
		edge.From("product", Product.Type).
			Ref("matches").
			Field("product_id").
			Unique().
			Required(),
	}
}

func (MatchHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "vendor_id", "vendor_sku", "created_at"),
		index.Fields("tenant_id", "confirmed"),
	}
}
