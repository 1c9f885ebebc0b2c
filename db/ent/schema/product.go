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
)

type Product struct {
	ent.Schema
}

func (Product) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "products"},
	}
}

func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FK so we can define composite unique indexes
		field.UUID("tenant_id", uuid.UUID{}),
		field.String("sku").NotEmpty(),
		// case-folded, alphanumerics only; the form the matcher queries
		field.String("normalized_sku").NotEmpty(),
		field.String("name").NotEmpty(),
		field.String("description").Optional(),
		field.String("barcode").Optional(),
		field.JSON("attributes", map[string]string{}).Optional(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("products").
			Field("tenant_id").
			Required().
			Unique(),
		edge.To("aliases", VendorAlias.Type),
		edge.To("matches", MatchHistory.Type),
	}
}

func (Product) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "sku").Unique(),
		index.Fields("tenant_id", "normalized_sku"),
		index.Fields("tenant_id", "barcode"),
		index.Fields("tenant_id", "is_active"),
	}
}
