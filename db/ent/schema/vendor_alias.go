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

type VendorAlias struct {
	ent.Schema
}

func (VendorAlias) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendor_aliases"},
	}
}

func (VendorAlias) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// explicit FKs
		field.UUID("tenant_id", uuid.UUID{}),
		field.UUID("vendor_id", uuid.UUID{}),
		field.UUID("product_id", uuid.UUID{}),
		// stored pre-normalized so lookups are a single equality
		field.String("vendor_sku").NotEmpty(),
		field.Int("priority").Default(0),
		field.Int("usage_count").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now),
	}
}

func (VendorAlias) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("aliases").
			Field("tenant_id").
			Required().
			Unique(),
		edge.From("product", Product.Type).
			Ref("aliases").
			Field("product_id").
			Required().
			Unique(),
	}
}

func (VendorAlias) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "vendor_id", "vendor_sku").Unique(),
	}
}
