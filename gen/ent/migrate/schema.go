// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// MatchHistoryColumns holds the columns for the "match_history" table.
	MatchHistoryColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_id", Type: field.TypeUUID},
		{Name: "vendor_sku", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "method", Type: field.TypeString},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "confirmed", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
	}
	// MatchHistoryTable holds the schema information for the "match_history" table.
	MatchHistoryTable = &schema.Table{
		Name:       "match_history",
		Columns:    MatchHistoryColumns,
		PrimaryKey: []*schema.Column{MatchHistoryColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "match_history_products_matches",
				Columns:    []*schema.Column{MatchHistoryColumns[8]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "match_history_tenants_matches",
				Columns:    []*schema.Column{MatchHistoryColumns[9]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "matchhistory_tenant_id_vendor_id_vendor_sku_created_at",
				Unique:  false,
				Columns: []*schema.Column{MatchHistoryColumns[9], MatchHistoryColumns[1], MatchHistoryColumns[2], MatchHistoryColumns[7]},
			},
			{
				Name:    "matchhistory_tenant_id_confirmed",
				Unique:  false,
				Columns: []*schema.Column{MatchHistoryColumns[9], MatchHistoryColumns[6]},
			},
		},
	}
	// ProductsColumns holds the columns for the "products" table.
	ProductsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "sku", Type: field.TypeString},
		{Name: "normalized_sku", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "barcode", Type: field.TypeString, Nullable: true},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeUUID},
	}
	// ProductsTable holds the schema information for the "products" table.
	ProductsTable = &schema.Table{
		Name:       "products",
		Columns:    ProductsColumns,
		PrimaryKey: []*schema.Column{ProductsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "products_tenants_products",
				Columns:    []*schema.Column{ProductsColumns[10]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "product_tenant_id_sku",
				Unique:  true,
				Columns: []*schema.Column{ProductsColumns[10], ProductsColumns[1]},
			},
			{
				Name:    "product_tenant_id_normalized_sku",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[10], ProductsColumns[2]},
			},
			{
				Name:    "product_tenant_id_barcode",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[10], ProductsColumns[5]},
			},
			{
				Name:    "product_tenant_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{ProductsColumns[10], ProductsColumns[7]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// VendorAliasesColumns holds the columns for the "vendor_aliases" table.
	VendorAliasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_id", Type: field.TypeUUID},
		{Name: "vendor_sku", Type: field.TypeString},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "usage_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "product_id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
	}
	// VendorAliasesTable holds the schema information for the "vendor_aliases" table.
	VendorAliasesTable = &schema.Table{
		Name:       "vendor_aliases",
		Columns:    VendorAliasesColumns,
		PrimaryKey: []*schema.Column{VendorAliasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vendor_aliases_products_aliases",
				Columns:    []*schema.Column{VendorAliasesColumns[6]},
				RefColumns: []*schema.Column{ProductsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "vendor_aliases_tenants_aliases",
				Columns:    []*schema.Column{VendorAliasesColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "vendoralias_tenant_id_vendor_id_vendor_sku",
				Unique:  true,
				Columns: []*schema.Column{VendorAliasesColumns[7], VendorAliasesColumns[1], VendorAliasesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		MatchHistoryTable,
		ProductsTable,
		TenantsTable,
		VendorAliasesTable,
	}
)

func init() {
	MatchHistoryTable.ForeignKeys[0].RefTable = ProductsTable
	MatchHistoryTable.ForeignKeys[1].RefTable = TenantsTable
	MatchHistoryTable.Annotation = &entsql.Annotation{
		Table: "match_history",
	}
	ProductsTable.ForeignKeys[0].RefTable = TenantsTable
	ProductsTable.Annotation = &entsql.Annotation{
		Table: "products",
	}
	TenantsTable.Annotation = &entsql.Annotation{
		Table: "tenants",
	}
	VendorAliasesTable.ForeignKeys[0].RefTable = ProductsTable
	VendorAliasesTable.ForeignKeys[1].RefTable = TenantsTable
	VendorAliasesTable.Annotation = &entsql.Annotation{
		Table: "vendor_aliases",
	}
}
