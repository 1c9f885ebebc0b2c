// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// MatchHistory is the predicate function for matchhistory builders.
type MatchHistory func(*sql.Selector)

// Product is the predicate function for product builders.
type Product func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// VendorAlias is the predicate function for vendoralias builders.
type VendorAlias func(*sql.Selector)
