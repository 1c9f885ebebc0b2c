// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/gen/ent/matchhistory"
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
)

// MatchHistoryCreate is the builder for creating a MatchHistory entity.
type MatchHistoryCreate struct {
	config
	mutation *MatchHistoryMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *MatchHistoryCreate) SetTenantID(v uuid.UUID) *MatchHistoryCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *MatchHistoryCreate) SetVendorID(v uuid.UUID) *MatchHistoryCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *MatchHistoryCreate) SetProductID(v uuid.UUID) *MatchHistoryCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetVendorSku sets the "vendor_sku" field.
func (_c *MatchHistoryCreate) SetVendorSku(v string) *MatchHistoryCreate {
	_c.mutation.SetVendorSku(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MatchHistoryCreate) SetDescription(v string) *MatchHistoryCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MatchHistoryCreate) SetNillableDescription(v *string) *MatchHistoryCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetMethod sets the "method" field.
func (_c *MatchHistoryCreate) SetMethod(v string) *MatchHistoryCreate {
	_c.mutation.SetMethod(v)
	return _c
}

// SetConfidence sets the "confidence" field.
func (_c *MatchHistoryCreate) SetConfidence(v float64) *MatchHistoryCreate {
	_c.mutation.SetConfidence(v)
	return _c
}

// SetConfirmed sets the "confirmed" field.
func (_c *MatchHistoryCreate) SetConfirmed(v bool) *MatchHistoryCreate {
	_c.mutation.SetConfirmed(v)
	return _c
}

// SetNillableConfirmed sets the "confirmed" field if the given value is not nil.
func (_c *MatchHistoryCreate) SetNillableConfirmed(v *bool) *MatchHistoryCreate {
	if v != nil {
		_c.SetConfirmed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MatchHistoryCreate) SetCreatedAt(v time.Time) *MatchHistoryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MatchHistoryCreate) SetNillableCreatedAt(v *time.Time) *MatchHistoryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MatchHistoryCreate) SetID(v uuid.UUID) *MatchHistoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MatchHistoryCreate) SetNillableID(v *uuid.UUID) *MatchHistoryCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *MatchHistoryCreate) SetTenant(v *Tenant) *MatchHistoryCreate {
	return _c.SetTenantID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *MatchHistoryCreate) SetProduct(v *Product) *MatchHistoryCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the MatchHistoryMutation object of the builder.
func (_c *MatchHistoryCreate) Mutation() *MatchHistoryMutation {
	return _c.mutation
}

// Save creates the MatchHistory in the database.
func (_c *MatchHistoryCreate) Save(ctx context.Context) (*MatchHistory, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MatchHistoryCreate) SaveX(ctx context.Context) *MatchHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchHistoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchHistoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MatchHistoryCreate) defaults() {
	if _, ok := _c.mutation.Confirmed(); !ok {
		v := matchhistory.DefaultConfirmed
		_c.mutation.SetConfirmed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := matchhistory.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := matchhistory.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MatchHistoryCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "MatchHistory.tenant_id"`)}
	}
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "MatchHistory.vendor_id"`)}
	}
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "MatchHistory.product_id"`)}
	}
	if _, ok := _c.mutation.VendorSku(); !ok {
		return &ValidationError{Name: "vendor_sku", err: errors.New(`ent: missing required field "MatchHistory.vendor_sku"`)}
	}
	if v, ok := _c.mutation.VendorSku(); ok {
		if err := matchhistory.VendorSkuValidator(v); err != nil {
			return &ValidationError{Name: "vendor_sku", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.vendor_sku": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Method(); !ok {
		return &ValidationError{Name: "method", err: errors.New(`ent: missing required field "MatchHistory.method"`)}
	}
	if v, ok := _c.mutation.Method(); ok {
		if err := matchhistory.MethodValidator(v); err != nil {
			return &ValidationError{Name: "method", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.method": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confidence(); !ok {
		return &ValidationError{Name: "confidence", err: errors.New(`ent: missing required field "MatchHistory.confidence"`)}
	}
	if v, ok := _c.mutation.Confidence(); ok {
		if err := matchhistory.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "MatchHistory.confidence": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Confirmed(); !ok {
		return &ValidationError{Name: "confirmed", err: errors.New(`ent: missing required field "MatchHistory.confirmed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MatchHistory.created_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "MatchHistory.tenant"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "MatchHistory.product"`)}
	}
	return nil
}

func (_c *MatchHistoryCreate) sqlSave(ctx context.Context) (*MatchHistory, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MatchHistoryCreate) createSpec() (*MatchHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &MatchHistory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(matchhistory.Table, sqlgraph.NewFieldSpec(matchhistory.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorID(); ok {
		_spec.SetField(matchhistory.FieldVendorID, field.TypeUUID, value)
		_node.VendorID = value
	}
	if value, ok := _c.mutation.VendorSku(); ok {
		_spec.SetField(matchhistory.FieldVendorSku, field.TypeString, value)
		_node.VendorSku = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(matchhistory.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Method(); ok {
		_spec.SetField(matchhistory.FieldMethod, field.TypeString, value)
		_node.Method = value
	}
	if value, ok := _c.mutation.Confidence(); ok {
		_spec.SetField(matchhistory.FieldConfidence, field.TypeFloat64, value)
		_node.Confidence = value
	}
	if value, ok := _c.mutation.Confirmed(); ok {
		_spec.SetField(matchhistory.FieldConfirmed, field.TypeBool, value)
		_node.Confirmed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(matchhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.TenantTable,
			Columns: []string{matchhistory.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ProductIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   matchhistory.ProductTable,
			Columns: []string{matchhistory.ProductColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(product.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProductID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MatchHistoryCreateBulk is the builder for creating many MatchHistory entities in bulk.
type MatchHistoryCreateBulk struct {
	config
	err      error
	builders []*MatchHistoryCreate
}

// Save creates the MatchHistory entities in the database.
func (_c *MatchHistoryCreateBulk) Save(ctx context.Context) ([]*MatchHistory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MatchHistory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MatchHistoryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MatchHistoryCreateBulk) SaveX(ctx context.Context) []*MatchHistory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MatchHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MatchHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
