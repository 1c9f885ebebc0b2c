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
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
	"github.com/mbalogun/invoice-pipeline/gen/ent/vendoralias"
)

// VendorAliasCreate is the builder for creating a VendorAlias entity.
type VendorAliasCreate struct {
	config
	mutation *VendorAliasMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *VendorAliasCreate) SetTenantID(v uuid.UUID) *VendorAliasCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *VendorAliasCreate) SetVendorID(v uuid.UUID) *VendorAliasCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetProductID sets the "product_id" field.
func (_c *VendorAliasCreate) SetProductID(v uuid.UUID) *VendorAliasCreate {
	_c.mutation.SetProductID(v)
	return _c
}

// SetVendorSku sets the "vendor_sku" field.
func (_c *VendorAliasCreate) SetVendorSku(v string) *VendorAliasCreate {
	_c.mutation.SetVendorSku(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *VendorAliasCreate) SetPriority(v int) *VendorAliasCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *VendorAliasCreate) SetNillablePriority(v *int) *VendorAliasCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetUsageCount sets the "usage_count" field.
func (_c *VendorAliasCreate) SetUsageCount(v int) *VendorAliasCreate {
	_c.mutation.SetUsageCount(v)
	return _c
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_c *VendorAliasCreate) SetNillableUsageCount(v *int) *VendorAliasCreate {
	if v != nil {
		_c.SetUsageCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VendorAliasCreate) SetCreatedAt(v time.Time) *VendorAliasCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VendorAliasCreate) SetNillableCreatedAt(v *time.Time) *VendorAliasCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VendorAliasCreate) SetID(v uuid.UUID) *VendorAliasCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VendorAliasCreate) SetNillableID(v *uuid.UUID) *VendorAliasCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *VendorAliasCreate) SetTenant(v *Tenant) *VendorAliasCreate {
	return _c.SetTenantID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_c *VendorAliasCreate) SetProduct(v *Product) *VendorAliasCreate {
	return _c.SetProductID(v.ID)
}

// Mutation returns the VendorAliasMutation object of the builder.
func (_c *VendorAliasCreate) Mutation() *VendorAliasMutation {
	return _c.mutation
}

// Save creates the VendorAlias in the database.
func (_c *VendorAliasCreate) Save(ctx context.Context) (*VendorAlias, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VendorAliasCreate) SaveX(ctx context.Context) *VendorAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorAliasCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorAliasCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VendorAliasCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := vendoralias.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		v := vendoralias.DefaultUsageCount
		_c.mutation.SetUsageCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := vendoralias.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := vendoralias.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VendorAliasCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "VendorAlias.tenant_id"`)}
	}
	if _, ok := _c.mutation.VendorID(); !ok {
		return &ValidationError{Name: "vendor_id", err: errors.New(`ent: missing required field "VendorAlias.vendor_id"`)}
	}
	if _, ok := _c.mutation.ProductID(); !ok {
		return &ValidationError{Name: "product_id", err: errors.New(`ent: missing required field "VendorAlias.product_id"`)}
	}
	if _, ok := _c.mutation.VendorSku(); !ok {
		return &ValidationError{Name: "vendor_sku", err: errors.New(`ent: missing required field "VendorAlias.vendor_sku"`)}
	}
	if v, ok := _c.mutation.VendorSku(); ok {
		if err := vendoralias.VendorSkuValidator(v); err != nil {
			return &ValidationError{Name: "vendor_sku", err: fmt.Errorf(`ent: validator failed for field "VendorAlias.vendor_sku": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "VendorAlias.priority"`)}
	}
	if _, ok := _c.mutation.UsageCount(); !ok {
		return &ValidationError{Name: "usage_count", err: errors.New(`ent: missing required field "VendorAlias.usage_count"`)}
	}
	if v, ok := _c.mutation.UsageCount(); ok {
		if err := vendoralias.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "VendorAlias.usage_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VendorAlias.created_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "VendorAlias.tenant"`)}
	}
	if len(_c.mutation.ProductIDs()) == 0 {
		return &ValidationError{Name: "product", err: errors.New(`ent: missing required edge "VendorAlias.product"`)}
	}
	return nil
}

func (_c *VendorAliasCreate) sqlSave(ctx context.Context) (*VendorAlias, error) {
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

func (_c *VendorAliasCreate) createSpec() (*VendorAlias, *sqlgraph.CreateSpec) {
	var (
		_node = &VendorAlias{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(vendoralias.Table, sqlgraph.NewFieldSpec(vendoralias.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.VendorID(); ok {
		_spec.SetField(vendoralias.FieldVendorID, field.TypeUUID, value)
		_node.VendorID = value
	}
	if value, ok := _c.mutation.VendorSku(); ok {
		_spec.SetField(vendoralias.FieldVendorSku, field.TypeString, value)
		_node.VendorSku = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(vendoralias.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.UsageCount(); ok {
		_spec.SetField(vendoralias.FieldUsageCount, field.TypeInt, value)
		_node.UsageCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(vendoralias.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   vendoralias.TenantTable,
			Columns: []string{vendoralias.TenantColumn},
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
			Table:   vendoralias.ProductTable,
			Columns: []string{vendoralias.ProductColumn},
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

// VendorAliasCreateBulk is the builder for creating many VendorAlias entities in bulk.
type VendorAliasCreateBulk struct {
	config
	err      error
	builders []*VendorAliasCreate
}

// Save creates the VendorAlias entities in the database.
func (_c *VendorAliasCreateBulk) Save(ctx context.Context) ([]*VendorAlias, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VendorAlias, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VendorAliasMutation)
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
func (_c *VendorAliasCreateBulk) SaveX(ctx context.Context) []*VendorAlias {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VendorAliasCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VendorAliasCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
