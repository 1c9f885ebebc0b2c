// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/gen/ent/predicate"
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
	"github.com/mbalogun/invoice-pipeline/gen/ent/vendoralias"
)

// VendorAliasUpdate is the builder for updating VendorAlias entities.
type VendorAliasUpdate struct {
	config
	hooks    []Hook
	mutation *VendorAliasMutation
}

// Where appends a list predicates to the VendorAliasUpdate builder.
func (_u *VendorAliasUpdate) Where(ps ...predicate.VendorAlias) *VendorAliasUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTenantID sets the "tenant_id" field.
func (_u *VendorAliasUpdate) SetTenantID(v uuid.UUID) *VendorAliasUpdate {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillableTenantID(v *uuid.UUID) *VendorAliasUpdate {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *VendorAliasUpdate) SetVendorID(v uuid.UUID) *VendorAliasUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillableVendorID(v *uuid.UUID) *VendorAliasUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *VendorAliasUpdate) SetProductID(v uuid.UUID) *VendorAliasUpdate {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillableProductID(v *uuid.UUID) *VendorAliasUpdate {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetVendorSku sets the "vendor_sku" field.
func (_u *VendorAliasUpdate) SetVendorSku(v string) *VendorAliasUpdate {
	_u.mutation.SetVendorSku(v)
	return _u
}

// SetNillableVendorSku sets the "vendor_sku" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillableVendorSku(v *string) *VendorAliasUpdate {
	if v != nil {
		_u.SetVendorSku(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *VendorAliasUpdate) SetPriority(v int) *VendorAliasUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillablePriority(v *int) *VendorAliasUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *VendorAliasUpdate) AddPriority(v int) *VendorAliasUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *VendorAliasUpdate) SetUsageCount(v int) *VendorAliasUpdate {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillableUsageCount(v *int) *VendorAliasUpdate {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *VendorAliasUpdate) AddUsageCount(v int) *VendorAliasUpdate {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorAliasUpdate) SetCreatedAt(v time.Time) *VendorAliasUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorAliasUpdate) SetNillableCreatedAt(v *time.Time) *VendorAliasUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_u *VendorAliasUpdate) SetTenant(v *Tenant) *VendorAliasUpdate {
	return _u.SetTenantID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *VendorAliasUpdate) SetProduct(v *Product) *VendorAliasUpdate {
	return _u.SetProductID(v.ID)
}

// Mutation returns the VendorAliasMutation object of the builder.
func (_u *VendorAliasUpdate) Mutation() *VendorAliasMutation {
	return _u.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (_u *VendorAliasUpdate) ClearTenant() *VendorAliasUpdate {
	_u.mutation.ClearTenant()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *VendorAliasUpdate) ClearProduct() *VendorAliasUpdate {
	_u.mutation.ClearProduct()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VendorAliasUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorAliasUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VendorAliasUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorAliasUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorAliasUpdate) check() error {
	if v, ok := _u.mutation.VendorSku(); ok {
		if err := vendoralias.VendorSkuValidator(v); err != nil {
			return &ValidationError{Name: "vendor_sku", err: fmt.Errorf(`ent: validator failed for field "VendorAlias.vendor_sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := vendoralias.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "VendorAlias.usage_count": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorAlias.tenant"`)
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorAlias.product"`)
	}
	return nil
}

func (_u *VendorAliasUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendoralias.Table, vendoralias.Columns, sqlgraph.NewFieldSpec(vendoralias.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(vendoralias.FieldVendorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorSku(); ok {
		_spec.SetField(vendoralias.FieldVendorSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(vendoralias.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(vendoralias.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(vendoralias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(vendoralias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendoralias.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendoralias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VendorAliasUpdateOne is the builder for updating a single VendorAlias entity.
type VendorAliasUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VendorAliasMutation
}

// SetTenantID sets the "tenant_id" field.
func (_u *VendorAliasUpdateOne) SetTenantID(v uuid.UUID) *VendorAliasUpdateOne {
	_u.mutation.SetTenantID(v)
	return _u
}

// SetNillableTenantID sets the "tenant_id" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillableTenantID(v *uuid.UUID) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetTenantID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *VendorAliasUpdateOne) SetVendorID(v uuid.UUID) *VendorAliasUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillableVendorID(v *uuid.UUID) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// SetProductID sets the "product_id" field.
func (_u *VendorAliasUpdateOne) SetProductID(v uuid.UUID) *VendorAliasUpdateOne {
	_u.mutation.SetProductID(v)
	return _u
}

// SetNillableProductID sets the "product_id" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillableProductID(v *uuid.UUID) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetProductID(*v)
	}
	return _u
}

// SetVendorSku sets the "vendor_sku" field.
func (_u *VendorAliasUpdateOne) SetVendorSku(v string) *VendorAliasUpdateOne {
	_u.mutation.SetVendorSku(v)
	return _u
}

// SetNillableVendorSku sets the "vendor_sku" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillableVendorSku(v *string) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetVendorSku(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *VendorAliasUpdateOne) SetPriority(v int) *VendorAliasUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillablePriority(v *int) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *VendorAliasUpdateOne) AddPriority(v int) *VendorAliasUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetUsageCount sets the "usage_count" field.
func (_u *VendorAliasUpdateOne) SetUsageCount(v int) *VendorAliasUpdateOne {
	_u.mutation.ResetUsageCount()
	_u.mutation.SetUsageCount(v)
	return _u
}

// SetNillableUsageCount sets the "usage_count" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillableUsageCount(v *int) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetUsageCount(*v)
	}
	return _u
}

// AddUsageCount adds value to the "usage_count" field.
func (_u *VendorAliasUpdateOne) AddUsageCount(v int) *VendorAliasUpdateOne {
	_u.mutation.AddUsageCount(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *VendorAliasUpdateOne) SetCreatedAt(v time.Time) *VendorAliasUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *VendorAliasUpdateOne) SetNillableCreatedAt(v *time.Time) *VendorAliasUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_u *VendorAliasUpdateOne) SetTenant(v *Tenant) *VendorAliasUpdateOne {
	return _u.SetTenantID(v.ID)
}

// SetProduct sets the "product" edge to the Product entity.
func (_u *VendorAliasUpdateOne) SetProduct(v *Product) *VendorAliasUpdateOne {
	return _u.SetProductID(v.ID)
}

// Mutation returns the VendorAliasMutation object of the builder.
func (_u *VendorAliasUpdateOne) Mutation() *VendorAliasMutation {
	return _u.mutation
}

// ClearTenant clears the "tenant" edge to the Tenant entity.
func (_u *VendorAliasUpdateOne) ClearTenant() *VendorAliasUpdateOne {
	_u.mutation.ClearTenant()
	return _u
}

// ClearProduct clears the "product" edge to the Product entity.
func (_u *VendorAliasUpdateOne) ClearProduct() *VendorAliasUpdateOne {
	_u.mutation.ClearProduct()
	return _u
}

// Where appends a list predicates to the VendorAliasUpdate builder.
func (_u *VendorAliasUpdateOne) Where(ps ...predicate.VendorAlias) *VendorAliasUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VendorAliasUpdateOne) Select(field string, fields ...string) *VendorAliasUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VendorAlias entity.
func (_u *VendorAliasUpdateOne) Save(ctx context.Context) (*VendorAlias, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VendorAliasUpdateOne) SaveX(ctx context.Context) *VendorAlias {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VendorAliasUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VendorAliasUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VendorAliasUpdateOne) check() error {
	if v, ok := _u.mutation.VendorSku(); ok {
		if err := vendoralias.VendorSkuValidator(v); err != nil {
			return &ValidationError{Name: "vendor_sku", err: fmt.Errorf(`ent: validator failed for field "VendorAlias.vendor_sku": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UsageCount(); ok {
		if err := vendoralias.UsageCountValidator(v); err != nil {
			return &ValidationError{Name: "usage_count", err: fmt.Errorf(`ent: validator failed for field "VendorAlias.usage_count": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorAlias.tenant"`)
	}
	if _u.mutation.ProductCleared() && len(_u.mutation.ProductIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VendorAlias.product"`)
	}
	return nil
}

func (_u *VendorAliasUpdateOne) sqlSave(ctx context.Context) (_node *VendorAlias, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(vendoralias.Table, vendoralias.Columns, sqlgraph.NewFieldSpec(vendoralias.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VendorAlias.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, vendoralias.FieldID)
		for _, f := range fields {
			if !vendoralias.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != vendoralias.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.VendorID(); ok {
		_spec.SetField(vendoralias.FieldVendorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.VendorSku(); ok {
		_spec.SetField(vendoralias.FieldVendorSku, field.TypeString, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(vendoralias.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(vendoralias.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UsageCount(); ok {
		_spec.SetField(vendoralias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsageCount(); ok {
		_spec.AddField(vendoralias.FieldUsageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(vendoralias.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.TenantCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TenantIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ProductCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProductIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VendorAlias{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{vendoralias.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
