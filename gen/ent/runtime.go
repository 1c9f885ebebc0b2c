// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mbalogun/invoice-pipeline/db/ent/schema"
	"github.com/mbalogun/invoice-pipeline/gen/ent/matchhistory"
	"github.com/mbalogun/invoice-pipeline/gen/ent/product"
	"github.com/mbalogun/invoice-pipeline/gen/ent/tenant"
	"github.com/mbalogun/invoice-pipeline/gen/ent/vendoralias"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	matchhistoryFields := schema.MatchHistory{}.Fields()
	_ = matchhistoryFields
	// matchhistoryDescVendorSku is the schema descriptor for vendor_sku field.
	matchhistoryDescVendorSku := matchhistoryFields[4].Descriptor()
	// matchhistory.VendorSkuValidator is a validator for the "vendor_sku" field. It is called by the builders before save.
	matchhistory.VendorSkuValidator = matchhistoryDescVendorSku.Validators[0].(func(string) error)
	// matchhistoryDescMethod is the schema descriptor for method field.
	matchhistoryDescMethod := matchhistoryFields[6].Descriptor()
	// matchhistory.MethodValidator is a validator for the "method" field. It is called by the builders before save.
	matchhistory.MethodValidator = func() func(string) error {
		validators := matchhistoryDescMethod.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(method string) error {
			for _, fn := range fns {
				if err := fn(method); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// matchhistoryDescConfidence is the schema descriptor for confidence field.
	matchhistoryDescConfidence := matchhistoryFields[7].Descriptor()
	// matchhistory.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	matchhistory.ConfidenceValidator = func() func(float64) error {
		validators := matchhistoryDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// matchhistoryDescConfirmed is the schema descriptor for confirmed field.
	matchhistoryDescConfirmed := matchhistoryFields[8].Descriptor()
	// matchhistory.DefaultConfirmed holds the default value on creation for the confirmed field.
	matchhistory.DefaultConfirmed = matchhistoryDescConfirmed.Default.(bool)
	// matchhistoryDescCreatedAt is the schema descriptor for created_at field.
	matchhistoryDescCreatedAt := matchhistoryFields[9].Descriptor()
	// matchhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	matchhistory.DefaultCreatedAt = matchhistoryDescCreatedAt.Default.(func() time.Time)
	// matchhistoryDescID is the schema descriptor for id field.
	matchhistoryDescID := matchhistoryFields[0].Descriptor()
	// matchhistory.DefaultID holds the default value on creation for the id field.
	matchhistory.DefaultID = matchhistoryDescID.Default.(func() uuid.UUID)
	productFields := schema.Product{}.Fields()
	_ = productFields
	// productDescSku is the schema descriptor for sku field.
	productDescSku := productFields[2].Descriptor()
	// product.SkuValidator is a validator for the "sku" field. It is called by the builders before save.
	product.SkuValidator = productDescSku.Validators[0].(func(string) error)
	// productDescNormalizedSku is the schema descriptor for normalized_sku field.
	productDescNormalizedSku := productFields[3].Descriptor()
	// product.NormalizedSkuValidator is a validator for the "normalized_sku" field. It is called by the builders before save.
	product.NormalizedSkuValidator = productDescNormalizedSku.Validators[0].(func(string) error)
	// productDescName is the schema descriptor for name field.
	productDescName := productFields[4].Descriptor()
	// product.NameValidator is a validator for the "name" field. It is called by the builders before save.
	product.NameValidator = productDescName.Validators[0].(func(string) error)
	// productDescIsActive is the schema descriptor for is_active field.
	productDescIsActive := productFields[8].Descriptor()
	// product.DefaultIsActive holds the default value on creation for the is_active field.
	product.DefaultIsActive = productDescIsActive.Default.(bool)
	// productDescCreatedAt is the schema descriptor for created_at field.
	productDescCreatedAt := productFields[9].Descriptor()
	// product.DefaultCreatedAt holds the default value on creation for the created_at field.
	product.DefaultCreatedAt = productDescCreatedAt.Default.(func() time.Time)
	// productDescUpdatedAt is the schema descriptor for updated_at field.
	productDescUpdatedAt := productFields[10].Descriptor()
	// product.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	product.DefaultUpdatedAt = productDescUpdatedAt.Default.(func() time.Time)
	// product.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	product.UpdateDefaultUpdatedAt = productDescUpdatedAt.UpdateDefault.(func() time.Time)
	// productDescID is the schema descriptor for id field.
	productDescID := productFields[0].Descriptor()
	// product.DefaultID holds the default value on creation for the id field.
	product.DefaultID = productDescID.Default.(func() uuid.UUID)
	tenantFields := schema.Tenant{}.Fields()
	_ = tenantFields
	// tenantDescName is the schema descriptor for name field.
	tenantDescName := tenantFields[1].Descriptor()
	// tenant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	tenant.NameValidator = tenantDescName.Validators[0].(func(string) error)
	// tenantDescIsActive is the schema descriptor for is_active field.
	tenantDescIsActive := tenantFields[2].Descriptor()
	// tenant.DefaultIsActive holds the default value on creation for the is_active field.
	tenant.DefaultIsActive = tenantDescIsActive.Default.(bool)
	// tenantDescCreatedAt is the schema descriptor for created_at field.
	tenantDescCreatedAt := tenantFields[3].Descriptor()
	// tenant.DefaultCreatedAt holds the default value on creation for the created_at field.
	tenant.DefaultCreatedAt = tenantDescCreatedAt.Default.(func() time.Time)
	// tenantDescUpdatedAt is the schema descriptor for updated_at field.
	tenantDescUpdatedAt := tenantFields[4].Descriptor()
	// tenant.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tenant.DefaultUpdatedAt = tenantDescUpdatedAt.Default.(func() time.Time)
	// tenant.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tenant.UpdateDefaultUpdatedAt = tenantDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tenantDescID is the schema descriptor for id field.
	tenantDescID := tenantFields[0].Descriptor()
	// tenant.DefaultID holds the default value on creation for the id field.
	tenant.DefaultID = tenantDescID.Default.(func() uuid.UUID)
	vendoraliasFields := schema.VendorAlias{}.Fields()
	_ = vendoraliasFields
	// vendoraliasDescVendorSku is the schema descriptor for vendor_sku field.
	vendoraliasDescVendorSku := vendoraliasFields[4].Descriptor()
	// vendoralias.VendorSkuValidator is a validator for the "vendor_sku" field. It is called by the builders before save.
	vendoralias.VendorSkuValidator = vendoraliasDescVendorSku.Validators[0].(func(string) error)
	// vendoraliasDescPriority is the schema descriptor for priority field.
	vendoraliasDescPriority := vendoraliasFields[5].Descriptor()
	// vendoralias.DefaultPriority holds the default value on creation for the priority field.
	vendoralias.DefaultPriority = vendoraliasDescPriority.Default.(int)
	// vendoraliasDescUsageCount is the schema descriptor for usage_count field.
	vendoraliasDescUsageCount := vendoraliasFields[6].Descriptor()
	// vendoralias.DefaultUsageCount holds the default value on creation for the usage_count field.
	vendoralias.DefaultUsageCount = vendoraliasDescUsageCount.Default.(int)
	// vendoralias.UsageCountValidator is a validator for the "usage_count" field. It is called by the builders before save.
	vendoralias.UsageCountValidator = vendoraliasDescUsageCount.Validators[0].(func(int) error)
	// vendoraliasDescCreatedAt is the schema descriptor for created_at field.
	vendoraliasDescCreatedAt := vendoraliasFields[7].Descriptor()
	// vendoralias.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendoralias.DefaultCreatedAt = vendoraliasDescCreatedAt.Default.(func() time.Time)
	// vendoraliasDescID is the schema descriptor for id field.
	vendoraliasDescID := vendoraliasFields[0].Descriptor()
	// vendoralias.DefaultID holds the default value on creation for the id field.
	vendoralias.DefaultID = vendoraliasDescID.Default.(func() uuid.UUID)
}
