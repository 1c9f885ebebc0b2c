// Package match resolves vendor line items to catalog products through a
// strict confidence cascade: alias, exact SKU, barcode/attribute, fuzzy
// description, historical match. Matching never fails on a miss; only
// database errors propagate.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/common"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// Cascade confidences and cutoffs.
const (
	aliasConfidence     = 1.0
	exactSKUConfidence  = 0.9
	barcodeConfidence   = 0.85
	attributeConfidence = 0.85
	fuzzyScale          = 0.8
	fuzzyMinSimilarity  = 0.5
	historyConfidence   = 0.75

	alternativeMinConfidence = 0.3
	maxAlternatives          = 5
)

// Engine runs the cascade against read-only repository access. It is safe
// for concurrent use as long as its repositories are.
type Engine struct {
	catalog Catalog
	aliases Aliases
	history History
	logger  *slog.Logger
}

func NewEngine(catalog Catalog, aliases Aliases, history History, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{catalog: catalog, aliases: aliases, history: history, logger: logger}
}

// Match resolves one line for a vendor within a tenant. Strategies run in
// strict priority order, returning on the first hit; a total miss yields
// confidence 0 plus ranked alternatives.
func (e *Engine) Match(ctx context.Context, line entity.LineItem, vendorID, tenantID uuid.UUID) (entity.MatchResult, error) {
	sku := NormalizeSKU(line.VendorSKU)

	// 1) per-vendor alias table
	if sku != "" {
		res, hit, err := e.matchAlias(ctx, tenantID, vendorID, sku)
		if err != nil {
			return entity.MatchResult{}, err
		}
		if hit {
			return res, nil
		}
	}

	// 2) exact normalized internal SKU
	if sku != "" {
		p, err := e.catalog.GetBySKU(ctx, tenantID, sku)
		if err != nil {
			return entity.MatchResult{}, common.WrapError(err, "catalog sku lookup")
		}
		if p != nil && p.IsActive {
			return hitResult(p, exactSKUConfidence, constants.MatchMethodExactSKU,
				fmt.Sprintf("exact internal SKU match on %q", p.SKU)), nil
		}
	}

	// 3) barcode, then manufacturer-part / vendor-SKU attributes
	if sku != "" {
		res, hit, err := e.matchIdentifiers(ctx, tenantID, sku)
		if err != nil {
			return entity.MatchResult{}, err
		}
		if hit {
			return res, nil
		}
	}

	// scan once; the ranking serves both the fuzzy tier and fallback
	// alternatives
	ranked, err := e.rankByDescription(ctx, tenantID, line.Description)
	if err != nil {
		return entity.MatchResult{}, err
	}

	// 4) fuzzy description
	if len(ranked) > 0 && ranked[0].similarity > fuzzyMinSimilarity {
		best := ranked[0]
		res := hitResult(&best.product, best.similarity*fuzzyScale, constants.MatchMethodFuzzy,
			fmt.Sprintf("fuzzy description match (similarity %.2f)", best.similarity))
		res.Alternatives = alternatives(ranked[1:])
		return res, nil
	}

	// 5) most recent user-confirmed historical match
	res, hit, err := e.matchHistory(ctx, tenantID, vendorID, sku, line.Description)
	if err != nil {
		return entity.MatchResult{}, err
	}
	if hit {
		return res, nil
	}

	e.logger.Debug("no match for line",
		"tenant_id", tenantID,
		"vendor_id", vendorID,
		"vendor_sku", line.VendorSKU,
	)
	return entity.MatchResult{
		Confidence:   0,
		Method:       constants.MatchMethodNone,
		Reason:       "no match found",
		Alternatives: fallbackAlternatives(ranked, sku),
	}, nil
}

// matchAlias walks the vendor's aliases in rank order. An alias pointing
// at an inactive or missing product is a miss and falls through.
func (e *Engine) matchAlias(ctx context.Context, tenantID, vendorID uuid.UUID, sku string) (entity.MatchResult, bool, error) {
	aliases, err := e.aliases.ForVendorSKU(ctx, tenantID, vendorID, sku)
	if err != nil {
		return entity.MatchResult{}, false, common.WrapError(err, "alias lookup")
	}
	for _, a := range aliases {
		p, err := e.catalog.GetByID(ctx, tenantID, a.ProductID)
		if err != nil {
			return entity.MatchResult{}, false, common.WrapError(err, "alias product lookup")
		}
		if p == nil || !p.IsActive {
			continue
		}
		res := hitResult(p, aliasConfidence, constants.MatchMethodAlias,
			fmt.Sprintf("vendor alias match (priority %d)", a.Priority))
		aliasID := a.ID
		res.AliasID = &aliasID
		return res, true, nil
	}
	return entity.MatchResult{}, false, nil
}

func (e *Engine) matchIdentifiers(ctx context.Context, tenantID uuid.UUID, sku string) (entity.MatchResult, bool, error) {
	p, err := e.catalog.GetByBarcode(ctx, tenantID, sku)
	if err != nil {
		return entity.MatchResult{}, false, common.WrapError(err, "barcode lookup")
	}
	if p != nil && p.IsActive {
		return hitResult(p, barcodeConfidence, constants.MatchMethodBarcode, "barcode match"), true, nil
	}

	for _, key := range []string{AttrManufacturerPart, AttrVendorSKU} {
		p, err := e.catalog.GetByAttribute(ctx, tenantID, key, sku)
		if err != nil {
			return entity.MatchResult{}, false, common.WrapError(err, "attribute lookup")
		}
		if p != nil && p.IsActive {
			return hitResult(p, attributeConfidence, constants.MatchMethodAttribute,
				fmt.Sprintf("%s attribute match", key)), true, nil
		}
	}
	return entity.MatchResult{}, false, nil
}

func (e *Engine) matchHistory(ctx context.Context, tenantID, vendorID uuid.UUID, sku, description string) (entity.MatchResult, bool, error) {
	h, err := e.history.LatestConfirmed(ctx, tenantID, vendorID, sku, description)
	if err != nil {
		return entity.MatchResult{}, false, common.WrapError(err, "history lookup")
	}
	if h == nil {
		return entity.MatchResult{}, false, nil
	}
	p, err := e.catalog.GetByID(ctx, tenantID, h.ProductID)
	if err != nil {
		return entity.MatchResult{}, false, common.WrapError(err, "history product lookup")
	}
	if p == nil || !p.IsActive {
		return entity.MatchResult{}, false, nil
	}
	return hitResult(p, historyConfidence, constants.MatchMethodHistory,
		"previously confirmed match for this vendor"), true, nil
}

type scored struct {
	product    entity.Product
	similarity float64
}

// rankByDescription scores every active product against the line
// description, best first. Empty descriptions rank nothing.
func (e *Engine) rankByDescription(ctx context.Context, tenantID uuid.UUID, description string) ([]scored, error) {
	if description == "" {
		return nil, nil
	}
	products, err := e.catalog.ActiveProducts(ctx, tenantID)
	if err != nil {
		return nil, common.WrapError(err, "active products scan")
	}

	ranked := make([]scored, 0, len(products))
	for _, p := range products {
		sim := Similarity(description, p.Name)
		if p.Description != "" {
			if s := Similarity(description, p.Description); s > sim {
				sim = s
			}
		}
		ranked = append(ranked, scored{product: p, similarity: sim})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].similarity > ranked[j].similarity
	})
	return ranked, nil
}

// alternatives converts ranked products to suggestions, keeping only
// those above the blended confidence floor, capped at five.
func alternatives(ranked []scored) []entity.Alternative {
	var out []entity.Alternative
	for _, r := range ranked {
		conf := r.similarity * fuzzyScale
		if conf <= alternativeMinConfidence {
			break
		}
		out = append(out, entity.Alternative{
			ProductID:  r.product.ID,
			SKU:        r.product.SKU,
			Name:       r.product.Name,
			Confidence: conf,
		})
		if len(out) == maxAlternatives {
			break
		}
	}
	return out
}

// fallbackAlternatives ranks suggestions for a total miss. Each product's
// confidence is the better of the scaled description similarity and a
// near-miss barcode score, so a mistyped barcode still surfaces.
func fallbackAlternatives(ranked []scored, sku string) []entity.Alternative {
	blended := make([]scored, len(ranked))
	for i, r := range ranked {
		conf := r.similarity * fuzzyScale
		if sku != "" && r.product.Barcode != "" {
			if c := Similarity(sku, NormalizeSKU(r.product.Barcode)) * barcodeConfidence; c > conf {
				conf = c
			}
		}
		blended[i] = scored{product: r.product, similarity: conf}
	}
	sort.SliceStable(blended, func(i, j int) bool {
		return blended[i].similarity > blended[j].similarity
	})

	var out []entity.Alternative
	for _, b := range blended {
		if b.similarity <= alternativeMinConfidence {
			break
		}
		out = append(out, entity.Alternative{
			ProductID:  b.product.ID,
			SKU:        b.product.SKU,
			Name:       b.product.Name,
			Confidence: b.similarity,
		})
		if len(out) == maxAlternatives {
			break
		}
	}
	return out
}

func hitResult(p *entity.Product, confidence float64, method, reason string) entity.MatchResult {
	productID := p.ID
	return entity.MatchResult{
		MatchedSKU: p.SKU,
		ProductID:  &productID,
		Confidence: confidence,
		Method:     method,
		Reason:     reason,
	}
}

// RecordOutcome persists a resolved line to match history and, for alias
// hits, bumps the alias usage count that ranks future lookups.
func (e *Engine) RecordOutcome(ctx context.Context, h entity.MatchHistory, aliasID *uuid.UUID) error {
	if err := e.history.Record(ctx, h); err != nil {
		return common.WrapError(err, "record match history")
	}
	if aliasID != nil {
		if err := e.aliases.IncrementUsage(ctx, *aliasID); err != nil {
			return common.WrapError(err, "increment alias usage")
		}
	}
	return nil
}
