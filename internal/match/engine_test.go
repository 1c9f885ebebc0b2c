package match

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mbalogun/invoice-pipeline/constants"
	"github.com/mbalogun/invoice-pipeline/internal/entity"
)

// in-memory fakes for the repository contracts

type fakeCatalog struct {
	products []entity.Product
	err      error
}

func (f *fakeCatalog) GetByID(_ context.Context, _ uuid.UUID, productID uuid.UUID) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].ID == productID {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetBySKU(_ context.Context, _ uuid.UUID, normalizedSKU string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.products {
		if f.products[i].NormalizedSKU == normalizedSKU {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetByBarcode(_ context.Context, _ uuid.UUID, barcode string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Barcode == barcode {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) GetByAttribute(_ context.Context, _ uuid.UUID, key, value string) (*entity.Product, error) {
	for i := range f.products {
		if f.products[i].Attributes[key] == value {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) ActiveProducts(_ context.Context, _ uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeAliases struct {
	aliases []entity.VendorAlias
	bumped  []uuid.UUID
}

func (f *fakeAliases) ForVendorSKU(_ context.Context, _, _ uuid.UUID, vendorSKU string) ([]entity.VendorAlias, error) {
	var out []entity.VendorAlias
	for _, a := range f.aliases {
		if a.VendorSKU == vendorSKU {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAliases) IncrementUsage(_ context.Context, aliasID uuid.UUID) error {
	f.bumped = append(f.bumped, aliasID)
	return nil
}

type fakeHistory struct {
	latest   *entity.MatchHistory
	recorded []entity.MatchHistory
}

func (f *fakeHistory) LatestConfirmed(_ context.Context, _, _ uuid.UUID, _, _ string) (*entity.MatchHistory, error) {
	return f.latest, nil
}

func (f *fakeHistory) Record(_ context.Context, h entity.MatchHistory) error {
	f.recorded = append(f.recorded, h)
	return nil
}

func product(sku, name string, active bool) entity.Product {
	return entity.Product{
		ID:            uuid.New(),
		SKU:           sku,
		NormalizedSKU: NormalizeSKU(sku),
		Name:          name,
		IsActive:      active,
	}
}

func newTestEngine(catalog *fakeCatalog, aliases *fakeAliases, history *fakeHistory) *Engine {
	if catalog == nil {
		catalog = &fakeCatalog{}
	}
	if aliases == nil {
		aliases = &fakeAliases{}
	}
	if history == nil {
		history = &fakeHistory{}
	}
	return NewEngine(catalog, aliases, history, nil)
}

func TestNormalizeSKU(t *testing.T) {
	cases := map[string]string{
		"ABC-123":  "abc123",
		"abc 123":  "abc123",
		"A.B/C_1":  "abc1",
		"  WD40  ": "wd40",
		"":         "",
	}
	for in, want := range cases {
		if got := NormalizeSKU(in); got != want {
			t.Errorf("NormalizeSKU(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMatchAliasBeatsExactSKU(t *testing.T) {
	tenantID, vendorID := uuid.New(), uuid.New()

	// the catalog also holds a product whose internal SKU equals the line's
	// vendor SKU; the alias must still win
	aliased := product("INTERNAL-9", "Widget Pro", true)
	direct := product("ABC-123", "Widget Basic", true)
	catalog := &fakeCatalog{products: []entity.Product{aliased, direct}}

	alias := entity.VendorAlias{ID: uuid.New(), VendorSKU: "abc123", ProductID: aliased.ID, Priority: 1}
	e := newTestEngine(catalog, &fakeAliases{aliases: []entity.VendorAlias{alias}}, nil)

	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "ABC-123"}, vendorID, tenantID)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodAlias {
		t.Fatalf("method = %q, want alias", res.Method)
	}
	if res.Confidence != 1.0 {
		t.Fatalf("confidence = %v, want 1.0", res.Confidence)
	}
	if res.MatchedSKU != "INTERNAL-9" {
		t.Fatalf("matched %q, want the aliased product", res.MatchedSKU)
	}
	if res.AliasID == nil || *res.AliasID != alias.ID {
		t.Fatal("alias id not carried on the result")
	}
}

func TestMatchExactNormalizedSKU(t *testing.T) {
	p := product("ABC123", "Widget", true)
	e := newTestEngine(&fakeCatalog{products: []entity.Product{p}}, nil, nil)

	// dashed vendor SKU still hits the undashed internal SKU
	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "ABC-123"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodExactSKU || res.Confidence != 0.9 {
		t.Fatalf("got method %q confidence %v", res.Method, res.Confidence)
	}
	if !strings.Contains(res.Reason, `"ABC123"`) {
		t.Fatalf("reason %q does not name the internal SKU", res.Reason)
	}
}

func TestMatchInactiveAliasTargetFallsThrough(t *testing.T) {
	inactive := product("OLD-1", "Retired Widget", false)
	replacement := product("ABC123", "Widget", true)
	catalog := &fakeCatalog{products: []entity.Product{inactive, replacement}}
	aliases := &fakeAliases{aliases: []entity.VendorAlias{
		{ID: uuid.New(), VendorSKU: "abc123", ProductID: inactive.ID, Priority: 1},
	}}
	e := newTestEngine(catalog, aliases, nil)

	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "ABC-123"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodExactSKU {
		t.Fatalf("method = %q, want fall-through to exact SKU", res.Method)
	}
}

func TestMatchAliasPriorityOrderRespected(t *testing.T) {
	first := product("P-1", "Primary", true)
	second := product("P-2", "Secondary", true)
	catalog := &fakeCatalog{products: []entity.Product{first, second}}
	// the fake returns aliases in stored order, standing in for the
	// repository's priority/usage ordering
	aliases := &fakeAliases{aliases: []entity.VendorAlias{
		{ID: uuid.New(), VendorSKU: "x1", ProductID: first.ID, Priority: 1},
		{ID: uuid.New(), VendorSKU: "x1", ProductID: second.ID, Priority: 2},
	}}
	e := newTestEngine(catalog, aliases, nil)

	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "X1"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.MatchedSKU != "P-1" {
		t.Fatalf("matched %q, want the first-ranked alias target", res.MatchedSKU)
	}
}

func TestMatchBarcode(t *testing.T) {
	p := product("SKU-5", "Scanner Widget", true)
	p.Barcode = "012345678905"
	e := newTestEngine(&fakeCatalog{products: []entity.Product{p}}, nil, nil)

	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "012345678905"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodBarcode || res.Confidence != 0.85 {
		t.Fatalf("got method %q confidence %v", res.Method, res.Confidence)
	}
}

func TestMatchManufacturerPartAttribute(t *testing.T) {
	p := product("SKU-6", "Pump", true)
	p.Attributes = map[string]string{AttrManufacturerPart: "mfg778899"}
	e := newTestEngine(&fakeCatalog{products: []entity.Product{p}}, nil, nil)

	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "MFG-778899"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodAttribute || res.Confidence != 0.85 {
		t.Fatalf("got method %q confidence %v", res.Method, res.Confidence)
	}
}

func TestMatchFuzzyDescription(t *testing.T) {
	near := product("SKU-7", "Stainless Steel Hex Bolt M8", true)
	far := product("SKU-8", "Ballpoint Pen Blue", true)
	e := newTestEngine(&fakeCatalog{products: []entity.Product{near, far}}, nil, nil)

	line := entity.LineItem{VendorSKU: "ZZZ-0", Description: "stainless steel hex bolt m8"}
	res, err := e.Match(context.Background(), line, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodFuzzy {
		t.Fatalf("method = %q, want fuzzy", res.Method)
	}
	if res.MatchedSKU != "SKU-7" {
		t.Fatalf("matched %q", res.MatchedSKU)
	}
	// similarity 1.0 scaled by the fuzzy factor
	if math.Abs(res.Confidence-0.8) > 1e-9 {
		t.Fatalf("confidence = %v, want 0.8", res.Confidence)
	}
}

func TestMatchFuzzyBelowThresholdDoesNotHit(t *testing.T) {
	p := product("SKU-9", "Ballpoint Pen Blue", true)
	e := newTestEngine(&fakeCatalog{products: []entity.Product{p}}, nil, nil)

	line := entity.LineItem{VendorSKU: "ZZZ-0", Description: "industrial compressor"}
	res, err := e.Match(context.Background(), line, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method == constants.MatchMethodFuzzy {
		t.Fatalf("dissimilar description matched fuzzily (confidence %v)", res.Confidence)
	}
}

func TestMatchConfirmedHistory(t *testing.T) {
	p := product("SKU-10", "Gasket", true)
	catalog := &fakeCatalog{products: []entity.Product{p}}
	history := &fakeHistory{latest: &entity.MatchHistory{ProductID: p.ID, Confirmed: true}}
	e := newTestEngine(catalog, nil, history)

	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "UNSEEN-1"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodHistory || res.Confidence != 0.75 {
		t.Fatalf("got method %q confidence %v", res.Method, res.Confidence)
	}
}

func TestMatchMissReturnsAlternatives(t *testing.T) {
	// names padded so similarity to the line lands between the alternative
	// floor (0.3/0.8) and the fuzzy cutoff (0.5): suggested, never matched
	products := []entity.Product{
		product("ALT-1", "blue widget extra long name", true),
		product("ALT-2", "blue widget some other label", true),
		product("ALT-3", "unrelated industrial compressor part", true),
	}
	e := newTestEngine(&fakeCatalog{products: products}, nil, nil)

	line := entity.LineItem{Description: "blue widget"}
	res, err := e.Match(context.Background(), line, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodNone {
		t.Fatalf("method = %q, want a miss", res.Method)
	}
	if res.Confidence != 0 {
		t.Fatalf("miss carries confidence %v", res.Confidence)
	}
	if len(res.Alternatives) != 2 {
		t.Fatalf("got %d alternatives, want the 2 above the floor: %+v", len(res.Alternatives), res.Alternatives)
	}
	for i := 1; i < len(res.Alternatives); i++ {
		if res.Alternatives[i].Confidence > res.Alternatives[i-1].Confidence {
			t.Fatal("alternatives not sorted by confidence")
		}
	}
	if len(res.Alternatives) > 5 {
		t.Fatalf("%d alternatives exceeds cap", len(res.Alternatives))
	}
	for _, alt := range res.Alternatives {
		if alt.Confidence <= 0.3 {
			t.Fatalf("alternative below floor: %+v", alt)
		}
	}
}

func TestMatchMissSurfacesNearMissBarcode(t *testing.T) {
	// one digit off the catalog barcode: no exact hit anywhere, but the
	// product should still come back as the top suggestion
	p := product("SCAN-1", "Scanner Widget", true)
	p.Barcode = "012345678905"
	other := product("ALT-9", "unrelated industrial compressor part", true)
	e := newTestEngine(&fakeCatalog{products: []entity.Product{p, other}}, nil, nil)

	line := entity.LineItem{VendorSKU: "012345678906", Description: "x"}
	res, err := e.Match(context.Background(), line, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodNone {
		t.Fatalf("method = %q, want a miss", res.Method)
	}
	if len(res.Alternatives) != 1 {
		t.Fatalf("got %d alternatives, want the barcode near-miss only: %+v", len(res.Alternatives), res.Alternatives)
	}
	alt := res.Alternatives[0]
	if alt.SKU != "SCAN-1" {
		t.Fatalf("suggested %q, want the barcode near-miss", alt.SKU)
	}
	// similarity 11/12 scaled by the barcode tier confidence
	if alt.Confidence < 0.77 || alt.Confidence > 0.79 {
		t.Fatalf("confidence = %v", alt.Confidence)
	}
}

func TestMatchTotalMiss(t *testing.T) {
	e := newTestEngine(nil, nil, nil)
	res, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "NOPE", Description: "x"}, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if res.Method != constants.MatchMethodNone || res.Confidence != 0 {
		t.Fatalf("got %+v, want a clean miss", res)
	}
	if res.Reason != "no match found" {
		t.Fatalf("reason = %q", res.Reason)
	}
}

func TestMatchDatabaseErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	e := newTestEngine(&fakeCatalog{err: boom}, nil, nil)

	_, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "ABC-1"}, uuid.New(), uuid.New())
	if err == nil || !errors.Is(err, boom) {
		t.Fatalf("expected wrapped database error, got %v", err)
	}
}

func TestMatchDoesNotWriteAnything(t *testing.T) {
	p := product("INTERNAL-9", "Widget", true)
	catalog := &fakeCatalog{products: []entity.Product{p}}
	alias := entity.VendorAlias{ID: uuid.New(), VendorSKU: "abc123", ProductID: p.ID}
	aliases := &fakeAliases{aliases: []entity.VendorAlias{alias}}
	history := &fakeHistory{}
	e := newTestEngine(catalog, aliases, history)

	if _, err := e.Match(context.Background(), entity.LineItem{VendorSKU: "ABC-123"}, uuid.New(), uuid.New()); err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(aliases.bumped) != 0 || len(history.recorded) != 0 {
		t.Fatal("Match performed writes")
	}
}

func TestRecordOutcome(t *testing.T) {
	aliases := &fakeAliases{}
	history := &fakeHistory{}
	e := newTestEngine(nil, aliases, history)

	aliasID := uuid.New()
	h := entity.MatchHistory{ID: uuid.New(), VendorSKU: "abc123", Confirmed: true}
	if err := e.RecordOutcome(context.Background(), h, &aliasID); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if len(history.recorded) != 1 || history.recorded[0].ID != h.ID {
		t.Fatalf("history = %+v", history.recorded)
	}
	if len(aliases.bumped) != 1 || aliases.bumped[0] != aliasID {
		t.Fatalf("usage bumps = %v", aliases.bumped)
	}

	// non-alias outcomes record history without touching usage counts
	if err := e.RecordOutcome(context.Background(), h, nil); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if len(aliases.bumped) != 1 {
		t.Fatal("usage bumped without an alias")
	}
}

func TestClassify(t *testing.T) {
	th := Thresholds{AutoAccept: 0.9, Review: 0.5}
	cases := []struct {
		confidence float64
		want       Decision
	}{
		{1.0, AutoAccept},
		{0.9, AutoAccept},
		{0.89, Review},
		{0.5, Review},
		{0.49, Manual},
		{0, Manual},
	}
	for _, tc := range cases {
		if got := Classify(tc.confidence, th); got != tc.want {
			t.Errorf("Classify(%v) = %q, want %q", tc.confidence, got, tc.want)
		}
	}
}
