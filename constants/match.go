package constants

// Match methods recorded on match history rows, in cascade priority order.
var MatchMethods = []string{
	MatchMethodAlias,
	MatchMethodExactSKU,
	MatchMethodBarcode,
	MatchMethodAttribute,
	MatchMethodFuzzy,
	MatchMethodHistory,
	MatchMethodNone,
}

const (
	MatchMethodAlias     = "alias"
	MatchMethodExactSKU  = "exact_sku"
	MatchMethodBarcode   = "barcode"
	MatchMethodAttribute = "attribute"
	MatchMethodFuzzy     = "fuzzy"
	MatchMethodHistory   = "history"
	MatchMethodNone      = "none"
)
