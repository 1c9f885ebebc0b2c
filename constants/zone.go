package constants

// Zone types a detector may emit for a page region.
const (
	ZoneHeader    = "header"
	ZoneTotals    = "totals"
	ZoneLineItems = "line-items"
	ZoneFooter    = "footer"
	ZoneBarcode   = "barcode"
	ZoneLogo      = "logo"
)

// ZoneTypes holds every recognized zone type.
var ZoneTypes = []string{
	ZoneHeader,
	ZoneTotals,
	ZoneLineItems,
	ZoneFooter,
	ZoneBarcode,
	ZoneLogo,
}

// Variant kinds produced during pre-recognition enhancement.
const (
	VariantGrayscale = "grayscale"
	VariantContrast  = "contrast"
	VariantDeskewed  = "deskewed"
)
