package extractor

import "regexp"

// The matching logic in this package is driven by the data tables below so the
// lexicons can grow without touching the matchers.

// saleKeywords are promotional lexical cues. Any of them appearing anywhere in
// a price string, case-insensitively, marks the parse as a sale price.
var saleKeywords = []string{
	"sale", "save", "was", "now", "special", "promo", "discount",
	"clearance", "reduced", "off", "%", "deal", "member", "loyalty",
}

// currencySigns maps recognized currency markers to a symbolic code. Dollar
// signs map to the store's home currency; anything else is left undetermined
// rather than guessed.
var currencySigns = []struct {
	Marker string
	Code   string
}{
	{"€", "EUR"},
	{"£", "GBP"},
}

// currencySymbols renders a symbolic code back to a display symbol.
var currencySymbols = map[string]string{
	"CAD": "$",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// contextPattern captures a single qualifier phrase adjacent to a price.
// At most one qualifier is kept per parse.
var contextPattern = regexp.MustCompile(`(?i)\b(each|ea\.?|per\s+[a-z]+|from|starting\s+at|up\s+to)\b`)

// regularCueWords are the textual markers the fallback locator looks for next
// to a number when hunting for an explicit "was" price.
const regularCueWords = `was|originally|regular(?:ly)?|msrp|list(?:\s+price)?`

// struckPriceSelectors match elements whose presentation indicates a
// crossed-out "was" price.
var struckPriceSelectors = []string{
	"del", "s", "strike",
	".strike", ".strikethrough",
	"[class*='was-price']", "[class*='compare-at']",
	"[class*='original-price']", "[class*='old-price']",
}

// knownBrands is the curated brand list checked before any heuristic kicks in.
// Order matters: the first substring hit wins.
var knownBrands = []string{
	"Enfamil", "Similac", "Kendamil", "Aptamil", "Gerber", "Nestle",
	"HiPP", "Holle", "Bobbie", "ByHeart", "Earth's Best", "Kirkland",
	"Parent's Choice", "President's Choice", "Good Start", "Nutramigen",
	"Alimentum", "Pregestimil", "Puramino", "Isomil",
}

// titleNoiseTokens are leading words a title fallback should never treat as a
// brand.
var titleNoiseTokens = map[string]bool{
	"item": true,
	"new":  true,
	"the":  true,
}

// trademarkGlyphs get stripped from titles before brand fallback matching.
var trademarkGlyphs = []string{"™", "®", "©", "†"}

// skuFragmentPattern matches trailing "#123456"-style SKU fragments in titles.
var skuFragmentPattern = regexp.MustCompile(`#\S+`)

// sizePatterns is the ordered unit-pattern cascade for title size extraction.
// The first pattern that matches wins.
var sizePatterns = []*regexp.Regexp{
	// Multi-pack formats: "6 x 59 mL", "4x250ml"
	regexp.MustCompile(`(?i)\b\d+\s*x\s*\d+(?:\.\d+)?\s*(?:ml|l|oz|g|kg)\b`),
	// Volume: "658 mL", "32 fl oz", "1.5 L"
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:ml|litres?|liters?|l|fl\.?\s*oz|oz)\b`),
	// Weight: "550 g", "1.2 kg", "2 lbs"
	regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\s*(?:kg|g|lbs?|pounds?)\b`),
	// Count: "24 count", "12 pack", "18 ct"
	regexp.MustCompile(`(?i)\b\d+\s*(?:count|ct|pack|pk|pods?|capsules?)\b`),
	// Preparation formats specific to formula listings
	regexp.MustCompile(`(?i)\bready[\s-]to[\s-]feed\b`),
	regexp.MustCompile(`(?i)\bpowder\b`),
	regexp.MustCompile(`(?i)\bconcentrate\b`),
	// Sized ranges: "0-12 months"
	regexp.MustCompile(`(?i)\b\d+\s*-\s*\d+\s*(?:months?|lbs?)\b`),
}

// unitCasing standardizes unit abbreviations in matched size text.
var unitCasing = []struct {
	Pattern     *regexp.Regexp
	Replacement string
}{
	{regexp.MustCompile(`(?i)ml\b`), "mL"},
	{regexp.MustCompile(`(?i)oz\b`), "oz"},
	{regexp.MustCompile(`(?i)\bct\b`), "ct"},
}
