package extractor

import (
	"strings"
	"unicode"
)

// TitleAttributeExtractor mines product titles for brand and size metadata.
// Both extractors are best-effort, order-sensitive pattern cascades: the
// first hit wins, and they return empty rather than guessing.
type TitleAttributeExtractor struct {
	brands []string
}

// NewTitleAttributeExtractor creates an extractor over the curated brand list.
func NewTitleAttributeExtractor() *TitleAttributeExtractor {
	return &TitleAttributeExtractor{brands: knownBrands}
}

// ExtractBrand returns the product brand, or empty when nothing matches.
// The curated list is checked first, in list order; only then does the
// first-capitalized-word heuristic kick in.
func (t *TitleAttributeExtractor) ExtractBrand(title string) string {
	titleLower := strings.ToLower(title)
	for _, brand := range t.brands {
		if strings.Contains(titleLower, strings.ToLower(brand)) {
			return brand
		}
	}
	return t.fallbackBrand(title)
}

// fallbackBrand treats the first capitalized word of the cleaned title as the
// brand. Candidates shorter than 3 characters or not starting with an
// uppercase letter are rejected.
func (t *TitleAttributeExtractor) fallbackBrand(title string) string {
	cleaned := title
	for _, glyph := range trademarkGlyphs {
		cleaned = strings.ReplaceAll(cleaned, glyph, "")
	}
	cleaned = skuFragmentPattern.ReplaceAllString(cleaned, "")

	for _, word := range strings.Fields(cleaned) {
		word = strings.Trim(word, ".,:;!()[]'\"-")
		if word == "" || titleNoiseTokens[strings.ToLower(word)] {
			continue
		}
		// The first capitalized word is the one candidate; it is rejected,
		// not replaced, when too short.
		runes := []rune(word)
		if !unicode.IsUpper(runes[0]) {
			continue
		}
		if len(runes) < 3 {
			return ""
		}
		return word
	}
	return ""
}

// ExtractSize returns the product size from the title, or empty when no unit
// pattern matches. Matched text keeps its source form apart from unit
// abbreviation casing ("ml" becomes "mL").
func (t *TitleAttributeExtractor) ExtractSize(title string) string {
	for _, pattern := range sizePatterns {
		if match := pattern.FindString(title); match != "" {
			return normalizeSize(match)
		}
	}
	return ""
}

// normalizeSize standardizes unit abbreviation casing in a matched size.
func normalizeSize(size string) string {
	for _, unit := range unitCasing {
		size = unit.Pattern.ReplaceAllString(size, unit.Replacement)
	}
	return strings.TrimSpace(size)
}
