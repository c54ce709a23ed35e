package extractor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pricelens/models"
)

var oneHundred = decimal.NewFromInt(100)

// DualPriceResolver pairs a current and a regular price text and derives the
// discount between them. It is the single point of truth for what counts as a
// valid price pair, regardless of how the raw text was obtained.
type DualPriceResolver struct {
	parser *PriceTextParser
}

// NewDualPriceResolver creates a resolver around the given parser.
func NewDualPriceResolver(parser *PriceTextParser) *DualPriceResolver {
	return &DualPriceResolver{parser: parser}
}

// Resolve parses the current and regular price texts independently and
// computes the discount. A failed parse of one field never aborts the other;
// it only appends a descriptive entry to the result's error list. The discount
// is always recomputed from the parsed values, never trusted from input text.
func (r *DualPriceResolver) Resolve(currentText, regularText, promoText string) *models.PriceParsingResult {
	result := &models.PriceParsingResult{}

	result.CurrentPrice = r.parser.Parse(currentText)
	if result.CurrentPrice == nil && strings.TrimSpace(currentText) != "" {
		result.Errors = append(result.Errors,
			fmt.Sprintf("failed to parse current price: %s", strings.TrimSpace(currentText)))
	}

	result.RegularPrice = r.parser.Parse(regularText)
	if result.RegularPrice == nil && strings.TrimSpace(regularText) != "" {
		result.Errors = append(result.Errors,
			fmt.Sprintf("failed to parse regular price: %s", strings.TrimSpace(regularText)))
	}

	// A regular price at or below the current price is a legitimate
	// "no discount" outcome, not an error.
	if result.CurrentPrice != nil && result.RegularPrice != nil &&
		result.RegularPrice.Value.GreaterThan(result.CurrentPrice.Value) {
		percent := int(discountPercent(result.CurrentPrice.Value, result.RegularPrice.Value).IntPart())
		result.DiscountPercent = &percent
	}

	if promo := strings.TrimSpace(promoText); promo != "" {
		result.PromoText = promo
	}

	return result
}

// discountPercent returns round(100 * (regular - current) / regular).
func discountPercent(current, regular decimal.Decimal) decimal.Decimal {
	return regular.Sub(current).Div(regular).Mul(oneHundred).Round(0)
}

// IsValid is the validation gate callers run before trusting a result. It is
// advisory: a result can legally exist in an invalid state mid-fallback, and
// the caller decides whether to discard or retry.
func IsValid(result *models.PriceParsingResult) bool {
	if result == nil || result.CurrentPrice == nil {
		return false
	}
	if !result.CurrentPrice.Value.IsPositive() {
		return false
	}
	// A "regular" price below the current price is a data error, not a
	// negative discount.
	if result.RegularPrice != nil &&
		result.RegularPrice.Value.LessThan(result.CurrentPrice.Value) {
		return false
	}
	if result.DiscountPercent != nil &&
		(*result.DiscountPercent < 0 || *result.DiscountPercent > 100) {
		return false
	}
	return true
}
