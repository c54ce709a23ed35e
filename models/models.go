package models

import (
	"github.com/shopspring/decimal"
)

// ParsedPrice represents a single recognized price extracted from free text.
// It is a value object: constructed once per parse and never mutated.
type ParsedPrice struct {
	Value        decimal.Decimal `json:"value"`
	OriginalText string          `json:"original_text"`
	Currency     string          `json:"currency,omitempty"`
	IsSalePrice  bool            `json:"is_sale_price"`
	Context      string          `json:"context,omitempty"`
}

// PriceParsingResult is the paired outcome of resolving a product's pricing.
// A fresh instance is produced on every resolve; results are never patched
// in place. DiscountPercent is a pointer so that "not on sale" (absent) stays
// distinguishable from a literal zero-percent discount.
type PriceParsingResult struct {
	CurrentPrice    *ParsedPrice `json:"current_price,omitempty"`
	RegularPrice    *ParsedPrice `json:"regular_price,omitempty"`
	DiscountPercent *int         `json:"discount_percent,omitempty"`
	PromoText       string       `json:"promo_text,omitempty"`
	Errors          []string     `json:"errors,omitempty"`
}

// HasDiscount returns true if a discount percentage was derived.
func (r *PriceParsingResult) HasDiscount() bool {
	return r.DiscountPercent != nil
}

// GetDiscountPercent returns the discount percentage, or 0 if absent.
// Callers that need to distinguish "absent" from zero must check HasDiscount.
func (r *PriceParsingResult) GetDiscountPercent() int {
	if r.DiscountPercent != nil {
		return *r.DiscountPercent
	}
	return 0
}

// ParsePriceRequest is the request to parse a single price string.
type ParsePriceRequest struct {
	Text string `json:"text"`
}

// ParsePriceResponse wraps the outcome of a single-string parse.
type ParsePriceResponse struct {
	Price *ParsedPrice `json:"price"`
}

// ResolvePricesRequest carries the raw candidate strings a scraping
// collaborator extracted for one product.
type ResolvePricesRequest struct {
	CurrentPriceText string `json:"current_price_text"`
	RegularPriceText string `json:"regular_price_text"`
	PromoText        string `json:"promo_text"`
}

// ResolvePricesResponse is the resolved pairing plus the validation verdict.
type ResolvePricesResponse struct {
	Result *PriceParsingResult `json:"result"`
	Valid  bool                `json:"valid"`
}

// LocatePricesRequest carries the full visible text of a page (and optionally
// its raw HTML) for the fallback path when structured extraction found nothing.
type LocatePricesRequest struct {
	PageText string `json:"page_text"`
	PageHTML string `json:"page_html,omitempty"`
}

// LocatePricesResponse returns the synthesized candidate strings and the
// result of feeding them back through the resolver.
type LocatePricesResponse struct {
	CurrentPriceText string              `json:"current_price_text,omitempty"`
	RegularPriceText string              `json:"regular_price_text,omitempty"`
	Result           *PriceParsingResult `json:"result"`
	Valid            bool                `json:"valid"`
}

// ExtractTitleRequest carries a product title for brand/size extraction.
type ExtractTitleRequest struct {
	Title string `json:"title"`
}

// ExtractTitleResponse holds the best-effort title attributes.
type ExtractTitleResponse struct {
	Brand string `json:"brand,omitempty"`
	Size  string `json:"size,omitempty"`
}
