package extractor

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"pricelens/models"
)

// DefaultHomeCurrency is assumed for dollar-sign prices unless configured
// otherwise; amounts are store-local.
const DefaultHomeCurrency = "CAD"

// saveAmountThreshold is the cutoff below which a number next to the word
// "save" is treated as a savings-amount callout rather than a price.
var saveAmountThreshold = decimal.NewFromInt(10)

// PriceTextParser converts one free-text price string into a ParsedPrice.
// Numeric extraction runs a tiered pattern cascade: the first tier with any
// match wins, and matches within a tier are taken in source order.
type PriceTextParser struct {
	homeCurrency string
	tiers        []*regexp.Regexp
}

// NewPriceTextParser creates a parser using the default home currency.
func NewPriceTextParser() *PriceTextParser {
	return NewPriceTextParserWithCurrency(DefaultHomeCurrency)
}

// NewPriceTextParserWithCurrency creates a parser that tags dollar-sign
// prices with the given currency code.
func NewPriceTextParserWithCurrency(homeCurrency string) *PriceTextParser {
	return &PriceTextParser{
		homeCurrency: strings.ToUpper(homeCurrency),
		tiers: []*regexp.Regexp{
			// Symbol-prefixed amount, comma-grouped or a plain digit run,
			// with optional 2-decimal fraction: $1,234.56 or $1234.56
			regexp.MustCompile(`[\$€£]\s*(-?(?:[0-9]{1,3}(?:,[0-9]{3})+|[0-9]+)(?:\.[0-9]{2})?)`),
			// Bare decimal with exactly two fraction digits: looks like money
			// even without a symbol.
			regexp.MustCompile(`(-?[0-9]+(?:,[0-9]{3})*\.[0-9]{2})\b`),
			// Any bare number, last resort.
			regexp.MustCompile(`(-?[0-9]+(?:\.[0-9]+)?)`),
		},
	}
}

// Parse extracts a price from arbitrary text. It returns nil for empty or
// whitespace-only input, for any negative or zero amount, and for text with
// no usable number. It never panics, whatever the input.
func (p *PriceTextParser) Parse(text string) *models.ParsedPrice {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	textLower := strings.ToLower(trimmed)

	for _, tier := range p.tiers {
		matches := tier.FindAllStringSubmatchIndex(trimmed, -1)
		if len(matches) == 0 {
			continue
		}
		// First tier with any match decides the outcome; within it, take the
		// first plausible amount in source order.
		for _, loc := range matches {
			value, err := decimal.NewFromString(strings.ReplaceAll(trimmed[loc[2]:loc[3]], ",", ""))
			if err != nil {
				continue
			}
			if !value.IsPositive() {
				// $0.00 and $-5.99 are sentinels, not offers.
				continue
			}
			if p.isSavingsCallout(textLower, value) {
				// "Save $5 - Now $19.99" must not parse as $5.
				continue
			}
			return &models.ParsedPrice{
				Value:        value,
				OriginalText: trimmed,
				Currency:     p.detectCurrency(trimmed),
				IsSalePrice:  p.detectSale(textLower),
				Context:      p.extractContext(trimmed, loc[0], loc[1]),
			}
		}
		return nil
	}

	return nil
}

// isSavingsCallout reports whether a matched amount is a "save $X" dollar
// figure rather than a price.
func (p *PriceTextParser) isSavingsCallout(textLower string, value decimal.Decimal) bool {
	return strings.Contains(textLower, "save") && value.LessThan(saveAmountThreshold)
}

// detectCurrency infers a symbolic currency code from markers in the text.
// Dollar signs and the home-currency token map to the home currency; euro and
// pound markers are recognized separately; anything else stays undetermined.
func (p *PriceTextParser) detectCurrency(text string) string {
	if strings.Contains(text, "$") || strings.Contains(strings.ToUpper(text), p.homeCurrency) {
		return p.homeCurrency
	}
	for _, sign := range currencySigns {
		if strings.Contains(text, sign.Marker) {
			return sign.Code
		}
	}
	return ""
}

// detectSale reports whether the text carries any promotional lexical cue.
func (p *PriceTextParser) detectSale(textLower string) bool {
	for _, keyword := range saleKeywords {
		if strings.Contains(textLower, keyword) {
			return true
		}
	}
	return false
}

// contextWindow bounds, in bytes, how far from the matched amount a
// qualifier may sit and still count as adjacent.
const contextWindow = 20

// extractContext captures at most one qualifier phrase ("each", "per kg",
// "from", ...) immediately adjacent to the matched amount. Qualifiers never
// affect the parsed value.
func (p *PriceTextParser) extractContext(text string, start, end int) string {
	from := start - contextWindow
	if from < 0 {
		from = 0
	}
	to := end + contextWindow
	if to > len(text) {
		to = len(text)
	}
	if match := contextPattern.FindString(text[from:to]); match != "" {
		return strings.ToLower(strings.Join(strings.Fields(match), " "))
	}
	return ""
}

// FormatPrice renders a parsed price as {symbol}{value with 2 decimals},
// followed by the qualifier when one was captured.
func FormatPrice(price *models.ParsedPrice) string {
	if price == nil {
		return ""
	}
	symbol, ok := currencySymbols[price.Currency]
	if !ok {
		symbol = "$"
	}
	formatted := fmt.Sprintf("%s%s", symbol, price.Value.StringFixed(2))
	if price.Context != "" {
		formatted += " " + price.Context
	}
	return formatted
}
