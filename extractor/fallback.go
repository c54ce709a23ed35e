package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// Sane bounds for free-text price scans. Numbers outside these ranges are
// assumed to be incidental page content rather than product prices.
var (
	saneLowerBound = decimal.RequireFromString("0.50")
	saneUpperBound = decimal.NewFromInt(1000)
	pairLowerBound = decimal.NewFromInt(1)
	pairUpperBound = decimal.NewFromInt(200)

	minImpliedDiscount = decimal.NewFromInt(5)
	maxImpliedDiscount = decimal.NewFromInt(60)
)

// currencyTokenPattern matches currency-symbol-prefixed numeric tokens in
// page text.
var currencyTokenPattern = regexp.MustCompile(`\$\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{2})?)`)

// regularCuePatterns pair a regular-price cue word with a number in either
// order: "was $89.99" or "$89.99 was".
var regularCuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:` + regularCueWords + `)\b[:\s]*\$?\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{2})?)`),
	regexp.MustCompile(`(?i)\$\s*([0-9]+(?:,[0-9]{3})*(?:\.[0-9]{2})?)\s*(?:` + regularCueWords + `)\b`),
}

// LocatedPrices holds candidate price texts mined from free-form page
// content, suitable for feeding straight back into DualPriceResolver.
type LocatedPrices struct {
	CurrentPriceText string
	RegularPriceText string
}

// pricePair counts how often a distinct value renders on a page. A value that
// appears twice (summary bar plus detail block) is the signal that it is a
// real product price.
type pricePair struct {
	price decimal.Decimal
	count int
}

// FallbackPriceLocator mines free-form page text for price candidates when
// structured element-based extraction produced nothing. Every step refuses to
// guess on ambiguous input: silence is the safe outcome, because a wrong
// inferred regular price produces a false discount alert.
type FallbackPriceLocator struct {
	parser *PriceTextParser
}

// NewFallbackPriceLocator creates a locator around the given parser.
func NewFallbackPriceLocator(parser *PriceTextParser) *FallbackPriceLocator {
	return &FallbackPriceLocator{parser: parser}
}

// Locate runs the escalation chain over the page's visible text and, when
// available, its raw HTML. Returns empty candidates rather than guessing when
// the page is too ambiguous; a current-price-only outcome is valid.
func (l *FallbackPriceLocator) Locate(pageText, pageHTML string) LocatedPrices {
	var located LocatedPrices

	// Explicit textual cues beat frequency inference, which beats styling.
	if regular := l.locateContextualRegular(pageText); regular != "" {
		located.RegularPriceText = regular
	} else if current, regular := l.locatePairByFrequency(pageText); regular != "" {
		located.CurrentPriceText = current
		located.RegularPriceText = regular
	} else if pageHTML != "" {
		located.RegularPriceText = l.locateStruckRegular(pageHTML)
	}

	if located.CurrentPriceText == "" {
		located.CurrentPriceText = l.LocateCurrentPriceText(pageText)
	}
	return located
}

// locateContextualRegular scans for a cue word (was/originally/regular/msrp/
// list) adjacent to a number. The first sane-bounded hit is returned
// immediately: explicit cues are higher-confidence than anything else the
// locator can do.
func (l *FallbackPriceLocator) locateContextualRegular(pageText string) string {
	for _, pattern := range regularCuePatterns {
		for _, match := range pattern.FindAllStringSubmatch(pageText, -1) {
			value, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
			if err != nil {
				continue
			}
			if withinSaneBound(value) {
				return "$" + value.StringFixed(2)
			}
		}
	}
	return ""
}

// locatePairByFrequency collects every currency-prefixed token on the page,
// keeps values that render at least twice within the product-price band, and
// accepts the pairing only when exactly two distinct values remain and the
// implied discount is plausible. More than two candidates means the page is
// too ambiguous to trust.
func (l *FallbackPriceLocator) locatePairByFrequency(pageText string) (currentText, regularText string) {
	counts := map[string]int{}
	for _, match := range currencyTokenPattern.FindAllStringSubmatch(pageText, -1) {
		value, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
		if err != nil || !withinSaneBound(value) {
			continue
		}
		counts[value.StringFixed(2)]++
	}

	var candidates []pricePair
	for key, count := range counts {
		value := decimal.RequireFromString(key)
		if count >= 2 && value.GreaterThan(pairLowerBound) && value.LessThan(pairUpperBound) {
			candidates = append(candidates, pricePair{price: value, count: count})
		}
	}
	if len(candidates) != 2 {
		return "", ""
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].price.GreaterThan(candidates[j].price)
	})
	regular, current := candidates[0].price, candidates[1].price

	implied := discountPercent(current, regular)
	if implied.LessThan(minImpliedDiscount) || implied.GreaterThan(maxImpliedDiscount) {
		// Outside the plausible band the pairing is presumed spurious, e.g.
		// two unrelated prices on the page.
		return "", ""
	}
	return "$" + current.StringFixed(2), "$" + regular.StringFixed(2)
}

// locateStruckRegular looks for elements whose presentation indicates a
// crossed-out price and parses the first sane-bounded one.
func (l *FallbackPriceLocator) locateStruckRegular(pageHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return ""
	}

	found := ""
	doc.Find(strings.Join(struckPriceSelectors, ", ")).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		price := l.parser.Parse(strings.TrimSpace(sel.Text()))
		if price != nil && withinSaneBound(price.Value) {
			found = "$" + price.Value.StringFixed(2)
			return false
		}
		return true
	})
	return found
}

// LocateCurrentPriceText picks the lowest sane-bounded currency token on the
// page as the current-price candidate. Sale prices are assumed to be the
// smaller of the prices visible on a page; this is best-effort only and
// weaker than the regular-price logic.
func (l *FallbackPriceLocator) LocateCurrentPriceText(pageText string) string {
	var lowest decimal.Decimal
	lowestText := ""
	for _, match := range currencyTokenPattern.FindAllStringSubmatch(pageText, -1) {
		value, err := decimal.NewFromString(strings.ReplaceAll(match[1], ",", ""))
		if err != nil || !withinSaneBound(value) {
			continue
		}
		if lowestText == "" || value.LessThan(lowest) {
			lowest = value
			lowestText = "$" + value.StringFixed(2)
		}
	}
	return lowestText
}

func withinSaneBound(value decimal.Decimal) bool {
	return value.GreaterThan(saneLowerBound) && value.LessThan(saneUpperBound)
}
