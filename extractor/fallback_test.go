package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocator() *FallbackPriceLocator {
	return NewFallbackPriceLocator(NewPriceTextParser())
}

func TestLocateContextualRegularPrice(t *testing.T) {
	locator := newLocator()

	tests := []struct {
		pageText string
		want     string
	}{
		{"Big deal today, was $89.99 before the markdown", "$89.99"},
		{"Originally $120.00, yours for less", "$120.00"},
		{"MSRP: $54.99", "$54.99"},
		{"List price $34.99 shown for comparison", "$34.99"},
		{"$89.99 was the old price", "$89.99"},
		// Outside the sane bound, the cue is ignored.
		{"was $1200.00", ""},
		{"was $0.25", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, locator.locateContextualRegular(tt.pageText), tt.pageText)
	}
}

func TestLocatePairByFrequency(t *testing.T) {
	locator := newLocator()

	// Two values each rendered twice, implied discount ~20%.
	pageText := "Summary $89.99 ... now $71.99 | details: $89.99 crossed, pay $71.99 at checkout"
	current, regular := locator.locatePairByFrequency(pageText)
	assert.Equal(t, "$71.99", current)
	assert.Equal(t, "$89.99", regular)
}

func TestLocatePairRefusesAmbiguousPages(t *testing.T) {
	locator := newLocator()

	// Three frequency-qualified values: too ambiguous to trust.
	pageText := "$89.99 $89.99 $71.99 $71.99 $49.99 $49.99"
	current, regular := locator.locatePairByFrequency(pageText)
	assert.Empty(t, current)
	assert.Empty(t, regular)

	// A single repeated value is no pair either.
	current, regular = locator.locatePairByFrequency("$89.99 and again $89.99")
	assert.Empty(t, current)
	assert.Empty(t, regular)

	// Values seen only once do not count.
	current, regular = locator.locatePairByFrequency("$89.99 $71.99")
	assert.Empty(t, current)
	assert.Empty(t, regular)
}

func TestLocatePairRejectsImplausibleDiscounts(t *testing.T) {
	locator := newLocator()

	// Implied discount of 2%: presumed spurious.
	current, regular := locator.locatePairByFrequency("$100.00 $98.00 $100.00 $98.00")
	assert.Empty(t, current)
	assert.Empty(t, regular)

	// Implied discount of 75%: also presumed spurious.
	current, regular = locator.locatePairByFrequency("$100.00 $25.00 $100.00 $25.00")
	assert.Empty(t, current)
	assert.Empty(t, regular)
}

func TestLocateStruckRegularPrice(t *testing.T) {
	locator := newLocator()

	pageHTML := `<html><body>
		<span class="price-current">$49.99</span>
		<del>$79.99</del>
	</body></html>`
	assert.Equal(t, "$79.99", locator.locateStruckRegular(pageHTML))

	// Class-based strikethrough styling counts too.
	pageHTML = `<div><span class="product__was-price">$64.99</span></div>`
	assert.Equal(t, "$64.99", locator.locateStruckRegular(pageHTML))

	// Struck elements outside the sane bound are skipped.
	pageHTML = `<div><del>$2500.00</del><del>$79.99</del></div>`
	assert.Equal(t, "$79.99", locator.locateStruckRegular(pageHTML))

	assert.Empty(t, locator.locateStruckRegular("<div>no prices</div>"))
}

func TestLocateCurrentPriceText(t *testing.T) {
	locator := newLocator()

	// Lowest sane-bounded token wins; out-of-bound values are ignored.
	pageText := "Shipping estimate $1200.00 | sale $3.99 | bundle $5.99 | deposit $0.25"
	assert.Equal(t, "$3.99", locator.LocateCurrentPriceText(pageText))

	assert.Empty(t, locator.LocateCurrentPriceText("no currency tokens at all"))
}

func TestLocateComposition(t *testing.T) {
	locator := newLocator()

	// Frequency pairing proposes both candidates when no explicit cue exists.
	pageText := "Top bar $89.99 $71.99 ... footer repeats $89.99 $71.99"
	located := locator.Locate(pageText, "")
	assert.Equal(t, "$71.99", located.CurrentPriceText)
	assert.Equal(t, "$89.99", located.RegularPriceText)

	// An explicit cue short-circuits frequency inference.
	located = locator.Locate("was $89.99, buy at $71.99", "")
	assert.Equal(t, "$89.99", located.RegularPriceText)
	assert.Equal(t, "$71.99", located.CurrentPriceText)

	// Struck-through markup is the last resort for the regular price.
	located = locator.Locate("only $49.99 here", `<p><s>$79.99</s></p>`)
	assert.Equal(t, "$79.99", located.RegularPriceText)
	assert.Equal(t, "$49.99", located.CurrentPriceText)

	// An ambiguous page yields a current-only candidate, which is valid.
	located = locator.Locate("$89.99 $89.99 $71.99 $71.99 $49.99 $49.99", "")
	assert.Empty(t, located.RegularPriceText)
	assert.Equal(t, "$49.99", located.CurrentPriceText)
}

func TestLocatedCandidatesReenterResolver(t *testing.T) {
	locator := newLocator()
	resolver := newResolver()

	pageText := "Deal board $89.99 $71.99 and once more $89.99 $71.99"
	located := locator.Locate(pageText, "")

	result := resolver.Resolve(located.CurrentPriceText, located.RegularPriceText, "")
	require.NotNil(t, result.CurrentPrice)
	require.NotNil(t, result.RegularPrice)
	require.NotNil(t, result.DiscountPercent)
	assert.Equal(t, 20, *result.DiscountPercent)
	assert.True(t, IsValid(result))
}
