// Package format renders amounts and dates for dashboard display and export.
package format

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultCurrency is the workspace base currency and the fallback for any
// unrecognized currency code.
const DefaultCurrency = "PHP"

type currencyLocale struct {
	tag  language.Tag
	unit currency.Unit
}

// Locale pairs are fixed: the dashboard only ever displays these currencies.
var currencyLocales = map[string]currencyLocale{
	"PHP": {language.MustParse("en-PH"), currency.MustParseISO("PHP")},
	"USD": {language.MustParse("en-US"), currency.MustParseISO("USD")},
	"EUR": {language.MustParse("de-DE"), currency.MustParseISO("EUR")},
	"GBP": {language.MustParse("en-GB"), currency.MustParseISO("GBP")},
	"JPY": {language.MustParse("ja-JP"), currency.MustParseISO("JPY")},
	"SGD": {language.MustParse("en-SG"), currency.MustParseISO("SGD")},
	"MYR": {language.MustParse("ms-MY"), currency.MustParseISO("MYR")},
}

// Currency renders amount using the locale conventions paired with code.
// Unknown codes silently fall back to the PHP pair; this never fails.
func Currency(amount float64, code string) string {
	loc, ok := currencyLocales[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		loc = currencyLocales[DefaultCurrency]
	}
	p := message.NewPrinter(loc.tag)
	return p.Sprint(currency.Symbol(loc.unit.Amount(amount)))
}
