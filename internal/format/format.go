// Package format renders dates and money amounts for the terminal UI.
package format

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout     = "02 Jan 2006"
	dateTimeLayout = "02 Jan 2006 15:04"
)

// Date renders t as "02 Jan 2006"; a zero time renders as "-".
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

// DateTime renders t as "02 Jan 2006 15:04"; a zero time renders as "-".
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateTimeLayout)
}

// Amount renders a money amount given in minor units (cents) with the symbol
// of the ISO 4217 code, localised for locale. Unknown currency codes fall
// back to a plain "12.34 XYZ" rendering; an unknown locale falls back to
// English.
func Amount(minorUnits int64, code string, locale string) string {
	value := float64(minorUnits) / 100

	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", value, code)
	}

	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	p := message.NewPrinter(tag)
	return p.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}
