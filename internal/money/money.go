package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholder stands in for amounts that cannot be rendered.
const Placeholder = "—"

// printer groups digits the way the card center portal shows amounts:
// English locale, comma thousands separator, dot decimal point.
var printer = message.NewPrinter(language.English)

// Format renders an amount with grouped thousands and at most two
// fraction digits. Non-finite values render as the placeholder.
func Format(d decimal.Decimal) string {
	f, _ := d.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Placeholder
	}
	return printer.Sprint(number.Decimal(f,
		number.MaxFractionDigits(2),
		number.MinFractionDigits(0),
	))
}
