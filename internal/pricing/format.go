package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Currency is the only currency the form sells in.
var Currency = currency.MustParseISO("ARS")

// es-AR conventions.
const (
	currencySymbol   = "$"
	groupSeparator   = "."
	decimalSeparator = ","
)

// FormatARS renders amount with the Argentine conventions: "." groups
// thousands, "," separates exactly two decimals, and the peso sign leads
// followed by a no-break space. The amount never goes through a float, so
// cents stay exact at any magnitude.
func FormatARS(amount decimal.Decimal) string {
	fixed := amount.Round(2).StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, cents, _ := strings.Cut(fixed, ".")

	return sign + currencySymbol + "\u00a0" + groupThousands(whole) + decimalSeparator + cents
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(groupSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
