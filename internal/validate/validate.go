// Package validate holds the field predicates used by the sales form.
// Every predicate is pure: malformed input yields false, never a panic.
package validate

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Simplici0/ventas/internal/pricing"
)

var (
	personNameRegex = regexp.MustCompile(`^[a-zA-ZÑñÁáÉéÍíÓóÚú]+$`)
	emailRegex      = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

// PersonName reports whether s is a non-empty run of letters, accented
// vowels and ñ included. Spaces, digits and punctuation are rejected.
func PersonName(s string) bool {
	return personNameRegex.MatchString(s)
}

// Email reports whether s looks like local@domain.tld.
func Email(s string) bool {
	return emailRegex.MatchString(s)
}

// PositiveInteger reports whether s is a whole number greater than zero.
func PositiveInteger(s string) bool {
	_, ok := ParsePositiveInteger(s)
	return ok
}

// PositiveIntegerValue is PositiveInteger for callers holding a number or a
// string. Any other type is rejected.
func PositiveIntegerValue(v any) bool {
	switch n := v.(type) {
	case string:
		return PositiveInteger(n)
	case int:
		return PositiveInteger(strconv.FormatInt(int64(n), 10))
	case int32:
		return PositiveInteger(strconv.FormatInt(int64(n), 10))
	case int64:
		return PositiveInteger(strconv.FormatInt(n, 10))
	case uint:
		return PositiveInteger(strconv.FormatUint(uint64(n), 10))
	case uint32:
		return PositiveInteger(strconv.FormatUint(uint64(n), 10))
	case uint64:
		return PositiveInteger(strconv.FormatUint(n, 10))
	case float32:
		return PositiveInteger(strconv.FormatFloat(float64(n), 'f', -1, 32))
	case float64:
		return PositiveInteger(strconv.FormatFloat(n, 'f', -1, 64))
	default:
		return false
	}
}

// ParsePositiveInteger returns the quantity held by s when s is numeric,
// carries neither a decimal point nor a minus sign, and is greater than zero.
// Exponent forms such as "1e3" are numeric and accepted; there is no upper
// bound. Only base-10 input is numeric, so "0x10", "0x1p4", "0b11" and "0o7"
// are rejected.
func ParsePositiveInteger(s string) (decimal.Decimal, bool) {
	if s == "" || strings.Contains(s, ".") || strings.Contains(s, "-") {
		return decimal.Zero, false
	}

	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return decimal.Zero, false
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) || value <= 0 {
		return decimal.Zero, false
	}

	quantity, err := decimal.NewFromString(trimmed)
	if err != nil || !quantity.IsPositive() || !quantity.IsInteger() {
		return decimal.Zero, false
	}

	return quantity, true
}

// Category reports whether s is exactly one of the category labels.
func Category(s string) bool {
	return pricing.Category(s).Known()
}
