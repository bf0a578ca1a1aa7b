package pricing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category is a customer tier sold on the form.
type Category string

const (
	CategoryEstudiante Category = "Estudiante"
	CategoryTrainee    Category = "Trainee"
	CategoryJunior     Category = "Junior"
)

// categoryOrder is the priority used whenever categories are matched one by
// one, e.g. when resolving a clicked card.
var categoryOrder = []Category{CategoryEstudiante, CategoryTrainee, CategoryJunior}

// Categories returns every category in priority order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Known reports whether c is one of the enumerated labels. The comparison is
// exact: "junior" is not Junior.
func (c Category) Known() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// Tag is the lower-case label used to mark the category cards.
func (c Category) Tag() string {
	return strings.ToLower(string(c))
}

// DiscountTable maps every category to its discount ratio. It is read-only
// once built.
type DiscountTable struct {
	ratios map[Category]decimal.Decimal
}

// DefaultDiscounts is the table the ticket office sells with.
var DefaultDiscounts = MustDiscountTable(map[Category]float64{
	CategoryEstudiante: 0.80,
	CategoryTrainee:    0.50,
	CategoryJunior:     0.15,
})

// NewDiscountTable validates ratios and returns a table. Every category must
// be present with a ratio in [0,1).
func NewDiscountTable(ratios map[Category]float64) (DiscountTable, error) {
	table := DiscountTable{ratios: make(map[Category]decimal.Decimal, len(categoryOrder))}
	for c, r := range ratios {
		if !c.Known() {
			return DiscountTable{}, fmt.Errorf("unknown category %q", c)
		}
		if r < 0 || r >= 1 {
			return DiscountTable{}, fmt.Errorf("discount for %s must be in [0,1), got %v", c, r)
		}
		table.ratios[c] = decimal.NewFromFloat(r)
	}
	for _, c := range categoryOrder {
		if _, ok := table.ratios[c]; !ok {
			return DiscountTable{}, fmt.Errorf("missing discount for %s", c)
		}
	}
	return table, nil
}

// MustDiscountTable is NewDiscountTable for package-level tables.
func MustDiscountTable(ratios map[Category]float64) DiscountTable {
	table, err := NewDiscountTable(ratios)
	if err != nil {
		panic(err)
	}
	return table
}

// Discount returns the ratio for c.
func (t DiscountTable) Discount(c Category) (decimal.Decimal, bool) {
	r, ok := t.ratios[c]
	return r, ok
}
