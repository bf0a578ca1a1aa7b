package pricing

import "github.com/shopspring/decimal"

// DefaultUnitPrice is the ticket price when none is configured.
var DefaultUnitPrice = decimal.NewFromInt(200)

// Input represents the values a single ticket quote is computed from.
type Input struct {
	UnitPrice decimal.Decimal
	Quantity  decimal.Decimal
	Discount  decimal.Decimal
}

// Breakdown contains the intermediate values of the calculation.
type Breakdown struct {
	Gross    decimal.Decimal
	Discount decimal.Decimal
}

// Totals contains roll-up values from the pricing calculation.
type Totals struct {
	Total decimal.Decimal
}

// Result groups the full pricing output, including detailed breakdown and totals.
type Result struct {
	Breakdown Breakdown
	Totals    Totals
}

// Calculate computes unitPrice * quantity * (1 - discount).
func Calculate(in Input) Result {
	gross := in.UnitPrice.Mul(in.Quantity)
	discount := gross.Mul(in.Discount)

	return Result{
		Breakdown: Breakdown{
			Gross:    gross,
			Discount: discount,
		},
		Totals: Totals{Total: gross.Sub(discount)},
	}
}

// Calculator keeps the running total of the form. It is not safe for
// concurrent use.
type Calculator struct {
	unitPrice decimal.Decimal
	total     decimal.Decimal
}

// NewCalculator returns a calculator at zero. A zero unit price selects
// DefaultUnitPrice.
func NewCalculator(unitPrice decimal.Decimal) *Calculator {
	if unitPrice.IsZero() {
		unitPrice = DefaultUnitPrice
	}
	return &Calculator{unitPrice: unitPrice, total: decimal.Zero}
}

// UnitPrice returns the fixed per-ticket price.
func (c *Calculator) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// Total returns the last computed total, or zero after Reset.
func (c *Calculator) Total() decimal.Decimal {
	return c.total
}

// Reset sets the running total back to zero.
func (c *Calculator) Reset() {
	c.total = decimal.Zero
}

// Compute prices quantity tickets at discount and stores the result as the
// running total. Each call overwrites the previous total.
func (c *Calculator) Compute(quantity decimal.Decimal, discount decimal.Decimal) decimal.Decimal {
	c.total = c.Quote(quantity, discount).Totals.Total
	return c.total
}

// Quote returns the full breakdown without touching the running total.
func (c *Calculator) Quote(quantity decimal.Decimal, discount decimal.Decimal) Result {
	return Calculate(Input{UnitPrice: c.unitPrice, Quantity: quantity, Discount: discount})
}
