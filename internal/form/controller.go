// Package form drives the sales form: it validates fields as the user edits
// them, marks each control valid or invalid, and shows the ticket total once
// every field holds an accepted value.
//
// The controller never touches a page directly. Callers hand it the controls
// and the total display, so the same logic runs behind the web page and in
// tests.
package form

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Simplici0/ventas/internal/pricing"
	"github.com/Simplici0/ventas/internal/validate"
)

// Control is an input on the form.
type Control interface {
	ID() string
	Value() string
	SetValue(v string)
	SetValidity(v Validity)
	// SetError shows msg next to the control; an empty msg hides it.
	SetError(msg string)
}

// Display shows the formatted ticket total.
type Display interface {
	SetText(s string)
}

// Controller handles the form events. It is not safe for concurrent use;
// each event runs to completion before the next one.
type Controller struct {
	controls  []Control
	byID      map[string]Control
	states    map[string]FieldState
	total     Display
	calc      *pricing.Calculator
	discounts pricing.DiscountTable
	format    func(decimal.Decimal) string
	logger    *zap.Logger
}

// Option customizes a Controller.
type Option func(*Controller)

// WithCalculator replaces the default calculator (unit price 200).
func WithCalculator(calc *pricing.Calculator) Option {
	return func(c *Controller) { c.calc = calc }
}

// WithDiscounts replaces pricing.DefaultDiscounts.
func WithDiscounts(t pricing.DiscountTable) Option {
	return func(c *Controller) { c.discounts = t }
}

// WithFormatter replaces pricing.FormatARS.
func WithFormatter(f func(decimal.Decimal) string) Option {
	return func(c *Controller) { c.format = f }
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

var errMissingControl = errors.New("missing control")

// New returns a controller tracking controls, in the order given. The
// quantity and category controls are required since the total is computed
// from them.
func New(controls []Control, total Display, opts ...Option) (*Controller, error) {
	if total == nil {
		return nil, errors.New("total display is required")
	}

	c := &Controller{
		controls:  controls,
		byID:      make(map[string]Control, len(controls)),
		states:    make(map[string]FieldState, len(controls)),
		total:     total,
		calc:      pricing.NewCalculator(pricing.DefaultUnitPrice),
		discounts: pricing.DefaultDiscounts,
		format:    pricing.FormatARS,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, ctl := range controls {
		if _, dup := c.byID[ctl.ID()]; dup {
			return nil, fmt.Errorf("duplicate control %q", ctl.ID())
		}
		c.byID[ctl.ID()] = ctl
		c.states[ctl.ID()] = FieldState{ID: ctl.ID()}
	}
	for _, id := range []string{FieldQuantity, FieldCategory} {
		if _, ok := c.byID[id]; !ok {
			return nil, fmt.Errorf("%w: %s", errMissingControl, id)
		}
	}

	return c, nil
}

// Calculator exposes the running total.
func (c *Controller) Calculator() *pricing.Calculator {
	return c.calc
}

// Submit validates every control and, when all of them pass, shows the
// total for the chosen category and quantity. It reports whether a total
// was shown.
func (c *Controller) Submit() bool {
	allValid := true
	for _, ctl := range c.controls {
		if !c.validate(ctl) {
			allValid = false
		}
	}
	if !allValid {
		c.logger.Debug("submit rejected", zap.Strings("invalid", c.invalidIDs()))
		return false
	}

	category := pricing.Category(c.byID[FieldCategory].Value())
	quantity, _ := validate.ParsePositiveInteger(c.byID[FieldQuantity].Value())
	discount, _ := c.discounts.Discount(category)

	total := c.calc.Compute(quantity, discount)
	c.total.SetText(c.format(total))
	c.logger.Debug("total computed",
		zap.String("category", string(category)),
		zap.String("quantity", quantity.String()),
		zap.String("total", total.String()),
	)
	return true
}

// Reset clears every indicator and message and shows a zero total.
func (c *Controller) Reset() {
	for _, ctl := range c.controls {
		c.clear(ctl)
	}
	c.calc.Reset()
	c.total.SetText(c.format(c.calc.Total()))
}

// Change re-validates the control with the given id after its value
// changed. An emptied control goes back to unset without a message. It
// reports whether the field is now valid; unknown ids are never valid.
func (c *Controller) Change(id string) bool {
	ctl, ok := c.byID[id]
	if !ok {
		return false
	}
	if ctl.Value() == "" {
		c.clear(ctl)
		return false
	}
	return c.validate(ctl)
}

// Fields returns the state of every tracked control in form order.
func (c *Controller) Fields() []FieldState {
	out := make([]FieldState, 0, len(c.controls))
	for _, ctl := range c.controls {
		st := c.states[ctl.ID()]
		st.Value = ctl.Value()
		out = append(out, st)
	}
	return out
}

// Field returns the state of one control.
func (c *Controller) Field(id string) (FieldState, bool) {
	ctl, ok := c.byID[id]
	if !ok {
		return FieldState{}, false
	}
	st := c.states[id]
	st.Value = ctl.Value()
	return st, true
}

func (c *Controller) validate(ctl Control) bool {
	rule, ok := rules[ctl.ID()]
	if !ok {
		return false
	}

	value := ctl.Value()
	switch {
	case value == "":
		c.mark(ctl, FieldState{Validity: Invalid, Kind: EmptyField, Message: emptyMessage(ctl.ID())})
		return false
	case !rule.valid(value):
		c.mark(ctl, FieldState{Validity: Invalid, Kind: InvalidFormat, Message: rule.message})
		return false
	default:
		c.mark(ctl, FieldState{Validity: Valid})
		return true
	}
}

func (c *Controller) clear(ctl Control) {
	c.mark(ctl, FieldState{})
}

func (c *Controller) mark(ctl Control, st FieldState) {
	st.ID = ctl.ID()
	c.states[st.ID] = st
	ctl.SetValidity(st.Validity)
	ctl.SetError(st.Message)
}

func (c *Controller) invalidIDs() []string {
	var ids []string
	for _, ctl := range c.controls {
		if c.states[ctl.ID()].Validity == Invalid {
			ids = append(ids, ctl.ID())
		}
	}
	return ids
}
