package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/Simplici0/ventas/internal/pricing"
	"github.com/Simplici0/ventas/internal/validate"
)

var (
	errInvalidQuantity = errors.New("cantidad invalida, debe ser un numero entero")
	errUnknownCategory = errors.New("categoria invalida")
)

var (
	quoteQuantity string
	quoteCategory string
)

var quoteCmd = &cobra.Command{
	Use:   "cotizar",
	Short: "Calcula el total a pagar para una cantidad y categoría",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runQuote(cmd.OutOrStdout(), cfg.UnitPrice, quoteQuantity, quoteCategory)
	},
}

func init() {
	quoteCmd.Flags().StringVar(&quoteQuantity, "cantidad", "", "cantidad de tickets")
	quoteCmd.Flags().StringVar(&quoteCategory, "categoria", "", "Estudiante, Trainee o Junior")
	_ = quoteCmd.MarkFlagRequired("cantidad")
	_ = quoteCmd.MarkFlagRequired("categoria")
}

func runQuote(w io.Writer, unitPrice decimal.Decimal, rawQuantity, rawCategory string) error {
	quantity, ok := validate.ParsePositiveInteger(rawQuantity)
	if !ok {
		return fmt.Errorf("%w: %q", errInvalidQuantity, rawQuantity)
	}
	if !validate.Category(rawCategory) {
		return fmt.Errorf("%w: %q", errUnknownCategory, rawCategory)
	}

	category := pricing.Category(rawCategory)
	discount, _ := pricing.DefaultDiscounts.Discount(category)
	result := pricing.NewCalculator(unitPrice).Quote(quantity, discount)

	fmt.Fprintf(w, "Categoría:  %s (%s%% de descuento)\n", category, discount.Shift(2))
	fmt.Fprintf(w, "Cantidad:   %s\n", quantity)
	fmt.Fprintf(w, "Bruto:      %s\n", pricing.FormatARS(result.Breakdown.Gross))
	fmt.Fprintf(w, "Descuento:  %s\n", pricing.FormatARS(result.Breakdown.Discount))
	fmt.Fprintf(w, "Total:      %s %s\n", pricing.FormatARS(result.Totals.Total), pricing.Currency)
	return nil
}
