package main

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunQuote_PrintsBreakdown(t *testing.T) {
	var out bytes.Buffer

	err := runQuote(&out, decimal.NewFromInt(200), "4", "Junior")
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Categoría:  Junior (15% de descuento)")
	assert.Contains(t, got, "Cantidad:   4")
	assert.Contains(t, got, "Bruto:      $\u00a0800,00")
	assert.Contains(t, got, "Descuento:  $\u00a0120,00")
	assert.Contains(t, got, "Total:      $\u00a0680,00 ARS")
}

func TestRunQuote_RejectsBadInput(t *testing.T) {
	var out bytes.Buffer

	err := runQuote(&out, decimal.NewFromInt(200), "3.5", "Junior")
	assert.ErrorIs(t, err, errInvalidQuantity)

	err = runQuote(&out, decimal.NewFromInt(200), "2", "junior")
	assert.ErrorIs(t, err, errUnknownCategory)

	assert.Empty(t, out.String())
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["serve"])
	assert.True(t, names["cotizar"])
}

func TestRunQuote_LargeQuantity(t *testing.T) {
	var out bytes.Buffer

	err := runQuote(&out, decimal.NewFromInt(200), "1e30", "Trainee")
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, "Cantidad:   1000000000000000000000000000000")
	assert.Contains(t, got, "Total:      $\u00a0100.000.000.000.000.000.000.000.000.000.000,00 ARS")
}
