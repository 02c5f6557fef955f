package commands

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currencies whose minor unit is the major unit.
var zeroDecimalCurrencies = map[string]bool{
	"bif": true, "clp": true, "djf": true, "gnf": true, "jpy": true, "kmf": true,
	"krw": true, "mga": true, "pyg": true, "rwf": true, "ugx": true, "vnd": true,
	"vuv": true, "xaf": true, "xof": true, "xpf": true,
}

const defaultMinorUnitExponent = 2

// formatAmount renders an amount in minor units as "<major> <CURRENCY>".
func formatAmount(amount int64, currency string) string {
	currency = strings.ToLower(currency)

	exponent := int32(defaultMinorUnitExponent)
	if zeroDecimalCurrencies[currency] {
		exponent = 0
	}

	value := decimal.New(amount, -exponent).StringFixed(exponent)
	if currency == "" {
		return value
	}

	return value + " " + strings.ToUpper(currency)
}
