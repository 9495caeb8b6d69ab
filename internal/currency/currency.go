// Package currency supplies exchange rates relative to the base currency
// and conversion/formatting helpers. Rates come from a free exchange-rate
// API and fall back to a static table when the fetch fails.
package currency

import "fmt"

// BaseCurrency is the code all stored and displayed amounts are normalized to.
const BaseCurrency = "INR"

// Currency describes a supported currency.
type Currency struct {
	Code   string
	Name   string
	Symbol string
}

// Currencies is the supported currency list, base currency first.
var Currencies = []Currency{
	{Code: "INR", Name: "Indian Rupee", Symbol: "₹"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CAD", Name: "Canadian Dollar", Symbol: "C$"},
	{Code: "AUD", Name: "Australian Dollar", Symbol: "A$"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
	{Code: "BRL", Name: "Brazilian Real", Symbol: "R$"},
	{Code: "MXN", Name: "Mexican Peso", Symbol: "Mex$"},
}

// ByCode looks up a supported currency by its code.
func ByCode(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Format renders an amount with the currency's symbol.
func Format(amount float64, code string) string {
	symbol := "₹"
	if c, ok := ByCode(code); ok {
		symbol = c.Symbol
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
