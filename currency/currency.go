// Package currency implements the exchange-rate table and the conversion
// operations exposed to the agent as tools.
package currency

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// BaseCurrency is the currency whose table entry is 1.0. All rates are
// derived relative to it: rate(from, to) = table[to] / table[from]. Keeping
// one entry per currency instead of a pairwise table is deliberate; derived
// cross rates are exact only through this derivation.
const BaseCurrency = "USD"

// Table maps a 3-letter currency code to its value relative to one unit of
// the base currency. All values must be positive and the base currency's own
// entry must be 1.0. Tables are treated as immutable after construction and
// are safe for concurrent reads.
type Table map[string]float64

// DefaultTable holds the reference exchange rates, expressed in units per
// one US dollar. Static snapshot; live rate retrieval is out of scope.
var DefaultTable = Table{
	"USD": 1.0,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.50,
	"CAD": 1.36,
	"AUD": 1.53,
	"CHF": 0.88,
	"CNY": 7.14,
	"INR": 83.12,
	"MXN": 17.15,
	"BRL": 4.97,
	"KRW": 1298.50,
	"SGD": 1.34,
	"HKD": 7.82,
	"SEK": 10.42,
	"NOK": 10.68,
	"NZD": 1.63,
	"ZAR": 18.65,
	"RUB": 89.50,
	"AED": 3.67,
}

// UnsupportedCurrencyError reports a currency code absent from the table.
type UnsupportedCurrencyError struct {
	Code string
}

// Error implements the error interface. The message is surfaced verbatim to
// the model as a tool result, so it must name the offending code.
func (e *UnsupportedCurrencyError) Error() string {
	return fmt.Sprintf("Currency '%s' not supported", e.Code)
}

// RateResult is the successful result of a rate lookup.
type RateResult struct {
	FromCurrency string  `json:"from_currency"`
	ToCurrency   string  `json:"to_currency"`
	ExchangeRate float64 `json:"exchange_rate"`
}

// ConversionResult is the successful result of a conversion.
type ConversionResult struct {
	OriginalAmount  float64 `json:"original_amount"`
	FromCurrency    string  `json:"from_currency"`
	ToCurrency      string  `json:"to_currency"`
	ConvertedAmount float64 `json:"converted_amount"`
	ExchangeRate    float64 `json:"exchange_rate"`
}

// CurrenciesResult is the result of listing supported currencies.
type CurrenciesResult struct {
	SupportedCurrencies []string `json:"supported_currencies"`
	BaseCurrency        string   `json:"base_currency"`
	TotalCurrencies     int      `json:"total_currencies"`
}

// Rate returns the exchange rate between two currencies. Codes are
// case-insensitive and normalized to upper case before lookup. The rate is
// rounded to 6 decimal places using math.Round semantics (ties rounded away
// from zero).
func (t Table) Rate(fromCurrency, toCurrency string) (*RateResult, error) {
	from, to, err := t.normalize(fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	rate := t[to] / t[from]
	return &RateResult{
		FromCurrency: from,
		ToCurrency:   to,
		ExchangeRate: round(rate, 6),
	}, nil
}

// Convert converts an amount between two currencies. The converted amount is
// rounded to 2 decimal places and the rate to 6, both with math.Round
// semantics (ties rounded away from zero).
func (t Table) Convert(amount float64, fromCurrency, toCurrency string) (*ConversionResult, error) {
	from, to, err := t.normalize(fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}
	rate := t[to] / t[from]
	return &ConversionResult{
		OriginalAmount:  amount,
		FromCurrency:    from,
		ToCurrency:      to,
		ConvertedAmount: round(amount*rate, 2),
		ExchangeRate:    round(rate, 6),
	}, nil
}

// List returns all supported currency codes in sorted order, the base
// currency, and the total count. It has no error path.
func (t Table) List() *CurrenciesResult {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return &CurrenciesResult{
		SupportedCurrencies: codes,
		BaseCurrency:        BaseCurrency,
		TotalCurrencies:     len(codes),
	}
}

// normalize upper-cases both codes and validates they are present in the table.
func (t Table) normalize(fromCurrency, toCurrency string) (string, string, error) {
	from := strings.ToUpper(fromCurrency)
	to := strings.ToUpper(toCurrency)
	if _, ok := t[from]; !ok {
		return "", "", &UnsupportedCurrencyError{Code: from}
	}
	if _, ok := t[to]; !ok {
		return "", "", &UnsupportedCurrencyError{Code: to}
	}
	return from, to, nil
}

func round(v float64, decimals int) float64 {
	shift := math.Pow(10, float64(decimals))
	return math.Round(v*shift) / shift
}
