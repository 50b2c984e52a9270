package currency

import (
	"context"

	"github.com/SasiVeeramachaneni/currency-converter/tool"
	"github.com/SasiVeeramachaneni/currency-converter/tool/function"
)

// Tool names as declared to the model.
const (
	ToolConvertCurrency         = "convert_currency"
	ToolGetExchangeRate         = "get_exchange_rate"
	ToolListSupportedCurrencies = "list_supported_currencies"
)

// ConvertArgs are the arguments of the convert_currency tool.
type ConvertArgs struct {
	Amount       float64 `json:"amount" jsonschema:"description=The amount to convert"`
	FromCurrency string  `json:"from_currency" jsonschema:"description=The source currency code (e.g., USD, EUR, GBP)"`
	ToCurrency   string  `json:"to_currency" jsonschema:"description=The target currency code (e.g., USD, EUR, GBP)"`
}

// RateArgs are the arguments of the get_exchange_rate tool.
type RateArgs struct {
	FromCurrency string `json:"from_currency" jsonschema:"description=The source currency code (e.g., USD, EUR, GBP)"`
	ToCurrency   string `json:"to_currency" jsonschema:"description=The target currency code (e.g., USD, EUR, GBP)"`
}

// ListArgs are the (empty) arguments of the list_supported_currencies tool.
type ListArgs struct{}

// Tools returns the three conversion tools backed by the table, in the order
// they are declared to the model.
func Tools(table Table) []tool.CallableTool {
	convertTool := function.NewFunctionTool(
		func(_ context.Context, args ConvertArgs) (*ConversionResult, error) {
			return table.Convert(args.Amount, args.FromCurrency, args.ToCurrency)
		},
		function.WithName(ToolConvertCurrency),
		function.WithDescription("Convert an amount from one currency to another"),
	)

	rateTool := function.NewFunctionTool(
		func(_ context.Context, args RateArgs) (*RateResult, error) {
			return table.Rate(args.FromCurrency, args.ToCurrency)
		},
		function.WithName(ToolGetExchangeRate),
		function.WithDescription("Get the current exchange rate between two currencies"),
	)

	listTool := function.NewFunctionTool(
		func(_ context.Context, _ ListArgs) (*CurrenciesResult, error) {
			return table.List(), nil
		},
		function.WithName(ToolListSupportedCurrencies),
		function.WithDescription("List all supported currencies for conversion"),
	)

	return []tool.CallableTool{convertTool, rateTool, listTool}
}
