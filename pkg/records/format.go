package records

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL renders an amount for display with Brazilian number formatting,
// e.g. "R$ 1.234,56".
func FormatBRL(amount decimal.Decimal) string {
	value, _ := amount.Round(2).Float64()
	return printer.Sprintf("R$ %.2f", value)
}
