// Package format converte valores numéricos em textos de exibição.
// As funções são puras: nunca alteram o valor usado nos cálculos.
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency arredonda para unidades inteiras com separador de milhar: 1000000 -> "$1,000,000"
func Currency(x float64) string {
	return "$" + printer.Sprintf("%.0f", x)
}

// Percentage exibe o valor armazenado como está: 42 -> "42%"
func Percentage(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64) + "%"
}

// MonthCount usa uma casa decimal: 6 -> "6.0 months"
func MonthCount(x float64) string {
	return printer.Sprintf("%.1f", x) + " months"
}

// Decimal formata com casas fixas, sem separador de milhar
func Decimal(x float64, places int) string {
	return strconv.FormatFloat(x, 'f', places, 64)
}

func PerMonth(s string) string {
	return s + "/month"
}
