package seo

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var vietnamesePrinter = message.NewPrinter(language.Vietnamese)

// FormatVND renders an amount in the storefront's currency convention,
// e.g. 500000 -> "500.000 ₫".
func FormatVND(amount float64) string {
	return vietnamesePrinter.Sprintf("%v ₫", number.Decimal(amount, number.MaxFractionDigits(0)))
}
