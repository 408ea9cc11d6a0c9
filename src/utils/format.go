package utils

import (
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatDollars renders an amount with thousands separators and at most two
// decimals, dropping trailing zeros ("283,687.94", "240,000").
func FormatDollars(amount float64) string {
	rounded := math.Round(amount*100) / 100
	if rounded == math.Trunc(rounded) {
		return usPrinter.Sprintf("%.0f", rounded)
	}
	s := usPrinter.Sprintf("%.2f", rounded)
	return strings.TrimSuffix(s, "0")
}

// FormatMonthYear renders a date as an upper-case month and year ("MAY 2028").
func FormatMonthYear(t time.Time) string {
	return strings.ToUpper(t.Format("January 2006"))
}
