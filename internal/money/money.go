// Package money implements currency arithmetic and display formatting.
//
// Every computation rounds through integer cents so that repeated addition
// of two-decimal amounts never accumulates IEEE 754 error. All other
// packages route money math through here.
package money

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Cents converts a dollar amount to integer cents, rounding to the nearest
// cent.
func Cents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a dollar amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}

// Cast rounds an arbitrary float to a valid money value (two decimals).
func Cast(amount float64) float64 {
	return FromCents(Cents(amount))
}

// Total safely adds dollar figures by summing in cents.
func Total(amounts ...float64) float64 {
	var cents int64
	for _, amount := range amounts {
		cents += Cents(amount)
	}
	return FromCents(cents)
}

// Multiply scales a dollar amount by a multiplier, rounding the result to a
// valid money value.
func Multiply(amount, multiplier float64) float64 {
	return Cast(amount * multiplier)
}

// String formats an amount with a currency symbol, thousands separators and
// cents, e.g. "$1,234.56".
func String(amount float64) string {
	cents := Cents(amount)
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return printer.Sprintf("%s$%d", sign, cents/100) + fmt.Sprintf(".%02d", cents%100)
}

// DollarString formats an amount with a currency symbol and thousands
// separators; cents are rounded off, e.g. "$1,235".
func DollarString(amount float64) string {
	return printer.Sprintf("$%d", roundedDollars(amount))
}

// IntegerString formats an amount as a bare number with thousands
// separators; cents are rounded off, e.g. "1,235".
func IntegerString(amount float64) string {
	return printer.Sprintf("%d", roundedDollars(amount))
}

func roundedDollars(amount float64) int64 {
	return int64(math.Round(FromCents(Cents(amount))))
}
