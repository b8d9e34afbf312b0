// Package humanize formats numbers for fixed-width terminal output.
package humanize

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer uses English grouping so output does not depend on the user locale.
var printer = message.NewPrinter(language.English)

// Fixed formats value with exactly decimals fractional digits and
// thousands separators. For example, Fixed(1234.5, 2) is "1,234.50".
func Fixed(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "N/A"
	}
	return printer.Sprint(number.Decimal(
		value,
		number.MinFractionDigits(decimals),
		number.MaxFractionDigits(decimals),
	))
}

// Money formats a USD amount with two decimals.
func Money(value float64) string {
	return "$" + Fixed(value, 2)
}

// SignedPercent formats a percentage with two decimals and an explicit sign.
func SignedPercent(value float64) string {
	out := Fixed(value, 2)
	if !strings.HasPrefix(out, "-") {
		out = "+" + out
	}
	return out + "%"
}

// Compact is like Money but reduces large amounts to a base value and
// a unit suffix, e.g. Compact(1.25e12) is "$1.25T".
func Compact(value float64) string {
	value, suffix := reduce(value)
	return fmt.Sprintf("$%.2f%s", value, suffix)
}

// reduce reduces value to a base value and a unit suffix. For
// example, reduce(1055) returns (1.055, "K").
func reduce(value float64) (float64, string) {
	if value < 1e03 {
		return value, ""
	}
	for _, suffix := range []string{"K", "M", "B"} {
		value /= 1e03
		if value < 1e03 {
			return value, suffix
		}
	}
	return value / 1e03, "T"
}

// Title capitalizes each word, e.g. Title("new york") is "New York".
func Title(value string) string {
	return cases.Title(language.English).String(value)
}
