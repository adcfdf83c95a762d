package mathx

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// English locale keeps thousand separators consistent across machines.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatAmount formats a float with thousand separators and the given
// precision, for CLI tables and report text.
// Example: FormatAmount(125000.5, 2) returns "125,000.50".
func FormatAmount(v float64, precision int) string {
	rounded := Round(v, precision)
	if precision == 0 {
		return FormatNumber(int64(rounded))
	}

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	dot := strings.IndexByte(formatted, '.')
	if dot < 0 {
		return formatted
	}

	intPart, err := strconv.ParseInt(formatted[:dot], 10, 64)
	if err != nil {
		return formatted
	}
	return printer.Sprintf("%d", intPart) + formatted[dot:]
}

// Num renders a number for use inside audit formula strings. Trailing zeros
// are trimmed so "80.00" renders as "80" and "0.50" as "0.5".
func Num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprintf("%v", v)
	}
	s := strconv.FormatFloat(Round(v, 4), 'f', -1, 64)
	return s
}

// Formula renders an audit string of the form "lhs = expression = result".
// Downstream ESG reports quote these strings verbatim, so both the expression
// with substituted literals and the final value must appear.
func Formula(lhs, expression string, result float64) string {
	return fmt.Sprintf("%s = %s = %s", lhs, expression, Num(result))
}
