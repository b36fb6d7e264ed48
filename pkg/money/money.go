// Package money holds the tolerant numeric coercion used for every amount,
// price, quantity and discount typed by an operator, plus two-decimal
// formatting for receipt output.
package money

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ChangeThreshold is the smallest overpayment reported as change. Anything at
// or below half a cent is floating point noise.
const ChangeThreshold = 0.005

// numberPrefix matches the longest leading decimal literal, the same prefix a
// lenient float parser would accept.
var numberPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Coerce converts operator input to a float. The first comma is treated as the
// decimal separator. Input that does not start with a number, or that parses
// to a non-finite value, yields exactly 0. Coerce never fails.
func Coerce(raw string) float64 {
	v, ok := parse(raw)
	if !ok {
		return 0
	}
	return v
}

// CoerceAny is Coerce for values decoded from loosely typed JSON.
func CoerceAny(v interface{}) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		return Coerce(n)
	case interface{ String() string }:
		return Coerce(n.String())
	default:
		return 0
	}
}

// Format renders v with exactly two decimals, rounding half away from zero on
// the shortest decimal form of v, which is how the device rounds the string the
// operator typed.
func Format(v float64) string {
	return decimal.NewFromFloat(finite(v)).StringFixed(2)
}

// FormatQuantity renders a quantity with three decimals as printed on receipts.
func FormatQuantity(v float64) string {
	return decimal.NewFromFloat(finite(v)).StringFixed(3)
}

// FormatRaw coerces raw and formats it with two decimals. When raw is not a
// number at all it is returned unchanged.
func FormatRaw(raw string) string {
	v, ok := parse(raw)
	if !ok {
		return raw
	}
	return Format(v)
}

// Round2 rounds v to cents using the same rule as Format.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(finite(v)).Round(2).Float64()
	return f
}

func parse(raw string) (float64, bool) {
	s := strings.Replace(raw, ",", ".", 1)
	s = strings.TrimLeft(s, " \t\r\n\v\f")
	m := numberPrefix.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func finite(v float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}
