package calculator

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

const maxFractionDigits = 8

var (
	numericPrefix  = regexp.MustCompile(`^[+-]?(Infinity|\d+\.?\d*(?:[eE][+-]?\d+)?|\.\d+(?:[eE][+-]?\d+)?)`)
	trailingZeroes = regexp.MustCompile(`\.?0+$`)
)

// parseNumber reads the longest numeric prefix of s the way a browser's
// parseFloat does. Anything without a numeric prefix is NaN.
func parseNumber(s string) float64 {
	m := numericPrefix.FindString(strings.TrimLeft(s, " \t\n\r\v\f"))
	if m == "" {
		return math.NaN()
	}
	// Out-of-range input still yields ±Inf or 0 alongside ErrRange
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// numberString renders f with the shortest round-trip digits, switching to
// exponent form outside [1e-6, 1e21).
func numberString(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// FormatResult renders a computed value for display. Values with more than
// eight fractional digits are rounded to eight places and trailing zeroes
// dropped.
func FormatResult(f float64) string {
	s := numberString(f)
	_, frac, ok := strings.Cut(s, ".")
	if !ok || len(frac) <= maxFractionDigits {
		return s
	}
	return trailingZeroes.ReplaceAllString(toFixed(f, maxFractionDigits), "")
}

// toFixed rounds the exact binary value of f half away from zero.
func toFixed(f float64, digits int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) >= 1e21 {
		return numberString(f)
	}
	return new(big.Rat).SetFloat64(f).FloatString(digits)
}
