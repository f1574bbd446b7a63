package calc

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	// maxDisplayLength is the longest default rendering kept as is
	maxDisplayLength = 15

	// displayPrecision is the number of significant digits used for longer results
	displayPrecision = 10
)

// FormatNumber renders a computed value for the display. The shortest decimal
// string is used unless it is longer than maxDisplayLength characters, in which
// case the value is rendered with displayPrecision significant digits.
func FormatNumber(value float64) string {
	s := shortestString(value)
	if len(s) > maxDisplayLength {
		return precisionString(value, displayPrecision)
	}
	return s
}

// ParseDisplay returns the numeric value of the longest numeric prefix of a
// display string, so "1e+21." reads as 1e21. Values too large for a float64
// read as ±Inf. It returns NaN when the display does not start with a number.
func ParseDisplay(display string) float64 {
	prefix := numericPrefix(display)
	if prefix == "" {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return value
}

// numericPrefix returns the longest prefix of s of the form
// [sign] (Infinity | digits [. digits] [e [sign] digits]), or "" if none.
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], "Infinity") {
		return s[:i+len("Infinity")]
	}

	start := i
	i = skipDigits(s, i)
	sawDigits := i > start
	if i < len(s) && s[i] == '.' {
		end := skipDigits(s, i+1)
		sawDigits = sawDigits || end > i+1
		i = end
	}
	if !sawDigits {
		return ""
	}

	// The exponent only counts when digits follow it
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if end := skipDigits(s, j); end > j {
			i = end
		}
	}
	return s[:i]
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// shortestString uses plain notation for decimal exponents in [-7, 21) and
// exponent notation outside of it. Negative zero renders as "0".
func shortestString(value float64) string {
	if s, ok := specialString(value); ok {
		return s
	}
	if value == 0 {
		return "0"
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	digits, exp := splitExponent(strconv.FormatFloat(value, 'e', -1, 64))
	k := len(digits)
	n := exp + 1 // position of the decimal point relative to digits

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	default:
		return sign + exponentString(digits, exp)
	}
}

// precisionString renders value with exactly precision significant digits,
// keeping trailing zeros. Ties round away from zero. Exponent notation is used
// for exponents below -6 or at least precision.
func precisionString(value float64, precision int) string {
	if s, ok := specialString(value); ok {
		return s
	}
	if value == 0 {
		return "0." + strings.Repeat("0", precision-1)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	digits, exp := roundSignificant(value, precision)

	switch {
	case exp < -6 || exp >= precision:
		return sign + exponentString(digits, exp)
	case exp == precision-1:
		return sign + digits
	case exp >= 0:
		return sign + digits[:exp+1] + "." + digits[exp+1:]
	default:
		return sign + "0." + strings.Repeat("0", -(exp+1)) + digits
	}
}

// exactDigits bounds the significant digits of any float64's exact decimal expansion
const exactDigits = 800

// roundSignificant rounds a positive value to precision significant digits,
// half away from zero, and returns the digits with the decimal exponent of the first.
func roundSignificant(value float64, precision int) (string, int) {
	exact, exp := splitExponent(strconv.FormatFloat(value, 'e', exactDigits, 64))

	digits := []byte(exact[:precision])
	if exact[precision] < '5' {
		return string(digits), exp
	}

	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] != '9' {
			digits[i]++
			return string(digits), exp
		}
		digits[i] = '0'
	}

	// All nines carried over: 9.99…e+x becomes 1.00…e+(x+1)
	digits[0] = '1'
	return string(digits), exp + 1
}

func specialString(value float64) (string, bool) {
	switch {
	case math.IsNaN(value):
		return "NaN", true
	case math.IsInf(value, 1):
		return "Infinity", true
	case math.IsInf(value, -1):
		return "-Infinity", true
	default:
		return "", false
	}
}

// splitExponent turns "d.ddde±xx" into its significant digits and exponent
func splitExponent(s string) (string, int) {
	mantissa, expPart, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expPart)
	return strings.Replace(mantissa, ".", "", 1), exp
}

func exponentString(digits string, exp int) string {
	var b strings.Builder
	b.WriteString(digits[:1])
	if len(digits) > 1 {
		b.WriteString(".")
		b.WriteString(digits[1:])
	}
	b.WriteString("e")
	if exp >= 0 {
		b.WriteString("+")
	} else {
		b.WriteString("-")
		exp = -exp
	}
	b.WriteString(strconv.Itoa(exp))
	return b.String()
}
