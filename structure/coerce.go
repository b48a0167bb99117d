package structure

import (
	"math"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// leadingInt matches the integer a quantity string starts with; trailing
// text such as "4 pcs", a fraction or an exponent is ignored.
var leadingInt = regexp.MustCompile(`^\s*[+-]?\d+`)

// CoerceQuantity turns a user supplied quantity (string or number) into a
// positive integer. Strings are read up to the end of their leading integer.
// Fractions are truncated; anything unparsable, zero, negative or out of
// range becomes DefaultQuantity.
func CoerceQuantity(value any) int {
	if s, ok := value.(string); ok {
		m := leadingInt.FindString(s)
		if m == "" {
			return DefaultQuantity
		}
		value = strings.TrimSpace(m)
	}

	f, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return DefaultQuantity
	}
	if f < 1 || f > math.MaxInt32 {
		return DefaultQuantity
	}
	return int(f)
}
