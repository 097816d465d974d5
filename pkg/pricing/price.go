package pricing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPrice is returned when a price string cannot be parsed.
var ErrInvalidPrice = errors.New("invalid price")

// Price is an amount of money in cents.
type Price int64

// Cents returns a Price of c cents.
func Cents(c int64) Price {
	return Price(c)
}

// String formats the price with two decimals, e.g. "10.25".
func (p Price) String() string {
	if p == math.MinInt64 {
		return "-92233720368547758.08"
	}
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float returns the price in whole currency units.
func (p Price) Float() float64 {
	return float64(p) / 100
}

// maxUnits is the largest whole amount whose cent value fits in a Price.
const maxUnits = (math.MaxInt64 - 99) / 100

// ParsePrice parses a decimal amount such as "5", "1.5", "1.75" or "$2.00".
// At most two fractional digits are accepted.
func ParsePrice(s string) (Price, error) {
	raw := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	if len(frac) > 2 {
		return 0, fmt.Errorf("%w: %q has more than two decimals", ErrInvalidPrice, raw)
	}
	if whole == "" {
		whole = "0"
	}
	frac += strings.Repeat("0", 2-len(frac))

	if !isDigits(whole) || !isDigits(frac) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidPrice, raw, err)
	}
	if units > maxUnits {
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidPrice, raw)
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)

	v := units*100 + cents
	if neg {
		v = -v
	}
	return Price(v), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// UnmarshalYAML accepts scalar amounts like 1.50 or "1.50".
func (p *Price) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: expected a scalar", ErrInvalidPrice, value.Line)
	}
	parsed, err := ParsePrice(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*p = parsed
	return nil
}

// MarshalYAML writes the price as a two-decimal string.
func (p Price) MarshalYAML() (any, error) {
	return p.String(), nil
}
