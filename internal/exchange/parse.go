package exchange

import "github.com/shopspring/decimal"

// ParseDecimal parses a wire-encoded decimal string. Parse failures yield
// zero rather than an error. This lenient default keeps partially populated
// responses usable but can silently mask upstream schema drift; treat an
// unexpected zero with suspicion.
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
