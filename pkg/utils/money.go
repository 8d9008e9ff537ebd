package utils

import (
	"errors"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice = errors.New("price must be a positive amount with at most two decimals")
	ErrPriceTooHigh = errors.New("price exceeds 99999999.99")

	priceFormat = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)
	maxPrice    = decimal.RequireFromString("99999999.99")
)

// NormalizePrice validates a user supplied price and returns it with exactly
// two decimals, e.g. "45" -> "45.00". Prices are stored as numeric(10,2).
func NormalizePrice(raw string) (string, error) {
	if !priceFormat.MatchString(raw) {
		return "", ErrInvalidPrice
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return "", ErrInvalidPrice
	}
	if d.GreaterThan(maxPrice) {
		return "", ErrPriceTooHigh
	}
	return d.StringFixed(2), nil
}

// FormatAmount renders a stored numeric value with two decimals. Values the
// database hands back as "45", "45.5" or "45.00" all become "45.00".
func FormatAmount(raw string) string {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	return d.StringFixed(2)
}

// SumAmounts adds decimal strings exactly. Unparseable entries are skipped.
func SumAmounts(values []string) string {
	total := decimal.Zero
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	return total.StringFixed(2)
}
