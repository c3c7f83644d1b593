// Package core holds the report types and the pure aggregation functions
// that derive every published figure. All arithmetic on amounts is checked;
// overflow aborts the whole operation instead of producing a wrapped
// accumulator.
package core

import (
	"errors"
	"math"
)

// ErrAmountOverflow reports that an amount accumulator left the int64 range.
var ErrAmountOverflow = errors.New("amount overflow")

// addAmount returns a+b or ErrAmountOverflow.
func addAmount(a, b int64) (int64, error) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, ErrAmountOverflow
	}
	return sum, nil
}

// subAmount returns a-b or ErrAmountOverflow.
func subAmount(a, b int64) (int64, error) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, ErrAmountOverflow
	}
	return diff, nil
}

// mulAmount returns a*b or ErrAmountOverflow.
func mulAmount(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		if a == 1 {
			return b, nil
		}
		if b == 1 {
			return a, nil
		}
		return 0, ErrAmountOverflow
	}
	prod := a * b
	if prod/b != a {
		return 0, ErrAmountOverflow
	}
	return prod, nil
}

// percentOf returns part*100/whole, truncated toward zero, or 0 when whole
// is not positive. The zero default for empty denominators is deliberate;
// the one exception is bill compliance, which defaults to 100 (see bills.go).
func percentOf(part, whole int64) (uint32, error) {
	if whole <= 0 {
		return 0, nil
	}
	scaled, err := mulAmount(part, 100)
	if err != nil {
		return 0, err
	}
	return uint32(scaled / whole), nil
}
