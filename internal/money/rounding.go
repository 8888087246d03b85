// Package money holds the single rounding rule shared by every fee
// computation in the platform. Amounts are whole currency units (int64);
// exact intermediate values are decimals.
package money

import "github.com/shopspring/decimal"

// RoundDown truncates an exact value to whole currency units, rounding
// toward negative infinity. Fees computed this way never exceed the
// mathematically exact percentage, and repeated computations over the
// same inputs are bit-for-bit identical.
func RoundDown(v decimal.Decimal) int64 {
	return v.Floor().IntPart()
}

// Rate reports whether r is a valid fee rate, i.e. in [0, 1).
func Rate(r decimal.Decimal) bool {
	return !r.IsNegative() && r.LessThan(decimal.NewFromInt(1))
}
