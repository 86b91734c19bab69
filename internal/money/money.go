// =============================================================================
// Sales Report Analyzer - Money Module
// =============================================================================
//
// This module provides exact decimal arithmetic for monetary values. Revenue
// figures are sums and products of prices, and binary floating point would
// accumulate rounding error on typical monetary values (0.1 + 0.2 != 0.3).
// Money therefore wraps math/big.Rat.
//
// Money is immutable - all operations return new instances.
//
// =============================================================================

package money

import (
	"fmt"
	"math/big"
	"regexp"
)

// decimalPattern accepts locale-invariant, period-separated decimal numbers
// with an optional sign and exponent. Thousands separators, currency symbols
// and localized decimal commas are rejected on purpose: the legacy export
// format is fixed.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Money represents a monetary value with precise decimal arithmetic.
// The zero value is usable and equal to Zero().
type Money struct {
	amount *big.Rat
}

// Zero returns a Money representing zero.
func Zero() Money {
	return Money{amount: big.NewRat(0, 1)}
}

// Parse creates Money from a decimal string such as "19.99" or "-0.5".
// The format is strict; anything the pattern does not accept is an error.
func Parse(s string) (Money, error) {
	if !decimalPattern.MatchString(s) {
		return Money{}, fmt.Errorf("invalid decimal format: %q", s)
	}

	rat, ok := new(big.Rat).SetString(s)
	if !ok {
		return Money{}, fmt.Errorf("invalid decimal format: %q", s)
	}

	return Money{amount: rat}, nil
}

// MustParse is Parse that panics on error. Intended for constants and tests.
func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt creates Money from a whole number of currency units.
func FromInt(n int64) Money {
	return Money{amount: big.NewRat(n, 1)}
}

// rat returns the internal amount, treating the zero value as 0.
func (m Money) rat() *big.Rat {
	if m.amount == nil {
		return big.NewRat(0, 1)
	}
	return m.amount
}

// Add returns a new Money that is the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: new(big.Rat).Add(m.rat(), other.rat())}
}

// MulInt returns a new Money that is m multiplied by an integer factor.
func (m Money) MulInt(n int64) Money {
	return Money{amount: new(big.Rat).Mul(m.rat(), big.NewRat(n, 1))}
}

// Cmp compares m and other: -1 if m < other, 0 if equal, +1 if m > other.
func (m Money) Cmp(other Money) int {
	return m.rat().Cmp(other.rat())
}

// GreaterThan returns true if m is strictly greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.Cmp(other) > 0
}

// Equal returns true if m and other represent the same amount.
func (m Money) Equal(other Money) bool {
	return m.Cmp(other) == 0
}

// IsNegative returns true if the amount is below zero.
func (m Money) IsNegative() bool {
	return m.rat().Sign() < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.rat().Sign() == 0
}

// Rat returns a copy of the internal big.Rat.
func (m Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.rat())
}

// FloatString returns a decimal string with the specified precision.
// For example: FloatString(2) returns "19.99".
func (m Money) FloatString(precision int) string {
	return m.rat().FloatString(precision)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.rat().FloatString(2)
}
