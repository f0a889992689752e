// Package money provides functionality for handling monetary values.
//
// Money is a value object that represents a monetary value in a specific
// currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., cents for USD).
//   - Currency must be valid (valid ISO 4217 code and valid decimal places).
//   - All arithmetic operations require matching currencies.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

var (
	// ErrInvalidAmount is returned when an amount cannot be represented
	// exactly in the currency's smallest unit.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidCurrency is returned when a currency code is invalid.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrMismatchedCurrencies is returned when performing operations on
	// money with different currencies.
	ErrMismatchedCurrencies = errors.New("mismatched currencies")

	// ErrAmountExceedsMaxSafeInt is returned when an operation would
	// overflow the smallest-unit representation.
	ErrAmountExceedsMaxSafeInt = errors.New("amount exceeds maximum safe integer value")
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., cents for USD).
type Amount = int64

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   Amount
	currency Currency
}

// New creates a new Money value object with the given amount and currency.
// The currency parameter can be a string (e.g., "USD"), a Code, or a Currency.
// Invariants enforced:
//   - Currency must be valid (valid ISO 4217 code and valid decimal places).
//   - Amount must not have more decimal places than allowed by the currency.
//   - Amount is converted to the smallest currency unit.
//
// Returns Money or an error if any invariant is violated.
func New(amount float64, currency any) (Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}

	smallestUnit, err := convertToSmallestUnit(amount, c)
	if err != nil {
		return Money{}, err
	}

	return Money{amount: smallestUnit, currency: c}, nil
}

// NewFromSmallestUnit creates a new Money object from the smallest currency
// unit (e.g., cents for USD).
func NewFromSmallestUnit(amount int64, currency any) (Money, error) {
	c, err := resolveCurrency(currency)
	if err != nil {
		return Money{}, err
	}
	return Money{amount: amount, currency: c}, nil
}

// Must creates a Money object from the given amount and currency.
// Panics if any invariant is violated. Intended for constants and tests.
func Must(amount float64, currency any) Money {
	m, err := New(amount, currency)
	if err != nil {
		panic(fmt.Sprintf("money.Must(%v, %v): %v", amount, currency, err))
	}
	return m
}

// Zero creates a Money object with zero amount in the specified currency.
func Zero(currency Currency) Money {
	return Money{amount: 0, currency: currency}
}

// Amount returns the amount in the smallest currency unit.
func (m Money) Amount() Amount {
	return m.amount
}

// AmountFloat returns the amount as a float64 in the main currency unit
// (e.g., dollars for USD).
func (m Money) AmountFloat() float64 {
	amount := new(big.Rat).SetInt64(m.amount)
	divisor := new(big.Rat).SetInt64(int64(math.Pow10(m.currency.Decimals)))
	result, _ := new(big.Rat).Quo(amount, divisor).Float64()
	return result
}

// Currency returns the currency of the Money object.
func (m Money) Currency() Currency {
	return m.currency
}

// CurrencyCode returns the currency code of the Money object.
func (m Money) CurrencyCode() Code {
	return m.currency.Code
}

// Add returns a new Money object with the sum of amounts.
// Invariants enforced:
//   - Currencies must match.
//   - The sum must not overflow the smallest-unit representation.
func (m Money) Add(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	if other.amount > 0 && m.amount > math.MaxInt64-other.amount {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	if other.amount < 0 && m.amount < math.MinInt64-other.amount {
		return Money{}, ErrAmountExceedsMaxSafeInt
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns a new Money object with the difference of amounts.
// The result can be negative if the subtrahend is larger than the minuend.
// Invariants enforced:
//   - Currencies must match.
func (m Money) Subtract(other Money) (Money, error) {
	if !m.IsSameCurrency(other) {
		return Money{}, fmt.Errorf(
			"%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

// Equals checks if the current Money object is equal to another Money object.
// Returns false if currencies do not match.
func (m Money) Equals(other Money) bool {
	return m.currency == other.currency && m.amount == other.amount
}

// GreaterThan checks if the current Money object is greater than another.
// Invariants enforced:
//   - Currencies must match.
func (m Money) GreaterThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf(
			"%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return m.amount > other.amount, nil
}

// LessThan checks if the current Money object is less than another.
// Invariants enforced:
//   - Currencies must match.
func (m Money) LessThan(other Money) (bool, error) {
	if !m.IsSameCurrency(other) {
		return false, fmt.Errorf(
			"%w: %s and %s", ErrMismatchedCurrencies, m.currency.Code, other.currency.Code)
	}
	return m.amount < other.amount, nil
}

// IsSameCurrency checks if two Money objects share a currency.
func (m Money) IsSameCurrency(other Money) bool {
	return m.currency == other.currency
}

// IsPositive returns true if the amount is greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsNegative returns true if the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// String returns a string representation of the Money object.
func (m Money) String() string {
	return fmt.Sprintf("%.*f %s", m.currency.Decimals, m.AmountFloat(), m.currency.Code)
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"amount":   m.AmountFloat(),
		"currency": m.currency.Code,
	})
}

func resolveCurrency(currency any) (Currency, error) {
	var c Currency
	switch v := currency.(type) {
	case string:
		code := Code(v)
		if !code.IsValid() {
			return Currency{}, fmt.Errorf("%w: %s", ErrInvalidCurrency, v)
		}
		c = code.ToCurrency()
	case Code:
		c = v.ToCurrency()
	case Currency:
		c = v
	default:
		return Currency{}, fmt.Errorf(
			"invalid currency type: %T, expected string, Code, or Currency", currency)
	}
	if !c.IsValid() {
		return Currency{}, fmt.Errorf("%w: %v", ErrInvalidCurrency, c)
	}
	return c, nil
}

// convertToSmallestUnit converts a float64 amount to the smallest currency
// unit. Uses big.Rat for the conversion so binary floating-point rounding
// never leaks into a stored amount.
func convertToSmallestUnit(amount float64, c Currency) (int64, error) {
	amountStr := fmt.Sprintf("%.10f", amount)
	if parts := strings.Split(amountStr, "."); len(parts) > 1 {
		decimals := strings.TrimRight(parts[1], "0")
		if len(decimals) > c.Decimals {
			return 0, fmt.Errorf(
				"%w: more than %d decimal places", ErrInvalidAmount, c.Decimals)
		}
	}

	amountRat, ok := new(big.Rat).SetString(fmt.Sprintf("%.*f", c.Decimals, amount))
	if !ok {
		return 0, fmt.Errorf("%w: %f", ErrInvalidAmount, amount)
	}

	multiplier := big.NewRat(int64(math.Pow10(c.Decimals)), 1)
	smallestUnitRat := new(big.Rat).Mul(amountRat, multiplier)
	if !smallestUnitRat.IsInt() {
		return 0, fmt.Errorf(
			"%w: more than %d decimal places", ErrInvalidAmount, c.Decimals)
	}

	smallestUnit := smallestUnitRat.Num()
	if !smallestUnit.IsInt64() {
		return 0, ErrAmountExceedsMaxSafeInt
	}
	return smallestUnit.Int64(), nil
}
