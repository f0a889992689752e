package money_test

import (
	"math"
	"testing"

	"github.com/amirasaad/transfers/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("converts to smallest unit", func(t *testing.T) {
		m, err := money.New(100.50, "USD")
		require.NoError(t, err)
		assert.Equal(t, int64(10050), m.Amount())
		assert.Equal(t, money.USD, m.CurrencyCode())
	})

	t.Run("accepts whole units for zero-decimal currency", func(t *testing.T) {
		m, err := money.New(500, money.JPY)
		require.NoError(t, err)
		assert.Equal(t, int64(500), m.Amount())
	})

	t.Run("rejects excess decimal places", func(t *testing.T) {
		_, err := money.New(1.005, "USD")
		assert.ErrorIs(t, err, money.ErrInvalidAmount)
	})

	t.Run("rejects invalid currency code", func(t *testing.T) {
		_, err := money.New(10, "usd")
		assert.ErrorIs(t, err, money.ErrInvalidCurrency)

		_, err = money.New(10, "DOLLARS")
		assert.ErrorIs(t, err, money.ErrInvalidCurrency)
	})

	t.Run("no floating point drift", func(t *testing.T) {
		// 0.1 + 0.2 is the classic binary float trap; cents must be exact.
		a := money.Must(0.1, "USD")
		b := money.Must(0.2, "USD")
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, int64(30), sum.Amount())
	})
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	hundred := money.Must(100, "USD")
	fifty := money.Must(50, "USD")

	t.Run("add", func(t *testing.T) {
		sum, err := hundred.Add(fifty)
		require.NoError(t, err)
		assert.Equal(t, int64(15000), sum.Amount())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := hundred.Subtract(fifty)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), diff.Amount())
	})

	t.Run("subtract can go negative", func(t *testing.T) {
		diff, err := fifty.Subtract(hundred)
		require.NoError(t, err)
		assert.True(t, diff.IsNegative())
	})

	t.Run("add overflow", func(t *testing.T) {
		max, err := money.NewFromSmallestUnit(math.MaxInt64, money.USD)
		require.NoError(t, err)
		_, err = max.Add(fifty)
		assert.ErrorIs(t, err, money.ErrAmountExceedsMaxSafeInt)
	})

	t.Run("mismatched currencies", func(t *testing.T) {
		euros := money.Must(50, "EUR")
		_, err := hundred.Add(euros)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
		_, err = hundred.Subtract(euros)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
		_, err = hundred.GreaterThan(euros)
		assert.ErrorIs(t, err, money.ErrMismatchedCurrencies)
	})
}

func TestComparisons(t *testing.T) {
	t.Parallel()
	hundred := money.Must(100, "USD")
	fifty := money.Must(50, "USD")

	greater, err := hundred.GreaterThan(fifty)
	require.NoError(t, err)
	assert.True(t, greater)

	less, err := fifty.LessThan(hundred)
	require.NoError(t, err)
	assert.True(t, less)

	assert.True(t, hundred.Equals(money.Must(100, "USD")))
	assert.False(t, hundred.Equals(fifty))
	assert.False(t, hundred.Equals(money.Must(100, "EUR")))

	assert.True(t, hundred.IsPositive())
	assert.True(t, money.Zero(money.USDCurrency).IsZero())
}

func TestAmountFloat(t *testing.T) {
	t.Parallel()
	m := money.Must(1234.56, "USD")
	assert.InDelta(t, 1234.56, m.AmountFloat(), 0.0001)
	assert.Equal(t, "1234.56 USD", m.String())
}
