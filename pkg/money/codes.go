package money

// Code represents a currency code (e.g., "USD", "EUR").
type Code string

// Common currency codes
const (
	USD Code = "USD" // US Dollar
	EUR Code = "EUR" // Euro
	JPY Code = "JPY" // Japanese Yen
	GBP Code = "GBP" // British Pound
)

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether the code is a supported currency.
func (c Code) IsValid() bool {
	switch c {
	case USD, EUR, JPY, GBP:
		return true
	default:
		return false
	}
}

// ToCurrency converts a Code to a Currency with its standard decimals.
func (c Code) ToCurrency() Currency {
	switch c {
	case USD:
		return USDCurrency
	case EUR:
		return EURCurrency
	case GBP:
		return GBPCurrency
	case JPY:
		return JPYCurrency
	default:
		// Unsupported codes never pass IsValid; two decimals is the safe
		// fallback for a code constructed directly.
		return Currency{Code: c, Decimals: 2}
	}
}

// Currency represents a monetary unit with its standard decimal places.
type Currency struct {
	Code     Code // 3-letter ISO 4217 code (e.g., "USD")
	Decimals int  // Number of decimal places (0-8)
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	if c.Decimals < 0 || c.Decimals > 8 {
		return false
	}
	return c.Code.IsValid()
}

// String returns the currency code as a string.
func (c Currency) String() string { return string(c.Code) }

// Common currency instances
var (
	USDCurrency = Currency{Code: USD, Decimals: 2}
	EURCurrency = Currency{Code: EUR, Decimals: 2}
	GBPCurrency = Currency{Code: GBP, Decimals: 2}
	JPYCurrency = Currency{Code: JPY, Decimals: 0} // Japanese Yen has no decimal places
)

// DefaultCurrency is the default currency (USD).
var DefaultCurrency = USDCurrency

// DefaultCode is the default currency code (USD).
var DefaultCode = USD
