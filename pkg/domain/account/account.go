// Package account contains the account aggregate and the domain rules the
// transfer engine enforces: balances never go negative, amounts are always
// positive, and every mutation happens while the account's balance guard is
// held by the caller.
package account

import (
	"errors"
	"time"

	"github.com/amirasaad/transfers/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists is returned when creating an account whose id is taken.
	ErrAccountExists = errors.New("account already exists")

	// ErrInvalidAmount is returned when a transaction amount is not positive.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientBalance is returned when an account has insufficient
	// balance for a withdrawal or transfer.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrCannotTransferToSameAccount is returned when a transfer is attempted
	// from an account to itself.
	ErrCannotTransferToSameAccount = errors.New("cannot transfer to same account")

	// ErrCurrencyMismatch is returned when there is a currency mismatch
	// between an account and a transaction amount.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDepositOverflow is returned when a deposit would overflow the
	// account balance.
	ErrDepositOverflow = errors.New("deposit amount exceeds maximum safe integer value")

	// ErrEmptyAccountID is returned when an account id is empty.
	ErrEmptyAccountID = errors.New("account id must not be empty")
)

// Account represents a financial account, encapsulating its balance.
//
// Invariants:
//   - The id is immutable after creation.
//   - The balance is a Money value object and can never become negative.
//   - The balance is only read or written while the account's balance guard
//     is held; the Account itself carries no lock.
type Account struct {
	ID        string
	Balance   money.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances,
// ensuring only valid accounts are constructed.
type Builder struct {
	id       string
	balance  int64
	currency money.Currency
	created  time.Time
}

// New creates a new Builder with sensible defaults: a generated uuid id and
// the default currency.
func New() *Builder {
	return &Builder{
		id:       uuid.NewString(),
		currency: money.DefaultCurrency,
		created:  time.Now(),
	}
}

// WithID sets the id for the account being built.
func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

// WithCurrency sets the currency for the account being built.
func (b *Builder) WithCurrency(c money.Currency) *Builder {
	b.currency = c
	return b
}

// WithBalance sets the initial balance in the smallest currency unit. This
// is for seeding accounts at creation or in test setup.
func (b *Builder) WithBalance(balance int64) *Builder {
	b.balance = balance
	return b
}

// Build finalizes the construction of the Account. It validates all
// invariants before returning the new Account instance.
func (b *Builder) Build() (*Account, error) {
	if b.id == "" {
		return nil, ErrEmptyAccountID
	}
	if !b.currency.IsValid() {
		return nil, money.ErrInvalidCurrency
	}
	if b.balance < 0 {
		return nil, ErrInvalidAmount
	}
	bal, err := money.NewFromSmallestUnit(b.balance, b.currency)
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:        b.id,
		Balance:   bal,
		CreatedAt: b.created,
		UpdatedAt: b.created,
	}, nil
}

// Currency returns the account's currency.
func (a *Account) Currency() money.Currency {
	return a.Balance.Currency()
}

// validateAmount checks the shared amount invariants for a mutation.
func (a *Account) validateAmount(amount money.Money) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if !a.Balance.IsSameCurrency(amount) {
		return ErrCurrencyMismatch
	}
	return nil
}

// ValidateWithdraw checks all invariants for a withdrawal against the
// current balance without mutating it. The caller must hold the account's
// balance guard so the read is not stale.
func (a *Account) ValidateWithdraw(amount money.Money) error {
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	greater, err := amount.GreaterThan(a.Balance)
	if err != nil {
		return err
	}
	if greater {
		return ErrInsufficientBalance
	}
	return nil
}

// Withdraw removes funds from the account if all invariants are satisfied.
// Invariants enforced:
//   - Amount must be positive and in the account's currency.
//   - The balance must cover the amount (no negative balances).
//
// The caller must hold the account's balance guard.
func (a *Account) Withdraw(amount money.Money) error {
	if err := a.ValidateWithdraw(amount); err != nil {
		return err
	}
	updated, err := a.Balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.Balance = updated
	a.UpdatedAt = time.Now()
	return nil
}

// Deposit adds funds to the account if all invariants are satisfied.
// Invariants enforced:
//   - Amount must be positive and in the account's currency.
//   - The resulting balance must not overflow.
//
// The caller must hold the account's balance guard.
func (a *Account) Deposit(amount money.Money) error {
	if err := a.validateAmount(amount); err != nil {
		return err
	}
	updated, err := a.Balance.Add(amount)
	if err != nil {
		if errors.Is(err, money.ErrAmountExceedsMaxSafeInt) {
			return ErrDepositOverflow
		}
		return err
	}
	a.Balance = updated
	a.UpdatedAt = time.Now()
	return nil
}
