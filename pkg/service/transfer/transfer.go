// Package transfer implements the fund-transfer engine: the locking
// discipline that serializes balance mutation, the withdraw/deposit state
// machine with compensating rollback, and the hand-off to the asynchronous
// notification pipeline.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/transfers/pkg/domain/account"
	"github.com/amirasaad/transfers/pkg/guard"
	"github.com/amirasaad/transfers/pkg/money"
	"github.com/amirasaad/transfers/pkg/notify"
	"github.com/amirasaad/transfers/pkg/repository"
)

// Service orchestrates transfers between accounts. Both balance mutations
// happen inside a single guard scope covering the two accounts, acquired in
// lexicographic account-id order, so a failure on the deposit leg rolls the
// withdraw back under the same leases and total balance is conserved for
// every outcome.
type Service struct {
	accounts repository.AccountRepository
	guards   *guard.Registry
	pipeline *notify.Pipeline
	logger   *slog.Logger
}

// NewService creates a transfer Service with the provided dependencies.
func NewService(
	accounts repository.AccountRepository,
	guards *guard.Registry,
	pipeline *notify.Pipeline,
	logger *slog.Logger,
) *Service {
	return &Service{
		accounts: accounts,
		guards:   guards,
		pipeline: pipeline,
		logger:   logger.With("service", "transfer"),
	}
}

// CreateAccount creates and stores a new account. An empty id gets a
// generated uuid; the initial balance is given in the main currency unit.
func (s *Service) CreateAccount(
	ctx context.Context,
	id string,
	currencyCode string,
	initialBalance float64,
) (*account.Account, error) {
	c := money.DefaultCurrency
	if currencyCode != "" {
		code := money.Code(currencyCode)
		if !code.IsValid() {
			return nil, fmt.Errorf("%w: %s", money.ErrInvalidCurrency, currencyCode)
		}
		c = code.ToCurrency()
	}
	bal, err := money.New(initialBalance, c)
	if err != nil {
		return nil, err
	}
	if bal.IsNegative() {
		return nil, account.ErrInvalidAmount
	}

	b := account.New().WithCurrency(c).WithBalance(bal.Amount())
	if id != "" {
		b = b.WithID(id)
	}
	a, err := b.Build()
	if err != nil {
		return nil, err
	}
	if err := s.accounts.Create(a); err != nil {
		return nil, err
	}
	s.logger.Info("account created",
		"account_id", a.ID, "balance", a.Balance.String())
	return a, nil
}

// Balance returns the account's balance read under its guard, so the value
// is never a torn or stale read against an in-flight mutation.
func (s *Service) Balance(ctx context.Context, accountID string) (money.Money, error) {
	a, err := s.accounts.Get(accountID)
	if err != nil {
		return money.Money{}, err
	}
	lease, err := s.guards.Acquire(ctx, a.ID)
	if err != nil {
		return money.Money{}, err
	}
	defer lease.Release()
	return a.Balance, nil
}

// TransferMoney moves the requested amount from the source account to the
// destination account. It either fully completes (both legs applied) or
// fully fails (no leg applied); total balance across the two accounts is
// conserved for both outcomes.
//
// Failure modes: account.ErrInvalidAmount before any lookup,
// account.ErrAccountNotFound if either id is absent,
// guard.ErrLockTimeout if either guard stays contended past the timeout,
// account.ErrInsufficientBalance when the locked source balance cannot
// cover the amount. None of them leaves a mutation behind.
func (s *Service) TransferMoney(ctx context.Context, t account.Transfer) (err error) {
	logger := s.logger.With(
		"from", t.FromAccountID, "to", t.ToAccountID, "amount", t.Amount.String())
	defer func() {
		transfersTotal.WithLabelValues(outcome(err)).Inc()
	}()

	// Cheap validation first: no guard is taken for a request that can
	// never succeed.
	if _, err = account.NewTransfer(t.FromAccountID, t.ToAccountID, t.Amount); err != nil {
		logger.Warn("transfer rejected", "error", err)
		return err
	}

	src, err := s.accounts.Get(t.FromAccountID)
	if err != nil {
		logger.Warn("transfer rejected", "error", err)
		return err
	}
	dst, err := s.accounts.Get(t.ToAccountID)
	if err != nil {
		logger.Warn("transfer rejected", "error", err)
		return err
	}

	// Single guard scope spanning both accounts, acquired in id order so
	// two opposing transfers cannot deadlock on each other's guards.
	first, second := src, dst
	if second.ID < first.ID {
		first, second = second, first
	}
	firstLease, err := s.guards.Acquire(ctx, first.ID)
	if err != nil {
		logger.Warn("transfer aborted, source busy", "error", err)
		return err
	}
	defer firstLease.Release()
	secondLease, err := s.guards.Acquire(ctx, second.ID)
	if err != nil {
		logger.Warn("transfer aborted, destination busy", "error", err)
		return err
	}
	defer secondLease.Release()

	// Withdraw leg. The snapshot preserves the compensating-action
	// contract: whatever fails past this point restores the source
	// balance before the leases are released.
	srcBalance := src.Balance
	if err = src.Withdraw(t.Amount); err != nil {
		src.Balance = srcBalance
		logger.Warn("withdraw leg failed", "error", err)
		return fmt.Errorf("withdraw from account %s: %w", src.ID, err)
	}
	s.pipeline.Enqueue(notify.NewEvent(src.ID,
		fmt.Sprintf("Account debited with amount %s", t.Amount)))

	// Deposit leg, entered only after a successful withdraw.
	if err = dst.Deposit(t.Amount); err != nil {
		src.Balance = srcBalance
		s.pipeline.Enqueue(notify.NewEvent(src.ID,
			fmt.Sprintf("Debit of %s reversed", t.Amount)))
		logger.Error("deposit leg failed, withdraw rolled back", "error", err)
		return fmt.Errorf("deposit to account %s: %w", dst.ID, err)
	}
	s.pipeline.Enqueue(notify.NewEvent(dst.ID,
		fmt.Sprintf("Account credited with amount %s", t.Amount)))

	logger.Info("transfer completed")
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return outcomeCompleted
	case errors.Is(err, guard.ErrLockTimeout):
		return outcomeBusy
	default:
		return outcomeRejected
	}
}
