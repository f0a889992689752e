package account

import (
	"github.com/amirasaad/transfers/pkg/money"
)

// Transfer is an immutable request to move a fixed amount from one account
// to another. It is constructed once per call and never mutated.
type Transfer struct {
	FromAccountID string
	ToAccountID   string
	Amount        money.Money
}

// NewTransfer constructs a Transfer, validating the cheap invariants that
// need no locked state: both ids present and distinct, amount strictly
// positive. Balance sufficiency is checked later, under the source guard.
func NewTransfer(fromID, toID string, amount money.Money) (Transfer, error) {
	if fromID == "" || toID == "" {
		return Transfer{}, ErrEmptyAccountID
	}
	if fromID == toID {
		return Transfer{}, ErrCannotTransferToSameAccount
	}
	if !amount.IsPositive() {
		return Transfer{}, ErrInvalidAmount
	}
	return Transfer{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
	}, nil
}
