// Package repository defines the persistence ports used by the services.
package repository

import (
	"github.com/amirasaad/transfers/pkg/domain/account"
)

// AccountRepository is the Account Store contract: a mapping from account id
// to a mutable balance record. The store owns the Account records; the
// transfer engine only borrows references and mutates balances under guard.
type AccountRepository interface {
	// Get returns the account with the given id, or
	// account.ErrAccountNotFound if the id is absent. Absence is an error
	// condition, never retried.
	Get(id string) (*account.Account, error)

	// Create stores a new account, or returns account.ErrAccountExists if
	// the id is already taken.
	Create(a *account.Account) error

	// Clear removes all accounts. Test support.
	Clear()
}
