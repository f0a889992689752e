// Package repository provides the in-memory implementation of the
// persistence ports.
package repository

import (
	"fmt"
	"sync"

	"github.com/amirasaad/transfers/pkg/domain/account"
	"github.com/amirasaad/transfers/pkg/repository"
)

// MemoryAccountRepository implements repository.AccountRepository with an
// in-memory map. The map itself is protected by an RWMutex; balance
// mutation on the returned accounts is serialized separately by the
// per-account balance guards.
type MemoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*account.Account
}

// NewMemoryAccountRepository creates an empty in-memory account store.
func NewMemoryAccountRepository() *MemoryAccountRepository {
	return &MemoryAccountRepository{
		accounts: make(map[string]*account.Account),
	}
}

// Get returns the account with the given id. Callers receive a reference to
// the stored record, not a copy.
func (r *MemoryAccountRepository) Get(id string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", account.ErrAccountNotFound, id)
	}
	return a, nil
}

// Create stores a new account keyed by its id.
func (r *MemoryAccountRepository) Create(a *account.Account) error {
	if a == nil || a.ID == "" {
		return account.ErrEmptyAccountID
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[a.ID]; ok {
		return fmt.Errorf("%w: %s", account.ErrAccountExists, a.ID)
	}
	r.accounts[a.ID] = a
	return nil
}

// Clear removes all accounts. Test support.
func (r *MemoryAccountRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts = make(map[string]*account.Account)
}

var _ repository.AccountRepository = (*MemoryAccountRepository)(nil)
