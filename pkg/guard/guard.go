// Package guard provides per-account mutual exclusion for balance access.
//
// A Registry keys one guard per account id so transfers touching disjoint
// accounts proceed in parallel while operations on the same account
// serialize. Acquisition is bounded by a timeout: instead of hanging on a
// contended account the caller gets a distinguished busy error it can retry.
package guard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrLockTimeout is returned when a guard could not be acquired within the
// configured timeout. It is a recoverable busy signal, not a validation
// failure.
var ErrLockTimeout = errors.New("lock acquisition timed out")

// DefaultTimeout bounds guard acquisition when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Registry maps account ids to their balance guards. Guards are created
// lazily on first acquisition and never removed.
type Registry struct {
	mu      sync.RWMutex
	guards  map[string]chan struct{}
	timeout time.Duration
}

// NewRegistry creates a guard registry with the given acquisition timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewRegistry(timeout time.Duration) *Registry {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Registry{
		guards:  make(map[string]chan struct{}),
		timeout: timeout,
	}
}

// Lease represents held exclusive access to one account's balance.
// It must be released exactly once; Release is idempotent.
type Lease struct {
	ch        chan struct{}
	accountID string
	once      sync.Once
}

// AccountID returns the id of the account the lease covers.
func (l *Lease) AccountID() string {
	return l.accountID
}

// Release gives up the lease. Safe to call more than once.
func (l *Lease) Release() {
	l.once.Do(func() {
		<-l.ch
	})
}

// Acquire blocks until the guard for accountID is available, the registry
// timeout elapses, or ctx is canceled. On timeout it returns ErrLockTimeout
// wrapped with the contended account id; the caller has mutated nothing and
// may retry with backoff.
//
// Acquisition order between waiters is not fair: first to acquire wins.
func (r *Registry) Acquire(ctx context.Context, accountID string) (*Lease, error) {
	ch := r.guard(accountID)

	timer := time.NewTimer(r.timeout)
	defer timer.Stop()

	select {
	case ch <- struct{}{}:
		return &Lease{ch: ch, accountID: accountID}, nil
	case <-timer.C:
		return nil, fmt.Errorf("%w: account %s", ErrLockTimeout, accountID)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// guard returns the channel-backed guard for accountID, creating it lazily.
func (r *Registry) guard(accountID string) chan struct{} {
	r.mu.RLock()
	ch, ok := r.guards[accountID]
	r.mu.RUnlock()
	if ok {
		return ch
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if ch, ok = r.guards[accountID]; ok {
		return ch
	}
	ch = make(chan struct{}, 1)
	r.guards[accountID] = ch
	return ch
}
