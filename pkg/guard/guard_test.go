package guard_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/amirasaad/transfers/pkg/guard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(time.Second)

	lease, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	assert.Equal(t, "Id-1", lease.AccountID())
	lease.Release()

	// Released guard can be acquired again.
	lease, err = r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	lease.Release()
}

func TestAcquireTimesOutOnContendedGuard(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(50 * time.Millisecond)

	held, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	defer held.Release()

	start := time.Now()
	_, err = r.Acquire(context.Background(), "Id-1")
	assert.ErrorIs(t, err, guard.ErrLockTimeout)
	assert.ErrorContains(t, err, "Id-1")
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestDisjointAccountsDoNotContend(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(100 * time.Millisecond)

	held, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	defer held.Release()

	lease, err := r.Acquire(context.Background(), "Id-2")
	require.NoError(t, err)
	lease.Release()
}

func TestAcquireWaitsForRelease(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(time.Second)

	held, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		lease, err := r.Acquire(context.Background(), "Id-1")
		if err == nil {
			lease.Release()
		}
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("guard acquired while still held")
	case <-time.After(20 * time.Millisecond):
	}

	held.Release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired released guard")
	}
}

func TestAcquireHonorsContextCancellation(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(time.Minute)

	held, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Acquire(ctx, "Id-1")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReleaseIsIdempotent(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(time.Second)

	lease, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	lease.Release()
	lease.Release()

	// A double release must not free the guard for a second holder.
	next, err := r.Acquire(context.Background(), "Id-1")
	require.NoError(t, err)
	next.Release()
}

func TestMutualExclusionUnderContention(t *testing.T) {
	t.Parallel()
	r := guard.NewRegistry(5 * time.Second)

	const goroutines = 50
	var (
		counter int
		wg      sync.WaitGroup
	)
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			lease, err := r.Acquire(context.Background(), "Id-1")
			if err != nil {
				return
			}
			defer lease.Release()
			counter++
		}()
	}
	wg.Wait()
	assert.Equal(t, goroutines, counter)
}
