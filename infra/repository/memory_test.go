package repository_test

import (
	"fmt"
	"sync"
	"testing"

	infra "github.com/amirasaad/transfers/infra/repository"
	"github.com/amirasaad/transfers/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	t.Parallel()
	repo := infra.NewMemoryAccountRepository()

	a, err := account.New().WithID("Id-1").WithBalance(10_000).Build()
	require.NoError(t, err)
	require.NoError(t, repo.Create(a))

	got, err := repo.Get("Id-1")
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestGetUnknownAccount(t *testing.T) {
	t.Parallel()
	repo := infra.NewMemoryAccountRepository()

	_, err := repo.Get("Id-missing")
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
	assert.ErrorContains(t, err, "Id-missing")
}

func TestCreateDuplicate(t *testing.T) {
	t.Parallel()
	repo := infra.NewMemoryAccountRepository()

	a, err := account.New().WithID("Id-1").Build()
	require.NoError(t, err)
	require.NoError(t, repo.Create(a))

	dup, err := account.New().WithID("Id-1").Build()
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(dup), account.ErrAccountExists)
}

func TestCreateRejectsEmptyID(t *testing.T) {
	t.Parallel()
	repo := infra.NewMemoryAccountRepository()

	assert.ErrorIs(t, repo.Create(nil), account.ErrEmptyAccountID)
	assert.ErrorIs(t, repo.Create(&account.Account{}), account.ErrEmptyAccountID)
}

func TestClear(t *testing.T) {
	t.Parallel()
	repo := infra.NewMemoryAccountRepository()

	a, err := account.New().WithID("Id-1").Build()
	require.NoError(t, err)
	require.NoError(t, repo.Create(a))

	repo.Clear()
	_, err = repo.Get("Id-1")
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestConcurrentCreates(t *testing.T) {
	t.Parallel()
	repo := infra.NewMemoryAccountRepository()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			a, err := account.New().WithID(fmt.Sprintf("Id-%d", i)).Build()
			if err != nil {
				return
			}
			_ = repo.Create(a)
		}()
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		_, err := repo.Get(fmt.Sprintf("Id-%d", i))
		assert.NoError(t, err)
	}
}
