package ledger

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates an empty account on first use", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		account := registry.GetOrCreate(1)
		require.NotNil(t, account)

		available, held, locked := account.Balances()
		assert.True(t, available.IsZero())
		assert.True(t, held.IsZero())
		assert.False(t, locked)
		assert.Equal(t, 1, registry.Len())
	})

	t.Run("returns the same account on repeated calls", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		first := registry.GetOrCreate(1)
		second := registry.GetOrCreate(1)

		assert.Same(t, first, second)
		assert.Equal(t, 1, registry.Len())
	})
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, registry.Len(), "Get must never create an account")

	created := registry.GetOrCreate(1)

	found, ok := registry.Get(1)
	require.True(t, ok)
	assert.Same(t, created, found)
}

// TestRegistry_ConcurrentCreation hammers GetOrCreate from many goroutines
// and verifies that exactly one account is ever created per client id and
// that no deposit is lost to a creation race.
func TestRegistry_ConcurrentCreation(t *testing.T) {
	t.Parallel()

	const (
		clients    = 8
		goroutines = 16
		deposits   = 50
	)

	registry := NewRegistry()

	var wg sync.WaitGroup

	for g := 0; g < goroutines; g++ {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			for i := 0; i < deposits; i++ {
				client := ClientID(i % clients)
				tx := TransactionID(worker*deposits + i)
				account := registry.GetOrCreate(client)
				// assert (not require) so failures never call FailNow
				// from a non-test goroutine.
				assert.NoError(t, account.Deposit(tx, decimal.NewFromInt(1)))
			}
		}(g)
	}

	wg.Wait()

	assert.Equal(t, clients, registry.Len())

	total := decimal.Zero
	for _, snapshot := range registry.Snapshot() {
		total = total.Add(snapshot.Total)
	}

	assert.True(t, total.Equal(decimal.NewFromInt(goroutines*deposits)),
		"every deposit must land on the single account for its client, got total %s", total)
}

func TestRegistry_Snapshot(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	require.NoError(t, registry.GetOrCreate(3).Deposit(1, decimal.NewFromInt(30)))
	require.NoError(t, registry.GetOrCreate(1).Deposit(2, decimal.NewFromInt(10)))
	require.NoError(t, registry.GetOrCreate(2).Deposit(3, decimal.NewFromInt(20)))

	snapshots := registry.Snapshot()
	require.Len(t, snapshots, 3)

	for i, expected := range []ClientID{1, 2, 3} {
		assert.Equal(t, expected, snapshots[i].Client, "snapshot must be sorted by client id")
	}

	assert.True(t, snapshots[0].Available.Equal(decimal.NewFromInt(10)))
	assert.True(t, snapshots[1].Available.Equal(decimal.NewFromInt(20)))
	assert.True(t, snapshots[2].Available.Equal(decimal.NewFromInt(30)))
}
