package ledger

import (
	"sort"
	"sync"
)

// Registry owns the full set of accounts and is the only component allowed
// to create one. The set grows monotonically; accounts are never removed.
type Registry struct {
	mu       sync.RWMutex
	accounts map[ClientID]*Account
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{accounts: make(map[ClientID]*Account)}
}

// GetOrCreate returns the account for the client, creating an empty one if
// none exists.
//
// Lookups of existing accounts only take the read lock, so unrelated clients
// never contend. Creation escalates to the write lock and re-checks the map:
// another caller may have inserted the account between dropping the read
// lock and acquiring the write lock, and exactly one Account must ever exist
// per client id.
func (r *Registry) GetOrCreate(client ClientID) *Account {
	r.mu.RLock()
	account, ok := r.accounts[client]
	r.mu.RUnlock()

	if ok {
		return account
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if account, ok := r.accounts[client]; ok {
		return account
	}

	account = NewAccount()
	r.accounts[client] = account

	return account
}

// Get returns the account for the client if it exists. It never creates an
// account as a side effect.
func (r *Registry) Get(client ClientID) (*Account, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[client]

	return account, ok
}

// Len returns the number of accounts ever created.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.accounts)
}

// Snapshot returns one balance row per account, sorted by client id for
// deterministic output.
func (r *Registry) Snapshot() []BalanceSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshots := make([]BalanceSnapshot, 0, len(r.accounts))
	for client, account := range r.accounts {
		snapshots = append(snapshots, account.snapshot(client))
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Client < snapshots[j].Client
	})

	return snapshots
}
