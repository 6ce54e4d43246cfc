package ledger

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Account owns one client's balances, locked flag, and deposit records.
//
// Every method takes the account's own mutex, so two operations on the same
// account never interleave while operations on different accounts proceed
// independently. The mutex is never held while acquiring any other lock.
type Account struct {
	mu        sync.Mutex
	available decimal.Decimal
	held      decimal.Decimal
	locked    bool
	deposits  map[TransactionID]*DepositRecord
}

// NewAccount creates an empty, unlocked account.
func NewAccount() *Account {
	return &Account{
		available: decimal.Zero,
		held:      decimal.Zero,
		deposits:  make(map[TransactionID]*DepositRecord),
	}
}

// Deposit records a new deposit and credits the available balance.
//
// A transaction id that was already deposited is rejected without any state
// change; this also guards against replayed input.
func (a *Account) Deposit(tx TransactionID, amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.deposits[tx]; exists {
		return NewDomainError(ErrorDuplicateDeposit, "tx", "deposit transaction id already exists")
	}

	a.deposits[tx] = NewDepositRecord(amount)
	a.available = a.available.Add(amount)

	return nil
}

// Withdraw debits the available balance.
//
// The withdrawal's own transaction id is not recorded: withdrawals are not
// disputable, only deposits are.
func (a *Account) Withdraw(_ TransactionID, amount decimal.Decimal) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.available.LessThan(amount) {
		return NewDomainError(ErrorInsufficientFunds, "amount", "available balance cannot cover withdrawal")
	}

	a.available = a.available.Sub(amount)

	return nil
}

// Dispute places the referenced deposit under dispute, moving its amount
// from available to held.
func (a *Account) Dispute(tx TransactionID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	record, ok := a.deposits[tx]
	if !ok {
		return NewDomainError(ErrorUnknownTransaction, "tx", "disputed transaction does not exist")
	}

	if err := record.MarkDisputed(); err != nil {
		return err
	}

	amount := record.Amount()
	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)

	return nil
}

// Resolve releases a disputed deposit, moving its amount from held back to
// available.
func (a *Account) Resolve(tx TransactionID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	record, ok := a.deposits[tx]
	if !ok {
		return NewDomainError(ErrorUnknownTransaction, "tx", "disputed transaction does not exist")
	}

	if err := record.MarkResolved(); err != nil {
		return err
	}

	amount := record.Amount()
	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)

	return nil
}

// Chargeback reverses a disputed deposit: the held amount is removed for
// good and the account is locked.
//
// Locked is observable state only; it does not reject later operations.
func (a *Account) Chargeback(tx TransactionID) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	record, ok := a.deposits[tx]
	if !ok {
		return NewDomainError(ErrorUnknownTransaction, "tx", "disputed transaction does not exist")
	}

	if err := record.MarkChargedback(); err != nil {
		return err
	}

	a.held = a.held.Sub(record.Amount())
	a.locked = true

	return nil
}

// Balances returns the current available and held balances and the locked flag.
func (a *Account) Balances() (available, held decimal.Decimal, locked bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.available, a.held, a.locked
}

// BalanceSnapshot is one row of the final balance report.
type BalanceSnapshot struct {
	Client    ClientID
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

// snapshot captures the account state for the report of the given client.
func (a *Account) snapshot(client ClientID) BalanceSnapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	return BalanceSnapshot{
		Client:    client,
		Available: a.available,
		Held:      a.held,
		Total:     a.available.Add(a.held),
		Locked:    a.locked,
	}
}
