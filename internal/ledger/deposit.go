package ledger

import "github.com/shopspring/decimal"

// DepositStatus is the lifecycle state of a recorded deposit.
//
// Transitions:
//
//	New → Disputed → Resolved | Chargedback
//
// Resolved and Chargedback are terminal.
type DepositStatus string

const (
	DepositStatusNew         DepositStatus = "NEW"
	DepositStatusDisputed    DepositStatus = "DISPUTED"
	DepositStatusResolved    DepositStatus = "RESOLVED"
	DepositStatusChargedback DepositStatus = "CHARGEDBACK"
)

// DepositRecord tracks a single deposit's disputable lifecycle. The amount
// is fixed at creation; status transitions are the only mutation permitted.
type DepositRecord struct {
	amount decimal.Decimal
	status DepositStatus
}

// NewDepositRecord creates a deposit record in the New state.
func NewDepositRecord(amount decimal.Decimal) *DepositRecord {
	return &DepositRecord{amount: amount, status: DepositStatusNew}
}

// Amount returns the deposited amount. It is constant for the record's lifetime.
func (d *DepositRecord) Amount() decimal.Decimal {
	return d.amount
}

// Status returns the current lifecycle state.
func (d *DepositRecord) Status() DepositStatus {
	return d.status
}

// MarkDisputed moves a New deposit under dispute.
func (d *DepositRecord) MarkDisputed() error {
	if d.status != DepositStatusNew {
		return NewDomainError(ErrorDepositNotDisputable, "tx", "only new deposits are disputable")
	}

	d.status = DepositStatusDisputed

	return nil
}

// MarkResolved settles a dispute by releasing the deposit.
func (d *DepositRecord) MarkResolved() error {
	if d.status != DepositStatusDisputed {
		return NewDomainError(ErrorDepositNotDisputed, "tx", "cannot resolve an undisputed deposit")
	}

	d.status = DepositStatusResolved

	return nil
}

// MarkChargedback settles a dispute by reversing the deposit.
func (d *DepositRecord) MarkChargedback() error {
	if d.status != DepositStatusDisputed {
		return NewDomainError(ErrorDepositNotDisputed, "tx", "cannot charge back an undisputed deposit")
	}

	d.status = DepositStatusChargedback

	return nil
}
