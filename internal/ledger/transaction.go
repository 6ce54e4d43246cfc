package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ClientID identifies an account. Ids are stable for the process lifetime
// and never reused.
type ClientID uint16

// TransactionID identifies a deposit or withdrawal. Ids are unique across
// the whole stream and act as the join key for the dispute lifecycle.
type TransactionID uint32

// TransactionKind discriminates the five supported transaction kinds.
type TransactionKind string

const (
	KindDeposit    TransactionKind = "deposit"
	KindWithdrawal TransactionKind = "withdrawal"
	KindDispute    TransactionKind = "dispute"
	KindResolve    TransactionKind = "resolve"
	KindChargeback TransactionKind = "chargeback"
)

// ParseTransactionKind resolves a case-insensitive kind discriminator.
func ParseTransactionKind(s string) (TransactionKind, error) {
	switch TransactionKind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDeposit:
		return KindDeposit, nil
	case KindWithdrawal:
		return KindWithdrawal, nil
	case KindDispute:
		return KindDispute, nil
	case KindResolve:
		return KindResolve, nil
	case KindChargeback:
		return KindChargeback, nil
	default:
		return "", NewDomainError(ErrorInvalidInput, "type", "unknown transaction type "+s)
	}
}

// RequiresAmount reports whether the kind carries a monetary amount.
func (k TransactionKind) RequiresAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Transaction is one record of the ordered input stream.
//
// Amount is set for deposits and withdrawals and nil for the dispute
// lifecycle kinds, which reference a prior deposit by transaction id instead.
type Transaction struct {
	Kind   TransactionKind
	Client ClientID
	Tx     TransactionID
	Amount *decimal.Decimal
}

// Validate checks the amount presence rule for the transaction kind.
func (t Transaction) Validate() error {
	if t.Kind.RequiresAmount() && t.Amount == nil {
		return NewDomainError(ErrorInvalidInput, "amount", "amount is required for "+string(t.Kind))
	}

	return nil
}
