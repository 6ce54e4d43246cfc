package ledger

import (
	"context"

	"github.com/razvp/payments-engine/internal/log"
)

// Processor routes transactions from the ordered input stream to the
// matching account operation.
//
// Transactions must be handed to Process strictly in stream order: a dispute
// referencing transaction id T is only satisfiable once the deposit for T
// has been applied.
type Processor struct {
	registry *Registry
	logger   log.Logger
}

// NewProcessor creates a processor over the given registry.
func NewProcessor(registry *Registry, logger log.Logger) *Processor {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Processor{registry: registry, logger: logger}
}

// Process applies one transaction.
//
// Only deposits may create an account; every other kind fails with an
// unknown-client error when the account does not exist yet. A returned error
// is a per-transaction outcome: the target account is left unchanged and the
// caller is expected to continue with the next transaction.
func (p *Processor) Process(ctx context.Context, txn Transaction) error {
	p.logger.Log(ctx, log.LevelDebug, "processing transaction",
		log.String("kind", string(txn.Kind)),
		log.Uint16("client", uint16(txn.Client)),
		log.Uint32("tx", uint32(txn.Tx)),
	)

	if err := txn.Validate(); err != nil {
		return err
	}

	if txn.Kind == KindDeposit {
		return p.registry.GetOrCreate(txn.Client).Deposit(txn.Tx, *txn.Amount)
	}

	account, ok := p.registry.Get(txn.Client)
	if !ok {
		return NewDomainError(ErrorUnknownClient, "client", "client does not exist")
	}

	switch txn.Kind {
	case KindWithdrawal:
		return account.Withdraw(txn.Tx, *txn.Amount)
	case KindDispute:
		return account.Dispute(txn.Tx)
	case KindResolve:
		return account.Resolve(txn.Tx)
	case KindChargeback:
		return account.Chargeback(txn.Tx)
	default:
		return NewDomainError(ErrorInvalidInput, "type", "unknown transaction type "+string(txn.Kind))
	}
}
