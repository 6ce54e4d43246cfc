// Package ledger implements the transaction-application engine.
//
// Core flow:
//   - Registry resolves or lazily creates the Account for a client id.
//   - Account applies deposits, withdrawals, and the dispute lifecycle with
//     exact decimal arithmetic.
//   - DepositRecord tracks the disputable lifecycle of a single deposit.
//   - Processor routes an ordered transaction stream through the registry,
//     one transaction at a time.
//
// The package enforces deterministic behavior using typed domain errors: a
// failed operation never leaves a partially mutated account.
package ledger
