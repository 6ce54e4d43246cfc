// Package engine wires the CSV transaction stream through the ledger
// processor, one transaction at a time, in strict stream order.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/razvp/payments-engine/internal/csvio"
	"github.com/razvp/payments-engine/internal/ledger"
	"github.com/razvp/payments-engine/internal/log"
)

// Stats summarizes one batch run.
type Stats struct {
	// Applied counts transactions that mutated an account.
	Applied int
	// Rejected counts well-formed transactions the ledger refused.
	Rejected int
	// Malformed counts input records that could not be decoded.
	Malformed int
}

// Processed returns the number of records consumed from the input.
func (s Stats) Processed() int {
	return s.Applied + s.Rejected + s.Malformed
}

// Run consumes the CSV input to exhaustion, applying each transaction
// through the registry.
//
// Per-record and per-transaction failures are logged and skipped; the
// returned error is non-nil only for fatal stream failures. Transaction i+1
// is not dispatched before transaction i's outcome is fully determined, so
// a dispute always observes its deposit.
func Run(ctx context.Context, input io.Reader, registry *ledger.Registry, logger log.Logger) (Stats, error) {
	if logger == nil {
		logger = log.NewNop()
	}

	logger = logger.With(log.String("run_id", uuid.NewString()))
	processor := ledger.NewProcessor(registry, logger)
	reader := csvio.NewReader(input)

	var stats Stats

	for {
		txn, err := reader.Next()
		if err != nil {
			if err == io.EOF {
				break
			}

			if csvio.IsRecordError(err) {
				stats.Malformed++
				logger.Log(ctx, log.LevelWarn, "skipping malformed record", log.Err(err))

				continue
			}

			return stats, fmt.Errorf("read transaction stream: %w", err)
		}

		if err := processor.Process(ctx, txn); err != nil {
			stats.Rejected++
			logger.Log(ctx, log.LevelWarn, "transaction rejected",
				log.String("kind", string(txn.Kind)),
				log.Uint16("client", uint16(txn.Client)),
				log.Uint32("tx", uint32(txn.Tx)),
				log.Err(err),
			)

			continue
		}

		stats.Applied++
	}

	logger.Log(ctx, log.LevelInfo, "batch run finished",
		log.Int("applied", stats.Applied),
		log.Int("rejected", stats.Rejected),
		log.Int("malformed", stats.Malformed),
		log.Int("accounts", registry.Len()),
	)

	return stats, nil
}
