package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/razvp/payments-engine/internal/ledger"
)

// WriteSnapshot renders the balance report as CSV with a
// `client,available,held,total,locked` header. Monetary fields carry up to
// four fractional digits.
func WriteSnapshot(w io.Writer, snapshots []ledger.BalanceSnapshot) error {
	csvWriter := csv.NewWriter(w)

	if err := csvWriter.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}

	for _, snapshot := range snapshots {
		row := []string{
			strconv.FormatUint(uint64(snapshot.Client), 10),
			snapshot.Available.String(),
			snapshot.Held.String(),
			snapshot.Total.String(),
			strconv.FormatBool(snapshot.Locked),
		}

		if err := csvWriter.Write(row); err != nil {
			return fmt.Errorf("write snapshot row for client %d: %w", snapshot.Client, err)
		}
	}

	csvWriter.Flush()

	return csvWriter.Error()
}
