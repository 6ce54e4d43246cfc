package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/razvp/payments-engine/internal/ledger"
	"github.com/shopspring/decimal"
)

// maxFractionalDigits is the fixed precision of monetary values.
const maxFractionalDigits = 4

// RecordError is a recoverable failure scoped to a single input record.
type RecordError struct {
	Line int
	Err  error
}

// Error returns the formatted record error string.
func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsRecordError reports whether err is scoped to one record and processing
// may continue with the next one.
func IsRecordError(err error) bool {
	var recordErr *RecordError

	return errors.As(err, &recordErr)
}

// Reader streams CSV transaction records.
//
// The expected input carries a `type, client, tx, amount` header. Fields may
// be padded with whitespace, the amount column may be absent or empty for
// dispute/resolve/chargeback rows, and the kind discriminator is
// case-insensitive.
type Reader struct {
	csv     *csv.Reader
	line    int
	columns map[string]int
}

// NewReader creates a transaction reader over r.
func NewReader(r io.Reader) *Reader {
	csvReader := csv.NewReader(r)
	csvReader.TrimLeadingSpace = true
	// Dispute rows legitimately omit the amount column.
	csvReader.FieldsPerRecord = -1

	return &Reader{csv: csvReader}
}

// Next returns the next transaction in the stream.
//
// It returns io.EOF when the input is exhausted, a *RecordError for
// failures scoped to one record, and any other error for fatal stream
// failures.
func (r *Reader) Next() (ledger.Transaction, error) {
	if r.columns == nil {
		if err := r.readHeader(); err != nil {
			return ledger.Transaction{}, err
		}
	}

	fields, err := r.read()
	if err != nil {
		return ledger.Transaction{}, err
	}

	txn, err := r.decode(fields)
	if err != nil {
		return ledger.Transaction{}, &RecordError{Line: r.line, Err: err}
	}

	return txn, nil
}

func (r *Reader) readHeader() error {
	fields, err := r.read()
	if err != nil {
		if err == io.EOF {
			return io.EOF
		}

		return fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(fields))
	for i, name := range fields {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"type", "client", "tx"} {
		if _, ok := columns[required]; !ok {
			return fmt.Errorf("input header is missing the %q column", required)
		}
	}

	r.columns = columns

	return nil
}

// read fetches the next raw record, classifying csv parse failures as
// recoverable record errors.
func (r *Reader) read() ([]string, error) {
	fields, err := r.csv.Read()
	r.line++

	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &RecordError{Line: r.line, Err: err}
		}

		return nil, err
	}

	return fields, nil
}

func (r *Reader) decode(fields []string) (ledger.Transaction, error) {
	kind, err := ledger.ParseTransactionKind(r.field(fields, "type"))
	if err != nil {
		return ledger.Transaction{}, err
	}

	client, err := strconv.ParseUint(r.field(fields, "client"), 10, 16)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("invalid client id: %w", err)
	}

	tx, err := strconv.ParseUint(r.field(fields, "tx"), 10, 32)
	if err != nil {
		return ledger.Transaction{}, fmt.Errorf("invalid transaction id: %w", err)
	}

	txn := ledger.Transaction{
		Kind:   kind,
		Client: ledger.ClientID(client),
		Tx:     ledger.TransactionID(tx),
	}

	if !kind.RequiresAmount() {
		// Any amount present on dispute/resolve/chargeback rows is ignored.
		return txn, nil
	}

	amount, err := parseAmount(r.field(fields, "amount"))
	if err != nil {
		return ledger.Transaction{}, err
	}

	txn.Amount = &amount

	return txn, nil
}

// field returns the named column trimmed, or "" when the row is too short.
func (r *Reader) field(fields []string, name string) string {
	idx, ok := r.columns[name]
	if !ok || idx >= len(fields) {
		return ""
	}

	return strings.TrimSpace(fields[idx])
}

// parseAmount parses a monetary value with at most four fractional digits.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, errors.New("missing amount field")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid amount: %w", err)
	}

	if !amount.Equal(amount.Truncate(maxFractionalDigits)) {
		return decimal.Decimal{}, fmt.Errorf("amount %s exceeds %d fractional digits", s, maxFractionalDigits)
	}

	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount must be greater than zero, got %s", s)
	}

	return amount, nil
}
