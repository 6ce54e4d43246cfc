package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/razvp/payments-engine/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readAll drains the reader, returning decoded transactions and record errors.
func readAll(t *testing.T, input string) ([]ledger.Transaction, []error) {
	t.Helper()

	reader := NewReader(strings.NewReader(input))

	var (
		txns       []ledger.Transaction
		recordErrs []error
	)

	for {
		txn, err := reader.Next()
		if err == io.EOF {
			return txns, recordErrs
		}

		if err != nil {
			require.True(t, IsRecordError(err), "unexpected fatal error: %v", err)
			recordErrs = append(recordErrs, err)

			continue
		}

		txns = append(txns, txn)
	}
}

// txn builds the expected transaction value for assertions.
func txn(kind ledger.TransactionKind, client uint16, tx uint32, amount string) ledger.Transaction {
	result := ledger.Transaction{Kind: kind, Client: ledger.ClientID(client), Tx: ledger.TransactionID(tx)}

	if amount != "" {
		d := decimal.RequireFromString(amount)
		result.Amount = &d
	}

	return result
}

func TestReader_AllTransactionKinds(t *testing.T) {
	t.Parallel()

	input := `type, client, tx, amount
deposit, 1, 1, 1.0
withdrawal, 1, 2, 1.5
dispute, 1, 1
resolve, 1, 2
chargeback, 2, 2
`

	txns, recordErrs := readAll(t, input)
	require.Empty(t, recordErrs)
	require.Len(t, txns, 5)

	assert.Equal(t, txn(ledger.KindDeposit, 1, 1, "1.0"), txns[0])
	assert.Equal(t, txn(ledger.KindWithdrawal, 1, 2, "1.5"), txns[1])
	assert.Equal(t, txn(ledger.KindDispute, 1, 1, ""), txns[2])
	assert.Equal(t, txn(ledger.KindResolve, 1, 2, ""), txns[3])
	assert.Equal(t, txn(ledger.KindChargeback, 2, 2, ""), txns[4])
}

func TestReader_ToleratesWhitespacePadding(t *testing.T) {
	t.Parallel()

	input := "type, client,tx,amount\n" +
		"deposit, 1,     1,   1.0\n" +
		"withdrawal  ,1, 2, 1.5\n" +
		"    dispute, 1, 1,\n"

	txns, recordErrs := readAll(t, input)
	require.Empty(t, recordErrs)
	require.Len(t, txns, 3)
	assert.Equal(t, txn(ledger.KindDeposit, 1, 1, "1.0"), txns[0])
	assert.Equal(t, txn(ledger.KindWithdrawal, 1, 2, "1.5"), txns[1])
	assert.Equal(t, txn(ledger.KindDispute, 1, 1, ""), txns[2])
}

func TestReader_DisputeRowsWithAndWithoutTrailingComma(t *testing.T) {
	t.Parallel()

	input := `type, client, tx, amount
resolve, 1, 2
dispute, 1, 1,
`

	txns, recordErrs := readAll(t, input)
	require.Empty(t, recordErrs)
	require.Len(t, txns, 2)
	assert.Equal(t, txn(ledger.KindResolve, 1, 2, ""), txns[0])
	assert.Equal(t, txn(ledger.KindDispute, 1, 1, ""), txns[1])
}

func TestReader_CaseInsensitiveKind(t *testing.T) {
	t.Parallel()

	input := `type, client, tx, amount
DEPOSIT, 1, 1, 3
Withdrawal, 1, 2, 1
`

	txns, recordErrs := readAll(t, input)
	require.Empty(t, recordErrs)
	require.Len(t, txns, 2)
	assert.Equal(t, ledger.KindDeposit, txns[0].Kind)
	assert.Equal(t, ledger.KindWithdrawal, txns[1].Kind)
}

func TestReader_RecordErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  string
	}{
		{name: "unknown transaction type", row: "teleport, 1, 2, 3"},
		{name: "missing amount on deposit", row: "deposit, 1, 2"},
		{name: "missing amount on withdrawal", row: "withdrawal, 1, 2,"},
		{name: "amount is not a number", row: "deposit, 1, 2, abc"},
		{name: "negative amount", row: "deposit, 1, 2, -3"},
		{name: "zero amount", row: "deposit, 1, 2, 0"},
		{name: "more than four fractional digits", row: "deposit, 1, 2, 1.00001"},
		{name: "client id overflows uint16", row: "deposit, 70000, 2, 1"},
		{name: "transaction id is not a number", row: "deposit, 1, x, 1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// A valid row after the bad one proves the stream recovers.
			input := "type, client, tx, amount\n" + tt.row + "\ndispute, 1, 1\n"

			txns, recordErrs := readAll(t, input)
			require.Len(t, recordErrs, 1)
			require.Len(t, txns, 1)
			assert.Equal(t, txn(ledger.KindDispute, 1, 1, ""), txns[0])
		})
	}
}

func TestReader_TrailingZerosWithinPrecisionAccepted(t *testing.T) {
	t.Parallel()

	input := `type, client, tx, amount
deposit, 1, 1, 2.50000
`

	txns, recordErrs := readAll(t, input)
	require.Empty(t, recordErrs)
	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("2.5")))
}

func TestReader_IgnoresAmountOnDisputeKinds(t *testing.T) {
	t.Parallel()

	input := `type, client, tx, amount
chargeback, 1, 7, 99.99
`

	txns, recordErrs := readAll(t, input)
	require.Empty(t, recordErrs)
	require.Len(t, txns, 1)
	assert.Nil(t, txns[0].Amount)
}

func TestReader_MissingHeaderColumnIsFatal(t *testing.T) {
	t.Parallel()

	reader := NewReader(strings.NewReader("client, tx, amount\n1, 1, 1\n"))

	_, err := reader.Next()
	require.Error(t, err)
	assert.False(t, IsRecordError(err))
	assert.Contains(t, err.Error(), `"type"`)
}

func TestReader_EmptyInputReturnsEOF(t *testing.T) {
	t.Parallel()

	reader := NewReader(strings.NewReader(""))

	_, err := reader.Next()
	assert.Equal(t, io.EOF, err)
}
