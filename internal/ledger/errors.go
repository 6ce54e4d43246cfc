package ledger

import "fmt"

// ErrorCode is a domain error code used by transaction application.
type ErrorCode string

const (
	// ErrorDuplicateDeposit indicates a deposit reuses an already recorded transaction id.
	ErrorDuplicateDeposit ErrorCode = "0001"
	// ErrorInsufficientFunds indicates the available balance cannot cover the amount.
	ErrorInsufficientFunds ErrorCode = "0002"
	// ErrorUnknownTransaction indicates a dispute lifecycle operation references an unrecorded deposit.
	ErrorUnknownTransaction ErrorCode = "0003"
	// ErrorDepositNotDisputable indicates the referenced deposit is not in a disputable state.
	ErrorDepositNotDisputable ErrorCode = "0004"
	// ErrorDepositNotDisputed indicates a resolve or chargeback targets a deposit that is not under dispute.
	ErrorDepositNotDisputed ErrorCode = "0005"
	// ErrorUnknownClient indicates a non-deposit transaction references a client with no account.
	ErrorUnknownClient ErrorCode = "0006"
	// ErrorInvalidInput indicates the transaction payload failed validation.
	ErrorInvalidInput ErrorCode = "1001"
)

// DomainError represents a structured transaction application error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}
