package domain

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a transaction did not produce an Approval
type FailureKind string

const (
	KindNoResponseReturned      FailureKind = "NO_RESPONSE_RETURNED"
	KindGatewayRejected         FailureKind = "GATEWAY_REJECTED"
	KindGatewayTransactionError FailureKind = "GATEWAY_TRANSACTION_ERROR"
	KindDegenerateResponse      FailureKind = "DEGENERATE_RESPONSE"
	KindInvalidOperation        FailureKind = "INVALID_OPERATION"
	KindTransactionNotFound     FailureKind = "TRANSACTION_NOT_FOUND"
	KindUnknownStatus           FailureKind = "UNKNOWN_STATUS"
	KindInvalidIntent           FailureKind = "INVALID_INTENT"
)

// Codes reported when the failure did not originate from the gateway.
const (
	ErrCodeNoResponseReturned  = "ERROR_NO_RESPONSE_RETURNED"
	ErrCodeTransactionNotExist = "ERROR_TRANSACTION_NOT_EXIST"
	ErrCodeInvalidOperation    = "ERROR_INVALID_OPERATION"
	ErrCodeUnknownStatus       = "ERROR_UNKNOWN_STATUS"
	ErrCodeInvalidIntent       = "ERROR_INVALID_INTENT"
)

// TransactionFailure is the failure side of a canonical result.
// Code and Text carry the gateway's values verbatim when the gateway produced them.
type TransactionFailure struct {
	Kind FailureKind
	Code string
	Text string
	Err  error
}

func (e *TransactionFailure) Error() string {
	msg := e.Text
	if e.Code != "" {
		msg = fmt.Sprintf("[%s] %s", e.Code, e.Text)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

// Unwrap returns the underlying error for errors.Is/As support
func (e *TransactionFailure) Unwrap() error {
	return e.Err
}

func NewNoResponseError() *TransactionFailure {
	return &TransactionFailure{
		Kind: KindNoResponseReturned,
		Code: ErrCodeNoResponseReturned,
		Text: "no response returned from the payment gateway",
	}
}

func NewGatewayRejectedError(code, text string) *TransactionFailure {
	return &TransactionFailure{
		Kind: KindGatewayRejected,
		Code: code,
		Text: text,
	}
}

func NewGatewayTransactionError(code, text string) *TransactionFailure {
	return &TransactionFailure{
		Kind: KindGatewayTransactionError,
		Code: code,
		Text: text,
	}
}

func NewDegenerateResponseError() *TransactionFailure {
	return &TransactionFailure{
		Kind: KindDegenerateResponse,
		Text: "gateway reported success without transaction data",
	}
}

func NewInvalidOperationError(op OperationKind) *TransactionFailure {
	return &TransactionFailure{
		Kind: KindInvalidOperation,
		Code: ErrCodeInvalidOperation,
		Text: fmt.Sprintf("undefined transaction type %q", op),
	}
}

func NewTransactionNotFoundError(transID string) *TransactionFailure {
	return &TransactionFailure{
		Kind: KindTransactionNotFound,
		Code: ErrCodeTransactionNotExist,
		Text: fmt.Sprintf("transaction %s does not exist", transID),
	}
}

func NewUnknownStatusError(raw string) *TransactionFailure {
	return &TransactionFailure{
		Kind: KindUnknownStatus,
		Code: ErrCodeUnknownStatus,
		Text: fmt.Sprintf("unknown transaction status %q", raw),
	}
}

func NewInvalidIntentError(err error) *TransactionFailure {
	return &TransactionFailure{
		Kind: KindInvalidIntent,
		Code: ErrCodeInvalidIntent,
		Text: "payment intent is missing required fields",
		Err:  err,
	}
}

// IsFailureKind checks if an error is a TransactionFailure of a specific kind
func IsFailureKind(err error, kind FailureKind) bool {
	if failure, ok := AsFailure(err); ok {
		return failure.Kind == kind
	}
	return false
}

func AsFailure(err error) (*TransactionFailure, bool) {
	var failure *TransactionFailure
	ok := errors.As(err, &failure)
	return failure, ok
}
