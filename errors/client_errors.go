package errors

import (
	"coopchain/jsonx"
)

// ClientErrorCode represents standardized error codes for client operations
type ClientErrorCode string

const (
	// General errors
	ErrCodeInternal ClientErrorCode = "internal_error"

	// Validation errors
	ErrCodeValidationFailed ClientErrorCode = "validation_failed"
	ErrCodeInvalidAddress   ClientErrorCode = "invalid_address"
	ErrCodeInvalidAmount    ClientErrorCode = "invalid_amount"
	ErrCodeInvalidQuantity  ClientErrorCode = "invalid_quantity"

	// Wallet errors
	ErrCodeWalletUnavailable ClientErrorCode = "wallet_unavailable"
	ErrCodeWalletRejected    ClientErrorCode = "wallet_rejected"

	// Ledger errors
	ErrCodeLedgerRead ClientErrorCode = "ledger_read_error"

	// Agreement state errors
	ErrCodeAgreementNotFound ClientErrorCode = "agreement_not_found"
	ErrCodeAlreadyFulfilled  ClientErrorCode = "already_fulfilled"
	ErrCodeOperationPending  ClientErrorCode = "operation_pending"
)

// ClientError represents a standardized client error
type ClientError struct {
	Code    ClientErrorCode `json:"code"`
	Message string          `json:"message"`
}

// Error implements the error interface
func (e *ClientError) Error() string {
	err, _ := jsonx.Marshal(ClientError{
		Code:    e.Code,
		Message: e.Message,
	})
	return string(err)
}

// NewClientError creates a ClientError with the given code and message
func NewClientError(code ClientErrorCode, message string) *ClientError {
	return &ClientError{Code: code, Message: message}
}

// CodeOf extracts the error code from err, or ErrCodeInternal when err is not
// a ClientError.
func CodeOf(err error) ClientErrorCode {
	if ce, ok := err.(*ClientError); ok {
		return ce.Code
	}
	return ErrCodeInternal
}

// Error message constants - user-friendly and concise
const (
	ErrMsgWalletUnavailable = "Wallet bridge is not reachable"
	ErrMsgWalletRejected    = "Wallet rejected or cancelled the request"
	ErrMsgInvalidAddress    = "Account address is invalid"
	ErrMsgInvalidAmount     = "Price must be greater than zero"
	ErrMsgInvalidQuantity   = "Quantity must be greater than zero"
	ErrMsgAgreementNotFound = "No agreement loaded for that farmer address"
	ErrMsgAlreadyFulfilled  = "Agreement has already been fulfilled"
	ErrMsgOperationPending  = "Another operation is still in flight"
)
