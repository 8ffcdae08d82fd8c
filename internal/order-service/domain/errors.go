package domain

import "errors"

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrItemNotFound  = errors.New("order item not found")
	// ErrOrderClosed is returned when the content of a PAID or CANCELLED order would change.
	ErrOrderClosed   = errors.New("order is closed")
	ErrOrderNotReady = errors.New("order is not ready for payment")
	ErrInvalidStatus = errors.New("invalid status")
)

// ErrSubmissionInProgress is returned when another request holding the same
// idempotency key has not finished yet.
var ErrSubmissionInProgress = errors.New("submission with this idempotency key is in progress")

var (
	ErrInvalidTable         = errors.New("invalid table")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrUnknownProduct       = errors.New("unknown product")
	ErrInvalidCategory      = errors.New("invalid category")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)
