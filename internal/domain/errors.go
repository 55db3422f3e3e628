package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgItemNotFound    = "item not found"
	ErrMsgListingNotFound = "listing not found"
	ErrMsgClaimNotFound   = "claim not found"

	ErrMsgInsufficientFunds    = "insufficient funds"
	ErrMsgInsufficientQuantity = "insufficient quantity"
	ErrMsgInvalidQuantity      = "invalid quantity"
	ErrMsgInvalidPrice         = "invalid price"

	ErrMsgNotSeller      = "listing not owned by caller"
	ErrMsgRequestTimeout = "request timed out"
	ErrMsgNotConnected   = "not connected to authority"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrListingNotFound = errors.New(ErrMsgListingNotFound)
	ErrClaimNotFound   = errors.New(ErrMsgClaimNotFound)

	ErrInsufficientFunds    = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientQuantity = errors.New(ErrMsgInsufficientQuantity)
	ErrInvalidQuantity      = errors.New(ErrMsgInvalidQuantity)
	ErrInvalidPrice         = errors.New(ErrMsgInvalidPrice)

	ErrNotSeller      = errors.New(ErrMsgNotSeller)
	ErrRequestTimeout = errors.New(ErrMsgRequestTimeout)
	ErrNotConnected   = errors.New(ErrMsgNotConnected)
)
