package service

import "errors"

// Sentinel errors surfaced by the order, reward and cart services. Handlers map
// these to HTTP statuses; nothing is retried automatically.
var (
	ErrAuthRequired        = errors.New("authentication required")
	ErrInvalidPayment      = errors.New("card number must be exactly 16 digits")
	ErrEmptyOrder          = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("not enough coins")
	ErrAlreadyClaimed      = errors.New("reward already claimed for this order")
	ErrAlreadyInCart       = errors.New("recipe is already in the cart")
	ErrNotFound            = errors.New("not found")
	ErrForbidden           = errors.New("not allowed")

	// ErrPersistence wraps storage faults during order placement. The order may
	// be partially recorded when this surfaces; the caller is told so.
	ErrPersistence = errors.New("persistence failure")
)
