package domain

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrOrderNotFound     = errors.New("order not found")
	ErrAlreadyInCart     = errors.New("article already in cart")
	ErrArticleNotFound   = errors.New("article not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrNoIdentity        = errors.New("no current identity")
	ErrNegativeCount     = errors.New("cart count is negative")

	// ErrTransport marks a failed collaborator call (catalog load, cart fetch, add-to-cart...).
	// It is never retried internally.
	ErrTransport = errors.New("transport failure")
)
