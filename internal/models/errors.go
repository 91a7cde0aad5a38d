package models

import "errors"

// Domain errors. The repository and services return these as-is; only the
// HTTP layer translates them into status codes.
var (
	// ErrAccountNotFound is returned when an account number has no entry.
	// Maps to 404 Not Found.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount is returned when a deposit or withdrawal amount is
	// not strictly positive. The balance is left unchanged.
	// Maps to 400 Bad Request.
	ErrInvalidAmount = errors.New("amount must be greater than zero")

	// ErrAccountExists is returned when creating an account whose number is
	// already taken. Creation is not routed, so this only surfaces to
	// seeding and tests.
	ErrAccountExists = errors.New("account already exists")

	// ErrInsufficientFunds is reserved for overdraft-limit enforcement.
	// Withdrawals currently ignore the stored limit, so nothing returns it yet.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
