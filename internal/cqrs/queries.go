package cqrs

// GetBalanceQuery fetches the current balance of a single account.
type GetBalanceQuery struct {
	AccountNumber string
}
