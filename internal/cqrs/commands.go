package cqrs

// DepositCommand credits an account with a positive amount.
type DepositCommand struct {
	AccountNumber string
	Amount        float64
}

// WithdrawCommand debits an account with a positive amount. The resulting
// balance may go negative; no overdraft bound is enforced.
type WithdrawCommand struct {
	AccountNumber string
	Amount        float64
}
