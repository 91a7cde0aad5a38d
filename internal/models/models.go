package models

import "time"

// Account is the write model for a single account. The account number is
// immutable after creation; the balance changes only through deposits and
// withdrawals and may go negative (overdraft is allowed).
type Account struct {
	AccountNumber  string    `json:"accountNumber"`
	Balance        float64   `json:"balance"`
	Currency       string    `json:"currency"`
	OverdraftLimit float64   `json:"-"`
	CreatedAt      time.Time `json:"createdTimestamp"`
	UpdatedAt      time.Time `json:"updatedTimestamp"`
}
