package models

// BalanceView is the wire projection returned by every balance, deposit and
// withdraw operation. Field names are snake_case to stay compatible with
// existing API clients.
type BalanceView struct {
	AccountNumber string  `json:"account_number"`
	Balance       float64 `json:"balance"`
}
