package repository

import (
	"math"
	"sync"
	"time"

	"github.com/miniatm/ledger-service/internal/models"
)

// account is the owned, mutable record behind an account number. Its mutex
// serializes balance mutations so that two concurrent writers on the same
// account never interleave and a reader never observes a torn value.
// Callers outside this package only ever see snapshots.
type account struct {
	mu             sync.Mutex
	number         string
	balance        float64
	currency       string
	overdraftLimit float64
	createdAt      time.Time
	updatedAt      time.Time
}

// deposit adds a strictly positive amount and returns a snapshot taken in the
// same critical section, so the caller sees exactly the balance this deposit
// produced.
func (a *account) deposit(amount float64) (models.Account, error) {
	if amount <= 0 {
		return models.Account{}, models.ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance += amount
	a.updatedAt = time.Now().UTC()
	return a.snapshotLocked(), nil
}

// withdraw subtracts a strictly positive amount. The stored overdraft limit is
// not enforced, so the balance may go negative without bound.
func (a *account) withdraw(amount float64) (models.Account, error) {
	if amount <= 0 {
		return models.Account{}, models.ErrInvalidAmount
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance -= amount
	a.updatedAt = time.Now().UTC()
	return a.snapshotLocked(), nil
}

// snapshot returns a consistent copy of the account state.
func (a *account) snapshot() models.Account {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshotLocked()
}

// snapshotLocked must be called with a.mu held.
func (a *account) snapshotLocked() models.Account {
	return models.Account{
		AccountNumber:  a.number,
		Balance:        a.balance,
		Currency:       a.currency,
		OverdraftLimit: a.overdraftLimit,
		CreatedAt:      a.createdAt,
		UpdatedAt:      a.updatedAt,
	}
}

// AccountRepository is the in-memory registry owning all account records.
// The RWMutex guards only the map itself; each account carries its own lock,
// so operations on distinct accounts never contend with each other.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*account)}
}

// get resolves an account number to its owned record.
func (r *AccountRepository) get(accountNumber string) (*account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[accountNumber]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return a, nil
}

// GetByAccountNumber returns a snapshot of the account state. A lookup never
// creates an entry as a side effect.
func (r *AccountRepository) GetByAccountNumber(accountNumber string) (models.Account, error) {
	a, err := r.get(accountNumber)
	if err != nil {
		return models.Account{}, err
	}
	return a.snapshot(), nil
}

// Deposit credits the account and returns the state the deposit produced.
func (r *AccountRepository) Deposit(accountNumber string, amount float64) (models.Account, error) {
	a, err := r.get(accountNumber)
	if err != nil {
		return models.Account{}, err
	}
	return a.deposit(amount)
}

// Withdraw debits the account and returns the state the withdrawal produced.
func (r *AccountRepository) Withdraw(accountNumber string, amount float64) (models.Account, error) {
	a, err := r.get(accountNumber)
	if err != nil {
		return models.Account{}, err
	}
	return a.withdraw(amount)
}

// Create inserts a new account with the given opening balance. Two racing
// creates on the same number resolve deterministically: exactly one wins, the
// other observes ErrAccountExists. Creation is not exposed over HTTP; it
// exists for seeding and tests.
func (r *AccountRepository) Create(accountNumber string, initialBalance float64) (models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[accountNumber]; ok {
		return models.Account{}, models.ErrAccountExists
	}
	now := time.Now().UTC()
	a := &account{
		number:         accountNumber,
		balance:        initialBalance,
		currency:       "USD",
		overdraftLimit: math.Inf(1),
		createdAt:      now,
		updatedAt:      now,
	}
	r.accounts[accountNumber] = a
	return a.snapshot(), nil
}

// Seed clears the store and inserts the two demo accounts. Called once at
// startup, before the server accepts traffic, so it needs no extra locking
// beyond what Create already does.
func (r *AccountRepository) Seed() {
	r.mu.Lock()
	r.accounts = make(map[string]*account)
	r.mu.Unlock()
	r.Create("0", 1000.0)
	r.Create("1", 1000.0)
}
