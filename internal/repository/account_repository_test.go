package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/miniatm/ledger-service/internal/models"
)

func getBalance(t *testing.T, r *AccountRepository, number string) float64 {
	t.Helper()
	a, err := r.GetByAccountNumber(number)
	if err != nil {
		t.Fatalf("GetByAccountNumber(%s) err=%v", number, err)
	}
	return a.Balance
}

func TestSeed(t *testing.T) {
	r := NewAccountRepository()
	r.Seed()

	for _, number := range []string{"0", "1"} {
		if bal := getBalance(t, r, number); bal != 1000.0 {
			t.Errorf("seed account %s balance=%v want=1000", number, bal)
		}
	}

	// Seeding again resets any drift.
	if _, err := r.Deposit("0", 250); err != nil {
		t.Fatal(err)
	}
	r.Seed()
	if bal := getBalance(t, r, "0"); bal != 1000.0 {
		t.Errorf("after re-seed balance=%v want=1000", bal)
	}
}

func TestGetUnknownAccount(t *testing.T) {
	r := NewAccountRepository()
	r.Seed()

	if _, err := r.GetByAccountNumber("9999"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
	// A failed lookup must not create the account.
	if _, err := r.GetByAccountNumber("9999"); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("lookup created an entry as a side effect: %v", err)
	}
}

func TestCreate(t *testing.T) {
	r := NewAccountRepository()

	a, err := r.Create("42", 500)
	if err != nil {
		t.Fatal(err)
	}
	if a.AccountNumber != "42" || a.Balance != 500 {
		t.Fatalf("created account unexpected: %+v", a)
	}
	if a.Currency != "USD" {
		t.Errorf("currency=%q want USD", a.Currency)
	}

	if _, err := r.Create("42", 0); !errors.Is(err, models.ErrAccountExists) {
		t.Fatalf("duplicate create: want ErrAccountExists, got %v", err)
	}
	// The losing create must not clobber the original balance.
	if bal := getBalance(t, r, "42"); bal != 500 {
		t.Errorf("balance after duplicate create=%v want=500", bal)
	}
}

func TestDeposit(t *testing.T) {
	r := NewAccountRepository()
	r.Create("A", 100)

	a, err := r.Deposit("A", 50.5)
	if err != nil {
		t.Fatal(err)
	}
	if a.Balance != 150.5 {
		t.Errorf("returned balance=%v want=150.5", a.Balance)
	}
	if bal := getBalance(t, r, "A"); bal != 150.5 {
		t.Errorf("stored balance=%v want=150.5", bal)
	}

	if _, err := r.Deposit("missing", 10); !errors.Is(err, models.ErrAccountNotFound) {
		t.Fatalf("want ErrAccountNotFound, got %v", err)
	}
}

func TestWithdrawOverdraftAllowed(t *testing.T) {
	r := NewAccountRepository()
	r.Create("A", 1500)

	// Withdrawing more than the balance succeeds and goes negative.
	a, err := r.Withdraw("A", 2000)
	if err != nil {
		t.Fatal(err)
	}
	if a.Balance != -500 {
		t.Errorf("returned balance=%v want=-500", a.Balance)
	}
	if bal := getBalance(t, r, "A"); bal != -500 {
		t.Errorf("stored balance=%v want=-500", bal)
	}
}

func TestNonPositiveAmountsRejected(t *testing.T) {
	r := NewAccountRepository()
	r.Create("A", 100)

	for _, amount := range []float64{0, -1, -99.99} {
		if _, err := r.Deposit("A", amount); !errors.Is(err, models.ErrInvalidAmount) {
			t.Errorf("Deposit(%v): want ErrInvalidAmount, got %v", amount, err)
		}
		if _, err := r.Withdraw("A", amount); !errors.Is(err, models.ErrInvalidAmount) {
			t.Errorf("Withdraw(%v): want ErrInvalidAmount, got %v", amount, err)
		}
	}
	if bal := getBalance(t, r, "A"); bal != 100 {
		t.Errorf("balance changed by rejected operations: %v want=100", bal)
	}
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	r := NewAccountRepository()
	r.Create("A", 1000)

	if _, err := r.Deposit("A", 123.25); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Withdraw("A", 123.25); err != nil {
		t.Fatal(err)
	}
	if bal := getBalance(t, r, "A"); bal != 1000 {
		t.Errorf("round trip balance=%v want=1000", bal)
	}
}

func TestConcurrentDepositsNoLostUpdates(t *testing.T) {
	r := NewAccountRepository()
	r.Create("A", 0)

	const workers = 200
	const amount = 1.0

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := r.Deposit("A", amount); err != nil {
				t.Errorf("deposit err: %v", err)
			}
		}()
	}
	wg.Wait()

	if bal := getBalance(t, r, "A"); bal != workers*amount {
		t.Fatalf("balance=%v want=%v", bal, workers*amount)
	}
}

func TestConcurrentMixedOperationsConserveTotal(t *testing.T) {
	r := NewAccountRepository()
	r.Create("A", 1000)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := r.Deposit("A", 5); err != nil {
				t.Errorf("deposit err: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := r.Withdraw("A", 5); err != nil {
				t.Errorf("withdraw err: %v", err)
			}
		}()
	}
	wg.Wait()

	if bal := getBalance(t, r, "A"); bal != 1000 {
		t.Fatalf("balance=%v want=1000", bal)
	}
}

func TestConcurrentAccessDistinctAccounts(t *testing.T) {
	r := NewAccountRepository()
	r.Seed()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := r.Deposit("0", 1); err != nil {
				t.Errorf("deposit 0: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := r.Withdraw("1", 1); err != nil {
				t.Errorf("withdraw 1: %v", err)
			}
		}()
	}
	wg.Wait()

	if bal := getBalance(t, r, "0"); bal != 1100 {
		t.Errorf("account 0 balance=%v want=1100", bal)
	}
	if bal := getBalance(t, r, "1"); bal != 900 {
		t.Errorf("account 1 balance=%v want=900", bal)
	}
}

func TestConcurrentCreateSameNumber(t *testing.T) {
	r := NewAccountRepository()

	const n = 50
	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0

	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := r.Create("X", 10)
			if err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			} else if !errors.Is(err, models.ErrAccountExists) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("creates won=%d want exactly 1", wins)
	}
	if bal := getBalance(t, r, "X"); bal != 10 {
		t.Errorf("balance=%v want=10", bal)
	}
}
