package command

import (
	"github.com/miniatm/ledger-service/internal/cqrs"
	"github.com/miniatm/ledger-service/internal/models"
	"github.com/miniatm/ledger-service/internal/repository"
)

// AccountCommandService applies balance mutations. Amount and existence checks
// live in the repository; this layer shapes the result for the API and keeps
// the write path behind a single type.
type AccountCommandService struct {
	repo *repository.AccountRepository
}

func NewAccountCommandService(repo *repository.AccountRepository) *AccountCommandService {
	return &AccountCommandService{repo: repo}
}

func (s *AccountCommandService) Deposit(cmd cqrs.DepositCommand) (*models.BalanceView, error) {
	account, err := s.repo.Deposit(cmd.AccountNumber, cmd.Amount)
	if err != nil {
		return nil, err
	}
	return accountToBalanceView(account), nil
}

func (s *AccountCommandService) Withdraw(cmd cqrs.WithdrawCommand) (*models.BalanceView, error) {
	account, err := s.repo.Withdraw(cmd.AccountNumber, cmd.Amount)
	if err != nil {
		return nil, err
	}
	return accountToBalanceView(account), nil
}

// accountToBalanceView converts the write model to the wire projection.
func accountToBalanceView(a models.Account) *models.BalanceView {
	return &models.BalanceView{
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance,
	}
}
