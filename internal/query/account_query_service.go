package query

import (
	"github.com/miniatm/ledger-service/internal/cqrs"
	"github.com/miniatm/ledger-service/internal/models"
	"github.com/miniatm/ledger-service/internal/repository"
)

// AccountQueryService serves the read side: pure balance lookups with no side
// effects on the store.
type AccountQueryService struct {
	repo *repository.AccountRepository
}

func NewAccountQueryService(repo *repository.AccountRepository) *AccountQueryService {
	return &AccountQueryService{repo: repo}
}

func (s *AccountQueryService) GetBalance(q cqrs.GetBalanceQuery) (*models.BalanceView, error) {
	account, err := s.repo.GetByAccountNumber(q.AccountNumber)
	if err != nil {
		return nil, err
	}
	return &models.BalanceView{
		AccountNumber: account.AccountNumber,
		Balance:       account.Balance,
	}, nil
}
