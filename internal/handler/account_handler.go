package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miniatm/ledger-service/internal/cqrs"
	"github.com/miniatm/ledger-service/internal/middleware"
	"github.com/miniatm/ledger-service/internal/models"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	Deposit(cqrs.DepositCommand) (*models.BalanceView, error)
	Withdraw(cqrs.WithdrawCommand) (*models.BalanceView, error)
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	GetBalance(cqrs.GetBalanceQuery) (*models.BalanceView, error)
}

// AccountHandler handles account-related HTTP requests and owns the mapping
// from domain errors to status codes.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// AmountRequest is the body of deposit and withdraw requests. Amount is a
// pointer so a missing field is distinguishable from a zero amount: missing or
// unparseable bodies are rejected here with 422, while a present but
// non-positive amount is passed through and rejected by the core with 400.
type AmountRequest struct {
	Amount *float64 `json:"amount" validate:"required"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) GetBalance(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	view, err := h.queries.GetBalance(cqrs.GetBalanceQuery{AccountNumber: accountNumber})
	if err != nil {
		slog.Warn("balance request failed", "accountNumber", accountNumber, "error", err)
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
		return
	}

	slog.Info("retrieved balance", "accountNumber", accountNumber)
	c.JSON(http.StatusOK, view)
}

func (h *AccountHandler) Deposit(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	req, ok := h.bindAmount(c)
	if !ok {
		return
	}

	view, err := h.commands.Deposit(cqrs.DepositCommand{
		AccountNumber: accountNumber,
		Amount:        *req.Amount,
	})
	if err != nil {
		h.respondWithDomainError(c, "deposit", accountNumber, err)
		return
	}

	slog.Info("deposit applied", "accountNumber", accountNumber, "amount", *req.Amount)
	c.JSON(http.StatusOK, view)
}

func (h *AccountHandler) Withdraw(c *gin.Context) {
	accountNumber := c.Param("accountNumber")

	req, ok := h.bindAmount(c)
	if !ok {
		return
	}

	view, err := h.commands.Withdraw(cqrs.WithdrawCommand{
		AccountNumber: accountNumber,
		Amount:        *req.Amount,
	})
	if err != nil {
		h.respondWithDomainError(c, "withdrawal", accountNumber, err)
		return
	}

	slog.Info("withdrawal applied", "accountNumber", accountNumber, "amount", *req.Amount)
	c.JSON(http.StatusOK, view)
}

// bindAmount parses and validates the request body, answering 422 on failure.
func (h *AccountHandler) bindAmount(c *gin.Context) (*AmountRequest, bool) {
	var req AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithValidationError(c, []middleware.ValidationError{
			{Field: "body", Message: "Request body must be valid JSON", Type: "malformed"},
		})
		return nil, false
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return nil, false
	}
	return &req, true
}

func (h *AccountHandler) respondWithDomainError(c *gin.Context, operation, accountNumber string, err error) {
	slog.Warn(operation+" failed", "accountNumber", accountNumber, "error", err)
	switch {
	case errors.Is(err, models.ErrAccountNotFound):
		middleware.RespondWithError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, models.ErrInvalidAmount):
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid amount")
	default:
		middleware.RespondWithError(c, http.StatusInternalServerError, "Failed to process "+operation)
	}
}
