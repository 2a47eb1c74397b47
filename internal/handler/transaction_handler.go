package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/middleware"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/utils"
)

// TransactionServicer defines the transaction operations used by the handler.
type TransactionServicer interface {
	Create(cqrs.CreateTransactionCommand) (*models.Transaction, error)
	ListByOwner(cqrs.ListTransactionsQuery) ([]models.Transaction, error)
	Delete(cqrs.DeleteTransactionCommand) error
}

// TransactionHandler handles transaction HTTP requests. The owner is always
// the authenticated user; transactions carry no user identifier on the wire.
type TransactionHandler struct {
	transactions TransactionServicer
}

type CreateTransactionRequest struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Kind     string  `json:"type" validate:"required,oneof=INCOME EXPENSE"`
	Category string  `json:"category" validate:"required"`
}

func NewTransactionHandler(transactions TransactionServicer) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	txn, err := h.transactions.Create(cqrs.CreateTransactionCommand{
		UserID:   user.ID,
		Amount:   req.Amount,
		Kind:     req.Kind,
		Category: req.Category,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, txn)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	transactions, err := h.transactions.ListByOwner(cqrs.ListTransactionsQuery{UserID: user.ID})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	c.JSON(http.StatusOK, transactions)
}

func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	transactionID := c.Param("transactionId")
	user, _ := middleware.CurrentUser(c)

	if !utils.ValidateTransactionID(transactionID) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.transactions.Delete(cqrs.DeleteTransactionCommand{
		TransactionID: transactionID,
		UserID:        user.ID,
	}); err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
