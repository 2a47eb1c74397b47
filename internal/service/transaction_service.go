package service

import (
	"time"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/repository"
	"github.com/8180e/personal-finance-dashboard/internal/utils"
)

// SummaryInvalidator drops a user's cached dashboard projection after the
// underlying transactions change. May be nil when no cache is wired.
type SummaryInvalidator interface {
	InvalidateSummary(userID string)
}

// TransactionService handles transaction creation, listing and deletion
// with owner-only authorisation.
type TransactionService struct {
	repo      repository.TransactionRepository
	summaries SummaryInvalidator
}

func NewTransactionService(repo repository.TransactionRepository, summaries SummaryInvalidator) *TransactionService {
	return &TransactionService{repo: repo, summaries: summaries}
}

// Create records a transaction for its owner. Duplicates are allowed;
// only the entity invariants are checked.
func (s *TransactionService) Create(cmd cqrs.CreateTransactionCommand) (*models.Transaction, error) {
	if cmd.Amount <= 0 {
		return nil, apierr.BadRequestf("Amount must be greater than zero")
	}
	if !models.ValidKind(cmd.Kind) {
		return nil, apierr.BadRequestf("Type must be INCOME or EXPENSE")
	}
	if cmd.Category == "" {
		return nil, apierr.BadRequestf("Category is required")
	}
	txn := &models.Transaction{
		ID:        utils.GenerateID("txn"),
		UserID:    cmd.UserID,
		Amount:    cmd.Amount,
		Kind:      cmd.Kind,
		Category:  cmd.Category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(txn); err != nil {
		return nil, err
	}
	s.invalidate(cmd.UserID)
	return txn, nil
}

// ListByOwner returns the owner's transactions in store order, oldest first.
func (s *TransactionService) ListByOwner(q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	return s.repo.ListByUser(q.UserID)
}

// Delete removes a transaction. Existence is checked before ownership:
// a missing id fails with NotFound regardless of the caller, a foreign
// owner fails with Unauthorized only once the record is known to exist.
func (s *TransactionService) Delete(cmd cqrs.DeleteTransactionCommand) error {
	txn, err := s.repo.GetByID(cmd.TransactionID)
	if err != nil {
		return err
	}
	if txn.UserID != cmd.UserID {
		return apierr.Unauthorizedf("You are not authorized to delete this transaction")
	}
	if err := s.repo.Delete(cmd.TransactionID); err != nil {
		return err
	}
	s.invalidate(cmd.UserID)
	return nil
}

func (s *TransactionService) invalidate(userID string) {
	if s.summaries != nil {
		s.summaries.InvalidateSummary(userID)
	}
}
