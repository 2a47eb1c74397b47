package service

import (
	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/repository"
	"github.com/8180e/personal-finance-dashboard/internal/utils"
)

// BudgetService handles budget CRUD with owner-only authorisation and the
// one-budget-per-category rule.
type BudgetService struct {
	repo repository.BudgetRepository
}

func NewBudgetService(repo repository.BudgetRepository) *BudgetService {
	return &BudgetService{repo: repo}
}

// Create enforces at most one budget per (owner, category). The duplicate
// lookup here is check-then-act; the storage unique index covers the race
// window between two concurrent creates and reports the same Conflict.
func (s *BudgetService) Create(cmd cqrs.CreateBudgetCommand) (*models.Budget, error) {
	if cmd.Amount <= 0 {
		return nil, apierr.BadRequestf("Amount must be greater than zero")
	}
	if cmd.Category == "" {
		return nil, apierr.BadRequestf("Category is required")
	}
	existing, err := s.repo.GetByUserAndCategory(cmd.UserID, cmd.Category)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apierr.Conflictf("You already have a budget of the same category")
	}
	budget := &models.Budget{
		ID:       utils.GenerateID("bgt"),
		UserID:   cmd.UserID,
		Category: cmd.Category,
		Amount:   cmd.Amount,
	}
	if err := s.repo.Create(budget); err != nil {
		return nil, err
	}
	return budget, nil
}

// UpdateAmount changes a budget's amount. Category changes are not
// supported. Existence is checked before ownership, same as deletion.
func (s *BudgetService) UpdateAmount(cmd cqrs.UpdateBudgetCommand) error {
	if cmd.Amount <= 0 {
		return apierr.BadRequestf("Amount must be greater than zero")
	}
	budget, err := s.repo.GetByID(cmd.BudgetID)
	if err != nil {
		return err
	}
	if budget.UserID != cmd.UserID {
		return apierr.Unauthorizedf("You do not own this budget")
	}
	return s.repo.UpdateAmount(cmd.BudgetID, cmd.Amount)
}

// Delete removes a budget after the existence-then-ownership sequence.
func (s *BudgetService) Delete(cmd cqrs.DeleteBudgetCommand) error {
	budget, err := s.repo.GetByID(cmd.BudgetID)
	if err != nil {
		return err
	}
	if budget.UserID != cmd.UserID {
		return apierr.Unauthorizedf("You do not own this budget")
	}
	return s.repo.Delete(cmd.BudgetID)
}

// ListByOwner returns the owner's budgets in store iteration order.
func (s *BudgetService) ListByOwner(q cqrs.ListBudgetsQuery) ([]models.Budget, error) {
	return s.repo.ListByUser(q.UserID)
}
