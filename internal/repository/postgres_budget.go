package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// PostgresBudgetRepository persists budgets in PostgreSQL. The table's
// UNIQUE (user_id, category) index closes the service layer's check-then-act
// race; its violation surfaces as the same Conflict the service raises.
type PostgresBudgetRepository struct {
	db *sql.DB
}

func NewPostgresBudgetRepository(db *sql.DB) *PostgresBudgetRepository {
	return &PostgresBudgetRepository{db: db}
}

func (r *PostgresBudgetRepository) Create(budget *models.Budget) error {
	query := `
		INSERT INTO budgets (id, user_id, category, amount)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(query, budget.ID, budget.UserID, budget.Category, budget.Amount)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
			return apierr.Conflictf("You already have a budget of the same category")
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

func (r *PostgresBudgetRepository) ListByUser(userID string) ([]models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount
		FROM budgets
		WHERE user_id = $1
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, budget)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate budgets: %w", err)
	}
	return budgets, nil
}

func (r *PostgresBudgetRepository) GetByID(id string) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount
		FROM budgets
		WHERE id = $1
	`
	var budget models.Budget
	err := r.db.QueryRow(query, id).Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount)
	if err == sql.ErrNoRows {
		return nil, apierr.NotFoundf("Budget not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

func (r *PostgresBudgetRepository) GetByUserAndCategory(userID, category string) (*models.Budget, error) {
	query := `
		SELECT id, user_id, category, amount
		FROM budgets
		WHERE user_id = $1 AND category = $2
	`
	var budget models.Budget
	err := r.db.QueryRow(query, userID, category).Scan(&budget.ID, &budget.UserID, &budget.Category, &budget.Amount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget by category: %w", err)
	}
	return &budget, nil
}

func (r *PostgresBudgetRepository) UpdateAmount(id string, amount float64) error {
	result, err := r.db.Exec(`UPDATE budgets SET amount = $2 WHERE id = $1`, id, amount)
	if err != nil {
		return fmt.Errorf("failed to update budget: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return apierr.NotFoundf("Budget not found")
	}
	return nil
}

func (r *PostgresBudgetRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM budgets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return apierr.NotFoundf("Budget not found")
	}
	return nil
}
