// Package repository defines the persistence contracts for the domain and
// provides two adapters: PostgreSQL for production and an in-memory store
// for tests. Adapters translate storage-level failures into the domain
// error taxonomy at this boundary — absent rows become NotFound, unique
// violations become Conflict — so services never see engine-specific errors.
package repository

import "github.com/8180e/personal-finance-dashboard/internal/models"

type UserRepository interface {
	// Create persists a new user. A duplicate email fails with Conflict.
	Create(user *models.User) error
	// FindByEmail returns the full user record including the password hash.
	// Fails with NotFound if no user has the given email.
	FindByEmail(email string) (*models.User, error)
}

type TransactionRepository interface {
	Create(txn *models.Transaction) error
	// ListByUser returns the user's transactions in insertion order,
	// oldest first.
	ListByUser(userID string) ([]models.Transaction, error)
	// GetByID fails with NotFound if the transaction does not exist.
	GetByID(id string) (*models.Transaction, error)
	Delete(id string) error
}

type BudgetRepository interface {
	// Create persists a new budget. A duplicate (user, category) pair
	// fails with Conflict.
	Create(budget *models.Budget) error
	ListByUser(userID string) ([]models.Budget, error)
	// GetByID fails with NotFound if the budget does not exist.
	GetByID(id string) (*models.Budget, error)
	// GetByUserAndCategory returns (nil, nil) when the user has no budget
	// for the category.
	GetByUserAndCategory(userID, category string) (*models.Budget, error)
	UpdateAmount(id string, amount float64) error
	Delete(id string) error
}
