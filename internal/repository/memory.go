package repository

import (
	"sync"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// MemoryStore is an in-memory implementation of all three repository
// contracts, used by service tests. It mirrors the Postgres adapter's
// behaviour: insertion-order listing, NotFound on absent rows and Conflict
// on unique violations.
type MemoryStore struct {
	mu           sync.Mutex
	users        []models.User
	transactions []models.Transaction
	budgets      []models.Budget
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ---- UserRepository ----

func (s *MemoryStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == user.Email {
			return apierr.Conflictf("User already exists")
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *MemoryStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, apierr.NotFoundf("User not found")
}

// Transactions returns a TransactionRepository view of the store.
func (s *MemoryStore) Transactions() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{store: s}
}

// Budgets returns a BudgetRepository view of the store.
func (s *MemoryStore) Budgets() *MemoryBudgetRepository {
	return &MemoryBudgetRepository{store: s}
}

// ---- TransactionRepository ----

type MemoryTransactionRepository struct {
	store *MemoryStore
}

func (r *MemoryTransactionRepository) Create(txn *models.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.transactions = append(r.store.transactions, *txn)
	return nil
}

func (r *MemoryTransactionRepository) ListByUser(userID string) ([]models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Transaction
	for _, txn := range r.store.transactions {
		if txn.UserID == userID {
			out = append(out, txn)
		}
	}
	return out, nil
}

func (r *MemoryTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.transactions {
		if r.store.transactions[i].ID == id {
			txn := r.store.transactions[i]
			return &txn, nil
		}
	}
	return nil, apierr.NotFoundf("Transaction not found")
}

func (r *MemoryTransactionRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.transactions {
		if r.store.transactions[i].ID == id {
			r.store.transactions = append(r.store.transactions[:i], r.store.transactions[i+1:]...)
			return nil
		}
	}
	return apierr.NotFoundf("Transaction not found")
}

// ---- BudgetRepository ----

type MemoryBudgetRepository struct {
	store *MemoryStore
}

func (r *MemoryBudgetRepository) Create(budget *models.Budget) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, b := range r.store.budgets {
		if b.UserID == budget.UserID && b.Category == budget.Category {
			return apierr.Conflictf("You already have a budget of the same category")
		}
	}
	r.store.budgets = append(r.store.budgets, *budget)
	return nil
}

func (r *MemoryBudgetRepository) ListByUser(userID string) ([]models.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []models.Budget
	for _, b := range r.store.budgets {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryBudgetRepository) GetByID(id string) (*models.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.budgets {
		if r.store.budgets[i].ID == id {
			b := r.store.budgets[i]
			return &b, nil
		}
	}
	return nil, apierr.NotFoundf("Budget not found")
}

func (r *MemoryBudgetRepository) GetByUserAndCategory(userID, category string) (*models.Budget, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.budgets {
		if r.store.budgets[i].UserID == userID && r.store.budgets[i].Category == category {
			b := r.store.budgets[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (r *MemoryBudgetRepository) UpdateAmount(id string, amount float64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.budgets {
		if r.store.budgets[i].ID == id {
			r.store.budgets[i].Amount = amount
			return nil
		}
	}
	return apierr.NotFoundf("Budget not found")
}

func (r *MemoryBudgetRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i := range r.store.budgets {
		if r.store.budgets[i].ID == id {
			r.store.budgets = append(r.store.budgets[:i], r.store.budgets[i+1:]...)
			return nil
		}
	}
	return apierr.NotFoundf("Budget not found")
}
