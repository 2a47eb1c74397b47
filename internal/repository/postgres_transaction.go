package repository

import (
	"database/sql"
	"fmt"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// PostgresTransactionRepository persists transactions in PostgreSQL.
type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

func (r *PostgresTransactionRepository) Create(txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, amount, kind, category, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query, txn.ID, txn.UserID, txn.Amount, txn.Kind, txn.Category, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (r *PostgresTransactionRepository) ListByUser(userID string) ([]models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, kind, category, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Kind, &txn.Category, &txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}

func (r *PostgresTransactionRepository) GetByID(id string) (*models.Transaction, error) {
	query := `
		SELECT id, user_id, amount, kind, category, created_at
		FROM transactions
		WHERE id = $1
	`
	var txn models.Transaction
	err := r.db.QueryRow(query, id).Scan(&txn.ID, &txn.UserID, &txn.Amount, &txn.Kind, &txn.Category, &txn.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, apierr.NotFoundf("Transaction not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &txn, nil
}

func (r *PostgresTransactionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return apierr.NotFoundf("Transaction not found")
	}
	return nil
}
