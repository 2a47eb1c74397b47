package models

import "time"

// Transaction kinds.
const (
	KindIncome  = "INCOME"
	KindExpense = "EXPENSE"
)

// ValidKind reports whether kind is one of the supported transaction kinds.
func ValidKind(kind string) bool {
	return kind == KindIncome || kind == KindExpense
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdTimestamp"`
}

type Transaction struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Amount    float64   `json:"amount"`
	Kind      string    `json:"type"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

type Budget struct {
	ID       string  `json:"id"`
	UserID   string  `json:"-"`
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
