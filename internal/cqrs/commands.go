package cqrs

type RegisterUserCommand struct {
	Name     string
	Email    string
	Password string
}

type AuthenticateCommand struct {
	Email    string
	Password string
}

type CreateTransactionCommand struct {
	UserID   string
	Amount   float64
	Kind     string
	Category string
}

type DeleteTransactionCommand struct {
	TransactionID string
	UserID        string
}

type CreateBudgetCommand struct {
	UserID   string
	Category string
	Amount   float64
}

type UpdateBudgetCommand struct {
	BudgetID string
	UserID   string
	Amount   float64
}

type DeleteBudgetCommand struct {
	BudgetID string
	UserID   string
}
