package cqrs

// ListTransactionsQuery fetches all transactions belonging to a user,
// oldest first.
type ListTransactionsQuery struct {
	UserID string
}

// ListBudgetsQuery fetches all budgets belonging to a user.
type ListBudgetsQuery struct {
	UserID string
}

// DashboardSummaryQuery fetches the aggregated trend and forecast for a user.
type DashboardSummaryQuery struct {
	UserID string
}
