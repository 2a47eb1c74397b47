package models

// PublicUser is the externally visible projection of a user. It carries no
// password hash and is the representation embedded into issued tokens.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the credential fields from a user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}

// PeriodTotals is one dashboard aggregation bucket: the income and expense
// sums for a single period (month).
type PeriodTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// PeriodAggregate pairs a period label with its totals. Summaries keep
// these in chronological order; the forecast depends on that ordering.
type PeriodAggregate struct {
	Period string `json:"period"`
	PeriodTotals
}

// DashboardSummary is the read-optimised projection served to the dashboard:
// the per-month trend plus the projected next period.
type DashboardSummary struct {
	Periods  []PeriodAggregate `json:"periods"`
	Forecast PeriodTotals      `json:"forecast"`
}
