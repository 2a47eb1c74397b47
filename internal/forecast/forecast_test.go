package forecast

import (
	"testing"

	"github.com/8180e/personal-finance-dashboard/internal/models"
)

func TestPredict(t *testing.T) {
	tests := []struct {
		name    string
		periods []models.PeriodTotals
		want    models.PeriodTotals
	}{
		{
			name: "linear increase continues",
			periods: []models.PeriodTotals{
				{Income: 100, Expense: 50},
				{Income: 200, Expense: 60},
				{Income: 300, Expense: 70},
			},
			want: models.PeriodTotals{Income: 400, Expense: 80},
		},
		{
			name: "negative projection clamps to zero",
			periods: []models.PeriodTotals{
				{Income: 300, Expense: 10},
				{Income: 150, Expense: 10},
				{Income: 20, Expense: 10},
			},
			want: models.PeriodTotals{Income: 0, Expense: 10},
		},
		{
			name:    "no history projects zero",
			periods: nil,
			want:    models.PeriodTotals{},
		},
		{
			name:    "single period projects flat",
			periods: []models.PeriodTotals{{Income: 120.5, Expense: 33.333}},
			want:    models.PeriodTotals{Income: 120.5, Expense: 33.33},
		},
		{
			name: "two periods extrapolate the line",
			periods: []models.PeriodTotals{
				{Income: 100, Expense: 40},
				{Income: 150, Expense: 30},
			},
			want: models.PeriodTotals{Income: 200, Expense: 20},
		},
		{
			name: "noisy series rounds to two decimals",
			periods: []models.PeriodTotals{
				{Income: 10, Expense: 1},
				{Income: 11, Expense: 2},
				{Income: 13, Expense: 2},
			},
			// Fit over [10, 11, 13]: slope 1.5, intercept 9.833...;
			// value at x=3 is 14.333... -> 14.33.
			want: models.PeriodTotals{Income: 14.33, Expense: 2.67},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Predict(tt.periods)
			if got != tt.want {
				t.Errorf("expected %+v got %+v", tt.want, got)
			}
		})
	}
}
