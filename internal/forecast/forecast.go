// Package forecast projects the next period's income and expense totals
// from historical per-period aggregates. It is pure: no I/O, no state.
package forecast

import (
	"math"

	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// Predict fits an ordinary least-squares line through each series
// (income and expense independently), treating the i-th period as the
// point (i, value), and evaluates the line at the next index. Negative
// projections clamp to zero; results are rounded to two decimals.
//
// Fewer than two periods make the fit degenerate: a single period
// projects flat at its value, no history projects zero.
func Predict(periods []models.PeriodTotals) models.PeriodTotals {
	income := make([]float64, len(periods))
	expense := make([]float64, len(periods))
	for i, p := range periods {
		income[i] = p.Income
		expense[i] = p.Expense
	}
	return models.PeriodTotals{
		Income:  predictNext(income),
		Expense: predictNext(expense),
	}
}

func predictNext(series []float64) float64 {
	n := len(series)
	switch n {
	case 0:
		return 0
	case 1:
		return clamp(series[0])
	}

	// Least-squares slope and intercept over (index, value).
	var sumX, sumY, sumXY, sumXX float64
	for i, y := range series {
		x := float64(i)
		sumX += x
		sumY += y
		sumXY += x * y
		sumXX += x * x
	}
	fn := float64(n)
	slope := (fn*sumXY - sumX*sumY) / (fn*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / fn

	next := slope*fn + intercept
	return clamp(next)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return math.Round(v*100) / 100
}
