package service

import (
	"context"

	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/forecast"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/repository"
)

const summaryKeyPrefix = "dashboard:summary:"

// Month labels use this layout as the period key.
const periodLayout = "2006-01"

// SummaryCache is the Redis-backed projection store for dashboard
// summaries. Satisfied by cache.ViewCache[models.DashboardSummary].
type SummaryCache interface {
	Get(ctx context.Context, key string) (*models.DashboardSummary, bool)
	Set(ctx context.Context, key string, value *models.DashboardSummary)
	Delete(ctx context.Context, key string)
}

// DashboardService aggregates a user's transactions into per-month
// income/expense totals and projects the next month. Summaries are cached
// per user; transaction writes invalidate them.
type DashboardService struct {
	txRepo repository.TransactionRepository
	cache  SummaryCache
}

func NewDashboardService(txRepo repository.TransactionRepository, cache SummaryCache) *DashboardService {
	return &DashboardService{txRepo: txRepo, cache: cache}
}

// Summary returns the cached projection when present, otherwise rebuilds
// it from transaction history and warms the cache.
func (s *DashboardService) Summary(q cqrs.DashboardSummaryQuery) (*models.DashboardSummary, error) {
	ctx := context.Background()
	key := summaryKeyPrefix + q.UserID

	if s.cache != nil {
		if summary, ok := s.cache.Get(ctx, key); ok {
			return summary, nil
		}
	}

	transactions, err := s.txRepo.ListByUser(q.UserID)
	if err != nil {
		return nil, err
	}

	periods := bucketByMonth(transactions)
	totals := make([]models.PeriodTotals, len(periods))
	for i, p := range periods {
		totals[i] = p.PeriodTotals
	}

	summary := &models.DashboardSummary{
		Periods:  periods,
		Forecast: forecast.Predict(totals),
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, summary)
	}
	return summary, nil
}

// InvalidateSummary drops the cached projection for a user.
func (s *DashboardService) InvalidateSummary(userID string) {
	if s.cache != nil {
		s.cache.Delete(context.Background(), summaryKeyPrefix+userID)
	}
}

// bucketByMonth folds transactions into ordered month aggregates. The
// input is oldest first, so periods come out in chronological order —
// the ordering the forecast fit depends on.
func bucketByMonth(transactions []models.Transaction) []models.PeriodAggregate {
	periods := []models.PeriodAggregate{}
	index := map[string]int{}
	for _, txn := range transactions {
		label := txn.CreatedAt.UTC().Format(periodLayout)
		i, ok := index[label]
		if !ok {
			i = len(periods)
			index[label] = i
			periods = append(periods, models.PeriodAggregate{Period: label})
		}
		switch txn.Kind {
		case models.KindIncome:
			periods[i].Income += txn.Amount
		case models.KindExpense:
			periods[i].Expense += txn.Amount
		}
	}
	return periods
}
