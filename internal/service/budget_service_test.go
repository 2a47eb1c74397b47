package service

import (
	"testing"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/repository"
)

func newBudgetService() *BudgetService {
	return NewBudgetService(repository.NewMemoryStore().Budgets())
}

func TestCreateBudget(t *testing.T) {
	svc := newBudgetService()

	budget, err := svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Groceries", Amount: 400})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if budget.Category != "Groceries" || budget.Amount != 400 {
		t.Errorf("unexpected budget: %+v", budget)
	}

	// Same (owner, category) pair conflicts.
	_, err = svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Groceries", Amount: 500})
	if !apierr.Is(err, apierr.Conflict) {
		t.Errorf("expected Conflict, got %v", err)
	}

	// Different category for the same owner succeeds.
	if _, err := svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Rent", Amount: 900}); err != nil {
		t.Errorf("different category failed: %v", err)
	}

	// Same category for a different owner succeeds.
	if _, err := svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-002", Category: "Groceries", Amount: 250}); err != nil {
		t.Errorf("different owner failed: %v", err)
	}
}

func TestCreateBudgetInvariants(t *testing.T) {
	svc := newBudgetService()
	tests := []struct {
		name string
		cmd  cqrs.CreateBudgetCommand
	}{
		{"zero amount", cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Rent", Amount: 0}},
		{"negative amount", cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Rent", Amount: -10}},
		{"empty category", cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "", Amount: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(tt.cmd); !apierr.Is(err, apierr.BadRequest) {
				t.Errorf("expected BadRequest, got %v", err)
			}
		})
	}
}

func TestUpdateBudget(t *testing.T) {
	svc := newBudgetService()
	budget, err := svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Groceries", Amount: 400})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	tests := []struct {
		name string
		cmd  cqrs.UpdateBudgetCommand
		kind apierr.Kind
		ok   bool
	}{
		{
			name: "missing id is NotFound even for a non-owner",
			cmd:  cqrs.UpdateBudgetCommand{BudgetID: "bgt-missing", UserID: "usr-002", Amount: 100},
			kind: apierr.NotFound,
		},
		{
			name: "foreign owner is Unauthorized once the budget exists",
			cmd:  cqrs.UpdateBudgetCommand{BudgetID: budget.ID, UserID: "usr-002", Amount: 100},
			kind: apierr.Unauthorized,
		},
		{
			name: "non-positive amount",
			cmd:  cqrs.UpdateBudgetCommand{BudgetID: budget.ID, UserID: "usr-001", Amount: 0},
			kind: apierr.BadRequest,
		},
		{
			name: "owner updates the amount",
			cmd:  cqrs.UpdateBudgetCommand{BudgetID: budget.ID, UserID: "usr-001", Amount: 550},
			ok:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.UpdateAmount(tt.cmd)
			if tt.ok {
				if err != nil {
					t.Fatalf("update failed: %v", err)
				}
				return
			}
			if !apierr.Is(err, tt.kind) {
				t.Errorf("expected %v, got %v", tt.kind, err)
			}
		})
	}

	listed, err := svc.ListByOwner(cqrs.ListBudgetsQuery{UserID: "usr-001"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Amount != 550 {
		t.Errorf("expected amount 550, got %+v", listed)
	}
}

func TestDeleteBudget(t *testing.T) {
	svc := newBudgetService()
	budget, err := svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Groceries", Amount: 400})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	err = svc.Delete(cqrs.DeleteBudgetCommand{BudgetID: "bgt-missing", UserID: "usr-001"})
	if !apierr.Is(err, apierr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}

	err = svc.Delete(cqrs.DeleteBudgetCommand{BudgetID: budget.ID, UserID: "usr-002"})
	if !apierr.Is(err, apierr.Unauthorized) {
		t.Errorf("expected Unauthorized, got %v", err)
	}

	if err := svc.Delete(cqrs.DeleteBudgetCommand{BudgetID: budget.ID, UserID: "usr-001"}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// The category is free again after deletion.
	if _, err := svc.Create(cqrs.CreateBudgetCommand{UserID: "usr-001", Category: "Groceries", Amount: 300}); err != nil {
		t.Errorf("recreate after delete failed: %v", err)
	}
}

func TestListBudgetsByOwner(t *testing.T) {
	svc := newBudgetService()
	for _, cmd := range []cqrs.CreateBudgetCommand{
		{UserID: "usr-001", Category: "Groceries", Amount: 400},
		{UserID: "usr-001", Category: "Rent", Amount: 900},
		{UserID: "usr-002", Category: "Travel", Amount: 150},
	} {
		if _, err := svc.Create(cmd); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	listed, err := svc.ListByOwner(cqrs.ListBudgetsQuery{UserID: "usr-001"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 budgets, got %d", len(listed))
	}
	for _, b := range listed {
		if b.UserID != "usr-001" {
			t.Errorf("foreign budget in listing: %+v", b)
		}
	}
}
