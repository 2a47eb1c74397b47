package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/middleware"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/utils"
)

// BudgetServicer defines the budget operations used by the handler.
type BudgetServicer interface {
	Create(cqrs.CreateBudgetCommand) (*models.Budget, error)
	UpdateAmount(cqrs.UpdateBudgetCommand) error
	Delete(cqrs.DeleteBudgetCommand) error
	ListByOwner(cqrs.ListBudgetsQuery) ([]models.Budget, error)
}

// BudgetHandler handles budget HTTP requests.
type BudgetHandler struct {
	budgets BudgetServicer
}

type CreateBudgetRequest struct {
	Category string  `json:"category" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBudgetRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

func NewBudgetHandler(budgets BudgetServicer) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	var req CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	budget, err := h.budgets.Create(cqrs.CreateBudgetCommand{
		UserID:   user.ID,
		Category: req.Category,
		Amount:   req.Amount,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, budget)
}

func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	budgetID := c.Param("budgetId")
	user, _ := middleware.CurrentUser(c)

	if !utils.ValidateBudgetID(budgetID) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	var req UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if validationErrors := middleware.ValidateRequest(req); validationErrors != nil {
		middleware.RespondWithValidationError(c, validationErrors)
		return
	}

	if err := h.budgets.UpdateAmount(cqrs.UpdateBudgetCommand{
		BudgetID: budgetID,
		UserID:   user.ID,
		Amount:   req.Amount,
	}); err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	budgetID := c.Param("budgetId")
	user, _ := middleware.CurrentUser(c)

	if !utils.ValidateBudgetID(budgetID) {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid ID")
		return
	}

	if err := h.budgets.Delete(cqrs.DeleteBudgetCommand{
		BudgetID: budgetID,
		UserID:   user.ID,
	}); err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	budgets, err := h.budgets.ListByOwner(cqrs.ListBudgetsQuery{UserID: user.ID})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}
	if budgets == nil {
		budgets = []models.Budget{}
	}

	c.JSON(http.StatusOK, budgets)
}
