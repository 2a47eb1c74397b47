package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/middleware"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// DashboardServicer defines the read operations used by DashboardHandler.
type DashboardServicer interface {
	Summary(cqrs.DashboardSummaryQuery) (*models.DashboardSummary, error)
}

// DashboardHandler serves the aggregated trend and forecast view.
type DashboardHandler struct {
	dashboard DashboardServicer
}

func NewDashboardHandler(dashboard DashboardServicer) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)

	summary, err := h.dashboard.Summary(cqrs.DashboardSummaryQuery{UserID: user.ID})
	if err != nil {
		middleware.RespondWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
