package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
	"costmanager/internal/services"
)

// CostHandler handles cost ledger and report requests.
type CostHandler struct {
	ledgerService services.LedgerServicer
	reportService services.ReportServicer
}

// NewCostHandler creates a new CostHandler.
func NewCostHandler(ledgerService services.LedgerServicer, reportService services.ReportServicer) *CostHandler {
	return &CostHandler{ledgerService: ledgerService, reportService: reportService}
}

// AddCostRequest represents the request payload for adding a cost. Every
// required field is rejected when falsy, so a sum of 0 fails binding the
// same way a missing sum does.
type AddCostRequest struct {
	UserID      int64           `json:"userid" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Category    models.Category `json:"category" binding:"required"`
	Sum         float64         `json:"sum" binding:"required"`
	CreatedAt   *string         `json:"createdAt"`
}

// AddCost handles the creation of a new cost entry
// @Summary     Add a cost
// @Description Append a cost entry to the user's ledger and advance the running total
// @Tags        costs
// @Accept      json
// @Produce     json
// @Param       request body AddCostRequest true "Cost details"
// @Success     200 {object} models.Cost "Persisted cost"
// @Failure     400 {object} ErrorResponse "Missing required fields"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /add [post]
func (h *CostHandler) AddCost(c *gin.Context) {
	var req AddCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.ErrMissingFields)
		return
	}

	var createdAt time.Time
	if req.CreatedAt != nil && *req.CreatedAt != "" {
		parsed, err := parseFlexibleTime(*req.CreatedAt)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
			return
		}
		// Caller-supplied creation dates are trusted verbatim.
		createdAt = parsed
	}

	cost, err := h.ledgerService.AddCost(req.UserID, req.Description, req.Category, req.Sum, createdAt)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cost)
}

// GetMonthlyReport handles monthly report requests
// @Summary     Get a monthly report
// @Description Get the user's costs for a month, grouped by the fixed categories
// @Tags        costs
// @Produce     json
// @Param       id    query int true "User id"
// @Param       year  query int true "Report year"
// @Param       month query int true "Report month (1-12)"
// @Success     200 {object} services.MonthlyReport "Monthly report"
// @Failure     400 {object} ErrorResponse "Missing or non-numeric parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /report [get]
func (h *CostHandler) GetMonthlyReport(c *gin.Context) {
	idStr := c.Query("id")
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if idStr == "" || yearStr == "" || monthStr == "" {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation,
			"Missing required query parameters: id, year, month"))
		return
	}

	userID, errID := strconv.ParseInt(idStr, 10, 64)
	year, errYear := strconv.Atoi(yearStr)
	month, errMonth := strconv.Atoi(monthStr)
	if errID != nil || errYear != nil || errMonth != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation,
			"Query parameters id, year, and month must be numbers"))
		return
	}

	report, err := h.reportService.GetMonthlyReport(userID, year, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// listCostsQuery holds the optional filter for listing a user's costs. The
// filter, unlike the write path, only accepts known report categories.
type listCostsQuery struct {
	Category *models.Category `form:"category" binding:"omitempty,cost_category"`
}

// GetUserCosts handles raw cost listing for a user
// @Summary     List a user's costs
// @Description List every persisted cost of the user, including entries with categories outside the report set
// @Tags        costs
// @Produce     json
// @Param       userId   path  int    true  "User id"
// @Param       category query string false "Restrict to one report category"
// @Success     200 {array} models.Cost "Persisted costs"
// @Failure     400 {object} ErrorResponse "Invalid user id or category"
// @Failure     404 {object} ErrorResponse "User not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /users/{userId}/costs [get]
func (h *CostHandler) GetUserCosts(c *gin.Context) {
	userID, err := parseUserIDParam(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query listCostsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrValidation, err.Error()))
		return
	}

	costs, err := h.ledgerService.GetUserCosts(userID, query.Category)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, costs)
}
