package services

import (
	"time"

	"costmanager/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(userID int64, firstName, lastName string, birthday *time.Time, maritalStatus string) (*models.User, error)
	GetUserByUserID(userID int64) (*models.User, error)
	EnsureUser(userID int64, firstName, lastName string, birthday *time.Time, maritalStatus string) (*models.User, error)
}

// LedgerServicer defines the contract for the cost ledger.
type LedgerServicer interface {
	AddCost(userID int64, description string, category models.Category, sum float64, createdAt time.Time) (*models.Cost, error)
	GetUserCosts(userID int64, category *models.Category) ([]models.Cost, error)
}

// ReportItem is a single cost projected into a monthly report group.
// Day is the 1-based day-of-month the cost was created on.
type ReportItem struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// CategoryGroup is a single-key grouping of report items under their category.
type CategoryGroup map[models.Category][]ReportItem

// MonthlyReport is the category-partitioned report for one user and month.
// Costs always holds exactly one group per report category, in the fixed
// category order, so empty categories marshal as empty lists rather than
// being omitted.
type MonthlyReport struct {
	UserID int64           `json:"userid"`
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Costs  []CategoryGroup `json:"costs"`
}

// ReportServicer defines the contract for monthly report generation.
type ReportServicer interface {
	GetMonthlyReport(userID int64, year, month int) (*MonthlyReport, error)
}
