package services

import (
	"time"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
	"costmanager/internal/stores"
)

// reportService builds monthly category-partitioned cost reports.
type reportService struct {
	costs stores.CostStore
}

// NewReportService creates a new ReportServicer.
func NewReportService(costs stores.CostStore) ReportServicer {
	return &reportService{costs: costs}
}

// GetMonthlyReport returns the user's costs for the given month, grouped
// into the fixed report categories. The report window is the half-open
// interval [first of month, first of next month), which rolls December
// over into January without special-casing. The user is not required to
// exist; an unknown user yields an all-empty report.
func (s *reportService) GetMonthlyReport(userID int64, year, month int) (*MonthlyReport, error) {
	if userID == 0 || year == 0 || month == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrValidation, "userid, year and month are required")
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	costs, err := s.costs.FindByUserAndDateRange(userID, start, end)
	if err != nil {
		return nil, err
	}

	// One single-key group per known category, in the fixed order. Costs
	// with a category outside the set are silently dropped from the report
	// even though they remain in storage.
	groups := make([]CategoryGroup, 0, len(models.Categories))
	for _, category := range models.Categories {
		items := make([]ReportItem, 0)
		for _, cost := range costs {
			if cost.Category != category {
				continue
			}
			items = append(items, ReportItem{
				Sum:         cost.Sum,
				Description: cost.Description,
				Day:         cost.CreatedAt.Day(),
			})
		}
		groups = append(groups, CategoryGroup{category: items})
	}

	return &MonthlyReport{
		UserID: userID,
		Year:   year,
		Month:  month,
		Costs:  groups,
	}, nil
}
