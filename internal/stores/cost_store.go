package stores

import (
	"time"

	"gorm.io/gorm"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
)

// CostStore defines the persistence contract for cost entries.
type CostStore interface {
	// Create persists a new cost entry, assigning CreatedAt if unset.
	Create(cost *models.Cost) error
	// FindByUserAndDateRange returns every cost of the user whose CreatedAt
	// falls in the half-open interval [start, end). No ordering guarantee;
	// duplicate rows in storage are passed through as-is.
	FindByUserAndDateRange(userID int64, start, end time.Time) ([]models.Cost, error)
	// FindByUser returns every cost of the user, optionally restricted to a
	// single category.
	FindByUser(userID int64, category *models.Category) ([]models.Cost, error)
	// WithTx returns a store bound to the given transaction handle.
	WithTx(tx *gorm.DB) CostStore
}

type costStore struct {
	db *gorm.DB
}

// NewCostStore creates a gorm-backed CostStore.
func NewCostStore(db *gorm.DB) CostStore {
	return &costStore{db: db}
}

func (s *costStore) Create(cost *models.Cost) error {
	if cost.CreatedAt.IsZero() {
		cost.CreatedAt = time.Now().UTC()
	}
	if err := s.db.Create(cost).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStore, err)
	}
	return nil
}

func (s *costStore) FindByUserAndDateRange(userID int64, start, end time.Time) ([]models.Cost, error) {
	costs := make([]models.Cost, 0)
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Find(&costs).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return costs, nil
}

func (s *costStore) FindByUser(userID int64, category *models.Category) ([]models.Cost, error) {
	q := s.db.Where("user_id = ?", userID)
	if category != nil {
		q = q.Where("category = ?", *category)
	}

	costs := make([]models.Cost, 0)
	if err := q.Find(&costs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return costs, nil
}

func (s *costStore) WithTx(tx *gorm.DB) CostStore {
	return &costStore{db: tx}
}
