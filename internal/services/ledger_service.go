package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
	"costmanager/internal/stores"
)

// ledgerService appends cost entries and keeps the owning user's
// denormalized running total in step with them.
type ledgerService struct {
	db    *gorm.DB
	users stores.UserStore
	costs stores.CostStore
}

// NewLedgerService creates a new LedgerServicer.
func NewLedgerService(db *gorm.DB, users stores.UserStore, costs stores.CostStore) LedgerServicer {
	return &ledgerService{db: db, users: users, costs: costs}
}

// AddCost persists a new cost entry and advances the user's total_costs by
// its sum. Both writes happen in a single database transaction, so readers
// never observe a cost whose sum is not yet reflected in the total. The
// read-modify-write on the total carries no row lock, so concurrent writers
// for the same user can lose updates.
//
// Presence is checked with a literal falsy test: a sum of 0, an empty
// string, or a zero user id all count as missing.
func (s *ledgerService) AddCost(userID int64, description string, category models.Category, sum float64, createdAt time.Time) (*models.Cost, error) {
	if userID == 0 || description == "" || category == "" || sum == 0 {
		return nil, apperrors.ErrMissingFields
	}

	// The user must exist before anything is written. The category is
	// deliberately not checked against the known set here; unknown
	// categories are persisted and only filtered out at report time.
	user, err := s.users.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	cost := &models.Cost{
		UserID:      userID,
		Description: description,
		Category:    category,
		Sum:         sum,
		CreatedAt:   createdAt,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.costs.WithTx(tx).Create(cost); err != nil {
			return err
		}
		user.TotalCosts += sum
		return s.users.WithTx(tx).Save(user)
	})
	if err != nil {
		return nil, err
	}

	return cost, nil
}

// GetUserCosts lists the user's persisted costs, optionally filtered by
// category. Entries with categories outside the report set are included;
// this is the only read path on which they are visible.
func (s *ledgerService) GetUserCosts(userID int64, category *models.Category) ([]models.Cost, error) {
	if _, err := s.users.FindByUserID(userID); err != nil {
		return nil, err
	}
	return s.costs.FindByUser(userID, category)
}
