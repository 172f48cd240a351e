// Package stores provides the persistence layer for users and cost entries.
// Stores are injected into the services so the core logic can be exercised
// against an in-memory database in tests.
package stores

import (
	"errors"

	"gorm.io/gorm"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
)

// UserStore defines the persistence contract for users.
type UserStore interface {
	// FindByUserID looks a user up by the externally assigned business id.
	FindByUserID(userID int64) (*models.User, error)
	// Save persists the user, overwriting the stored record with the same id.
	Save(user *models.User) error
	// WithTx returns a store bound to the given transaction handle.
	WithTx(tx *gorm.DB) UserStore
}

type userStore struct {
	db *gorm.DB
}

// NewUserStore creates a gorm-backed UserStore.
func NewUserStore(db *gorm.DB) UserStore {
	return &userStore{db: db}
}

func (s *userStore) FindByUserID(userID int64) (*models.User, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrStore, err)
	}
	return &user, nil
}

func (s *userStore) Save(user *models.User) error {
	if err := s.db.Save(user).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStore, err)
	}
	return nil
}

func (s *userStore) WithTx(tx *gorm.DB) UserStore {
	return &userStore{db: tx}
}
