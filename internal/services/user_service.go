package services

import (
	"errors"
	"time"

	apperrors "costmanager/internal/errors"
	"costmanager/internal/models"
	"costmanager/internal/stores"
)

// userService handles user provisioning and lookup.
type userService struct {
	users stores.UserStore
}

// NewUserService creates a new UserServicer.
func NewUserService(users stores.UserStore) UserServicer {
	return &userService{users: users}
}

// CreateUser provisions a new user with a zero running total. The business
// id is assigned by the caller and must be unique.
func (s *userService) CreateUser(userID int64, firstName, lastName string, birthday *time.Time, maritalStatus string) (*models.User, error) {
	if userID == 0 || firstName == "" || lastName == "" {
		return nil, apperrors.ErrMissingFields
	}

	if _, err := s.users.FindByUserID(userID); err == nil {
		return nil, apperrors.ErrDuplicateUser
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}

	user := &models.User{
		UserID:        userID,
		FirstName:     firstName,
		LastName:      lastName,
		Birthday:      birthday,
		MaritalStatus: maritalStatus,
		TotalCosts:    0,
	}
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByUserID retrieves a user by business id.
func (s *userService) GetUserByUserID(userID int64) (*models.User, error) {
	return s.users.FindByUserID(userID)
}

// EnsureUser creates the user if no record with the business id exists yet.
// Used at startup to seed the default user.
func (s *userService) EnsureUser(userID int64, firstName, lastName string, birthday *time.Time, maritalStatus string) (*models.User, error) {
	user, err := s.users.FindByUserID(userID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, err
	}
	return s.CreateUser(userID, firstName, lastName, birthday, maritalStatus)
}
