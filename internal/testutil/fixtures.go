package testutil

import (
	"sync/atomic"
	"testing"
	"time"

	"costmanager/internal/models"

	"gorm.io/gorm"
)

// counter provides unique business ids across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a fresh unique business id.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithID(t, db, 100000+nextID())
}

// CreateTestUserWithID creates a user with the given business id.
func CreateTestUserWithID(t *testing.T, db *gorm.DB, userID int64) *models.User {
	t.Helper()

	user := &models.User{
		UserID:    userID,
		FirstName: "Test",
		LastName:  "User",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestCost persists a cost directly, bypassing the ledger service.
// The user's running total is NOT advanced.
func CreateTestCost(t *testing.T, db *gorm.DB, userID int64, category models.Category, sum float64, createdAt time.Time) *models.Cost {
	t.Helper()

	cost := &models.Cost{
		UserID:      userID,
		Description: "test cost",
		Category:    category,
		Sum:         sum,
		CreatedAt:   createdAt,
	}
	if err := db.Create(cost).Error; err != nil {
		t.Fatalf("failed to create test cost: %v", err)
	}
	return cost
}
