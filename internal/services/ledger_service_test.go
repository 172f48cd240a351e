package services

import (
	"testing"
	"time"

	"gorm.io/gorm"

	"costmanager/internal/models"
	"costmanager/internal/stores"
	"costmanager/internal/testutil"
)

func newLedger(db *gorm.DB) LedgerServicer {
	return NewLedgerService(db, stores.NewUserStore(db), stores.NewCostStore(db))
}

func TestAddCost(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		user := testutil.CreateTestUserWithID(t, db, 1)

		cost, err := svc.AddCost(1, "lunch", models.CategoryFood, 50, time.Time{})
		testutil.AssertNoError(t, err)

		if cost.ID == 0 {
			t.Error("expected persisted cost to have an ID")
		}
		if cost.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to default to now")
		}
		if cost.Sum != 50 || cost.Category != models.CategoryFood {
			t.Errorf("unexpected cost %+v", cost)
		}

		reloaded, err := stores.NewUserStore(db).FindByUserID(user.UserID)
		testutil.AssertNoError(t, err)
		if reloaded.TotalCosts != 50 {
			t.Errorf("expected total 50, got %v", reloaded.TotalCosts)
		}
	})

	t.Run("total_accumulates_across_calls", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		testutil.CreateTestUserWithID(t, db, 1)

		_, err := svc.AddCost(1, "lunch", models.CategoryFood, 50, time.Time{})
		testutil.AssertNoError(t, err)
		_, err = svc.AddCost(1, "rent", models.CategoryHousing, 30, time.Time{})
		testutil.AssertNoError(t, err)

		user, err := stores.NewUserStore(db).FindByUserID(1)
		testutil.AssertNoError(t, err)
		if user.TotalCosts != 80 {
			t.Errorf("expected total 80, got %v", user.TotalCosts)
		}
	})

	t.Run("missing_fields", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		testutil.CreateTestUserWithID(t, db, 1)

		cases := []struct {
			name        string
			userID      int64
			description string
			category    models.Category
			sum         float64
		}{
			{"zero_user_id", 0, "lunch", models.CategoryFood, 50},
			{"empty_description", 1, "", models.CategoryFood, 50},
			{"empty_category", 1, "lunch", "", 50},
			{"zero_sum", 1, "lunch", models.CategoryFood, 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := svc.AddCost(tc.userID, tc.description, tc.category, tc.sum, time.Time{})
				testutil.AssertAppError(t, err, "VALIDATION_ERROR")
			})
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		_, err := svc.AddCost(404, "lunch", models.CategoryFood, 50, time.Time{})
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})

	t.Run("validation_precedes_user_lookup", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		// Both the sum and the user are bad; the field check wins.
		_, err := svc.AddCost(404, "lunch", models.CategoryFood, 0, time.Time{})
		testutil.AssertAppError(t, err, "VALIDATION_ERROR")
	})

	t.Run("caller_supplied_date_trusted_verbatim", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		testutil.CreateTestUserWithID(t, db, 1)

		// Far in the future, no bounds check applies.
		when := time.Date(2099, 7, 4, 12, 0, 0, 0, time.UTC)
		cost, err := svc.AddCost(1, "time machine", models.CategoryEducation, 9.99, when)
		testutil.AssertNoError(t, err)

		if !cost.CreatedAt.Equal(when) {
			t.Errorf("expected CreatedAt %v, got %v", when, cost.CreatedAt)
		}
	})

	t.Run("unknown_category_is_persisted", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		testutil.CreateTestUserWithID(t, db, 1)

		_, err := svc.AddCost(1, "cinema", "entertainment", 15, time.Time{})
		testutil.AssertNoError(t, err)

		costs, err := svc.GetUserCosts(1, nil)
		testutil.AssertNoError(t, err)
		if len(costs) != 1 || costs[0].Category != "entertainment" {
			t.Fatalf("expected the unknown-category cost to be stored, got %v", costs)
		}

		// The total still advances for it.
		user, err := stores.NewUserStore(db).FindByUserID(1)
		testutil.AssertNoError(t, err)
		if user.TotalCosts != 15 {
			t.Errorf("expected total 15, got %v", user.TotalCosts)
		}
	})
}

func TestGetUserCosts(t *testing.T) {
	t.Run("category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		testutil.CreateTestUserWithID(t, db, 1)
		now := time.Now().UTC()
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, now)
		testutil.CreateTestCost(t, db, 1, models.CategorySport, 20, now)

		sport := models.CategorySport
		costs, err := svc.GetUserCosts(1, &sport)
		testutil.AssertNoError(t, err)

		if len(costs) != 1 || costs[0].Category != models.CategorySport {
			t.Fatalf("expected only sport costs, got %v", costs)
		}
	})

	t.Run("unknown_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := newLedger(db)

		_, err := svc.GetUserCosts(404, nil)
		testutil.AssertAppError(t, err, "USER_NOT_FOUND")
	})
}
