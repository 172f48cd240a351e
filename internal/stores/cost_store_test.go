package stores

import (
	"testing"
	"time"

	"costmanager/internal/models"
	"costmanager/internal/testutil"
)

func TestCostStore_Create(t *testing.T) {
	t.Run("assigns_created_at_when_absent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		cost := &models.Cost{UserID: 1, Description: "lunch", Category: models.CategoryFood, Sum: 12}
		testutil.AssertNoError(t, store.Create(cost))

		if cost.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be assigned")
		}
		if cost.ID == 0 {
			t.Error("expected non-zero cost ID")
		}
	})

	t.Run("keeps_caller_supplied_created_at", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		supplied := time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC)
		cost := &models.Cost{UserID: 1, Description: "rent", Category: models.CategoryHousing, Sum: 800, CreatedAt: supplied}
		testutil.AssertNoError(t, store.Create(cost))

		if !cost.CreatedAt.Equal(supplied) {
			t.Errorf("expected CreatedAt %v, got %v", supplied, cost.CreatedAt)
		}
	})
}

func TestCostStore_FindByUserAndDateRange(t *testing.T) {
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("half_open_interval", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, start)                      // exactly start: included
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 20, end.Add(-time.Nanosecond)) // just before end: included
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 30, end)                       // exactly end: excluded
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 40, start.Add(-time.Second))   // before start: excluded

		costs, err := store.FindByUserAndDateRange(1, start, end)
		testutil.AssertNoError(t, err)

		if len(costs) != 2 {
			t.Fatalf("expected 2 costs in range, got %d", len(costs))
		}
		for _, c := range costs {
			if c.Sum != 10 && c.Sum != 20 {
				t.Errorf("unexpected cost with sum %v in range", c.Sum)
			}
		}
	})

	t.Run("filters_by_user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, start)
		testutil.CreateTestCost(t, db, 2, models.CategoryFood, 20, start)

		costs, err := store.FindByUserAndDateRange(1, start, end)
		testutil.AssertNoError(t, err)

		if len(costs) != 1 || costs[0].UserID != 1 {
			t.Fatalf("expected exactly the costs of user 1, got %v", costs)
		}
	})

	t.Run("duplicates_pass_through", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		when := start.Add(24 * time.Hour)
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, when)
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, when)

		costs, err := store.FindByUserAndDateRange(1, start, end)
		testutil.AssertNoError(t, err)

		if len(costs) != 2 {
			t.Fatalf("expected duplicate rows to pass through, got %d", len(costs))
		}
	})

	t.Run("empty_result_is_not_nil", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		costs, err := store.FindByUserAndDateRange(1, start, end)
		testutil.AssertNoError(t, err)
		if costs == nil {
			t.Fatal("expected empty slice, got nil")
		}
	})
}

func TestCostStore_FindByUser(t *testing.T) {
	t.Run("all_categories_including_unknown", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		now := time.Now().UTC()
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, now)
		testutil.CreateTestCost(t, db, 1, "entertainment", 20, now)

		costs, err := store.FindByUser(1, nil)
		testutil.AssertNoError(t, err)

		if len(costs) != 2 {
			t.Fatalf("expected 2 costs, got %d", len(costs))
		}
	})

	t.Run("category_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		store := NewCostStore(db)

		now := time.Now().UTC()
		testutil.CreateTestCost(t, db, 1, models.CategoryFood, 10, now)
		testutil.CreateTestCost(t, db, 1, models.CategorySport, 20, now)

		food := models.CategoryFood
		costs, err := store.FindByUser(1, &food)
		testutil.AssertNoError(t, err)

		if len(costs) != 1 || costs[0].Category != models.CategoryFood {
			t.Fatalf("expected only food costs, got %v", costs)
		}
	})
}
