package integration

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"costmanager/internal/handlers"
	"costmanager/internal/logger"
	"costmanager/internal/middleware"
	"costmanager/internal/models"
	"costmanager/internal/services"
	"costmanager/internal/stores"
	"costmanager/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:itestdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Cost{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Stores and services
	userStore := stores.NewUserStore(db)
	costStore := stores.NewCostStore(db)
	userService := services.NewUserService(userStore)
	ledgerService := services.NewLedgerService(db, userStore, costStore)
	reportService := services.NewReportService(costStore)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	costHandler := handlers.NewCostHandler(ledgerService, reportService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	api := router.Group("/api")
	api.POST("/add", costHandler.AddCost)
	api.GET("/report", costHandler.GetMonthlyReport)
	api.GET("/about", handlers.About)

	users := api.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("/:userId", userHandler.GetUserDetails)
	users.GET("/:userId/costs", costHandler.GetUserCosts)

	return &testApp{DB: db, Router: router}
}

func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
