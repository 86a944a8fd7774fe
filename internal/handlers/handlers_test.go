package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/config"
	"github.com/jakob2230/agridomMobileApp/internal/models"
	"github.com/jakob2230/agridomMobileApp/internal/utils"
)

func testConfig() config.Config {
	return config.Config{JwtSecret: "test-secret", JwtAccessMinutes: 60}
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Company{},
		&models.Position{},
		&models.User{},
		&models.TimeEntry{},
		&models.LeaveRequest{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, employeeID string, pin string) models.User {
	t.Helper()
	hash, err := utils.HashPin(pin)
	if err != nil {
		t.Fatalf("hash pin: %v", err)
	}
	user := models.User{
		EmployeeID:       employeeID,
		FirstName:        "Juan",
		Surname:          "Dela Cruz",
		PinHash:          hash,
		IsActive:         true,
		LeaveCredits:     16,
		SickLeaveCredits: 10,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func postJSON(t *testing.T, router *gin.Engine, path string, body string, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return doJSON(t, router, http.MethodPost, path, body, token)
}

func doJSON(t *testing.T, router *gin.Engine, method string, path string, body string, token string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func getJSON(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	return doJSON(t, router, http.MethodGet, path, "", "")
}

func init() {
	gin.SetMode(gin.TestMode)
}
