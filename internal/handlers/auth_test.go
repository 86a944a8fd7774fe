package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/models"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	h := NewAuthHandler(db, testConfig())
	router.POST("/api/login/", h.Login)
	return router
}

func TestLoginSuccess(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "EMP001", "1234")
	router := newAuthRouter(db)

	w, body := postJSON(t, router, "/api/login/", `{"username":"EMP001","password":"1234"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %#v", body)
	}
	if body["redirect"] != "maindash" {
		t.Fatalf("expected redirect maindash, got %#v", body["redirect"])
	}
	if body["first_name"] != "Juan" || body["surname"] != "Dela Cruz" {
		t.Fatalf("unexpected name fields: %#v", body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("expected session token in response")
	}

	var stored models.User
	if err := db.Where("employee_id = ?", "EMP001").First(&stored).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.LastLogin == nil {
		t.Fatalf("expected last_login to be set")
	}
	if stored.IfFirstLogin {
		t.Fatalf("expected if_first_login cleared")
	}
}

func TestLoginIncorrectPin(t *testing.T) {
	db := setupTestDB(t)
	seedUser(t, db, "EMP001", "1234")
	router := newAuthRouter(db)

	w, body := postJSON(t, router, "/api/login/", `{"username":"EMP001","password":"9999"}`, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}
	if body["success"] != false || body["message"] != "Incorrect PIN" {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestLoginInactiveAccountRegardlessOfPin(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "EMP001", "1234")
	if err := db.Model(&user).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	router := newAuthRouter(db)

	for _, pin := range []string{"1234", "0000"} {
		w, body := postJSON(t, router, "/api/login/", `{"username":"EMP001","password":"`+pin+`"}`, "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("pin %s: expected 403 got %d", pin, w.Code)
		}
		if body["message"] != "This account is inactive" {
			t.Fatalf("pin %s: unexpected message %#v", pin, body["message"])
		}
	}
}

func TestLoginUnknownEmployee(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter(db)

	w, body := postJSON(t, router, "/api/login/", `{"username":"NOBODY","password":"1234"}`, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
	if body["message"] != "Employee ID not found" {
		t.Fatalf("unexpected message: %#v", body["message"])
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	db := setupTestDB(t)
	router := newAuthRouter(db)

	w, body := postJSON(t, router, "/api/login/", `{"username":"EMP001"}`, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
	if body["message"] != "Missing credentials" {
		t.Fatalf("unexpected message: %#v", body["message"])
	}
}
