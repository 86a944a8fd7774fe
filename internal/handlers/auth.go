package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/config"
	"github.com/jakob2230/agridomMobileApp/internal/models"
	"github.com/jakob2230/agridomMobileApp/internal/utils"
)

type AuthHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

// loginRequest keeps the field names the mobile client already sends:
// "username" carries the employee id and "password" carries the PIN.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(db *gorm.DB, cfg config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing credentials"})
		return
	}

	var user models.User
	if err := h.DB.Where("employee_id = ?", req.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Employee ID not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "This account is inactive"})
		return
	}

	if !utils.CheckPin(user.PinHash, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect PIN"})
		return
	}

	token, err := utils.GenerateAccessToken(user.ID.String(), user.EmployeeID, user.IsStaff, h.Cfg.JwtSecret, h.Cfg.JwtAccessMinutes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	now := time.Now()
	if err := h.DB.Model(&user).Updates(map[string]interface{}{
		"last_login":     now,
		"if_first_login": false,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Login successful",
		"redirect":   "maindash",
		"first_name": user.FirstName,
		"surname":    user.Surname,
		"token":      token,
	})
}
