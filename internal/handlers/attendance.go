package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/models"
)

type AttendanceHandler struct {
	DB *gorm.DB
}

const (
	displayTimeFormat = "2006-01-02 03:04:05 PM"
	confirmTimeFormat = "2006-01-02 15:04:05"
)

type timeInRequest struct {
	EmployeeID string `json:"employee_id"`
	Image      string `json:"image"`
	Location   string `json:"location"`
}

type timeOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func NewAttendanceHandler(db *gorm.DB) *AttendanceHandler {
	return &AttendanceHandler{DB: db}
}

// dayWindow returns the local-day bounds containing the given instant.
func dayWindow(at time.Time) (time.Time, time.Time) {
	start := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	return start, start.Add(24 * time.Hour)
}

func entryView(entry models.TimeEntry, user models.User) gin.H {
	timeOut := "Not Yet Out"
	if entry.TimeOut != nil {
		timeOut = entry.TimeOut.Format(displayTimeFormat)
	}
	location := entry.Location
	if location == "" {
		location = "N/A"
	}
	return gin.H{
		"name":     user.FullName(),
		"time_in":  entry.TimeIn.Format(displayTimeFormat),
		"time_out": timeOut,
		"location": location,
	}
}

func (h *AttendanceHandler) TimeIn(c *gin.Context) {
	var req timeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	if req.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Employee ID is required"})
		return
	}

	var user models.User
	if err := h.DB.Where("employee_id = ?", req.EmployeeID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Time in failed"})
		return
	}

	now := time.Now()
	dayStart, dayEnd := dayWindow(now)

	// One open entry per user per day; a second time-in must close the
	// first through time-out before opening another.
	var openCount int64
	if err := h.DB.Model(&models.TimeEntry{}).
		Where("user_id = ? AND time_in >= ? AND time_in < ? AND time_out IS NULL", user.ID, dayStart, dayEnd).
		Count(&openCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Time in failed"})
		return
	}
	if openCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "You already have an open time entry for today"})
		return
	}

	entry := models.TimeEntry{
		UserID:   user.ID,
		TimeIn:   now,
		Image:    req.Image,
		Location: req.Location,
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Time in failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Time in recorded",
		"entry":   entryView(entry, user),
	})
}

func (h *AttendanceHandler) TimeOut(c *gin.Context) {
	var req timeOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	if req.EmployeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Employee ID is required"})
		return
	}

	var user models.User
	if err := h.DB.Where("employee_id = ?", req.EmployeeID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Time out failed"})
		return
	}

	now := time.Now()
	dayStart, dayEnd := dayWindow(now)

	var entry models.TimeEntry
	if err := h.DB.Where("user_id = ? AND time_in >= ? AND time_in < ? AND time_out IS NULL", user.ID, dayStart, dayEnd).
		Order("time_in desc").First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No active time entry found for today"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Time out failed"})
		return
	}

	entry.TimeOut = &now
	if err := h.DB.Save(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Time out failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Time out recorded successfully",
		"time_out": entry.TimeOut.Format(confirmTimeFormat),
	})
}

func (h *AttendanceHandler) ListToday(c *gin.Context) {
	dayStart, dayEnd := dayWindow(time.Now())

	var entries []models.TimeEntry
	if err := h.DB.Preload("User").
		Where("time_in >= ? AND time_in < ?", dayStart, dayEnd).
		Order("time_in desc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching attendance"})
		return
	}

	rows := make([]gin.H, 0, len(entries))
	for _, entry := range entries {
		var user models.User
		if entry.User != nil {
			user = *entry.User
		}
		rows = append(rows, entryView(entry, user))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "attendance": rows})
}
