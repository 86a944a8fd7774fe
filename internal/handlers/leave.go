package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/models"
)

type LeaveHandler struct {
	DB *gorm.DB
}

const dateFormat = "2006-01-02"

type submitLeaveRequest struct {
	EmployeeID    string `json:"employee_id"`
	LeaveType     string `json:"leaveType"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	LeaveDays     int    `json:"leaveDays"`
	Reason        string `json:"reason"`
	PaymentOption string `json:"payment_option"`
}

func NewLeaveHandler(db *gorm.DB) *LeaveHandler {
	return &LeaveHandler{DB: db}
}

func leaveView(request models.LeaveRequest, user models.User) gin.H {
	return gin.H{
		"id":             request.ID,
		"employee_id":    user.EmployeeID,
		"name":           user.FullName(),
		"leaveType":      request.LeaveType,
		"startDate":      request.StartDate.Format(dateFormat),
		"endDate":        request.EndDate.Format(dateFormat),
		"leaveDays":      request.LeaveDays,
		"reason":         request.Reason,
		"status":         request.Status,
		"payment_option": request.PaymentOption,
		"submitted_at":   request.SubmittedAt.Format(displayTimeFormat),
	}
}

func (h *LeaveHandler) Submit(c *gin.Context) {
	var req submitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid JSON"})
		return
	}

	if req.EmployeeID == "" || req.LeaveType == "" || req.StartDate == "" || req.EndDate == "" || req.LeaveDays == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing required fields"})
		return
	}

	startDate, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format. Use YYYY-MM-DD."})
		return
	}
	endDate, err := time.Parse(dateFormat, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid date format. Use YYYY-MM-DD."})
		return
	}
	if endDate.Before(startDate) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "End date cannot be before start date"})
		return
	}

	// The day count stays caller-supplied for front-end compatibility, but
	// can never be negative or exceed the inclusive date span.
	span := int(endDate.Sub(startDate).Hours()/24) + 1
	if req.LeaveDays < 1 || req.LeaveDays > span {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Leave days do not match the selected date range"})
		return
	}

	paymentOption := req.PaymentOption
	if paymentOption == "" {
		paymentOption = models.PaymentWithPay
	}
	if paymentOption != models.PaymentWithPay && paymentOption != models.PaymentWithoutPay {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment option"})
		return
	}

	var user models.User
	if err := h.DB.Where("employee_id = ?", req.EmployeeID).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Leave request failed"})
		return
	}

	sick := models.IsSickLeaveType(req.LeaveType)
	if sick && user.SickLeaveCredits < 1 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Insufficient sick leave credits."})
		return
	}
	if !sick && user.LeaveCredits < 1 {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Insufficient leave credits."})
		return
	}

	request := models.LeaveRequest{
		UserID:        user.ID,
		LeaveType:     req.LeaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		LeaveDays:     req.LeaveDays,
		Reason:        req.Reason,
		Status:        models.LeaveStatusPending,
		PaymentOption: paymentOption,
		SubmittedAt:   time.Now(),
	}

	// Credit decrement and request insert stand or fall together.
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		column := "leave_credits"
		if sick {
			column = "sick_leave_credits"
		}
		result := tx.Model(&models.User{}).
			Where("id = ? AND "+column+" >= 1", user.ID).
			Update(column, gorm.Expr(column+" - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrInvalidData
		}
		return tx.Create(&request).Error
	}); err != nil {
		if err == gorm.ErrInvalidData {
			message := "Insufficient leave credits."
			if sick {
				message = "Insufficient sick leave credits."
			}
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Leave request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Leave request submitted successfully!",
		"leaveRequest": leaveView(request, user),
	})
}

func (h *LeaveHandler) List(c *gin.Context) {
	query := h.DB.Preload("User").Model(&models.LeaveRequest{})

	if employeeID := c.Query("employee_id"); employeeID != "" {
		var user models.User
		if err := h.DB.Where("employee_id = ?", employeeID).First(&user).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load leave requests"})
			return
		}
		query = query.Where("user_id = ?", user.ID)
	}

	var requests []models.LeaveRequest
	if err := query.Order("submitted_at desc").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load leave requests"})
		return
	}

	views := make([]gin.H, 0, len(requests))
	for _, request := range requests {
		var user models.User
		if request.User != nil {
			user = *request.User
		}
		views = append(views, leaveView(request, user))
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "leaveRequests": views})
}

func (h *LeaveHandler) Approve(c *gin.Context) {
	request, user, ok := h.pendingRequest(c)
	if !ok {
		return
	}

	request.Status = models.LeaveStatusApproved
	if err := h.DB.Model(&models.LeaveRequest{}).
		Where("id = ?", request.ID).
		Update("status", models.LeaveStatusApproved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Approve failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Leave request approved",
		"leaveRequest": leaveView(request, user),
	})
}

func (h *LeaveHandler) Reject(c *gin.Context) {
	request, user, ok := h.pendingRequest(c)
	if !ok {
		return
	}

	// Submission already took one credit; give it back alongside the
	// status flip so neither write lands without the other.
	column := "leave_credits"
	if request.IsSickLeave() {
		column = "sick_leave_credits"
	}
	request.Status = models.LeaveStatusRejected
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.LeaveRequest{}).
			Where("id = ?", request.ID).
			Update("status", models.LeaveStatusRejected).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).
			Where("id = ?", request.UserID).
			Update(column, gorm.Expr(column+" + 1")).Error
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Reject failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"message":      "Leave request rejected",
		"leaveRequest": leaveView(request, user),
	})
}

func (h *LeaveHandler) pendingRequest(c *gin.Context) (models.LeaveRequest, models.User, bool) {
	var request models.LeaveRequest
	var user models.User

	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request id"})
		return request, user, false
	}

	if err := h.DB.Preload("User").First(&request, "id = ?", requestID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Leave request not found"})
			return request, user, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not load leave request"})
		return request, user, false
	}

	if request.Status != models.LeaveStatusPending {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Leave request is not pending"})
		return request, user, false
	}

	if request.User != nil {
		user = *request.User
	}
	return request, user, true
}
