package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LeaveStatusPending  = "Pending"
	LeaveStatusApproved = "Approved"
	LeaveStatusRejected = "Rejected"

	PaymentWithPay    = "with pay"
	PaymentWithoutPay = "w/o pay"
)

type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:char(36);index;not null" json:"userId"`
	User          *User     `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	LeaveType     string    `gorm:"size:50;not null" json:"leaveType"`
	StartDate     time.Time `gorm:"index;not null" json:"startDate"`
	EndDate       time.Time `gorm:"not null" json:"endDate"`
	LeaveDays     int       `gorm:"not null" json:"leaveDays"`
	Reason        string    `gorm:"size:500" json:"reason"`
	Status        string    `gorm:"size:20;index;not null;default:Pending" json:"status"`
	PaymentOption string    `gorm:"size:20;not null;default:with pay" json:"payment_option"`
	SubmittedAt   time.Time `gorm:"index;not null" json:"submitted_at"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (r *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// IsSickLeave reports whether the request draws from sick leave credits.
// The category is free text from the client, matched case-insensitively.
func (r *LeaveRequest) IsSickLeave() bool {
	return IsSickLeaveType(r.LeaveType)
}

func IsSickLeaveType(leaveType string) bool {
	return strings.EqualFold(leaveType, "sick leave")
}
