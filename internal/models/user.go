package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID       string     `gorm:"size:6;uniqueIndex;not null" json:"employee_id"`
	FirstName        string     `gorm:"size:100" json:"first_name"`
	Surname          string     `gorm:"size:100" json:"surname"`
	CompanyID        *uuid.UUID `gorm:"type:char(36);index" json:"companyId,omitempty"`
	Company          *Company   `gorm:"constraint:OnDelete:SET NULL" json:"company,omitempty"`
	PositionID       *uuid.UUID `gorm:"type:char(36);index" json:"positionId,omitempty"`
	Position         *Position  `gorm:"constraint:OnDelete:SET NULL" json:"position,omitempty"`
	BirthDate        *time.Time `json:"birthDate,omitempty"`
	DateHired        *time.Time `json:"dateHired,omitempty"`
	PinHash          string     `gorm:"size:255" json:"-"`
	PresetName       string     `gorm:"size:100" json:"presetName,omitempty"`
	IsActive         bool       `gorm:"not null;default:true" json:"isActive"`
	IsStaff          bool       `gorm:"not null;default:false" json:"isStaff"`
	IsSuperuser      bool       `gorm:"not null;default:false" json:"-"`
	IsGuard          bool       `gorm:"not null;default:false" json:"isGuard"`
	IfFirstLogin     bool       `gorm:"not null;default:true" json:"-"`
	LeaveCredits     int        `gorm:"not null;default:16" json:"leaveCredits"`
	SickLeaveCredits int        `gorm:"not null;default:10" json:"sickLeaveCredits"`
	LastLogin        *time.Time `json:"lastLogin,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// FullName is the display form used on attendance and leave views.
func (u *User) FullName() string {
	return u.FirstName + " " + u.Surname
}
