package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeEntry struct {
	ID        uuid.UUID  `gorm:"type:char(36);primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:char(36);index;not null" json:"userId"`
	User      *User      `gorm:"constraint:OnDelete:CASCADE" json:"user,omitempty"`
	TimeIn    time.Time  `gorm:"index;not null" json:"timeIn"`
	TimeOut   *time.Time `json:"timeOut,omitempty"`
	Image     string     `gorm:"type:text" json:"image,omitempty"`
	Location  string     `gorm:"size:255" json:"location,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func (e *TimeEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
