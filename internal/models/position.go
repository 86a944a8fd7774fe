package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Position struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	Title     string    `gorm:"size:255;uniqueIndex;not null" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *Position) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
