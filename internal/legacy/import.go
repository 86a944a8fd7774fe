// Package legacy translates the flat pre-migration users table into the
// normalized Company/Position/User schema. One-shot batch, not part of the
// server process.
package legacy

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/models"
	"github.com/jakob2230/agridomMobileApp/internal/utils"
)

// LegacyUser maps the old flat table. Company and position are plain
// strings there, and an integer status stands in for the active flag.
type LegacyUser struct {
	ID         uint       `gorm:"primaryKey"`
	EmployeeID string     `gorm:"size:6"`
	FirstName  string     `gorm:"size:100"`
	Surname    string     `gorm:"size:100"`
	Company    string     `gorm:"size:100"`
	Position   string     `gorm:"size:100"`
	BirthDate  *time.Time `gorm:"column:birth_date"`
	DateHired  *time.Time `gorm:"column:date_hired"`
	Pin        string     `gorm:"size:4"`
	Status     *int
	PresetName string `gorm:"size:100"`
}

func (LegacyUser) TableName() string { return "users" }

type Result struct {
	Migrated int
	Failed   int
}

// Run copies every legacy row into the new schema. Rows that collide on
// employee_id (a re-run, or dirty legacy data) are skipped and counted,
// the batch keeps going.
func Run(legacyDB *gorm.DB, targetDB *gorm.DB) (Result, error) {
	var result Result

	var rows []LegacyUser
	if err := legacyDB.Find(&rows).Error; err != nil {
		return result, fmt.Errorf("read legacy users: %w", err)
	}

	for _, row := range rows {
		if err := importRow(targetDB, row); err != nil {
			log.Printf("skip legacy user %s: %v", row.EmployeeID, err)
			result.Failed++
			continue
		}
		log.Printf("migrated user %s", row.EmployeeID)
		result.Migrated++
	}

	return result, nil
}

func importRow(db *gorm.DB, row LegacyUser) error {
	user := models.User{
		EmployeeID: row.EmployeeID,
		FirstName:  row.FirstName,
		Surname:    row.Surname,
		BirthDate:  row.BirthDate,
		DateHired:  row.DateHired,
		PresetName: row.PresetName,
		IsActive:   row.Status != nil && *row.Status != 0,
	}

	if row.Pin != "" {
		hash, err := utils.HashPin(row.Pin)
		if err != nil {
			return fmt.Errorf("hash pin: %w", err)
		}
		user.PinHash = hash
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if row.Company != "" {
			var company models.Company
			if err := tx.Where(models.Company{Name: row.Company}).
				FirstOrCreate(&company).Error; err != nil {
				return fmt.Errorf("company %q: %w", row.Company, err)
			}
			user.CompanyID = &company.ID
		}

		if row.Position != "" {
			var position models.Position
			if err := tx.Where(models.Position{Title: row.Position}).
				FirstOrCreate(&position).Error; err != nil {
				return fmt.Errorf("position %q: %w", row.Position, err)
			}
			user.PositionID = &position.ID
		}

		return tx.Create(&user).Error
	})
}
