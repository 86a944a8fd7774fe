package db

import (
	"github.com/jakob2230/agridomMobileApp/internal/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func Open(dsn string) (*gorm.DB, error) {
	database, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(database); err != nil {
		return nil, err
	}

	return database, nil
}

func Migrate(database *gorm.DB) error {
	return database.AutoMigrate(
		&models.Company{},
		&models.Position{},
		&models.User{},
		&models.TimeEntry{},
		&models.LeaveRequest{},
	)
}
