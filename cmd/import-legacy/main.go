package main

import (
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/jakob2230/agridomMobileApp/internal/config"
	"github.com/jakob2230/agridomMobileApp/internal/db"
	"github.com/jakob2230/agridomMobileApp/internal/legacy"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if cfg.LegacyDbDsn == "" {
		log.Fatal("missing env: LEGACY_DB_DSN")
	}

	legacyDB, err := gorm.Open(mysql.Open(cfg.LegacyDbDsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("legacy db error: %v", err)
	}

	targetDB, err := db.Open(cfg.DbDsn)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}

	result, err := legacy.Run(legacyDB, targetDB)
	if err != nil {
		log.Fatalf("import error: %v", err)
	}

	log.Printf("import done: %d migrated, %d skipped", result.Migrated, result.Failed)
}
