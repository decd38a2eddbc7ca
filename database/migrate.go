package database

import (
	"github.com/mfgops/tpm-tracker/models"
	"gorm.io/gorm"
)

// Migrate brings the store up to the declared target schema. It runs once
// at startup and tolerates a fresh database: tables and columns are created
// when absent, so first run needs no manual setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Asset{},
		&models.PM{},
		&models.WorkOrder{},
		&models.OperatorCheck{},
		&models.Breakdown{},
		&models.CompletedHistoryEntry{},
	)
}
