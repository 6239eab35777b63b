package database

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"steelworks-backend/internal/config"
	"steelworks-backend/internal/models"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		zap.S().Fatalf("database connection failed: %v", err)
	}

	if err := Migrate(DB); err != nil {
		zap.S().Fatalf("database migration failed: %v", err)
	}

	zap.S().Info("database connected, migration complete")
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Project{},
		&models.HomepageSection{},
		&models.AuditEntry{},
	)
}

// Override replaces the global handle, used by handler tests that run
// against an in-memory database.
func Override(db *gorm.DB) {
	DB = db
}
