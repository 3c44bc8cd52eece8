package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fjordcruice/internal/models/db_models"
)

// InitPostgresql connects to the catalogue database. Returns nil when
// POSTGRES_URL is unset; the app then serves the built-in seed catalogue.
func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Println("POSTGRES_URL not set, using seed catalogue")
		return nil
	}

	connectionPool, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if err := connectionPool.AutoMigrate(
		&db_models.Tour{},
		&db_models.TourTranslation{},
		&db_models.Category{},
	); err != nil {
		log.Printf("Error migrating catalogue schema: %v", err)
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}
