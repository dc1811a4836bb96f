package storage

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the global database instance
var DB *gorm.DB

// Init initializes the database connection
func Init(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return err
	}

	// Auto-migrate schemas
	if err := DB.AutoMigrate(
		&Thread{},
		&Message{},
		&SavedReply{},
		&Lead{},
		&Task{},
		&WorkspaceProfile{},
	); err != nil {
		return err
	}

	log.Printf("[Storage] Database initialized: %s", dbPath)
	return nil
}
