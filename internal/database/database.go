package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Jocko2121/flashcard-app/internal/entities"
)

// Default study preferences seeded on first start.
var defaultSettings = map[string]string{
	entities.SettingKeyShowCompleted: "true",
	entities.SettingKeyTheme:         "light",
	entities.SettingKeyStudyMode:     "normal",
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.CardSet{},
		&entities.Card{},
		&entities.Setting{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedSettings(); err != nil {
		return nil, fmt.Errorf("failed to seed settings: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedSettings() error {
	for key, value := range defaultSettings {
		var existing entities.Setting
		result := d.DB.Where("key = ?", key).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&entities.Setting{Key: key, Value: value}).Error; err != nil {
				return fmt.Errorf("failed to create setting %s: %w", key, err)
			}
		}
	}
	return nil
}
