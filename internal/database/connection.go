package database

import (
	"errors"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hacklog-app/hacklog/internal/models"
)

// Connect opens the Postgres pool from DATABASE_URL and migrates the
// users and projects tables. TranslateError is on so unique-index
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Project{}); err != nil {
		return err
	}

	d.db = db

	return nil
}
