package database

import (
	"gorm.io/gorm"

	"github.com/hacklog-app/hacklog/internal/services"
)

type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

var _ services.Storage = (*Database)(nil)
