package db

import (
	"github.com/taskboard/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(database *gorm.DB) error {
	return database.AutoMigrate(
		&domain.Task{},
	)
}
