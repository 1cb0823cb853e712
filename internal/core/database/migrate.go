package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"housemax/internal/domain"
)

// Migrate applies the catalog schema. It is additive and safe to re-run.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
