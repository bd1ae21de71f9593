package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"gorm.io/gorm"
)

// Migrate creates or updates the table of every model. It only runs when
// explicitly requested.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SeedSuperAdmin creates the super admin account unless one with the same
// email exists. password is stored as given; hash it beforehand if needed.
// It reports whether an account was created.
func SeedSuperAdmin(ctx context.Context, admins store.Repository[models.SuperAdmin], email, password string) (bool, error) {
	_, err := admins.FindOne(ctx, &models.SuperAdmin{Email: email})
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}
	if err := admins.Create(ctx, &models.SuperAdmin{Email: email, Password: password}); err != nil {
		return false, fmt.Errorf("seed super admin: %w", err)
	}
	return true, nil
}
