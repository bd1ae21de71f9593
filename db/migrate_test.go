package db

import (
	"context"
	"testing"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSuperAdminIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := store.NewMemoryRepository[models.SuperAdmin]()

	created, err := SeedSuperAdmin(ctx, repo, "admin@example.com", "admin1234")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = SeedSuperAdmin(ctx, repo, "admin@example.com", "other")
	require.NoError(t, err)
	assert.False(t, created)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "admin1234", all[0].Password)
}

func TestInitRequiresURL(t *testing.T) {
	_, err := Init("")
	assert.Error(t, err)
}
