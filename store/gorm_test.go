package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestGormGetFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository[models.Client](db)

	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE "clients"."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_name"}).AddRow(5, "Alpha"))

	c, err := repo.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), c.ID)
	assert.Equal(t, "Alpha", c.ClientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormGetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository[models.Client](db)

	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "client_name"}))

	_, err := repo.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormCreateWritesIDBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository[models.Client](db)

	mock.ExpectQuery(`INSERT INTO "clients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	c := &models.Client{ClientName: "New"}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, uint(7), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeleteMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository[models.Expense](db)

	mock.ExpectExec(`DELETE FROM "expenses"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeleteExistingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewGormRepository[models.Expense](db)

	mock.ExpectExec(`DELETE FROM "expenses"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
