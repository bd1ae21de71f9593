package store

import (
	"context"
	"errors"

	"github.com/meinhoongagan/backoffice-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements Repository on a gorm connection.
type GormRepository[T any] struct {
	db *gorm.DB
}

func NewGormRepository[T any](db *gorm.DB) *GormRepository[T] {
	return &GormRepository[T]{db: db}
}

// NewGorm builds a Store backed by db.
func NewGorm(db *gorm.DB) *Store {
	return &Store{
		Clients:     NewGormRepository[models.Client](db),
		Properties:  NewGormRepository[models.Property](db),
		Offers:      NewGormRepository[models.Offer](db),
		Tasks:       NewGormRepository[models.Task](db),
		Employees:   NewGormRepository[models.Employee](db),
		Payrolls:    NewGormRepository[models.Payroll](db),
		Expenses:    NewGormRepository[models.Expense](db),
		Invoices:    NewGormRepository[models.Invoice](db),
		Users:       NewGormRepository[models.User](db),
		Companies:   NewGormRepository[models.Company](db),
		SuperAdmins: NewGormRepository[models.SuperAdmin](db),
	}
}

func (r *GormRepository[T]) query(ctx context.Context, preload []string) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, rel := range preload {
		q = q.Preload(rel)
	}
	return q
}

func (r *GormRepository[T]) Get(ctx context.Context, id uint, preload ...string) (*T, error) {
	var rec T
	if err := r.query(ctx, preload).First(&rec, id).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *GormRepository[T]) FindOne(ctx context.Context, filter *T) (*T, error) {
	var rec T
	if err := r.db.WithContext(ctx).Where(filter).First(&rec).Error; err != nil {
		return nil, translate(err)
	}
	return &rec, nil
}

func (r *GormRepository[T]) List(ctx context.Context, preload ...string) ([]T, error) {
	var recs []T
	if err := r.query(ctx, preload).Order("id").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *GormRepository[T]) Create(ctx context.Context, rec *T) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
}

func (r *GormRepository[T]) Save(ctx context.Context, rec *T, omit ...string) error {
	return r.db.WithContext(ctx).Omit(append(omit, clause.Associations)...).Save(rec).Error
}

func (r *GormRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
