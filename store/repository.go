// Package store holds the record-oriented storage layer. Every entity kind is
// reached through a Repository so workflows receive their storage context
// explicitly instead of through a package-level handle.
package store

import (
	"context"
	"errors"

	"github.com/meinhoongagan/backoffice-api/models"
)

// ErrNotFound is returned when no row matches an id or filter.
var ErrNotFound = errors.New("record not found")

// Repository is the storage contract for one entity kind.
type Repository[T any] interface {
	// Get fetches one row by primary key, eagerly attaching the named relations.
	Get(ctx context.Context, id uint, preload ...string) (*T, error)
	// FindOne returns the first row whose fields equal the non-zero fields of filter.
	FindOne(ctx context.Context, filter *T) (*T, error)
	List(ctx context.Context, preload ...string) ([]T, error)
	// Create inserts rec and writes the assigned id back into it. Relation
	// structs on rec are not written; set the foreign key fields instead.
	Create(ctx context.Context, rec *T) error
	// Save overwrites the columns of an existing row. Fields named in omit
	// keep their stored values.
	Save(ctx context.Context, rec *T, omit ...string) error
	Delete(ctx context.Context, id uint) error
}

// Store groups the repositories of every entity kind.
type Store struct {
	Clients     Repository[models.Client]
	Properties  Repository[models.Property]
	Offers      Repository[models.Offer]
	Tasks       Repository[models.Task]
	Employees   Repository[models.Employee]
	Payrolls    Repository[models.Payroll]
	Expenses    Repository[models.Expense]
	Invoices    Repository[models.Invoice]
	Users       Repository[models.User]
	Companies   Repository[models.Company]
	SuperAdmins Repository[models.SuperAdmin]
}
