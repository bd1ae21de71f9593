package store

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"

	"github.com/meinhoongagan/backoffice-api/models"
)

// MemoryRepository keeps rows in a map keyed by the record's ID field.
// Preload names are accepted and ignored; relation structs are kept exactly
// as they were passed to Create or Save.
type MemoryRepository[T any] struct {
	mu     sync.RWMutex
	rows   map[uint]T
	lastID uint
}

func NewMemoryRepository[T any]() *MemoryRepository[T] {
	return &MemoryRepository[T]{rows: make(map[uint]T)}
}

// NewMemory builds a Store that lives in process memory.
func NewMemory() *Store {
	return &Store{
		Clients:     NewMemoryRepository[models.Client](),
		Properties:  NewMemoryRepository[models.Property](),
		Offers:      NewMemoryRepository[models.Offer](),
		Tasks:       NewMemoryRepository[models.Task](),
		Employees:   NewMemoryRepository[models.Employee](),
		Payrolls:    NewMemoryRepository[models.Payroll](),
		Expenses:    NewMemoryRepository[models.Expense](),
		Invoices:    NewMemoryRepository[models.Invoice](),
		Users:       NewMemoryRepository[models.User](),
		Companies:   NewMemoryRepository[models.Company](),
		SuperAdmins: NewMemoryRepository[models.SuperAdmin](),
	}
}

func idField(rec any) reflect.Value {
	return reflect.ValueOf(rec).Elem().FieldByName("ID")
}

func (m *MemoryRepository[T]) Get(_ context.Context, id uint, _ ...string) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *MemoryRepository[T]) FindOne(_ context.Context, filter *T) (*T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, id := range m.sortedIDs() {
		rec := m.rows[id]
		if matches(filter, &rec) {
			return &rec, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryRepository[T]) List(_ context.Context, _ ...string) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	recs := make([]T, 0, len(m.rows))
	for _, id := range m.sortedIDs() {
		recs = append(recs, m.rows[id])
	}
	return recs, nil
}

func (m *MemoryRepository[T]) Create(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	field := idField(rec)
	id := uint(field.Uint())
	if id == 0 {
		id = m.lastID + 1
		field.SetUint(uint64(id))
	} else if _, exists := m.rows[id]; exists {
		return fmt.Errorf("duplicate primary key %d", id)
	}
	if id > m.lastID {
		m.lastID = id
	}
	m.rows[id] = *rec
	return nil
}

func (m *MemoryRepository[T]) Save(_ context.Context, rec *T, omit ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := uint(idField(rec).Uint())
	stored, exists := m.rows[id]
	if !exists {
		return ErrNotFound
	}
	next := *rec
	nv := reflect.ValueOf(&next).Elem()
	sv := reflect.ValueOf(&stored).Elem()
	for _, name := range omit {
		if f := nv.FieldByName(name); f.IsValid() && f.CanSet() {
			f.Set(sv.FieldByName(name))
		}
	}
	m.rows[id] = next
	return nil
}

func (m *MemoryRepository[T]) Delete(_ context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.rows[id]; !exists {
		return ErrNotFound
	}
	delete(m.rows, id)
	return nil
}

// sortedIDs must be called with the lock held.
func (m *MemoryRepository[T]) sortedIDs() []uint {
	ids := make([]uint, 0, len(m.rows))
	for id := range m.rows {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// matches compares the non-zero top-level fields of filter against rec.
func matches[T any](filter, rec *T) bool {
	fv := reflect.ValueOf(filter).Elem()
	rv := reflect.ValueOf(rec).Elem()
	for i := 0; i < fv.NumField(); i++ {
		f := fv.Field(i)
		if !fv.Type().Field(i).IsExported() || f.IsZero() {
			continue
		}
		if !reflect.DeepEqual(f.Interface(), rv.Field(i).Interface()) {
			return false
		}
	}
	return true
}
