package services

import (
	"context"
	"errors"

	"github.com/meinhoongagan/backoffice-api/store"
)

// existing fetches the row id points at. A missing row is a
// ReferenceNotFound failure carrying msg.
func existing[T any](ctx context.Context, repo store.Repository[T], id uint, msg string) (*T, error) {
	rec, err := repo.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, referenceNotFound(msg)
	}
	if err != nil {
		return nil, internal("Internal server error", err)
	}
	return rec, nil
}

// existingOrNew resolves a reference fragment. A non-zero id must point at an
// existing row. A zero id yields the record built from the fragment, which
// the caller persists. The second result reports whether the record is new.
// Nothing is written here.
func existingOrNew[T any](ctx context.Context, repo store.Repository[T], id uint, build func() (*T, error), msg string) (*T, bool, error) {
	if id != 0 {
		rec, err := existing(ctx, repo, id, msg)
		return rec, false, err
	}
	rec, err := build()
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

// lookup fetches a row for a read or write addressed by path id.
func lookup[T any](ctx context.Context, repo store.Repository[T], id uint, msg string, preload ...string) (*T, error) {
	rec, err := repo.Get(ctx, id, preload...)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound(msg)
	}
	if err != nil {
		return nil, internal("Internal server error", err)
	}
	return rec, nil
}

// remove deletes by id, reporting a missing row as not found.
func remove[T any](ctx context.Context, repo store.Repository[T], id uint, msg string) error {
	err := repo.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return notFound(msg)
	}
	if err != nil {
		return internal("Internal server error", err)
	}
	return nil
}

func list[T any](ctx context.Context, repo store.Repository[T], preload ...string) ([]T, error) {
	recs, err := repo.List(ctx, preload...)
	if err != nil {
		return nil, internal("Internal server error", err)
	}
	return recs, nil
}
