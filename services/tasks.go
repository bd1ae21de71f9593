package services

import (
	"context"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

type TaskService struct {
	store *store.Store
	log   *logrus.Logger
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return list(ctx, s.store.Tasks, "Offer", "Property")
}

func (s *TaskService) Get(ctx context.Context, id uint) (*models.Task, error) {
	return lookup(ctx, s.store.Tasks, id, "Task not found", "Offer", "Property")
}

// Create stores a task on an existing property, optionally tied to an
// existing offer.
func (s *TaskService) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	t.ID = 0
	if err := s.check(ctx, t); err != nil {
		return nil, err
	}
	if err := s.store.Tasks.Create(ctx, t); err != nil {
		return nil, internal("Internal server error", err)
	}
	return t, nil
}

func (s *TaskService) Update(ctx context.Context, id uint, patch Patch[models.Task]) (*models.Task, error) {
	t, err := lookup(ctx, s.store.Tasks, id, "Task not found")
	if err != nil {
		return nil, err
	}
	if err := patch(t); err != nil {
		return nil, validation("Cannot parse JSON")
	}
	t.ID = id
	if err := s.check(ctx, t); err != nil {
		return nil, err
	}
	if err := s.store.Tasks.Save(ctx, t); err != nil {
		return nil, internal("Internal server error", err)
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.store.Tasks, id, "Task not found")
}

func (s *TaskService) check(ctx context.Context, t *models.Task) error {
	t.Property = nil
	t.Offer = nil
	if t.PropertyID == 0 {
		return referenceNotFound("Invalid property ID")
	}
	if _, err := existing(ctx, s.store.Properties, t.PropertyID, "Invalid property ID"); err != nil {
		return err
	}
	if t.OfferID != nil && *t.OfferID == 0 {
		t.OfferID = nil
	}
	if t.OfferID != nil {
		if _, err := existing(ctx, s.store.Offers, *t.OfferID, "Invalid offer ID"); err != nil {
			return err
		}
	}
	return nil
}
