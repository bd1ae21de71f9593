package services

import (
	"context"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

type PropertyService struct {
	store *store.Store
	log   *logrus.Logger
}

func (s *PropertyService) List(ctx context.Context) ([]models.Property, error) {
	return list(ctx, s.store.Properties, "Client")
}

func (s *PropertyService) Get(ctx context.Context, id uint) (*models.Property, error) {
	return lookup(ctx, s.store.Properties, id, "Property not found", "Client")
}

// Create stores a property for an existing client.
func (s *PropertyService) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	p.ID = 0
	client, err := s.check(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.store.Properties.Create(ctx, p); err != nil {
		return nil, internal("Internal server error", err)
	}
	p.Client = client
	return p, nil
}

func (s *PropertyService) Update(ctx context.Context, id uint, patch Patch[models.Property]) (*models.Property, error) {
	p, err := lookup(ctx, s.store.Properties, id, "Property not found")
	if err != nil {
		return nil, err
	}
	if err := patch(p); err != nil {
		return nil, validation("Cannot parse JSON")
	}
	p.ID = id
	client, err := s.check(ctx, p)
	if err != nil {
		return nil, err
	}
	if err := s.store.Properties.Save(ctx, p); err != nil {
		return nil, internal("Internal server error", err)
	}
	p.Client = client
	return p, nil
}

func (s *PropertyService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.store.Properties, id, "Property not found")
}

// check validates p and returns its owner. Relation structs from the body
// are discarded.
func (s *PropertyService) check(ctx context.Context, p *models.Property) (*models.Client, error) {
	p.Client = nil
	p.Tasks = nil
	if p.PropertyAddress == "" {
		return nil, validation("propertyAddress is required")
	}
	if p.ClientID == 0 {
		return nil, referenceNotFound("Invalid client ID")
	}
	return existing(ctx, s.store.Clients, p.ClientID, "Invalid client ID")
}
