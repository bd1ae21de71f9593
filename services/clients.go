package services

import (
	"context"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

// Patch merges a request body into a loaded record.
type Patch[T any] func(rec *T) error

type ClientService struct {
	clients store.Repository[models.Client]
	log     *logrus.Logger
}

func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return list(ctx, s.clients)
}

func (s *ClientService) Get(ctx context.Context, id uint) (*models.Client, error) {
	return lookup(ctx, s.clients, id, "Client not found", "Properties")
}

func (s *ClientService) Create(ctx context.Context, c *models.Client) (*models.Client, error) {
	c.ID = 0
	c.Properties = nil
	if c.ClientName == "" {
		return nil, validation("clientName is required")
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, internal("Internal server error", err)
	}
	return c, nil
}

func (s *ClientService) Update(ctx context.Context, id uint, patch Patch[models.Client]) (*models.Client, error) {
	c, err := lookup(ctx, s.clients, id, "Client not found")
	if err != nil {
		return nil, err
	}
	if err := patch(c); err != nil {
		return nil, validation("Cannot parse JSON")
	}
	c.ID = id
	c.Properties = nil
	if c.ClientName == "" {
		return nil, validation("clientName is required")
	}
	if err := s.clients.Save(ctx, c); err != nil {
		return nil, internal("Internal server error", err)
	}
	return c, nil
}

func (s *ClientService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.clients, id, "Client not found")
}
