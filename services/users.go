package services

import (
	"context"

	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

type UserService struct {
	users store.Repository[models.User]
	log   *logrus.Logger
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return list(ctx, s.users)
}

func (s *UserService) Create(ctx context.Context, u *models.User) (*models.User, error) {
	u.ID = 0
	u.AssignedInvoices = nil
	u.CompletedInvoices = nil
	if u.Username == "" {
		return nil, validation("username is required")
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, internal("Internal server error", err)
	}
	return u, nil
}
