package services

import (
	"context"
	"errors"

	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

type InvoiceService struct {
	store *store.Store
	log   *logrus.Logger
}

func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return list(ctx, s.store.Invoices, "AssignBy", "CompleteBy")
}

// Create stores an invoice. The invoice number must be unused and both the
// assigning and completing users must exist.
func (s *InvoiceService) Create(ctx context.Context, req dtos.InvoiceRequest) (*models.Invoice, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	_, err := s.store.Invoices.FindOne(ctx, &models.Invoice{InvoiceNumber: req.InvoiceNumber})
	if err == nil {
		return nil, validation("Invoice with this invoice number already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("Internal server error", err)
	}

	const badUsers = "Invalid assignBy or completeBy user IDs"
	if !req.AssignBy.Set || req.AssignBy.Invalid || !req.CompleteBy.Set || req.CompleteBy.Invalid {
		return nil, referenceNotFound(badUsers)
	}
	assignBy, err := existing(ctx, s.store.Users, req.AssignBy.Value, badUsers)
	if err != nil {
		return nil, err
	}
	completeBy, err := existing(ctx, s.store.Users, req.CompleteBy.Value, badUsers)
	if err != nil {
		return nil, err
	}

	inv := &models.Invoice{
		PropertyName:  req.PropertyName,
		HouseNo:       req.HouseNo,
		Date:          req.Date,
		Time:          req.Time,
		PhoneNumber:   req.PhoneNumber,
		InvoiceNumber: req.InvoiceNumber,
		TodayWorkTime: req.TodayWorkTime,
		Amount:        req.Amount,
		AssignByID:    assignBy.ID,
		DueDate:       req.DueDate,
		CompleteByID:  completeBy.ID,
		Note:          req.Note,
	}
	if err := s.store.Invoices.Create(ctx, inv); err != nil {
		return nil, internal("Internal server error", err)
	}
	inv.AssignBy = assignBy
	inv.CompleteBy = completeBy
	return inv, nil
}
