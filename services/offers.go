package services

import (
	"context"
	"fmt"

	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/metrics"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

// OfferService runs the offer workflows.
type OfferService struct {
	store   *store.Store
	log     *logrus.Logger
	metrics *metrics.Recorder
}

// Create resolves or creates the client and property named by req, then
// persists the offer and its tasks in that order. Reference lookups all
// happen before the first write. If a write fails the earlier writes stay
// committed; the committed steps are logged.
//
// The returned offer has its client and property attached and no tasks.
func (s *OfferService) Create(ctx context.Context, req dtos.CreateOfferRequest) (*models.Offer, error) {
	if req.ClientDetails == nil || req.PropertyDetails == nil || req.OfferDetails == nil {
		return nil, validation("clientDetails, propertyDetails and offerDetails are required")
	}

	client, newClient, err := existingOrNew(ctx, s.store.Clients, req.ClientDetails.ClientID,
		func() (*models.Client, error) { return newClientFrom(req.ClientDetails) }, "Invalid client ID")
	if err != nil {
		return nil, err
	}
	property, newProperty, err := existingOrNew(ctx, s.store.Properties, req.PropertyDetails.PropertyID,
		func() (*models.Property, error) { return newPropertyFrom(req.PropertyDetails) }, "Invalid property ID")
	if err != nil {
		return nil, err
	}

	offer := newOfferFrom(req.OfferDetails, req.Status)
	tasks := make([]models.Task, len(req.AddTasks))
	for i, t := range req.AddTasks {
		tasks[i] = newTaskFrom(t)
	}

	var steps []persistStep
	if newClient {
		steps = append(steps, persistStep{"client", func(ctx context.Context) error {
			return s.store.Clients.Create(ctx, client)
		}})
	}
	if newProperty {
		steps = append(steps, persistStep{"property", func(ctx context.Context) error {
			property.ClientID = client.ID
			return s.store.Properties.Create(ctx, property)
		}})
	}
	steps = append(steps, persistStep{"offer", func(ctx context.Context) error {
		offer.ClientID = client.ID
		offer.PropertyID = property.ID
		return s.store.Offers.Create(ctx, offer)
	}})
	for i := range tasks {
		task := &tasks[i]
		steps = append(steps, persistStep{fmt.Sprintf("task[%d]", i), func(ctx context.Context) error {
			task.PropertyID = property.ID
			task.OfferID = &offer.ID
			return s.store.Tasks.Create(ctx, task)
		}})
	}

	committed, err := runSteps(ctx, steps)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"committed": committed,
			"error":     err,
		}).Error("offer creation stopped part way")
		return nil, internal("Internal server error", err)
	}

	s.metrics.OfferCreated()
	s.log.WithFields(logrus.Fields{
		"offer_id": offer.ID,
		"steps":    committed,
	}).Info("offer created")

	offer.Client = client
	offer.Property = property
	return offer, nil
}

func (s *OfferService) List(ctx context.Context) ([]models.Offer, error) {
	return list(ctx, s.store.Offers, "Client", "Property")
}

func (s *OfferService) Get(ctx context.Context, id uint) (*models.Offer, error) {
	return lookup(ctx, s.store.Offers, id, "Offer not found", "Client", "Property", "Tasks")
}

// UpdateStatus overwrites the status label and returns the refreshed offer.
// Any non-empty label is accepted.
func (s *OfferService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Offer, error) {
	offer, err := lookup(ctx, s.store.Offers, id, "Offer not found")
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, validation("Status is required")
	}
	offer.Status = status
	if err := s.store.Offers.Save(ctx, offer); err != nil {
		return nil, internal("Internal server error", err)
	}
	return lookup(ctx, s.store.Offers, id, "Offer not found", "Client", "Property")
}

func (s *OfferService) Delete(ctx context.Context, id uint) error {
	return remove(ctx, s.store.Offers, id, "Offer not found")
}

func newClientFrom(d *dtos.ClientDetails) (*models.Client, error) {
	if d.ClientName == "" {
		return nil, validation("clientName is required for a new client")
	}
	return &models.Client{
		ClientName:        d.ClientName,
		ClientEmail:       d.ClientEmail,
		ClientAddress:     d.ClientAddress,
		ClientPhoneNumber: d.ClientPhoneNumber,
	}, nil
}

// newPropertyFrom never carries a client reference from the fragment; the
// owner is set to the resolved client when the property is persisted.
func newPropertyFrom(d *dtos.PropertyDetails) (*models.Property, error) {
	if d.PropertyAddress == "" {
		return nil, validation("propertyAddress is required for a new property")
	}
	return &models.Property{
		PropertyAddress:         d.PropertyAddress,
		PropertyType:            d.PropertyType,
		PropertyAmenities:       d.PropertyAmenities,
		NoOfPetAllowed:          d.NoOfPetAllowed,
		SpecialFeatureStartDate: d.SpecialFeatureStartDate,
		SpecialFeatureEndDate:   d.SpecialFeatureEndDate,
	}, nil
}

func newOfferFrom(d *dtos.OfferDetails, status string) *models.Offer {
	return &models.Offer{
		TotalAmount:    d.TotalAmount,
		TotalTime:      d.TotalTime,
		Discount:       d.Discount,
		CommentEndDate: d.CommentEndDate,
		Comment:        d.Comment,
		OfferEmail:     d.OfferEmail,
		OfferPhone:     d.OfferPhone,
		Status:         status,
	}
}

func newTaskFrom(d dtos.TaskDetails) models.Task {
	return models.Task{
		TaskCategory:         d.TaskCategory,
		TaskName:             d.TaskName,
		TaskDescription:      d.TaskDescription,
		TaskPrice:            d.TaskPrice,
		CleaningRequirements: d.CleaningRequirements,
	}
}
