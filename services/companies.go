package services

import (
	"context"
	"errors"
	"time"

	"github.com/meinhoongagan/backoffice-api/dtos"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/meinhoongagan/backoffice-api/utils"
	"github.com/sirupsen/logrus"
)

// otpColumns are never written by company edits.
var otpColumns = []string{"OTP", "OTPExpiration"}

type CompanyService struct {
	companies store.Repository[models.Company]
	passwords PasswordMatcher
	notifier  Notifier
	log       *logrus.Logger
}

// Create registers a company with a generated password and mails the
// password to the admin email. The returned record has no password.
func (s *CompanyService) Create(ctx context.Context, req dtos.CompanyRequest) (*models.Company, error) {
	if err := Validate(&req); err != nil {
		return nil, err
	}
	_, err := s.companies.FindOne(ctx, &models.Company{AdminEmail: req.AdminEmail})
	if err == nil {
		return nil, validation("Company already exists")
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, internal("Internal server error", err)
	}

	company := &models.Company{}
	if err := applyCompany(company, req); err != nil {
		return nil, err
	}
	plain, err := utils.GeneratePassword()
	if err != nil {
		return nil, internal("Internal server error", err)
	}
	if company.Password, err = s.passwords.Prepare(plain); err != nil {
		return nil, internal("Internal server error", err)
	}
	company.Clear()

	if err := s.companies.Create(ctx, company); err != nil {
		return nil, internal("Internal server error", err)
	}
	s.notifier.SendCredentialEmail(company.AdminEmail, plain)
	s.log.WithField("company_id", company.ID).Info("company created")

	company.Password = ""
	return company, nil
}

// Edit applies the non-empty fields of req. The login code pair is left as
// stored.
func (s *CompanyService) Edit(ctx context.Context, id uint, req dtos.CompanyRequest) (*models.Company, error) {
	company, err := lookup(ctx, s.companies, id, "Company not found")
	if err != nil {
		return nil, err
	}
	if err := applyCompany(company, req); err != nil {
		return nil, err
	}
	if req.Password != "" {
		if company.Password, err = s.passwords.Prepare(req.Password); err != nil {
			return nil, internal("Internal server error", err)
		}
	}
	if err := s.companies.Save(ctx, company, otpColumns...); err != nil {
		return nil, internal("Internal server error", err)
	}

	company, err = lookup(ctx, s.companies, id, "Company not found")
	if err != nil {
		return nil, err
	}
	company.Password = ""
	return company, nil
}

func applyCompany(c *models.Company, req dtos.CompanyRequest) error {
	setString(&c.CompanyName, req.CompanyName)
	setString(&c.Address, req.Address)
	setString(&c.ContactEmail, req.ContactEmail)
	setString(&c.PhoneNumber, req.PhoneNumber)
	setString(&c.SubscriptionPlan, req.SubscriptionPlan)
	setString(&c.PaymentFrequency, req.PaymentFrequency)
	setString(&c.LicenseNo, req.LicenseNo)
	setString(&c.AdminName, req.AdminName)
	setString(&c.AdminEmail, req.AdminEmail)

	for _, d := range []struct {
		dst  *time.Time
		raw  string
		name string
	}{
		{&c.SubscriptionStartDate, req.SubscriptionStartDate, "subscriptionStartDate"},
		{&c.SubscriptionEndDate, req.SubscriptionEndDate, "subscriptionEndDate"},
		{&c.LicenseExpiryDate, req.LicenseExpiryDate, "licenseExpiryDate"},
	} {
		if d.raw == "" {
			continue
		}
		t, err := parseDate(d.raw)
		if err != nil {
			return validation("Invalid " + d.name)
		}
		*d.dst = t
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
