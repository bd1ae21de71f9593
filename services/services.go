// Package services implements the back-office workflows on top of the
// storage layer. Every service receives the store explicitly.
package services

import (
	"context"
	"io"
	"time"

	"github.com/meinhoongagan/backoffice-api/metrics"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/sirupsen/logrus"
)

// Notifier delivers account emails. Implementations must not block the
// caller and never report delivery failures.
type Notifier interface {
	SendOTPEmail(to, code string)
	SendCredentialEmail(to, secret string)
	SendLoginNotice(to, notice string)
}

// AttemptLimiter throttles login initiation per key.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Uploader stores a file and returns a URL to it.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

// Deps carries everything the services share. Store, Notifier, Passwords,
// Tokens and Log are required; the rest may be nil.
type Deps struct {
	Store     *store.Store
	Notifier  Notifier
	Passwords PasswordMatcher
	Tokens    *TokenIssuer
	Limiter   AttemptLimiter
	Uploader  Uploader
	Metrics   *metrics.Recorder
	Log       *logrus.Logger
	Now       func() time.Time
}

// Services is the set of workflows served by the API.
type Services struct {
	Clients      *ClientService
	Properties   *PropertyService
	Tasks        *TaskService
	Offers       *OfferService
	Employees    *EmployeeService
	Payrolls     *PayrollService
	Expenses     *ExpenseService
	Invoices     *InvoiceService
	Users        *UserService
	Companies    *CompanyService
	CompanyLogin *LoginFlow[models.Company, *models.Company]
	AdminLogin   *LoginFlow[models.SuperAdmin, *models.SuperAdmin]
}

func New(d Deps) *Services {
	if d.Now == nil {
		d.Now = time.Now
	}
	st := d.Store
	return &Services{
		Clients:    &ClientService{clients: st.Clients, log: d.Log},
		Properties: &PropertyService{store: st, log: d.Log},
		Tasks:      &TaskService{store: st, log: d.Log},
		Offers:     &OfferService{store: st, log: d.Log, metrics: d.Metrics},
		Employees:  &EmployeeService{employees: st.Employees, uploader: d.Uploader, log: d.Log},
		Payrolls:   &PayrollService{store: st, log: d.Log},
		Expenses:   &ExpenseService{store: st, log: d.Log},
		Invoices:   &InvoiceService{store: st, log: d.Log},
		Users:      &UserService{users: st.Users, log: d.Log},
		Companies: &CompanyService{
			companies: st.Companies,
			passwords: d.Passwords,
			notifier:  d.Notifier,
			log:       d.Log,
		},
		CompanyLogin: NewLoginFlow[models.Company](RoleCompany, st.Companies,
			func(email string) *models.Company { return &models.Company{AdminEmail: email} }, d),
		AdminLogin: NewLoginFlow[models.SuperAdmin](RoleSuperAdmin, st.SuperAdmins,
			func(email string) *models.SuperAdmin { return &models.SuperAdmin{Email: email} }, d),
	}
}
