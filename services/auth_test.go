package services

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCompany(t *testing.T, f *fixture) *models.Company {
	t.Helper()
	c := &models.Company{CompanyName: "Acme", AdminEmail: "admin@acme.test", Password: "s3cret"}
	require.NoError(t, f.store.Companies.Create(context.Background(), c))
	return c
}

func reload(t *testing.T, f *fixture, id uint) *models.Company {
	t.Helper()
	c, err := f.store.Companies.Get(context.Background(), id)
	require.NoError(t, err)
	return c
}

func codeOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

func TestCompanyLoginIssuesCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := seedCompany(t, f)

	require.NoError(t, f.svc.CompanyLogin.Login(ctx, "admin@acme.test", "s3cret"))

	got := reload(t, f, c.ID)
	require.NotNil(t, got.OTP)
	require.NotNil(t, got.OTPExpiration)
	assert.Equal(t, f.clock.Now().Add(5*time.Minute), *got.OTPExpiration)

	n, err := strconv.Atoi(*got.OTP)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, n, 100000)
	assert.LessOrEqual(t, n, 999999)

	mail := f.notifier.last()
	assert.Equal(t, "otp", mail.kind)
	assert.Equal(t, "admin@acme.test", mail.to)
	assert.Equal(t, *got.OTP, mail.body)
}

func TestCompanyLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := seedCompany(t, f)

	err := f.svc.CompanyLogin.Login(ctx, "admin@acme.test", "wrong")
	assert.Equal(t, KindCredential, KindOf(err))

	err = f.svc.CompanyLogin.Login(ctx, "nobody@acme.test", "s3cret")
	assert.Equal(t, KindCredential, KindOf(err))

	got := reload(t, f, c.ID)
	assert.Nil(t, got.OTP)
	assert.Nil(t, got.OTPExpiration)
	assert.Empty(t, f.notifier.kinds())
}

func TestLoginRequiresEmail(t *testing.T) {
	f := newFixture(t)
	seedCompany(t, f)

	err := f.svc.CompanyLogin.Login(context.Background(), "", "s3cret")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestCompanyVerifyRoundTrip(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := seedCompany(t, f)
	require.NoError(t, f.svc.CompanyLogin.Login(ctx, c.AdminEmail, "s3cret"))
	code := *reload(t, f, c.ID).OTP

	f.clock.Advance(4 * time.Minute)
	token, err := f.svc.CompanyLogin.Verify(ctx, c.AdminEmail, code)
	require.NoError(t, err)

	got := reload(t, f, c.ID)
	assert.Nil(t, got.OTP)
	assert.Nil(t, got.OTPExpiration)
	assert.Equal(t, []string{"otp", "notice"}, f.notifier.kinds())

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return []byte("test-secret"), nil },
		jwt.WithoutClaimsValidation())
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	assert.Equal(t, RoleCompany, claims["role"])
	assert.Equal(t, float64(c.ID), claims["id"])

	// the code is single use
	_, err = f.svc.CompanyLogin.Verify(ctx, c.AdminEmail, code)
	assert.Equal(t, CodeOTPMissing, codeOf(err))
}

func TestVerifyWithoutPendingCode(t *testing.T) {
	f := newFixture(t)
	c := seedCompany(t, f)

	_, err := f.svc.CompanyLogin.Verify(context.Background(), c.AdminEmail, "123456")
	assert.Equal(t, KindCredential, KindOf(err))
	assert.Equal(t, CodeOTPMissing, codeOf(err))
}

func TestVerifyWrongCodeKeepsPendingCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := seedCompany(t, f)
	require.NoError(t, f.svc.CompanyLogin.Login(ctx, c.AdminEmail, "s3cret"))
	before := reload(t, f, c.ID)

	wrong := "100000"
	if *before.OTP == wrong {
		wrong = "100001"
	}
	_, err := f.svc.CompanyLogin.Verify(ctx, c.AdminEmail, wrong)
	assert.Equal(t, CodeOTPInvalid, codeOf(err))

	after := reload(t, f, c.ID)
	assert.Equal(t, *before.OTP, *after.OTP)
	assert.Equal(t, *before.OTPExpiration, *after.OTPExpiration)
}

func TestVerifyExpiredCodeClearsState(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := seedCompany(t, f)
	require.NoError(t, f.svc.CompanyLogin.Login(ctx, c.AdminEmail, "s3cret"))
	code := *reload(t, f, c.ID).OTP

	f.clock.Advance(6 * time.Minute)
	_, err := f.svc.CompanyLogin.Verify(ctx, c.AdminEmail, code)
	assert.Equal(t, CodeOTPExpired, codeOf(err))

	got := reload(t, f, c.ID)
	assert.Nil(t, got.OTP)
	assert.Nil(t, got.OTPExpiration)

	_, err = f.svc.CompanyLogin.Verify(ctx, c.AdminEmail, code)
	assert.Equal(t, CodeOTPMissing, codeOf(err))
}

func TestLoginReplacesPendingCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := seedCompany(t, f)
	require.NoError(t, f.svc.CompanyLogin.Login(ctx, c.AdminEmail, "s3cret"))
	f.clock.Advance(time.Minute)
	require.NoError(t, f.svc.CompanyLogin.Login(ctx, c.AdminEmail, "s3cret"))

	got := reload(t, f, c.ID)
	assert.Equal(t, f.clock.Now().Add(5*time.Minute), *got.OTPExpiration)
}

func TestSuperAdminFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	admin := &models.SuperAdmin{Email: "root@example.com", Password: "admin1234"}
	require.NoError(t, f.store.SuperAdmins.Create(ctx, admin))

	require.NoError(t, f.svc.AdminLogin.Login(ctx, "root@example.com", "admin1234"))
	got, err := f.store.SuperAdmins.Get(ctx, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, got.OTP)

	token, err := f.svc.AdminLogin.Verify(ctx, "root@example.com", *got.OTP)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	acct, err := f.svc.AdminLogin.Account(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", acct.Email)
}

func TestSweepExpiredClearsOnlyExpiredCodes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	now := f.clock.Now()

	stale := &models.Company{AdminEmail: "stale@x.test"}
	stale.Issue("111111", now.Add(-time.Minute))
	fresh := &models.Company{AdminEmail: "fresh@x.test"}
	fresh.Issue("222222", now.Add(time.Minute))
	idle := &models.Company{AdminEmail: "idle@x.test"}
	for _, c := range []*models.Company{stale, fresh, idle} {
		require.NoError(t, f.store.Companies.Create(ctx, c))
	}

	cleared, err := f.svc.CompanyLogin.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cleared)

	assert.Nil(t, reload(t, f, stale.ID).OTP)
	assert.Nil(t, reload(t, f, stale.ID).OTPExpiration)
	assert.NotNil(t, reload(t, f, fresh.ID).OTP)
	assert.Nil(t, reload(t, f, idle.ID).OTP)
}

type denyLimiter struct{ err error }

func (d denyLimiter) Allow(context.Context, string) (bool, error) { return false, d.err }

func TestLoginThrottle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedCompany(t, f)

	flow := NewLoginFlow[models.Company](RoleCompany, f.store.Companies,
		func(email string) *models.Company { return &models.Company{AdminEmail: email} },
		Deps{Passwords: PlaintextPasswords{}, Notifier: f.notifier, Limiter: denyLimiter{}, Log: f.svc.Companies.log})
	err := flow.Login(ctx, "admin@acme.test", "s3cret")
	assert.Equal(t, KindRateLimited, KindOf(err))

	// limiter failures let the attempt through
	flow.limiter = denyLimiter{err: errors.New("redis down")}
	assert.NoError(t, flow.Login(ctx, "admin@acme.test", "s3cret"))
}
