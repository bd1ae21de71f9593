package services

import (
	"context"
	"errors"
	"time"

	"github.com/meinhoongagan/backoffice-api/metrics"
	"github.com/meinhoongagan/backoffice-api/models"
	"github.com/meinhoongagan/backoffice-api/store"
	"github.com/meinhoongagan/backoffice-api/utils"
	"github.com/sirupsen/logrus"
)

// OTPValidity is how long an issued login code stays valid.
const OTPValidity = 5 * time.Minute

// LoginFlow runs the two step login of one account kind: a primary
// credential check that issues a login code, then code verification.
//
// The account's (otp, otpExpiration) pair is either idle (both nil) or
// pending (both set). Only Login moves idle to pending; Verify and
// SweepExpired move pending back to idle.
type LoginFlow[T any, PT interface {
	*T
	models.OTPAccount
}] struct {
	role      string
	accounts  store.Repository[T]
	byEmail   func(email string) PT
	passwords PasswordMatcher
	notifier  Notifier
	limiter   AttemptLimiter
	tokens    *TokenIssuer
	metrics   *metrics.Recorder
	log       *logrus.Logger
	now       func() time.Time
}

// NewLoginFlow builds the flow for the accounts in repo. byEmail returns the
// lookup filter for a login email.
func NewLoginFlow[T any, PT interface {
	*T
	models.OTPAccount
}](role string, repo store.Repository[T], byEmail func(email string) PT, d Deps) *LoginFlow[T, PT] {
	now := d.Now
	if now == nil {
		now = time.Now
	}
	return &LoginFlow[T, PT]{
		role:      role,
		accounts:  repo,
		byEmail:   byEmail,
		passwords: d.Passwords,
		notifier:  d.Notifier,
		limiter:   d.Limiter,
		tokens:    d.Tokens,
		metrics:   d.Metrics,
		log:       d.Log,
		now:       now,
	}
}

func (f *LoginFlow[T, PT]) find(ctx context.Context, email string) (PT, error) {
	if email == "" {
		return nil, validation("email is required")
	}
	rec, err := f.accounts.FindOne(ctx, (*T)(f.byEmail(email)))
	if errors.Is(err, store.ErrNotFound) {
		return nil, credential(CodeInvalidCredentials, "Account not found")
	}
	if err != nil {
		return nil, internal("Internal server error", err)
	}
	return PT(rec), nil
}

// Login checks the primary credential and, when it matches, issues a new
// login code and mails it. A failed check leaves the account untouched.
func (f *LoginFlow[T, PT]) Login(ctx context.Context, email, password string) error {
	if err := f.throttle(ctx, email); err != nil {
		return err
	}
	acct, err := f.find(ctx, email)
	if err != nil {
		f.metrics.OTPEvent(f.role, "rejected")
		return err
	}
	if !f.passwords.Match(acct.LoginPassword(), password) {
		f.metrics.OTPEvent(f.role, "rejected")
		return credential(CodeInvalidCredentials, "Incorrect password")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return internal("Internal server error", err)
	}
	acct.OTPFields().Issue(code, f.now().Add(OTPValidity))
	if err := f.accounts.Save(ctx, (*T)(acct)); err != nil {
		return internal("Internal server error", err)
	}

	f.metrics.OTPEvent(f.role, "issued")
	f.notifier.SendOTPEmail(acct.LoginEmail(), code)
	f.log.WithFields(logrus.Fields{"role": f.role, "account_id": acct.AccountID()}).Info("login code issued")
	return nil
}

// Verify consumes the pending login code and returns a session token.
// A missing code and an expired code are reported distinctly; an expired
// code is cleared. A wrong code leaves the pending code in place.
func (f *LoginFlow[T, PT]) Verify(ctx context.Context, email, code string) (string, error) {
	acct, err := f.find(ctx, email)
	if err != nil {
		return "", err
	}
	st := acct.OTPFields()
	if !st.Pending() {
		f.metrics.OTPEvent(f.role, "missing")
		return "", credential(CodeOTPMissing, "No OTP generated")
	}
	if st.ExpiredAt(f.now()) {
		st.Clear()
		if err := f.accounts.Save(ctx, (*T)(acct)); err != nil {
			return "", internal("Internal server error", err)
		}
		f.metrics.OTPEvent(f.role, "expired")
		f.notifier.SendLoginNotice(acct.LoginEmail(), "Your login code expired before it was used.")
		return "", credential(CodeOTPExpired, "OTP has expired")
	}
	if *st.OTP != code {
		f.metrics.OTPEvent(f.role, "invalid")
		return "", credential(CodeOTPInvalid, "Invalid OTP")
	}

	token, err := f.tokens.Issue(acct.AccountID(), acct.LoginEmail(), f.role)
	if err != nil {
		return "", internal("Internal server error", err)
	}
	st.Clear()
	if err := f.accounts.Save(ctx, (*T)(acct)); err != nil {
		return "", internal("Internal server error", err)
	}
	f.metrics.OTPEvent(f.role, "verified")
	f.notifier.SendLoginNotice(acct.LoginEmail(), "Your login was verified.")
	return token, nil
}

// Account returns the account a session token points at.
func (f *LoginFlow[T, PT]) Account(ctx context.Context, id uint) (*T, error) {
	return lookup(ctx, f.accounts, id, "Account not found")
}

// SweepExpired clears every pending code whose expiration has passed and
// returns how many accounts were cleared.
func (f *LoginFlow[T, PT]) SweepExpired(ctx context.Context) (int, error) {
	recs, err := f.accounts.List(ctx)
	if err != nil {
		return 0, err
	}
	now := f.now()
	cleared := 0
	for i := range recs {
		acct := PT(&recs[i])
		st := acct.OTPFields()
		if !st.Pending() || !st.ExpiredAt(now) {
			continue
		}
		st.Clear()
		if err := f.accounts.Save(ctx, &recs[i]); err != nil {
			return cleared, err
		}
		cleared++
		f.metrics.OTPEvent(f.role, "expired")
		f.notifier.SendLoginNotice(acct.LoginEmail(), "Your login code expired before it was used.")
	}
	return cleared, nil
}

func (f *LoginFlow[T, PT]) throttle(ctx context.Context, email string) error {
	if f.limiter == nil {
		return nil
	}
	ok, err := f.limiter.Allow(ctx, f.role+":"+email)
	if err != nil {
		f.log.WithError(err).Warn("login limiter unavailable, allowing attempt")
		return nil
	}
	if !ok {
		return &Error{Kind: KindRateLimited, Code: CodeRateLimited, Message: "Too many login attempts, try again later"}
	}
	return nil
}
