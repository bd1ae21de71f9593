package models

import "time"

// OTPState is the one-time login code pair carried by accounts that log in
// with a second factor. Both fields are set together or cleared together.
type OTPState struct {
	OTP           *string    `json:"-" gorm:"column:otp;type:text"`
	OTPExpiration *time.Time `json:"-" gorm:"column:otp_expiration"`
}

// Issue stores a pending code valid until expiresAt.
func (s *OTPState) Issue(code string, expiresAt time.Time) {
	s.OTP = &code
	s.OTPExpiration = &expiresAt
}

// Clear returns the pair to the idle state.
func (s *OTPState) Clear() {
	s.OTP = nil
	s.OTPExpiration = nil
}

// Pending reports whether a code has been issued and not yet consumed.
func (s OTPState) Pending() bool {
	return s.OTP != nil
}

// ExpiredAt reports whether the pending code is no longer valid at now.
// A missing expiration counts as expired.
func (s OTPState) ExpiredAt(now time.Time) bool {
	return s.OTPExpiration == nil || now.After(*s.OTPExpiration)
}

// OTPAccount is implemented by records that go through the login code flow.
type OTPAccount interface {
	AccountID() uint
	LoginEmail() string
	LoginPassword() string
	OTPFields() *OTPState
}
