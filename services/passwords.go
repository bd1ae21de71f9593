package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// PasswordMatcher checks a submitted primary credential against the stored
// one and prepares new credentials for storage.
type PasswordMatcher interface {
	Match(stored, given string) bool
	Prepare(plain string) (string, error)
}

// PlaintextPasswords stores passwords as given and compares them for
// equality.
type PlaintextPasswords struct{}

func (PlaintextPasswords) Match(stored, given string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func (PlaintextPasswords) Prepare(plain string) (string, error) { return plain, nil }

// BcryptPasswords stores bcrypt hashes.
type BcryptPasswords struct {
	Cost int
}

func (b BcryptPasswords) Match(stored, given string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
}

func (b BcryptPasswords) Prepare(plain string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
