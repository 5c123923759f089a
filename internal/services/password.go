package services

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordPolicy decides how passwords are stored and compared.
type PasswordPolicy interface {
	Hash(raw string) (string, error)
	Matches(stored, raw string) bool
}

// PlainPasswords stores passwords exactly as given. This is the historical
// behaviour of the store; existing rows depend on it.
type PlainPasswords struct{}

func (PlainPasswords) Hash(raw string) (string, error) { return raw, nil }

func (PlainPasswords) Matches(stored, raw string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(raw)) == 1
}

// BcryptPasswords hashes with bcrypt. Opt-in via PASSWORD_HASHING=bcrypt;
// rows written by PlainPasswords will not verify under it.
type BcryptPasswords struct{ Cost int }

func (b BcryptPasswords) Hash(raw string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(raw), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (BcryptPasswords) Matches(stored, raw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(raw)) == nil
}

// NewPasswordPolicy maps a config name to a policy.
func NewPasswordPolicy(name string) (PasswordPolicy, error) {
	switch name {
	case "", "plain":
		return PlainPasswords{}, nil
	case "bcrypt":
		return BcryptPasswords{}, nil
	default:
		return nil, fmt.Errorf("unknown password hashing %q", name)
	}
}
