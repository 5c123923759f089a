package services

import (
	"context"
	"errors"
	"time"

	"trendyshop/internal/domain"
	"trendyshop/internal/validate"

	"github.com/google/uuid"
)

// CredentialStore holds user records. Lookups return ErrUserNotFound when
// nothing matches.
type CredentialStore interface {
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	UpdateCart(ctx context.Context, id string, cart domain.Cart) error
}

type AuthService struct {
	Users     CredentialStore
	Tokens    *TokenService
	Passwords PasswordPolicy
	now       func() time.Time
}

func NewAuthService(users CredentialStore, tokens *TokenService, pw PasswordPolicy) *AuthService {
	if pw == nil {
		pw = PlainPasswords{}
	}
	return &AuthService{Users: users, Tokens: tokens, Passwords: pw, now: time.Now}
}

// Signup registers a user with a freshly seeded cart and returns a token for it.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (string, error) {
	email, ok := validate.Email(email)
	if !ok {
		return "", invalid("email", "invalid email address")
	}
	if password == "" {
		return "", invalid("password", "password is required")
	}
	name, _ = validate.Name(name)

	_, err := s.Users.ByEmail(ctx, email)
	switch {
	case err == nil:
		return "", ErrDuplicateEmail
	case !errors.Is(err, ErrUserNotFound):
		return "", err
	}

	stored, err := s.Passwords.Hash(password)
	if err != nil {
		return "", err
	}
	u := &domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  stored,
		Cart:      domain.NewCart(),
		CreatedAt: s.now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return "", err
	}
	return s.Tokens.Issue(u.ID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email, _ = validate.Email(email)
	u, err := s.Users.ByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrWrongEmail
	}
	if err != nil {
		return "", err
	}
	if !s.Passwords.Matches(u.Password, password) {
		return "", ErrWrongPassword
	}
	return s.Tokens.Issue(u.ID)
}
