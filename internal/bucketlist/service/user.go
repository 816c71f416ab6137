package service

import (
	"context"
	"errors"
	"strings"

	"github.com/kawerewagaba/bucketlist/internal/bucketlist/domain"
	"github.com/kawerewagaba/bucketlist/internal/bucketlist/store"
	"github.com/kawerewagaba/bucketlist/pkg/cryptox"
)

// ValidationError carries the set of request fields that failed validation.
// The HTTP layer surfaces Fields to the client verbatim.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		parts = append(parts, f)
	}
	return "invalid fields: " + strings.Join(parts, ", ")
}

// UserService owns account lifecycle: registration, credential checks and
// password resets. Password material only ever crosses this boundary as an
// Argon2id hash.
type UserService struct {
	Store store.Store
}

// Register creates an account after validating and hashing the credentials.
// Returns store.ErrAlreadyExists when the email is taken.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	fields := map[string]string{}
	if email == "" {
		fields["email"] = "email must not be blank"
	} else if !strings.Contains(email, "@") {
		fields["email"] = "email must be a valid address"
	}
	if strings.TrimSpace(password) == "" {
		fields["password"] = "password must not be blank"
	}
	if len(fields) > 0 {
		return domain.User{}, &ValidationError{Fields: fields}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	id, err := s.Store.Users().CreateUser(ctx, domain.User{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		return domain.User{}, err
	}

	return s.Store.Users().GetUserByID(ctx, id)
}

// VerifyCredentials checks an email/password pair and returns the matching
// user. Unknown email and wrong password collapse into the same
// ErrInvalidCredentials.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// ResetPassword replaces the user's password hash. Tokens already issued stay
// valid until they expire or are revoked; only the presented token is revoked
// by the HTTP layer.
func (s *UserService) ResetPassword(ctx context.Context, userID int64, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return &ValidationError{Fields: map[string]string{
			"password": "password must not be blank",
		}}
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}
