package admin

import (
	"context"
	"errors"
	"time"

	tokenrepo "lumina-storefront/internal/repository/token"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when the identifier/secret pair does not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service gates the admin dashboard: it verifies the configured credential
// and issues opaque bearer tokens. All admin-only operations (rate table
// edits, status transitions, catalog edits) sit behind this gate.
type Service struct {
	user     string
	passHash string
	tokens   *tokenManager
	tokenTTL time.Duration
}

func New(user, passwordHash string, tokens tokenrepo.Repository, ttl time.Duration) *Service {
	return &Service{
		user:     user,
		passHash: passwordHash,
		tokens:   newTokenManager(tokens),
		tokenTTL: ttl,
	}
}

// Verify checks the identifier/secret pair against the configured admin
// credential. An empty configured hash disables admin login.
func (s *Service) Verify(identifier, secret string) bool {
	if s.passHash == "" || identifier != s.user {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.passHash), []byte(secret)) == nil
}

// Login verifies the credential and issues a bearer token.
func (s *Service) Login(ctx context.Context, identifier, secret string) (string, error) {
	if !s.Verify(identifier, secret) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(ctx, s.tokenTTL)
}

// Authenticate reports whether the token is a live admin session.
func (s *Service) Authenticate(ctx context.Context, token string) error {
	if !s.tokens.Validate(ctx, token) {
		return ErrInvalidToken
	}
	return nil
}

// Logout revokes the token. Unknown tokens are already logged out.
func (s *Service) Logout(ctx context.Context, token string) {
	s.tokens.Revoke(ctx, token)
}

// TokenTTLSeconds exposes the token lifetime in seconds.
func (s *Service) TokenTTLSeconds() int {
	return int(s.tokenTTL.Seconds())
}
