package services

import (
	"fmt"

	"habitnow/internal/models"
	"habitnow/pkg/identity"
)

// IdentityClient is the contract with the external users service. It is
// satisfied by *identity.Client; tests substitute a stub.
type IdentityClient interface {
	OAuthRedirectURL(provider string) (string, error)
	ExchangeCodeForSessionToken(code string) (string, error)
	UserForSessionToken(token string) (*identity.User, error)
	DeleteSession(token string) error
}

// SessionService handles the session boundary with the external users
// service. No session state is held locally: a session is an opaque token
// issued, resolved and revoked remotely.
type SessionService struct {
	client IdentityClient
}

// NewSessionService creates a new SessionService.
func NewSessionService(client IdentityClient) *SessionService {
	return &SessionService{
		client: client,
	}
}

// OAuthRedirectURL returns the users service's OAuth consent URL for the
// given provider.
func (s *SessionService) OAuthRedirectURL(provider string) (string, error) {
	url, err := s.client.OAuthRedirectURL(provider)
	if err != nil {
		return "", fmt.Errorf("failed to get OAuth redirect URL: %w", err)
	}
	return url, nil
}

// EstablishSession exchanges an OAuth authorization code for a session token.
func (s *SessionService) EstablishSession(code string) (string, error) {
	token, err := s.client.ExchangeCodeForSessionToken(code)
	if err != nil {
		return "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// ResolveSession resolves a session token to the user it belongs to. Any
// failure means the caller is not authenticated; the reason (expired,
// revoked, unknown) is deliberately not distinguished.
func (s *SessionService) ResolveSession(token string) (*models.User, error) {
	identityUser, err := s.client.UserForSessionToken(token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	return &models.User{
		ID:      identityUser.ID,
		Email:   identityUser.Email,
		Name:    identityUser.Name,
		Picture: identityUser.Picture,
	}, nil
}

// Logout revokes a session token on the users service.
func (s *SessionService) Logout(token string) error {
	if err := s.client.DeleteSession(token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
