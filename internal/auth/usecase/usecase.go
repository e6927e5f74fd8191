package usecase

import (
	"context"
	"errors"

	authdomain "refine-backend/internal/auth/domain"
	authdto "refine-backend/internal/auth/dto"
	"refine-backend/pkg/identity"
	"refine-backend/pkg/token"
)

var ErrUserNotFound = errors.New("user not found")

// AuthUsecase defines the interface for login and session handling
type AuthUsecase interface {
	KakaoLogin(ctx context.Context, accessToken string) (*authdto.AuthResponse, error)
	GoogleLogin(ctx context.Context, idToken string) (*authdto.AuthResponse, error)

	// CurrentUser returns ErrUserNotFound when the token outlived its user.
	CurrentUser(ctx context.Context, userID string) (*authdomain.User, error)

	// ValidateToken never touches storage; any error means "not logged in".
	ValidateToken(tokenString string) (*token.Claims, error)
}

// KakaoProfileFetcher is satisfied by identity.KakaoClient.
type KakaoProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (*identity.Profile, error)
}

// GoogleTokenVerifier is satisfied by identity.GoogleVerifier.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*identity.Profile, error)
}
