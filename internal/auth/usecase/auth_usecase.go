package usecase

import (
	"context"
	"fmt"

	authdomain "refine-backend/internal/auth/domain"
	authdto "refine-backend/internal/auth/dto"
	"refine-backend/internal/auth/repository"
	"refine-backend/pkg/identity"
	"refine-backend/pkg/token"

	"go.uber.org/zap"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	kakao    KakaoProfileFetcher
	google   GoogleTokenVerifier
	tokens   *token.Service
	logger   *zap.Logger
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, kakao KakaoProfileFetcher, google GoogleTokenVerifier, tokens *token.Service, logger *zap.Logger) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		kakao:    kakao,
		google:   google,
		tokens:   tokens,
		logger:   logger,
	}
}

func (u *authUsecase) KakaoLogin(ctx context.Context, accessToken string) (*authdto.AuthResponse, error) {
	profile, err := u.kakao.FetchProfile(ctx, accessToken)
	if err != nil {
		return nil, fmt.Errorf("kakao profile: %w", err)
	}
	return u.login(ctx, profile)
}

func (u *authUsecase) GoogleLogin(ctx context.Context, idToken string) (*authdto.AuthResponse, error) {
	profile, err := u.google.Verify(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("google id token: %w", err)
	}
	return u.login(ctx, profile)
}

func (u *authUsecase) login(ctx context.Context, profile *identity.Profile) (*authdto.AuthResponse, error) {
	user, err := u.userRepo.FindOrCreate(ctx, authdomain.UserProfile{
		Provider:   profile.Provider,
		ProviderID: profile.ProviderID,
		Email:      profile.Email,
		Name:       profile.Name,
		AvatarURL:  profile.AvatarURL,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}

	signed, err := u.tokens.Issue(token.Payload{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	u.logger.Info("user logged in", zap.String("provider", user.Provider), zap.String("user_id", user.ID))
	return &authdto.AuthResponse{
		Token: signed,
		User:  authdto.NewUserResponse(user),
	}, nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*token.Claims, error) {
	return u.tokens.Verify(tokenString)
}
