package dto

import authdomain "refine-backend/internal/auth/domain"

type KakaoLoginRequest struct {
	AccessToken string `json:"accessToken"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"idToken"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        string  `json:"id"`
	Email     *string `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatarUrl"`
}

type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func NewUserResponse(u *authdomain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
