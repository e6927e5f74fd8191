package domain

import "time"

// User is an account created on first login through an identity provider.
// (Provider, ProviderID) identifies it; profile fields are optional because
// providers may withhold them.
type User struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Email      *string   `json:"email" gorm:"uniqueIndex;size:255"`
	Name       *string   `json:"name" gorm:"size:255"`
	Provider   string    `json:"provider" gorm:"size:50;not null;uniqueIndex:idx_users_provider_provider_id"` // "kakao" or "google"
	ProviderID string    `json:"-" gorm:"size:255;not null;uniqueIndex:idx_users_provider_provider_id"`
	AvatarURL  *string   `json:"avatarUrl" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`
}

// UserProfile is the login-time view of a user used for upserts. Nil fields
// leave stored values untouched.
type UserProfile struct {
	Provider   string
	ProviderID string
	Email      *string
	Name       *string
	AvatarURL  *string
}
