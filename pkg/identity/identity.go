package identity

import (
	"errors"
	"strings"
)

const (
	ProviderKakao  = "kakao"
	ProviderGoogle = "google"
)

var (
	// ErrInvalidToken means the identity provider does not vouch for the token.
	ErrInvalidToken = errors.New("identity token is not valid")
	// ErrUpstream means the identity provider could not be asked.
	ErrUpstream = errors.New("identity provider request failed")
)

// Profile is what a login learns about the user from the identity provider.
// Nil fields were not shared by the provider.
type Profile struct {
	Provider   string
	ProviderID string
	Email      *string
	Name       *string
	AvatarURL  *string
}

func optional(s string) *string {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	return &s
}
