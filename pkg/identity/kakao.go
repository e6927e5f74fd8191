package identity

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

// KakaoClient reads the user profile behind a Kakao access token.
type KakaoClient struct {
	baseURL string
	client  *http.Client
}

func NewKakaoClient(baseURL string, timeout time.Duration) *KakaoClient {
	return &KakaoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (k *KakaoClient) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, k.client)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
	}))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, k.baseURL+"/v2/user/me", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: kakao request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: kakao read: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: kakao status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	id := gjson.GetBytes(body, "id")
	if !id.Exists() || id.String() == "" {
		return nil, fmt.Errorf("%w: kakao response has no user id", ErrUpstream)
	}

	account := gjson.GetBytes(body, "kakao_account")
	return &Profile{
		Provider:   ProviderKakao,
		ProviderID: id.String(),
		Email:      optional(account.Get("email").String()),
		Name:       optional(account.Get("profile.nickname").String()),
		AvatarURL:  optional(account.Get("profile.profile_image_url").String()),
	}, nil
}
