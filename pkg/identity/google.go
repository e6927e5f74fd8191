package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
	"google.golang.org/api/idtoken"
)

// GoogleVerifier turns a Google ID token into a Profile. With a client ID the
// token is validated locally against Google's signing keys and audience;
// without one the tokeninfo endpoint is asked.
type GoogleVerifier struct {
	clientID     string
	tokenInfoURL string
	client       *http.Client
}

func NewGoogleVerifier(clientID, tokenInfoURL string, timeout time.Duration) *GoogleVerifier {
	return &GoogleVerifier{
		clientID:     clientID,
		tokenInfoURL: tokenInfoURL,
		client:       &http.Client{Timeout: timeout},
	}
}

func (g *GoogleVerifier) Verify(ctx context.Context, idToken string) (*Profile, error) {
	if g.clientID != "" {
		return g.verifyLocally(ctx, idToken)
	}
	return g.verifyWithTokenInfo(ctx, idToken)
}

func (g *GoogleVerifier) verifyLocally(ctx context.Context, idToken string) (*Profile, error) {
	payload, err := idtoken.Validate(ctx, idToken, g.clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if payload.Subject == "" {
		return nil, ErrInvalidToken
	}

	claim := func(key string) *string {
		if v, ok := payload.Claims[key].(string); ok {
			return optional(v)
		}
		return nil
	}
	return &Profile{
		Provider:   ProviderGoogle,
		ProviderID: payload.Subject,
		Email:      claim("email"),
		Name:       claim("name"),
		AvatarURL:  claim("picture"),
	}, nil
}

func (g *GoogleVerifier) verifyWithTokenInfo(ctx context.Context, idToken string) (*Profile, error) {
	endpoint := g.tokenInfoURL + "?id_token=" + url.QueryEscape(idToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: google tokeninfo: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: google tokeninfo read: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: google tokeninfo status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	info := gjson.ParseBytes(body)
	sub := info.Get("sub").String()
	if sub == "" {
		return nil, errors.Join(ErrInvalidToken, errors.New("google token has no subject"))
	}

	return &Profile{
		Provider:   ProviderGoogle,
		ProviderID: sub,
		Email:      optional(info.Get("email").String()),
		Name:       optional(info.Get("name").String()),
		AvatarURL:  optional(info.Get("picture").String()),
	}, nil
}
