package identity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKakaoFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/user/me", r.URL.Path)
		assert.Equal(t, "Bearer kakao-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"id": 3141592653,
			"kakao_account": {
				"email": "user@kakao.com",
				"profile": {"nickname": "라이언", "profile_image_url": "https://k.example/p.png"}
			}
		}`))
	}))
	defer srv.Close()

	p, err := NewKakaoClient(srv.URL, time.Second).FetchProfile(context.Background(), "kakao-token")

	require.NoError(t, err)
	assert.Equal(t, ProviderKakao, p.Provider)
	assert.Equal(t, "3141592653", p.ProviderID)
	require.NotNil(t, p.Email)
	assert.Equal(t, "user@kakao.com", *p.Email)
	assert.Equal(t, "라이언", *p.Name)
	assert.Equal(t, "https://k.example/p.png", *p.AvatarURL)
}

func TestKakaoFetchProfileWithoutConsentedFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7}`))
	}))
	defer srv.Close()

	p, err := NewKakaoClient(srv.URL, time.Second).FetchProfile(context.Background(), "t")

	require.NoError(t, err)
	assert.Equal(t, "7", p.ProviderID)
	assert.Nil(t, p.Email)
	assert.Nil(t, p.Name)
	assert.Nil(t, p.AvatarURL)
}

func TestKakaoFetchProfileRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"msg":"this access token does not exist","code":-401}`))
	}))
	defer srv.Close()

	_, err := NewKakaoClient(srv.URL, time.Second).FetchProfile(context.Background(), "expired")

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGoogleTokenInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "google-id-token", r.URL.Query().Get("id_token"))
		_, _ = w.Write([]byte(`{"sub":"1098","email":"g@example.com","name":"Gil","picture":"https://g.example/a.png","email_verified":"true"}`))
	}))
	defer srv.Close()

	p, err := NewGoogleVerifier("", srv.URL, time.Second).Verify(context.Background(), "google-id-token")

	require.NoError(t, err)
	assert.Equal(t, ProviderGoogle, p.Provider)
	assert.Equal(t, "1098", p.ProviderID)
	assert.Equal(t, "g@example.com", *p.Email)
	assert.Equal(t, "Gil", *p.Name)
}

func TestGoogleTokenInfoWithoutSubject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"email":"g@example.com"}`))
	}))
	defer srv.Close()

	_, err := NewGoogleVerifier("", srv.URL, time.Second).Verify(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGoogleTokenInfoUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_token"}`))
	}))
	defer srv.Close()

	_, err := NewGoogleVerifier("", srv.URL, time.Second).Verify(context.Background(), "tok")

	assert.ErrorIs(t, err, ErrUpstream)
}

func TestGoogleLocalValidationRejectsMalformedToken(t *testing.T) {
	_, err := NewGoogleVerifier("client-id.apps.googleusercontent.com", "", time.Second).Verify(context.Background(), "not.a.jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
