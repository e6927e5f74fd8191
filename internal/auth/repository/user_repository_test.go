package repository

import (
	"context"
	"testing"

	authdomain "refine-backend/internal/auth/domain"
	"refine-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestFindOrCreateCreatesOnFirstLogin(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	user, err := repo.FindOrCreate(context.Background(), authdomain.UserProfile{
		Provider:   "kakao",
		ProviderID: "123",
		Email:      strPtr("a@example.com"),
		Name:       strPtr("Kim"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "kakao", user.Provider)
	assert.Equal(t, "123", user.ProviderID)
	assert.Equal(t, "a@example.com", *user.Email)
	assert.Nil(t, user.AvatarURL)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestFindOrCreateUpdatesOnlySuppliedFields(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, authdomain.UserProfile{
		Provider:   "google",
		ProviderID: "sub-1",
		Email:      strPtr("g@example.com"),
		Name:       strPtr("Old Name"),
		AvatarURL:  strPtr("https://img.example/1.png"),
	})
	require.NoError(t, err)

	second, err := repo.FindOrCreate(ctx, authdomain.UserProfile{
		Provider:   "google",
		ProviderID: "sub-1",
		Name:       strPtr("New Name"),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "New Name", *second.Name)
	require.NotNil(t, second.Email)
	assert.Equal(t, "g@example.com", *second.Email)
	require.NotNil(t, second.AvatarURL)
	assert.Equal(t, "https://img.example/1.png", *second.AvatarURL)

	stored, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", *stored.Name)
	assert.Equal(t, "g@example.com", *stored.Email)
}

func TestFindOrCreateKeepsProvidersApart(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))
	ctx := context.Background()

	kakao, err := repo.FindOrCreate(ctx, authdomain.UserProfile{Provider: "kakao", ProviderID: "42"})
	require.NoError(t, err)
	google, err := repo.FindOrCreate(ctx, authdomain.UserProfile{Provider: "google", ProviderID: "42"})
	require.NoError(t, err)

	assert.NotEqual(t, kakao.ID, google.ID)
}

func TestFindByIDMissing(t *testing.T) {
	repo := NewUserRepository(testutil.NewDB(t))

	user, err := repo.FindByID(context.Background(), "does-not-exist")

	require.NoError(t, err)
	assert.Nil(t, user)
}
