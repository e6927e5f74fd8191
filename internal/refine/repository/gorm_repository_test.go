package repository

import (
	"context"
	"testing"
	"time"

	authdomain "refine-backend/internal/auth/domain"
	"refine-backend/internal/refine/domain"
	"refine-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func seedUser(t *testing.T, db *gorm.DB, id string) *string {
	t.Helper()
	require.NoError(t, db.Create(&authdomain.User{ID: id, Provider: "kakao", ProviderID: id}).Error)
	return &id
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := NewGormRefinementRepository(testutil.NewDB(t))
	r := &domain.Refinement{OriginalText: "밥 먹었어?", RefinedText: "식사하셨습니까?"}

	require.NoError(t, repo.Create(context.Background(), r))

	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestFindRecentIsScopedAndOrdered(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormRefinementRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	base := time.Now().Add(-time.Hour)

	rows := []*domain.Refinement{
		{OriginalText: "anon old", RefinedText: "x", CreatedAt: base},
		{OriginalText: "anon new", RefinedText: "x", CreatedAt: base.Add(2 * time.Minute)},
		{OriginalText: "alice old", RefinedText: "x", UserID: alice, CreatedAt: base.Add(time.Minute)},
		{OriginalText: "alice new", RefinedText: "x", UserID: alice, CreatedAt: base.Add(3 * time.Minute)},
	}
	for _, r := range rows {
		require.NoError(t, repo.Create(ctx, r))
	}

	anon, err := repo.FindRecent(ctx, nil, 10)
	require.NoError(t, err)
	require.Len(t, anon, 2)
	assert.Equal(t, "anon new", anon[0].OriginalText)
	assert.Equal(t, "anon old", anon[1].OriginalText)
	for _, r := range anon {
		assert.Nil(t, r.UserID)
	}

	mine, err := repo.FindRecent(ctx, alice, 10)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "alice new", mine[0].OriginalText)

	limited, err := repo.FindRecent(ctx, alice, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFindByIDRespectsOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormRefinementRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	owned := &domain.Refinement{OriginalText: "o", RefinedText: "r", UserID: alice, Context: strPtr("업무")}
	require.NoError(t, repo.Create(ctx, owned))

	got, err := repo.FindByID(ctx, owned.ID, alice)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "업무", *got.Context)

	got, err = repo.FindByID(ctx, owned.ID, bob)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByID(ctx, owned.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteRespectsOwner(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewGormRefinementRepository(db)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	owned := &domain.Refinement{OriginalText: "o", RefinedText: "r", UserID: alice}
	require.NoError(t, repo.Create(ctx, owned))

	deleted, err := repo.Delete(ctx, owned.ID, bob)
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = repo.Delete(ctx, owned.ID, nil)
	require.NoError(t, err)
	assert.False(t, deleted)

	still, err := repo.FindByID(ctx, owned.ID, alice)
	require.NoError(t, err)
	assert.NotNil(t, still)

	deleted, err = repo.Delete(ctx, owned.ID, alice)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, owned.ID, alice)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAnonymousRowsAreSharedByAnonymousCallers(t *testing.T) {
	repo := NewGormRefinementRepository(testutil.NewDB(t))
	ctx := context.Background()

	anon := &domain.Refinement{OriginalText: "o", RefinedText: "r"}
	require.NoError(t, repo.Create(ctx, anon))

	deleted, err := repo.Delete(ctx, anon.ID, nil)
	require.NoError(t, err)
	assert.True(t, deleted)
}
