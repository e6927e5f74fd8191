package repository

import (
	"context"

	"refine-backend/internal/refine/domain"
)

// RefinementRepository is the refinement store. Every read and delete is
// scoped: a non-nil userID matches that user's rows, a nil userID matches
// only rows without an owner.
type RefinementRepository interface {
	Create(ctx context.Context, refinement *domain.Refinement) error

	// FindRecent returns at most limit rows, newest first.
	FindRecent(ctx context.Context, userID *string, limit int) ([]*domain.Refinement, error)

	// FindByID returns nil, nil when the row is absent or out of scope.
	FindByID(ctx context.Context, id string, userID *string) (*domain.Refinement, error)

	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id string, userID *string) (bool, error)
}
