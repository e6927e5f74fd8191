package usecase

import (
	"context"
	"errors"

	"refine-backend/internal/refine/domain"
	"refine-backend/internal/refine/dto"
)

var (
	ErrNotFound  = errors.New("refinement not found")
	ErrEmptyText = errors.New("text is required")
)

// RefineUsecase defines the interface for refinement business logic.
// A nil userID means an anonymous caller.
type RefineUsecase interface {
	// Refine calls exactly one upstream provider and stores the best result.
	Refine(ctx context.Context, userID *string, req dto.RefineRequest) (*dto.RefineResponse, error)

	// History lists recent refinements; limit is clamped to the configured range.
	History(ctx context.Context, userID *string, limit int) ([]*domain.Refinement, error)

	GetRefinement(ctx context.Context, userID *string, id string) (*domain.Refinement, error)

	DeleteRefinement(ctx context.Context, userID *string, id string) error
}
