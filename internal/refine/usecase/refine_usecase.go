package usecase

import (
	"context"
	"fmt"
	"strings"

	"refine-backend/internal/refine/domain"
	"refine-backend/internal/refine/dto"
	"refine-backend/internal/refine/repository"
	"refine-backend/pkg/ai"

	"go.uber.org/zap"
)

// refineUsecase implements RefineUsecase
type refineUsecase struct {
	repo         repository.RefinementRepository
	refiner      ai.Refiner
	defaultLimit int
	maxLimit     int
	logger       *zap.Logger
}

// NewRefineUsecase creates a new RefineUsecase
func NewRefineUsecase(repo repository.RefinementRepository, refiner ai.Refiner, defaultLimit, maxLimit int, logger *zap.Logger) RefineUsecase {
	if defaultLimit <= 0 {
		defaultLimit = 50
	}
	if maxLimit < defaultLimit {
		maxLimit = defaultLimit
	}
	return &refineUsecase{
		repo:         repo,
		refiner:      refiner,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		logger:       logger,
	}
}

func (u *refineUsecase) Refine(ctx context.Context, userID *string, req dto.RefineRequest) (*dto.RefineResponse, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	var situation string
	if req.Context != nil {
		situation = *req.Context
	}

	result, err := u.refiner.Refine(ctx, ai.RefineInput{
		Text:    req.Text,
		Context: situation,
		APIKey:  req.OpenAIAPIKey,
	})
	if err != nil {
		return nil, err
	}

	refinement := &domain.Refinement{
		UserID:       userID,
		OriginalText: req.Text,
		RefinedText:  result.RefinedText,
		Context:      req.Context,
	}
	if err := u.repo.Create(ctx, refinement); err != nil {
		return nil, fmt.Errorf("store refinement: %w", err)
	}

	u.logger.Debug("refinement stored",
		zap.String("id", refinement.ID),
		zap.String("provider", string(result.Provider)),
		zap.Int("suggestions", len(result.Suggestions)),
		zap.Bool("anonymous", userID == nil),
	)

	return &dto.RefineResponse{
		ID:           refinement.ID,
		OriginalText: refinement.OriginalText,
		RefinedText:  result.RefinedText,
		Suggestions:  result.Suggestions,
		Context:      refinement.Context,
		CreatedAt:    refinement.CreatedAt,
		Provider:     result.Provider,
	}, nil
}

func (u *refineUsecase) History(ctx context.Context, userID *string, limit int) ([]*domain.Refinement, error) {
	if limit <= 0 {
		limit = u.defaultLimit
	}
	if limit > u.maxLimit {
		limit = u.maxLimit
	}

	refinements, err := u.repo.FindRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if refinements == nil {
		refinements = []*domain.Refinement{}
	}
	return refinements, nil
}

func (u *refineUsecase) GetRefinement(ctx context.Context, userID *string, id string) (*domain.Refinement, error) {
	refinement, err := u.repo.FindByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if refinement == nil {
		return nil, ErrNotFound
	}
	return refinement, nil
}

func (u *refineUsecase) DeleteRefinement(ctx context.Context, userID *string, id string) error {
	deleted, err := u.repo.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
