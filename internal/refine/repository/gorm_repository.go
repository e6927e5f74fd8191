package repository

import (
	"context"
	"errors"
	"time"

	"refine-backend/internal/refine/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRefinementRepository implements RefinementRepository using GORM
type gormRefinementRepository struct {
	db *gorm.DB
}

// NewGormRefinementRepository creates a new GORM-based RefinementRepository
func NewGormRefinementRepository(db *gorm.DB) RefinementRepository {
	return &gormRefinementRepository{db: db}
}

func (r *gormRefinementRepository) Create(ctx context.Context, refinement *domain.Refinement) error {
	if refinement.ID == "" {
		refinement.ID = uuid.New().String()
	}
	if refinement.CreatedAt.IsZero() {
		refinement.CreatedAt = time.Now()
	}
	return r.db.WithContext(ctx).Create(refinement).Error
}

func (r *gormRefinementRepository) FindRecent(ctx context.Context, userID *string, limit int) ([]*domain.Refinement, error) {
	var refinements []*domain.Refinement
	err := scoped(r.db.WithContext(ctx), userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&refinements).Error
	return refinements, err
}

func (r *gormRefinementRepository) FindByID(ctx context.Context, id string, userID *string) (*domain.Refinement, error) {
	var refinement domain.Refinement
	err := scoped(r.db.WithContext(ctx), userID).Where("id = ?", id).First(&refinement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &refinement, nil
}

func (r *gormRefinementRepository) Delete(ctx context.Context, id string, userID *string) (bool, error) {
	result := scoped(r.db.WithContext(ctx), userID).Where("id = ?", id).Delete(&domain.Refinement{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func scoped(db *gorm.DB, userID *string) *gorm.DB {
	if userID != nil {
		return db.Where("user_id = ?", *userID)
	}
	return db.Where("user_id IS NULL")
}
