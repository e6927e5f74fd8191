package repository

import (
	"context"
	"errors"
	"time"

	authdomain "refine-backend/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) FindOrCreate(ctx context.Context, profile authdomain.UserProfile) (*authdomain.User, error) {
	var user authdomain.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("provider = ? AND provider_id = ?", profile.Provider, profile.ProviderID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			now := time.Now()
			user = authdomain.User{
				ID:         uuid.New().String(),
				Email:      profile.Email,
				Name:       profile.Name,
				Provider:   profile.Provider,
				ProviderID: profile.ProviderID,
				AvatarURL:  profile.AvatarURL,
				CreatedAt:  now,
				UpdatedAt:  now,
			}
			return tx.Create(&user).Error
		}
		if err != nil {
			return err
		}

		updates := map[string]interface{}{}
		if profile.Email != nil {
			updates["email"] = *profile.Email
		}
		if profile.Name != nil {
			updates["name"] = *profile.Name
		}
		if profile.AvatarURL != nil {
			updates["avatar_url"] = *profile.AvatarURL
		}
		if len(updates) == 0 {
			return nil
		}
		updates["updated_at"] = time.Now()

		if err := tx.Model(&authdomain.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", user.ID).First(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
