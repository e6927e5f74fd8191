package domain

import (
	"time"

	authdomain "refine-backend/internal/auth/domain"
)

// Refinement is one stored original/rewritten pair. A nil UserID marks a row
// created without a session; those rows are shared by all anonymous callers.
type Refinement struct {
	ID           string           `json:"id" gorm:"primaryKey;size:36"`
	UserID       *string          `json:"-" gorm:"size:36;index:idx_refinements_user_id"`
	User         *authdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OriginalText string           `json:"originalText" gorm:"type:text;not null"`
	RefinedText  string           `json:"refinedText" gorm:"type:text;not null"`
	Context      *string          `json:"context" gorm:"size:255"`
	CreatedAt    time.Time        `json:"createdAt" gorm:"index:idx_refinements_created_at,sort:desc"`
}
