package domain

import (
	"time"

	"gorm.io/gorm"

	"housemax/pkg/utils"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review has no uniqueness constraint: a user may review a product many times.
type Review struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Rating    int       `gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment,omitempty"`
	UserID    string    `gorm:"size:36;not null;index" json:"userId"`
	ProductID string    `gorm:"size:36;not null;index" json:"productId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = utils.NewID()
	}
	return nil
}

func (r *Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return invalid("review", "rating must be between 1 and 5")
	}
	if r.UserID == "" || r.ProductID == "" {
		return invalid("review", "author and product are required")
	}
	return nil
}
