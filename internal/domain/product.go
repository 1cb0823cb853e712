package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"housemax/pkg/utils"
)

// Product is a sellable catalog entry. Slug is the natural key.
type Product struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	Name        string          `gorm:"size:191;not null" json:"name"`
	Slug        string          `gorm:"uniqueIndex;size:191;not null" json:"slug"`
	Description *string         `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;check:chk_products_price,price >= 0" json:"price"`
	Stock       int             `gorm:"not null;default:0;check:chk_products_stock,stock >= 0" json:"stock"`
	ImageURL    *string         `gorm:"size:512" json:"imageUrl,omitempty"`
	CategoryID  string          `gorm:"size:36;not null;index" json:"categoryId"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Reviews  []Review  `gorm:"foreignKey:ProductID" json:"-"`
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = utils.NewID()
	}
	return nil
}

func (p *Product) Validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return invalid("product", "name is required")
	case strings.TrimSpace(p.Slug) == "":
		return invalid("product", "slug is required")
	case p.CategoryID == "":
		return invalid("product", "category is required")
	case p.Price.IsNegative():
		return invalid("product", "price must not be negative")
	case p.Stock < 0:
		return invalid("product", "stock must not be negative")
	}
	return nil
}

type ProductWithCategory struct {
	Product
	Category Category `json:"category"`
}

type ProductWithReviews struct {
	Product
	Category      Category `json:"category"`
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
}
