package domain

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"housemax/pkg/utils"
)

// Category is a node in the catalog tree. Slug is the natural key.
type Category struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Slug      string    `gorm:"uniqueIndex;size:128;not null" json:"slug"`
	ParentID  *string   `gorm:"size:36;index" json:"parentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Parent   *Category  `gorm:"foreignKey:ParentID" json:"-"`
	Children []Category `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Products []Product  `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	return nil
}

func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("category", "name is required")
	}
	if strings.TrimSpace(c.Slug) == "" {
		return invalid("category", "slug is required")
	}
	if c.ParentID != nil && *c.ParentID == c.ID && c.ID != "" {
		return invalid("category", "category cannot be its own parent")
	}
	return nil
}
