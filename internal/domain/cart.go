package domain

import (
	"time"

	"gorm.io/gorm"

	"housemax/pkg/utils"
)

// Cart is the open, pre-checkout basket of a user. One per user.
type Cart struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"size:36;uniqueIndex;not null" json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c *Cart) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = utils.NewID()
	}
	return nil
}

type CartItem struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	CartID    string `gorm:"size:36;not null;index" json:"cartId"`
	ProductID string `gorm:"size:36;not null;index" json:"productId"`
	Quantity  int    `gorm:"not null;default:1" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (i *CartItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = utils.NewID()
	}
	return nil
}

type CartItemWithProduct struct {
	CartItem
	Product Product `json:"product"`
}

type CartWithItems struct {
	Cart
	Items []CartItemWithProduct `json:"items"`
}
