package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"housemax/pkg/utils"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderShipped    OrderStatus = "SHIPPED"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order and OrderItem are owned by the storefront; the seed never writes them.
type Order struct {
	ID              string          `gorm:"primaryKey;size:36" json:"id"`
	UserID          string          `gorm:"size:36;not null;index" json:"userId"`
	Status          OrderStatus     `gorm:"size:16;not null;default:PENDING" json:"status"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	ShippingAddress *string         `gorm:"type:text" json:"shippingAddress,omitempty"`
	BillingAddress  *string         `gorm:"type:text" json:"billingAddress,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = utils.NewID()
	}
	return nil
}

type OrderItem struct {
	ID        string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID   string          `gorm:"size:36;not null;index" json:"orderId"`
	ProductID string          `gorm:"size:36;not null;index" json:"productId"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`

	Product *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = utils.NewID()
	}
	return nil
}

type OrderItemWithProduct struct {
	OrderItem
	Product Product `json:"product"`
}

type OrderWithItems struct {
	Order
	Items []OrderItemWithProduct `json:"items"`
	User  User                   `json:"user"`
}
