package domain

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string          `json:"name" binding:"required"`
	Slug        string          `json:"slug" binding:"required"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock" binding:"gte=0"`
	ImageURL    *string         `json:"imageUrl,omitempty"`
	CategoryID  string          `json:"categoryId" binding:"required"`
}

func (in CreateProductInput) Product() Product {
	return Product{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		ImageURL:    in.ImageURL,
		CategoryID:  in.CategoryID,
	}
}

// UpdateProductInput is a partial update; nil fields are left alone.
type UpdateProductInput struct {
	ID          string           `json:"id" binding:"required"`
	Name        *string          `json:"name,omitempty"`
	Slug        *string          `json:"slug,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Stock       *int             `json:"stock,omitempty"`
	ImageURL    *string          `json:"imageUrl,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
}

type CreateCategoryInput struct {
	Name     string  `json:"name" binding:"required"`
	Slug     string  `json:"slug" binding:"required"`
	ParentID *string `json:"parentId,omitempty"`
}

func (in CreateCategoryInput) Category() Category {
	return Category{Name: in.Name, Slug: in.Slug, ParentID: in.ParentID}
}

type CreateReviewInput struct {
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty"`
	ProductID string  `json:"productId" binding:"required"`
	UserID    string  `json:"userId" binding:"required"`
}

func (in CreateReviewInput) Review() Review {
	return Review{Rating: in.Rating, Comment: in.Comment, ProductID: in.ProductID, UserID: in.UserID}
}

type CreateOrderItemInput struct {
	ProductID string          `json:"productId" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

type CreateOrderInput struct {
	UserID          string                 `json:"userId" binding:"required"`
	Items           []CreateOrderItemInput `json:"items" binding:"required,dive"`
	Total           decimal.Decimal        `json:"total"`
	ShippingAddress *string                `json:"shippingAddress,omitempty"`
	BillingAddress  *string                `json:"billingAddress,omitempty"`
}

type AddToCartInput struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity,omitempty"`
}

// Qty returns the requested quantity, 1 when omitted.
func (in AddToCartInput) Qty() int {
	if in.Quantity == nil || *in.Quantity < 1 {
		return 1
	}
	return *in.Quantity
}
