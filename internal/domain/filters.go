package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type ProductFilters struct {
	CategoryID string           `form:"categoryId" json:"categoryId,omitempty"`
	MinPrice   *decimal.Decimal `form:"-" json:"minPrice,omitempty"`
	MaxPrice   *decimal.Decimal `form:"-" json:"maxPrice,omitempty"`
	InStock    *bool            `form:"inStock" json:"inStock,omitempty"`
	Search     string           `form:"search" json:"search,omitempty"`
}

type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "createdAt"
	SortByRating    SortField = "rating"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

type ProductSortOptions struct {
	Field SortField `json:"field"`
	Order SortOrder `json:"order"`
}

var DefaultProductSort = ProductSortOptions{Field: SortByCreatedAt, Order: Desc}

// ParseProductSort validates field and order; empty values fall back to DefaultProductSort.
func ParseProductSort(field, order string) (ProductSortOptions, error) {
	s := DefaultProductSort
	if field != "" {
		s.Field = SortField(field)
	}
	if order != "" {
		s.Order = SortOrder(order)
	}
	switch s.Field {
	case SortByName, SortByPrice, SortByCreatedAt, SortByRating:
	default:
		return s, fmt.Errorf("%w sort field %q", ErrInvalid, field)
	}
	if s.Order != Asc && s.Order != Desc {
		return s, fmt.Errorf("%w sort order %q", ErrInvalid, order)
	}
	return s, nil
}

// Column maps the sort field onto a products column. Rating has no column.
func (s ProductSortOptions) Column() string {
	switch s.Field {
	case SortByName:
		return "name"
	case SortByPrice:
		return "price"
	case SortByCreatedAt:
		return "created_at"
	}
	return ""
}
