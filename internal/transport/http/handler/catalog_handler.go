package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"housemax/internal/domain"
	"housemax/internal/service"
	httpez "housemax/internal/transport/http/ez"
	resp "housemax/internal/transport/http/response"
)

// Catalog mounts the read-only catalog endpoints under /api/v1.
type Catalog struct {
	Svc *service.Catalog
}

func NewCatalog(svc *service.Catalog) *Catalog { return &Catalog{Svc: svc} }

func (h *Catalog) Priority() int { return 10 }

type productsQuery struct {
	CategoryID string `form:"categoryId"`
	MinPrice   string `form:"minPrice"`
	MaxPrice   string `form:"maxPrice"`
	InStock    *bool  `form:"inStock"`
	Search     string `form:"search"`
	Sort       string `form:"sort"`
	Order      string `form:"order"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

func (q productsQuery) filters() (domain.ProductFilters, error) {
	f := domain.ProductFilters{CategoryID: q.CategoryID, InStock: q.InStock, Search: q.Search}
	var err error
	if f.MinPrice, err = parsePrice("minPrice", q.MinPrice); err != nil {
		return f, err
	}
	if f.MaxPrice, err = parsePrice("maxPrice", q.MaxPrice); err != nil {
		return f, err
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return f, httpez.BadRequest("minPrice must not exceed maxPrice")
	}
	return f, nil
}

func parsePrice(name, s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return nil, httpez.BadRequest("invalid " + name)
	}
	return &d, nil
}

type productPage struct {
	Items      []domain.ProductWithCategory
	Pagination domain.Pagination
}

func (p productPage) Envelope() any { return resp.Page(p.Items, p.Pagination) }

func (h *Catalog) MountAPI(api *gin.RouterGroup) {
	ez := httpez.New(api)

	// GET /api/v1/categories
	httpez.RegisterAction(ez, httpez.Action[struct{}, []domain.Category]{
		Method: http.MethodGet,
		Path:   "/categories",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) ([]domain.Category, error) {
			tree, err := h.Svc.CategoryTree(c.Request.Context())
			if err != nil {
				return nil, httpez.Internal("list categories failed", err)
			}
			if tree == nil {
				tree = []domain.Category{}
			}
			return tree, nil
		},
	})

	// GET /api/v1/products
	httpez.RegisterAction(ez, httpez.Action[productsQuery, productPage]{
		Method: http.MethodGet,
		Path:   "/products",
		Binder: httpez.BindQuery,
		Handler: func(c *gin.Context, in *productsQuery) (productPage, error) {
			f, err := in.filters()
			if err != nil {
				return productPage{}, err
			}
			sort, err := domain.ParseProductSort(in.Sort, in.Order)
			if err != nil {
				return productPage{}, err
			}
			items, pg, err := h.Svc.Products(c.Request.Context(), f, sort, in.Page, in.Limit)
			if err != nil {
				return productPage{}, httpez.Internal("list products failed", err)
			}
			return productPage{Items: items, Pagination: pg}, nil
		},
	})

	// GET /api/v1/products/:slug
	httpez.RegisterAction(ez, httpez.Action[struct{}, *domain.ProductWithReviews]{
		Method: http.MethodGet,
		Path:   "/products/:slug",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (*domain.ProductWithReviews, error) {
			p, err := h.Svc.Product(c.Request.Context(), c.Param("slug"))
			if errors.Is(err, service.ErrNotFound) {
				return nil, httpez.NotFound("product not found")
			}
			if err != nil {
				return nil, httpez.Internal("load product failed", err)
			}
			return p, nil
		},
	})
}
