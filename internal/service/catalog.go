package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"housemax/internal/core/cache"
	"housemax/internal/domain"
	"housemax/internal/repo"
)

var ErrNotFound = errors.New("not found")

// Catalog serves the read side of the store. Cache may be nil.
type Catalog struct {
	Repo  *repo.Catalog
	Cache *cache.Cache
	TTL   time.Duration
	Log   *zap.Logger
}

func NewCatalog(r *repo.Catalog, c *cache.Cache, ttl time.Duration, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}
	return &Catalog{Repo: r, Cache: c, TTL: ttl, Log: log}
}

// CategoryTree returns root categories with children nested.
func (s *Catalog) CategoryTree(ctx context.Context) ([]domain.Category, error) {
	list, err := s.Repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(list), nil
}

// BuildTree nests categories under their parents, keeping input order among
// siblings. Categories whose parent is missing are treated as roots.
func BuildTree(list []domain.Category) []domain.Category {
	byParent := make(map[string][]int, len(list))
	ids := make(map[string]bool, len(list))
	for _, c := range list {
		ids[c.ID] = true
	}
	var roots []int
	for i, c := range list {
		if c.ParentID == nil || !ids[*c.ParentID] || *c.ParentID == c.ID {
			roots = append(roots, i)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], i)
	}

	seen := make(map[string]bool, len(list))
	var build func(i int) domain.Category
	build = func(i int) domain.Category {
		c := list[i]
		seen[c.ID] = true
		c.Children = nil
		for _, j := range byParent[c.ID] {
			if seen[list[j].ID] {
				continue
			}
			c.Children = append(c.Children, build(j))
		}
		return c
	}

	out := make([]domain.Category, 0, len(roots))
	for _, i := range roots {
		out = append(out, build(i))
	}
	return out
}

// Products returns one page of products with their category.
func (s *Catalog) Products(ctx context.Context, f domain.ProductFilters, sort domain.ProductSortOptions, page, limit int) ([]domain.ProductWithCategory, domain.Pagination, error) {
	pg := domain.NewPagination(page, limit, 0)
	items, total, err := s.Repo.ListProducts(ctx, f, sort, pg)
	if err != nil {
		return nil, pg, err
	}
	out := make([]domain.ProductWithCategory, len(items))
	for i, p := range items {
		out[i] = domain.ProductWithCategory{Product: p}
		if p.Category != nil {
			out[i].Category = *p.Category
		}
	}
	return out, domain.NewPagination(pg.Page, pg.Limit, total), nil
}

// Product loads one product with its category, reviews and average rating.
func (s *Catalog) Product(ctx context.Context, slug string) (*domain.ProductWithReviews, error) {
	out, err := cache.GetOrLoadJSON(s.Cache, ctx, "product:"+slug, s.TTL, func(ctx context.Context) (*domain.ProductWithReviews, error) {
		p, err := s.Repo.ProductBySlug(ctx, slug)
		if err != nil || p == nil {
			return nil, err
		}
		return withReviews(p), nil
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		s.Log.Debug("product not found", zap.String("slug", slug))
		return nil, ErrNotFound
	}
	return out, nil
}

func withReviews(p *domain.Product) *domain.ProductWithReviews {
	out := &domain.ProductWithReviews{Product: *p, Reviews: p.Reviews}
	if out.Reviews == nil {
		out.Reviews = []domain.Review{}
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	out.AverageRating = AverageRating(p.Reviews)
	return out
}

// AverageRating is the mean rating rounded to one decimal, 0 without reviews.
func AverageRating(rs []domain.Review) float64 {
	if len(rs) == 0 {
		return 0
	}
	sum := 0
	for _, r := range rs {
		sum += r.Rating
	}
	avg, _ := decimal.NewFromInt(int64(sum)).
		Div(decimal.NewFromInt(int64(len(rs)))).
		Round(1).
		Float64()
	return avg
}
