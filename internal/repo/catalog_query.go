package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"housemax/internal/domain"
)

func (r *Catalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var list []domain.Category
	err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error
	return list, err
}

// ListProducts returns one page of products matching f, with Category loaded,
// plus the total number of matches.
func (r *Catalog) ListProducts(ctx context.Context, f domain.ProductFilters, s domain.ProductSortOptions, page domain.Pagination) ([]domain.Product, int64, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&domain.Product{}).Scopes(productFilter(f))
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base()

	desc := s.Order == domain.Desc
	if col := s.Column(); col != "" {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Table: "products", Name: col}, Desc: desc})
	} else {
		dir := "ASC"
		if desc {
			dir = "DESC"
		}
		q = q.Select("products.*").
			Joins("LEFT JOIN (SELECT product_id, AVG(rating) AS avg_rating FROM reviews GROUP BY product_id) r ON r.product_id = products.id").
			Order("COALESCE(r.avg_rating, 0) " + dir)
	}
	q = q.Order("products.slug asc")

	var items []domain.Product
	err := q.Preload("Category").Limit(page.Limit).Offset(page.Offset()).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func productFilter(f domain.ProductFilters) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if f.CategoryID != "" {
			q = q.Where("products.category_id = ?", f.CategoryID)
		}
		if f.MinPrice != nil {
			q = q.Where("products.price >= ?", *f.MinPrice)
		}
		if f.MaxPrice != nil {
			q = q.Where("products.price <= ?", *f.MaxPrice)
		}
		if f.InStock != nil {
			if *f.InStock {
				q = q.Where("products.stock > 0")
			} else {
				q = q.Where("products.stock = 0")
			}
		}
		if s := strings.TrimSpace(f.Search); s != "" {
			like := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
			q = q.Where("LOWER(products.name) LIKE ? ESCAPE '!' OR LOWER(products.description) LIKE ? ESCAPE '!'", like, like)
		}
		return q
	}
}

// likeEscaper escapes LIKE wildcards for ESCAPE '!'.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ProductBySlug loads a product with its category and reviews (newest first).
func (r *Catalog) ProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	p, err := findOne[domain.Product](ctx, r.db.Preload("Category").Preload("Reviews", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at desc")
	}), "slug = ?", slug)
	return p, err
}
