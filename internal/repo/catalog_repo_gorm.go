package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"housemax/internal/domain"
)

// Catalog is the store interface for the catalog entities. Upserts are keyed by
// natural key (slug, email) and never update an existing row.
type Catalog struct {
	db    *gorm.DB
	locks keyLocks
}

func NewCatalog(db *gorm.DB) *Catalog { return &Catalog{db: db} }

func (r *Catalog) DB() *gorm.DB { return r.db }

func (r *Catalog) FindCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	return findOne[domain.Category](ctx, r.db, "slug = ?", slug)
}

func (r *Catalog) UpsertCategory(ctx context.Context, c *domain.Category) (bool, error) {
	if err := c.Validate(); err != nil {
		return false, err
	}
	return createIfAbsent(ctx, r.db, c, map[string]any{"slug": c.Slug})
}

func (r *Catalog) FindProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return findOne[domain.Product](ctx, r.db, "slug = ?", slug)
}

func (r *Catalog) UpsertProduct(ctx context.Context, p *domain.Product) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	return createIfAbsent(ctx, r.db, p, map[string]any{"slug": p.Slug})
}

func (r *Catalog) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return findOne[domain.User](ctx, r.db, "email = ?", email)
}

func (r *Catalog) UpsertUser(ctx context.Context, u *domain.User) (bool, error) {
	if !u.Role.Valid() {
		return false, errors.New("invalid role " + string(u.Role))
	}
	u.Email = strings.TrimSpace(u.Email)
	return createIfAbsent(ctx, r.db, u, map[string]any{"email": u.Email})
}

// CreateReview always inserts; reviews carry no uniqueness constraint.
func (r *Catalog) CreateReview(ctx context.Context, rv *domain.Review) error {
	if err := rv.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(rv).Error
}

// UpsertReview keys a review by (author, product) without a unique index.
func (r *Catalog) UpsertReview(ctx context.Context, rv *domain.Review) (bool, error) {
	if err := rv.Validate(); err != nil {
		return false, err
	}
	return findOrCreate(ctx, r.db, &r.locks, rv, map[string]any{
		"user_id":    rv.UserID,
		"product_id": rv.ProductID,
	})
}

// Count returns the number of rows of model, optionally filtered.
func (r *Catalog) Count(ctx context.Context, model any, where ...any) (int64, error) {
	q := r.db.WithContext(ctx).Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}

func findOne[T any](ctx context.Context, db *gorm.DB, query string, args ...any) (*T, error) {
	var v T
	err := db.WithContext(ctx).Where(query, args...).First(&v).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}
