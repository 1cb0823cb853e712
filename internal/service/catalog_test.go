package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housemax/internal/core/cache"
	"housemax/internal/domain"
	"housemax/internal/repo"
	"housemax/internal/seed"
	"housemax/internal/service"
	"housemax/internal/testhelpers"
)

func ptr(s string) *string { return &s }

func TestBuildTree(t *testing.T) {
	list := []domain.Category{
		{ID: "1", Name: "Home"},
		{ID: "2", Name: "Kitchen", ParentID: ptr("1")},
		{ID: "3", Name: "Knives", ParentID: ptr("2")},
		{ID: "4", Name: "Orphan", ParentID: ptr("missing")},
		{ID: "5", Name: "Bedroom", ParentID: ptr("1")},
	}

	tree := service.BuildTree(list)

	require.Len(t, tree, 2)
	assert.Equal(t, "Home", tree[0].Name)
	assert.Equal(t, "Orphan", tree[1].Name)
	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "Kitchen", tree[0].Children[0].Name)
	assert.Equal(t, "Bedroom", tree[0].Children[1].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "Knives", tree[0].Children[0].Children[0].Name)
}

func TestBuildTreeSelfParent(t *testing.T) {
	tree := service.BuildTree([]domain.Category{{ID: "1", Name: "Loop", ParentID: ptr("1")}})
	require.Len(t, tree, 1)
	assert.Empty(t, tree[0].Children)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, service.AverageRating(nil))
	assert.Equal(t, 4.5, service.AverageRating([]domain.Review{{Rating: 4}, {Rating: 5}}))
	assert.Equal(t, 4.3, service.AverageRating([]domain.Review{{Rating: 4}, {Rating: 4}, {Rating: 5}}))
}

func newService(t *testing.T, mode seed.ReviewMode, runs int) *service.Catalog {
	t.Helper()
	c := repo.NewCatalog(testhelpers.NewTestDB(t))
	for i := 0; i < runs; i++ {
		_, err := seed.Run(context.Background(), c, seed.Options{ReviewMode: mode}, nil)
		require.NoError(t, err)
	}
	return service.NewCatalog(c, nil, 0, nil)
}

func TestProducts(t *testing.T) {
	svc := newService(t, seed.ReviewsAppend, 1)

	items, pg, err := svc.Products(context.Background(), domain.ProductFilters{}, domain.DefaultProductSort, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, domain.Pagination{Page: 1, Limit: domain.DefaultPageLimit, Total: 10, TotalPages: 1}, pg)
	require.Len(t, items, 10)
	for _, p := range items {
		assert.Equal(t, p.CategoryID, p.Category.ID)
	}
}

func TestProductDetail(t *testing.T) {
	// two append-mode runs leave two identical reviews on each reviewed product
	svc := newService(t, seed.ReviewsAppend, 2)

	p, err := svc.Product(context.Background(), "modern-sofa")
	require.NoError(t, err)
	assert.Equal(t, "furniture", p.Category.Slug)
	assert.Len(t, p.Reviews, 2)
	assert.Equal(t, 4.0, p.AverageRating)

	p, err = svc.Product(context.Background(), "coffee-maker")
	require.NoError(t, err)
	assert.NotNil(t, p.Reviews)
	assert.Empty(t, p.Reviews)
	assert.Equal(t, 0.0, p.AverageRating)

	_, err = svc.Product(context.Background(), "nope")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestCategoryTree(t *testing.T) {
	svc := newService(t, seed.ReviewsKeyed, 1)
	tree, err := svc.CategoryTree(context.Background())
	require.NoError(t, err)
	assert.Len(t, tree, 5)
}

func TestProductDetailThroughRedis(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rc := cache.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = rc.Close() })

	c := repo.NewCatalog(testhelpers.NewTestDB(t))
	svc := service.NewCatalog(c, rc, time.Minute, nil)

	// a lookup before seeding must not pin the miss
	_, err := svc.Product(ctx, "smart-tv-55-inch")
	require.ErrorIs(t, err, service.ErrNotFound)
	assert.False(t, mr.Exists("housemax:product:smart-tv-55-inch"))

	_, err = seed.Run(ctx, c, seed.Options{}, nil)
	require.NoError(t, err)

	p, err := svc.Product(ctx, "smart-tv-55-inch")
	require.NoError(t, err)
	assert.Equal(t, "electronics", p.Category.Slug)
	assert.Equal(t, 5.0, p.AverageRating)
	assert.True(t, mr.Exists("housemax:product:smart-tv-55-inch"))

	// served from redis once cached
	require.NoError(t, c.DB().Exec("DELETE FROM reviews").Error)
	cached, err := svc.Product(ctx, "smart-tv-55-inch")
	require.NoError(t, err)
	assert.Len(t, cached.Reviews, 1)
	assert.Equal(t, p.ID, cached.ID)
}
