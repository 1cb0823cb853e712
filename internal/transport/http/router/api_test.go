package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"housemax/internal/core/config"
	"housemax/internal/repo"
	"housemax/internal/seed"
	"housemax/internal/service"
	"housemax/internal/testhelpers"
	"housemax/internal/transport/http/handler"
	"housemax/internal/transport/http/router"
)

type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Error      string          `json:"error"`
	Pagination *struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int   `json:"totalPages"`
	} `json:"pagination"`
}

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testhelpers.NewTestDB(t)
	catalog := repo.NewCatalog(db)
	_, err := seed.Run(context.Background(), catalog, seed.Options{}, nil)
	require.NoError(t, err)

	svc := service.NewCatalog(catalog, nil, 0, nil)
	return router.NewAPIEngine(zap.NewNop(), config.HTTP{}, db, handler.NewCatalog(svc))
}

func get(t *testing.T, h http.Handler, url string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	var env envelope
	if w.Header().Get("Content-Type") != "" && w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func TestHealth(t *testing.T) {
	h := newAPI(t)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":1}`, w.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	h := newAPI(t)
	_, _ = get(t, h, "/api/v1/categories")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "housemax_http_requests_total")
}

func TestCategories(t *testing.T) {
	code, env := get(t, newAPI(t), "/api/v1/categories")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var cats []struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cats))
	require.Len(t, cats, 5)
	assert.Equal(t, "bedroom", cats[0].Slug)
}

type productRow struct {
	Slug     string `json:"slug"`
	Price    string `json:"price"`
	Category struct {
		Slug string `json:"slug"`
	} `json:"category"`
}

func TestProductsList(t *testing.T) {
	h := newAPI(t)

	code, env := get(t, h, "/api/v1/products?sort=price&order=asc&limit=3&page=2")
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Page)
	assert.Equal(t, 3, env.Pagination.Limit)
	assert.EqualValues(t, 10, env.Pagination.Total)
	assert.Equal(t, 4, env.Pagination.TotalPages)

	var rows []productRow
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "floor-lamp", rows[0].Slug)
	assert.Equal(t, "home-decor", rows[0].Category.Slug)

	code, env = get(t, h, "/api/v1/products?search=lamp&inStock=true")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "199.99", rows[0].Price)
}

func TestProductsListRejectsBadInput(t *testing.T) {
	h := newAPI(t)
	for _, url := range []string{
		"/api/v1/products?sort=popularity",
		"/api/v1/products?order=sideways",
		"/api/v1/products?minPrice=abc",
		"/api/v1/products?minPrice=500&maxPrice=100",
		"/api/v1/products?inStock=maybe",
	} {
		code, env := get(t, h, url)
		assert.Equal(t, http.StatusBadRequest, code, url)
		assert.False(t, env.Success, url)
		assert.NotEmpty(t, env.Error, url)
	}
}

func TestProductDetail(t *testing.T) {
	h := newAPI(t)

	code, env := get(t, h, "/api/v1/products/smart-tv-55-inch")
	require.Equal(t, http.StatusOK, code)
	var p struct {
		Slug          string  `json:"slug"`
		AverageRating float64 `json:"averageRating"`
		Category      struct {
			Slug string `json:"slug"`
		} `json:"category"`
		Reviews []struct {
			Rating int `json:"rating"`
		} `json:"reviews"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "smart-tv-55-inch", p.Slug)
	assert.Equal(t, "electronics", p.Category.Slug)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, 5.0, p.AverageRating)

	code, env = get(t, h, "/api/v1/products/does-not-exist")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "product not found", env.Error)
}

type order []string

func (o *order) MountAPI(g *gin.RouterGroup) { *o = append(*o, g.BasePath()) }

type early struct{ *order }

func (early) Priority() int { return 1 }
func (e early) MountAPI(g *gin.RouterGroup) { *e.order = append(*e.order, "early") }

func TestMountAPIPriority(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var got order
	router.MountAPI(gin.New().Group("/api/v1"), &got, early{&got})
	assert.Equal(t, order{"early", "/api/v1"}, got)
}
