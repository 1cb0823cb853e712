package ez

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"housemax/internal/domain"
	resp "housemax/internal/transport/http/response"
)

type echoIn struct {
	Name string `form:"name" binding:"required"`
}

type paged struct{ items []string }

func (p paged) Envelope() any {
	return resp.Page(p.items, domain.NewPagination(1, 10, int64(len(p.items))))
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	e := New(r.Group("/v1"))

	RegisterAction(e, Action[echoIn, string]{
		Method: http.MethodGet,
		Path:   "/echo",
		Binder: BindQuery,
		Handler: func(_ *gin.Context, in *echoIn) (string, error) {
			switch in.Name {
			case "missing":
				return "", NotFound("no such thing")
			case "invalid":
				return "", fmt.Errorf("%w name", domain.ErrInvalid)
			case "boom":
				return "", errors.New("dsn=postgres://secret")
			}
			return "hi " + in.Name, nil
		},
	})
	RegisterAction(e, Action[struct{}, paged]{
		Method: http.MethodGet,
		Path:   "/paged",
		Binder: BindNone,
		Handler: func(*gin.Context, *struct{}) (paged, error) {
			return paged{items: []string{"a", "b"}}, nil
		},
	})
	return r
}

func get(r http.Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestRegisterActionResponses(t *testing.T) {
	r := newEngine()

	cases := []struct {
		url    string
		status int
		body   string
	}{
		{"/v1/echo?name=ann", http.StatusOK, `{"success":true,"data":"hi ann"}`},
		{"/v1/echo", http.StatusBadRequest, ""},
		{"/v1/echo?name=missing", http.StatusNotFound, `{"success":false,"error":"no such thing"}`},
		{"/v1/echo?name=invalid", http.StatusBadRequest, `{"success":false,"error":"invalid name"}`},
		{"/v1/echo?name=boom", http.StatusInternalServerError, `{"success":false,"error":"internal error"}`},
		{"/v1/paged", http.StatusOK, `{"success":true,"data":["a","b"],"pagination":{"page":1,"limit":10,"total":2,"totalPages":1}}`},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			w := get(r, tc.url)
			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.JSONEq(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestAErrMessage(t *testing.T) {
	assert.Equal(t, "not found", (&AErr{Status: http.StatusNotFound}).Error())
	inner := errors.New("db down")
	err := Internal("", inner)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "db down", err.Error())
}
