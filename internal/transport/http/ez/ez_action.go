package ez

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"housemax/internal/domain"
	resp "housemax/internal/transport/http/response"
)

// EZ registers actions on a router group.
type EZ struct{ g *gin.RouterGroup }

func New(g *gin.RouterGroup) EZ { return EZ{g: g} }

type Binder string

const (
	BindJSON  Binder = "json"
	BindQuery Binder = "query"
	BindNone  Binder = "none" // read c.Param yourself
)

// AErr carries an HTTP status to the client.
type AErr struct {
	Status int
	Msg    string
	Err    error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return resp.Message(e.Status)
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error { return &AErr{Status: http.StatusBadRequest, Msg: msg} }
func NotFound(msg string) error   { return &AErr{Status: http.StatusNotFound, Msg: msg} }
func Internal(msg string, err error) error {
	return &AErr{Status: http.StatusInternalServerError, Msg: msg, Err: err}
}

// Enveloper lets an output choose its own response body, e.g. a paginated one.
type Enveloper interface{ Envelope() any }

// Action is one endpoint: I is bound from the request, O is returned as data.
type Action[I any, O any] struct {
	Method  string
	Path    string
	Binder  Binder
	Handler func(c *gin.Context, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			resp.Abort(c, http.StatusBadRequest, bindErr.Error())
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			writeError(c, err)
			return
		}
		if env, ok := any(out).(Enveloper); ok {
			c.JSON(http.StatusOK, env.Envelope())
			return
		}
		c.JSON(http.StatusOK, resp.OK(out))
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}

func writeError(c *gin.Context, err error) {
	var ae *AErr
	switch {
	case errors.As(err, &ae):
		if ae.Status >= http.StatusInternalServerError {
			_ = c.Error(err)
			resp.Abort(c, ae.Status, ae.Msg)
			return
		}
		resp.Abort(c, ae.Status, ae.Error())
	case errors.Is(err, domain.ErrInvalid):
		resp.Abort(c, http.StatusBadRequest, err.Error())
	default:
		// internal details stay in the log
		_ = c.Error(err)
		resp.Abort(c, http.StatusInternalServerError, "")
	}
}
