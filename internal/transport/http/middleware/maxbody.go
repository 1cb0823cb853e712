package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "housemax/internal/transport/http/response"
)

// MaxBodyBytes caps the request body at n bytes.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > n {
			resp.Abort(c, http.StatusRequestEntityTooLarge, "")
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}
