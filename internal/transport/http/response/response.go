package response

import (
	"github.com/gin-gonic/gin"

	"housemax/internal/domain"
)

func OK(data any) domain.APIResponse {
	return domain.APIResponse{Success: true, Data: data}
}

// Error builds a failure envelope; an empty msg falls back to Message(status).
func Error(status int, msg string) domain.APIResponse {
	if msg == "" {
		msg = Message(status)
	}
	return domain.APIResponse{Success: false, Error: msg}
}

func Page(items any, p domain.Pagination) domain.PaginatedResponse {
	return domain.PaginatedResponse{APIResponse: OK(items), Pagination: p}
}

// Abort writes a failure envelope with the given status and stops the chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Error(status, msg))
}
