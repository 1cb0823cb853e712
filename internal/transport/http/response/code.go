package response

import "net/http"

// Messages for errors that carry no text of their own.
var statusMsg = map[int]string{
	http.StatusBadRequest:            "bad request",
	http.StatusNotFound:              "not found",
	http.StatusRequestEntityTooLarge: "request body too large",
	http.StatusTooManyRequests:       "too many requests",
	http.StatusInternalServerError:   "internal error",
	http.StatusServiceUnavailable:    "server busy",
	http.StatusGatewayTimeout:        "timeout",
}

// Message returns the default message for an HTTP status.
func Message(status int) string {
	if m, ok := statusMsg[status]; ok {
		return m
	}
	return http.StatusText(status)
}
