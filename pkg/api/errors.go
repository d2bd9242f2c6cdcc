package api

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single failure type the gateway exposes. A non-2xx response
// and a transport problem both normalize into it; callers only get a status
// code (zero when the request never reached the backend) and a message.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
