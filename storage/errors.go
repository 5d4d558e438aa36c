package storage

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrNotFound = errors.New("item not found in backend")
var ErrDuplicateScore = errors.New("score for this team and judge already exists")
var ErrInvalidPayload = errors.New("backend returned an invalid payload")
var ErrRejected = errors.New("backend rejected the request")
var ErrUnauthorized = errors.New("invalid username or password")

// APIError is a non-2xx answer from the scoring backend.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend %s %s failed (%d %s): %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}
	return fmt.Sprintf("backend %s %s failed (%d %s)", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
}
