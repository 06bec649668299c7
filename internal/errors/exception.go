package errors

import (
	"errors"
	"net/http"
)

// Exception is an application error that knows which HTTP status it maps to.
// Sentinel values live in this package, one per file; call sites wrap them
// with fmt.Errorf("%w: ...") to attach detail.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
