package errors

import "net/http"

var ErrEmptyCompletion = &Exception{
	Message:    "completion service returned no content",
	StatusCode: http.StatusBadGateway,
}
