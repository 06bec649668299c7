package errors

import "net/http"

var ErrMalformedTime = &Exception{
	Message:    "malformed HH:mm time string",
	StatusCode: http.StatusUnprocessableEntity,
}
