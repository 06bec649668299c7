package errors

import "net/http"

var ErrMalformedCompletion = &Exception{
	Message:    "completion response is not valid JSON",
	StatusCode: http.StatusBadGateway,
}
