package errors

import "net/http"

var ErrMissingSchedule = &Exception{
	Message:    "completion response has no schedule array",
	StatusCode: http.StatusBadGateway,
}
