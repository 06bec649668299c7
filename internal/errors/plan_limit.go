package errors

import "net/http"

var ErrPlanLimitReached = &Exception{
	Message:    "too many concurrent plan generations",
	StatusCode: http.StatusTooManyRequests,
}
