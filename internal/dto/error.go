package dto

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInvalidWindow = "INVALID_WINDOW"
	ErrCodeInvalidPeriod = "INVALID_PERIOD"
	ErrCodeUnknownMetric = "UNKNOWN_METRIC"
	ErrCodeBadRequest    = "BAD_REQUEST"
	ErrCodeInternal      = "INTERNAL"
)
