package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Entity-specific errors
	ErrUserNotFound     = "USER_NOT_FOUND"
	ErrEmailTaken       = "EMAIL_ALREADY_REGISTERED"
	ErrOrderNotFound    = "ORDER_NOT_FOUND"
	ErrSandwichNotFound = "SANDWICH_NOT_FOUND"
	ErrReviewNotFound   = "REVIEW_NOT_FOUND"
	ErrPromoNotFound    = "PROMO_NOT_FOUND"
	ErrPaymentNotFound  = "PAYMENT_NOT_FOUND"
	ErrPromoCodeTaken   = "PROMO_CODE_TAKEN"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
