package response

import (
	"net/http"
)

// Response represents the standard API response structure
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo represents error details in the response
type ErrorInfo struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// Common error codes
const (
	// Client errors (4xx)
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeSignatureInvalid = "SIGNATURE_INVALID"

	// Server errors (5xx)
	ErrCodeInternalError   = "INTERNAL_ERROR"
	ErrCodeUpstreamFailure = "UPSTREAM_FAILURE"
)

// ErrorCodeToHTTPStatus maps error codes to HTTP status codes
var ErrorCodeToHTTPStatus = map[string]int{
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeForbidden:        http.StatusForbidden,
	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeConflict:         http.StatusConflict,
	ErrCodeValidationFailed: http.StatusBadRequest,
	ErrCodeSignatureInvalid: http.StatusBadRequest,
	ErrCodeInternalError:    http.StatusInternalServerError,
	ErrCodeUpstreamFailure:  http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for an error code, defaulting to 500
func HTTPStatus(code string) int {
	if status, ok := ErrorCodeToHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Success creates a successful response with data
func Success(data interface{}) *Response {
	return &Response{
		Success: true,
		Data:    data,
	}
}

// Error creates an error response
func Error(code, message string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// ErrorWithDetails creates an error response with field details
func ErrorWithDetails(code, message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// BadRequest creates a bad request error response
func BadRequest(message string) *Response {
	if message == "" {
		message = "Invalid request"
	}
	return Error(ErrCodeBadRequest, message)
}

// Unauthorized creates an unauthorized error response
func Unauthorized(message string) *Response {
	if message == "" {
		message = "Authentication required"
	}
	return Error(ErrCodeUnauthorized, message)
}

// Forbidden creates a forbidden error response
func Forbidden(message string) *Response {
	if message == "" {
		message = "Access denied"
	}
	return Error(ErrCodeForbidden, message)
}

// NotFound creates a not found error response
func NotFound(message string) *Response {
	if message == "" {
		message = "Resource not found"
	}
	return Error(ErrCodeNotFound, message)
}

// InternalError creates an internal server error response
func InternalError(message string) *Response {
	if message == "" {
		message = "An internal error occurred"
	}
	return Error(ErrCodeInternalError, message)
}

// UpstreamFailure creates a provider failure error response
func UpstreamFailure(message string) *Response {
	if message == "" {
		message = "Upstream provider request failed"
	}
	return Error(ErrCodeUpstreamFailure, message)
}

// SignatureInvalid creates a webhook signature error response
func SignatureInvalid(message string) *Response {
	if message == "" {
		message = "Invalid signature"
	}
	return Error(ErrCodeSignatureInvalid, message)
}

// ValidationFailed creates a validation error response with field details
func ValidationFailed(details map[string]string) *Response {
	return ErrorWithDetails(ErrCodeValidationFailed, "Validation failed", details)
}
