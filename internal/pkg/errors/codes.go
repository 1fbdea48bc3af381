package errors

import (
	"fmt"
	"net/http"
)

// Code represents an error code with HTTP status and message
type Code struct {
	Code    int    // Business error code
	Status  int    // HTTP status code
	Message string // Error message
}

// Error codes for different modules
const (
	// Success
	Success = 0

	// Common errors (1000-1999)
	ErrInternalServer = 1000
	ErrInvalidParams  = 1001
	ErrNotFound       = 1002
	ErrBadRequest     = 1003
	ErrServiceUnavail = 1004

	// Search errors (2000-2999)
	ErrSearchFailed       = 2000
	ErrSearchUnauthorized = 2001
	ErrSearchRateLimited  = 2002

	// Extraction errors (3000-3999)
	ErrExtractFailed = 3000

	// LLM errors (4000-4999)
	ErrLLMFailed       = 4000
	ErrLLMUnauthorized = 4001
	ErrLLMRateLimited  = 4002

	// Report errors (5000-5999)
	ErrReportFailed = 5000
)

// codeMap maps error codes to their details
var codeMap = map[int]Code{
	Success: {Success, http.StatusOK, "Success"},

	// Common errors
	ErrInternalServer: {ErrInternalServer, http.StatusInternalServerError, "Internal server error"},
	ErrInvalidParams:  {ErrInvalidParams, http.StatusBadRequest, "Invalid parameters"},
	ErrNotFound:       {ErrNotFound, http.StatusNotFound, "Resource not found"},
	ErrBadRequest:     {ErrBadRequest, http.StatusBadRequest, "Bad request"},
	ErrServiceUnavail: {ErrServiceUnavail, http.StatusServiceUnavailable, "Service unavailable"},

	// Search errors
	ErrSearchFailed:       {ErrSearchFailed, http.StatusBadGateway, "News search failed"},
	ErrSearchUnauthorized: {ErrSearchUnauthorized, http.StatusBadGateway, "News search rejected the API key"},
	ErrSearchRateLimited:  {ErrSearchRateLimited, http.StatusBadGateway, "News search rate limited"},

	// Extraction errors
	ErrExtractFailed: {ErrExtractFailed, http.StatusBadGateway, "Article extraction failed"},

	// LLM errors
	ErrLLMFailed:       {ErrLLMFailed, http.StatusBadGateway, "Language model request failed"},
	ErrLLMUnauthorized: {ErrLLMUnauthorized, http.StatusBadGateway, "Language model rejected the API key"},
	ErrLLMRateLimited:  {ErrLLMRateLimited, http.StatusBadGateway, "Language model rate limited"},

	// Report errors
	ErrReportFailed: {ErrReportFailed, http.StatusBadGateway, "Report synthesis failed"},
}

// GetCode returns the Code for a given error code
func GetCode(code int) Code {
	if c, ok := codeMap[code]; ok {
		return c
	}
	return codeMap[ErrInternalServer]
}

// GetHTTPStatus returns HTTP status for a given error code
func GetHTTPStatus(code int) int {
	return GetCode(code).Status
}

// GetMessage returns the message for a given error code
func GetMessage(code int) string {
	return GetCode(code).Message
}

// IsSuccess checks if the code represents success
func IsSuccess(code int) bool {
	return code == Success
}

// FormatError formats an error message with code
func FormatError(code int, details ...string) string {
	msg := GetMessage(code)
	if len(details) > 0 && details[0] != "" {
		return fmt.Sprintf("%s: %s", msg, details[0])
	}
	return msg
}
