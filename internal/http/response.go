package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes carried in the response envelope.
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeTokenMissing   = "TOKEN_MISSING"
	CodeTokenMalformed = "TOKEN_MALFORMED"
	CodeTokenExpired   = "TOKEN_EXPIRED"
	CodeTokenInvalid   = "TOKEN_INVALID"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeRateLimited    = "RATE_LIMITED"
	CodeUploadTooLarge = "UPLOAD_TOO_LARGE"
	CodeUploadInvalid  = "UPLOAD_INVALID"
	CodeInternal       = "INTERNAL_ERROR"
)

type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errorBody  `json:"error,omitempty"`
}

type pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

type pageData struct {
	Items      interface{} `json:"items"`
	Pagination pagination  `json:"pagination"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

func respondPage(c *gin.Context, items interface{}, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: pageData{
		Items:      items,
		Pagination: pagination{Page: page, PageSize: pageSize, Total: total},
	}})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, envelope{Success: false, Error: &errorBody{Code: code, Message: message}})
}

func respondErrorDetails(c *gin.Context, status int, code, message string, details interface{}) {
	c.JSON(status, envelope{Success: false, Error: &errorBody{Code: code, Message: message, Details: details}})
}
