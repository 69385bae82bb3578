package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/leocth/labrinth/internal/domain"
	"github.com/leocth/labrinth/internal/validator"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain and validation errors to HTTP status codes
// and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var verr *validator.Error
	if errors.As(err, &verr) {
		return mapValidationError(verr)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrVersionNotFound):
		return http.StatusNotFound, "VERSION_NOT_FOUND", "version not found"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jar, zip, litemod, mrpack"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrDuplicateFile):
		return http.StatusConflict, "DUPLICATE_FILE", "duplicate files are not allowed"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

func mapValidationError(err *validator.Error) (status int, code, msg string) {
	switch err.Kind {
	case validator.KindZip:
		return http.StatusBadRequest, "INVALID_ARCHIVE", err.Error()
	case validator.KindIO:
		return http.StatusBadRequest, "ARCHIVE_READ_ERROR", err.Error()
	case validator.KindSerDe:
		return http.StatusBadRequest, "INVALID_MANIFEST", err.Error()
	case validator.KindInvalidInput:
		return http.StatusBadRequest, "INVALID_INPUT", err.Error()
	case validator.KindBlocking:
		return http.StatusServiceUnavailable, "VALIDATION_UNAVAILABLE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	HandleErrorWithData(c, err, nil)
}

// HandleErrorWithData is HandleError for requests that had already produced
// some results before failing. A non-nil data is sent alongside the error.
func HandleErrorWithData(c *gin.Context, err error, data interface{}) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID := c.GetString("request_id")
		zap.L().Error("internal error", zap.String("request_id", requestID), zap.Error(err))
	}
	c.JSON(status, APIResponse{
		Success: false,
		Data:    data,
		Error:   &APIError{Code: code, Message: msg},
	})
}
