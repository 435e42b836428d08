package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps service sentinel errors onto HTTP statuses. Unknown
// errors are logged and hidden behind a 500.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrCannotProceed):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrPlanNotFound),
		errors.Is(err, ErrLibraryItemNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidOtp):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrPremiumRequired):
		RespondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists), errors.Is(err, ErrQuizNotCompleted):
		RespondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, ErrAINotConfigured):
		RespondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrAIUnavailable), errors.Is(err, ErrInvalidAIResponse),
		errors.Is(err, ErrPaymentProvider):
		log.Printf("Upstream error: %v", err)
		RespondError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
