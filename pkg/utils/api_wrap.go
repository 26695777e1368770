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
	Raw     string      `json:"raw,omitempty"`
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

// HandleServiceError maps service sentinel errors to HTTP responses. Client
// input errors get 400, missing records 404, everything generation-related
// that is not the caller's fault gets 500.
func HandleServiceError(c *gin.Context, err error) {
	var parseErr *GenerationParseError

	switch {
	case errors.Is(err, ErrInvalidDestination),
		errors.Is(err, ErrInvalidDateRange),
		errors.Is(err, ErrInvalidBudget),
		errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrInsufficientCapacity):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrPlaceNotFound),
		errors.Is(err, ErrAttractionNotFound),
		errors.Is(err, ErrBookingNotFound),
		errors.Is(err, ErrProgramNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.As(err, &parseErr):
		// Surface the repaired-but-unparsable text so the failure can be
		// diagnosed; never substitute a fabricated itinerary.
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Could not parse AI response",
			TraceID: traceID(c),
			Raw:     parseErr.Preview,
		})

	case errors.Is(err, ErrGenerationUnavailable),
		errors.Is(err, ErrUnparsableGeneration),
		errors.Is(err, ErrInvalidGenerationShape):
		RespondError(c, http.StatusInternalServerError, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
