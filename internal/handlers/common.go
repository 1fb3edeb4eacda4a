package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/middleware"
	"github.com/haloiq/tax-api/internal/services"
	"github.com/haloiq/tax-api/internal/types/api/responses"
	"go.uber.org/zap"
)

// sendError logs the failure and writes the {ok:false,error} envelope
func sendError(c *gin.Context, statusCode int, message string, err error) {
	log := middleware.LogWithCorrelationID(c.Request.Context())
	fields := []zap.Field{
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Int("status", statusCode),
	}
	if statusCode >= http.StatusInternalServerError {
		log.Error(message, fields...)
	} else {
		log.Warn(message, fields...)
	}
	c.JSON(statusCode, responses.ErrorResponse{OK: false, Error: message})
}

// handleServiceError maps service errors to HTTP status codes
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		sendError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, services.ErrUnsupportedTaxYear):
		sendError(c, http.StatusUnprocessableEntity, constants.UnsupportedTaxYear, err)
	default:
		sendError(c, http.StatusInternalServerError, constants.TaxCalculationFailed, err)
	}
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
