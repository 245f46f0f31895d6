package api

import (
	"net/http"

	"fitclub/internal/apperror"
	"fitclub/internal/logger"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
	Code  string `json:"code,omitempty" example:"room_conflict"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database,omitempty" example:"ok"`
}

// WriteError renders err with the status its kind maps to. Errors outside
// the scheduling taxonomy are logged and reported as a generic 500.
func WriteError(c *gin.Context, err error) {
	status := apperror.HTTPStatus(err)
	if !apperror.Public(err) {
		logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: apperror.Code(err)})
		return
	}

	c.JSON(status, ErrorResponse{Error: err.Error(), Code: apperror.Code(err)})
}

// BadRequest reports a malformed body or path parameter.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg, Code: apperror.Code(apperror.ErrInvalidInput)})
}
