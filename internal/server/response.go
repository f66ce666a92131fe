package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/SkipSnow/FindCare/internal/errors"
)

// RespondWithError sends err as a structured error envelope; the status
// comes from the error itself when it is an *apperrors.AppError.
func RespondWithError(c *gin.Context, err error) {
	status, body := apperrors.ResponseFor(err)
	c.JSON(status, body)
}

// RespondOK sends a 200 response with the given body.
func RespondOK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}
