package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/gradebook/internal/apperror"
	"github.com/lshigami/gradebook/internal/dto"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders the last error a handler attached with c.Error as the
// standard error envelope.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		resp := dto.ErrorResponse{Success: false, Message: "Internal server error"}
		kind := apperror.KindOf(err)
		var appErr *apperror.Error
		if errors.As(err, &appErr) {
			resp.Message = appErr.Message
			resp.Details = appErr.Details
		}
		resp.Kind = kind.String()
		status := kind.HTTPStatus()

		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Msg("Request failed")
		} else {
			log.Warn().Err(err).Str("method", c.Request.Method).Str("path", c.FullPath()).Int("status", status).Msg("Request rejected")
		}
		c.JSON(status, resp)
	}
}
