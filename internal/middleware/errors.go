package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmartins-dev/salesdesk/internal/domain/dto"
	"github.com/gmartins-dev/salesdesk/internal/logger"
)

// ErrorHandler drains errors attached to the gin context via c.Error() after
// the handler chain ran. Handlers that did not already write a response get a
// standardized 500 envelope built from the first error.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	err := c.Errors[0].Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")

	if !c.Writer.Written() {
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
	}
}
