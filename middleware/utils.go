package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/common/helper"
	"github.com/nanoedit/nanoedit/common/logger"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": relaymodel.Error{
			Message: helper.MessageWithRequestId(message, c.GetString(helper.RequestIdKey)),
			Type:    "nanoedit_error",
		},
	})
	logger.Warn(c.Request.Context(), message)
	c.Abort()
}
