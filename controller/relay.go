package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/common/helper"
	"github.com/nanoedit/nanoedit/common/logger"
	relaycontroller "github.com/nanoedit/nanoedit/relay/controller"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

// RelayEdit is the /edit entrypoint. Handlers either write the response
// themselves or return a tagged error that is converted to HTTP here, and
// only here.
func RelayEdit(c *gin.Context) {
	bizErr := relaycontroller.RelayEditHelper(c)
	if bizErr != nil {
		relayErrorResponse(c, bizErr)
	}
}

// RelayText is the /text entrypoint.
func RelayText(c *gin.Context) {
	bizErr := relaycontroller.RelayTextHelper(c)
	if bizErr != nil {
		relayErrorResponse(c, bizErr)
	}
}

func relayErrorResponse(c *gin.Context, bizErr *relaymodel.ErrorWithStatusCode) {
	requestId := c.GetString(helper.RequestIdKey)
	bizErr.Error.Message = helper.MessageWithRequestId(bizErr.Error.Message, requestId)
	if bizErr.StatusCode >= 500 {
		logger.Errorf(c.Request.Context(), "relay error (%d): %s", bizErr.StatusCode, bizErr.Error.Message)
	}
	c.JSON(bizErr.StatusCode, gin.H{
		"error": bizErr.Error,
	})
}
