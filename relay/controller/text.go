package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanoedit/nanoedit/common"
	"github.com/nanoedit/nanoedit/relay/gemini"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

type TextRequest struct {
	Prompt string `json:"prompt"`
}

// RelayTextHelper drives the text flow: sanitize and dispatch, no images.
func RelayTextHelper(c *gin.Context) *relaymodel.ErrorWithStatusCode {
	var textRequest TextRequest
	if err := common.UnmarshalBodyReusable(c, &textRequest); err != nil {
		return gemini.NewError("invalid request body", "invalid_request_body", http.StatusBadRequest)
	}
	prompt := SanitizePrompt(textRequest.Prompt)
	if prompt == "" {
		return gemini.NewError("prompt is required", "invalid_prompt", http.StatusBadRequest)
	}
	text, bizErr := gemini.DoTextGeneration(c.Request.Context(), prompt)
	if bizErr != nil {
		return bizErr
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
	return nil
}
