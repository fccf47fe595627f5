package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/nanoedit/nanoedit/common/logger"
	"github.com/nanoedit/nanoedit/common/upload"
	"github.com/nanoedit/nanoedit/relay/gemini"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

// RelayEditHelper drives the edit pipeline: intake, sanitize, assemble,
// dispatch, extract. Uploaded files are released on every exit path.
func RelayEditHelper(c *gin.Context) *relaymodel.ErrorWithStatusCode {
	ctx := c.Request.Context()
	form, err := c.MultipartForm()
	if err != nil {
		return gemini.NewError("invalid multipart form", "invalid_multipart_form", http.StatusBadRequest)
	}
	prompt := SanitizePrompt(c.PostForm("prompt"))
	if prompt == "" {
		return gemini.NewError("prompt is required", "invalid_prompt", http.StatusBadRequest)
	}
	mode := c.PostForm("mode")

	files, saveErr := upload.SaveAll(ctx, form.File["images"])
	defer upload.Cleanup(files)
	if saveErr != nil {
		return mapUploadError(saveErr)
	}

	chatRequest, convErr := gemini.ConvertEditRequest(prompt, files, mode)
	if convErr != nil {
		if errors.Is(convErr, gemini.ErrNoValidImages) {
			return gemini.NewError("no images uploaded", "invalid_image_payload", http.StatusBadRequest)
		}
		return gemini.ErrorWrapper(convErr, "convert_request_failed", http.StatusInternalServerError)
	}

	modelName := gemini.EditModelName(mode)
	logger.Infof(ctx, "dispatching edit request to %s with %d parts", modelName, len(chatRequest.Contents[0].Parts))
	req, reqErr := gemini.NewGenerateRequest(c, modelName, chatRequest)
	if reqErr != nil {
		return gemini.ErrorWrapper(reqErr, "build_request_failed", http.StatusInternalServerError)
	}
	resp, doErr := gemini.DoRequest(req)
	if doErr != nil {
		return gemini.ErrorWrapper(doErr, "do_request_failed", http.StatusInternalServerError)
	}
	return gemini.ImageHandler(c, resp)
}

func mapUploadError(err error) *relaymodel.ErrorWithStatusCode {
	switch {
	case errors.Is(err, upload.ErrTooManyFiles):
		return gemini.NewError(err.Error(), "too_many_files", http.StatusRequestEntityTooLarge)
	case errors.Is(err, upload.ErrFileTooLarge):
		return gemini.NewError(err.Error(), "file_too_large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, upload.ErrUnexpectedFileType):
		return gemini.NewError(err.Error(), "unexpected_file_type", http.StatusBadRequest)
	default:
		return gemini.ErrorWrapper(err, "save_upload_failed", http.StatusInternalServerError)
	}
}
