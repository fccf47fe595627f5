package gemini

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/nanoedit/nanoedit/common/config"
	"github.com/nanoedit/nanoedit/common/image"
	"github.com/nanoedit/nanoedit/common/logger"
	"github.com/nanoedit/nanoedit/common/upload"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

// ErrNoValidImages means no usable image part survived assembly.
var ErrNoValidImages = errors.New("no images uploaded")

const defaultImageMimeType = "image/png"

// ConvertEditRequest builds the generation payload: one leading text part,
// then one inline-image part per upload in receipt order. Files whose
// transient path is gone, unreadable or empty are skipped; at least one
// image must survive.
func ConvertEditRequest(prompt string, files []*upload.UploadedFile, mode string) (*ChatRequest, error) {
	parts := []Part{{Text: prompt}}
	for _, file := range files {
		data, err := os.ReadFile(file.Path)
		if err != nil || len(data) == 0 {
			// tolerate races with concurrent cleanup
			logger.SysLogf("skipping upload %s: unreadable or empty", file.Path)
			continue
		}
		parts = append(parts, Part{
			InlineData: &InlineData{
				MimeType: image.ResolveContentType(file.ContentType, file.OriginalName),
				Data:     base64.StdEncoding.EncodeToString(data),
			},
		})
	}
	if len(parts) < 2 {
		return nil, ErrNoValidImages
	}
	generationConfig := &ChatGenerationConfig{
		ResponseModalities: []string{"text", "image"},
	}
	if mode == "pro" {
		generationConfig.ImageConfig = &ImageConfig{ImageSize: config.ProImageSize}
	}
	return &ChatRequest{
		Contents: []ChatContent{
			{
				Role:  "user",
				Parts: parts,
			},
		},
		GenerationConfig: generationConfig,
	}, nil
}

// GenerationResult is either an image payload or fallback text.
type GenerationResult struct {
	Data     []byte
	MimeType string
	Text     string
}

func (r *GenerationResult) HasImage() bool {
	return len(r.Data) > 0
}

// ExtractGenerationResult scans the reply parts in order: the first part
// carrying inline binary data wins; otherwise all text parts are joined.
func ExtractGenerationResult(response *ChatResponse) (*GenerationResult, error) {
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.InlineData == nil || part.InlineData.Data == "" {
				continue
			}
			data, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
			if err != nil {
				return nil, errors.Wrap(err, "decode inline image data")
			}
			mimeType := part.InlineData.MimeType
			if mimeType == "" {
				mimeType = defaultImageMimeType
			}
			return &GenerationResult{Data: data, MimeType: mimeType}, nil
		}
	}
	return &GenerationResult{Text: JoinTextParts(response)}, nil
}

// JoinTextParts concatenates every text-bearing reply part, newline-joined.
func JoinTextParts(response *ChatResponse) string {
	var texts []string
	for _, candidate := range response.Candidates {
		for _, part := range candidate.Content.Parts {
			if part.Text != "" {
				texts = append(texts, part.Text)
			}
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}

// ImageHandler writes the edit response: image bytes on success, the
// upstream's fallback text with 502 when no image came back.
func ImageHandler(c *gin.Context, resp *http.Response) *relaymodel.ErrorWithStatusCode {
	ctx := c.Request.Context()
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return ErrorWrapper(err, "read_response_body_failed", http.StatusInternalServerError)
	}
	if config.DebugEnabled {
		logger.Debugf(ctx, "upstream response (%d): %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		var errResponse GeminiErrorResponse
		if err = json.Unmarshal(body, &errResponse); err == nil && errResponse.Error != nil {
			logger.Errorf(ctx, "upstream error %d: %s (%s)", resp.StatusCode, errResponse.Error.Message, errResponse.Error.Status)
		} else {
			logger.Errorf(ctx, "upstream error %d: %s", resp.StatusCode, string(body))
		}
		return NewError("upstream request failed", "upstream_request_failed", http.StatusInternalServerError)
	}
	var response ChatResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return ErrorWrapper(err, "unmarshal_response_failed", http.StatusInternalServerError)
	}
	if response.Error != nil {
		logger.Errorf(ctx, "upstream returned error body: %s", response.Error.Message)
		return NewError("upstream request failed", "upstream_request_failed", http.StatusInternalServerError)
	}
	for _, candidate := range response.Candidates {
		if candidate.FinishReason == "IMAGE_SAFETY" {
			return NewError(
				"Unable to generate image that is an unsafe image, such as graphically violent or gruesome",
				"request_forbidden", http.StatusForbidden)
		}
	}
	result, extractErr := ExtractGenerationResult(&response)
	if extractErr != nil {
		return ErrorWrapper(extractErr, "extract_result_failed", http.StatusInternalServerError)
	}
	if result.HasImage() {
		c.Header("Cache-Control", "no-store")
		c.Data(http.StatusOK, result.MimeType, result.Data)
		return nil
	}
	text := result.Text
	if text == "" {
		text = "no image returned"
	}
	c.String(http.StatusBadGateway, text)
	return nil
}
