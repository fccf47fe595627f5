package gemini

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/nanoedit/nanoedit/common/config"
	"github.com/nanoedit/nanoedit/common/logger"
	relaymodel "github.com/nanoedit/nanoedit/relay/model"
)

// DoTextGeneration runs the pure text flow: one prompt, no image parts,
// no image configuration. The genai SDK is used here; the edit flow speaks
// raw REST because the SDK has no image-output modality config.
func DoTextGeneration(ctx context.Context, prompt string) (string, *relaymodel.ErrorWithStatusCode) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return "", ErrorWrapper(err, "init_genai_error", http.StatusInternalServerError)
	}
	defer client.Close()

	model := client.GenerativeModel(config.TextModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", handleGenaiError(ctx, err)
	}
	text := joinGenaiTextParts(resp)
	if text == "" {
		return "", NewError("no text returned", "no_text_returned", http.StatusInternalServerError)
	}
	return text, nil
}

func joinGenaiTextParts(resp *genai.GenerateContentResponse) string {
	var texts []string
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok && string(text) != "" {
				texts = append(texts, string(text))
			}
		}
	}
	return strings.TrimSpace(strings.Join(texts, "\n"))
}

// handleGenaiError logs whatever detail the SDK exposes and maps everything
// to a generic internal error for the client.
func handleGenaiError(ctx context.Context, err error) *relaymodel.ErrorWithStatusCode {
	if apiErr, ok := apierror.FromError(err); ok {
		logger.Errorf(ctx, "genai api error: %s (reason: %s)", apiErr.Error(), apiErr.Reason())
	} else if gErr, ok := err.(*googleapi.Error); ok {
		logger.Errorf(ctx, "genai http error %d: %s", gErr.Code, gErr.Message)
	} else {
		logger.Errorf(ctx, "genai error: %s", err.Error())
	}
	return NewError("upstream request failed", "upstream_request_failed", http.StatusInternalServerError)
}
