package gemini

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/nanoedit/nanoedit/common/config"
)

var userAgent = "nanoedit/1.0"

// EditModelName selects the edit model variant. Exactly "pro" picks the
// higher-quality model; everything else falls back to the default.
func EditModelName(mode string) string {
	if mode == "pro" {
		return config.EditProModelName
	}
	return config.EditModelName
}

func GetRequestURL(modelName string) string {
	return fmt.Sprintf("%s/%s/models/%s:generateContent", config.GeminiBaseURL, config.GeminiVersion, modelName)
}

func NewGenerateRequest(c *gin.Context, modelName string, chatRequest *ChatRequest) (*http.Request, error) {
	body, err := json.Marshal(chatRequest)
	if err != nil {
		return nil, errors.Wrap(err, "marshal generate request")
	}
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, GetRequestURL(modelName), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "build generate request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", config.GeminiAPIKey)
	req.Header.Set("User-Agent", userAgent)
	return req, nil
}

func DoRequest(req *http.Request) (*http.Response, error) {
	var client *http.Client
	if config.HttpProxy == "" {
		client = &http.Client{
			Timeout: time.Duration(config.RelayGeminiTimeout) * time.Second,
		}
	} else {
		proxyURL, err := url.Parse(config.HttpProxy)
		if err != nil {
			return nil, fmt.Errorf("url.Parse failed: %w", err)
		}
		client = &http.Client{
			Timeout: time.Duration(config.RelayGeminiTimeout) * time.Second,
			Transport: &http.Transport{
				Proxy: http.ProxyURL(proxyURL),
			},
		}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("resp is nil")
	}
	return resp, nil
}
