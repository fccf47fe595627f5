package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/nanoedit/nanoedit/common/env"
)

var (
	Port         int
	DebugEnabled bool

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiVersion string
	HttpProxy     string
	// RelayGeminiTimeout is the upstream request timeout in seconds.
	RelayGeminiTimeout int

	EditModelName    string
	EditProModelName string
	TextModelName    string
	// ProImageSize is the output size hint sent only with the pro edit model.
	ProImageSize string

	MaxUploadFiles int
	MaxUploadBytes int64
	MaxPromptChars int

	GlobalApiRateLimitNum      int
	GlobalApiRateLimitDuration int64
	EditRateLimitNum           int
	EditRateLimitDuration      int64
	TextRateLimitNum           int
	TextRateLimitDuration      int64

	RateLimitKeyExpirationDuration = 20 * time.Minute
)

func init() {
	_ = godotenv.Load()
	Port = env.Int("PORT", 3000)
	DebugEnabled = env.Bool("DEBUG", false)

	GeminiAPIKey = env.String("GEMINI_API_KEY", "")
	GeminiBaseURL = env.String("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")
	GeminiVersion = env.String("GEMINI_VERSION", "v1beta")
	HttpProxy = env.String("HTTP_PROXY_URL", "")
	RelayGeminiTimeout = env.Int("RELAY_TIMEOUT", 300)

	EditModelName = env.String("EDIT_MODEL", "gemini-2.5-flash-image")
	EditProModelName = env.String("EDIT_PRO_MODEL", "gemini-3-pro-image-preview")
	TextModelName = env.String("TEXT_MODEL", "gemini-2.5-flash")
	ProImageSize = env.String("PRO_IMAGE_SIZE", "2K")

	MaxUploadFiles = env.Int("MAX_UPLOAD_FILES", 10)
	MaxUploadBytes = env.Int64("MAX_UPLOAD_BYTES", 10*1024*1024)
	MaxPromptChars = env.Int("MAX_PROMPT_CHARS", 4000)

	GlobalApiRateLimitNum = env.Int("GLOBAL_API_RATE_LIMIT", 120)
	GlobalApiRateLimitDuration = env.Int64("GLOBAL_API_RATE_LIMIT_DURATION", 60)
	EditRateLimitNum = env.Int("EDIT_RATE_LIMIT", 12)
	EditRateLimitDuration = env.Int64("EDIT_RATE_LIMIT_DURATION", 60)
	TextRateLimitNum = env.Int("TEXT_RATE_LIMIT", 60)
	TextRateLimitDuration = env.Int64("TEXT_RATE_LIMIT_DURATION", 60)
}
