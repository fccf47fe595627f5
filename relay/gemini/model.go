package gemini

type ChatRequest struct {
	Contents         []ChatContent         `json:"contents"`
	GenerationConfig *ChatGenerationConfig `json:"generationConfig,omitempty"`
}

type ChatContent struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type ChatGenerationConfig struct {
	ResponseModalities []string     `json:"responseModalities,omitempty"`
	ImageConfig        *ImageConfig `json:"imageConfig,omitempty"`
}

// ImageConfig carries the output-size hint accepted by the pro edit model.
type ImageConfig struct {
	ImageSize string `json:"imageSize,omitempty"`
}

type ChatResponse struct {
	Candidates     []ChatCandidate     `json:"candidates"`
	PromptFeedback *ChatPromptFeedback `json:"promptFeedback,omitempty"`
	Error          *Error              `json:"error,omitempty"`
}

type ChatCandidate struct {
	Content      ChatContent `json:"content"`
	FinishReason string      `json:"finishReason"`
	Index        int64       `json:"index"`
}

type ChatPromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

type Error struct {
	Code    int    `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status,omitempty"`
}

type GeminiErrorResponse struct {
	Error *Error `json:"error,omitempty"`
}
