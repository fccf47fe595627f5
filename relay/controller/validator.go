package controller

import (
	"strings"

	"github.com/nanoedit/nanoedit/common/config"
)

// SanitizePrompt trims the input and clamps it to the configured rune cap.
// Truncation is silent; whitespace-only input normalizes to the empty
// string, which callers reject.
func SanitizePrompt(raw string) string {
	prompt := strings.TrimSpace(raw)
	runes := []rune(prompt)
	if len(runes) > config.MaxPromptChars {
		return string(runes[:config.MaxPromptChars])
	}
	return prompt
}
