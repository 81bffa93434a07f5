package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// DesignSubmission is a single validated generation request. It lives for
// the duration of one request and is never persisted.
type DesignSubmission struct {
	Description           string
	ReferenceImagePresent bool
}

type GeneratedDesign struct {
	Url           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ProviderError carries the structured error envelope returned by the
// image-generation provider. Classification prefers the structured code and
// falls back to substring matching on the message, which is best-effort.
type ProviderError struct {
	StatusCode int
	Type       string
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider request failed: status %d, type %q, code %q: %s",
		e.StatusCode, e.Type, e.Code, e.Message)
}

func (e *ProviderError) RateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests ||
		e.Code == "rate_limit_exceeded" ||
		strings.Contains(strings.ToLower(e.Message), "rate limit")
}

func (e *ProviderError) ContentPolicyViolation() bool {
	return e.Code == "content_policy_violation" ||
		e.Type == "image_generation_user_error" ||
		strings.Contains(strings.ToLower(e.Message), "content policy")
}
