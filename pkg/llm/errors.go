package llm

import "errors"

var (
	// ErrRequestFailed covers transport errors and non-2xx responses.
	ErrRequestFailed = errors.New("request failed")

	// ErrEmptyResponse is returned when a successful response carries no text.
	ErrEmptyResponse = errors.New("empty response")

	// ErrEmptyPrompt is returned before any network call when the prompt is blank.
	ErrEmptyPrompt = errors.New("prompt is empty")

	// ErrMissingAPIKey is returned when a provider is built without a credential.
	ErrMissingAPIKey = errors.New("API key is required")
)

// Error kinds reported to users.
const (
	KindRequestFailed = "request_failed"
	KindEmptyResponse = "empty_response"
	KindUnknown       = "unknown"
)

// Classify maps a client error to the kind shown to users.
func Classify(err error) string {
	switch {
	case errors.Is(err, ErrEmptyResponse):
		return KindEmptyResponse
	case errors.Is(err, ErrRequestFailed):
		return KindRequestFailed
	default:
		return KindUnknown
	}
}
