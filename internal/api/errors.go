package api

import (
	"net/http"

	"github.com/phrazzld/prompt-relay/internal/generation"
)

// Client-facing messages.
const (
	MsgNoPrompt       = "No prompt provided"
	MsgInvalidRequest = "Invalid request format"
	MsgEmptyContent   = "Model generated no valid text content. It might be filtered or empty."
	// MsgGenerationFailed is followed by the underlying error message.
	MsgGenerationFailed = "Failed to generate response: "
)

// MapResultToStatusCode maps a generation result to its HTTP status code.
func MapResultToStatusCode(result generation.Result) int {
	switch result.Kind {
	case generation.KindSuccess:
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// ResultMessage returns the error message sent to the client for a
// non-successful result. Failures carry the underlying error message
// verbatim.
func ResultMessage(result generation.Result) string {
	switch result.Kind {
	case generation.KindEmptyContent:
		return MsgEmptyContent
	case generation.KindFailure:
		return MsgGenerationFailed + result.Message()
	default:
		return ""
	}
}
