package generation

import "context"

// Model is the external text-generation capability. It serves as the
// boundary between the relay and a concrete LLM service.
type Model interface {
	// GenerateContent sends prompt to the named model and returns its raw
	// response. Any returned error is considered transient by the Invoker.
	GenerateContent(ctx context.Context, model string, prompt string) (*Response, error)
}

// Response is the provider-neutral shape of a generation response.
type Response struct {
	Candidates []Candidate
}

// Candidate is one alternative output of the model.
type Candidate struct {
	Parts []Part
	// FinishReason is informational only (e.g. "STOP", "SAFETY").
	FinishReason string
}

// Part is one fragment of a candidate's content.
type Part struct {
	Text string
}

// FirstText returns the text of the first part of the first candidate.
// ok is false when the response has no candidate or the first candidate has
// no parts.
func (r *Response) FirstText() (text string, ok bool) {
	if r == nil || len(r.Candidates) == 0 || len(r.Candidates[0].Parts) == 0 {
		return "", false
	}
	return r.Candidates[0].Parts[0].Text, true
}

// finishReason returns the first candidate's finish reason, if any.
func (r *Response) finishReason() string {
	if r == nil || len(r.Candidates) == 0 {
		return ""
	}
	return r.Candidates[0].FinishReason
}
