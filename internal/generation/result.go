package generation

// Kind discriminates the outcomes of an invocation.
type Kind int

const (
	// KindSuccess means the model produced text.
	KindSuccess Kind = iota
	// KindEmptyContent means the model answered but without usable text.
	KindEmptyContent
	// KindFailure means the call failed, after retries where applicable.
	KindFailure
)

// String returns a lower-case label, used for logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindEmptyContent:
		return "empty_content"
	case KindFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Request is a single generation request.
type Request struct {
	Prompt string
	// Model selects the model variant; empty means the Invoker's default.
	Model string
}

// Result is the outcome of Invoker.Generate.
type Result struct {
	Kind Kind
	// Text is set for KindSuccess.
	Text string
	// Err is the underlying error for KindFailure, unwrapped so callers can
	// still use errors.Is/As on provider errors.
	Err error
	// Attempts is the number of calls made to the Model.
	Attempts int
}

// Success builds a KindSuccess result.
func Success(text string, attempts int) Result {
	return Result{Kind: KindSuccess, Text: text, Attempts: attempts}
}

// EmptyContent builds a KindEmptyContent result.
func EmptyContent(attempts int) Result {
	return Result{Kind: KindEmptyContent, Attempts: attempts}
}

// Failure builds a KindFailure result.
func Failure(err error, attempts int) Result {
	return Result{Kind: KindFailure, Err: err, Attempts: attempts}
}

// Message returns the failure message, or "" for other kinds.
func (r Result) Message() string {
	if r.Kind != KindFailure || r.Err == nil {
		return ""
	}
	return r.Err.Error()
}
