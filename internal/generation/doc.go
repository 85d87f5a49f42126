// Package generation owns the call to the external text-generation model.
//
// It defines the Model interface that adapters (see platform/gemini) implement,
// a generic bounded retry combinator with pluggable backoff, and the Invoker
// that applies the retry policy to a single prompt and reduces the outcome to
// a Result: Success, EmptyContent or Failure.
//
// Transport-level errors returned by the Model are treated as transient and
// retried with exponential backoff. A well-formed response that carries no
// usable text is not retried, since resending the same prompt typically hits
// the same content filter again.
package generation
