// Package gemini provides an implementation of the generation.Model interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter: it translates between the
// relay's provider-neutral generation.Response and the genai client types,
// without exposing the details of the external service to the rest of the
// application.
//
// Key components:
//
// 1. GeminiModel:
//   - Implements the generation.Model interface
//   - Sends a single text prompt per call through Client.Models.GenerateContent
//   - Performs no retries of its own; the generation.Invoker owns the policy
//
// 2. Response Conversion:
//   - Copies candidates, text parts and finish reasons into generation.Response
//   - Tolerates nil content and non-text parts
//
// The API key is read once at start-up from config.LLMConfig and injected at
// construction.
package gemini
