// Package mocks provides centralized mock implementations for testing.
//
// Mocks expose function fields for custom behaviour, default return values,
// and mutex-guarded call tracking so tests in several packages can assert on
// how the generation model was called.
//
// Usage:
//
//	import "github.com/phrazzld/prompt-relay/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    model := mocks.NewMockModelWithText("hello")
//	    // Use the mock in your test, then inspect model.CallCount()
//	}
package mocks
