// Package api handles incoming HTTP requests, request validation and
// response formatting. It acts as an adapter between HTTP clients and the
// generation.Invoker, translating generation results into status codes and
// JSON payloads.
package api
