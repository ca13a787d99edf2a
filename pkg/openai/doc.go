// Package openai is a thin client for the OpenAI HTTP API: it resolves
// endpoint URLs, attaches bearer-token headers, serializes request bodies,
// performs one synchronous round trip per call, and decodes the JSON reply
// into a generic Response.
//
// The remote API reports its own failures inside the response body rather
// than through HTTP status codes, so a call that returns no error may still
// carry a remote failure. Callers must inspect the result shape, for example
// with Response.ErrorMessage, before trusting it.
package openai
