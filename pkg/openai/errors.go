package openai

import "fmt"

// ConfigError reports a lookup of an endpoint name missing from the endpoint
// table. The set of valid names is closed, so reaching this is a programming
// error rather than a runtime condition.
type ConfigError struct {
	Endpoint string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("openai: unknown endpoint %q", e.Endpoint)
}

// TransportError reports an HTTP round trip that could not be executed.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("openai: request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON. Malformed
// bodies are a hard error; they are never silently mapped to an empty result.
type DecodeError struct {
	URL string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("openai: decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
