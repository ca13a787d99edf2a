package openai

import (
	"errors"
	"strings"
	"testing"
)

func TestResolveURLKnownEndpoints(t *testing.T) {
	c := New("k")

	cases := []struct {
		name     string
		endpoint string
		args     []string
		want     string
	}{
		{name: "models without id", endpoint: epModels, want: DefaultBaseURL + "/v1/models"},
		{name: "models with id", endpoint: epModels, args: []string{"gpt-4"}, want: DefaultBaseURL + "/v1/models/gpt-4"},
		{name: "completion", endpoint: epCompletion, want: DefaultBaseURL + "/v1/completions"},
		{name: "chat", endpoint: epChat, want: DefaultBaseURL + "/v1/chat/completions"},
		{name: "edits", endpoint: epEdits, want: DefaultBaseURL + "/v1/edits"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.resolveURL(tc.endpoint, tc.args...)
			if err != nil {
				t.Fatalf("resolveURL: %v", err)
			}
			if got != tc.want {
				t.Fatalf("resolveURL = %q, want %q", got, tc.want)
			}
			if strings.HasSuffix(got, "/") {
				t.Fatalf("resolved URL %q has trailing slash", got)
			}
			if !strings.HasPrefix(got, DefaultBaseURL) {
				t.Fatalf("resolved URL %q does not start with base URL", got)
			}
		})
	}
}

func TestResolveURLUnknownEndpoint(t *testing.T) {
	c := New("k")

	_, err := c.resolveURL("transcriptions")
	if err == nil {
		t.Fatalf("expected error for unknown endpoint")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Endpoint != "transcriptions" {
		t.Fatalf("ConfigError.Endpoint = %q", cfgErr.Endpoint)
	}
}

func TestResolveURLCustomBase(t *testing.T) {
	c := New("k", WithBaseURL("http://127.0.0.1:8080"))

	got, err := c.resolveURL(epModels)
	if err != nil {
		t.Fatalf("resolveURL: %v", err)
	}
	if got != "http://127.0.0.1:8080/v1/models" {
		t.Fatalf("resolveURL = %q", got)
	}
}
