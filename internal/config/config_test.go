package config

import (
	"testing"
	"time"

	"github.com/samvad-hq/openai-lite/pkg/openai"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.CompletionModel != openai.DefaultCompletionModel {
		t.Fatalf("completion model = %q", cfg.CompletionModel)
	}
	if cfg.ChatModel != openai.DefaultChatModel {
		t.Fatalf("chat model = %q", cfg.ChatModel)
	}
	if cfg.EditModel != openai.DefaultEditModel {
		t.Fatalf("edit model = %q", cfg.EditModel)
	}
	if cfg.HTTPTimeout != 60*time.Second {
		t.Fatalf("timeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("OPENAI_ORGANIZATION", "org-env")
	t.Setenv("OPENAI_CHAT_MODEL", "gpt-4")
	t.Setenv("OPENAI_HTTP_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIKey != "sk-env" {
		t.Fatalf("api key = %q", cfg.APIKey)
	}
	if cfg.Organization != "org-env" {
		t.Fatalf("organization = %q", cfg.Organization)
	}
	if cfg.ChatModel != "gpt-4" {
		t.Fatalf("chat model = %q", cfg.ChatModel)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("timeout = %v", cfg.HTTPTimeout)
	}
}

func TestLoadRejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("OPENAI_HTTP_TIMEOUT_SECONDS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero timeout")
	}
}

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for empty api key")
	}

	cfg.APIKey = "sk-x"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
