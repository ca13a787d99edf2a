package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samvad-hq/openai-lite/internal/config"
	"github.com/samvad-hq/openai-lite/pkg/httpclient"
	"github.com/samvad-hq/openai-lite/pkg/openai"
	"github.com/samvad-hq/openai-lite/pkg/profiles"
)

// Operation names accepted by Run.
const (
	OpModels     = "models"
	OpCompletion = "completion"
	OpChat       = "chat"
	OpEdit       = "edit"
)

// API is the client surface the runner drives.
type API interface {
	ListModels(ctx context.Context, name string) (openai.Response, error)
	Completion(ctx context.Context, prompt, model string) (openai.Response, error)
	Chat(ctx context.Context, message, model string) (openai.Response, error)
	Edit(ctx context.Context, input, instruction, model string) (openai.Response, error)
}

// Runner wires config, profiles, and the client and executes one operation
// per invocation.
type Runner struct {
	client API
	model  string
	log    openai.Logger
}

type modelSet struct {
	completion string
	chat       string
	edit       string
}

func (m modelSet) merge(p profiles.Profile) modelSet {
	if p.CompletionModel != "" {
		m.completion = p.CompletionModel
	}
	if p.ChatModel != "" {
		m.chat = p.ChatModel
	}
	if p.EditModel != "" {
		m.edit = p.EditModel
	}
	return m
}

// NewRunner builds the runtime from config. A non-empty profileID selects a
// preset from the profiles file; a non-empty model overrides the model for
// this invocation only.
func NewRunner(cfg *config.Config, profileID, model string, log openai.Logger) (*Runner, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = noopLogger{}
	}

	models := modelSet{
		completion: cfg.CompletionModel,
		chat:       cfg.ChatModel,
		edit:       cfg.EditModel,
	}
	if profileID != "" {
		reg, err := profiles.Load(cfg.ProfilesFile)
		if err != nil {
			return nil, fmt.Errorf("load profiles registry: %w", err)
		}
		p, ok := reg.ByID(profileID)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q in %s", profileID, cfg.ProfilesFile)
		}
		models = models.merge(p)
		log.InfoObj("profile selected", "profile", p)
	}

	client := openai.New(cfg.APIKey,
		openai.WithOrganization(cfg.Organization),
		openai.WithCompletionModel(models.completion),
		openai.WithChatModel(models.chat),
		openai.WithEditModel(models.edit),
		openai.WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout)),
		openai.WithLogger(log),
	)

	return &Runner{client: client, model: model, log: log}, nil
}

// Run executes one operation and prints the decoded response as indented
// JSON. A body carrying an error key is still printed and exits cleanly;
// remote errors are data here, not failures.
func (r *Runner) Run(ctx context.Context, op string, args []string) error {
	resp, err := r.dispatch(ctx, op, args)
	if err != nil {
		return err
	}

	if msg, ok := resp.ErrorMessage(); ok {
		r.log.WarnObj("api returned an error", "message", msg)
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("render response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func (r *Runner) dispatch(ctx context.Context, op string, args []string) (openai.Response, error) {
	switch op {
	case OpModels:
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		return r.client.ListModels(ctx, name)
	case OpCompletion:
		if len(args) == 0 {
			return nil, fmt.Errorf("completion requires a prompt")
		}
		return r.client.Completion(ctx, strings.Join(args, " "), r.model)
	case OpChat:
		if len(args) == 0 {
			return nil, fmt.Errorf("chat requires a message")
		}
		return r.client.Chat(ctx, strings.Join(args, " "), r.model)
	case OpEdit:
		if len(args) != 2 {
			return nil, fmt.Errorf("edit requires <input> and <instruction>")
		}
		return r.client.Edit(ctx, args[0], args[1], r.model)
	default:
		return nil, fmt.Errorf("unknown operation %q", op)
	}
}

type noopLogger struct{}

func (noopLogger) InfoObj(string, string, interface{})  {}
func (noopLogger) DebugObj(string, string, interface{}) {}
func (noopLogger) WarnObj(string, string, interface{})  {}
func (noopLogger) ErrorObj(string, string, interface{}) {}
