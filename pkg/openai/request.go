package openai

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single entry in a chat conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Default sampling parameters shared by the text-generation endpoints.
const (
	defaultMaxTokens   = 1000
	defaultTemperature = 0.7
	defaultTopP        = 1
	defaultN           = 1
	defaultBestOf      = 1
	completionStop     = "\n"
)

// CompletionRequest is the body for the completions endpoint. Field order
// mirrors the wire layout the remote API is exercised with; optional fields
// default to absence and are omitted from the payload when unset.
type CompletionRequest struct {
	Model            string         `json:"model"`
	Prompt           string         `json:"prompt"`
	MaxTokens        int            `json:"max_tokens"`
	Temperature      float64        `json:"temperature"`
	TopP             float64        `json:"top_p"`
	N                int            `json:"n"`
	Stream           bool           `json:"stream"`
	Logprobs         *int           `json:"logprobs"`
	Echo             bool           `json:"echo"`
	Stop             any            `json:"stop"`
	PresencePenalty  float64        `json:"presence_penalty"`
	FrequencyPenalty float64        `json:"frequency_penalty"`
	BestOf           int            `json:"best_of"`
	Suffix           string         `json:"suffix,omitempty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

// NewCompletionRequest builds a completion body for prompt with the default
// sampling parameters.
func NewCompletionRequest(model, prompt string) CompletionRequest {
	return CompletionRequest{
		Model:       model,
		Prompt:      prompt,
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
		N:           defaultN,
		Stop:        completionStop,
		BestOf:      defaultBestOf,
	}
}

// ChatRequest is the body for the chat completions endpoint.
type ChatRequest struct {
	Model            string         `json:"model"`
	Messages         []ChatMessage  `json:"messages"`
	Temperature      float64        `json:"temperature"`
	TopP             float64        `json:"top_p"`
	N                int            `json:"n"`
	Stream           bool           `json:"stream"`
	Stop             any            `json:"stop"`
	MaxTokens        int            `json:"max_tokens"`
	PresencePenalty  float64        `json:"presence_penalty"`
	FrequencyPenalty float64        `json:"frequency_penalty"`
	LogitBias        map[string]int `json:"logit_bias,omitempty"`
	User             string         `json:"user,omitempty"`
}

// NewChatRequest builds a chat body carrying the given messages with the
// default sampling parameters.
func NewChatRequest(model string, messages []ChatMessage) ChatRequest {
	return ChatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
		N:           defaultN,
		MaxTokens:   defaultMaxTokens,
	}
}

// EditRequest is the body for the edits endpoint.
type EditRequest struct {
	Model       string  `json:"model"`
	Input       string  `json:"input"`
	Instruction string  `json:"instruction"`
	N           int     `json:"n"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

// NewEditRequest builds an edit body with the default sampling parameters.
func NewEditRequest(model, input, instruction string) EditRequest {
	return EditRequest{
		Model:       model,
		Input:       input,
		Instruction: instruction,
		N:           defaultN,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	}
}
