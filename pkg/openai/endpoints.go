package openai

import (
	"fmt"
	"strings"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.openai.com"

const (
	epModels     = "models"
	epCompletion = "completion"
	epChat       = "chat"
	epEdits      = "edits"
)

// endpointTable maps endpoint names to path templates with zero or one
// positional placeholder.
var endpointTable = map[string]string{
	epModels:     "/v1/models/%s",
	epCompletion: "/v1/completions",
	epChat:       "/v1/chat/completions",
	epEdits:      "/v1/edits",
}

// resolveURL substitutes args into the endpoint's path template in order,
// padding missing arguments with the empty string, prefixes the base URL, and
// strips any trailing slash. The models endpoint relies on the padding to
// list all models when no id is given.
func (c *Client) resolveURL(endpoint string, args ...string) (string, error) {
	tpl, ok := endpointTable[endpoint]
	if !ok {
		return "", &ConfigError{Endpoint: endpoint}
	}

	slots := strings.Count(tpl, "%s")
	for len(args) < slots {
		args = append(args, "")
	}
	vals := make([]any, slots)
	for i := 0; i < slots; i++ {
		vals[i] = args[i]
	}

	url := c.baseURL + fmt.Sprintf(tpl, vals...)
	return strings.TrimRight(url, "/"), nil
}
