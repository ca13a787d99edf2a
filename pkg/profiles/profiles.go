// Package profiles loads named model presets from YAML or JSON registry
// files so callers can switch model sets per invocation.
package profiles

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile names a preset of model identifiers for the three generation
// operations. Empty fields fall back to the caller's defaults.
type Profile struct {
	ID              string `json:"id" yaml:"id"`
	CompletionModel string `json:"completion_model" yaml:"completion_model"`
	ChatModel       string `json:"chat_model" yaml:"chat_model"`
	EditModel       string `json:"edit_model" yaml:"edit_model"`
}

type registryFile struct {
	Profiles []Profile `json:"profiles" yaml:"profiles"`
}

// Registry holds the loaded profiles indexed by id.
type Registry struct {
	profiles []Profile
	byID     map[string]Profile
}

type unmarshalFn func([]byte, any) error

// Load reads a profile registry from a YAML or JSON file.
func Load(path string) (*Registry, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("profiles file path is empty")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles file: %w", err)
	}

	entries, err := parse(raw, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("profiles file contains no profiles entries")
	}

	idx := make(map[string]Profile, len(entries))
	for i, p := range entries {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			return nil, fmt.Errorf("profile[%d]: id is empty", i)
		}
		if _, exists := idx[p.ID]; exists {
			return nil, fmt.Errorf("duplicate profile id %q", p.ID)
		}
		entries[i] = p
		idx[p.ID] = p
	}

	return &Registry{profiles: entries, byID: idx}, nil
}

func parse(data []byte, ext string) ([]Profile, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))

	decoders := []struct {
		ext string
		fn  unmarshalFn
	}{
		{ext: ".yaml", fn: yamlUnmarshal},
		{ext: ".yml", fn: yamlUnmarshal},
		{ext: ".json", fn: json.Unmarshal},
	}

	var lastErr error
	for _, d := range decoders {
		if ext != "" && ext != d.ext {
			continue
		}
		var reg registryFile
		if err := d.fn(data, &reg); err != nil {
			lastErr = err
			continue
		}
		return reg.Profiles, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("parse profiles file: %w", lastErr)
	}
	return nil, fmt.Errorf("unsupported profiles file extension %q", ext)
}

func yamlUnmarshal(data []byte, out any) error {
	return yaml.Unmarshal(data, out)
}

// All returns a copy of the loaded profiles.
func (r *Registry) All() []Profile {
	if r == nil || len(r.profiles) == 0 {
		return nil
	}
	out := make([]Profile, len(r.profiles))
	copy(out, r.profiles)
	return out
}

// ByID returns the profile for the given id, if loaded.
func (r *Registry) ByID(id string) (Profile, bool) {
	if r == nil {
		return Profile{}, false
	}
	p, ok := r.byID[strings.TrimSpace(id)]
	return p, ok
}
