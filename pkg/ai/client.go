// pkg/ai/client.go

package ai

import "context"

// Schema is a provider-neutral subset of JSON Schema used to constrain
// structured output.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
	// Ordering keeps property order stable for providers that honour it.
	Ordering []string `json:"-"`
}

type Request struct {
	Prompt      string
	Schema      *Schema
	Temperature float32
}

// Client turns a prompt plus output schema into raw model text.
type Client interface {
	Generate(ctx context.Context, req Request) (string, error)
	Name() string
}
