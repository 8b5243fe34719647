// pkg/ai/mock_client.go

package ai

import (
	"context"
	_ "embed"
)

//go:embed mock_plan.json
var mockPlan string

type mockClient struct{}

// NewMock returns a client that always answers with the same small plan.
func NewMock() Client { return &mockClient{} }

func (m *mockClient) Name() string { return "mock" }

func (m *mockClient) Generate(ctx context.Context, r Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return mockPlan, nil
}
