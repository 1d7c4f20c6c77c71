package generation

import (
	"context"
	"fmt"

	"github.com/JaimeStill/go-agents/pkg/agent"
	gaconfig "github.com/JaimeStill/go-agents/pkg/config"
)

type agentProvider struct {
	cfg gaconfig.AgentConfig
}

// NewAgent creates a provider backed by a go-agents chat agent, covering the
// Ollama, Azure, and OpenAI-compatible backends go-agents supports.
func NewAgent(cfg gaconfig.AgentConfig) Provider {
	return &agentProvider{cfg: cfg}
}

func (p *agentProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	a, err := agent.New(&p.cfg)
	if err != nil {
		return "", fmt.Errorf("create agent: %w", err)
	}

	resp, err := a.Chat(ctx, prompt.Combined())
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}
	return resp.Content(), nil
}
