package generation

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

type gemini struct {
	client      *genai.Client
	model       string
	temperature float32
}

// NewGemini creates a provider backed by the Gemini API. Without an API key the
// provider is still returned and every completion fails with ErrMissingCredential,
// so a missing credential surfaces as a generation failure rather than a startup error.
func NewGemini(ctx context.Context, cfg *GeminiConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return missingCredential{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &gemini{
		client:      client,
		model:       cfg.Model,
		temperature: float32(cfg.TemperatureValue()),
	}, nil
}

func (g *gemini) Complete(ctx context.Context, prompt Prompt) (string, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		genai.Text(prompt.User),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(prompt.System, genai.RoleUser),
			Temperature:       genai.Ptr(g.temperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

type missingCredential struct{}

func (missingCredential) Complete(context.Context, Prompt) (string, error) {
	return "", ErrMissingCredential
}
