// Package gemini implements the advisor port on top of the Google
// Generative Language API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"geldplan/internal/advisor"

	genlang "google.golang.org/api/generativelanguage/v1beta"
	goption "google.golang.org/api/option"
)

const systemInstruction = "Je bent een behulpzame financiële assistent voor een persoonlijke budgetplanner. " +
	"Antwoord kort en concreet in het Nederlands op basis van de meegegeven financiële situatie. " +
	"Geef geen gebonden financieel advies, alleen algemene richting."

type Client struct {
	svc   *genlang.Service
	model string
}

var _ advisor.Advisor = (*Client)(nil)

// New creates a Generative Language client authenticated with an API key.
// model is the bare model name, e.g. "gemini-1.5-flash".
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing API key")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("missing model name")
	}
	svc, err := genlang.NewService(ctx, goption.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create generativelanguage service: %w", err)
	}
	return &Client{svc: svc, model: "models/" + strings.TrimPrefix(model, "models/")}, nil
}

func (c *Client) Advise(ctx context.Context, financialContext, question string) (string, error) {
	if c.svc == nil {
		return "", errors.New("generativelanguage service not initialized")
	}

	prompt := systemInstruction + "\n\n" + financialContext + "\nVraag: " + question

	req := &genlang.GenerateContentRequest{
		Contents: []*genlang.Content{{
			Role:  "user",
			Parts: []*genlang.Part{{Text: prompt}},
		}},
	}

	resp, err := c.svc.Models.GenerateContent(c.model, req).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		var b strings.Builder
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		if text := strings.TrimSpace(b.String()); text != "" {
			return text, nil
		}
	}
	return "", errors.New("empty response from model")
}
