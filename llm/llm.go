// Package llm is the boundary to the hosted text-generation endpoint.
package llm

import (
	"context"
	"fmt"
	"iter"
	"os"

	"google.golang.org/genai"
)

const (
	defaultModel = "gemini-2.0-flash"

	// Quality/latency trade-offs, not correctness knobs.
	maxOutputTokens = 2048
	temperature     = float32(0.7)
)

// Streamer yields the text fragments of one generation, strictly in arrival
// order. A non-nil error ends the stream; whatever text preceded it must be
// treated as garbage by the caller.
type Streamer interface {
	Stream(ctx context.Context, system, user string) iter.Seq2[string, error]
}

// Client talks to the Gemini API.
type Client struct {
	genai *genai.Client
	model string
}

func NewClient(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("neither GEMINI_API_KEY nor GOOGLE_API_KEY is set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{genai: client, model: model}, nil
}

// Stream runs one bounded, sampled generation and yields each fragment of
// appended text as it arrives.
func (c *Client) Stream(ctx context.Context, system, user string) iter.Seq2[string, error] {
	config := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(temperature),
		MaxOutputTokens:   maxOutputTokens,
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	}

	return func(yield func(string, error) bool) {
		for resp, err := range c.genai.Models.GenerateContentStream(ctx, c.model, genai.Text(user), config) {
			if err != nil {
				yield("", err)
				return
			}
			for _, cand := range resp.Candidates {
				if cand.Content == nil {
					continue
				}
				for _, part := range cand.Content.Parts {
					if part.Text == "" {
						continue
					}
					if !yield(part.Text, nil) {
						return
					}
				}
			}
		}
	}
}
