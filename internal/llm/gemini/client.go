package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"resume-vault/internal/llm"
)

const defaultModel = "gemini-1.5-flash"

// Client implements llm.Client using the Google Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewClient constructs a Gemini-backed extraction client.
func NewClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 120 * time.Second
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Client{client: client, model: model, timeout: timeout}, nil
}

// ExtractResume runs a single generation call and parses the structured record
// out of the response text.
func (c *Client) ExtractResume(ctx context.Context, text string) (llm.Resume, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	temp := float32(0)
	model.Temperature = &temp

	resp, err := model.GenerateContent(ctx, genai.Text(llm.BuildResumePrompt(text)))
	if err != nil {
		return llm.Resume{}, fmt.Errorf("gemini generate content: %w", err)
	}

	responseText, err := textFromResponse(resp)
	if err != nil {
		return llm.Resume{}, err
	}

	return llm.ParseResume(responseText)
}

// Close releases the underlying API connection.
func (c *Client) Close() error {
	return c.client.Close()
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", llm.ErrEmptyResponse
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", llm.ErrEmptyResponse
	}

	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", llm.ErrEmptyResponse
	}
	return b.String(), nil
}
