// Package llm is the client for the remote answer service.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// ErrMissingCredential is returned before any network attempt when no API
// key is configured. This is a configuration error, not a transient one.
var ErrMissingCredential = errors.New("OPENAI_API_KEY environment variable not set")

const accurateSystemPrompt = "You are a factual question answering assistant. " +
	"Answer ACCURATELY and CONCISELY with ONLY the direct answer phrase. " +
	"If the question is Arabic respond in Arabic."

type Config struct {
	APIKey    string
	OrgID     string
	ProjectID string
	Model     string
	BaseURL   string // override for tests / compatible endpoints
}

type Client struct {
	api   *openai.Client
	model string
}

// New builds a client. Organization and project identifiers are passed
// through verbatim when present.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingCredential
	}

	cc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		cc.BaseURL = cfg.BaseURL
	}
	if cfg.OrgID != "" {
		cc.OrgID = cfg.OrgID
	}
	if cfg.ProjectID != "" {
		cc.HTTPClient = &http.Client{Transport: &projectTransport{project: cfg.ProjectID}}
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}

	return &Client{api: openai.NewClientWithConfig(cc), model: model}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// Ask sends question as a plain user message, temperature 0.7.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	return c.ask(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: question},
	}, 0.7)
}

// AskAccurate constrains the reply to a short factual phrase (Arabic when the
// question is Arabic), temperature 0.2. Used by the GUI flow.
func (c *Client) AskAccurate(ctx context.Context, question string) (string, error) {
	return c.ask(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: accurateSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: question},
	}, 0.2)
}

func (c *Client) ask(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusUnauthorized {
			return "", fmt.Errorf("authentication failed: verify that your OPENAI_API_KEY is correct and active: %w", err)
		}
		return "", fmt.Errorf("answer service error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices from answer service")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// projectTransport adds the OpenAI-Project header to every request;
// go-openai's client config has no project field of its own.
type projectTransport struct {
	project string
}

func (t *projectTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("OpenAI-Project", t.project)
	return http.DefaultTransport.RoundTrip(clone)
}
