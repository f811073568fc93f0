package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/emanuele-r/newspaper/internal/config"
)

// Assistant generates summaries and translations for articles.
type Assistant interface {
	Summarize(ctx context.Context, title, content string) (string, error)
	Translate(ctx context.Context, text, language string) (string, error)
}

// New creates an Assistant from the given AI config.
func New(cfg *config.AIConfig, apiKey string) (Assistant, error) {
	if cfg == nil || apiKey == "" {
		return nil, fmt.Errorf("AI not configured")
	}

	client := &http.Client{Timeout: 30 * time.Second}

	switch cfg.Provider {
	case "claude":
		model := cfg.Model
		if model == "" {
			model = "claude-haiku-4-5-20251001"
		}
		return &claudeProvider{apiKey: apiKey, model: model, client: client, baseURL: "https://api.anthropic.com"}, nil
	case "openai":
		model := cfg.Model
		if model == "" {
			model = "gpt-4o-mini"
		}
		return &openaiProvider{apiKey: apiKey, model: model, client: client, baseURL: "https://api.openai.com"}, nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %q (valid: claude, openai)", cfg.Provider)
	}
}

const summarizePrompt = `Summarize this news article in 2-3 sentences. Be factual and neutral. No hype, no exclamation marks, max 400 characters total.

Title: %s
Content: %s

Respond with ONLY the summary text, nothing else.`

const translatePrompt = `Translate the following text to %s. Preserve proper names, numbers, and the original tone.

%s

Respond with ONLY the translation, nothing else.`

// cleanResponse strips the framing some models wrap around a plain-text
// answer: surrounding quotes, a leading "Summary:" style label, stray
// whitespace.
func cleanResponse(text string) string {
	text = strings.TrimSpace(text)
	for _, label := range []string{"Summary:", "SUMMARY:", "Translation:", "TRANSLATION:"} {
		if strings.HasPrefix(text, label) {
			text = strings.TrimSpace(strings.TrimPrefix(text, label))
		}
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return strings.TrimSpace(text)
}

// --- Claude provider ---

type claudeProvider struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

type claudeRequest struct {
	Model     string          `json:"model"`
	MaxTokens int             `json:"max_tokens"`
	Messages  []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

func (c *claudeProvider) Summarize(ctx context.Context, title, content string) (string, error) {
	prompt := fmt.Sprintf(summarizePrompt, title, content)
	text, err := c.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	return cleanResponse(text), nil
}

func (c *claudeProvider) Translate(ctx context.Context, text, language string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, language, text)
	out, err := c.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	return cleanResponse(out), nil
}

func (c *claudeProvider) call(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: 512,
		Messages:  []claudeMessage{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("claude API %d: %s", resp.StatusCode, string(b))
	}

	var cr claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	if len(cr.Content) == 0 {
		return "", fmt.Errorf("empty claude response")
	}
	return cr.Content[0].Text, nil
}

// --- OpenAI provider ---

type openaiProvider struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

type openaiRequest struct {
	Model    string          `json:"model"`
	Messages []openaiMessage `json:"messages"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (o *openaiProvider) Summarize(ctx context.Context, title, content string) (string, error) {
	prompt := fmt.Sprintf(summarizePrompt, title, content)
	text, err := o.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	return cleanResponse(text), nil
}

func (o *openaiProvider) Translate(ctx context.Context, text, language string) (string, error) {
	prompt := fmt.Sprintf(translatePrompt, language, text)
	out, err := o.call(ctx, prompt)
	if err != nil {
		return "", err
	}
	return cleanResponse(out), nil
}

func (o *openaiProvider) call(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(openaiRequest{
		Model:    o.model,
		Messages: []openaiMessage{{Role: "user", Content: prompt}},
	})

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("openai API %d: %s", resp.StatusCode, string(b))
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", err
	}
	if len(or.Choices) == 0 {
		return "", fmt.Errorf("empty openai response")
	}
	return or.Choices[0].Message.Content, nil
}
