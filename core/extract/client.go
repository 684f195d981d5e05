// Package extract calls a hosted OpenAI-compatible model to pull structured
// fields out of court document text.
package extract

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Config holds the extractor's API settings.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	VisionModel string
	Timeout     time.Duration
}

// Client talks to the chat-completions API. Successful extraction results
// are cached by text hash so re-processing an unchanged document skips the
// API round trip.
type Client struct {
	cfg        Config
	httpClient *http.Client
	prompts    *PromptSet
	cache      *gocache.Cache
}

// NewClient builds an extractor client, filling config defaults.
func NewClient(cfg Config, prompts *PromptSet) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("extractor API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.VisionModel == "" {
		cfg.VisionModel = "gpt-4o"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if prompts == nil {
		prompts = DefaultPrompts()
	}

	return &Client{
		cfg:        cfg,
		prompts:    prompts,
		cache:      gocache.New(30*time.Minute, 10*time.Minute),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Extract classifies the document text and asks the model for structured
// fields. It never returns an error: failures come back as a status-tagged
// Result so the caller can render them inline.
func (c *Client) Extract(ctx context.Context, text string) Result {
	cacheKey := fmt.Sprintf("%x", sha256.Sum256([]byte(text)))
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.(Result)
	}

	detectedType := DetectDocumentType(text)
	prompt := c.prompts.For(detectedType, text)

	content, err := c.chat(ctx, c.cfg.Model, systemPrompt, prompt, 0.1)
	if err != nil {
		status := StatusError
		if isTimeout(err) {
			status = StatusTimeout
		}
		return Result{
			Status:       status,
			DocumentType: detectedType,
			Fields:       map[string]any{},
			Error:        err.Error(),
		}
	}

	fields := make(map[string]any)
	if err := json.Unmarshal([]byte(cleanMarkdownWrapper(content)), &fields); err != nil {
		return Result{
			Status:          StatusPartial,
			DocumentType:    detectedType,
			Fields:          map[string]any{},
			ConfidenceScore: 50,
			RawResponse:     content,
			Error:           fmt.Sprintf("JSON parsing error: %v", err),
		}
	}

	result := Result{
		Status:       StatusProcessed,
		DocumentType: detectedType,
		Fields:       fields,
	}
	if dt, ok := fields["document_type"].(string); ok && dt != "" {
		result.DocumentType = dt
	}
	if score, ok := fields["confidence_score"].(float64); ok {
		result.ConfidenceScore = score
	}

	c.cache.Set(cacheKey, result, gocache.DefaultExpiration)
	return result
}

// OCRImage extracts text from a document image via the vision model.
func (c *Client) OCRImage(ctx context.Context, dataURL string) (string, error) {
	payload := chatRequest{
		Model: c.cfg.VisionModel,
		Messages: []chatMessage{
			{
				Role: "user",
				Content: []contentPart{
					{Type: "text", Text: "Extract all text from this document image. Maintain the original formatting and structure."},
					{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				},
			},
		},
		MaxTokens: 1000,
	}
	return c.complete(ctx, payload)
}

// Summary asks the model for a professional summary of a processing result.
func (c *Client) Summary(ctx context.Context, documentInfo, verification any) (string, error) {
	docJSON, _ := json.MarshalIndent(documentInfo, "", "  ")
	verJSON, _ := json.MarshalIndent(verification, "", "  ")
	prompt := fmt.Sprintf(`Generate a professional summary of this document processing result:

Document Information:
%s

Customer Verification:
%s

Create a concise summary that includes:
1. Document type and key details
2. Customer verification status
3. Recommended next actions
4. Any concerns or flags

Keep it professional and actionable.`, docJSON, verJSON)

	return c.chat(ctx, c.cfg.Model, "You are a banking operations specialist. Provide clear, actionable summaries.", prompt, 0.3)
}

// PaymentInstructions asks the model for step-by-step payment processing
// instructions for a garnishment order.
func (c *Client) PaymentInstructions(ctx context.Context, customerName, accountNumber string, amount float64, creditor string) (string, error) {
	prompt := fmt.Sprintf(`Generate detailed payment processing instructions for this garnishment order:

Customer: %s
Account: %s
Amount: $%.2f
Creditor: %s

Include:
1. Step-by-step payment process
2. Required documentation
3. Compliance requirements
4. Timeline expectations
5. Confirmation procedures

Make it clear and actionable for banking operations staff.`, customerName, accountNumber, amount, creditor)

	return c.chat(ctx, c.cfg.Model, "You are a banking operations expert. Provide detailed, compliant instructions.", prompt, 0.2)
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (c *Client) chat(ctx context.Context, model, system, user string, temperature float64) (string, error) {
	return c.complete(ctx, chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: temperature,
	})
}

func (c *Client) complete(ctx context.Context, payload chatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}
	return parsed.Choices[0].Message.Content, nil
}

// cleanMarkdownWrapper strips a ```json fence some models insist on adding.
func cleanMarkdownWrapper(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}
	return content
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func stringify(v any) string {
	switch t := v.(type) {
	case float64:
		return fmt.Sprintf("%g", t)
	case bool:
		return fmt.Sprintf("%t", t)
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(data)
	}
}
