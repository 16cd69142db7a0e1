// Package narrative asks an OpenAI-compatible completion service for a
// prose summary of the financial figures.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
)

// Settings is the completion service boundary configuration. Credentials
// come from deployment configuration, never from user input.
type Settings struct {
	BaseURL   string
	APIKey    string
	Model     string
	MaxTokens int
	// CurrencySymbol is used when rendering the figures into the prompt.
	CurrencySymbol string
}

// Generator builds the fixed prompt and submits it to the completion
// service. A failed call degrades the report, it never aborts it; the
// caller treats every returned error as *domain.NarrativeUnavailableError.
type Generator struct {
	settings   Settings
	httpClient *http.Client
}

func NewGenerator(settings Settings) *Generator {
	return &Generator{
		settings: settings,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Prompt renders the deterministic user prompt for a summary.
func (g *Generator) Prompt(summary domain.FinancialSummary) string {
	return fmt.Sprintf(PromptTemplate,
		domain.FormatAmount(summary.TotalRevenue, g.settings.CurrencySymbol),
		domain.FormatAmount(summary.TotalExpenses, g.settings.CurrencySymbol),
		domain.FormatAmount(summary.NetProfit, g.settings.CurrencySymbol),
	)
}

// Generate returns the service's prose, trimmed of surrounding whitespace.
func (g *Generator) Generate(ctx context.Context, summary domain.FinancialSummary) (string, error) {
	if g.settings.APIKey == "" {
		return "", &domain.NarrativeUnavailableError{Err: errors.New("completion service API key is not configured")}
	}

	text, err := g.complete(ctx, g.Prompt(summary))
	if err != nil {
		return "", &domain.NarrativeUnavailableError{Err: err}
	}
	return strings.TrimSpace(text), nil
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: g.settings.Model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: g.settings.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := strings.TrimRight(g.settings.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.settings.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call completion service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion service error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", errors.New("completion service returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
