package narrative

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adhavannn/ai-report-generator/pkg/models/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary() domain.FinancialSummary {
	return domain.FinancialSummary{
		TotalRevenue:  decimal.NewFromInt(350000),
		TotalExpenses: decimal.NewFromInt(100000),
		NetProfit:     decimal.NewFromInt(250000),
	}
}

func newGenerator(baseURL string) *Generator {
	return NewGenerator(Settings{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Model:          "gpt-3.5-turbo",
		MaxTokens:      300,
		CurrencySymbol: "₹",
	})
}

func TestPrompt(t *testing.T) {
	g := newGenerator("http://unused")
	prompt := g.Prompt(summary())

	assert.Contains(t, prompt, "Analyze this financial data:")
	assert.Contains(t, prompt, "Total Revenue: ₹350,000")
	assert.Contains(t, prompt, "Total Expenses: ₹100,000")
	assert.Contains(t, prompt, "Net Profit: ₹250,000")
	assert.Contains(t, prompt, "professional summary")
}

func TestGenerate(t *testing.T) {
	var captured chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  The business is healthy.  "}},
			},
		})
	}))
	defer server.Close()

	g := newGenerator(server.URL)
	text, err := g.Generate(context.Background(), summary())

	require.NoError(t, err)
	assert.Equal(t, "The business is healthy.", text, "response should be trimmed")

	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	assert.Equal(t, 300, captured.MaxTokens)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, SystemPrompt, captured.Messages[0].Content)
	assert.Equal(t, "user", captured.Messages[1].Role)
}

func TestGenerateFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "service error status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			},
		},
		{
			name: "empty choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			g := newGenerator(server.URL)
			_, err := g.Generate(context.Background(), summary())

			var unavailable *domain.NarrativeUnavailableError
			require.ErrorAs(t, err, &unavailable)
		})
	}
}

func TestGenerateTransportFailure(t *testing.T) {
	// Closed server: connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	g := newGenerator(server.URL)
	_, err := g.Generate(context.Background(), summary())

	var unavailable *domain.NarrativeUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestGenerateWithoutAPIKey(t *testing.T) {
	g := NewGenerator(Settings{BaseURL: "http://unused", Model: "gpt-3.5-turbo"})
	_, err := g.Generate(context.Background(), summary())

	var unavailable *domain.NarrativeUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "narrative_unavailable", domain.ErrorKind(err))
}
