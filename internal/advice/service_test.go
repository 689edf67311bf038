package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boekhouder/pkg/models"
)

func TestNewServiceRequiresKey(t *testing.T) {
	_, err := NewService("  ", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	svc, err := NewService("sk-test", "")
	require.NoError(t, err)
	assert.Equal(t, openai.GPT4oMini, svc.model)
}

func TestCleanResponse(t *testing.T) {
	assert.Equal(t, "1. Reserveer btw.", cleanResponse("```markdown\n1. Reserveer btw.\n```"))
	assert.Equal(t, "1. Reserveer btw.", cleanResponse("```\n1. Reserveer btw.\n```"))
	assert.Equal(t, "plain", cleanResponse("  plain \n"))
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(
		models.FinancialSummary{Revenue: 1500.004, VATPayable: 228, KIADeduction: 840},
		models.VatReport{Year: 2024, Quarter: 2, TotalPayable: 29},
	)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"omzet": 1500`)
	assert.Contains(t, prompt, `"kia_aftrek": 840`)
	assert.Contains(t, prompt, `"kwartaal": 2`)
	assert.Contains(t, prompt, `"te_betalen": 29`)
	assert.Contains(t, prompt, "Antwoord in het Nederlands")
}

func TestGenerateAdvice(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			Choices: []openai.ChatCompletionChoice{{
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: "```\n1. Zet 29 euro opzij voor de btw.\n```",
				},
			}},
			Usage: openai.Usage{TotalTokens: 42},
		})
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("sk-test")
	cfg.BaseURL = srv.URL + "/v1"
	svc := NewServiceWithClient(openai.NewClientWithConfig(cfg), "gpt-test")

	advice, err := svc.GenerateAdvice(context.Background(), models.FinancialSummary{}, models.VatReport{Year: 2024, Quarter: 1, TotalPayable: 29})
	require.NoError(t, err)
	assert.Equal(t, "1. Zet 29 euro opzij voor de btw.", advice)

	assert.Equal(t, "gpt-test", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, got.Messages[0].Role)
	assert.Contains(t, got.Messages[0].Content, "BTW-AANGIFTE")
}

func TestGenerateAdviceNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("sk-test")
	cfg.BaseURL = srv.URL + "/v1"
	svc := NewServiceWithClient(openai.NewClientWithConfig(cfg), "")

	_, err := svc.GenerateAdvice(context.Background(), models.FinancialSummary{}, models.VatReport{})
	assert.ErrorContains(t, err, "no response choices")
}
