// Package advice asks a chat model for short bookkeeping advice based on the
// current financial summary and VAT return.
package advice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"boekhouder/internal/finance"
	"boekhouder/internal/logger"
	"boekhouder/pkg/models"
)

// ErrMissingAPIKey is returned when no OpenAI API key is configured.
var ErrMissingAPIKey = errors.New("missing OpenAI API key")

// Service generates Dutch financial advice with the OpenAI chat API
type Service struct {
	openaiClient *openai.Client
	model        string
	log          zerolog.Logger
}

// NewService creates an advice service for apiKey. An empty model selects gpt-4o-mini.
func NewService(apiKey, model string) (*Service, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	return NewServiceWithClient(openai.NewClient(apiKey), model), nil
}

// NewServiceWithClient wraps an existing client
func NewServiceWithClient(client *openai.Client, model string) *Service {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &Service{
		openaiClient: client,
		model:        model,
		log:          logger.WithComponent("advice"),
	}
}

// GenerateAdvice returns a short advice text for the given year figures and VAT return
func (s *Service) GenerateAdvice(ctx context.Context, summary models.FinancialSummary, report models.VatReport) (string, error) {
	const op = "GenerateAdvice"

	prompt, err := buildPrompt(summary, report)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug().
		Str("model", s.model).
		Int("year", report.Year).
		Int("quarter", report.Quarter).
		Msg("Sending advice request to ChatGPT")

	resp, err := s.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return "", fmt.Errorf("%s: ChatGPT request failed: %w", op, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%s: no response choices from ChatGPT", op)
	}

	advice := cleanResponse(resp.Choices[0].Message.Content)

	s.log.Info().
		Int("length", len(advice)).
		Int("total_tokens", resp.Usage.TotalTokens).
		Msg("Received advice from ChatGPT")

	return advice, nil
}

func buildPrompt(summary models.FinancialSummary, report models.VatReport) (string, error) {
	figures, err := json.MarshalIndent(map[string]interface{}{
		"omzet":                finance.Round(summary.Revenue),
		"kosten":               finance.Round(summary.Expenses),
		"investeringen":        finance.Round(summary.Investments),
		"winst":                finance.Round(summary.Profit),
		"btw_af_te_dragen":     finance.Round(summary.VATPayable),
		"voorbelasting":        finance.Round(summary.VATDeductible),
		"btw_saldo":            finance.Round(summary.VATTotal),
		"kia_aftrek":           finance.Round(summary.KIADeduction),
		"handmatige_correctie": finance.Round(summary.ManualCorrection),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary JSON: %w", err)
	}

	vat, err := json.MarshalIndent(map[string]interface{}{
		"jaar":          report.Year,
		"kwartaal":      report.Quarter,
		"omzet_hoog":    finance.Round(report.TurnoverHigh),
		"btw_hoog":      finance.Round(report.VATHigh),
		"omzet_laag":    finance.Round(report.TurnoverLow),
		"btw_laag":      finance.Round(report.VATLow),
		"voorbelasting": finance.Round(report.VATDeductible),
		"te_betalen":    finance.Round(report.TotalPayable),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal VAT report JSON: %w", err)
	}

	return fmt.Sprintf(`Je bent een ervaren boekhouder voor Nederlandse eenmanszaken en kleine BV's.

FINANCIEEL OVERZICHT (bedragen in euro):
%s

BTW-AANGIFTE HUIDIG KWARTAAL:
%s

Geef maximaal vijf concrete adviezen over:
1. Liquiditeit en de te betalen btw.
2. De kleinschaligheidsinvesteringsaftrek (KIA) en of extra investeren dit jaar loont.
3. Opvallende verhoudingen tussen omzet, kosten en winst.

Antwoord in het Nederlands, als korte genummerde lijst, zonder inleiding.`, string(figures), string(vat)), nil
}

// cleanResponse strips the markdown code fences the model sometimes wraps around its answer
func cleanResponse(response string) string {
	cleaned := strings.TrimSpace(response)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}
	return cleaned
}
