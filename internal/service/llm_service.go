package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

const (
	// maxPromptChars bounds the extracted text embedded in a prompt. The
	// truncation is a hard cutoff, not word-aware.
	maxPromptChars = 12000

	// extractionTimeout bounds the completion call for transaction
	// extraction. The losing call is not retried.
	extractionTimeout = 120 * time.Second
)

// Completer is the abstract text-completion capability the pipeline depends
// on. The provider's behavior behind it is opaque.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type LLMService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildSystemInstruction() string {
	return `You are a financial data assistant for a personal finance tracker. You extract structured transaction data from financial documents and produce short, practical summaries of a user's income and spending. When asked for structured data you respond with valid JSON only, no commentary. When asked for analysis you respond with clear, concise plain text.`
}

func NewLLMService(cfg *config.GigaChatConfig, logger *zap.Logger) (*LLMService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = buildSystemInstruction()
	model.Temperature = 0.3

	return &LLMService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

// Complete sends one prompt and returns the raw completion text. A deadline
// on ctx races the call against a timer; the loser is not retried and a
// timeout is reported as a timeout, never as a format error.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return "", ErrCompletionTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrCompletionUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrCompletionUnavailable)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (s *LLMService) Close() error {
	if s.client != nil {
		s.client.Close()
	}
	return nil
}

// BuildExtractionPrompt renders the deterministic instruction template for
// transaction extraction, embedding the extracted text truncated to the
// prompt budget. One prompt per extraction request, no reformulation.
func BuildExtractionPrompt(extractedText string) string {
	if len(extractedText) > maxPromptChars {
		extractedText = extractedText[:maxPromptChars]
	}

	return fmt.Sprintf(`Extract every financial transaction from the document text below.

IMPORTANT: Return ONLY a valid JSON object, without markdown formatting, code fences, or any commentary before or after the JSON.

The JSON object must have exactly two lists:
{
  "income": [
    { "source": "income source or \"NA\"", "amount": number, "date": "YYYY-MM-DD" }
  ],
  "expenses": [
    { "category": "expense category or \"NA\"", "amount": number, "date": "YYYY-MM-DD" }
  ]
}

RULES:
- If the source or category is missing or unclear, use the literal string "NA"
- If the date is missing or invalid, use today's date
- Amounts must be numeric; skip values that are not numbers
- If there are no transactions, return {"income": [], "expenses": []}

Document text:
%s`, extractedText)
}

// BuildAnalysisPrompt renders the instruction template for a free-text
// financial summary over the user's recorded data.
func BuildAnalysisPrompt(analysisType, period, dataSummary string) string {
	return fmt.Sprintf(`You are a financial advisor. Analyze the following personal finance data (%s, period: %s) and write a short plain-text review for the user.

Cover:
- the expense-to-income ratio and overall balance
- notable spending patterns or categories
- two or three concrete suggestions to improve their finances

Keep it under 200 words. Do not return JSON or markdown, plain text only.

Data:
%s`, analysisType, period, dataSummary)
}
