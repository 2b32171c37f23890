package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AIService orchestrates the extraction pipeline (file -> text -> prompt ->
// completion -> canonical transactions) and the financial analysis summary.
type AIService struct {
	extract *ExtractService
	llm     Completer
	txRepo  *repository.TransactionRepository
	logger  *zap.Logger
}

func NewAIService(extract *ExtractService, llm Completer, txRepo *repository.TransactionRepository, logger *zap.Logger) *AIService {
	return &AIService{
		extract: extract,
		llm:     llm,
		txRepo:  txRepo,
		logger:  logger,
	}
}

// ExtractTransactions runs the whole pipeline for one uploaded file. The file
// is a temporary artifact and is removed on every exit path, success or not.
func (s *AIService) ExtractTransactions(ctx context.Context, filePath string) (*ParsedTransactions, error) {
	defer func() {
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove uploaded file",
				zap.String("file", filepath.Base(filePath)),
				zap.Error(err),
			)
		}
	}()

	text, err := s.extract.ExtractText(filePath)
	if err != nil {
		return nil, err
	}

	prompt := BuildExtractionPrompt(text)

	ctx, cancel := context.WithTimeout(ctx, extractionTimeout)
	defer cancel()

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	parsed, err := ParseCompletion(raw, time.Now())
	if err != nil {
		// The raw payload goes to the log for diagnosis, never to the caller.
		s.logger.Error("Malformed completion response",
			zap.String("raw_response", raw),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Transaction extraction completed",
		zap.Int("income", len(parsed.Income)),
		zap.Int("expenses", len(parsed.Expenses)),
	)

	return parsed, nil
}

// Analyze summarizes the user's recorded income and expenses over a period
// and asks the completion service for a free-text review.
func (s *AIService) Analyze(ctx context.Context, userID uuid.UUID, req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	since := periodStart(req.Period, time.Now())

	var summary strings.Builder
	var totalIncome, totalExpense float64
	var count int

	if req.Type == "income" || req.Type == "both" {
		incomes, err := s.txRepo.ListIncomeByUser(ctx, userID, since)
		if err != nil {
			return nil, err
		}
		summary.WriteString("Income:\n")
		for _, in := range incomes {
			totalIncome += in.Amount
			count++
			fmt.Fprintf(&summary, "- %s: %.2f on %s\n", in.Source, in.Amount, in.Date.Format("2006-01-02"))
		}
	}

	if req.Type == "expense" || req.Type == "both" {
		expenses, err := s.txRepo.ListExpenseByUser(ctx, userID, since)
		if err != nil {
			return nil, err
		}
		summary.WriteString("Expenses:\n")
		for _, ex := range expenses {
			totalExpense += ex.Amount
			count++
			fmt.Fprintf(&summary, "- %s: %.2f on %s\n", ex.Category, ex.Amount, ex.Date.Format("2006-01-02"))
		}
	}

	if count == 0 {
		return nil, ErrNoRecords
	}

	prompt := BuildAnalysisPrompt(req.Type, req.Period, summary.String())
	aiText, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &dto.AnalyzeResponse{
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Balance:      totalIncome - totalExpense,
		AIResponse:   aiText,
	}, nil
}

// periodStart maps a period code to the start of the range; nil means no
// lower bound.
func periodStart(period string, now time.Time) *time.Time {
	var months int
	switch period {
	case "1M":
		months = 1
	case "3M":
		months = 3
	case "6M":
		months = 6
	default:
		return nil
	}
	since := now.AddDate(0, -months, 0)
	return &since
}
