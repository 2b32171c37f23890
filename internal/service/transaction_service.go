package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const recentLimit = 5

type TransactionService struct {
	repo   *repository.TransactionRepository
	logger *zap.Logger
}

func NewTransactionService(repo *repository.TransactionRepository, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		repo:   repo,
		logger: logger,
	}
}

func (s *TransactionService) AddIncome(ctx context.Context, userID uuid.UUID, req *dto.AddIncomeRequest) (*models.Income, error) {
	if strings.TrimSpace(req.Source) == "" || req.Amount <= 0 || req.Date == "" {
		return nil, ErrMissingFields
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, ErrMissingFields
	}

	now := time.Now()
	income := &models.Income{
		ID:        uuid.New(),
		UserID:    userID,
		Icon:      req.Icon,
		Source:    strings.TrimSpace(req.Source),
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateIncome(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *TransactionService) AddExpense(ctx context.Context, userID uuid.UUID, req *dto.AddExpenseRequest) (*models.Expense, error) {
	if strings.TrimSpace(req.Category) == "" || req.Amount <= 0 || req.Date == "" {
		return nil, ErrMissingFields
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, ErrMissingFields
	}

	now := time.Now()
	expense := &models.Expense{
		ID:        uuid.New(),
		UserID:    userID,
		Icon:      req.Icon,
		Category:  strings.TrimSpace(req.Category),
		Amount:    req.Amount,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *TransactionService) ListIncome(ctx context.Context, userID uuid.UUID) ([]*models.Income, error) {
	return s.repo.ListIncomeByUser(ctx, userID, nil)
}

func (s *TransactionService) ListExpense(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	return s.repo.ListExpenseByUser(ctx, userID, nil)
}

func (s *TransactionService) UpdateIncome(ctx context.Context, userID, id uuid.UUID, req *dto.AddIncomeRequest) (*models.Income, error) {
	if strings.TrimSpace(req.Source) == "" || req.Amount <= 0 || req.Date == "" {
		return nil, ErrMissingFields
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, ErrMissingFields
	}

	income, err := s.repo.GetIncomeByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	income.Source = strings.TrimSpace(req.Source)
	income.Amount = req.Amount
	income.Date = date
	if req.Icon != "" {
		income.Icon = req.Icon
	}
	income.UpdatedAt = time.Now()

	if err := s.repo.UpdateIncome(ctx, income); err != nil {
		return nil, err
	}
	return income, nil
}

func (s *TransactionService) UpdateExpense(ctx context.Context, userID, id uuid.UUID, req *dto.AddExpenseRequest) (*models.Expense, error) {
	if strings.TrimSpace(req.Category) == "" || req.Amount <= 0 || req.Date == "" {
		return nil, ErrMissingFields
	}

	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		return nil, ErrMissingFields
	}

	expense, err := s.repo.GetExpenseByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	expense.Category = strings.TrimSpace(req.Category)
	expense.Amount = req.Amount
	expense.Date = date
	if req.Icon != "" {
		expense.Icon = req.Icon
	}
	expense.UpdatedAt = time.Now()

	if err := s.repo.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (s *TransactionService) DeleteIncome(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteIncome(ctx, userID, id)
}

func (s *TransactionService) DeleteExpense(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, userID, id)
}

// IncomeExcel renders the user's income records as a spreadsheet.
func (s *TransactionService) IncomeExcel(ctx context.Context, userID uuid.UUID) (*bytes.Buffer, error) {
	incomes, err := s.repo.ListIncomeByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if len(incomes) == 0 {
		return nil, ErrNoRecords
	}

	rows := make([][]any, 0, len(incomes))
	for _, in := range incomes {
		rows = append(rows, []any{in.Source, in.Amount, in.Date.Format(models.DateLayout)})
	}

	return buildExcel("Income", []string{"Source", "Amount", "Date"}, rows)
}

// ExpenseExcel renders the user's expense records as a spreadsheet.
func (s *TransactionService) ExpenseExcel(ctx context.Context, userID uuid.UUID) (*bytes.Buffer, error) {
	expenses, err := s.repo.ListExpenseByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if len(expenses) == 0 {
		return nil, ErrNoRecords
	}

	rows := make([][]any, 0, len(expenses))
	for _, ex := range expenses {
		rows = append(rows, []any{ex.Category, ex.Amount, ex.Date.Format(models.DateLayout)})
	}

	return buildExcel("Expense", []string{"Category", "Amount", "Date"}, rows)
}

func buildExcel(sheet string, headers []string, rows [][]any) (*bytes.Buffer, error) {
	file := excelize.NewFile()
	defer file.Close()

	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := file.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return file.WriteToBuffer()
}

// Dashboard aggregates totals and the most recent records for the owner.
func (s *TransactionService) Dashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	incomes, err := s.repo.ListIncomeByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	expenses, err := s.repo.ListExpenseByUser(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	resp := &dto.DashboardResponse{
		RecentIncomes:  []dto.IncomeResponse{},
		RecentExpenses: []dto.ExpenseResponse{},
	}

	for i, in := range incomes {
		resp.TotalIncome += in.Amount
		if i < recentLimit {
			resp.RecentIncomes = append(resp.RecentIncomes, dto.IncomeResponse{
				ID:     in.ID.String(),
				Icon:   in.Icon,
				Source: in.Source,
				Amount: in.Amount,
				Date:   in.Date.Format(models.DateLayout),
			})
		}
	}
	for i, ex := range expenses {
		resp.TotalExpense += ex.Amount
		if i < recentLimit {
			resp.RecentExpenses = append(resp.RecentExpenses, dto.ExpenseResponse{
				ID:       ex.ID.String(),
				Icon:     ex.Icon,
				Category: ex.Category,
				Amount:   ex.Amount,
				Date:     ex.Date.Format(models.DateLayout),
			})
		}
	}

	resp.Balance = resp.TotalIncome - resp.TotalExpense
	return resp, nil
}
