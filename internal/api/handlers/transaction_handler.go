package handlers

import (
	"errors"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// AddIncome godoc
// @Summary Add an income record
// @Tags income
// @Accept json
// @Produce json
// @Param request body dto.AddIncomeRequest true "Income record"
// @Security Bearer
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/income [post]
func (h *TransactionHandler) AddIncome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.AddIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	income, err := h.txService.AddIncome(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		}
		h.logger.Error("Failed to add income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add income"})
	}

	return c.Status(fiber.StatusCreated).JSON(incomeResponse(income))
}

// ListIncome godoc
// @Summary List the owner's income records
// @Tags income
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.IncomeResponse
// @Router /api/v1/income [get]
func (h *TransactionHandler) ListIncome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	incomes, err := h.txService.ListIncome(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list income"})
	}

	resp := make([]dto.IncomeResponse, 0, len(incomes))
	for _, in := range incomes {
		resp = append(resp, incomeResponse(in))
	}
	return c.JSON(resp)
}

// UpdateIncome godoc
// @Summary Update an income record
// @Tags income
// @Accept json
// @Produce json
// @Param id path string true "Income ID"
// @Param request body dto.AddIncomeRequest true "Updated fields"
// @Security Bearer
// @Success 200 {object} dto.IncomeResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/income/{id} [put]
func (h *TransactionHandler) UpdateIncome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income ID"})
	}

	var req dto.AddIncomeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	income, err := h.txService.UpdateIncome(c.Context(), userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Income record not found"})
		default:
			h.logger.Error("Failed to update income", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update income"})
		}
	}

	return c.JSON(incomeResponse(income))
}

// DeleteIncome godoc
// @Summary Delete an income record
// @Tags income
// @Produce json
// @Param id path string true "Income ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/income/{id} [delete]
func (h *TransactionHandler) DeleteIncome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid income ID"})
	}

	if err := h.txService.DeleteIncome(c.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Income record not found"})
		}
		h.logger.Error("Failed to delete income", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete income"})
	}

	return c.JSON(fiber.Map{"message": "Income deleted successfully"})
}

// DownloadIncome godoc
// @Summary Download income records as a spreadsheet
// @Tags income
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /api/v1/income/download [get]
func (h *TransactionHandler) DownloadIncome(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	buf, err := h.txService.IncomeExcel(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No income records found"})
		}
		h.logger.Error("Failed to build income spreadsheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to download income"})
	}

	c.Set(fiber.HeaderContentType, excelContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="income_details.xlsx"`)
	return c.Send(buf.Bytes())
}

// AddExpense godoc
// @Summary Add an expense record
// @Tags expense
// @Accept json
// @Produce json
// @Param request body dto.AddExpenseRequest true "Expense record"
// @Security Bearer
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/expense [post]
func (h *TransactionHandler) AddExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	var req dto.AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	expense, err := h.txService.AddExpense(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		}
		h.logger.Error("Failed to add expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add expense"})
	}

	return c.Status(fiber.StatusCreated).JSON(expenseResponse(expense))
}

// ListExpense godoc
// @Summary List the owner's expense records
// @Tags expense
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.ExpenseResponse
// @Router /api/v1/expense [get]
func (h *TransactionHandler) ListExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	expenses, err := h.txService.ListExpense(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list expenses", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to list expenses"})
	}

	resp := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, ex := range expenses {
		resp = append(resp, expenseResponse(ex))
	}
	return c.JSON(resp)
}

// UpdateExpense godoc
// @Summary Update an expense record
// @Tags expense
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.AddExpenseRequest true "Updated fields"
// @Security Bearer
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/expense/{id} [put]
func (h *TransactionHandler) UpdateExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense ID"})
	}

	var req dto.AddExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	expense, err := h.txService.UpdateExpense(c.Context(), userID, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "All fields are required"})
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense record not found"})
		default:
			h.logger.Error("Failed to update expense", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update expense"})
		}
	}

	return c.JSON(expenseResponse(expense))
}

// DeleteExpense godoc
// @Summary Delete an expense record
// @Tags expense
// @Produce json
// @Param id path string true "Expense ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/expense/{id} [delete]
func (h *TransactionHandler) DeleteExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid expense ID"})
	}

	if err := h.txService.DeleteExpense(c.Context(), userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Expense record not found"})
		}
		h.logger.Error("Failed to delete expense", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete expense"})
	}

	return c.JSON(fiber.Map{"message": "Expense deleted successfully"})
}

// DownloadExpense godoc
// @Summary Download expense records as a spreadsheet
// @Tags expense
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security Bearer
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string
// @Router /api/v1/expense/download [get]
func (h *TransactionHandler) DownloadExpense(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	buf, err := h.txService.ExpenseExcel(c.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "No expense records found"})
		}
		h.logger.Error("Failed to build expense spreadsheet", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to download expenses"})
	}

	c.Set(fiber.HeaderContentType, excelContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="expense_details.xlsx"`)
	return c.Send(buf.Bytes())
}

// Dashboard godoc
// @Summary Dashboard aggregation
// @Description Totals, balance and recent records for the owner
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.DashboardResponse
// @Router /api/v1/dashboard [get]
func (h *TransactionHandler) Dashboard(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Unauthorized"})
	}

	resp, err := h.txService.Dashboard(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build dashboard", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to build dashboard"})
	}

	return c.JSON(resp)
}

func incomeResponse(in *models.Income) dto.IncomeResponse {
	return dto.IncomeResponse{
		ID:     in.ID.String(),
		Icon:   in.Icon,
		Source: in.Source,
		Amount: in.Amount,
		Date:   in.Date.Format(models.DateLayout),
	}
}

func expenseResponse(ex *models.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:       ex.ID.String(),
		Icon:     ex.Icon,
		Category: ex.Category,
		Amount:   ex.Amount,
		Date:     ex.Date.Format(models.DateLayout),
	}
}
