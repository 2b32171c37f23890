package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// allowedUploadTypes is the content-type allow-list for statement uploads.
var allowedUploadTypes = map[string]bool{
	"application/pdf": true,
	"text/csv":        true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"text/plain": true,
}

type AIHandler struct {
	aiService     *service.AIService
	importService *service.ImportService
	reviewService *service.ReviewService
	uploadDir     string
	logger        *zap.Logger
}

func NewAIHandler(
	aiService *service.AIService,
	importService *service.ImportService,
	reviewService *service.ReviewService,
	uploadDir string,
	logger *zap.Logger,
) *AIHandler {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &AIHandler{
		aiService:     aiService,
		importService: importService,
		reviewService: reviewService,
		uploadDir:     uploadDir,
		logger:        logger,
	}
}

// Analyze godoc
// @Summary Analyze recorded finances
// @Description Summarize income/expense records over a period with an AI-generated review
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeRequest true "Analysis request"
// @Security Bearer
// @Success 200 {object} dto.AnalyzeResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/ai/analyze [post]
func (h *AIHandler) Analyze(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if req.Type != "income" && req.Type != "expense" && req.Type != "both" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Type must be income, expense or both",
		})
	}
	if req.Period != "1M" && req.Period != "3M" && req.Period != "6M" && req.Period != "all" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Period must be 1M, 3M, 6M or all",
		})
	}

	resp, err := h.aiService.Analyze(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No records found for the selected period",
			})
		}
		h.logger.Error("Analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to analyze financial data",
		})
	}

	return c.JSON(resp)
}

// ExtractTransactions godoc
// @Summary Extract transactions from a financial statement
// @Description Upload a PDF, CSV, XLSX or TXT statement and extract structured transactions via AI
// @Tags ai
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement file"
// @Security Bearer
// @Success 200 {object} dto.ExtractResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/ai/extract-transactions [post]
func (h *AIHandler) ExtractTransactions(c *fiber.Ctx) error {
	if _, err := getUserID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "File is required",
		})
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid file type. Only PDF, CSV, XLSX, and TXT files are allowed.",
		})
	}

	filePath := filepath.Join(h.uploadDir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(fileHeader.Filename)))
	if err := c.SaveFile(fileHeader, filePath); err != nil {
		h.logger.Error("Failed to save uploaded file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to save uploaded file",
		})
	}

	parsed, err := h.aiService.ExtractTransactions(c.Context(), filePath)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedFormat):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid file type. Only PDF, CSV, XLSX, and TXT files are allowed.",
			})
		case errors.Is(err, service.ErrMalformedCompletion):
			// Distinguishable from other failures; the raw payload stays in the logs.
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "AI response could not be parsed into transactions",
			})
		case errors.Is(err, service.ErrCompletionTimeout):
			h.logger.Error("Extraction timed out", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "AI request timed out",
			})
		default:
			h.logger.Error("Extraction failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to extract transactions",
			})
		}
	}

	return c.JSON(dto.ExtractResponse{
		Data: dto.ExtractedData{
			Income:       parsed.Income,
			Expenses:     parsed.Expenses,
			Transactions: parsed.Transactions,
		},
	})
}

// Import godoc
// @Summary Import confirmed transactions
// @Description Persist a confirmed subset of extracted transactions, creating missing categories
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.ImportRequest true "Transactions to import"
// @Security Bearer
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/ai/import [post]
func (h *AIHandler) Import(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payload. Expect arrays.",
		})
	}

	counts, err := h.importService.Import(c.Context(), userID, req.Income, req.Expenses)
	if err != nil {
		h.logger.Error("Import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to import transactions",
		})
	}

	return c.JSON(dto.ImportResponse{
		Message:  "Imported successfully",
		Inserted: *counts,
	})
}

func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, ok := c.Locals("userID").(string)
	if !ok {
		return uuid.Nil, fiber.ErrUnauthorized
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, err
	}

	return userID, nil
}
