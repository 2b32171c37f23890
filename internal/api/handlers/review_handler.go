package handlers

import (
	"errors"
	"strconv"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReviewHandler exposes the in-memory review staging operations: stage an
// extracted list, select entries, edit them, and discard the session.
type ReviewHandler struct {
	reviewService *service.ReviewService
	logger        *zap.Logger
}

func NewReviewHandler(reviewService *service.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Create godoc
// @Summary Stage extracted transactions for review
// @Tags review
// @Accept json
// @Produce json
// @Param request body dto.CreateReviewRequest true "Extracted transactions"
// @Security Bearer
// @Success 201 {object} dto.ReviewResponse
// @Router /api/v1/ai/review [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	id := h.reviewService.Create(userID, req.Transactions)
	return c.Status(fiber.StatusCreated).JSON(h.reviewResponse(userID, id))
}

// Get godoc
// @Summary Get a review session
// @Tags review
// @Produce json
// @Param id path string true "Review session ID"
// @Security Bearer
// @Success 200 {object} dto.ReviewResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/ai/review/{id} [get]
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	userID, id, ok := h.sessionParams(c)
	if !ok {
		return nil
	}

	if _, err := h.reviewService.Get(userID, id); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Review session not found",
		})
	}

	return c.JSON(h.reviewResponse(userID, id))
}

// ToggleSelect godoc
// @Summary Toggle selection of one staged transaction
// @Tags review
// @Accept json
// @Produce json
// @Param id path string true "Review session ID"
// @Param request body dto.SelectRequest true "Index to toggle"
// @Security Bearer
// @Success 200 {object} dto.ReviewResponse
// @Router /api/v1/ai/review/{id}/select [patch]
func (h *ReviewHandler) ToggleSelect(c *fiber.Ctx) error {
	userID, id, ok := h.sessionParams(c)
	if !ok {
		return nil
	}

	var req dto.SelectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.reviewService.ToggleSelect(userID, id, req.Index); err != nil {
		return h.mapReviewError(c, err)
	}

	return c.JSON(h.reviewResponse(userID, id))
}

// ToggleSelectAll godoc
// @Summary Select all staged transactions, or clear the selection if all are selected
// @Tags review
// @Produce json
// @Param id path string true "Review session ID"
// @Security Bearer
// @Success 200 {object} dto.ReviewResponse
// @Router /api/v1/ai/review/{id}/select-all [patch]
func (h *ReviewHandler) ToggleSelectAll(c *fiber.Ctx) error {
	userID, id, ok := h.sessionParams(c)
	if !ok {
		return nil
	}

	if err := h.reviewService.ToggleSelectAll(userID, id); err != nil {
		return h.mapReviewError(c, err)
	}

	return c.JSON(h.reviewResponse(userID, id))
}

// Edit godoc
// @Summary Replace one staged transaction's fields
// @Tags review
// @Accept json
// @Produce json
// @Param id path string true "Review session ID"
// @Param index path int true "Transaction index"
// @Param request body dto.EditTransactionRequest true "Replacement transaction"
// @Security Bearer
// @Success 200 {object} dto.ReviewResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/ai/review/{id}/transactions/{index} [put]
func (h *ReviewHandler) Edit(c *fiber.Ctx) error {
	userID, id, ok := h.sessionParams(c)
	if !ok {
		return nil
	}

	index, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid transaction index",
		})
	}

	var req dto.EditTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.reviewService.Edit(userID, id, index, req.Transaction); err != nil {
		return h.mapReviewError(c, err)
	}

	return c.JSON(h.reviewResponse(userID, id))
}

// Clear godoc
// @Summary Discard a review session
// @Tags review
// @Produce json
// @Param id path string true "Review session ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Router /api/v1/ai/review/{id} [delete]
func (h *ReviewHandler) Clear(c *fiber.Ctx) error {
	userID, id, ok := h.sessionParams(c)
	if !ok {
		return nil
	}

	h.reviewService.Clear(userID, id)
	return c.JSON(fiber.Map{
		"message": "Review session cleared",
	})
}

// sessionParams resolves the owner and session ID, writing the error
// response itself on failure.
func (h *ReviewHandler) sessionParams(c *fiber.Ctx) (uuid.UUID, uuid.UUID, bool) {
	userID, err := getUserID(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid review session ID",
		})
		return uuid.Nil, uuid.Nil, false
	}

	return userID, id, true
}

func (h *ReviewHandler) mapReviewError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrReviewNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Review session not found",
		})
	case errors.Is(err, models.ErrIndexOutOfRange):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Transaction index out of range",
		})
	case errors.Is(err, models.ErrValidationFailed):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Amount must be positive and date must not be empty",
		})
	default:
		h.logger.Error("Review operation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Review operation failed",
		})
	}
}

func (h *ReviewHandler) reviewResponse(userID, id uuid.UUID) dto.ReviewResponse {
	resp := dto.ReviewResponse{
		ID:       id.String(),
		Selected: []int{},
	}
	list, err := h.reviewService.Get(userID, id)
	if err != nil {
		return resp
	}
	resp.Transactions = list.Transactions()
	if indices := list.SelectedIndices(); indices != nil {
		resp.Selected = indices
	}
	return resp
}
