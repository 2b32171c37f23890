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

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List godoc
// @Summary List the owner's categories
// @Description List income or expense categories, seeding defaults on first use
// @Tags categories
// @Produce json
// @Param kind path string true "Category kind: income or expense"
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories/{kind} [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, kind, ok := h.params(c)
	if !ok {
		return nil
	}

	categories, err := h.categoryService.List(c.Context(), kind, userID)
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list categories",
		})
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, categoryResponse(cat))
	}
	return c.JSON(resp)
}

// Add godoc
// @Summary Add a category
// @Tags categories
// @Accept json
// @Produce json
// @Param kind path string true "Category kind: income or expense"
// @Param request body dto.AddCategoryRequest true "Category name"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories/{kind} [post]
func (h *CategoryHandler) Add(c *fiber.Ctx) error {
	userID, kind, ok := h.params(c)
	if !ok {
		return nil
	}

	var req dto.AddCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	category, err := h.categoryService.Add(c.Context(), kind, userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Category name is required",
			})
		}
		h.logger.Error("Failed to add category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to add category",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(categoryResponse(category))
}

// Delete godoc
// @Summary Delete a non-default category
// @Tags categories
// @Produce json
// @Param kind path string true "Category kind: income or expense"
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/categories/{kind}/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, kind, ok := h.params(c)
	if !ok {
		return nil
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid category ID",
		})
	}

	if err := h.categoryService.Delete(c.Context(), kind, userID, id); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found or not yours",
			})
		case errors.Is(err, service.ErrDefaultCategory):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Default categories cannot be deleted",
			})
		default:
			h.logger.Error("Failed to delete category", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete category",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}

func (h *CategoryHandler) params(c *fiber.Ctx) (uuid.UUID, models.CategoryKind, bool) {
	userID, err := getUserID(c)
	if err != nil {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
		return uuid.Nil, "", false
	}

	kind := models.CategoryKind(c.Params("kind"))
	if !kind.Valid() {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Kind must be income or expense",
		})
		return uuid.Nil, "", false
	}

	return userID, kind, true
}

func categoryResponse(cat *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        cat.ID.String(),
		Name:      cat.Name,
		IsDefault: cat.IsDefault,
	}
}
