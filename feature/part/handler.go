package part

import (
	"errors"

	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for parts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the part routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/parts/:id", h.HandleGetPart)
	app.Get("/categories/:id/parts", h.HandleGetCategoryParts)
}

// HandleGetPart returns a part with its stock and projects.
// @Summary Get Part
// @Description Get a part with its total stock quantity and the projects using it.
// @Tags parts
// @Produce json
// @Param id path int true "Part ID"
// @Success 200 {object} part.PartDetail "Part Detail"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /parts/{id} [get]
func (h *Handler) HandleGetPart(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid part id"})
	}

	detail, err := h.service.GetPartDetail(c.UserContext(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Part not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Part lookup failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(detail)
}

// HandleGetCategoryParts lists the parts of a category.
// @Summary List Category Parts
// @Description List the parts directly in a category.
// @Tags parts
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {array} models.Part "Parts"
// @Failure 400 {object} map[string]string "Invalid ID"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /categories/{id}/parts [get]
func (h *Handler) HandleGetCategoryParts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid category id"})
	}

	parts, err := h.service.ListCategoryParts(c.UserContext(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Category not found"})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Category listing failed", zap.Int("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(parts)
}
