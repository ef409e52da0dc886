package labels

import (
	"errors"

	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for labels.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the label routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/labels/:model", h.HandleExport)
}

// HandleExport writes the label manifest of a model to storage.
// @Summary Export Labels
// @Description Generate barcodes for every record of a model and store them as a JSON manifest.
// @Tags labels
// @Produce json
// @Param model path string true "Model label (e.g. 'part')"
// @Success 200 {object} labels.ExportResult "Manifest"
// @Failure 400 {object} map[string]string "Unknown model"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /labels/{model} [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	model := c.Params("model")

	result, err := h.service.Export(c.UserContext(), model)
	if errors.Is(err, ErrUnknownModel) || errors.Is(err, ErrNotEnumerable) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Label export failed", zap.String("model", model), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}
