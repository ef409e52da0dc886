package barcode

import (
	"encoding/json"
	"errors"

	"inventory-manager/core/barcode"
	"inventory-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ScanRequest is the body of a scan or link request.
type ScanRequest struct {
	Barcode json.RawMessage `json:"barcode" swaggertype:"string"`
	Model   string          `json:"model,omitempty"`
	PK      int             `json:"pk,omitempty"`
}

// RecordRequest addresses a single record.
type RecordRequest struct {
	Model string `json:"model"`
	PK    int    `json:"pk"`
}

// Handler handles HTTP requests for barcodes.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the barcode routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/barcode", h.HandleScan)

	group := app.Group("/barcode")
	group.Post("/generate", h.HandleGenerate)
	group.Post("/link", h.HandleLink)
	group.Post("/unlink", h.HandleUnlink)
}

// HandleScan resolves scanned barcode data to a record.
// @Summary Scan Barcode
// @Description Match barcode data (string or JSON object) against short codes, JSON references and linked barcodes.
// @Tags barcode
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Barcode data"
// @Success 200 {object} map[string]interface{} "Matched item keyed by model"
// @Failure 400 {object} map[string]string "No match or invalid data"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /barcode [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	p, ok := h.parsePayload(c)
	if !ok {
		return nil
	}

	resp, err := h.service.Scan(c.UserContext(), p)
	if err != nil {
		return h.fail(c, err)
	}
	if resp == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":        MsgNoMatch,
			"barcode_data": p.String(),
			"barcode_hash": barcode.Hash(p),
		})
	}

	return c.JSON(resp)
}

// HandleGenerate renders the internal barcode of a record.
// @Summary Generate Barcode
// @Description Generate the internal barcode (JSON or short format, per configuration) of a record.
// @Tags barcode
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Record"
// @Success 200 {object} map[string]string "Barcode"
// @Failure 400 {object} map[string]string "Unknown model"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /barcode/generate [post]
func (h *Handler) HandleGenerate(c *fiber.Ctx) error {
	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	data, err := h.service.Generate(c.UserContext(), req.Model, req.PK)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"barcode": data})
}

// HandleLink assigns an external barcode to a record.
// @Summary Link Barcode
// @Description Link third-party barcode data to a record. Fails if the data already matches an item.
// @Tags barcode
// @Accept json
// @Produce json
// @Param request body ScanRequest true "Barcode data and record"
// @Success 200 {object} map[string]string "Linked"
// @Failure 400 {object} map[string]string "Barcode in use or invalid data"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /barcode/link [post]
func (h *Handler) HandleLink(c *fiber.Ctx) error {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	p, err := barcode.PayloadFromJSON(req.Barcode)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	hash, err := h.service.Link(c.UserContext(), p, req.Model, req.PK)
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{
		"success":      "Assigned barcode to " + req.Model + " instance",
		"barcode_hash": hash,
	})
}

// HandleUnlink removes the external barcode of a record.
// @Summary Unlink Barcode
// @Description Remove the linked third-party barcode of a record.
// @Tags barcode
// @Accept json
// @Produce json
// @Param request body RecordRequest true "Record"
// @Success 200 {object} map[string]string "Unlinked"
// @Failure 400 {object} map[string]string "Unknown model"
// @Failure 404 {object} map[string]string "Record not found"
// @Router /barcode/unlink [post]
func (h *Handler) HandleUnlink(c *fiber.Ctx) error {
	var req RecordRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := h.service.Unlink(c.UserContext(), req.Model, req.PK); err != nil {
		return h.fail(c, err)
	}

	return c.JSON(fiber.Map{"success": "Unassigned barcode from " + req.Model + " instance"})
}

// parsePayload writes a 400 response and returns false when the body holds no usable barcode.
func (h *Handler) parsePayload(c *fiber.Ctx) (barcode.Payload, bool) {
	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		return barcode.Payload{}, false
	}
	if len(req.Barcode) == 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing barcode data"})
		return barcode.Payload{}, false
	}

	p, err := barcode.PayloadFromJSON(req.Barcode)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		return barcode.Payload{}, false
	}
	return p, true
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrUnknownModel),
		errors.Is(err, ErrBarcodeInUse),
		errors.Is(err, ErrEmptyBarcode),
		errors.Is(err, ErrLinkUnsupported),
		errors.Is(err, barcode.ErrNotBarcodeCapable),
		errors.Is(err, barcode.ErrNoPrimaryKey):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	logger.WithRayID(h.service.logger, c).Error("Barcode request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
