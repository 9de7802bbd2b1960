package importer

import (
	"errors"

	"list-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for imports and exports.
type Handler struct {
	service         *Service
	defaultStrategy MergeStrategy
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, defaultStrategy MergeStrategy) *Handler {
	return &Handler{service: service, defaultStrategy: defaultStrategy}
}

// RegisterRoutes registers the import/export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/import")
	group.Post("/preview", h.HandlePreview)
	group.Post("/", h.HandleImport)
	app.Get("/export", h.HandleExport)
}

// HandlePreview reports what importing the request body would do.
// @Summary Preview Import
// @Description Dry-run an import: parse the body (JSON export or plain text) and report the change-set without committing.
// @Tags import
// @Accept json
// @Accept plain
// @Produce json
// @Param strategy query string false "Merge strategy (replace|merge|append)"
// @Param validate query bool false "Run pre-flight validation (default true)"
// @Success 200 {object} ImportPreview "Preview"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unprocessable Payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /import/preview [post]
func (h *Handler) HandlePreview(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := h.parseOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	preview, err := h.service.Preview(c.Context(), c.Body(), opts, nil)
	if err != nil {
		return h.renderError(c, l, err)
	}

	return c.JSON(preview)
}

// HandleImport imports the request body into the store.
// @Summary Import
// @Description Import the body (JSON export or plain text) under the given merge strategy and commit the result.
// @Tags import
// @Accept json
// @Accept plain
// @Produce json
// @Param strategy query string false "Merge strategy (replace|merge|append)"
// @Param validate query bool false "Run pre-flight validation (default true)"
// @Success 200 {object} ImportResult "Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 422 {object} map[string]string "Unprocessable Payload"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := h.parseOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.service.Import(c.Context(), c.Body(), opts, nil)
	if err != nil {
		return h.renderError(c, l, err)
	}

	return c.JSON(result)
}

// HandleExport returns the whole store as an ExportData document.
// @Summary Export
// @Description Export every list, item, and image as a versioned JSON document.
// @Tags import
// @Produce json
// @Success 200 {object} ExportData "Export"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export [get]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	data, err := h.service.Export(c.Context())
	if err != nil {
		l.Error("Export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(Encode(data))
}

// parseOptions extracts ImportOptions from query parameters.
func (h *Handler) parseOptions(c *fiber.Ctx) (ImportOptions, error) {
	opts := ImportOptions{
		Strategy:     h.defaultStrategy,
		ValidateData: c.QueryBool("validate", true),
	}
	if raw := c.Query("strategy"); raw != "" {
		strategy, err := ParseStrategy(raw)
		if err != nil {
			return ImportOptions{}, err
		}
		opts.Strategy = strategy
	}
	return opts, nil
}

// renderError maps the import error taxonomy to HTTP statuses.
func (h *Handler) renderError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var ie *ImportError
	if !errors.As(err, &ie) {
		l.Error("Import failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	status := fiber.StatusInternalServerError
	switch ie.Kind {
	case KindInvalidData, KindInvalidFormat:
		status = fiber.StatusBadRequest
	case KindDecodingFailed, KindValidationFailed:
		status = fiber.StatusUnprocessableEntity
	case KindRepositoryError:
		l.Error("Import commit failed", zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"error": ie.Error(),
		"kind":  string(ie.Kind),
	})
}
