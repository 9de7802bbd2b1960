package lists

import (
	"errors"

	"list-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for lists.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lists routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/lists")
	group.Get("/", h.HandleGetLists)
	group.Get("/:id", h.HandleGetList)
	group.Post("/", h.HandleCreateList)
	group.Delete("/", h.HandleDeleteAll)
}

// HandleGetLists returns all lists.
// @Summary Get Lists
// @Description Get all lists with their items and image metadata.
// @Tags lists
// @Produce json
// @Success 200 {array} models.List "Lists"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lists [get]
func (h *Handler) HandleGetLists(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	lists, err := h.service.GetLists(c.Context())
	if err != nil {
		l.Error("Failed to load lists", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(lists)
}

// HandleGetList returns a single list.
// @Summary Get List
// @Description Get a single list by ID.
// @Tags lists
// @Produce json
// @Param id path string true "List ID"
// @Success 200 {object} models.List "List"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lists/{id} [get]
func (h *Handler) HandleGetList(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c)

	list, err := h.service.GetList(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "list not found",
			})
		}
		l.Error("Failed to load list", zap.String("list_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(list)
}

// createListRequest is the body for HandleCreateList.
type createListRequest struct {
	Name        string `json:"name"`
	OrderNumber int    `json:"order_number"`
}

// HandleCreateList creates a new empty list.
// @Summary Create List
// @Description Create a new empty list.
// @Tags lists
// @Accept json
// @Produce json
// @Param body body createListRequest true "List"
// @Success 201 {object} models.List "Created"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lists [post]
func (h *Handler) HandleCreateList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req createListRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name is required",
		})
	}

	list, err := h.service.CreateList(c.Context(), req.Name, req.OrderNumber)
	if err != nil {
		l.Error("Failed to create list", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(list)
}

// HandleDeleteAll removes every list, item, and image row.
// @Summary Delete All Lists
// @Description Delete every list with its items and image metadata. Requires confirm=true.
// @Tags lists
// @Produce json
// @Param confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /lists [delete]
func (h *Handler) HandleDeleteAll(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	// Destructive; an explicit confirm flag keeps stray clients out.
	if !c.QueryBool("confirm") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "confirm=true is required",
		})
	}

	if err := h.service.DeleteAllLists(c.Context()); err != nil {
		l.Error("Failed to delete lists", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
