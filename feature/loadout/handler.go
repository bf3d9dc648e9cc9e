package loadout

import (
	"errors"

	"artifact-planner/core/logger"
	"artifact-planner/core/reconcile"
	"artifact-planner/feature/loadout/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for loadouts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the loadout routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/loadout")
	group.Post("/plan", h.HandlePlan)
	group.Post("/earnings", h.HandleEarnings)
	group.Get("/strategies", h.HandleStrategies)
}

// HandlePlan reconstructs a target loadout from the player's backup.
// @Summary Plan Loadout
// @Description Reconstruct the concrete artifact set for a target loadout and list the steps to wear it.
// @Tags loadout
// @Accept json
// @Produce json
// @Param request body models.PlanRequest true "Target and backup"
// @Success 200 {object} models.PlanResponse "Plan"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 404 {object} map[string]string "Backup Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /loadout/plan [post]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	resp, err := h.service.Plan(c.Context(), req)
	if err != nil {
		return respondError(c, l, "Loadout plan failed", err)
	}
	return c.JSON(resp)
}

// HandleEarnings scores an explicit artifact set.
// @Summary Score Loadout
// @Description Compute the virtual earnings multiplier of an artifact set on a farm.
// @Tags loadout
// @Accept json
// @Produce json
// @Param request body models.EarningsRequest true "Set and farm"
// @Success 200 {object} models.EarningsResponse "Score"
// @Failure 400 {object} map[string]string "Invalid Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /loadout/earnings [post]
func (h *Handler) HandleEarnings(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req models.EarningsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body: " + err.Error()})
	}

	resp, err := h.service.Earnings(c.Context(), req)
	if err != nil {
		return respondError(c, l, "Loadout scoring failed", err)
	}
	return c.JSON(resp)
}

// HandleStrategies lists the prestige strategies.
// @Summary List Strategies
// @Description List the prestige strategies the earnings model understands.
// @Tags loadout
// @Produce json
// @Success 200 {object} models.StrategiesResponse "Strategies"
// @Router /loadout/strategies [get]
func (h *Handler) HandleStrategies(c *fiber.Ctx) error {
	return c.JSON(h.service.Strategies())
}

func respondError(c *fiber.Ctx, l *zap.Logger, msg string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidRequest):
		status = fiber.StatusBadRequest
		l.Warn(msg, zap.Error(err))
	case errors.Is(err, ErrBackupNotFound):
		status = fiber.StatusNotFound
		l.Warn(msg, zap.Error(err))
	case reconcile.IsInvariantViolation(err):
		l.Error(msg, zap.Error(err), zap.Bool("bug", true))
	default:
		l.Error(msg, zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
