package v1

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/pop_field_ops/internal/config"
	"github.com/shenikar/pop_field_ops/internal/models"
	"github.com/shenikar/pop_field_ops/internal/service"
)

// HealthCheck проверяет внешнюю зависимость (БД, Redis)
type HealthCheck func(ctx context.Context) error

type Handler struct {
	pops        service.CRUDService[*models.POP]
	activities  service.CRUDService[*models.Activity]
	technicians service.CRUDService[*models.Technician]
	supplies    service.CRUDService[*models.Supply]
	generators  service.CRUDService[*models.Generator]
	checklists  service.ChecklistManager
	dashboard   service.DashboardProvider

	checks   map[string]HealthCheck
	logger   *logrus.Logger
	validate *validator.Validate
	cfg      *config.Config
}

func NewHandler(services *service.Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		pops:        services.POPs,
		activities:  services.Activities,
		technicians: services.Technicians,
		supplies:    services.Supplies,
		generators:  services.Generators,
		checklists:  services.Checklists,
		dashboard:   services.Dashboard,
		checks:      make(map[string]HealthCheck),
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// WithHealthCheck добавляет проверку зависимости в /health
func (h *Handler) WithHealthCheck(name string, check HealthCheck) *Handler {
	h.checks[name] = check
	return h
}

// @Summary Update a checklist item
// @Description Marks one checklist item; progress and status are recalculated.
// @Tags Checklists
// @Accept json
// @Produce json
// @Param id path int true "Checklist ID"
// @Param index path int true "Item index (0-based)"
// @Param item body ChecklistItemUpdateRequest true "Item state"
// @Success 200 {object} models.Checklist
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /checklists/{id}/items/{index} [put]
func (h *Handler) updateChecklistItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		badRequest(c, "invalid checklist ID")
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		badRequest(c, "invalid item index")
		return
	}
	log := h.logger.WithField("method", "updateChecklistItem").WithField("id", id).WithField("index", index)

	var input ChecklistItemUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		badRequest(c, "invalid request body")
		return
	}

	checklist, err := h.checklists.SetItem(c.Request.Context(), id, index, input.Checked, input.Notes)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, checklist)
}

// @Summary Get dashboard summary
// @Description Counts by status/priority/type, current-month fuel supplies and the latest activities. Recomputed on every call.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 500 {object} ErrorResponse
// @Router /dashboard [get]
func (h *Handler) getDashboard(c *gin.Context) {
	log := h.logger.WithField("method", "getDashboard")

	d, err := h.dashboard.GetDashboard(c.Request.Context())
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// @Summary Get application health status
// @Description Get health status of the application and its dependencies
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Status OK"
// @Failure 503 {object} map[string]interface{} "Dependency down"
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	components := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			h.logger.WithError(err).WithField("component", name).Warn("Health check failed")
			components[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		components[name] = "up"
	}

	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	c.JSON(status, gin.H{"status": state, "components": components})
}
