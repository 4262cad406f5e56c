package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/pop_field_ops/internal/models"
)

// RegisterRoutes регистрирует все маршруты API
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	(&resource[*models.POP, POPRequest]{
		name: "pop", svc: h.pops, filters: []string{"status"},
		toModel: POPRequestToModel, toRequest: POPModelToRequest,
		logger: h.logger, validate: h.validate,
	}).register(api.Group("/pops"))

	(&resource[*models.Activity, ActivityRequest]{
		name: "activity", svc: h.activities, filters: []string{"status", "pop_id", "priority", "type"},
		toModel: ActivityRequestToModel, toRequest: ActivityModelToRequest,
		logger: h.logger, validate: h.validate,
	}).register(api.Group("/activities"))

	(&resource[*models.Technician, TechnicianRequest]{
		name: "technician", svc: h.technicians, filters: []string{"status", "especialidade"},
		toModel: TechnicianRequestToModel, toRequest: TechnicianModelToRequest,
		logger: h.logger, validate: h.validate,
	}).register(api.Group("/technicians"))

	(&resource[*models.Supply, SupplyRequest]{
		name: "supply", svc: h.supplies, filters: []string{"fuel_type", "pop_id", "status"},
		toModel: SupplyRequestToModel, toRequest: SupplyModelToRequest,
		logger: h.logger, validate: h.validate,
	}).register(api.Group("/supplies"))

	(&resource[*models.Generator, GeneratorRequest]{
		name: "generator", svc: h.generators, filters: []string{"status", "fuel_type", "pop_id"},
		toModel: GeneratorRequestToModel, toRequest: GeneratorModelToRequest,
		logger: h.logger, validate: h.validate,
	}).register(api.Group("/generators"))

	checklists := api.Group("/checklists")
	(&resource[*models.Checklist, ChecklistRequest]{
		name: "checklist", svc: h.checklists, filters: []string{"status", "pop_id"},
		toModel: ChecklistRequestToModel, toRequest: ChecklistModelToRequest,
		logger: h.logger, validate: h.validate,
	}).register(checklists)
	checklists.PUT("/:id/items/:index", h.updateChecklistItem)

	api.GET("/dashboard", h.getDashboard)
	api.GET("/health", h.healthCheck)
}

// NewRouter собирает gin.Engine: middleware, 405 для неподдерживаемых методов и маршруты /api
func (h *Handler) NewRouter() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(RequestLogger(h.logger))
	router.Use(Recovery(h.logger))
	router.Use(CORSMiddleware(h.cfg))

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "route not found"})
	})

	h.RegisterRoutes(router.Group("/api"))
	return router
}
